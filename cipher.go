package sealbox

import (
	"fmt"
	"unicode/utf8"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// MaxPlaintextSize is the largest UTF-8 plaintext, in bytes, that Encrypt
// accepts: 190 bytes for the RSA-OAEP-2048/SHA-256 suite.
const MaxPlaintextSize = crypto.MaxPlaintextSize

// Ciphersuite is the canonical string representation of the fixed
// algorithm suite. Useful for diagnostics; it is not part of the wire
// format.
var Ciphersuite = crypto.Ciphersuite

// Cipher performs RSA-OAEP encryption and decryption over UTF-8 text with
// a single owned key pair. The pair is fixed at construction; there is no
// re-keying. A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	keyPair *KeyPair
}

// Generate creates a Cipher with a freshly generated RSA-2048 key pair.
// Fails with [ErrKeyGeneration] if the underlying provider cannot produce
// a key; the call is not retried internally.
func Generate() (*Cipher, error) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	return &Cipher{
		keyPair: &KeyPair{Public: &priv.PublicKey, Private: priv},
	}, nil
}

// FromKeyPair wraps an already-validated key pair, typically one produced
// by [ImportKeyPair] or a previous [Generate]. No further checks are
// performed on the keys.
func FromKeyPair(kp *KeyPair) *Cipher {
	return &Cipher{keyPair: kp}
}

// KeyPair returns the owned key pair.
func (c *Cipher) KeyPair() *KeyPair {
	return c.keyPair
}

// Export serializes the owned key pair for transport or storage.
func (c *Cipher) Export() (*ExportedKeyPair, error) {
	return c.keyPair.Export()
}

// Encrypt encrypts a UTF-8 plaintext with the owned public key and returns
// the OAEP block as standard base64.
//
// Plaintexts longer than [MaxPlaintextSize] bytes are rejected with a
// [PlaintextTooLargeError] before any RSA operation runs. Encryption is
// randomized: two calls with the same plaintext return different
// ciphertexts, and both decrypt to the original.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if c.keyPair == nil || c.keyPair.Public == nil {
		return "", ErrMissingPublicKey
	}

	data := []byte(plaintext)
	if len(data) > MaxPlaintextSize {
		return "", &PlaintextTooLargeError{Size: len(data), Max: MaxPlaintextSize}
	}

	ciphertext, err := crypto.EncryptOAEP(c.keyPair.Public, data)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	return crypto.ToBase64(ciphertext), nil
}

// Decrypt decodes a base64 ciphertext, decrypts the OAEP block with the
// owned private key, and returns the UTF-8 plaintext.
//
// Input that is not valid base64 fails with [ErrInvalidCiphertextEncoding].
// Everything after that - OAEP unpad/verify failure, wrong key, corrupted
// ciphertext, or a non-UTF-8 result - fails with the single opaque
// [ErrDecryption]; the cause is not distinguished.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if c.keyPair == nil || c.keyPair.Private == nil {
		return "", ErrMissingPrivateKey
	}

	block, err := crypto.FromBase64(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertextEncoding, err)
	}

	plaintext, err := crypto.DecryptOAEP(c.keyPair.Private, block)
	if err != nil {
		return "", ErrDecryption
	}

	if !utf8.Valid(plaintext) {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}
