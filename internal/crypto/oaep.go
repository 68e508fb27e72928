package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// EncryptOAEP encrypts plaintext with RSA-OAEP using SHA-256 for both the
// main digest and the MGF1 mask, and an empty label. The result is exactly
// ModulusSize bytes. Encryption is randomized: the same plaintext yields a
// different ciphertext on every call.
func EncryptOAEP(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	if len(plaintext) > MaxPlaintextSize {
		return nil, fmt.Errorf("%w: got %d bytes, max %d", ErrPlaintextTooLarge, len(plaintext), MaxPlaintextSize)
	}
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), reader(), pub, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("OAEP encrypt: %w", err)
	}
	return ciphertext, nil
}

// DecryptOAEP decrypts a single OAEP block with the private key.
//
// Every failure is reported as ErrDecryptionFailed with no further detail.
// Distinguishing padding failures from other causes would hand callers a
// padding-oracle distinguisher.
func DecryptOAEP(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, priv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
