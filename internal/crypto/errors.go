package crypto

import "errors"

var (
	// ErrNotRSAPublicKey is returned when SPKI bytes decode to a key that
	// is not an RSA public key.
	ErrNotRSAPublicKey = errors.New("not an RSA public key")

	// ErrNotRSAPrivateKey is returned when PKCS#8 bytes decode to a key
	// that is not an RSA private key.
	ErrNotRSAPrivateKey = errors.New("not an RSA private key")

	// ErrPlaintextTooLarge is returned when the plaintext exceeds the
	// capacity of a single OAEP block.
	ErrPlaintextTooLarge = errors.New("plaintext too large for OAEP block")

	// ErrDecryptionFailed is returned for every OAEP decryption failure.
	// The cause is deliberately not distinguished: wrong key, corrupted
	// ciphertext, and mismatched OAEP parameters all look identical to
	// the caller so error behavior cannot serve as a padding oracle.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMismatchedKeyPair is returned by the optional pairing check when
	// the private key does not correspond to the public key.
	ErrMismatchedKeyPair = errors.New("public and private keys are not a pair")
)
