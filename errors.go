package sealbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyGeneration is returned when the cryptographic provider cannot
	// produce a key pair. Fatal for the call; callers may retry the whole
	// operation.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyExport is returned when a key cannot be serialized to its
	// standard binary form. Pairs produced by Generate are always
	// exportable, so this indicates a caller-supplied broken key.
	ErrKeyExport = errors.New("key export failed")

	// ErrKeyImport is returned when encoded key material cannot be
	// imported: malformed base64, malformed DER, or a non-RSA key.
	// Permanent; the caller must supply valid material.
	ErrKeyImport = errors.New("key import failed")

	// ErrPlaintextTooLarge is returned when the plaintext exceeds the
	// capacity of a single OAEP block (190 bytes for this suite).
	// Permanent; the caller must shorten the input or chunk externally.
	ErrPlaintextTooLarge = errors.New("plaintext exceeds encryption capacity")

	// ErrInvalidCiphertextEncoding is returned when a ciphertext is not
	// valid standard base64.
	ErrInvalidCiphertextEncoding = errors.New("ciphertext is not valid base64")

	// ErrDecryption is returned for every decryption failure past base64
	// decoding: OAEP unpad/verify failure, wrong key, corrupted input, or
	// a non-UTF-8 result. The cause is deliberately opaque.
	ErrDecryption = errors.New("decryption failed")

	// ErrMissingPublicKey is returned when Encrypt is called on a cipher
	// without a public key.
	ErrMissingPublicKey = errors.New("cipher has no public key")

	// ErrMissingPrivateKey is returned when Decrypt is called on a cipher
	// without a private key.
	ErrMissingPrivateKey = errors.New("cipher has no private key")
)

// KeyImportError reports which half of a key pair failed to import.
// It never carries key material, only the failing field name and cause.
type KeyImportError struct {
	Field string // "publicKey" or "privateKey"
	Err   error
}

func (e *KeyImportError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyImportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyImportError) Is(target error) bool {
	return target == ErrKeyImport
}

// PlaintextTooLargeError reports a plaintext that exceeds the OAEP block
// capacity.
type PlaintextTooLargeError struct {
	Size int // UTF-8 byte length of the rejected plaintext
	Max  int // maximum plaintext size for the suite
}

func (e *PlaintextTooLargeError) Error() string {
	return fmt.Sprintf("plaintext is %d bytes, maximum is %d", e.Size, e.Max)
}

// Is implements errors.Is for sentinel error matching.
func (e *PlaintextTooLargeError) Is(target error) bool {
	return target == ErrPlaintextTooLarge
}

// wrapImportError converts internal crypto errors into public import errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapImportError(field string, err error) error {
	return &KeyImportError{Field: field, Err: err}
}
