// Package crypto provides the cryptographic primitives behind sealbox.
// It implements RSA-OAEP public-key encryption and the standard key
// serialization formats used on the wire.
//
// # Algorithm Suite
//
//   - RSA-OAEP with a 2048-bit modulus and public exponent 65537 (F4).
//     OAEP uses SHA-256 as both the main digest and the MGF1 mask
//     generation function, with an empty label. These parameters are
//     fixed; there is no negotiation.
//
//   - SPKI (SubjectPublicKeyInfo) DER for public keys and PKCS#8 DER for
//     private keys, each wrapped in standard base64 with padding
//     (RFC 4648 §4) for transport.
//
// # Capacity
//
// A single OAEP block carries at most ModulusSize - 2*OAEPHashSize - 2
// bytes of plaintext: 190 bytes for this suite. Longer inputs are
// rejected with [ErrPlaintextTooLarge] before any RSA operation runs;
// chunking is the caller's problem.
//
// # Security Notes
//
// OAEP is randomized. Encrypting the same plaintext twice produces two
// different ciphertexts; both decrypt to the original. This is required
// for semantic security and must not be treated as a bug.
//
// Decryption failures are collapsed into the single opaque
// [ErrDecryptionFailed]. Wrong key, corrupted ciphertext, and mismatched
// OAEP parameters are indistinguishable by design: exposing the cause
// would build a padding-oracle distinguisher into the API.
//
// All randomness (key generation and OAEP padding) comes from
// crypto/rand unless overridden for tests.
//
// Keep private keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package crypto
