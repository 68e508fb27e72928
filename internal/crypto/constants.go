package crypto

import "crypto/sha256"

const (
	// ModulusBits is the RSA modulus size in bits.
	ModulusBits = 2048
	// ModulusSize is the RSA modulus size in bytes. Every OAEP ciphertext
	// block is exactly this long.
	ModulusSize = ModulusBits / 8
	// PublicExponent is the fixed RSA public exponent (F4).
	PublicExponent = 65537

	// OAEPHashSize is the output size of the OAEP digest (SHA-256),
	// used both as the main hash and inside MGF1.
	OAEPHashSize = sha256.Size

	// MaxPlaintextSize is the largest plaintext, in bytes, that a single
	// OAEP block can carry: modulus - 2*hash - 2 = 190 for this suite.
	MaxPlaintextSize = ModulusSize - 2*OAEPHashSize - 2
)

// Ciphersuite is the canonical string representation of the algorithm suite.
var Ciphersuite = "RSA-OAEP-2048:SHA-256:MGF1-SHA-256"
