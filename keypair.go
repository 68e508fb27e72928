package sealbox

import (
	"crypto/rsa"
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// KeyPair holds an RSA public/private key pair bound to the fixed
// RSA-OAEP-2048/SHA-256 suite. Pairs produced by [Generate] always carry
// both halves; pairs built for one-way use (encrypt-only hosts) may leave
// Private nil.
type KeyPair struct {
	// Public is the RSA public key used for encryption.
	Public *rsa.PublicKey
	// Private is the RSA private key used for decryption.
	Private *rsa.PrivateKey
}

// ExportedKeyPair contains the transport encoding of a key pair: each key
// serialized to its standard binary form (SPKI for public, PKCS#8 for
// private) and wrapped in standard base64 with padding. No framing, no
// version tag; this is the exact wire format existing deployments expect.
// WARNING: PrivateKey is private key material - handle securely.
type ExportedKeyPair struct {
	// PublicKey is the SPKI-DER public key, base64-encoded.
	PublicKey string `json:"publicKey"`
	// PrivateKey is the PKCS#8-DER private key, base64-encoded.
	PrivateKey string `json:"privateKey"`
}

// Export serializes the key pair for transport or storage.
// Pure function of the pair; fails with [ErrKeyExport] if either key
// cannot be serialized (not applicable to pairs produced by [Generate]).
func (kp *KeyPair) Export() (*ExportedKeyPair, error) {
	pubDER, err := crypto.MarshalPublicKey(kp.Public)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %v", ErrKeyExport, err)
	}

	privDER, err := crypto.MarshalPrivateKey(kp.Private)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %v", ErrKeyExport, err)
	}

	return &ExportedKeyPair{
		PublicKey:  crypto.ToBase64(pubDER),
		PrivateKey: crypto.ToBase64(privDER),
	}, nil
}

// ImportKeyPair reconstructs a key pair from its transport encoding.
//
// Each string is base64-decoded and parsed from its standard binary form
// (SPKI for public, PKCS#8 for private). Any failure - invalid base64,
// malformed DER, or a non-RSA key - is reported as a [KeyImportError]
// matching [ErrKeyImport].
//
// By default no cross-check is performed that the two keys are
// mathematically paired; supplying mismatched halves yields a pair whose
// Decrypt will fail on ciphertexts produced by its own Encrypt. Pass
// [WithPairCheck] to reject mismatched pairs at import time.
func ImportKeyPair(publicKey, privateKey string, opts ...ImportOption) (*KeyPair, error) {
	cfg := &importConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	pubDER, err := crypto.FromBase64(publicKey)
	if err != nil {
		return nil, wrapImportError("publicKey", err)
	}
	pub, err := crypto.ParsePublicKey(pubDER)
	if err != nil {
		return nil, wrapImportError("publicKey", err)
	}

	privDER, err := crypto.FromBase64(privateKey)
	if err != nil {
		return nil, wrapImportError("privateKey", err)
	}
	priv, err := crypto.ParsePrivateKey(privDER)
	if err != nil {
		return nil, wrapImportError("privateKey", err)
	}

	if cfg.pairCheck {
		if err := crypto.CheckPair(pub, priv); err != nil {
			return nil, wrapImportError("privateKey", err)
		}
	}

	return &KeyPair{Public: pub, Private: priv}, nil
}

// ImportPublicKey reconstructs just the public half from its transport
// encoding, for hosts that only ever encrypt.
func ImportPublicKey(publicKey string) (*KeyPair, error) {
	pubDER, err := crypto.FromBase64(publicKey)
	if err != nil {
		return nil, wrapImportError("publicKey", err)
	}
	pub, err := crypto.ParsePublicKey(pubDER)
	if err != nil {
		return nil, wrapImportError("publicKey", err)
	}
	return &KeyPair{Public: pub}, nil
}

// ImportPrivateKey reconstructs a pair from just the private half; the
// public key is recovered from the private key material.
func ImportPrivateKey(privateKey string) (*KeyPair, error) {
	privDER, err := crypto.FromBase64(privateKey)
	if err != nil {
		return nil, wrapImportError("privateKey", err)
	}
	priv, err := crypto.ParsePrivateKey(privDER)
	if err != nil {
		return nil, wrapImportError("privateKey", err)
	}
	return &KeyPair{Public: &priv.PublicKey, Private: priv}, nil
}
