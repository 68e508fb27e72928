package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"
)

// randReader is the random source used for key generation and OAEP padding.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// reader returns the active random source.
func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// GenerateKey creates a fresh RSA-2048 private key (e=65537) suitable for
// OAEP with SHA-256. The public key is embedded in the private key.
func GenerateKey() (*rsa.PrivateKey, error) {
	priv, err := rsa.GenerateKey(reader(), ModulusBits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA-%d key: %w", ModulusBits, err)
	}
	return priv, nil
}

// MarshalPublicKey serializes an RSA public key to SPKI DER.
func MarshalPublicKey(pub *rsa.PublicKey) ([]byte, error) {
	if pub == nil || pub.N == nil {
		return nil, ErrNotRSAPublicKey
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshal SPKI: %w", err)
	}
	return der, nil
}

// MarshalPrivateKey serializes an RSA private key to PKCS#8 DER.
func MarshalPrivateKey(priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil || priv.D == nil {
		return nil, ErrNotRSAPrivateKey
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal PKCS#8: %w", err)
	}
	return der, nil
}

// ParsePublicKey reconstructs an RSA public key from SPKI DER bytes.
// Returns ErrNotRSAPublicKey if the structure describes a non-RSA key.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse SPKI: %w", err)
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotRSAPublicKey, key)
	}
	return pub, nil
}

// ParsePrivateKey reconstructs an RSA private key from PKCS#8 DER bytes.
// Returns ErrNotRSAPrivateKey if the structure describes a non-RSA key.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse PKCS#8: %w", err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotRSAPrivateKey, key)
	}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("validate private key: %w", err)
	}
	return priv, nil
}

// CheckPair verifies that priv is the private half of pub by comparing
// the public key embedded in the private key. No trial encryption is
// needed.
func CheckPair(pub *rsa.PublicKey, priv *rsa.PrivateKey) error {
	if pub == nil || priv == nil {
		return ErrMismatchedKeyPair
	}
	if !priv.PublicKey.Equal(pub) {
		return ErrMismatchedKeyPair
	}
	return nil
}
