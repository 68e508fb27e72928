package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncryptDecryptOAEP(t *testing.T) {
	priv := testKey(t)

	plaintext := []byte("attack at dawn")

	ciphertext, err := EncryptOAEP(&priv.PublicKey, plaintext)
	if err != nil {
		t.Fatalf("EncryptOAEP() error = %v", err)
	}

	if len(ciphertext) != ModulusSize {
		t.Errorf("ciphertext size = %d, want %d", len(ciphertext), ModulusSize)
	}

	decrypted, err := DecryptOAEP(priv, ciphertext)
	if err != nil {
		t.Fatalf("DecryptOAEP() error = %v", err)
	}

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptOAEP_Randomized(t *testing.T) {
	priv := testKey(t)

	ct1, err := EncryptOAEP(&priv.PublicKey, []byte("abc"))
	if err != nil {
		t.Fatalf("EncryptOAEP() error = %v", err)
	}
	ct2, err := EncryptOAEP(&priv.PublicKey, []byte("abc"))
	if err != nil {
		t.Fatalf("EncryptOAEP() error = %v", err)
	}

	if bytes.Equal(ct1, ct2) {
		t.Error("two encryptions of the same plaintext produced identical ciphertexts")
	}
}

func TestEncryptOAEP_CapacityBoundary(t *testing.T) {
	priv := testKey(t)

	// Exactly at capacity
	if _, err := EncryptOAEP(&priv.PublicKey, make([]byte, MaxPlaintextSize)); err != nil {
		t.Errorf("EncryptOAEP(%d bytes) error = %v, want nil", MaxPlaintextSize, err)
	}

	// One byte over
	_, err := EncryptOAEP(&priv.PublicKey, make([]byte, MaxPlaintextSize+1))
	if !errors.Is(err, ErrPlaintextTooLarge) {
		t.Errorf("expected ErrPlaintextTooLarge, got %v", err)
	}
}

func TestDecryptOAEP_Corrupted(t *testing.T) {
	priv := testKey(t)

	ciphertext, err := EncryptOAEP(&priv.PublicKey, []byte("payload"))
	if err != nil {
		t.Fatalf("EncryptOAEP() error = %v", err)
	}

	ciphertext[0] ^= 0xff

	if _, err := DecryptOAEP(priv, ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecryptOAEP_WrongKey(t *testing.T) {
	priv := testKey(t)

	other, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	ciphertext, err := EncryptOAEP(&priv.PublicKey, []byte("payload"))
	if err != nil {
		t.Fatalf("EncryptOAEP() error = %v", err)
	}

	if _, err := DecryptOAEP(other, ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecryptOAEP_WrongSize(t *testing.T) {
	priv := testKey(t)

	tests := []struct {
		name string
		ct   []byte
	}{
		{"empty", []byte{}},
		{"short", make([]byte, ModulusSize-1)},
		{"long", make([]byte, ModulusSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecryptOAEP(priv, tt.ct); !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
		})
	}
}

func TestMaxPlaintextSize(t *testing.T) {
	// 2048/8 - 2*32 - 2 per the OAEP capacity formula.
	if MaxPlaintextSize != 190 {
		t.Errorf("MaxPlaintextSize = %d, want 190", MaxPlaintextSize)
	}
}

func BenchmarkEncryptOAEP(b *testing.B) {
	priv, err := GenerateKey()
	if err != nil {
		b.Fatal(err)
	}
	plaintext := make([]byte, MaxPlaintextSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := EncryptOAEP(&priv.PublicKey, plaintext); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecryptOAEP(b *testing.B) {
	priv, err := GenerateKey()
	if err != nil {
		b.Fatal(err)
	}
	ciphertext, err := EncryptOAEP(&priv.PublicKey, make([]byte, MaxPlaintextSize))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := DecryptOAEP(priv, ciphertext); err != nil {
			b.Fatal(err)
		}
	}
}
