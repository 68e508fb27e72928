package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes a fresh root command with the given args and returns
// its combined stdout.
func runCommand(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v\noutput: %s", args, err, out.String())
	}
	return out.String()
}

func TestKeygenEncryptDecrypt_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "testkey")

	runCommand(t, "", "keygen", "--out", prefix)

	pubPath := prefix + ".pub"
	privPath := prefix + ".key"

	if _, err := os.Stat(pubPath); err != nil {
		t.Fatalf("public key file not written: %v", err)
	}
	info, err := os.Stat(privPath)
	if err != nil {
		t.Fatalf("private key file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("private key permissions = %o, want 600", perm)
	}

	ciphertext := strings.TrimSpace(runCommand(t, "",
		"encrypt", "--public-key", pubPath, "round trip via CLI"))
	if ciphertext == "" || ciphertext == "round trip via CLI" {
		t.Fatalf("unexpected ciphertext output: %q", ciphertext)
	}

	plaintext := strings.TrimSpace(runCommand(t, "",
		"decrypt", "--private-key", privPath, ciphertext))
	if plaintext != "round trip via CLI" {
		t.Errorf("decrypt output = %q, want %q", plaintext, "round trip via CLI")
	}
}

func TestEncrypt_FromStdin(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "stdinkey")

	runCommand(t, "", "keygen", "--out", prefix)

	ciphertext := strings.TrimSpace(runCommand(t, "from stdin\n",
		"encrypt", "--public-key", prefix+".pub"))

	plaintext := strings.TrimSpace(runCommand(t, "",
		"decrypt", "--private-key", prefix+".key", ciphertext))
	if plaintext != "from stdin" {
		t.Errorf("decrypt output = %q, want %q", plaintext, "from stdin")
	}
}

func TestEncrypt_MissingKeyFile(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"encrypt", "--public-key", filepath.Join(t.TempDir(), "missing.pub"), "text"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing key file, got nil")
	}
}

func TestFailureKind_Unknown(t *testing.T) {
	if got := failureKind(os.ErrNotExist); got != "io" {
		t.Errorf("failureKind(os.ErrNotExist) = %q, want %q", got, "io")
	}
}
