package encrypter

import (
	"errors"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	if _, err := New("short"); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidKeyLength)
	}
	if _, err := New(testKey); err != nil {
		t.Errorf("New: %v", err)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	e, err := New(testKey)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sealed, err := e.Encrypt("campaign-service:s3cret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := e.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != "campaign-service:s3cret" {
		t.Errorf("Decrypt mismatch: got %q", got)
	}

	other, _ := New("fedcba9876543210fedcba9876543210")
	if _, err := other.Decrypt(sealed); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("wrong key error mismatch: got %v, want %v", err, ErrDecryptionFailed)
	}
	if _, err := e.Decrypt("AAAA"); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("short error mismatch: got %v, want %v", err, ErrCiphertextTooShort)
	}
}

func TestSecretHash(t *testing.T) {
	e, _ := New(testKey)
	hash, err := e.HashSecret("s3cret")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	if !e.CompareSecret("s3cret", hash) {
		t.Errorf("CompareSecret should accept the original secret")
	}
	if e.CompareSecret("other", hash) {
		t.Errorf("CompareSecret should reject a different secret")
	}
}
