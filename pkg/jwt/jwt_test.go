package jwt

import (
	"errors"
	"testing"
	"time"

	"matching-srv/pkg/scope"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	if _, err := New(Config{SecretKey: "short"}); !errors.Is(err, ErrSecretTooShort) {
		t.Errorf("New() error = %v, want ErrSecretTooShort", err)
	}
}

func TestCreateAndVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "mein-identity", TTL: time.Minute})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	token, err := m.CreateToken(scope.Payload{UserID: "user-1", Username: "brand@mein.io", Role: "brand"})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.UserID != "user-1" || got.Role != "brand" || got.Username != "brand@mein.io" {
		t.Errorf("payload mismatch: got %+v", got)
	}
	if got.TokenID == "" || got.ExpiresAt == 0 {
		t.Errorf("registered claims missing: got %+v", got)
	}

	t.Run("wrong issuer rejected", func(t *testing.T) {
		other, _ := New(Config{SecretKey: testSecret, Issuer: "someone-else"})
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other, _ := New(Config{SecretKey: testSecret + "x", Issuer: "mein-identity"})
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
		}
	})
	t.Run("audience enforced when configured", func(t *testing.T) {
		matching, _ := New(Config{SecretKey: testSecret, Issuer: "mein-identity", Audience: []string{"matching-srv"}, TTL: time.Minute})
		billing, _ := New(Config{SecretKey: testSecret, Issuer: "mein-identity", Audience: []string{"billing-srv"}, TTL: time.Minute})

		own, err := matching.CreateToken(scope.Payload{UserID: "user-1", Role: "brand"})
		if err != nil {
			t.Fatalf("CreateToken() error = %v", err)
		}
		if _, err := matching.Verify(own); err != nil {
			t.Errorf("Verify(own audience) error mismatch: got %v, want nil", err)
		}

		foreign, err := billing.CreateToken(scope.Payload{UserID: "user-1", Role: "brand"})
		if err != nil {
			t.Fatalf("CreateToken() error = %v", err)
		}
		if _, err := matching.Verify(foreign); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(foreign audience) error mismatch: got %v, want %v", err, ErrInvalidToken)
		}
		if _, err := matching.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(no audience) error mismatch: got %v, want %v", err, ErrInvalidToken)
		}
	})
}
