package utils

import (
	"errors"
	"testing"
	"time"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)
	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the password")
	}
	if err := h.Compare(hash, "s3cret-pass"); err != nil {
		t.Fatalf("compare correct password: %v", err)
	}
	if err := h.Compare(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestTokenManagerRoundTrip(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", time.Minute)
	token, expires, err := m.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Fatalf("expiry %v should be in the future", expires)
	}
	id, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("user id = %d, want 42", id)
	}
}

func TestTokenManagerRejects(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", time.Minute)
	token, _, err := m.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewTokenManager("fedcba9876543210", time.Minute)
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign secret: expected ErrInvalidToken, got %v", err)
	}

	expired := NewTokenManager("0123456789abcdef", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, _, err := expired.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m.Parse(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: expected ErrInvalidToken, got %v", err)
	}

	if _, err := m.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage: expected ErrInvalidToken, got %v", err)
	}
}
