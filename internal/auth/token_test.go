package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret")

	token, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	username, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if username != "u1" {
		t.Errorf("Verify() subject = %q, want %q", username, "u1")
	}
}

func TestVerifyExpired(t *testing.T) {
	issuer := IssuerWithTTL("test-secret", -time.Minute)

	token, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	_, err = issuer.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	issuer := NewIssuer("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-a").Issue("u1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := NewIssuer("secret-b").Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() with wrong secret error = %v, want ErrTokenInvalid", err)
	}
}
