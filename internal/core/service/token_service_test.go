package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghub/blog-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	sub, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("expected subject alice, got %q", sub)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	// Build an already-expired token by hand.
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": "alice",
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if kind := TokenErrorKind(err); kind != "expired" {
		t.Fatalf("expected expired, got %q", kind)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Validate(tampered)
	if err == nil {
		t.Fatalf("expected error for tampered token")
	}
	if kind := TokenErrorKind(err); kind != "signature_invalid" {
		t.Fatalf("expected signature_invalid, got %q", kind)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
	if kind := TokenErrorKind(err); kind != "malformed" {
		t.Fatalf("expected malformed, got %q", kind)
	}
}

func TestTokenService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// alg=none token with a valid-looking shape.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Validate(unsigned); err == nil {
		t.Fatalf("expected error for alg=none token")
	}
}

func TestTokenService_MatchesPrincipal(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := testUser()

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if !svc.MatchesPrincipal(token, user) {
		t.Fatalf("expected token to match its own user")
	}
	if svc.MatchesPrincipal(token, &domain.User{Username: "mallory"}) {
		t.Fatalf("token must not match a different user")
	}
	if svc.MatchesPrincipal(token, nil) {
		t.Fatalf("token must not match a nil user")
	}
}
