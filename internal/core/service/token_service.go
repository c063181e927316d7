package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// TokenService issues and validates HS256-signed bearer tokens. Stateless:
// every method is a pure function of its input, the secret, and the clock.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token with the user's username as subject.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the token's subject.
func (s *TokenService) Validate(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		return "", fmt.Errorf("validate token: %w", err)
	}
	if !tkn.Valid {
		return "", fmt.Errorf("validate token: %w", jwt.ErrTokenUnverifiable)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("validate token: %w", jwt.ErrTokenInvalidClaims)
	}
	return sub, nil
}

// MatchesPrincipal reports whether the token is still valid and its subject
// names the resolved user. Used as a final re-check after identity lookup.
func (s *TokenService) MatchesPrincipal(token string, user *domain.User) bool {
	if user == nil {
		return false
	}
	sub, err := s.Validate(token)
	return err == nil && sub == user.Username
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}

// TokenErrorKind maps a Validate failure to a short category used as a log
// field and metric label. Every kind is handled identically by callers; the
// category exists purely for observability.
func TokenErrorKind(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "unverifiable"
	default:
		return "invalid"
	}
}
