package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

const defaultTokenTTL = 8 * time.Hour

// tokenClaims is the JWT payload: who the caller is and what they may do.
type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed identity tokens.
// The signing secret is injected once at construction; losing it to an
// attacker invalidates the trust guarantees of every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding username, role, and an expiry
// of now + ttl.
func (s *TokenService) Issue(username, role string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes and validates token, returning the embedded caller
// identity. An empty token yields domain.ErrTokenMissing; signature,
// format, algorithm, and expiry failures all yield domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (domain.Caller, error) {
	if token == "" {
		return domain.Caller{}, domain.ErrTokenMissing
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Caller{}, domain.ErrTokenInvalid
	}

	return domain.Caller{Username: claims.Username, Role: claims.Role}, nil
}
