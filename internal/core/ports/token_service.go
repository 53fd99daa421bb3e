package ports

import "github.com/labos-hq/labos-backend/internal/core/domain"

// TokenIssuer produces signed, time-limited identity tokens.
type TokenIssuer interface {
	Issue(username, role string) (string, error)
}

// TokenVerifier validates a presented token and recovers the caller
// identity embedded in it.
type TokenVerifier interface {
	// Verify returns domain.ErrTokenMissing for an empty token and
	// domain.ErrTokenInvalid for malformed, tampered, or expired ones.
	Verify(token string) (domain.Caller, error)
}
