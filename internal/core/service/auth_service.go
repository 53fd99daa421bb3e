package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/labos-hq/labos-backend/internal/core/domain"
	"github.com/labos-hq/labos-backend/internal/core/ports"
)

// LoginThrottle tracks failed login attempts per username (Redis-backed
// in production). All methods are advisory: when the throttle itself
// errors, login proceeds rather than locking everyone out.
type LoginThrottle interface {
	TooMany(ctx context.Context, username string) (bool, error)
	NoteFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements login against the fixed credential set.
type AuthService struct {
	creds    ports.CredentialStore
	tokens   ports.TokenIssuer
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(creds ports.CredentialStore, tokens ports.TokenIssuer, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{creds: creds, tokens: tokens, throttle: throttle, log: log}
}

// Login verifies username/password and returns a fresh token plus the
// user's role. Unknown usernames and wrong passwords are reported
// identically as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	locked, err := s.throttle.TooMany(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
	} else if locked {
		s.log.Info().Str("username", username).Msg("login throttled")
		return nil, domain.ErrTooManyAttempts
	}

	cred, ok := s.creds.Lookup(username)
	if !ok || bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		if noteErr := s.throttle.NoteFailure(ctx, username); noteErr != nil {
			s.log.Warn().Err(noteErr).Str("username", username).Msg("failed to record login failure")
		}
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(cred.Username, cred.Role)
	if err != nil {
		return nil, err
	}

	if resetErr := s.throttle.Reset(ctx, username); resetErr != nil {
		s.log.Warn().Err(resetErr).Str("username", username).Msg("failed to reset login throttle")
	}

	s.log.Info().Str("username", username).Str("role", cred.Role).Msg("login succeeded")
	return &ports.LoginResult{Token: token, Role: cred.Role}, nil
}
