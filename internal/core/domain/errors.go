package domain

import "errors"

// Every request-level failure maps to exactly one of these sentinels.
// The HTTP layer translates them into status codes centrally.
var (
	// ErrTokenMissing is returned when no credential/token was presented.
	ErrTokenMissing = errors.New("token missing")

	// ErrTokenInvalid covers malformed, tampered, and expired tokens.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not match. The two cases are
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when an authenticated caller lacks the
	// required role or ownership. For status updates it also covers the
	// unknown-id case so callers cannot probe for existing ids.
	ErrForbidden = errors.New("access forbidden")

	// ErrMissingField is returned when a required input field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrTooManyAttempts is returned when a username's failed logins
	// exceed the throttle limit.
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
