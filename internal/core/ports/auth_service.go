package ports

import "context"

// LoginResult is returned to the transport layer on successful login.
type LoginResult struct {
	Token string
	Role  string
}

// AuthService authenticates username/password pairs against the fixed
// credential set and issues tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
