package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCredStore struct {
	creds map[string]domain.Credential
}

func newStubCredStore(t *testing.T, users map[string]struct{ password, role string }) *stubCredStore {
	t.Helper()
	creds := make(map[string]domain.Credential, len(users))
	for name, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		creds[name] = domain.Credential{Username: name, PasswordHash: string(hash), Role: u.role}
	}
	return &stubCredStore{creds: creds}
}

func (s *stubCredStore) Lookup(username string) (domain.Credential, bool) {
	cred, ok := s.creds[username]
	return cred, ok
}

type stubThrottle struct {
	locked   bool
	checkErr error
	failures []string
	resets   []string
}

func (s *stubThrottle) TooMany(_ context.Context, username string) (bool, error) {
	return s.locked, s.checkErr
}

func (s *stubThrottle) NoteFailure(_ context.Context, username string) error {
	s.failures = append(s.failures, username)
	return nil
}

func (s *stubThrottle) Reset(_ context.Context, username string) error {
	s.resets = append(s.resets, username)
	return nil
}

func newAuthSvc(t *testing.T, throttle *stubThrottle) (*AuthService, *TokenService) {
	t.Helper()
	creds := newStubCredStore(t, map[string]struct{ password, role string }{
		"aman":     {"admin123", domain.RoleAdmin},
		"builder1": {"builder123", domain.RoleBuilder},
	})
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(creds, tokens, throttle, zerolog.Nop()), tokens
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	throttle := &stubThrottle{}
	svc, tokens := newAuthSvc(t, throttle)

	result, err := svc.Login(context.Background(), "aman", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", result.Role)
	}

	caller, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if caller.Username != "aman" || caller.Role != domain.RoleAdmin {
		t.Fatalf("token carries wrong identity: %+v", caller)
	}

	if len(throttle.resets) != 1 || throttle.resets[0] != "aman" {
		t.Errorf("expected throttle reset for aman, got %v", throttle.resets)
	}
	if len(throttle.failures) != 0 {
		t.Errorf("expected no failures recorded, got %v", throttle.failures)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	throttle := &stubThrottle{}
	svc, _ := newAuthSvc(t, throttle)

	if _, err := svc.Login(context.Background(), "aman", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(throttle.failures) != 1 || throttle.failures[0] != "aman" {
		t.Errorf("expected one failure recorded for aman, got %v", throttle.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	throttle := &stubThrottle{}
	svc, _ := newAuthSvc(t, throttle)

	// Unknown user and wrong password must be indistinguishable.
	if _, err := svc.Login(context.Background(), "ghost", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	throttle := &stubThrottle{}
	svc, _ := newAuthSvc(t, throttle)

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "aman", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	throttle := &stubThrottle{locked: true}
	svc, _ := newAuthSvc(t, throttle)

	if _, err := svc.Login(context.Background(), "aman", "admin123"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ThrottleErrorDegradesOpen(t *testing.T) {
	throttle := &stubThrottle{checkErr: context.DeadlineExceeded}
	svc, _ := newAuthSvc(t, throttle)

	result, err := svc.Login(context.Background(), "builder1", "builder123")
	if err != nil {
		t.Fatalf("expected login to proceed despite throttle error, got %v", err)
	}
	if result.Role != domain.RoleBuilder {
		t.Fatalf("expected role builder, got %s", result.Role)
	}
}
