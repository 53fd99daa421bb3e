package ports

import "github.com/labos-hq/labos-backend/internal/core/domain"

// CredentialStore is the fixed, read-only user set loaded at startup.
type CredentialStore interface {
	// Lookup returns the credential for username when it exists.
	Lookup(username string) (domain.Credential, bool)
}
