package domain

const (
	RoleAdmin   = "admin"
	RoleBuilder = "builder"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleBuilder
}

// Credential is one entry in the fixed user set loaded at startup.
// The password hash is produced at load time; plaintext never leaves
// the seed loader.
type Credential struct {
	Username     string
	PasswordHash string
	Role         string
}

// Caller is the authenticated identity derived from a verified token.
// It is established once per request by the auth middleware and passed
// explicitly to every service operation that needs it.
type Caller struct {
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
