// Package credentials loads the fixed user set the process authenticates
// against. Users are declared in a YAML seed file; the set is immutable
// for the process lifetime.
package credentials

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// SeedUser is one entry of the seed file. The password is plaintext in
// the file and hashed immediately on load; only the hash is retained.
type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type seedFile struct {
	Users []SeedUser `yaml:"users"`
}

// Store is the in-memory credential set. Read-only after construction.
type Store struct {
	byName map[string]domain.Credential
}

// Load reads and parses the seed file at path and builds a Store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return New(sf.Users)
}

// New builds a Store from seed entries, bcrypt-hashing each password.
func New(users []SeedUser) (*Store, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("credentials: no users configured")
	}

	byName := make(map[string]domain.Credential, len(users))
	for _, u := range users {
		if u.Username == "" || u.Password == "" {
			return nil, fmt.Errorf("credentials: user entry missing username or password")
		}
		if !domain.ValidRole(u.Role) {
			return nil, fmt.Errorf("credentials: user %q has unknown role %q", u.Username, u.Role)
		}
		if _, dup := byName[u.Username]; dup {
			return nil, fmt.Errorf("credentials: duplicate user %q", u.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("credentials: hash password for %q: %w", u.Username, err)
		}
		byName[u.Username] = domain.Credential{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
	}
	return &Store{byName: byName}, nil
}

// Lookup returns the credential for username when it exists.
func (s *Store) Lookup(username string) (domain.Credential, bool) {
	cred, ok := s.byName[username]
	return cred, ok
}
