package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	authUsersEnv = "AUTH_USERS"

	defaultAuthUsers = "admin:admin123:admin,viewer:viewer123:viewer"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

type Account struct {
	Password string
	Role     Role
}

type AuthConfig struct {
	Accounts map[string]Account
}

func LoadAuthConfig() (*AuthConfig, error) {
	raw := os.Getenv(authUsersEnv)
	if raw == "" {
		raw = defaultAuthUsers
	}
	return ParseAuthUsers(raw)
}

// ParseAuthUsers parses a comma separated list of user:password:role triples.
func ParseAuthUsers(raw string) (*AuthConfig, error) {
	accounts := make(map[string]Account)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAuthUsers, entry)
		}

		role := Role(strings.ToLower(parts[2]))
		if role != RoleAdmin && role != RoleViewer {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidAuthUsers, parts[2])
		}

		accounts[parts[0]] = Account{Password: parts[1], Role: role}
	}

	if len(accounts) == 0 {
		return nil, ErrInvalidAuthUsers
	}

	return &AuthConfig{Accounts: accounts}, nil
}
