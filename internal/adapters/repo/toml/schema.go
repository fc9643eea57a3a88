package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// sessionSchema holds no secrets; tokens live in the secret stores.
type sessionSchema struct {
	Profile     string `toml:"profile"`
	BaseURL     string `toml:"base_url"`
	UserID      int    `toml:"user_id"`
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	Role        string `toml:"role"`
	LoggedInAt  string `toml:"logged_in_at,omitempty"`
	RefreshedAt string `toml:"refreshed_at,omitempty"`
}
