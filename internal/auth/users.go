package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hader239/voice-assistant/internal/config"
	"github.com/hader239/voice-assistant/pkg/model"
)

// Store resolves API keys to user configuration from a flat JSON source:
// either an inline blob (USERS_JSON) or a file on disk. The source is
// re-read on every lookup so user changes take effect without a restart.
type Store struct {
	blob string
	file string
}

type usersFile struct {
	Users map[string]model.UserConfig `json:"users"`
}

func NewStore(cfg config.UsersConfig) *Store {
	return &Store{
		blob: cfg.Blob,
		file: cfg.File,
	}
}

// Lookup returns the user configuration for an API key, or false when the
// key is unknown or the source cannot be read.
func (s *Store) Lookup(apiKey string) (*model.UserConfig, bool) {
	users, err := s.load()
	if err != nil {
		return nil, false
	}

	user, ok := users.Users[apiKey]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (s *Store) load() (*usersFile, error) {
	raw := []byte(s.blob)
	if len(raw) == 0 {
		b, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read users file: %w", err)
		}
		raw = b
	}

	var users usersFile
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if users.Users == nil {
		users.Users = map[string]model.UserConfig{}
	}
	return &users, nil
}
