package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hader239/voice-assistant/internal/config"
)

const usersJSON = `{
  "users": {
    "key-alice": {
      "name": "alice",
      "notion_database_id": "db-alice",
      "notion_api_key": "token-alice"
    },
    "key-bob": {
      "name": "bob",
      "notion_database_id": "db-bob",
      "notion_api_key": "token-bob"
    }
  }
}`

func writeUsersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLookupFromFile(t *testing.T) {
	store := NewStore(config.UsersConfig{File: writeUsersFile(t, usersJSON)})

	user, ok := store.Lookup("key-alice")
	require.True(t, ok)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "db-alice", user.NotionDatabaseID)
	assert.Equal(t, "token-alice", user.NotionAPIKey)
}

func TestLookupFromBlob(t *testing.T) {
	store := NewStore(config.UsersConfig{Blob: usersJSON})

	user, ok := store.Lookup("key-bob")
	require.True(t, ok)
	assert.Equal(t, "bob", user.Name)
}

func TestLookupUnknownKey(t *testing.T) {
	store := NewStore(config.UsersConfig{Blob: usersJSON})

	user, ok := store.Lookup("key-mallory")
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestLookupMissingFile(t *testing.T) {
	store := NewStore(config.UsersConfig{File: filepath.Join(t.TempDir(), "absent.json")})

	_, ok := store.Lookup("key-alice")
	assert.False(t, ok)
}

func TestLookupInvalidJSON(t *testing.T) {
	store := NewStore(config.UsersConfig{Blob: "not json"})

	_, ok := store.Lookup("key-alice")
	assert.False(t, ok)
}

// The source is re-read on every lookup, so edits apply without a restart.
func TestLookupReloadsPerCall(t *testing.T) {
	path := writeUsersFile(t, usersJSON)
	store := NewStore(config.UsersConfig{File: path})

	_, ok := store.Lookup("key-carol")
	assert.False(t, ok)

	updated := `{"users":{"key-carol":{"name":"carol","notion_database_id":"db-carol","notion_api_key":"token-carol"}}}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	user, ok := store.Lookup("key-carol")
	require.True(t, ok)
	assert.Equal(t, "carol", user.Name)
}
