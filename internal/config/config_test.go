package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 30*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, "users.json", cfg.Users.File)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadMissingAPIKey(t *testing.T) {
	old, had := os.LookupEnv("OPENAI_API_KEY")
	require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("OPENAI_API_KEY", old)
		}
	})

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsBadEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}
