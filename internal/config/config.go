package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Port   int    `envconfig:"APP_PORT" default:"8080"`
	OpenAI OpenAIConfig
	Notion NotionConfig
	Users  UsersConfig
}

// OpenAI classification configuration
type OpenAIConfig struct {
	APIKey      string        `envconfig:"OPENAI_API_KEY" required:"true"`
	Model       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout     time.Duration `envconfig:"OPENAI_TIMEOUT" default:"30s"`
	MaxTokens   int           `envconfig:"OPENAI_MAX_TOKENS" default:"500"`
	Temperature float32       `envconfig:"OPENAI_TEMPERATURE" default:"0"`
}

// Notion persistence configuration. Credentials are per user and come from
// the users file, not from here.
type NotionConfig struct {
	Timeout time.Duration `envconfig:"NOTION_TIMEOUT" default:"30s"`
}

// users source configuration: either an inline JSON blob or a file path.
// The blob wins when both are set.
type UsersConfig struct {
	Blob string `envconfig:"USERS_JSON"`
	File string `envconfig:"USERS_FILE" default:"users.json"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.OpenAI.Model == "" {
		return fmt.Errorf("OPENAI_MODEL must not be empty")
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive")
	}
	if c.Notion.Timeout <= 0 {
		return fmt.Errorf("NOTION_TIMEOUT must be positive")
	}
	if c.Users.Blob == "" && c.Users.File == "" {
		return fmt.Errorf("either USERS_JSON or USERS_FILE must be set")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, OpenAI.Model=%s, OpenAI.Timeout=%s, Notion.Timeout=%s, Users.File=%s}",
		c.Env, c.Port, c.OpenAI.Model, c.OpenAI.Timeout, c.Notion.Timeout, c.Users.File)
}
