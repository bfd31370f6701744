package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the Sophia tools.
type Config struct {
	API    APIConfig
	Auth   AuthConfig
	Server ServerConfig
	Redis  RedisConfig
}

type APIConfig struct {
	// Host is the inference gateway base, e.g. https://inference-api.alcf.anl.gov.
	Host string
	// ResourcePath is the path prefix all gateway routes hang off.
	ResourcePath string
	Timeout      time.Duration
}

type AuthConfig struct {
	// TokenFile is checked before the ALCF_ACCESS_TOKEN environment variable.
	TokenFile string
	TokenEnv  string
}

type ServerConfig struct {
	Port int
}

type RedisConfig struct {
	// URL is optional; serve mode runs uncached when it is empty.
	URL      string
	CacheTTL time.Duration
}

// Load reads configuration from environment variables and returns a validated Config.
// Returns an error with a descriptive message if any value is invalid.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			Host:         envString("SOPHIA_API_HOST", "https://inference-api.alcf.anl.gov"),
			ResourcePath: "/resource_server",
			Timeout:      envDuration("SOPHIA_HTTP_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			TokenFile: envString("SOPHIA_TOKEN_FILE", defaultTokenFile()),
			TokenEnv:  "ALCF_ACCESS_TOKEN",
		},
		Server: ServerConfig{
			Port: envInt("SOPHIA_PORT", 8080),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("SOPHIA_REDIS_URL"),
			CacheTTL: envDuration("SOPHIA_CACHE_TTL", 15*time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.API.Host, "http://") && !strings.HasPrefix(c.API.Host, "https://") {
		return fmt.Errorf("SOPHIA_API_HOST must start with http:// or https://, got %q", c.API.Host)
	}
	if strings.HasSuffix(c.API.Host, "/") {
		return fmt.Errorf("SOPHIA_API_HOST must not end with a slash, got %q", c.API.Host)
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("SOPHIA_HTTP_TIMEOUT must be positive, got %s", c.API.Timeout)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SOPHIA_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sophia", "access_token")
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
