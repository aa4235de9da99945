package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	devSessionSecret = "hostel-portal-dev-secret"
)

// AppConfig is the configuration the process started with.
var AppConfig *Config

// Config is the portal configuration: YAML file values overridden by
// environment variables named in the env tags.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Backend struct {
		BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL"`
		Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT"`
	} `yaml:"backend"`

	Session struct {
		Secret       string        `yaml:"secret" env:"SESSION_SECRET"`
		TTL          time.Duration `yaml:"ttl" env:"SESSION_TTL"`
		SecureCookie bool          `yaml:"secure_cookie" env:"SESSION_SECURE_COOKIE"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
	} `yaml:"logging"`

	Templates struct {
		Reload bool `yaml:"reload" env:"TEMPLATES_RELOAD"`
	} `yaml:"templates"`
}

// Load reads .env (if present), then the YAML file at path (if present), then
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if cfg.Session.Secret == "" && cfg.IsDevelopment() {
		cfg.Session.Secret = devSessionSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Mode = ModeDevelopment
	cfg.Backend.Timeout = 10 * time.Second
	cfg.Session.TTL = 24 * time.Hour
	cfg.Logging.Level = "info"
	cfg.Logging.Pretty = true
	return cfg
}

// Validate checks required values.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("backend base URL is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base URL %q must be absolute", c.Backend.BaseURL)
	}
	if c.Backend.Timeout <= 0 {
		return errors.New("backend timeout must be positive")
	}
	if c.Session.Secret == "" {
		return errors.New("session secret is required")
	}
	if !c.IsDevelopment() && c.Session.Secret == devSessionSecret {
		return errors.New("session secret must be changed outside development")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Mode, ModeDevelopment)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Server.Port, ":") {
		return c.Server.Port
	}
	return ":" + c.Server.Port
}
