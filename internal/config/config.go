package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. It is loaded once at
// startup and handed to each collaborator; nothing reads the environment
// after that.
type Config struct {
	Database struct {
		Driver string `yaml:"driver"` // "sqlite3" or "postgres"
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Auth AuthConfig `yaml:"auth"`

	Twilio struct {
		AccountSID string `yaml:"account_sid"`
		AuthToken  string `yaml:"auth_token"`
		From       string `yaml:"from"`
	} `yaml:"twilio"`

	Uploads struct {
		Dir string `yaml:"dir"`
	} `yaml:"uploads"`

	MetricsConfig struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// AuthConfig holds the token-signing settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// UnmarshalYAML decodes token_ttl from duration strings like "24h".
func (a *AuthConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		JWTSecret string `yaml:"jwt_secret"`
		TokenTTL  string `yaml:"token_ttl"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	a.JWTSecret = raw.JWTSecret
	if raw.TokenTTL != "" {
		d, err := time.ParseDuration(raw.TokenTTL)
		if err != nil {
			return fmt.Errorf("parse token_ttl: %w", err)
		}
		a.TokenTTL = d
	}
	return nil
}

// Load reads the yaml configuration file at path, applies environment
// overrides and validates the result. A missing file is not an error; the
// environment alone can configure the process.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_AUTH_SECRET is not set")
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Database.Driver = "sqlite3"
	cfg.Database.DSN = "lucito.db"
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Uploads.Dir = "images"
	cfg.MetricsConfig.Enabled = true
	cfg.MetricsConfig.Path = "/metrics"
	return cfg
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.Database.Driver, "DATABASE_DRIVER")
	setIfPresent(&cfg.Database.DSN, "DATABASE_DSN")
	setIfPresent(&cfg.Auth.JWTSecret, "JWT_AUTH_SECRET")
	setIfPresent(&cfg.Twilio.AccountSID, "TWILIO_ACCOUNT_SID")
	setIfPresent(&cfg.Twilio.AuthToken, "TWILIO_AUTH_TOKEN")
	setIfPresent(&cfg.Twilio.From, "TWILIO_FROM")
	setIfPresent(&cfg.Uploads.Dir, "UPLOAD_DIR")
}

func setIfPresent(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// String returns a printable representation with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{db: %s %s, uploads: %s, auth: ***}",
		c.Database.Driver, c.Database.DSN, c.Uploads.Dir)
}
