// Package config loads server configuration from a TOML file with
// environment variable overrides. The file is optional; a usable
// configuration can be assembled from ERPNEXT_* variables alone.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied before the file and environment are consulted.
const (
	DefaultURL       = "http://localhost:8000"
	DefaultTimeout   = 30
	DefaultRateLimit = 10.0
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ErrNoCredentials is returned by Validate when neither an API key
// pair, an access token, nor username/password credentials are set.
var ErrNoCredentials = errors.New("config: no ERPNext credentials configured")

// Log controls logger construction.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full server configuration.
type Config struct {
	// URL is the base URL of the ERPNext instance.
	URL string `toml:"url"`

	// API key/secret pair, sent as "Authorization: token key:secret".
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`

	// AccessToken authenticates via an OAuth2 bearer token instead of
	// an API key pair.
	AccessToken string `toml:"access_token"`

	// Username/Password authenticate via session login.
	Username string `toml:"username"`
	Password string `toml:"password"`

	// VerifySSL disables TLS certificate checks when false.
	VerifySSL bool `toml:"verify_ssl"`

	// TimeoutSeconds is the HTTP request timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RateLimit is the client-side request rate in requests/second.
	RateLimit float64 `toml:"rate_limit"`

	Log Log `toml:"log"`
}

// DefaultPath returns the standard config file location,
// ~/.erpnext-mcp/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".erpnext-mcp", "config.toml"), nil
}

// Load reads configuration from path, then applies ERPNEXT_*
// environment overrides. A missing file is not an error; defaults and
// the environment still apply. path may be empty to use DefaultPath.
func Load(path string) (*Config, error) {
	cfg := &Config{
		URL:            DefaultURL,
		VerifySSL:      true,
		TimeoutSeconds: DefaultTimeout,
		RateLimit:      DefaultRateLimit,
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Environment-only configuration.
	default:
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.URL, "ERPNEXT_URL")
	setString(&c.APIKey, "ERPNEXT_API_KEY")
	setString(&c.APISecret, "ERPNEXT_API_SECRET")
	setString(&c.AccessToken, "ERPNEXT_ACCESS_TOKEN")
	setString(&c.Username, "ERPNEXT_USERNAME")
	setString(&c.Password, "ERPNEXT_PASSWORD")
	setString(&c.Log.Level, "ERPNEXT_LOG_LEVEL")
	setString(&c.Log.Format, "ERPNEXT_LOG_FORMAT")

	if v, ok := os.LookupEnv("ERPNEXT_VERIFY_SSL"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.VerifySSL = b
		}
	}
	if v, ok := os.LookupEnv("ERPNEXT_TIMEOUT"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutSeconds = n
		}
	}
	if v, ok := os.LookupEnv("ERPNEXT_RATE_LIMIT"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.RateLimit = f
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// AuthMode names the credential style selected by the configuration.
type AuthMode string

const (
	AuthAPIKey  AuthMode = "api_key"
	AuthBearer  AuthMode = "bearer"
	AuthSession AuthMode = "session"
	AuthNone    AuthMode = "none"
)

// AuthMode reports which credential style is active. API key/secret
// wins over a bearer token, which wins over session login.
func (c *Config) AuthMode() AuthMode {
	switch {
	case c.APIKey != "" && c.APISecret != "":
		return AuthAPIKey
	case c.AccessToken != "":
		return AuthBearer
	case c.Username != "" && c.Password != "":
		return AuthSession
	default:
		return AuthNone
	}
}

// Validate checks that the configuration can reach an ERPNext instance.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("config: url must not be empty")
	}
	if c.AuthMode() == AuthNone {
		return ErrNoCredentials
	}
	return nil
}
