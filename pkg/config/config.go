package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ErrMissingCredentials is returned by Load when the Twilio account SID or auth
// token is not set. It is fatal and detected before any network activity.
var ErrMissingCredentials = errors.New("config: Twilio credentials not found")

const (
	envAccountSID = "TWILIO_ACCOUNT_SID"
	envAuthToken  = "TWILIO_AUTH_TOKEN"
)

type Config struct {
	Twilio    TwilioConfig  `koanf:"twilio"`
	Country   string        `koanf:"country"`
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	Pacing    time.Duration `koanf:"pacing"`
	Watchlist string        `koanf:"watchlist"`
	LogLevel  string        `koanf:"log_level"`
}

type TwilioConfig struct {
	AccountSID string `koanf:"account_sid"`
	AuthToken  string `koanf:"auth_token"`
}

// LoadOptions locates the optional configuration sources.
type LoadOptions struct {
	// EnvFile is a dotenv file to load. Empty means ".env" if it exists; an
	// explicit file must exist.
	EnvFile string
	// ConfigFile is an optional YAML file; missing is not an error.
	ConfigFile string
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment (after loading the dotenv file), then validates it.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("config: loading env file %q: %w", opts.EnvFile, err)
		}
	} else {
		// .env is optional when the variables come from the environment.
		_ = godotenv.Load()
	}

	k := koanf.New(".")

	defaults := &Config{
		Country:  "US",
		BaseURL:  "https://api.twilio.com",
		Timeout:  30 * time.Second,
		Pacing:   700 * time.Millisecond,
		LogLevel: "info",
	}
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			if err := k.Load(file.Provider(opts.ConfigFile), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: loading %q: %w", opts.ConfigFile, err)
			}
		}
	}

	// RECON_PACING -> pacing, RECON_BASE_URL -> base_url. Blank variables keep
	// the lower layers.
	if err := k.Load(env.ProviderWithValue("RECON_", ".", func(key, value string) (string, any) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, "RECON_")), value
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment variables: %w", err)
	}

	// TWILIO_ACCOUNT_SID -> twilio.account_sid.
	if err := k.Load(env.ProviderWithValue("TWILIO_", ".", func(key, value string) (string, any) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return "twilio." + strings.ToLower(strings.TrimPrefix(key, "TWILIO_")), value
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if strings.TrimSpace(c.Twilio.AccountSID) == "" {
		missing = append(missing, envAccountSID)
	}
	if strings.TrimSpace(c.Twilio.AuthToken) == "" {
		missing = append(missing, envAuthToken)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: please set %s in your environment", ErrMissingCredentials, strings.Join(missing, " and "))
	}

	if len(strings.TrimSpace(c.Country)) != 2 {
		return fmt.Errorf("config: country must be a 2-letter ISO code, got %q", c.Country)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.Pacing < 0 {
		return fmt.Errorf("config: pacing must not be negative, got %s", c.Pacing)
	}

	return nil
}
