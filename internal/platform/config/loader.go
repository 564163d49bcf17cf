package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"portfolio-cms/internal/platform/errors"
)

// Loader reads configuration from an optional YAML file, then applies
// environment overrides and defaults.
type Loader struct {
	path      string
	useDotEnv bool
}

// NewLoader creates a loader for the given config file path. A missing
// file is not an error; the server can run from environment alone.
func NewLoader(path string) *Loader {
	return &Loader{
		path:      path,
		useDotEnv: true,
	}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// Result captures the loaded configuration and its origin path.
type Result struct {
	Config *Config
	Path   string
}

// Load assembles the final configuration.
func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		// A missing .env file just means we rely on real environment variables.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrap(errors.KindConfig, "loader.read", "failed to read config file", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.KindConfig, "loader.parse", "failed to parse config file", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.Auth.Secret == "" {
		return nil, errors.New(errors.KindConfig, "loader.validate", "auth secret is required (set JWT_SECRET)")
	}

	return &Result{
		Config: cfg,
		Path:   l.path,
	}, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_IP"); v != "" {
		cfg.Server.IP = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TTL = Duration(ttl)
		}
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Auth.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Auth.Admin.Password = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Auth.Admin.Email = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Web.StaticDir = v
	}
	if v := os.Getenv("EMAIL_HOST"); v != "" {
		cfg.Mail.Host = v
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = port
		}
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Mail.Username = v
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.Mail.Password = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.Mail.From = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.Mail.To = v
	}
}
