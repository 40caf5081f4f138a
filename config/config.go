package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed part of the service configuration. Secrets
// (DSN, JWT secret, SMTP credentials) come from the environment and
// override whatever the file says.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"` // "postgres" or "sqlite"
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	Identity struct {
		URL string `yaml:"url"`
	} `yaml:"identity"`
	Security struct {
		AuthorizedRoles []string `yaml:"authorized_roles"`
		ProtectAll      bool     `yaml:"protect_all"`
	} `yaml:"security"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "events.db"
	cfg.Identity.URL = "http://localhost:8082"
	cfg.Security.AuthorizedRoles = []string{"Admin"}
	return cfg
}

// Load reads the YAML config file (EVENTS_CONFIG or ./config.yaml), filling
// defaults for anything missing. A missing file is not an error: defaults
// plus env overrides are a complete configuration.
func Load() (*Config, error) {
	path := os.Getenv("EVENTS_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if driver := os.Getenv("DATABASE_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if url := os.Getenv("IDENTITY_URL"); url != "" {
		cfg.Identity.URL = url
	}
	if len(cfg.Security.AuthorizedRoles) == 0 {
		cfg.Security.AuthorizedRoles = []string{"Admin"}
	}
	return cfg, nil
}
