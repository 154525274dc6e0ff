// Package config resolves courseplan settings from defaults, an optional
// YAML file and COURSEPLAN_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	EnvConfig        = "COURSEPLAN_CONFIG"
	EnvCatalog       = "COURSEPLAN_CATALOG"
	EnvDB            = "COURSEPLAN_DB"
	EnvLogUseCases   = "COURSEPLAN_LOG_USE_CASES"
	EnvFetchTimeout  = "COURSEPLAN_FETCH_TIMEOUT_MS"
	EnvConcentration = "COURSEPLAN_CONCENTRATION"
)

// Config holds all runtime settings.
type Config struct {
	// Catalog is the course source: a JSON path, an http(s) URL, or a
	// SQLite store ("sqlite:PATH" or a *.db file).
	Catalog string `yaml:"catalog"`

	// DBPath is the SQLite store written by "catalog import".
	DBPath string `yaml:"db"`

	LogUseCases    bool `yaml:"log_use_cases"`
	FetchTimeoutMs int  `yaml:"fetch_timeout_ms"`

	// Concentration preselects a concentration for new sessions. Empty
	// means none.
	Concentration string `yaml:"concentration"`
}

// DefaultConfig returns a Config with sensible defaults. home may be empty
// when the user's home directory is unknown.
func DefaultConfig(home string) Config {
	return Config{
		Catalog:        "courses_indexed.json",
		DBPath:         filepath.Join(home, ".courseplan", "catalog.db"),
		LogUseCases:    false,
		FetchTimeoutMs: 10000,
	}
}

// FetchTimeout is the bound on loading a remote catalog.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.Catalog == "" {
		errs = append(errs, errors.New("catalog must not be empty"))
	}
	if c.FetchTimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("fetch_timeout_ms must be positive, got %d", c.FetchTimeoutMs))
	}
	if c.Concentration != "" {
		if _, err := domain.ParseConcentration(c.Concentration); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load resolves configuration from the file named by COURSEPLAN_CONFIG, or
// ~/.courseplan/config.yaml when unset, then applies env overrides. A missing
// default file is not an error; a missing explicit file is.
func Load() (Config, error) {
	home, _ := os.UserHomeDir()

	path, explicit := os.Getenv(EnvConfig), true
	if path == "" {
		explicit = false
		if home != "" {
			path = filepath.Join(home, ".courseplan", "config.yaml")
		}
	}
	return load(home, path, explicit)
}

// LoadFrom resolves configuration from the given YAML file, which must
// exist, then applies env overrides.
func LoadFrom(path string) (Config, error) {
	home, _ := os.UserHomeDir()
	return load(home, path, true)
}

func load(home, path string, explicit bool) (Config, error) {
	cfg := DefaultConfig(home)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decodeYAML(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.Catalog = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvFetchTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutMs = n
		}
	}
	if v := os.Getenv(EnvConcentration); v != "" {
		cfg.Concentration = v
	}
}
