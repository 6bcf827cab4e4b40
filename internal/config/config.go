package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	LogLevel      string `yaml:"logLevel"`
	LogFormat     string `yaml:"logFormat"`
	LoginLatency  string `yaml:"loginLatency"`
	LoginEmail    string `yaml:"loginEmail"`
	LoginPassword string `yaml:"loginPassword"`
	FixturesPath  string `yaml:"fixturesPath"`
}

func defaults() FileConfig {
	return FileConfig{
		LogLevel:      "info",
		LogFormat:     "json",
		LoginLatency:  "1s",
		LoginEmail:    "user@example.com",
		LoginPassword: "123456",
	}
}

// Load reads config from path (defaults to config.yaml). A missing file is
// not an error: defaults plus env overrides apply.
func Load(path string) (FileConfig, error) {
	cfg := defaults()
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("AKADEMIX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("AKADEMIX_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.TrimSpace(v)
	}
	if v := os.Getenv("AKADEMIX_LOGIN_LATENCY"); v != "" {
		cfg.LoginLatency = strings.TrimSpace(v)
	}
	if v := os.Getenv("AKADEMIX_LOGIN_EMAIL"); v != "" {
		cfg.LoginEmail = strings.TrimSpace(v)
	}
	if v := os.Getenv("AKADEMIX_LOGIN_PASSWORD"); v != "" {
		cfg.LoginPassword = v
	}
	if v := os.Getenv("AKADEMIX_FIXTURES_PATH"); v != "" {
		cfg.FixturesPath = strings.TrimSpace(v)
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if strings.TrimSpace(cfg.LoginEmail) == "" {
		return errors.New("config: loginEmail is required")
	}
	if cfg.LoginPassword == "" {
		return errors.New("config: loginPassword is required")
	}
	if _, err := ParseLoginLatency(cfg.LoginLatency); err != nil {
		return err
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: logFormat must be json or console, got %q", cfg.LogFormat)
	}
	return nil
}

// ParseLoginLatency parses the simulated login delay. Empty means none.
func ParseLoginLatency(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid loginLatency duration: %w", err)
	}
	if dur < 0 {
		return 0, fmt.Errorf("invalid loginLatency duration: %s is negative", s)
	}
	return dur, nil
}

// ReadFixtures returns the fixtures file contents, or nil when no path is set
// so the store falls back to its embedded seed.
func (c FileConfig) ReadFixtures() ([]byte, error) {
	if c.FixturesPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return data, nil
}
