package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"office-addin-dev-settings/pkg/store"
)

type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Manifest ManifestConfig `yaml:"manifest"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type RegistryConfig struct {
	// DeveloperKey is the current-user key holding one subkey per add-in.
	DeveloperKey string `yaml:"developer_key"`
}

type ManifestConfig struct {
	// DefaultPath is used by commands whose manifest argument is optional.
	DefaultPath string `yaml:"default_path"`
}

type LoggingConfig struct {
	Verbose bool   `yaml:"verbose"`
	Debug   bool   `yaml:"debug"`
	NoColor bool   `yaml:"no_color"`
	File    string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Registry: RegistryConfig{DeveloperKey: store.DefaultDeveloperKey},
		Manifest: ManifestConfig{DefaultPath: "manifest.xml"},
	}
}

// DefaultPath is the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "office-addin-dev-settings.yaml"
	}
	return filepath.Join(dir, "office-addin-dev-settings", "config.yaml")
}

// Load reads path, applies defaults and overrides, and validates. A missing
// file is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	cfg.ApplyDefaults()
	cfg.ApplyRuntimeOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func (c *Config) Validate() error {
	if c.Registry.DeveloperKey == "" {
		return errors.New("registry.developer_key is required")
	}
	if strings.HasPrefix(strings.ToUpper(c.Registry.DeveloperKey), "HKEY_") {
		return errors.New("registry.developer_key must be relative to HKEY_CURRENT_USER")
	}
	return nil
}

func (c *Config) ApplyDefaults() {
	c.Registry.DeveloperKey = strings.Trim(c.Registry.DeveloperKey, `\`)
	if c.Registry.DeveloperKey == "" {
		c.Registry.DeveloperKey = store.DefaultDeveloperKey
	}
	if c.Manifest.DefaultPath == "" {
		c.Manifest.DefaultPath = "manifest.xml"
	}
}
