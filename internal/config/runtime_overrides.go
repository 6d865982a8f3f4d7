package config

import (
	"os"
	"strconv"
)

// ApplyRuntimeOverrides applies environment/OS-specific overrides after YAML load
// and before validation. Environment variables win over OS settings.
func (c *Config) ApplyRuntimeOverrides() {
	applyOSOverrides(c)
	applyEnvOverrides(c)
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("ADDIN_DEV_SETTINGS_KEY"); v != "" {
		c.Registry.DeveloperKey = v
	}
	if v := os.Getenv("ADDIN_DEV_SETTINGS_MANIFEST"); v != "" {
		c.Manifest.DefaultPath = v
	}
	if v := os.Getenv("ADDIN_DEV_SETTINGS_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if b, err := strconv.ParseBool(os.Getenv("NO_COLOR")); err == nil && b {
		c.Logging.NoColor = true
	}
}
