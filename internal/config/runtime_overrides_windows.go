//go:build windows

package config

import "golang.org/x/sys/windows/registry"

// Machine-wide defaults an installer may lay down.
const installerRegistryPath = `SOFTWARE\OfficeAddinDevSettings`

func applyOSOverrides(c *Config) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, installerRegistryPath, registry.QUERY_VALUE)
	if err != nil {
		return
	}
	defer k.Close()

	if v, _, err := k.GetStringValue("DeveloperKey"); err == nil && v != "" {
		c.Registry.DeveloperKey = v
	}
}
