package devsettings

import (
	"runtime"
	"sync"

	"office-addin-dev-settings/pkg/store"
)

// SupportedPlatform is the only platform with a developer settings store.
const SupportedPlatform = "windows"

// Gate rejects every operation on an unsupported platform before any other
// component runs.
type Gate struct {
	Platform string
}

func CurrentGate() Gate {
	return Gate{Platform: runtime.GOOS}
}

func (g Gate) Check() error {
	if g.Platform != SupportedPlatform {
		return &PlatformError{Platform: g.Platform}
	}
	return nil
}

// Client is the public API: a Manager behind the platform gate.
type Client struct {
	gate    Gate
	manager *Manager
}

func NewClient(st store.SettingsStore, opts ...Option) *Client {
	o := buildOptions(opts)
	gate := CurrentGate()
	if o.platform != "" {
		gate.Platform = o.platform
	}
	return &Client{gate: gate, manager: NewManager(st, opts...)}
}

// NewRegistryClient returns a client on the current-user registry.
func NewRegistryClient(opts ...Option) *Client {
	return NewClient(store.NewRegistryStore(), opts...)
}

// Check reports whether the client's platform is supported without touching the store.
func (c *Client) Check() error {
	return c.gate.Check()
}

func (c *Client) ClearDevSettings(addinID string) error {
	if err := c.gate.Check(); err != nil {
		return err
	}
	return c.manager.Clear(addinID)
}

func (c *Client) ConfigureSourceBundleURL(addinID string, u SourceBundleUpdate) error {
	if err := c.gate.Check(); err != nil {
		return err
	}
	return c.manager.ConfigureSourceBundleURL(addinID, u)
}

func (c *Client) DisableDebugging(addinID string) error {
	return c.EnableDebugging(addinID, false, MethodUnspecified)
}

func (c *Client) DisableLiveReload(addinID string) error {
	return c.EnableLiveReload(addinID, false)
}

func (c *Client) EnableDebugging(addinID string, enable bool, method DebuggingMethod) error {
	if err := c.gate.Check(); err != nil {
		return err
	}
	return c.manager.EnableDebugging(addinID, enable, method)
}

func (c *Client) EnableLiveReload(addinID string, enable bool) error {
	if err := c.gate.Check(); err != nil {
		return err
	}
	return c.manager.EnableLiveReload(addinID, enable)
}

func (c *Client) GetDevSettings(addinID string) (DevSettings, error) {
	if err := c.gate.Check(); err != nil {
		return DevSettings{}, err
	}
	return c.manager.Get(addinID)
}

var defaultClient = sync.OnceValue(func() *Client {
	return NewRegistryClient()
})

// ClearDevSettings removes every developer setting of addinID from the
// current-user registry.
func ClearDevSettings(addinID string) error {
	return defaultClient().ClearDevSettings(addinID)
}

func ConfigureSourceBundleURL(addinID string, u SourceBundleUpdate) error {
	return defaultClient().ConfigureSourceBundleURL(addinID, u)
}

func DisableDebugging(addinID string) error {
	return defaultClient().DisableDebugging(addinID)
}

func DisableLiveReload(addinID string) error {
	return defaultClient().DisableLiveReload(addinID)
}

// EnableDebugging enables or disables debugging. Pass MethodUnspecified to
// reuse the last stored method (MethodWeb if none).
func EnableDebugging(addinID string, enable bool, method DebuggingMethod) error {
	return defaultClient().EnableDebugging(addinID, enable, method)
}

func EnableLiveReload(addinID string, enable bool) error {
	return defaultClient().EnableLiveReload(addinID, enable)
}

func GetDevSettings(addinID string) (DevSettings, error) {
	return defaultClient().GetDevSettings(addinID)
}
