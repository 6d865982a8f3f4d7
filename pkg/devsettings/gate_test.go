package devsettings

import (
	"errors"
	"runtime"
	"testing"

	"office-addin-dev-settings/pkg/store"
)

func TestGateRejectsUnsupportedPlatform(t *testing.T) {
	mem := store.NewMemoryStore()
	c := NewClient(mem, WithPlatform("darwin"))

	calls := map[string]func() error{
		"clear":               func() error { return c.ClearDevSettings(testAddinID) },
		"source-bundle-url":   func() error { return c.ConfigureSourceBundleURL(testAddinID, SourceBundleUpdate{Port: Set("abc")}) },
		"disable-debugging":   func() error { return c.DisableDebugging(testAddinID) },
		"disable-live-reload": func() error { return c.DisableLiveReload(testAddinID) },
		"enable-debugging":    func() error { return c.EnableDebugging(testAddinID, true, MethodDirect) },
		"enable-live-reload":  func() error { return c.EnableLiveReload(testAddinID, true) },
		"get": func() error {
			_, err := c.GetDevSettings(testAddinID)
			return err
		},
	}
	for name, call := range calls {
		err := call()
		var pe *PlatformError
		if !errors.As(err, &pe) || pe.Platform != "darwin" {
			t.Fatalf("%s: err=%v want PlatformError(darwin)", name, err)
		}
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Fatalf("%s: err=%v should match ErrUnsupportedPlatform", name, err)
		}
	}
	if mem.Opens() != 0 {
		t.Fatalf("store opened %d times on unsupported platform", mem.Opens())
	}
}

func TestClientOnSupportedPlatform(t *testing.T) {
	c := NewClient(store.NewMemoryStore(), WithPlatform(SupportedPlatform))

	if err := c.EnableDebugging(testAddinID, true, MethodDirect); err != nil {
		t.Fatalf("EnableDebugging: %v", err)
	}
	if err := c.EnableLiveReload(testAddinID, true); err != nil {
		t.Fatalf("EnableLiveReload: %v", err)
	}
	got, err := c.GetDevSettings(testAddinID)
	if err != nil {
		t.Fatalf("GetDevSettings: %v", err)
	}
	if !got.DebuggingEnabled || !got.LiveReloadEnabled {
		t.Fatalf("got=%+v", got)
	}

	if err := c.ClearDevSettings(testAddinID); err != nil {
		t.Fatalf("ClearDevSettings: %v", err)
	}
	if got, _ = c.GetDevSettings(testAddinID); got.DebuggingEnabled || got.LiveReloadEnabled {
		t.Fatalf("after clear got=%+v", got)
	}
}

func TestCurrentGate(t *testing.T) {
	err := CurrentGate().Check()
	if runtime.GOOS == SupportedPlatform {
		if err != nil {
			t.Fatalf("Check on windows: %v", err)
		}
		return
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("Check on %s: err=%v", runtime.GOOS, err)
	}
}

func TestPackageFunctionsOutsideWindows(t *testing.T) {
	if runtime.GOOS == SupportedPlatform {
		t.Skip("would touch the real registry")
	}
	if err := EnableLiveReload(testAddinID, true); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("err=%v want ErrUnsupportedPlatform", err)
	}
}
