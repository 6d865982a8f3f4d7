package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"office-addin-dev-settings/internal/logging"
	"office-addin-dev-settings/pkg/devsettings"
	"office-addin-dev-settings/pkg/store"
)

const testAddinID = "05c2e1c9-3e1d-406e-9a91-e9ac64854143"

func init() {
	color.NoColor = true
}

func writeManifest(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "manifest.xml")
	body := `<OfficeApp xmlns="http://schemas.microsoft.com/office/appforoffice/1.1"><Id>` + testAddinID + `</Id></OfficeApp>`
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return p
}

func run(t *testing.T, mem *store.MemoryStore, platform string, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, mem, platform, filepath.Join(t.TempDir(), "config.yaml"), args...)
}

func runWithConfig(t *testing.T, mem *store.MemoryStore, platform, configPath string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	a := newApp()
	a.out = &out
	a.log = logging.Logger{Out: &logs, Err: &logs}
	a.newStore = func() store.SettingsStore { return mem }
	a.platform = platform

	cmd := a.rootCmd()
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	err := cmd.Execute()
	return out.String(), err
}

func show(t *testing.T, mem *store.MemoryStore, manifestPath string) showOutput {
	t.Helper()
	out, err := run(t, mem, "windows", "show", manifestPath, "--json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var s showOutput
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode show output %q: %v", out, err)
	}
	return s
}

func TestEnableDebuggingCommand(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)

	out, err := run(t, mem, "windows", "enable-debugging", mf, "--debug-method", "direct")
	if err != nil {
		t.Fatalf("enable-debugging: %v", err)
	}
	if !strings.Contains(out, "Debugging has been enabled.") {
		t.Fatalf("out=%q", out)
	}

	if _, err := run(t, mem, "windows", "disable-debugging", mf); err != nil {
		t.Fatalf("disable-debugging: %v", err)
	}
	if _, err := run(t, mem, "windows", "enable-debugging", mf); err != nil {
		t.Fatalf("enable-debugging: %v", err)
	}

	s := show(t, mem, mf)
	if s.AddinID != testAddinID || !s.DebuggingEnabled || s.DebuggingMethod != devsettings.MethodDirect {
		t.Fatalf("show=%+v", s)
	}
}

func TestEnableDebuggingRejectsUnknownMethod(t *testing.T) {
	_, err := run(t, store.NewMemoryStore(), "windows", "enable-debugging", writeManifest(t), "--debug-method", "remote")
	if !errors.Is(err, devsettings.ErrInvalidDebuggingMethod) {
		t.Fatalf("err=%v", err)
	}
}

func TestLiveReloadCommands(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)

	if _, err := run(t, mem, "windows", "enable-live-reload", mf); err != nil {
		t.Fatalf("enable-live-reload: %v", err)
	}
	if !show(t, mem, mf).LiveReloadEnabled {
		t.Fatal("live reload should be enabled")
	}
	if _, err := run(t, mem, "windows", "disable-live-reload", mf); err != nil {
		t.Fatalf("disable-live-reload: %v", err)
	}
	if show(t, mem, mf).LiveReloadEnabled {
		t.Fatal("live reload should be disabled")
	}
}

func TestSourceBundleURLOmittedVsEmpty(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)

	if _, err := run(t, mem, "windows", "source-bundle-url", mf, "-h", "devbox", "-p", "8081", "--path", "index", "-e", "js"); err != nil {
		t.Fatalf("source-bundle-url: %v", err)
	}
	if got := show(t, mem, mf).URL; got != "http://devbox:8081/index.js" {
		t.Fatalf("url=%q", got)
	}

	if _, err := run(t, mem, "windows", "source-bundle-url", mf, "--host", ""); err != nil {
		t.Fatalf("reset host: %v", err)
	}
	if got := show(t, mem, mf).URL; got != "http://localhost:8081/index.js" {
		t.Fatalf("url=%q", got)
	}
}

func TestSourceBundleURLInvalidPort(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)

	_, err := run(t, mem, "windows", "source-bundle-url", mf, "--host", "devbox", "--port", "abc")
	if !errors.Is(err, devsettings.ErrInvalidURLComponent) {
		t.Fatalf("err=%v", err)
	}
	if len(mem.Keys()) != 0 {
		t.Fatalf("nothing should be written, got %v", mem.Keys())
	}
}

func TestSourceBundleURLFromWholeURL(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)

	if _, err := run(t, mem, "windows", "source-bundle-url", mf, "--url", "http://devbox:8081/app/index.bundle"); err != nil {
		t.Fatalf("source-bundle-url --url: %v", err)
	}
	s := show(t, mem, mf)
	want := devsettings.URLParts{Host: "devbox", Port: "8081", Path: "app/index", Extension: ".bundle"}
	if s.SourceBundleURL != want {
		t.Fatalf("parts=%+v want=%+v", s.SourceBundleURL, want)
	}
}

func TestClearCommand(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)

	if _, err := run(t, mem, "windows", "enable-live-reload", mf); err != nil {
		t.Fatalf("enable-live-reload: %v", err)
	}
	if _, err := run(t, mem, "windows", "clear", mf); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(mem.Keys()) != 0 {
		t.Fatalf("keys after clear=%v", mem.Keys())
	}
}

func TestUnsupportedPlatform(t *testing.T) {
	mem := store.NewMemoryStore()
	_, err := run(t, mem, "linux", "enable-live-reload", writeManifest(t))
	if !errors.Is(err, devsettings.ErrUnsupportedPlatform) {
		t.Fatalf("err=%v", err)
	}
	if mem.Opens() != 0 {
		t.Fatal("store should not be opened")
	}
}

func TestMissingManifest(t *testing.T) {
	_, err := run(t, store.NewMemoryStore(), "windows", "clear", filepath.Join(t.TempDir(), "missing.xml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v", err)
	}
}

func TestShowText(t *testing.T) {
	out, err := run(t, store.NewMemoryStore(), "windows", "show", writeManifest(t))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Debugging:", "disabled (method: web)", "http://localhost:9229.bundle"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestUnsupportedPlatformCheckedBeforeManifest(t *testing.T) {
	_, err := run(t, store.NewMemoryStore(), "darwin", "clear", filepath.Join(t.TempDir(), "missing.xml"))
	var pe *devsettings.PlatformError
	if !errors.As(err, &pe) || pe.Platform != "darwin" {
		t.Fatalf("err=%v want PlatformError(darwin)", err)
	}
}

func TestShowJSONStaysParseableWhenVerbose(t *testing.T) {
	mem := store.NewMemoryStore()
	mf := writeManifest(t)
	if _, err := run(t, mem, "windows", "enable-live-reload", mf); err != nil {
		t.Fatalf("enable-live-reload: %v", err)
	}

	for _, flag := range []string{"-v", "--debug-log"} {
		out, err := run(t, mem, "windows", "show", mf, "--json", flag)
		if err != nil {
			t.Fatalf("show %s: %v", flag, err)
		}
		var s showOutput
		if err := json.Unmarshal([]byte(out), &s); err != nil {
			t.Fatalf("show --json %s: stdout is not JSON (%v): %q", flag, err, out)
		}
		if !s.LiveReloadEnabled {
			t.Fatalf("show %s: %+v", flag, s)
		}
	}
}

func TestUnsupportedPlatformCheckedBeforeConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("registry: [not, a, map\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := runWithConfig(t, store.NewMemoryStore(), "darwin", cfgPath, "clear", writeManifest(t))
	if !errors.Is(err, devsettings.ErrUnsupportedPlatform) {
		t.Fatalf("err=%v want ErrUnsupportedPlatform", err)
	}

	if _, err := runWithConfig(t, store.NewMemoryStore(), "windows", cfgPath, "clear", writeManifest(t)); err == nil {
		t.Fatal("malformed config should fail on a supported platform")
	}
}

func TestCompletionSkipsSetup(t *testing.T) {
	out, err := run(t, store.NewMemoryStore(), "darwin", "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "office-addin-dev-settings") {
		t.Fatalf("completion output=%q", out)
	}
}
