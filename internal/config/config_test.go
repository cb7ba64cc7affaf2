package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layoutlab/nodekit/internal/keys"
	"github.com/layoutlab/nodekit/internal/nodes"
)

func TestOpen_MissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	cfg := s.Logging()
	if cfg.Level != "warn" || cfg.Format != "console" {
		t.Errorf("unexpected logging defaults: %+v", cfg)
	}
}

func TestOpen_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log:
  level: debug
  format: json
plugins:
  dir: /srv/plugins
shortcuts:
  hex32: Ctrl+H
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := s.Logging().Level; got != "debug" {
		t.Errorf("log level = %q, want debug", got)
	}
	dir, err := s.PluginsDir()
	if err != nil || dir != "/srv/plugins" {
		t.Errorf("PluginsDir() = %q, %v", dir, err)
	}
	c, ok := s.Shortcuts().Shortcut(nodes.Hex32)
	if !ok || c != keys.MustParse("Ctrl+H") {
		t.Errorf("Shortcut(hex32) = %v, %v", c, ok)
	}
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSet_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyPluginsDir, "/opt/plugins"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := reopened.Get(KeyPluginsDir); got != "/opt/plugins" {
		t.Errorf("Get(%s) = %q, want /opt/plugins", KeyPluginsDir, got)
	}
}

func TestShortcutStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store := s.Shortcuts()
	widget := nodes.PluginKind("acme", "widget")

	if err := store.SetShortcut(widget, keys.MustParse("Alt+W")); err != nil {
		t.Fatalf("SetShortcut() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := reopened.Shortcuts().Shortcut(widget)
	if !ok || c.String() != "Alt+W" {
		t.Errorf("Shortcut(acme/widget) = %v, %v", c, ok)
	}

	if err := reopened.Shortcuts().Unset(widget); err != nil {
		t.Fatalf("Unset() error = %v", err)
	}
	if _, ok := reopened.Shortcuts().Shortcut(widget); ok {
		t.Error("expected shortcut to be cleared")
	}
}

func TestShortcutStore_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("shortcuts:\n  int32: Hyper+Q\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Shortcuts().Shortcut(nodes.Int32); ok {
		t.Error("expected invalid shortcut to be ignored")
	}
}

func TestShortcutStore_DefaultNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store := s.Shortcuts()
	store.SetDefault(nodes.Float, keys.MustParse("Ctrl+F"))

	if c, ok := store.Shortcut(nodes.Float); !ok || c.String() != "Ctrl+F" {
		t.Errorf("Shortcut(float) = %v, %v", c, ok)
	}

	if err := s.Set(KeyLogLevel, "info"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Ctrl+F") {
		t.Errorf("default shortcut leaked into config file:\n%s", data)
	}
}

func TestShortcutStore_UnsetDefault(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	store := s.Shortcuts()
	store.SetDefault(nodes.Double, keys.MustParse("Ctrl+D"))
	store.UnsetDefault(nodes.Double)

	if c, ok := store.Shortcut(nodes.Double); ok {
		t.Errorf("Shortcut(double) = %v after UnsetDefault, want none", c)
	}
}
