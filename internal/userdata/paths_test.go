package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetHomeRoot_EnvOverride(t *testing.T) {
	t.Setenv("NODEKIT_HOME", "/tmp/test-nodekit")
	root, err := GetHomeRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/tmp/test-nodekit" {
		t.Errorf("expected /tmp/test-nodekit, got %s", root)
	}
}

func TestGetHomeRoot_Default(t *testing.T) {
	t.Setenv("NODEKIT_HOME", "")
	root, err := GetHomeRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".nodekit")
	if root != expected {
		t.Errorf("expected %s, got %s", expected, root)
	}
}

func TestGetPluginsRoot(t *testing.T) {
	tests := []struct {
		name    string
		home    string
		plugins string
		want    string
	}{
		{"under home", "/tmp/nk", "", "/tmp/nk/plugins"},
		{"explicit override", "/tmp/nk", "/srv/plugins", "/srv/plugins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NODEKIT_HOME", tt.home)
			t.Setenv("NODEKIT_PLUGINS", tt.plugins)
			got, err := GetPluginsRoot()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetPluginsRoot() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGetPluginManifestPath(t *testing.T) {
	t.Setenv("NODEKIT_PLUGINS", "/tmp/plugins")
	p, err := GetPluginManifestPath("acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != "/tmp/plugins/acme/plugin.yaml" {
		t.Errorf("expected /tmp/plugins/acme/plugin.yaml, got %s", p)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
}
