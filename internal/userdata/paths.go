package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/layoutlab/nodekit/internal/branding"
)

// Directory and file name constants.
const (
	PluginsDir       = "plugins"
	ManifestFile     = "plugin.yaml"
	DirPermNormal    = os.FileMode(0o755)
	FilePermSettings = os.FileMode(0o644)
)

// GetHomeRoot returns the nodekit home directory. It checks the NODEKIT_HOME
// environment variable first, then falls back to ~/.nodekit.
func GetHomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetPluginsRoot returns the directory scanned for plugins. It checks
// NODEKIT_PLUGINS first, then falls back to <home>/plugins.
func GetPluginsRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("PLUGINS")); v != "" {
		return v, nil
	}
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PluginsDir), nil
}

// GetPluginManifestPath returns the manifest path of the plugin installed in
// directory name under the plugins root.
func GetPluginManifestPath(name string) (string, error) {
	root, err := GetPluginsRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name, ManifestFile), nil
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPermNormal); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
