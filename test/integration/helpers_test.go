//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // NODEKIT_HOME, holds config.yaml
	PluginsDir string // NODEKIT_PLUGINS, one directory per plugin
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all NodeKit operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		PluginsDir: t.TempDir(),
	}

	t.Setenv("NODEKIT_HOME", env.HomeDir)
	t.Setenv("NODEKIT_PLUGINS", env.PluginsDir)
	return env
}

// setupPlugins installs a small set of plugins: two valid ones and one whose
// kind derives from an abstract base.
func setupPlugins(t *testing.T, pluginsDir string) {
	t.Helper()

	writePlugin(t, pluginsDir, "10-gamekit", `name: gamekit
version: "1.4.0"
description: Engine types
min_host_version: "0.1.0"
kinds:
  - name: fvector
    label: FVector
    base: vector3
    shortcut: Ctrl+Shift+V
  - name: tarray
    label: TArray
    base: array
  - name: fname
    base: utf8textptr
    shortcut: N
`)

	writePlugin(t, pluginsDir, "20-broken", `name: broken
version: "0.1.0"
kinds:
  - name: ghost
    base: base
`)

	writePlugin(t, pluginsDir, "30-winapi", `name: winapi
version: "2.0.0"
kinds:
  - name: handle
    label: HANDLE
    base: pointer
`)
}

// writePlugin creates pluginsDir/<dir>/plugin.yaml.
func writePlugin(t *testing.T, pluginsDir, dir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(pluginsDir, dir, "plugin.yaml"), content)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
