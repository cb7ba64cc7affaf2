package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/layoutlab/nodekit/internal/errors"
)

const gamekitManifest = `name: gamekit
version: "1.0.0"
kinds:
  - name: fvector
    label: FVector
    base: vector3
    shortcut: Ctrl+Shift+V
  - name: tarray
    base: array
`

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between test runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupHome points the CLI at a fresh home directory and returns it.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("NODEKIT_HOME", home)
	t.Setenv("NODEKIT_PLUGINS", "")
	return home
}

func installPlugin(t *testing.T, home, dir, manifest string) {
	t.Helper()
	p := filepath.Join(home, "plugins", dir)
	require.NoError(t, os.MkdirAll(p, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(p, "plugin.yaml"), []byte(manifest), 0o644))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestKinds_Table(t *testing.T) {
	setupHome(t)
	out, err := run(t, "kinds")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus every grouped built-in kind.
	assert.Len(t, lines, 38)
	assert.Contains(t, lines[0], "GROUP")
	assert.Contains(t, out, "hex64")
	assert.Contains(t, out, "Class Instance")
}

func TestKinds_JSONIncludesPlugins(t *testing.T) {
	home := setupHome(t)
	installPlugin(t, home, "gamekit", gamekitManifest)

	out, err := run(t, "kinds", "--group", "gamekit", "--json")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "gamekit/fvector", entries[0]["kind"])
	assert.Equal(t, "FVector", entries[0]["label"])
	assert.Equal(t, "Ctrl+Shift+V", entries[0]["shortcut"])
	assert.Equal(t, "gamekit", entries[0]["plugin"])
}

func TestKinds_BuiltInOnly(t *testing.T) {
	home := setupHome(t)
	installPlugin(t, home, "gamekit", gamekitManifest)

	out, err := run(t, "kinds", "--builtin")
	require.NoError(t, err)
	assert.NotContains(t, out, "gamekit")
}

func TestDescribe(t *testing.T) {
	setupHome(t)
	out, err := run(t, "describe", "pointer")
	require.NoError(t, err)
	assert.Contains(t, out, "Pointer")
	assert.Contains(t, out, "Accepts:")
	assert.Contains(t, out, "class")
}

func TestDescribe_UnknownKind(t *testing.T) {
	setupHome(t)
	_, err := run(t, "describe", "base")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownKind))

	_, err = run(t, "describe", "nope")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownKind))
}

func TestMenu(t *testing.T) {
	home := setupHome(t)
	installPlugin(t, home, "gamekit", gamekitManifest)

	out, err := run(t, "menu", "--none")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "None", lines[0])
	assert.Equal(t, "----", lines[1])
	assert.Contains(t, out, "[gamekit]")
	assert.Contains(t, out, "  gamekit/fvector  FVector  (Ctrl+Shift+V)")
}

func TestMenu_ToolbarJSON(t *testing.T) {
	setupHome(t)
	out, err := run(t, "menu", "--style", "toolbar", "--json")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	// 37 grouped kinds plus 9 separators between 10 groups.
	assert.Len(t, items, 46)
	assert.Equal(t, "Hex64", items[0]["tooltip"])
}

func TestMenu_BadStyle(t *testing.T) {
	setupHome(t)
	_, err := run(t, "menu", "--style", "ribbon")
	assert.Error(t, err)
}

func TestPlugin_ListReportsFailures(t *testing.T) {
	home := setupHome(t)
	installPlugin(t, home, "gamekit", gamekitManifest)
	installPlugin(t, home, "broken", "name: broken\nversion: \"1.0.0\"\nkinds: []\n")

	out, err := run(t, "plugin", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "gamekit")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "failed")
}

func TestPlugin_Show(t *testing.T) {
	home := setupHome(t)
	installPlugin(t, home, "gamekit", gamekitManifest)

	out, err := run(t, "plugin", "show", "gamekit")
	require.NoError(t, err)
	assert.Contains(t, out, "gamekit/tarray")
	assert.Contains(t, out, "Array")

	_, err = run(t, "plugin", "show", "missing")
	assert.Error(t, err)
}

func TestPlugin_Validate(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, "work")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugin.yaml"), []byte(gamekitManifest), 0o644))

	out, err := run(t, "plugin", "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	bad := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: Bad Name\nversion: \"1.0.0\"\nkinds: []\n"), 0o644))
	out, err = run(t, "plugin", "validate", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "issue")
}

func TestShortcut_SetGetUnset(t *testing.T) {
	home := setupHome(t)

	out, err := run(t, "shortcut", "set", "int32", "ctrl+shift+i")
	require.NoError(t, err)
	assert.Equal(t, "Set int32 = Ctrl+Shift+I\n", out)

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ctrl+Shift+I")

	out, err = run(t, "shortcut", "get", "int32")
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+Shift+I\n", out)

	_, err = run(t, "shortcut", "unset", "int32")
	require.NoError(t, err)
	out, err = run(t, "shortcut", "get", "int32")
	require.NoError(t, err)
	assert.Equal(t, "None\n", out)
}

func TestShortcut_WithoutModifierIsIgnored(t *testing.T) {
	setupHome(t)
	_, err := run(t, "shortcut", "set", "bool", "B")
	require.NoError(t, err)

	out, err := run(t, "shortcut", "get", "bool")
	require.NoError(t, err)
	assert.Equal(t, "None\n", out)
}

func TestShortcut_PluginDefaultAndOverride(t *testing.T) {
	home := setupHome(t)
	installPlugin(t, home, "gamekit", gamekitManifest)

	out, err := run(t, "shortcut", "get", "gamekit/fvector")
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+Shift+V\n", out)

	_, err = run(t, "shortcut", "set", "gamekit/fvector", "Alt+F")
	require.NoError(t, err)
	out, err = run(t, "shortcut", "get", "gamekit/fvector")
	require.NoError(t, err)
	assert.Equal(t, "Alt+F\n", out)
}

func TestCompose(t *testing.T) {
	setupHome(t)

	out, err := run(t, "compose", "pointer")
	require.NoError(t, err)
	assert.Equal(t, "pointer (Pointer)\n└─ class (Class)\n", out)

	out, err = run(t, "compose", "array", "pointer", "int32")
	require.NoError(t, err)
	assert.Equal(t, "array (Array)\n└─ pointer (Pointer)\n   └─ int32 (Int32)\n", out)
}

func TestCompose_Incompatible(t *testing.T) {
	setupHome(t)
	_, err := run(t, "compose", "classinstance", "int32")
	assert.True(t, errors.Is(err, apperrors.ErrIncompatibleKind))
}

func TestConfig_SetGet(t *testing.T) {
	setupHome(t)
	_, err := run(t, "config", "set", "log.format", "json")
	require.NoError(t, err)

	out, err := run(t, "config", "get", "log.format")
	require.NoError(t, err)
	assert.Equal(t, "json\n", out)
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "dev", "", "" })

	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestPlugin_InitThenLoad(t *testing.T) {
	setupHome(t)
	out, err := run(t, "plugin", "init", "gamekit", "fvector:vector3", "--author", "Layout Lab")
	require.NoError(t, err)
	assert.Contains(t, out, "Created plugin gamekit")
	assert.Contains(t, out, "plugin.yaml")

	// The next command picks the new plugin up from the plugins directory.
	out, err = run(t, "describe", "gamekit/fvector")
	require.NoError(t, err)
	assert.Contains(t, out, "Fvector")
}

func TestPlugin_InitRejectsUnknownBase(t *testing.T) {
	setupHome(t)
	_, err := run(t, "plugin", "init", "gamekit", "ghost:base")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownKind))
}
