package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layoutlab/nodekit/internal/plugin"
)

func TestNewScaffoldData(t *testing.T) {
	t.Run("kinds with and without base", func(t *testing.T) {
		d := NewScaffoldData("gamekit", []string{"fvector:vector3", "actor"})
		if len(d.Kinds) != 2 {
			t.Fatalf("len(Kinds) = %d, want 2", len(d.Kinds))
		}
		if d.Kinds[0] != (KindData{Name: "fvector", Label: "Fvector", Base: "vector3"}) {
			t.Errorf("Kinds[0] = %+v", d.Kinds[0])
		}
		if d.Kinds[1].Base != "class" {
			t.Errorf("Kinds[1].Base = %q, want class", d.Kinds[1].Base)
		}
	})

	t.Run("defaults to one kind named after the plugin", func(t *testing.T) {
		d := NewScaffoldData("win-handles", nil)
		if len(d.Kinds) != 1 || d.Kinds[0].Name != "win-handles" || d.Kinds[0].Label != "Win Handles" {
			t.Errorf("Kinds = %+v", d.Kinds)
		}
	})

	t.Run("year is populated", func(t *testing.T) {
		if NewScaffoldData("x", nil).Year == 0 {
			t.Error("Year should not be zero")
		}
	})
}

func TestGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "gamekit")

	data := NewScaffoldData("gamekit", []string{"fvector:vector3", "tarray:array"})
	data.Author = `Layout "Lab"`
	data.HostVersion = "0.2.0"
	result, err := Generate(data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{"README.md", "plugin.yaml"})
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	manifestContent := readGenerated(t, outDir, "plugin.yaml")
	assertContains(t, manifestContent, "name: gamekit")
	assertContains(t, manifestContent, `min_host_version: "0.2.0"`)
	assertContains(t, manifestContent, "base: array")

	readme := readGenerated(t, outDir, "README.md")
	assertContains(t, readme, "`gamekit/fvector`")

	m, err := plugin.Parse(filepath.Join(outDir, "plugin.yaml"))
	if err != nil {
		t.Fatalf("generated manifest does not parse: %v", err)
	}
	if m.Author != `Layout "Lab"` {
		t.Errorf("Author = %q", m.Author)
	}
	if len(m.Kinds) != 2 || m.Kinds[1].Label != "Tarray" {
		t.Errorf("Kinds = %+v", m.Kinds)
	}
}

func TestGenerate_OmitsOptionalFields(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "plain")
	if _, err := Generate(NewScaffoldData("plain", nil), outDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	content := readGenerated(t, outDir, "plugin.yaml")
	assertNotContains(t, content, "author:")
	assertNotContains(t, content, "min_host_version:")
}

func TestGenerate_InvalidNameWarns(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "bad")
	result, err := Generate(NewScaffoldData("Bad", []string{"ok"}), outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected schema warnings for an upper-case plugin name")
	}
}

func TestGenerate_RefusesNonEmptyDir(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "existing"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(NewScaffoldData("x", nil), outDir); err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Errorf("got %d files %v, want %d files %v", len(result.Files), result.Files, len(expected), expected)
		return
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
