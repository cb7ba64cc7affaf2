package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/layoutlab/nodekit/internal/plugin"
	"github.com/layoutlab/nodekit/internal/userdata"
)

//go:embed templates
var scaffoldFS embed.FS

// KindData describes one kind written into the generated manifest.
type KindData struct {
	Name  string // e.g., "fvector"
	Label string // e.g., "FVector"
	Base  string // built-in kind the plugin kind behaves like
}

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name        string // plugin name, e.g., "gamekit"
	Description string
	Author      string
	Version     string // Semver, e.g., "0.1.0"
	HostVersion string // min_host_version; empty for no requirement
	Kinds       []KindData
	Year        int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData creates a ScaffoldData with defaults filled in. Each kind
// argument is "name" or "name:base"; kinds without a base behave like class.
func NewScaffoldData(name string, kinds []string) *ScaffoldData {
	d := &ScaffoldData{
		Name:        name,
		Description: fmt.Sprintf("Node kinds contributed by %s", name),
		Version:     "0.1.0",
		Year:        time.Now().Year(),
	}
	for _, k := range kinds {
		kindName, base, ok := strings.Cut(k, ":")
		if !ok || base == "" {
			base = "class"
		}
		d.Kinds = append(d.Kinds, KindData{Name: kindName, Label: labelFor(kindName), Base: base})
	}
	if len(d.Kinds) == 0 {
		d.Kinds = []KindData{{Name: name, Label: labelFor(name), Base: "class"}}
	}
	return d
}

// labelFor turns "my-kind" into "My Kind".
func labelFor(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var funcs = template.FuncMap{
	"quote": strconv.Quote,
}

// Generate creates a new plugin directory from the embedded templates and
// validates the generated manifest. Validation problems are returned as
// warnings; the files are still written.
func Generate(data *ScaffoldData, outputDir string) (*Result, error) {
	templatesDir := path.Join("templates", "plugin")

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading plugin templates: %w", err)
	}

	if err := userdata.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := path.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		tmpl, err := template.New(entry.Name()).Funcs(funcs).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), userdata.FilePermSettings); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	manifestFile := filepath.Join(outputDir, userdata.ManifestFile)
	valResult, valErr := plugin.ValidateFile(manifestFile)
	switch {
	case valErr != nil:
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate manifest: %v", valErr))
	case !valResult.Valid:
		result.Warnings = append(result.Warnings, valResult.Strings()...)
	}

	return result, nil
}
