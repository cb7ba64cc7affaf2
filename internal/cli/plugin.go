package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/layoutlab/nodekit/internal/nodes"
	"github.com/layoutlab/nodekit/internal/plugin"
	"github.com/layoutlab/nodekit/internal/scaffold"
	"github.com/layoutlab/nodekit/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	pluginJSON bool

	initDir         string
	initAuthor      string
	initDescription string
	initHostVersion string
)

func init() {
	pluginCmd.PersistentFlags().BoolVar(&pluginJSON, "json", false, "Output in JSON format")

	pluginInitCmd.Flags().StringVar(&initDir, "dir", "", "Output directory (default <plugins-dir>/<name>)")
	pluginInitCmd.Flags().StringVar(&initAuthor, "author", "", "Plugin author")
	pluginInitCmd.Flags().StringVar(&initDescription, "description", "", "One-line plugin description")
	pluginInitCmd.Flags().StringVar(&initHostVersion, "min-host-version", "", "Oldest host version the plugin supports")

	pluginCmd.AddCommand(pluginListCmd)
	pluginCmd.AddCommand(pluginInitCmd)
	pluginCmd.AddCommand(pluginValidateCmd)
	pluginCmd.AddCommand(pluginShowCmd)
	rootCmd.AddCommand(pluginCmd)
}

var pluginCmd = &cobra.Command{
	Use:     "plugin",
	Aliases: []string{"plugins"},
	Short:   "Inspect kind plugins",
	Long: `Inspect the plugins that contribute node kinds.

Plugins are directories under the plugins directory (~/.nodekit/plugins by
default), each holding a plugin.yaml manifest.`,
}

// pluginEntry is one row of the plugin listing.
type pluginEntry struct {
	Name    string   `json:"name"`
	Version string   `json:"version,omitempty"`
	Kinds   []string `json:"kinds,omitempty"`
	Path    string   `json:"path"`
	Error   string   `json:"error,omitempty"`
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded plugins and plugins that failed to load",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []pluginEntry
		for _, l := range app.host.Loaded() {
			e := pluginEntry{Name: l.Manifest.Name, Version: l.Manifest.Version, Path: l.Manifest.Path}
			for _, k := range l.Kinds {
				e.Kinds = append(e.Kinds, k.String())
			}
			entries = append(entries, e)
		}
		for _, f := range app.failures {
			entries = append(entries, pluginEntry{
				Name:  filepath.Base(filepath.Dir(f.Path)),
				Path:  f.Path,
				Error: f.Err.Error(),
			})
		}

		if pluginJSON {
			return printJSON(cmd.OutOrStdout(), entries)
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No plugins found in %s\n", app.pluginsDir)
			return nil
		}

		w := newTable(cmd.OutOrStdout())
		fmt.Fprintln(w, "NAME\tVERSION\tKINDS\tSTATUS")
		for _, e := range entries {
			status := "loaded"
			if e.Error != "" {
				status = "failed: " + e.Error
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.Name, orDash(e.Version), len(e.Kinds), status)
		}
		return w.Flush()
	},
}

var pluginValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a plugin manifest",
	Long: `Validate a plugin.yaml against the manifest schema. The path may name
the manifest itself or the plugin directory that holds it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, userdata.ManifestFile)
		}

		result, err := plugin.ValidateFile(path)
		if err != nil {
			return err
		}
		if result.Valid {
			if _, err := plugin.Parse(path); err != nil {
				return err
			}
		}

		if pluginJSON {
			return printJSON(cmd.OutOrStdout(), result)
		}
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue)
		}
		return fmt.Errorf("manifest %s is invalid", path)
	},
}

var pluginShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a loaded plugin's manifest and kinds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ok := app.host.Get(args[0])
		if !ok {
			return fmt.Errorf("plugin %q is not loaded", args[0])
		}
		if pluginJSON {
			return printJSON(cmd.OutOrStdout(), l.Manifest)
		}

		m := l.Manifest
		w := newTable(cmd.OutOrStdout())
		fmt.Fprintf(w, "Name:\t%s\n", m.Name)
		fmt.Fprintf(w, "Version:\t%s\n", m.Version)
		fmt.Fprintf(w, "Author:\t%s\n", orDash(m.Author))
		fmt.Fprintf(w, "Description:\t%s\n", orDash(m.Description))
		fmt.Fprintf(w, "Requires host:\t%s\n", orDash(m.MinHostVersion))
		fmt.Fprintf(w, "Path:\t%s\n", orDash(m.Path))
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout())
		w = newTable(cmd.OutOrStdout())
		fmt.Fprintln(w, "KIND\tLABEL\tBASE\tSHORTCUT")
		for i, k := range l.Kinds {
			d, err := app.catalog.Describe(k)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k, d.Label, m.Kinds[i].Base, shortcutText(d.DefaultShortcut))
		}
		return w.Flush()
	},
}

var pluginInitCmd = &cobra.Command{
	Use:   "init <name> [kind[:base]...]",
	Short: "Create a new plugin from a template",
	Long: `Create a plugin directory holding a plugin.yaml and a README. Each kind
argument is a kind name, optionally followed by the built-in kind it behaves
like; kinds without a base behave like "class".`,
	Example: `  nodekit plugin init gamekit fvector:vector3 tarray:array
  nodekit plugin init winapi handle:pointer --dir ./winapi`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := scaffold.NewScaffoldData(args[0], args[1:])
		for _, k := range data.Kinds {
			if _, err := app.factory.Table().Instantiable(nodes.KindID{Name: k.Base}); err != nil {
				return fmt.Errorf("kind %s: %w", k.Name, err)
			}
		}
		if initAuthor != "" {
			data.Author = initAuthor
		}
		if initDescription != "" {
			data.Description = initDescription
		}
		data.HostVersion = initHostVersion

		dir := initDir
		if dir == "" {
			dir = filepath.Join(app.pluginsDir, data.Name)
		}
		result, err := scaffold.Generate(data, dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created plugin %s in %s\n", data.Name, result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
		return nil
	},
}
