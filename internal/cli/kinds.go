package cli

import (
	"fmt"

	"github.com/layoutlab/nodekit/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	kindsJSON     bool
	kindsBuiltIn  bool
	kindsGroupArg string
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List node kinds",
	Long:  `List every built-in node kind by group, followed by the kinds contributed by loaded plugins.`,
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

func init() {
	kindsCmd.Flags().BoolVar(&kindsJSON, "json", false, "Output in JSON format")
	kindsCmd.Flags().BoolVar(&kindsBuiltIn, "builtin", false, "Only list built-in kinds")
	kindsCmd.Flags().StringVar(&kindsGroupArg, "group", "", "Only list kinds of the named group or plugin")
	rootCmd.AddCommand(kindsCmd)
}

// kindEntry is one row of the kinds listing.
type kindEntry struct {
	Group  string `json:"group"`
	Plugin string `json:"plugin,omitempty"`
	catalog.Descriptor
}

func runKinds(cmd *cobra.Command, args []string) error {
	var entries []kindEntry
	for _, g := range app.catalog.Groups() {
		if kindsBuiltIn && g.Plugin != "" {
			continue
		}
		if kindsGroupArg != "" && g.Name != kindsGroupArg {
			continue
		}
		for _, k := range g.Kinds() {
			d, err := app.catalog.Describe(k)
			if err != nil {
				return fmt.Errorf("describing %s: %w", k, err)
			}
			entries = append(entries, kindEntry{Group: g.Name, Plugin: g.Plugin, Descriptor: d})
		}
	}

	if kindsJSON {
		return printJSON(cmd.OutOrStdout(), entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No kinds match.")
		return nil
	}

	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "GROUP\tKIND\tLABEL\tSHORTCUT\tOVERFLOW")
	for _, e := range entries {
		overflow := ""
		if e.CanOverflowInToolbar {
			overflow = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Group, e.Kind, e.Label, shortcutText(e.DefaultShortcut), overflow)
	}
	return w.Flush()
}
