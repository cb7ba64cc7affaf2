package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/layoutlab/nodekit/internal/menu"
	"github.com/spf13/cobra"
)

var (
	menuStyle string
	menuNone  bool
	menuJSON  bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the kind toolbar or menu layout",
	Long: `Print the layout an editor would render for choosing a node kind:
built-in groups separated by separators, then one entry per plugin.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&menuStyle, "style", "menu", "Layout style (toolbar, menu)")
	menuCmd.Flags().BoolVar(&menuNone, "none", false, "Start with a \"None\" entry")
	menuCmd.Flags().BoolVar(&menuJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	style, err := menu.ParseStyle(menuStyle)
	if err != nil {
		return err
	}
	items, err := menu.Build(app.catalog, menu.Options{Style: style, IncludeNone: menuNone})
	if err != nil {
		return fmt.Errorf("building %s layout: %w", style, err)
	}

	if menuJSON {
		return printJSON(cmd.OutOrStdout(), items)
	}
	writeItems(cmd.OutOrStdout(), items, 0)
	return nil
}

func writeItems(w io.Writer, items []menu.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, it := range items {
		switch it.Type {
		case menu.ItemSeparator:
			fmt.Fprintln(w, indent+"----")
		case menu.ItemPlugin:
			fmt.Fprintf(w, "%s[%s]\n", indent, it.Plugin)
			writeItems(w, it.Children, depth+1)
		case menu.ItemNone:
			fmt.Fprintln(w, indent+it.Text)
		default:
			line := indent + it.Kind.String()
			if label := it.Text + it.Tooltip; label != "" {
				line += "  " + label
			}
			if !it.Shortcut.IsNone() {
				line += "  (" + it.Shortcut.String() + ")"
			}
			if it.Overflow {
				line += "  [overflow]"
			}
			fmt.Fprintln(w, line)
		}
	}
}
