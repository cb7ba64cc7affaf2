package cli

import (
	"fmt"

	"github.com/layoutlab/nodekit/internal/keys"
	"github.com/layoutlab/nodekit/internal/nodes"
	"github.com/spf13/cobra"
)

func init() {
	shortcutCmd.AddCommand(shortcutGetCmd)
	shortcutCmd.AddCommand(shortcutSetCmd)
	shortcutCmd.AddCommand(shortcutUnsetCmd)
	rootCmd.AddCommand(shortcutCmd)
}

var shortcutCmd = &cobra.Command{
	Use:   "shortcut",
	Short: "Manage per-kind keyboard shortcuts",
	Long: `Read and write the keyboard shortcut assigned to a kind. Shortcuts are
stored under "shortcuts" in the config file and only take effect when they
include Ctrl, Alt, or Shift.`,
}

// resolveKind parses a kind argument and checks that it can be instantiated.
func resolveKind(arg string) (nodes.KindID, error) {
	kind, err := nodes.ParseKindID(arg)
	if err != nil {
		return nodes.KindID{}, err
	}
	if _, err := app.factory.Table().Instantiable(kind); err != nil {
		return nodes.KindID{}, err
	}
	return kind, nil
}

var shortcutGetCmd = &cobra.Command{
	Use:   "get <kind>",
	Short: "Show the shortcut configured for a kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := resolveKind(args[0])
		if err != nil {
			return err
		}
		d, err := app.catalog.Describe(kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.DefaultShortcut.String())
		return nil
	},
}

var shortcutSetCmd = &cobra.Command{
	Use:   "set <kind> <combo>",
	Short: "Assign a shortcut to a kind",
	Example: `  nodekit shortcut set int32 Ctrl+Shift+I
  nodekit shortcut set gamekit/fvector Alt+V`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := resolveKind(args[0])
		if err != nil {
			return err
		}
		combo, err := keys.Parse(args[1])
		if err != nil {
			return err
		}
		if err := app.shortcuts.SetShortcut(kind, combo); err != nil {
			return fmt.Errorf("saving shortcut for %s: %w", kind, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", kind, combo)
		if !combo.IsNone() && !combo.HasModifier() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Note: shortcuts without Ctrl, Alt, or Shift are ignored by the editor.")
		}
		return nil
	},
}

var shortcutUnsetCmd = &cobra.Command{
	Use:   "unset <kind>",
	Short: "Remove the shortcut of a kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := resolveKind(args[0])
		if err != nil {
			return err
		}
		if err := app.shortcuts.Unset(kind); err != nil {
			return fmt.Errorf("clearing shortcut for %s: %w", kind, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", kind)
		return nil
	},
}
