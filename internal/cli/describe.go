package cli

import (
	"fmt"
	"strings"

	"github.com/layoutlab/nodekit/internal/catalog"
	"github.com/layoutlab/nodekit/internal/nodes"
	"github.com/spf13/cobra"
)

var describeJSON bool

var describeCmd = &cobra.Command{
	Use:   "describe <kind>",
	Short: "Show the label, icon, and shortcut of a kind",
	Long: `Show the presentation metadata of a kind. Plugin kinds are named
<plugin>/<kind>, for example "gamekit/fvector".`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(describeCmd)
}

// description extends the descriptor with the kind's composition policy.
type description struct {
	catalog.Descriptor
	Wrapper bool           `json:"wrapper"`
	Accepts []nodes.KindID `json:"accepts,omitempty"`
}

func runDescribe(cmd *cobra.Command, args []string) error {
	kind, err := nodes.ParseKindID(args[0])
	if err != nil {
		return err
	}
	d, err := app.catalog.Describe(kind)
	if err != nil {
		return err
	}

	out := description{Descriptor: d}
	if spec, ok := app.factory.Table().Lookup(kind); ok && spec.IsWrapper() {
		out.Wrapper = true
		out.Accepts = spec.Accepts
	}

	if describeJSON {
		return printJSON(cmd.OutOrStdout(), out)
	}

	w := newTable(cmd.OutOrStdout())
	fmt.Fprintf(w, "Kind:\t%s\n", out.Kind)
	fmt.Fprintf(w, "Label:\t%s\n", out.Label)
	fmt.Fprintf(w, "Icon:\t%s\n", orDash(out.Icon))
	fmt.Fprintf(w, "Shortcut:\t%s\n", shortcutText(out.DefaultShortcut))
	fmt.Fprintf(w, "Overflow:\t%t\n", out.CanOverflowInToolbar)
	if out.Wrapper {
		accepts := make([]string, 0, len(out.Accepts))
		for _, k := range out.Accepts {
			accepts = append(accepts, k.String())
		}
		fmt.Fprintf(w, "Accepts:\t%s\n", strings.Join(accepts, ", "))
	}
	return w.Flush()
}
