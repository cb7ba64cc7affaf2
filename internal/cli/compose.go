package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/layoutlab/nodekit/internal/nodes"
	"github.com/spf13/cobra"
)

var composeJSON bool

var composeCmd = &cobra.Command{
	Use:   "compose <kind> [inner-kind...]",
	Short: "Build a wrapper chain and print the resulting node tree",
	Long: `Create a node of each kind and nest every kind inside the one before it.
A wrapper given no inner kind gets its default inner node. Fails if a
wrapper does not accept the kind that follows it.`,
	Example: `  nodekit compose pointer
  nodekit compose array pointer class
  nodekit compose classinstance int32   # rejected: classinstance only accepts class`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().BoolVar(&composeJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(composeCmd)
}

// treeNode is the printable form of a node and its inner chain.
type treeNode struct {
	Kind  nodes.KindID `json:"kind"`
	Label string       `json:"label"`
	Open  bool         `json:"levels_open,omitempty"`
	Inner *treeNode    `json:"inner,omitempty"`
}

func runCompose(cmd *cobra.Command, args []string) error {
	kinds := make([]nodes.KindID, 0, len(args))
	for _, a := range args {
		k, err := nodes.ParseKindID(a)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}

	root, err := composeChain(app.factory, kinds)
	if err != nil {
		return err
	}
	defer root.Destroy()

	tree := toTree(root)
	if composeJSON {
		return printJSON(cmd.OutOrStdout(), tree)
	}
	writeTree(cmd.OutOrStdout(), tree, 0)
	return nil
}

// composeChain builds kinds innermost first and nests each node into the
// wrapper preceding it.
func composeChain(f *nodes.Factory, kinds []nodes.KindID) (*nodes.Node, error) {
	last := len(kinds) - 1
	current, err := f.Create(kinds[last], true)
	if err != nil {
		return nil, err
	}
	for i := last - 1; i >= 0; i-- {
		outer, err := f.Create(kinds[i], true)
		if err != nil {
			current.Destroy()
			return nil, err
		}
		if err := outer.ChangeInnerNode(current); err != nil {
			current.Destroy()
			outer.Destroy()
			return nil, err
		}
		current = outer
	}
	return current, nil
}

func toTree(n *nodes.Node) *treeNode {
	t := &treeNode{Kind: n.Kind(), Label: n.Label(), Open: n.LevelsOpenByDefault}
	if inner := n.Inner(); inner != nil {
		t.Inner = toTree(inner)
	}
	return t
}

func writeTree(w io.Writer, t *treeNode, depth int) {
	for ; t != nil; t = t.Inner {
		prefix := ""
		if depth > 0 {
			prefix = strings.Repeat("   ", depth-1) + "└─ "
		}
		fmt.Fprintf(w, "%s%s (%s)\n", prefix, t.Kind, t.Label)
		depth++
	}
}
