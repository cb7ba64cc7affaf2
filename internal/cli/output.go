package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/layoutlab/nodekit/internal/keys"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

func shortcutText(c keys.Combo) string {
	if c.IsNone() {
		return "-"
	}
	return c.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
