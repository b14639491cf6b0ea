package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/km-arc/microioc/framework/container"
)

type entryRow struct {
	Key  string         `json:"key"`
	Kind container.Kind `json:"kind"`
}

func newEntriesCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Boot the container and list its entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootApp(opts)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), a.IocContainer, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printEntries(w io.Writer, c *container.IocContainer, asJSON bool) error {
	rows := make([]entryRow, 0, c.Len())
	for key, entry := range c.All() {
		rows = append(rows, entryRow{Key: key.String(), Kind: entry.Kind()})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"locked": c.Locked(), "entries": rows})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tKIND")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Key, r.Kind)
	}
	fmt.Fprintf(tw, "\n%d entries, locked=%t\n", len(rows), c.Locked())
	return tw.Flush()
}
