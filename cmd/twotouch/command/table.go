package command

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type tableArgs struct {
	Phrases bool
}

type tableRow struct {
	Char string `json:"char"`
	Code string `json:"code"`
}

type phraseRow struct {
	Phrase string   `json:"phrase"`
	Codes  []string `json:"codes"`
}

func newTableCmd(a *app) *cobra.Command {
	var args tableArgs
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the code table, or the phrase table with --phrases.",
		Args:  cobra.NoArgs,
		RunE: a.released(func(cmd *cobra.Command, _ []string) error {
			return a.commandTable(cmd, args)
		}),
	}
	cmd.Flags().BoolVar(&args.Phrases, "phrases", false, "Print the phrase shortcut table instead.")
	return cmd
}

func (a *app) commandTable(cmd *cobra.Command, args tableArgs) error {
	if args.Phrases {
		var rows []phraseRow
		for _, p := range a.codec.Phrases() {
			rows = append(rows, phraseRow{Phrase: p.Text, Codes: p.Codes})
		}
		if a.jsonOutput() {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\n", r.Phrase, strings.Join(r.Codes, ","))
		}
		return tw.Flush()
	}

	var rows []tableRow
	for _, e := range a.codec.Entries() {
		rows = append(rows, tableRow{Char: string(e.Char), Code: e.Code})
	}
	if a.jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), rows)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Char, r.Code)
	}
	return tw.Flush()
}
