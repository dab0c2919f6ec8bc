package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type encodeResult struct {
	Input string   `json:"input"`
	Codes []string `json:"codes,omitempty"`
	Error string   `json:"error,omitempty"`
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [<text> ...]",
		Short: "Encode text into two-touch code candidates.",
		Long: "Encode prints every candidate for each input: phrase shortcuts first, then\n" +
			"the character-by-character code. Without arguments, inputs are read from stdin,\n" +
			"one per line.",
		Example: "twotouch encode ごくろうさん\n" +
			"echo rust | twotouch encode --format=json",
		RunE: a.released(a.commandEncode),
	}
}

func (a *app) commandEncode(cmd *cobra.Command, args []string) error {
	in, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]encodeResult, 0, len(in))
	bad := 0
	for _, text := range in {
		codes, err := a.encode(cmd.Context(), text)
		r := encodeResult{Input: text, Codes: codes}
		if err != nil {
			bad++
			r.Error = err.Error()
		}
		results = append(results, r)
	}

	if a.jsonOutput() {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		return failed(bad, len(in))
	}
	for _, r := range results {
		if r.Error != "" {
			cmd.PrintErrln(r.Error)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(r.Codes, "\t"))
	}
	return failed(bad, len(in))
}
