package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

type decodeResult struct {
	Input string `json:"input"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [<code> ...]",
		Short: "Decode two-touch code strings into text.",
		Long: "Decode reads each argument as a string of 2-digit codes. Without arguments,\n" +
			"inputs are read from stdin, one per line.",
		Example: "twotouch decode 81225223",
		RunE:    a.released(a.commandDecode),
	}
}

func (a *app) commandDecode(cmd *cobra.Command, args []string) error {
	in, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]decodeResult, 0, len(in))
	bad := 0
	for _, code := range in {
		text, err := a.decode(cmd.Context(), code)
		r := decodeResult{Input: code, Text: text}
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
		fmt.Fprintln(cmd.OutOrStdout(), r.Text)
	}
	return failed(bad, len(in))
}
