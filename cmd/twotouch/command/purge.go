package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newPurgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Invalidate every cached result in the namespace.",
		Long: "Purge bumps the namespace generation. With --cache=redis the purge is seen by\n" +
			"every process sharing the server; in-process caches start empty anyway.",
		Args: cobra.NoArgs,
		RunE: a.released(a.commandPurge),
	}
}

func (a *app) commandPurge(cmd *cobra.Command, _ []string) error {
	if a.cached == nil {
		return errors.New("purge: no cache configured (set --cache)")
	}
	if err := a.cached.Purge(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "purged namespace %s\n", a.v.GetString("namespace"))
	return nil
}
