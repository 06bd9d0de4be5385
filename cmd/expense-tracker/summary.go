package main

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.file.Load()
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), a.theme.RenderCategorySummary(store))
		},
	}
}
