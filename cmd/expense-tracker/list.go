package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/report"
	"github.com/example/expense-tracker/pkg/expense"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all expenses by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.file.Load()
			if err != nil {
				return err
			}

			if category == "" {
				return printLines(cmd.OutOrStdout(), a.theme.RenderChronological(store))
			}

			normalized, err := expense.NormalizeCategory(category)
			if err != nil {
				return withHint(err)
			}
			listing := report.ListCategory(store, normalized)
			if listing.Empty() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No expenses recorded for %s.\n", normalized)
				return err
			}
			return printLines(cmd.OutOrStdout(), a.theme.RenderListing(listing))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")
	return cmd
}
