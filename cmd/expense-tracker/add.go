package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/logging"
	"github.com/example/expense-tracker/internal/report"
	"github.com/example/expense-tracker/pkg/expense"
)

func newAddCmd(a *app) *cobra.Command {
	var amount, category, description, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense. The category is capitalized and the date defaults to today.
The whole ledger is rewritten after every addition.`,
		Example: `  expense-tracker add --amount 12.50 --category food --description lunch
  expense-tracker add -a 40 -c transport --date 2024-02-29`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("date") {
				date = a.today()
			}
			d, rec, err := expense.BuildRecord(amount, category, description, date)
			if err != nil {
				return withHint(err)
			}

			store, err := a.file.Load()
			if err != nil {
				return err
			}
			if !rec.Amount.IsPositive() {
				a.logger.Warn("amount is not positive", logging.FieldAmount, rec.Amount.String(), logging.FieldDate, d)
			}
			if err := a.file.AppendAndPersist(store, d, rec); err != nil {
				return err
			}

			a.logger.Info("expense added",
				logging.FieldDate, d,
				logging.FieldAmount, rec.Amount.String(),
				logging.FieldCategory, rec.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense of %s on %s.\n", report.FormatAmount(rec.Amount), d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount spent")
	cmd.Flags().StringVarP(&category, "category", "c", "", "expense category")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	return cmd
}

// withHint prefixes validation failures with what the user should fix
func withHint(err error) error {
	switch {
	case errors.Is(err, expense.ErrInvalidAmount):
		return fmt.Errorf("please enter a valid number for amount: %w", err)
	case errors.Is(err, expense.ErrMissingCategory):
		return fmt.Errorf("please enter a category: %w", err)
	case errors.Is(err, expense.ErrInvalidDate):
		return fmt.Errorf("please enter date in YYYY-MM-DD format: %w", err)
	}
	return err
}
