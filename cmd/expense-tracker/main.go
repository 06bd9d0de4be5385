package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Record and summarize daily expenses",
		Long: `Expense Tracker keeps a personal ledger of daily expenses in a local JSON file,
lists them by date and totals them by category.`,
		Version:           "1.0.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("file", "", "expense file (default \"expenses.json\")")

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
	)
	return rootCmd
}
