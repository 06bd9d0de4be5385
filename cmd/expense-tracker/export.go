package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/export"
	"github.com/example/expense-tracker/internal/logging"
)

func newExportCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every expense as CSV, YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := export.ForFormat(format)
			if err != nil {
				return err
			}
			store, err := a.file.Load()
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), store, enc)
			}

			f, err := a.fs.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			if err := export.Write(f, store, enc); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close export file: %w", err)
			}
			a.logger.Info("exported expenses", logging.FieldPath, output, logging.FieldRecords, store.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
