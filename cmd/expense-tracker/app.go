package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/example/expense-tracker/internal/config"
	"github.com/example/expense-tracker/internal/logging"
	"github.com/example/expense-tracker/internal/report"
	"github.com/example/expense-tracker/internal/storage"
	"github.com/example/expense-tracker/pkg/expense"
)

// app carries what every command needs once flags are parsed
type app struct {
	fs         afero.Fs
	now        func() time.Time
	configPath string

	logger *log.Logger
	file   *storage.File
	theme  report.Theme
}

func newApp() *app {
	return &app{fs: afero.NewOsFs(), now: time.Now}
}

// setup runs before every command: config, logger, storage and styles
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// .env is optional, but a malformed one is an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	a.logger = logging.WithComponent(logger, logging.ComponentCLI)
	a.file = storage.NewFile(a.fs, cfg.DataFile, logging.WithComponent(logger, logging.ComponentStorage))
	a.theme = styledTheme(cmd.OutOrStdout())
	return nil
}

func (a *app) today() string {
	return a.now().Format(expense.DateLayout)
}

// styledTheme bolds headings when w is a terminal that supports it
func styledTheme(w io.Writer) report.Theme {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	return report.Theme{
		Heading: func(s string) string { return heading.Render(s) },
	}
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
