package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/clipboard"
	"folio/internal/config"
	"folio/internal/gallery"
	"folio/internal/telemetry"
	"folio/internal/ui"
)

var (
	contentPath string
	envFile     string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse a portfolio in the terminal",
	Long: `folio renders a personal portfolio as a terminal UI: profile, about,
featured work, certifications, education, technologies and contact.

Work and certification tiles open an image preview (←/→ to step through
images, esc or a click on the backdrop to close). Press c to copy the
contact address, SPC for the command menu.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Portfolio YAML file (default: $FOLIO_CONTENT, then built-in)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

// loadConfig resolves settings from the dotenv file, the environment and flags.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotenv(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns stdout; logs go to FOLIO_LOG or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p, err := cfg.Portfolio()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	observers := []gallery.Observer{gallery.LogObserver{}}
	exp, err := telemetry.New(ctx)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	}
	if exp != nil {
		observers = append(observers, exp)
		defer exp.Shutdown(context.Background())
	}

	model := ui.NewAppModel(p,
		gallery.WithClipboard(clipboard.Detect()),
		gallery.WithObserver(gallery.NewMultiObserver(observers...)),
	).AsTeaModel()
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
