package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	backend := cfg.General.Backend
	currency := cfg.General.Currency

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the ledger file lives.").
				Value(&dataDir),
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("JSON file", config.BackendJSON),
					huh.NewOption("SQLite database", config.BackendSQLite),
				).
				Value(&backend),
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(4).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("currency symbol is required")
					}
					return nil
				}).
				Value(&currency),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.General.DataDir = dataDir
	cfg.General.Backend = backend
	cfg.General.Currency = currency

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `fintrack setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
