// Package cmd implements the fintrack CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBackend string
	flagMonth   int
	flagYear    int
)

var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "Personal finance tracker",
	Long:  "Track expenses and income, run period reports, and watch monthly budgets.",
	RunE:  runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: json or sqlite (overrides config)")
}

// closableStore is what openLedger hands back for cleanup. Both backends
// satisfy it.
type closableStore interface {
	ledger.Store
	Close() error
}

// loadConfig resolves the effective configuration with flag overrides
// applied.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagBackend != "" {
		if flagBackend != config.BackendJSON && flagBackend != config.BackendSQLite {
			return config.Config{}, fmt.Errorf("unknown backend %q (want json or sqlite)", flagBackend)
		}
		cfg.General.Backend = flagBackend
	}
	return cfg, nil
}

// openLedger is the shared data access path used by all commands. The
// caller must Close the returned store.
func openLedger() (*ledger.Ledger, closableStore, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, config.Config{}, err
	}

	var st closableStore
	switch cfg.General.Backend {
	case config.BackendSQLite:
		st, err = store.OpenSQLite(cfg.DataPath())
	default:
		st, err = store.OpenJSON(cfg.DataPath())
	}
	if err != nil {
		return nil, nil, config.Config{}, fmt.Errorf("opening store: %w", err)
	}

	l, err := ledger.New(st)
	if err != nil {
		st.Close()
		return nil, nil, config.Config{}, err
	}
	return l, st, cfg, nil
}

// periodFlags attaches the shared --month/--year selection flags.
func periodFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&flagMonth, "month", "m", 0, "Calendar month (1-12)")
	cmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Calendar year")
}

// selectedPeriod validates --month/--year. A month without a year means
// that month in any year.
func selectedPeriod() (time.Month, int, error) {
	if flagMonth < 0 || flagMonth > 12 {
		return 0, 0, fmt.Errorf("invalid month %d (want 1-12)", flagMonth)
	}
	return time.Month(flagMonth), flagYear, nil
}

// parseAmount reads a positive decimal amount from a CLI argument.
func parseAmount(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", arg)
	}
	if v < 0 {
		return 0, ledger.ErrInvalidAmount
	}
	return v, nil
}

// confirm asks a y/N question on the command's input stream.
func confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var answer string
	fmt.Fscanln(in, &answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}

func kindLabel(k model.Kind) string {
	if k == model.Income {
		return "income"
	}
	return "expense"
}
