package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/fintrack/internal/export"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import transactions from a CSV or JSON export",
	Long:  "Import transactions from a file produced by `fintrack export`. Malformed CSV rows are skipped, not fatal.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Input format: csv or json (default from extension)")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]

	formatName := flagFormat
	if formatName == "" {
		formatName = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	entries, skipped, err := export.Read(f, format)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("  Nothing to import.")
		return nil
	}

	l, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	// Export files carry the most recent entry first. Adding in reverse
	// keeps the imported block in that order in the ledger.
	added := 0
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		addArgs := ledger.AddArgs{
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			Date:        e.Date,
		}
		if e.Kind == model.Income {
			_, err = l.AddIncome(addArgs)
		} else {
			_, err = l.AddExpense(addArgs)
		}
		if err != nil {
			skipped++
			continue
		}
		added++
	}

	fmt.Printf("  Imported %d transaction(s)", added)
	if skipped > 0 {
		fmt.Printf(", skipped %d", skipped)
	}
	fmt.Println()
	return nil
}
