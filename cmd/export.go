package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/fintrack/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions as CSV or JSON",
	Long:  "Export matching transactions in store order. Writes to stdout unless --output is given.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv or json")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default stdout)")
	filterFlags(exportCmd)
	periodFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	spec, dates, err := buildFilter()
	if err != nil {
		return err
	}

	l, st, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	matched := l.Export(spec, dates)

	if flagOutput == "" {
		return export.Write(os.Stdout, format, matched)
	}

	if _, err := os.Stat(flagOutput); err == nil {
		if !confirm(cmd.InOrStdin(), fmt.Sprintf("  %s exists, overwrite?", flagOutput)) {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := export.Write(f, format, matched); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  Exported %d transaction(s) to %s\n", len(matched), flagOutput)
	return nil
}
