package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagKind     string
	flagFrom     string
	flagTo       string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse transactions, most recent first",
	RunE:  runList,
}

func init() {
	filterFlags(listCmd)
	periodFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

// filterFlags attaches the shared transaction filter flags.
func filterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Filter to a category")
	cmd.Flags().StringVarP(&flagKind, "type", "t", "", "Filter to a type: expense or income")
	cmd.Flags().StringVar(&flagFrom, "from", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagTo, "to", "", "Latest date (YYYY-MM-DD)")
}

// buildFilter translates the filter flags into an engine filter pair.
func buildFilter() (ledger.FilterSpec, ledger.DateFilter, error) {
	var spec ledger.FilterSpec
	spec.Category = flagCategory
	if flagKind != "" {
		kind := model.Kind(flagKind)
		if !kind.Valid() {
			return spec, ledger.DateFilter{}, fmt.Errorf("invalid type %q (want expense or income)", flagKind)
		}
		spec.Kind = kind
	}

	start, err := ledger.ParseDate(flagFrom)
	if err != nil {
		return spec, ledger.DateFilter{}, fmt.Errorf("--from: %w", err)
	}
	end, err := ledger.ParseDate(flagTo)
	if err != nil {
		return spec, ledger.DateFilter{}, fmt.Errorf("--to: %w", err)
	}
	month, year, err := selectedPeriod()
	if err != nil {
		return spec, ledger.DateFilter{}, err
	}

	dates := ledger.DateFilter{Start: start, End: end, Month: month, Year: year}
	return spec, dates, nil
}

func runList(_ *cobra.Command, _ []string) error {
	spec, dates, err := buildFilter()
	if err != nil {
		return err
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	matched := l.List(spec, dates)
	if len(matched) == 0 {
		fmt.Println("\n  No matching transactions.")
		return nil
	}

	rows := make([][]string, 0, len(matched))
	for _, tx := range matched {
		amount := cli.FormatAmount(cfg.General.Currency, tx.Amount)
		if tx.Kind == model.Expense {
			amount = "-" + amount
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", tx.ID),
			cli.FormatDate(tx.Date),
			kindLabel(tx.Kind),
			tx.Category,
			amount,
			tx.Description,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Transactions (%d)", len(matched)),
		Headers: []string{"ID", "Date", "Type", "Category", "Amount", "Description"},
		Rows:    rows,
	}))
	return nil
}
