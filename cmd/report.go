package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a period",
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Income, expenses, and net savings for a month",
	RunE:  runReportMonthly,
}

var reportYearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Year summary with a month-by-month breakdown",
	RunE:  runReportYearly,
}

var reportCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Expense breakdown by category",
	RunE:  runReportCategory,
}

func init() {
	periodFlags(reportMonthlyCmd)
	reportYearlyCmd.Flags().IntVarP(&flagYear, "year", "y", 0, "Calendar year (default current)")
	periodFlags(reportCategoryCmd)

	reportCmd.AddCommand(reportMonthlyCmd)
	reportCmd.AddCommand(reportYearlyCmd)
	reportCmd.AddCommand(reportCategoryCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportMonthly(_ *cobra.Command, _ []string) error {
	month, year, err := selectedPeriod()
	if err != nil {
		return err
	}
	now := time.Now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	return printReport(month, year)
}

func runReportYearly(_ *cobra.Command, _ []string) error {
	year := flagYear
	if year == 0 {
		year = time.Now().Year()
	}
	return printReport(0, year)
}

func printReport(month time.Month, year int) error {
	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	report, breakdown, err := l.Report(month, year)
	if errors.Is(err, ledger.ErrNoData) {
		fmt.Printf("\n  No transactions recorded for %s.\n", cli.FormatPeriod(int(month), year))
		return nil
	}
	if err != nil {
		return err
	}

	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REPORT  %s", cli.FormatPeriod(int(month), year))))
	fmt.Println()
	printSummary(currency, report)

	if len(breakdown) > 0 {
		printBreakdown(currency, breakdown)
	}
	return nil
}

func printSummary(currency string, report model.Report) {
	rows := [][]string{
		{"Income", cli.FormatAmount(currency, report.TotalIncome)},
		{"Expenses", cli.FormatAmount(currency, report.TotalExpenses)},
		{"---"},
		{"Net savings", cli.FormatSigned(currency, report.NetSavings)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"", "Amount"},
		Rows:    rows,
	}))

	if report.TopCategory != nil {
		fmt.Printf("  Top category: %s (%d transactions, %s in expenses)\n\n",
			report.TopCategory.Name,
			report.TopCategory.Count,
			cli.FormatAmount(currency, report.TopCategory.ExpenseAmount),
		)
	}
}

func printBreakdown(currency string, breakdown []model.MonthReport) {
	expenses := make([]float64, 0, len(breakdown))
	for _, mr := range breakdown {
		expenses = append(expenses, mr.Report.TotalExpenses)
	}
	fmt.Printf("  Monthly expenses  %s\n\n", cli.RenderSparkline(expenses))

	rows := make([][]string, 0, len(breakdown))
	for _, mr := range breakdown {
		rows = append(rows, []string{
			mr.Month.String(),
			cli.FormatAmount(currency, mr.Report.TotalIncome),
			cli.FormatAmount(currency, mr.Report.TotalExpenses),
			cli.FormatSigned(currency, mr.Report.NetSavings),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Month",
		Headers: []string{"Month", "Income", "Expenses", "Net"},
		Rows:    rows,
	}))
}

func runReportCategory(_ *cobra.Command, _ []string) error {
	month, year, err := selectedPeriod()
	if err != nil {
		return err
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	totals := l.Categories(month, year)
	if len(totals) == 0 {
		fmt.Printf("\n  No expenses recorded for %s.\n", cli.FormatPeriod(int(month), year))
		return nil
	}

	// Rows arrive smallest total first. The bar scales against the
	// largest, which is the last row.
	maxTotal := totals[len(totals)-1].Total

	rows := make([][]string, 0, len(totals))
	var grand float64
	for _, ct := range totals {
		grand += ct.Total
		rows = append(rows, []string{
			ct.Category,
			cli.FormatAmount(cfg.General.Currency, ct.Total),
			cli.FormatPercent(ct.Percent),
			cli.RenderHorizontalBar(ct.Total, maxTotal, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatAmount(cfg.General.Currency, grand), "", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses by Category  %s", cli.FormatPeriod(int(month), year)),
		Headers: []string{"Category", "Total", "Share", ""},
		Rows:    rows,
	}))
	return nil
}
