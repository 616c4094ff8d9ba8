package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/tui/components"
)

// renderOverview shows the current month's summary cards plus the
// year-to-date shape of spending.
func (a App) renderOverview() string {
	now := time.Now()

	report, _, err := a.ledger.Report(now.Month(), now.Year())
	if errors.Is(err, ledger.ErrNoData) {
		return "  No transactions this month yet. Record one with `fintrack add`."
	}
	if err != nil {
		return fmt.Sprintf("  %s", err)
	}

	widths := components.LayoutRow(a.contentWidth(), 3)
	cards := components.CardRow([]string{
		components.MetricCard("Income",
			cli.FormatAmount(a.currency, report.TotalIncome), "", widths[0]),
		components.MetricCard("Expenses",
			cli.FormatAmount(a.currency, report.TotalExpenses), "", widths[1]),
		components.MetricCard("Net savings",
			cli.FormatSigned(a.currency, report.NetSavings), "", widths[2]),
	})

	body := cards + "\n"

	if report.TopCategory != nil {
		body += components.ContentCard("Top category",
			fmt.Sprintf("%s  (%d transactions, %s in expenses)",
				report.TopCategory.Name,
				report.TopCategory.Count,
				cli.FormatAmount(a.currency, report.TopCategory.ExpenseAmount),
			), a.contentWidth()) + "\n"
	}

	// Year to date, month by month
	if _, breakdown, err := a.ledger.Report(0, now.Year()); err == nil && len(breakdown) > 0 {
		expenses := make([]float64, 0, len(breakdown))
		first := breakdown[0].Month
		last := breakdown[len(breakdown)-1].Month
		for _, mr := range breakdown {
			expenses = append(expenses, mr.Report.TotalExpenses)
		}
		body += components.ContentCard(
			fmt.Sprintf("Monthly expenses  %s to %s", first.String()[:3], last.String()[:3]),
			cli.RenderSparkline(expenses),
			a.contentWidth()) + "\n"
	}

	return body
}
