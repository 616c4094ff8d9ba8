package ledger

import (
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Aggregate rolls a transaction subset into expense/income/savings totals
// plus the dominant-category statistic. Net savings is always the exact
// difference of the two reported (rounded) totals, so repeated
// aggregation never compounds rounding error.
func Aggregate(transactions []model.Transaction) model.Report {
	var expenses, income float64
	counts := make(map[string]int)

	// The winner is the first category to reach the maximum count when
	// scanning in input order. Ties are resolved by that scan, not
	// alphabetically.
	var top string
	topCount := 0

	for _, tx := range transactions {
		switch tx.Kind {
		case model.Expense:
			expenses += tx.Amount
		case model.Income:
			income += tx.Amount
		}
		if tx.Category == "" {
			continue
		}
		counts[tx.Category]++
		if counts[tx.Category] > topCount {
			top = tx.Category
			topCount = counts[tx.Category]
		}
	}

	report := model.Report{
		TotalExpenses: model.Round2(expenses),
		TotalIncome:   model.Round2(income),
	}
	report.NetSavings = model.Round2(report.TotalIncome - report.TotalExpenses)

	if topCount > 0 {
		// The displayed amount sums only the winning category's expense
		// legs, even when that category also has income entries.
		var amount float64
		for _, tx := range transactions {
			if tx.Kind == model.Expense && tx.Category == top {
				amount += tx.Amount
			}
		}
		report.TopCategory = &model.CategoryStat{
			Name:          top,
			Count:         topCount,
			ExpenseAmount: model.Round2(amount),
		}
	}

	return report
}

// MonthlyBreakdown partitions transactions by calendar month and
// aggregates each partition. Results are ordered January first; months
// with no transactions are omitted.
func MonthlyBreakdown(transactions []model.Transaction) []model.MonthReport {
	byMonth := make(map[time.Month][]model.Transaction)
	for _, tx := range transactions {
		m := tx.Date.Month()
		byMonth[m] = append(byMonth[m], tx)
	}

	var months []model.MonthReport
	for m := time.January; m <= time.December; m++ {
		subset, ok := byMonth[m]
		if !ok {
			continue
		}
		months = append(months, model.MonthReport{Month: m, Report: Aggregate(subset)})
	}
	return months
}

// PeriodReport aggregates the transactions of a target month (when month
// is non-zero) or of a whole year. For a yearly report the monthly
// breakdown over the year's transactions is returned alongside the
// summary. Returns ErrNoData when the selected partition is empty.
func PeriodReport(transactions []model.Transaction, month time.Month, year int) (model.Report, []model.MonthReport, error) {
	selected := Filter(transactions, FilterSpec{}, DateFilter{Month: month, Year: year}, ExportOrder)
	if len(selected) == 0 {
		return model.Report{}, nil, ErrNoData
	}

	report := Aggregate(selected)
	if month != 0 {
		return report, nil, nil
	}
	return report, MonthlyBreakdown(selected), nil
}
