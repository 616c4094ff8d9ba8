package model

import "time"

// Report holds aggregated totals over a transaction subset. TopCategory
// is nil when the subset is empty or has no categorized transactions.
type Report struct {
	TotalExpenses float64
	TotalIncome   float64
	NetSavings    float64
	TopCategory   *CategoryStat
}

// CategoryStat is the dominant-category statistic attached to a report:
// the most frequent category across all transactions in the subset,
// paired with its expense-only total.
type CategoryStat struct {
	Name          string
	Count         int
	ExpenseAmount float64
}

// MonthReport pairs a calendar month with its aggregate, for yearly
// breakdowns. Slices of MonthReport are ordered January first.
type MonthReport struct {
	Month  time.Month
	Report Report
}

// CategoryTotal is one row of a category report: expense total for one
// category and its share of the period's expenses.
type CategoryTotal struct {
	Category string
	Total    float64
	Percent  float64
}

// AlertLevel classifies budget progress. Exactly one level applies.
type AlertLevel int

const (
	AlertNone AlertLevel = iota
	AlertAlmost
	AlertReached
	AlertExceeded
)

// BudgetStatus is the result of tracking spending against one or more
// budget periods.
type BudgetStatus struct {
	Category     string // empty when tracking all categories
	Periods      []BudgetPeriod
	WindowStart  time.Time
	WindowEnd    time.Time
	TotalExpense float64
	BudgetTotal  float64
	Progress     float64 // percent, may exceed 100
	Alert        AlertLevel
}

// Overrun returns the amount by which spending exceeds the budget.
// Zero unless the budget has been exceeded.
func (s BudgetStatus) Overrun() float64 {
	if s.Alert != AlertExceeded {
		return 0
	}
	return Round2(s.TotalExpense - s.BudgetTotal)
}
