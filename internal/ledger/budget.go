package ledger

import (
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

// BudgetSelector picks which budget periods a tracking query covers.
// All fields optional. With no field set, only the most recently created
// period is selected.
type BudgetSelector struct {
	Start time.Time
	End   time.Time
	Month time.Month
	Year  int
}

func (s BudgetSelector) isZero() bool {
	return s.Start.IsZero() && s.End.IsZero() && s.Month == 0 && s.Year == 0
}

// ResolveBudgetYear maps a target month to the year its budget applies
// to: months earlier than the current one roll over to next year, the
// current and later months stay in the current year. Budgets are only
// ever set for the current or a future month within the next 12.
func ResolveBudgetYear(month time.Month, today time.Time) int {
	if month < today.Month() {
		return today.Year() + 1
	}
	return today.Year()
}

// SetBudget records a spending limit for a category in the month's
// period, resolved against today per ResolveBudgetYear. Setting a limit
// for an existing period updates that category's limit in place; there
// is never more than one period per start date. New periods go to the
// front of the list (most-recent-first). The updated period list is
// returned; the input is not modified on error.
func SetBudget(periods []model.BudgetPeriod, category string, limit float64, month time.Month, today time.Time) ([]model.BudgetPeriod, error) {
	if limit < 0 {
		return periods, ErrInvalidLimit
	}
	if category == "" {
		return periods, ErrEmptyCategory
	}

	year := ResolveBudgetYear(month, today)
	start, end := monthBounds(year, month)
	limit = model.Round2(limit)

	for i := range periods {
		if periods[i].StartDate.Equal(start) {
			periods[i].Limits[category] = limit
			periods[i].RecomputeTotal()
			return periods, nil
		}
	}

	period := model.BudgetPeriod{
		ID:        len(periods) + 1,
		StartDate: start,
		EndDate:   end,
		Limits:    map[string]float64{category: limit},
		Total:     limit,
	}
	return append([]model.BudgetPeriod{period}, periods...), nil
}

// SelectPeriods returns the budget periods covered by the selector.
//
// No selector at all picks the single most recently created period.
// A full start+end range picks every period whose month overlaps it.
// A partial selector picks every period whose start or end date
// satisfies the combined date filter.
//
// An empty result is reported softly by the caller, never a hard error.
func SelectPeriods(periods []model.BudgetPeriod, sel BudgetSelector) []model.BudgetPeriod {
	if sel.isZero() {
		if len(periods) == 0 {
			return nil
		}
		return periods[:1]
	}

	var selected []model.BudgetPeriod
	if !sel.Start.IsZero() && !sel.End.IsZero() {
		for _, p := range periods {
			if !p.StartDate.After(sel.End) && !p.EndDate.Before(sel.Start) {
				selected = append(selected, p)
			}
		}
		return selected
	}

	filter := DateFilter{Start: sel.Start, End: sel.End, Month: sel.Month, Year: sel.Year}
	for _, p := range periods {
		if filter.Matches(p.StartDate) || filter.Matches(p.EndDate) {
			selected = append(selected, p)
		}
	}
	return selected
}

// TrackBudget evaluates spending against the selected budget periods,
// optionally restricted to one category. Preconditions are checked in
// order and reported without computing partial results: no matching
// periods, no expenses recorded at all, category not budgeted anywhere
// in the selection, zero budget total.
func TrackBudget(transactions []model.Transaction, periods []model.BudgetPeriod, category string, sel BudgetSelector) (model.BudgetStatus, error) {
	selected := SelectPeriods(periods, sel)
	if len(selected) == 0 {
		return model.BudgetStatus{}, ErrNoBudget
	}

	hasExpenses := false
	for _, tx := range transactions {
		if tx.Kind == model.Expense {
			hasExpenses = true
			break
		}
	}
	if !hasExpenses {
		return model.BudgetStatus{}, ErrNoExpenses
	}

	var budgetTotal float64
	if category != "" {
		budgeted := false
		for _, p := range selected {
			if limit, ok := p.Limits[category]; ok {
				budgeted = true
				budgetTotal += limit
			}
		}
		if !budgeted {
			return model.BudgetStatus{}, ErrCategoryNotBudgeted
		}
	} else {
		for _, p := range selected {
			budgetTotal += p.Total
		}
	}
	budgetTotal = model.Round2(budgetTotal)
	if budgetTotal == 0 {
		return model.BudgetStatus{}, ErrZeroBudget
	}

	// Covering window over all selected periods.
	windowStart, windowEnd := selected[0].StartDate, selected[0].EndDate
	for _, p := range selected[1:] {
		if p.StartDate.Before(windowStart) {
			windowStart = p.StartDate
		}
		if p.EndDate.After(windowEnd) {
			windowEnd = p.EndDate
		}
	}

	spec := FilterSpec{Kind: model.Expense, Category: category}
	window := DateFilter{Start: windowStart, End: windowEnd}
	inWindow := Filter(transactions, spec, window, ExportOrder)

	var totalExpense float64
	if category != "" {
		for _, tx := range inWindow {
			totalExpense += tx.Amount
		}
		totalExpense = model.Round2(totalExpense)
	} else {
		totalExpense = Aggregate(inWindow).TotalExpenses
	}

	status := model.BudgetStatus{
		Category:     category,
		Periods:      selected,
		WindowStart:  windowStart,
		WindowEnd:    windowEnd,
		TotalExpense: totalExpense,
		BudgetTotal:  budgetTotal,
		Progress:     totalExpense / budgetTotal * 100,
	}

	switch {
	case status.Progress > 100:
		status.Alert = model.AlertExceeded
	case status.Progress == 100:
		status.Alert = model.AlertReached
	case status.Progress > 70:
		status.Alert = model.AlertAlmost
	}

	return status, nil
}
