package model

import "time"

// BudgetPeriod is a calendar-month budget envelope: per-category spending
// limits plus their running total. StartDate and EndDate are the first and
// last day of the target month. At most one period exists per StartDate.
type BudgetPeriod struct {
	ID        int                `json:"id"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Limits    map[string]float64 `json:"limits"`
	Total     float64            `json:"total"`
}

// RecomputeTotal refreshes Total from the current limits. Called after
// every limit change so Total never drifts.
func (p *BudgetPeriod) RecomputeTotal() {
	total := 0.0
	for _, limit := range p.Limits {
		total += limit
	}
	p.Total = Round2(total)
}
