package ledger

import "errors"

// Validation errors abort the operation before any mutation.
var (
	ErrInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidAmount = errors.New("amount must be non-negative")
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidLimit  = errors.New("budget limit must be non-negative")
)

// Reportable conditions: not failures, the caller renders them as
// informational messages and exits successfully.
var (
	ErrNoData              = errors.New("no transactions in the selected period")
	ErrNoBudget            = errors.New("no budgets matching the selection")
	ErrNoExpenses          = errors.New("no expenses recorded yet")
	ErrCategoryNotBudgeted = errors.New("category has no budget in the selected periods")
	ErrZeroBudget          = errors.New("budget total is zero, progress is undefined")
)
