package ledger

import (
	"fmt"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Store is the persistence collaborator. The engine triggers a save after
// every successful mutation but never touches the filesystem itself.
type Store interface {
	LoadTransactions() ([]model.Transaction, error)
	LoadBudgets() ([]model.BudgetPeriod, error)
	SaveTransactions([]model.Transaction) error
	SaveBudgets([]model.BudgetPeriod) error
}

// Ledger is the in-memory aggregate of the transaction and budget stores.
// Both collections are kept most-recent-first. Transactions are immutable
// once added and are never deleted. Not safe for concurrent use.
type Ledger struct {
	store        Store
	transactions []model.Transaction
	budgets      []model.BudgetPeriod
	now          func() time.Time
}

// New loads both collections from the store.
func New(store Store) (*Ledger, error) {
	transactions, err := store.LoadTransactions()
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	budgets, err := store.LoadBudgets()
	if err != nil {
		return nil, fmt.Errorf("loading budgets: %w", err)
	}
	return &Ledger{
		store:        store,
		transactions: transactions,
		budgets:      budgets,
		now:          time.Now,
	}, nil
}

// AddArgs holds the pre-typed arguments of an add operation. Date is a
// pre-validated YYYY-MM-DD string, empty for "today". Description is
// ignored for income.
type AddArgs struct {
	Amount      float64
	Category    string
	Description string
	Date        string
}

// AddExpense validates, records, and persists a new expense. On any
// failure nothing changes: validation runs before the mutation, and a
// failed save rolls the in-memory append back.
func (l *Ledger) AddExpense(args AddArgs) (model.Transaction, error) {
	return l.add(model.Expense, args)
}

// AddIncome records a new income transaction. Income carries no
// description.
func (l *Ledger) AddIncome(args AddArgs) (model.Transaction, error) {
	args.Description = ""
	return l.add(model.Income, args)
}

func (l *Ledger) add(kind model.Kind, args AddArgs) (model.Transaction, error) {
	if args.Amount < 0 {
		return model.Transaction{}, ErrInvalidAmount
	}
	if args.Category == "" {
		return model.Transaction{}, ErrEmptyCategory
	}
	date, err := ParseDate(args.Date)
	if err != nil {
		return model.Transaction{}, err
	}
	if date.IsZero() {
		date = l.today()
	}

	tx := model.Transaction{
		ID:          len(l.transactions) + 1,
		Kind:        kind,
		Date:        date,
		Amount:      model.Round2(args.Amount),
		Category:    args.Category,
		Description: args.Description,
	}

	prev := l.transactions
	l.transactions = append([]model.Transaction{tx}, l.transactions...)
	if err := l.store.SaveTransactions(l.transactions); err != nil {
		l.transactions = prev
		return model.Transaction{}, fmt.Errorf("saving transactions: %w", err)
	}
	return tx, nil
}

// List returns matching transactions in browse order (most recent first).
func (l *Ledger) List(spec FilterSpec, dates DateFilter) []model.Transaction {
	return Filter(l.transactions, spec, dates, BrowseOrder)
}

// Export returns matching transactions in export order (store order
// preserved).
func (l *Ledger) Export(spec FilterSpec, dates DateFilter) []model.Transaction {
	return Filter(l.transactions, spec, dates, ExportOrder)
}

// Report produces the period summary for a month (month non-zero) or a
// whole year, with the monthly breakdown for yearly reports.
func (l *Ledger) Report(month time.Month, year int) (model.Report, []model.MonthReport, error) {
	return PeriodReport(l.transactions, month, year)
}

// Categories produces the per-category expense breakdown for the period.
func (l *Ledger) Categories(month time.Month, year int) []model.CategoryTotal {
	return ByCategory(l.transactions, month, year)
}

// SetBudget records a category limit for the month's period and persists
// the budget list. A failed save rolls the in-memory update back.
func (l *Ledger) SetBudget(category string, limit float64, month time.Month) error {
	prev := cloneBudgets(l.budgets)
	updated, err := SetBudget(l.budgets, category, limit, month, l.today())
	if err != nil {
		return err
	}
	l.budgets = updated
	if err := l.store.SaveBudgets(l.budgets); err != nil {
		l.budgets = prev
		return fmt.Errorf("saving budgets: %w", err)
	}
	return nil
}

// TrackBudget evaluates spending against the selected budget periods.
func (l *Ledger) TrackBudget(category string, sel BudgetSelector) (model.BudgetStatus, error) {
	return TrackBudget(l.transactions, l.budgets, category, sel)
}

// Transactions returns the transaction list, most recent first.
func (l *Ledger) Transactions() []model.Transaction {
	return l.transactions
}

// Budgets returns the budget period list, most recently created first.
func (l *Ledger) Budgets() []model.BudgetPeriod {
	return l.budgets
}

// today returns the current date at day precision.
func (l *Ledger) today() time.Time {
	now := l.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// SetBudget mutates limit maps in place, so the rollback copy has to be
// deep for the budget slice.
func cloneBudgets(periods []model.BudgetPeriod) []model.BudgetPeriod {
	cloned := make([]model.BudgetPeriod, len(periods))
	for i, p := range periods {
		limits := make(map[string]float64, len(p.Limits))
		for k, v := range p.Limits {
			limits[k] = v
		}
		p.Limits = limits
		cloned[i] = p
	}
	return cloned
}
