package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

// Both backends satisfy the engine's Store interface.
var (
	_ ledger.Store = (*JSONStore)(nil)
	_ ledger.Store = (*SQLiteStore)(nil)
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func fixtures(t *testing.T) ([]model.Transaction, []model.BudgetPeriod) {
	t.Helper()
	transactions := []model.Transaction{
		{ID: 2, Kind: model.Income, Date: day(t, "2024-03-25"), Amount: 2000, Category: "salary"},
		{ID: 1, Kind: model.Expense, Date: day(t, "2024-03-20"), Amount: 45.50, Category: "food", Description: "groceries"},
	}
	budgets := []model.BudgetPeriod{
		{
			ID:        1,
			StartDate: day(t, "2024-03-01"),
			EndDate:   day(t, "2024-03-31"),
			Limits:    map[string]float64{"food": 200, "transport": 80},
			Total:     280,
		},
	}
	return transactions, budgets
}

func checkRoundTrip(t *testing.T, s ledger.Store) {
	t.Helper()
	transactions, budgets := fixtures(t)

	if err := s.SaveTransactions(transactions); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}
	if err := s.SaveBudgets(budgets); err != nil {
		t.Fatalf("SaveBudgets: %v", err)
	}

	gotTx, err := s.LoadTransactions()
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(gotTx) != 2 {
		t.Fatalf("loaded %d transactions, want 2", len(gotTx))
	}
	if gotTx[0].ID != 2 || gotTx[1].ID != 1 {
		t.Errorf("stored order not preserved: IDs %d, %d", gotTx[0].ID, gotTx[1].ID)
	}
	if gotTx[1].Description != "groceries" {
		t.Errorf("Description = %q, want groceries", gotTx[1].Description)
	}
	if !gotTx[1].Date.Equal(day(t, "2024-03-20")) {
		t.Errorf("Date = %v", gotTx[1].Date)
	}

	gotBudgets, err := s.LoadBudgets()
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if len(gotBudgets) != 1 {
		t.Fatalf("loaded %d budgets, want 1", len(gotBudgets))
	}
	p := gotBudgets[0]
	if p.Total != 280 || p.Limits["food"] != 200 || p.Limits["transport"] != 80 {
		t.Errorf("budget = %+v", p)
	}
	if !p.StartDate.Equal(day(t, "2024-03-01")) || !p.EndDate.Equal(day(t, "2024-03-31")) {
		t.Errorf("period bounds = %v .. %v", p.StartDate, p.EndDate)
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	s, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON: %v", err)
	}
	checkRoundTrip(t, s)

	// A fresh open sees the persisted state.
	reopened, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	checkRoundTrip(t, reopened)
}

func TestJSONStore_MissingFileIsEmpty(t *testing.T) {
	s, err := OpenJSON(filepath.Join(t.TempDir(), "ledger.json"))
	if err != nil {
		t.Fatalf("OpenJSON: %v", err)
	}
	transactions, err := s.LoadTransactions()
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("fresh store has %d transactions", len(transactions))
	}
}

func TestJSONStore_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenJSON(path); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Fatalf("OpenJSON on corrupt file: err = %v, want parse error", err)
	}
}

func TestJSONStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.json")

	s, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON: %v", err)
	}
	transactions, _ := fixtures(t)
	if err := s.SaveTransactions(transactions); err != nil {
		t.Fatalf("SaveTransactions: %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = s.Close() }()

	checkRoundTrip(t, s)
}

func TestSQLiteStore_SaveReplacesCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = s.Close() }()

	transactions, budgets := fixtures(t)
	if err := s.SaveTransactions(transactions); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveTransactions(transactions[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.LoadTransactions()
	if err != nil {
		t.Fatalf("LoadTransactions: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("loaded %d transactions after replace, want 1", len(got))
	}

	// Budget replace drops stale limits too.
	if err := s.SaveBudgets(budgets); err != nil {
		t.Fatalf("save budgets: %v", err)
	}
	if err := s.SaveBudgets(nil); err != nil {
		t.Fatalf("clear budgets: %v", err)
	}
	gotBudgets, err := s.LoadBudgets()
	if err != nil {
		t.Fatalf("LoadBudgets: %v", err)
	}
	if len(gotBudgets) != 0 {
		t.Errorf("loaded %d budgets after clear, want 0", len(gotBudgets))
	}
}
