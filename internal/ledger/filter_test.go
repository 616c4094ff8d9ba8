package ledger

import (
	"testing"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

func tx(t *testing.T, kind model.Kind, day string, amount float64, category string) model.Transaction {
	t.Helper()
	return model.Transaction{
		Kind:     kind,
		Date:     date(t, day),
		Amount:   amount,
		Category: category,
	}
}

func sampleTransactions(t *testing.T) []model.Transaction {
	t.Helper()
	// Store order: most recent first, as the ledger maintains it.
	return []model.Transaction{
		tx(t, model.Expense, "2024-04-10", 30, "transport"),
		tx(t, model.Income, "2024-03-25", 2000, "salary"),
		tx(t, model.Expense, "2024-03-20", 45.50, "food"),
		tx(t, model.Expense, "2024-03-05", 12, "food"),
		tx(t, model.Expense, "2023-12-31", 99.99, "gifts"),
	}
}

func TestFilter_IdentityReturnsAllUnchanged(t *testing.T) {
	transactions := sampleTransactions(t)
	got := Filter(transactions, FilterSpec{}, DateFilter{}, ExportOrder)

	if len(got) != len(transactions) {
		t.Fatalf("identity filter returned %d transactions, want %d", len(got), len(transactions))
	}
	for i := range got {
		if !got[i].Date.Equal(transactions[i].Date) {
			t.Errorf("position %d changed: got %v, want %v", i, got[i].Date, transactions[i].Date)
		}
	}
}

func TestFilter_FieldConstraints(t *testing.T) {
	transactions := sampleTransactions(t)

	tests := []struct {
		name string
		spec FilterSpec
		want int
	}{
		{"by category", FilterSpec{Category: "food"}, 2},
		{"by kind expense", FilterSpec{Kind: model.Expense}, 4},
		{"by kind income", FilterSpec{Kind: model.Income}, 1},
		{"category and kind", FilterSpec{Category: "food", Kind: model.Expense}, 2},
		{"no match", FilterSpec{Category: "rent"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(transactions, tt.spec, DateFilter{}, ExportOrder)
			if len(got) != tt.want {
				t.Errorf("Filter(%+v) returned %d, want %d", tt.spec, len(got), tt.want)
			}
		})
	}
}

func TestFilter_DateConstraints(t *testing.T) {
	transactions := sampleTransactions(t)

	tests := []struct {
		name  string
		dates DateFilter
		want  int
	}{
		{"march only", DateFilter{Month: time.March}, 3},
		{"year 2024", DateFilter{Year: 2024}, 4},
		{"march 2024", DateFilter{Month: time.March, Year: 2024}, 3},
		{"range", DateFilter{Start: date(t, "2024-03-01"), End: date(t, "2024-03-31")}, 3},
		{"range and month agree", DateFilter{Start: date(t, "2024-01-01"), Month: time.April}, 1},
		{"range and month conflict", DateFilter{End: date(t, "2023-12-31"), Month: time.April}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(transactions, FilterSpec{}, tt.dates, ExportOrder)
			if len(got) != tt.want {
				t.Errorf("Filter(dates=%+v) returned %d, want %d", tt.dates, len(got), tt.want)
			}
		})
	}
}

func TestFilter_BrowseOrderSortsDateDescending(t *testing.T) {
	// Deliberately out of order on input.
	transactions := []model.Transaction{
		tx(t, model.Expense, "2024-03-05", 12, "food"),
		tx(t, model.Expense, "2024-04-10", 30, "transport"),
		tx(t, model.Expense, "2024-03-20", 45.50, "food"),
	}

	got := Filter(transactions, FilterSpec{}, DateFilter{}, BrowseOrder)
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("browse order not descending: %v before %v", got[i-1].Date, got[i].Date)
		}
	}
}

func TestFilter_ExportOrderPreservesInput(t *testing.T) {
	transactions := []model.Transaction{
		tx(t, model.Expense, "2024-03-05", 12, "food"),
		tx(t, model.Expense, "2024-04-10", 30, "transport"),
		tx(t, model.Expense, "2024-03-20", 45.50, "food"),
	}

	got := Filter(transactions, FilterSpec{}, DateFilter{}, ExportOrder)
	for i := range got {
		if !got[i].Date.Equal(transactions[i].Date) {
			t.Fatalf("export order changed position %d", i)
		}
	}
}

func TestFilter_EmptyResultIsNotAnError(t *testing.T) {
	got := Filter(nil, FilterSpec{Category: "food"}, DateFilter{}, BrowseOrder)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}
