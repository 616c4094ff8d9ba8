package ledger

import (
	"sort"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"
)

// ByCategory sums expense amounts per category over the target period and
// returns rows sorted ascending by total, smallest spend first. The
// ascending order is deliberate: it surfaces small, easily forgotten
// categories at the top of the output.
//
// When the selected expense set is empty or sums to zero there is nothing
// to take percentages of; the result is zero rows, never a division
// error.
func ByCategory(transactions []model.Transaction, month time.Month, year int) []model.CategoryTotal {
	expenses := Filter(transactions, FilterSpec{Kind: model.Expense}, DateFilter{Month: month, Year: year}, ExportOrder)

	sums := make(map[string]float64)
	for _, tx := range expenses {
		sums[tx.Category] += tx.Amount
	}

	var grand float64
	rows := make([]model.CategoryTotal, 0, len(sums))
	for category, total := range sums {
		total = model.Round2(total)
		grand += total
		rows = append(rows, model.CategoryTotal{Category: category, Total: total})
	}
	if grand == 0 {
		return nil
	}

	for i := range rows {
		rows[i].Percent = rows[i].Total / grand * 100
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total < rows[j].Total
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
