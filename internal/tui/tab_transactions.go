package tui

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// newTransactionTable builds the scrollable transaction table, most
// recent first.
func newTransactionTable(transactions []model.Transaction, currency string) table.Model {
	t := theme.Active

	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 11},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 28},
	}

	rows := make([]table.Row, 0, len(transactions))
	for _, tx := range transactions {
		amount := cli.FormatAmount(currency, tx.Amount)
		kind := "expense"
		if tx.Kind == model.Income {
			kind = "income"
		} else {
			amount = "-" + amount
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", tx.ID),
			cli.FormatDate(tx.Date),
			kind,
			tx.Category,
			amount,
			tx.Description,
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(false)
	tbl.SetStyles(styles)

	return tbl
}

func (a App) renderTransactions() string {
	if len(a.ledger.Transactions()) == 0 {
		return "  No transactions yet. Record one with `fintrack add`."
	}
	return a.txTable.View()
}
