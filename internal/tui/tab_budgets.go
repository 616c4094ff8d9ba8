package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderBudgets shows consumption of the most recently created budget
// period, overall and per budgeted category.
func (a App) renderBudgets() string {
	budgets := a.ledger.Budgets()
	if len(budgets) == 0 {
		return "  No budgets set. Create one with `fintrack budget set`."
	}

	period := budgets[0]
	title := fmt.Sprintf("Budget  %s to %s",
		cli.FormatDate(period.StartDate),
		cli.FormatDate(period.EndDate),
	)

	var b strings.Builder

	status, err := a.ledger.TrackBudget("", ledger.BudgetSelector{})
	switch {
	case errors.Is(err, ledger.ErrNoExpenses):
		b.WriteString("No expenses recorded in this period yet.\n")
	case err != nil:
		fmt.Fprintf(&b, "%s\n", err)
	default:
		fmt.Fprintf(&b, "Spent %s of %s\n",
			cli.FormatAmount(a.currency, status.TotalExpense),
			cli.FormatAmount(a.currency, status.BudgetTotal),
		)
		b.WriteString(components.BudgetBar("Overall", status.Progress, 14, 30))
		b.WriteString("\n")
		if line := alertLine(a.currency, status); line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	categories := make([]string, 0, len(period.Limits))
	for category := range period.Limits {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		st, err := a.ledger.TrackBudget(category, ledger.BudgetSelector{})
		if err != nil {
			// Zero limits and categories without expenses get a flat bar.
			b.WriteString(components.BudgetBar(category, 0, 14, 30))
			b.WriteString("\n")
			continue
		}
		b.WriteString(components.BudgetBar(category, st.Progress, 14, 30))
		b.WriteString("\n")
	}

	return components.ContentCard(title, b.String(), a.contentWidth())
}

func alertLine(currency string, status model.BudgetStatus) string {
	t := theme.Active
	warn := lipgloss.NewStyle().Foreground(t.Orange)
	bad := lipgloss.NewStyle().Foreground(t.Red)

	switch status.Alert {
	case model.AlertExceeded:
		return bad.Render(fmt.Sprintf("Budget exceeded by %s.",
			cli.FormatAmount(currency, status.Overrun())))
	case model.AlertReached:
		return warn.Render("Budget reached. No room left.")
	case model.AlertAlmost:
		return warn.Render("Budget almost reached.")
	}
	return ""
}
