package components

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct maps budget consumption (0-100+) onto the alert palette:
// green while comfortably inside, orange past 70, red past 100.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct > 100:
		return string(t.Red)
	case pct > 70:
		return string(t.Orange)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled budget consumption bar with percentage.
// pct is a 0-100 scale value and may exceed 100.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	ratio := pct / 100
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(ratio) +
		" " +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct))
}
