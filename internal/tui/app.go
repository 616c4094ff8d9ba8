// Package tui provides the interactive Bubble Tea dashboard for fintrack.
package tui

import (
	"time"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabTransactions
	tabBudgets
)

const minContentHeight = 5

// App is the root Bubble Tea model. The ledger is loaded before the
// program starts, so there is no async data phase.
type App struct {
	ledger   *ledger.Ledger
	currency string

	// UI state
	width     int
	height    int
	activeTab int

	txTable table.Model
}

// NewApp creates the dashboard model over an already-loaded ledger.
func NewApp(l *ledger.Ledger, currency string) App {
	a := App{
		ledger:   l,
		currency: currency,
	}
	a.txTable = newTransactionTable(l.List(ledger.FilterSpec{}, ledger.DateFilter{}), currency)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeTable()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
	}

	// Remaining input scrolls the transaction table when it is visible.
	if a.activeTab == tabTransactions {
		var cmd tea.Cmd
		a.txTable, cmd = a.txTable.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	header := titleStyle.Render(" fintrack") + "  " +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(time.Now().Format("Monday, Jan 2 2006"))

	var body string
	switch a.activeTab {
	case tabTransactions:
		body = a.renderTransactions()
	case tabBudgets:
		body = a.renderBudgets()
	default:
		body = a.renderOverview()
	}

	return header + "\n" +
		components.RenderTabBar(a.activeTab) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(a.width, len(a.ledger.Transactions()))
}

func (a *App) resizeTable() {
	h := a.height - 8 // header + tab bar + status bar
	if h < minContentHeight {
		h = minContentHeight
	}
	a.txTable.SetHeight(h)
	a.txTable.SetWidth(a.width)
}

// contentWidth caps card rows at a readable width on wide terminals.
func (a App) contentWidth() int {
	w := a.width
	if w > 120 {
		w = 120
	}
	return w
}
