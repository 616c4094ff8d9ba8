package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Set and track monthly budgets",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category> <limit>",
	Short: "Set a category spending limit for a month",
	Long:  "Set a category spending limit for the given month. A month earlier than the current one targets next year's calendar.",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Track spending against budget periods",
	RunE:  runBudgetStatus,
}

func init() {
	budgetSetCmd.Flags().IntVarP(&flagMonth, "month", "m", 0, "Target month (1-12, default current)")

	budgetStatusCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Track a single category")
	budgetStatusCmd.Flags().StringVar(&flagFrom, "from", "", "Select periods overlapping from this date (YYYY-MM-DD)")
	budgetStatusCmd.Flags().StringVar(&flagTo, "to", "", "Select periods overlapping up to this date (YYYY-MM-DD)")
	periodFlags(budgetStatusCmd)

	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetStatusCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	limit, err := parseAmount(args[1])
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			return ledger.ErrInvalidLimit
		}
		return err
	}

	month := time.Month(flagMonth)
	if month == 0 {
		month = time.Now().Month()
	}
	if month < time.January || month > time.December {
		return fmt.Errorf("invalid month %d (want 1-12)", flagMonth)
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := l.SetBudget(args[0], limit, month); err != nil {
		return err
	}

	year := ledger.ResolveBudgetYear(month, time.Now())
	fmt.Printf("  Budget set: %s for %s in %s %d\n",
		cli.FormatAmount(cfg.General.Currency, limit),
		args[0],
		month.String(),
		year,
	)
	return nil
}

func runBudgetStatus(_ *cobra.Command, _ []string) error {
	start, err := ledger.ParseDate(flagFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	end, err := ledger.ParseDate(flagTo)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}
	month, year, err := selectedPeriod()
	if err != nil {
		return err
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	sel := ledger.BudgetSelector{Start: start, End: end, Month: month, Year: year}
	status, err := l.TrackBudget(flagCategory, sel)
	if err != nil {
		return describeBudgetError(err)
	}

	printBudgetStatus(cfg.General.Currency, status)
	return nil
}

// describeBudgetError turns the tracking sentinels into guidance instead
// of a raw error line.
func describeBudgetError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrNoBudget):
		return fmt.Errorf("no budget matches the selection; set one with `fintrack budget set`")
	case errors.Is(err, ledger.ErrNoExpenses):
		fmt.Println("\n  No expenses recorded in the budget window yet.")
		return nil
	case errors.Is(err, ledger.ErrCategoryNotBudgeted):
		return fmt.Errorf("category has no limit in the selected budget; set one with `fintrack budget set`")
	case errors.Is(err, ledger.ErrZeroBudget):
		return fmt.Errorf("selected budget has a zero limit, nothing to track against")
	}
	return err
}

func printBudgetStatus(currency string, status model.BudgetStatus) {
	scope := "all categories"
	if status.Category != "" {
		scope = status.Category
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", scope)))
	fmt.Println()

	fmt.Printf("  Window    %s to %s (%d period(s))\n",
		cli.FormatDate(status.WindowStart),
		cli.FormatDate(status.WindowEnd),
		len(status.Periods),
	)
	fmt.Printf("  Spent     %s of %s\n",
		cli.FormatAmount(currency, status.TotalExpense),
		cli.FormatAmount(currency, status.BudgetTotal),
	)
	fmt.Printf("  Progress  %s\n", cli.RenderBudgetBar(status.Progress, 30))

	switch status.Alert {
	case model.AlertExceeded:
		fmt.Printf("\n  %s\n", cli.Expense(fmt.Sprintf(
			"Budget exceeded by %s.", cli.FormatAmount(currency, status.Overrun()))))
	case model.AlertReached:
		fmt.Printf("\n  %s\n", cli.Warn("Budget reached. No room left."))
	case model.AlertAlmost:
		fmt.Printf("\n  %s\n", cli.Warn("Budget almost reached."))
	default:
		fmt.Printf("\n  %s\n", cli.Income("Within budget."))
	}
	fmt.Println()
}
