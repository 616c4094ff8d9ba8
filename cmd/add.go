package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDate        string
	flagDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
}

var addExpenseCmd = &cobra.Command{
	Use:   "expense <amount> <category>",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(model.Expense, args)
	},
}

var addIncomeCmd = &cobra.Command{
	Use:   "income <amount> <category>",
	Short: "Record an income entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(model.Income, args)
	},
}

func init() {
	addExpenseCmd.Flags().StringVar(&flagDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	addExpenseCmd.Flags().StringVar(&flagDescription, "description", "", "Free-form note")
	addIncomeCmd.Flags().StringVar(&flagDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")

	addCmd.AddCommand(addExpenseCmd)
	addCmd.AddCommand(addIncomeCmd)
	rootCmd.AddCommand(addCmd)
}

func runAdd(kind model.Kind, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	l, st, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	addArgs := ledger.AddArgs{
		Amount:      amount,
		Category:    args[1],
		Description: flagDescription,
		Date:        flagDate,
	}

	var tx model.Transaction
	if kind == model.Income {
		tx, err = l.AddIncome(addArgs)
	} else {
		tx, err = l.AddExpense(addArgs)
	}
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded %s #%d: %s %s on %s\n",
		kindLabel(tx.Kind),
		tx.ID,
		cli.FormatAmount(cfg.General.Currency, tx.Amount),
		tx.Category,
		cli.FormatDate(tx.Date),
	)
	return nil
}
