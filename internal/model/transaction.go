// Package model defines the domain types shared across the ledger engine,
// the stores, and the CLI.
package model

import (
	"math"
	"time"
)

// Kind distinguishes the two transaction variants.
type Kind string

const (
	Expense Kind = "expense"
	Income  Kind = "income"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Expense || k == Income
}

// Transaction is an immutable income or expense record. Description is
// only ever set on Expense-kind transactions.
type Transaction struct {
	ID          int       `json:"id"`
	Kind        Kind      `json:"type"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
}

// Round2 rounds an amount to 2 fractional digits (half away from zero).
// All stored and reported amounts go through this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
