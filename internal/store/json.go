// Package store provides the persistence backends for the ledger: a JSON
// file store and a SQLite store. Both load everything on open and replace
// the full collection on save, so a partially written state is never
// observable.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/fintrack/internal/model"
)

// ledgerFile is the on-disk JSON document holding both collections.
type ledgerFile struct {
	Version      int                  `json:"version"`
	Transactions []model.Transaction  `json:"transactions"`
	Budgets      []model.BudgetPeriod `json:"budgets"`
}

// JSONStore persists the ledger to a single JSON file. Saves write to a
// temp file and rename over the original, so a crash mid-write leaves
// the previous document intact.
type JSONStore struct {
	path string
	doc  ledgerFile
}

// OpenJSON opens or creates the JSON store at path, loading the existing
// document if present.
func OpenJSON(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &JSONStore{path: path, doc: ledgerFile{Version: 1}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return s, nil
}

// LoadTransactions returns the persisted transactions, most recent first.
func (s *JSONStore) LoadTransactions() ([]model.Transaction, error) {
	return s.doc.Transactions, nil
}

// LoadBudgets returns the persisted budget periods, most recent first.
func (s *JSONStore) LoadBudgets() ([]model.BudgetPeriod, error) {
	return s.doc.Budgets, nil
}

// SaveTransactions atomically replaces the transaction collection.
func (s *JSONStore) SaveTransactions(transactions []model.Transaction) error {
	doc := s.doc
	doc.Transactions = transactions
	if err := s.write(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// SaveBudgets atomically replaces the budget collection.
func (s *JSONStore) SaveBudgets(budgets []model.BudgetPeriod) error {
	doc := s.doc
	doc.Budgets = budgets
	if err := s.write(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Close is a no-op for the JSON store; it exists to satisfy the shared
// backend surface with the SQLite store.
func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) write(doc ledgerFile) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}
