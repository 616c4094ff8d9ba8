package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/fintrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const sqliteDateLayout = "2006-01-02"

// SQLiteStore persists the ledger in a SQLite database. Each save
// replaces the collection inside one transaction, keeping the
// all-or-nothing contract of the JSON store.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadTransactions reads all transactions in stored order (most recent
// first).
func (s *SQLiteStore) LoadTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, kind, tx_date, amount, category, description
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var kind, dateStr string
		var description sql.NullString
		if err := rows.Scan(&tx.ID, &kind, &dateStr, &tx.Amount, &tx.Category, &description); err != nil {
			return nil, err
		}
		tx.Kind = model.Kind(kind)
		tx.Date, err = time.Parse(sqliteDateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("transaction %d has bad date %q: %w", tx.ID, dateStr, err)
		}
		if description.Valid {
			tx.Description = description.String
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// LoadBudgets reads all budget periods with their limits, in stored
// order.
func (s *SQLiteStore) LoadBudgets() ([]model.BudgetPeriod, error) {
	rows, err := s.db.Query(`SELECT id, start_date, end_date, total
		FROM budget_periods ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.BudgetPeriod
	index := make(map[int]int)
	for rows.Next() {
		var p model.BudgetPeriod
		var startStr, endStr string
		if err := rows.Scan(&p.ID, &startStr, &endStr, &p.Total); err != nil {
			return nil, err
		}
		if p.StartDate, err = time.Parse(sqliteDateLayout, startStr); err != nil {
			return nil, fmt.Errorf("budget %d has bad start date %q: %w", p.ID, startStr, err)
		}
		if p.EndDate, err = time.Parse(sqliteDateLayout, endStr); err != nil {
			return nil, fmt.Errorf("budget %d has bad end date %q: %w", p.ID, endStr, err)
		}
		p.Limits = make(map[string]float64)
		index[p.ID] = len(budgets)
		budgets = append(budgets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	limitRows, err := s.db.Query(`SELECT period_id, category, limit_amount FROM budget_limits`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = limitRows.Close() }()

	for limitRows.Next() {
		var periodID int
		var category string
		var limit float64
		if err := limitRows.Scan(&periodID, &category, &limit); err != nil {
			return nil, err
		}
		if i, ok := index[periodID]; ok {
			budgets[i].Limits[category] = limit
		}
	}
	return budgets, limitRows.Err()
}

// SaveTransactions replaces the transaction table inside one database
// transaction.
func (s *SQLiteStore) SaveTransactions(transactions []model.Transaction) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback() }()

	if _, err := dbTx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}
	for position, tx := range transactions {
		_, err := dbTx.Exec(`INSERT INTO transactions
			(id, position, kind, tx_date, amount, category, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			tx.ID, position, string(tx.Kind), tx.Date.Format(sqliteDateLayout),
			tx.Amount, tx.Category, tx.Description,
		)
		if err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

// SaveBudgets replaces the budget tables inside one database transaction.
func (s *SQLiteStore) SaveBudgets(budgets []model.BudgetPeriod) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbTx.Rollback() }()

	if _, err := dbTx.Exec("DELETE FROM budget_limits"); err != nil {
		return err
	}
	if _, err := dbTx.Exec("DELETE FROM budget_periods"); err != nil {
		return err
	}
	for position, p := range budgets {
		_, err := dbTx.Exec(`INSERT INTO budget_periods
			(id, position, start_date, end_date, total)
			VALUES (?, ?, ?, ?, ?)`,
			p.ID, position, p.StartDate.Format(sqliteDateLayout),
			p.EndDate.Format(sqliteDateLayout), p.Total,
		)
		if err != nil {
			return err
		}
		for category, limit := range p.Limits {
			_, err := dbTx.Exec(`INSERT INTO budget_limits
				(period_id, category, limit_amount) VALUES (?, ?, ?)`,
				p.ID, category, limit,
			)
			if err != nil {
				return err
			}
		}
	}
	return dbTx.Commit()
}
