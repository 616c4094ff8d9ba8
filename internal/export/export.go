// Package export serializes filtered transaction sequences to CSV or
// JSON. It receives the already-filtered, already-ordered slice and does
// no filtering, prompting, or overwrite handling of its own.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Format names a supported export encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case CSV, JSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or json)", s)
	}
}

// record is the agreed export field set.
type record struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}

func toRecord(tx model.Transaction) record {
	return record{
		ID:          tx.ID,
		Type:        string(tx.Kind),
		Date:        tx.Date.Format("2006-01-02"),
		Amount:      tx.Amount,
		Category:    tx.Category,
		Description: tx.Description,
	}
}

// Write serializes transactions to w in the given format, preserving
// their order.
func Write(w io.Writer, format Format, transactions []model.Transaction) error {
	switch format {
	case CSV:
		return writeCSV(w, transactions)
	case JSON:
		return writeJSON(w, transactions)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeCSV(w io.Writer, transactions []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "type", "date", "amount", "category", "description"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, tx := range transactions {
		r := toRecord(tx)
		row := []string{
			strconv.Itoa(r.ID),
			r.Type,
			r.Date,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Category,
			r.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, transactions []model.Transaction) error {
	records := make([]record, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, toRecord(tx))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
