package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Entry is one imported transaction before the ledger assigns it an ID.
// Date stays a string so the engine applies its own validation.
type Entry struct {
	Kind        model.Kind
	Date        string
	Amount      float64
	Category    string
	Description string
}

// Read parses entries from w's counterpart format. CSV reading is
// tolerant: malformed rows are skipped and counted instead of failing
// the whole import. JSON reading is strict.
func Read(r io.Reader, format Format) ([]Entry, int, error) {
	switch format {
	case CSV:
		return readCSV(r)
	case JSON:
		return readJSON(r)
	default:
		return nil, 0, fmt.Errorf("unknown export format %q", format)
	}
}

func readCSV(r io.Reader) ([]Entry, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []Entry
	skipped := 0
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if first {
			first = false
			if len(row) > 0 && row[0] == "id" {
				continue // header row
			}
		}

		entry, ok := rowToEntry(row)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}

func rowToEntry(row []string) (Entry, bool) {
	if len(row) < 5 {
		return Entry{}, false
	}
	kind := model.Kind(row[1])
	if !kind.Valid() {
		return Entry{}, false
	}
	amount, err := strconv.ParseFloat(row[3], 64)
	if err != nil || amount < 0 {
		return Entry{}, false
	}

	entry := Entry{
		Kind:     kind,
		Date:     row[2],
		Amount:   amount,
		Category: row[4],
	}
	if len(row) > 5 {
		entry.Description = row[5]
	}
	return entry, true
}

func readJSON(r io.Reader) ([]Entry, int, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, 0, fmt.Errorf("decoding json: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	skipped := 0
	for _, rec := range records {
		kind := model.Kind(rec.Type)
		if !kind.Valid() || rec.Amount < 0 {
			skipped++
			continue
		}
		entries = append(entries, Entry{
			Kind:        kind,
			Date:        rec.Date,
			Amount:      rec.Amount,
			Category:    rec.Category,
			Description: rec.Description,
		})
	}
	return entries, skipped, nil
}
