// Package ingest parses an uploaded budgeting workbook (xlsx) into a record
// snapshot. Each logical sheet is located by name, its header row found by
// keyword scan over the first rows, and every non-empty data row becomes one
// Record preserving column order. A missing sheet yields an empty record set
// rather than an error; only an unreadable workbook fails.
package ingest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"budget-backend/internal/records"
)

// Sheet names the workbook template uses.
const (
	SheetRequestSummary = "Request Summary"
	SheetPersonnel      = "Personnel"
	SheetNonPersonnel   = "NonPersonnel"
	SheetRequestQA      = "Request Q&A"
	SheetBudgetSummary  = "Budget Summary"
)

// headerScanRows bounds the keyword scan for a sheet's header row.
const headerScanRows = 10

// headerKeywords is the per-sheet keyword set: the first scanned row whose
// joined lowercase text contains any keyword is the header row.
var headerKeywords = map[string][]string{
	SheetPersonnel:      {"request", "department", "program", "position", "account"},
	SheetNonPersonnel:   {"request", "department", "program", "position", "account"},
	SheetRequestSummary: {"request", "description", "status"},
	SheetRequestQA:      {"question", "answer"},
	SheetBudgetSummary:  {"item", "budget", "fund"},
}

// Load parses workbook bytes into a snapshot.
func Load(data []byte) (*records.Snapshot, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ingest: open workbook: %w", err)
	}
	defer f.Close()

	snap := &records.Snapshot{
		RequestSummary: parseSheet(f, SheetRequestSummary),
		Personnel:      parseSheet(f, SheetPersonnel),
		NonPersonnel:   parseSheet(f, SheetNonPersonnel),
		RequestQA:      parseSheet(f, SheetRequestQA),
		BudgetSummary:  parseSheet(f, SheetBudgetSummary),
	}
	return snap, nil
}

// LoadFile parses a workbook from disk; the offline report command uses it.
func LoadFile(path string) (*records.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	return Load(data)
}

func parseSheet(f *excelize.File, name string) []records.Record {
	rows, err := f.GetRows(name)
	if err != nil || len(rows) == 0 {
		return nil
	}

	headerRow := findHeaderRow(rows, headerKeywords[name])
	if headerRow == -1 {
		headerRow = firstNonEmptyRow(rows)
		if headerRow == -1 {
			return nil
		}
	}
	headers := rows[headerRow]

	var out []records.Record
	for r := headerRow + 1; r < len(rows); r++ {
		rec, ok := buildRecord(headers, rows[r])
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

func findHeaderRow(rows [][]string, keywords []string) int {
	limit := headerScanRows
	if len(rows) < limit {
		limit = len(rows)
	}
	for r := 0; r < limit; r++ {
		joined := strings.ToLower(strings.Join(rows[r], " "))
		if strings.TrimSpace(joined) == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(joined, kw) {
				return r
			}
		}
	}
	return -1
}

func firstNonEmptyRow(rows [][]string) int {
	for r, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return r
			}
		}
	}
	return -1
}

// buildRecord maps one data row onto the header labels positionally. Cells
// past the labeled columns, or under a blank label, keep a synthetic
// Col_<index> key. Rows with no non-empty cell are skipped.
func buildRecord(headers []string, row []string) (records.Record, bool) {
	var rec records.Record
	hasData := false
	for c, cell := range row {
		value := strings.TrimSpace(cell)
		key := ""
		if c < len(headers) {
			key = strings.TrimSpace(headers[c])
		}
		if key == "" {
			if value == "" {
				continue
			}
			key = fmt.Sprintf("Col_%d", c)
		}
		rec.Set(key, value)
		if value != "" {
			hasData = true
		}
	}
	return rec, hasData
}
