// Package importer holds the legacy-data reconciliation pipeline: tabular
// loading, duplicate analysis, lookup resolution, entity reconciliation and
// bulk commit. The cmd/ binaries are thin wrappers over this package.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one row keyed by column name. Missing cells are always the empty
// string, never absent keys.
type Record map[string]string

// Table is an ordered sequence of records read from a delimited file or a
// workbook sheet. Original row order is preserved.
type Table struct {
	Columns []string
	Rows    []Record
}

// SchemaError reports required columns absent from the header.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("file must contain columns %s; found columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// RequireColumns returns a *SchemaError when any of the named columns is
// missing from the header.
func (t *Table) RequireColumns(names ...string) error {
	present := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		present[col] = true
	}
	var missing []string
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing, Found: t.Columns}
	}
	return nil
}

// Get returns the named cell, or "" when the column does not exist.
func (r Record) Get(name string) string {
	return r[name]
}

// LoadCSV reads a delimited text file into a Table. When delimiter is zero it
// is sniffed from the first 1KB of content, falling back to comma.
func LoadCSV(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if delimiter == 0 {
		sample := make([]byte, 1024)
		n, _ := f.Read(sample)
		delimiter = sniffDelimiter(string(sample[:n]))
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF"))
	}

	table := &Table{Columns: header}
	for _, raw := range records[1:] {
		row := make(Record, len(header))
		for i, col := range header {
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// LoadWorkbook reads the first sheet of an xlsx workbook into a Table with
// the same normalization as LoadCSV. Legacy distributor exports often arrive
// as Excel instead of CSV.
func LoadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{Columns: header}
	for _, raw := range rows[1:] {
		row := make(Record, len(header))
		for i, col := range header {
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// LoadFile dispatches on the file extension: .xlsx goes through the workbook
// loader, everything else is treated as delimited text with sniffing.
func LoadFile(path string) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return LoadWorkbook(path)
	}
	return LoadCSV(path, 0)
}

// sniffDelimiter picks the candidate splitting the first line into the most
// fields. Candidates mirror what the legacy exports actually use.
func sniffDelimiter(sample string) rune {
	line := sample
	if idx := strings.IndexAny(sample, "\r\n"); idx >= 0 {
		line = sample[:idx]
	}
	best := ','
	bestCount := 0
	for _, candidate := range []rune{',', ';', '\t', '|'} {
		count := strings.Count(line, string(candidate))
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
