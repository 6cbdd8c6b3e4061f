package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadCSV_SniffsDelimiter(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"comma", "ConsumerNumber,ConsumerName\n1001,Ravi\n"},
		{"semicolon", "ConsumerNumber;ConsumerName\n1001;Ravi\n"},
		{"tab", "ConsumerNumber\tConsumerName\n1001\tRavi\n"},
		{"pipe", "ConsumerNumber|ConsumerName\n1001|Ravi\n"},
	}
	for _, tc := range cases {
		path := writeTemp(t, tc.name+".csv", tc.content)
		table, err := LoadCSV(path, 0)
		if err != nil {
			t.Fatalf("%s: LoadCSV error: %v", tc.name, err)
		}
		if len(table.Columns) != 2 {
			t.Fatalf("%s: expected 2 columns, got %v", tc.name, table.Columns)
		}
		if len(table.Rows) != 1 {
			t.Fatalf("%s: expected 1 row, got %d", tc.name, len(table.Rows))
		}
		if got := table.Rows[0].Get("ConsumerName"); got != "Ravi" {
			t.Fatalf("%s: expected Ravi, got %q", tc.name, got)
		}
	}
}

func TestLoadCSV_ShortRowsPaddedWithEmpty(t *testing.T) {
	path := writeTemp(t, "short.csv", "A,B,C\n1,2\n")
	table, err := LoadCSV(path, 0)
	if err != nil {
		t.Fatalf("LoadCSV error: %v", err)
	}
	row := table.Rows[0]
	if row.Get("B") != "2" {
		t.Fatalf("expected B=2, got %q", row.Get("B"))
	}
	if got := row.Get("C"); got != "" {
		t.Fatalf("expected missing cell to be empty string, got %q", got)
	}
	if got := row.Get("NoSuchColumn"); got != "" {
		t.Fatalf("expected unknown column to be empty string, got %q", got)
	}
}

func TestLoadCSV_StripsBOMFromHeader(t *testing.T) {
	path := writeTemp(t, "bom.csv", "\uFEFFConsumerNumber,ConsumerName\n1001,Ravi\n")
	table, err := LoadCSV(path, 0)
	if err != nil {
		t.Fatalf("LoadCSV error: %v", err)
	}
	if table.Columns[0] != "ConsumerNumber" {
		t.Fatalf("expected BOM stripped from header, got %q", table.Columns[0])
	}
}

func TestRequireColumns_ReportsMissing(t *testing.T) {
	table := &Table{Columns: []string{"A", "B"}}
	err := table.RequireColumns("A", "C", "D")
	if err == nil {
		t.Fatal("expected SchemaError, got nil")
	}
	schemaErr, ok := err.(*SchemaError)
	if !ok {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
	if len(schemaErr.Missing) != 2 || schemaErr.Missing[0] != "C" || schemaErr.Missing[1] != "D" {
		t.Fatalf("expected missing [C D], got %v", schemaErr.Missing)
	}
	if table.RequireColumns("A", "B") != nil {
		t.Fatal("expected nil error when all columns present")
	}
}

func TestSniffDelimiter_FallsBackToComma(t *testing.T) {
	if got := sniffDelimiter("singlecolumn\nrow\n"); got != ',' {
		t.Fatalf("expected comma fallback, got %q", got)
	}
	// Only the first line decides; a pipe-heavy body must not win.
	if got := sniffDelimiter("a,b\nx|y|z|w\n"); got != ',' {
		t.Fatalf("expected comma from header line, got %q", got)
	}
}
