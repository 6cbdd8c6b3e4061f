package importer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func areaTable() *Table {
	return tableFromRows(
		[]string{"AreaId", "AreaCodeDesc"},
		Record{"AreaId": "A2", "AreaCodeDesc": "R001-North Zone"},
		Record{"AreaId": "A1", "AreaCodeDesc": "R001-North Zone"},
		Record{"AreaId": "A1", "AreaCodeDesc": "R001-North Zone"}, // dup id
		Record{"AreaId": "A9", "AreaCodeDesc": "R002-South Zone"},
		Record{"AreaId": "", "AreaCodeDesc": "R002-South Zone"}, // blank id
		Record{"AreaId": "A3", "AreaCodeDesc": ""},              // blank desc
	)
}

func TestGroupAreas(t *testing.T) {
	groups, processed, err := GroupAreas(areaTable())
	if err != nil {
		t.Fatalf("GroupAreas error: %v", err)
	}
	if processed != 4 {
		t.Fatalf("expected 4 contributing rows, got %d", processed)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	north := groups[0]
	if north.AreaCodeDesc != "R001-North Zone" || north.Count != 2 {
		t.Fatalf("unexpected first group: %+v", north)
	}
	// Ids deduplicated and sorted.
	if north.AreaIds[0] != "A1" || north.AreaIds[1] != "A2" {
		t.Fatalf("expected sorted ids [A1 A2], got %v", north.AreaIds)
	}
}

func TestWriteAreaGroupsCSV_PipeJoinsIds(t *testing.T) {
	groups, _, err := GroupAreas(areaTable())
	if err != nil {
		t.Fatalf("GroupAreas error: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteAreaGroupsCSV(&buf, groups); err != nil {
		t.Fatalf("WriteAreaGroupsCSV error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "A1|A2") {
		t.Fatalf("expected pipe-joined ids in %q", lines[1])
	}
}

func TestWriteAreaGroupsJSON_RoundTrips(t *testing.T) {
	groups, _, err := GroupAreas(areaTable())
	if err != nil {
		t.Fatalf("GroupAreas error: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteAreaGroupsJSON(&buf, groups); err != nil {
		t.Fatalf("WriteAreaGroupsJSON error: %v", err)
	}
	var decoded []*AreaGroup
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Count != 2 {
		t.Fatalf("unexpected decoded groups: %+v", decoded)
	}
}

func TestWriteAreaSummary(t *testing.T) {
	groups := []*AreaGroup{
		{AreaCodeDesc: "R001-North Zone", Count: 3},
		{AreaCodeDesc: "R002-South Zone", Count: 1},
	}
	var buf bytes.Buffer
	WriteAreaSummary(&buf, groups)
	out := buf.String()
	if !strings.Contains(out, "R001-North Zone (3 IDs)") {
		t.Fatalf("expected most-ids line, got:\n%s", out)
	}
	if !strings.Contains(out, "R002-South Zone (1 IDs)") {
		t.Fatalf("expected least-ids line, got:\n%s", out)
	}

	buf.Reset()
	WriteAreaSummary(&buf, nil)
	if !strings.Contains(buf.String(), "No area groups found") {
		t.Fatalf("expected empty-groups message, got %q", buf.String())
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, valid := range []string{"table", "csv", "json"} {
		if _, err := ParseOutputFormat(valid); err != nil {
			t.Fatalf("ParseOutputFormat(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseOutputFormat("yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
