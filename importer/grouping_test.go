package importer

import "testing"

func tableFromRows(columns []string, rows ...Record) *Table {
	return &Table{Columns: columns, Rows: rows}
}

func TestSharedKeys_RequiresDistinctEntities(t *testing.T) {
	table := tableFromRows(
		[]string{"Rationcardno", "ConsumerNumber"},
		// R1 shared by two distinct consumers: reported.
		Record{"Rationcardno": "R1", "ConsumerNumber": "C1"},
		Record{"Rationcardno": "R1", "ConsumerNumber": "C2"},
		// R2 repeated for the same consumer: not a duplicate.
		Record{"Rationcardno": "R2", "ConsumerNumber": "C3"},
		Record{"Rationcardno": "R2", "ConsumerNumber": "C3"},
		// Blank keys never group.
		Record{"Rationcardno": "", "ConsumerNumber": "C4"},
		Record{"Rationcardno": "", "ConsumerNumber": "C5"},
	)

	shared := SharedKeys(table, "Rationcardno", "ConsumerNumber")
	if len(shared) != 1 {
		t.Fatalf("expected 1 shared key, got %d", len(shared))
	}
	if shared[0].Key != "R1" || shared[0].Count != 2 {
		t.Fatalf("expected R1 shared by 2, got %s/%d", shared[0].Key, shared[0].Count)
	}
	if len(shared[0].Rows) != 2 {
		t.Fatalf("expected one representative row per consumer, got %d", len(shared[0].Rows))
	}
}

func TestSortSharedByCount_AscendingStable(t *testing.T) {
	groups := []*SharedKeyGroup{
		{Key: "B5", Count: 5},
		{Key: "B2a", Count: 2},
		{Key: "B3", Count: 3},
		{Key: "B2b", Count: 2},
	}
	SortSharedByCount(groups)
	want := []string{"B2a", "B2b", "B3", "B5"}
	for i, key := range want {
		if groups[i].Key != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, groups[i].Key)
		}
	}
}

func TestDuplicateRows_MarksEveryOccurrence(t *testing.T) {
	table := tableFromRows(
		[]string{"SvNumber", "ConsumerNumber"},
		Record{"SvNumber": "SV9", "ConsumerNumber": "C1"},
		Record{"SvNumber": "SV1", "ConsumerNumber": "C2"},
		Record{"SvNumber": "SV9", "ConsumerNumber": "C3"},
		Record{"SvNumber": "SV1", "ConsumerNumber": "C4"},
		Record{"SvNumber": "SV2", "ConsumerNumber": "C5"},
	)

	dupes := DuplicateRows(table, "SvNumber")
	if len(dupes) != 2 {
		t.Fatalf("expected 2 duplicate groups, got %d", len(dupes))
	}
	// Sorted ascending by key.
	if dupes[0].Key != "SV1" || dupes[1].Key != "SV9" {
		t.Fatalf("expected [SV1 SV9], got [%s %s]", dupes[0].Key, dupes[1].Key)
	}
	// No first-occurrence exemption: both rows of each group present.
	if len(dupes[0].Rows) != 2 || len(dupes[1].Rows) != 2 {
		t.Fatalf("expected every occurrence marked, got %d/%d rows", len(dupes[0].Rows), len(dupes[1].Rows))
	}
}

func TestDeduplicate_KeepsFirstSeenAndBlankKeys(t *testing.T) {
	table := tableFromRows(
		[]string{"ConsumerNumber", "ConsumerName"},
		Record{"ConsumerNumber": "C1", "ConsumerName": "first"},
		Record{"ConsumerNumber": "C1", "ConsumerName": "second"},
		Record{"ConsumerNumber": "", "ConsumerName": "blank-a"},
		Record{"ConsumerNumber": "", "ConsumerName": "blank-b"},
	)

	out := Deduplicate(table, "ConsumerNumber")
	if len(out.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out.Rows))
	}
	if out.Rows[0].Get("ConsumerName") != "first" {
		t.Fatalf("expected first-seen row kept, got %q", out.Rows[0].Get("ConsumerName"))
	}
}

func TestDeduplicate_BeforeSharedKeysDropsRepeatRows(t *testing.T) {
	// C1 appears twice with different blue books; only its first row counts,
	// so B2 is held by one distinct consumer each way and is not shared.
	table := tableFromRows(
		[]string{"BlueBookNumber", "ConsumerNumber"},
		Record{"BlueBookNumber": "B1", "ConsumerNumber": "C1"},
		Record{"BlueBookNumber": "B2", "ConsumerNumber": "C1"},
		Record{"BlueBookNumber": "B2", "ConsumerNumber": "C2"},
		Record{"BlueBookNumber": "B1", "ConsumerNumber": "C3"},
	)

	shared := SharedKeys(Deduplicate(table, "ConsumerNumber"), "BlueBookNumber", "ConsumerNumber")
	if len(shared) != 1 {
		t.Fatalf("expected only B1 shared after dedupe, got %d groups", len(shared))
	}
	if shared[0].Key != "B1" || shared[0].Count != 2 {
		t.Fatalf("expected B1 shared by 2, got %s/%d", shared[0].Key, shared[0].Count)
	}
}

func TestGroupBy_PreservesFirstSeenOrder(t *testing.T) {
	table := tableFromRows(
		[]string{"K"},
		Record{"K": "b"},
		Record{"K": "a"},
		Record{"K": "b"},
	)
	groups := GroupBy(table, "K")
	if len(groups) != 2 || groups[0].Key != "b" || groups[1].Key != "a" {
		t.Fatalf("expected first-seen order [b a], got %v", []string{groups[0].Key, groups[1].Key})
	}
	if len(groups[0].Rows) != 2 {
		t.Fatalf("expected 2 rows for key b, got %d", len(groups[0].Rows))
	}
}
