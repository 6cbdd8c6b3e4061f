package importer

import "sort"

// Group is all rows sharing one grouping-key value, in original row order.
type Group struct {
	Key  string
	Rows []Record
}

// GroupBy partitions rows by the given key column, preserving first-seen key
// order. Rows with a blank key are skipped.
func GroupBy(t *Table, keyCol string) []*Group {
	byKey := make(map[string]*Group)
	var groups []*Group
	for _, row := range t.Rows {
		key := row.Get(keyCol)
		if key == "" {
			continue
		}
		g, ok := byKey[key]
		if !ok {
			g = &Group{Key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Rows = append(g.Rows, row)
	}
	return groups
}

// DistinctValues returns the distinct values of col within the group, in
// first-seen order.
func (g *Group) DistinctValues(col string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range g.Rows {
		v := row.Get(col)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// DistinctCount is the number of distinct values of col within the group.
func (g *Group) DistinctCount(col string) int {
	return len(g.DistinctValues(col))
}

// Deduplicate keeps the first-seen row per value of keyCol. Rows with a blank
// key are kept as-is: blank is not a shared identity.
func Deduplicate(t *Table, keyCol string) *Table {
	seen := make(map[string]bool)
	out := &Table{Columns: t.Columns}
	for _, row := range t.Rows {
		key := row.Get(keyCol)
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// SharedKeyGroup is a keyCol value genuinely shared by more than one distinct
// entity, with one representative row per distinct entity.
type SharedKeyGroup struct {
	Key   string
	Count int
	Rows  []Record
}

// SharedKeys finds keyCol values whose distinct-distinctCol count is strictly
// greater than 1. Repeated rows for the same entity do not qualify. Groups
// come back in first-seen key order; Rows hold the first row per distinct
// entity.
func SharedKeys(t *Table, keyCol string, distinctCol string) []*SharedKeyGroup {
	var shared []*SharedKeyGroup
	for _, g := range GroupBy(t, keyCol) {
		if g.DistinctCount(distinctCol) <= 1 {
			continue
		}
		entitySeen := make(map[string]bool)
		sk := &SharedKeyGroup{Key: g.Key, Count: g.DistinctCount(distinctCol)}
		for _, row := range g.Rows {
			entity := row.Get(distinctCol)
			if entitySeen[entity] {
				continue
			}
			entitySeen[entity] = true
			sk.Rows = append(sk.Rows, row)
		}
		shared = append(shared, sk)
	}
	return shared
}

// SortSharedByCount orders shared-key groups ascending by how widely each key
// is shared (smallest-shared-count first), as the frequency reports expect.
func SortSharedByCount(groups []*SharedKeyGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count < groups[j].Count
	})
}

// DuplicateRows finds keyCol values occurring on more than one row and marks
// every occurrence (no first-occurrence exemption). Groups are sorted
// ascending by key.
func DuplicateRows(t *Table, keyCol string) []*Group {
	var dupes []*Group
	for _, g := range GroupBy(t, keyCol) {
		if len(g.Rows) > 1 {
			dupes = append(dupes, g)
		}
	}
	sort.SliceStable(dupes, func(i, j int) bool {
		return dupes[i].Key < dupes[j].Key
	})
	return dupes
}
