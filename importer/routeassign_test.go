package importer

import (
	"testing"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
)

func TestSplitAreaCodeDesc(t *testing.T) {
	cases := []struct {
		in   string
		code string
		desc string
		ok   bool
	}{
		{"R001-North Zone", "R001", "North Zone", true},
		// Only the FIRST hyphen splits; the rest stays in the description.
		{"R001-North-Zone-Extra", "R001", "North-Zone-Extra", true},
		{"R001 - North Zone", "R001", "North Zone", true},
		{"NOHYPHEN", "NOHYPHEN", "", false},
		{"-Leading", "", "Leading", true},
	}
	for _, tc := range cases {
		code, desc, ok := SplitAreaCodeDesc(tc.in)
		if code != tc.code || desc != tc.desc || ok != tc.ok {
			t.Fatalf("SplitAreaCodeDesc(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tc.in, code, desc, ok, tc.code, tc.desc, tc.ok)
		}
	}
}

func assignmentFixture() (map[string]*models.Consumer, map[string]*models.Route, map[int]bool) {
	consumers := map[string]*models.Consumer{
		"1001": {ID: 1, ConsumerNumber: "1001", ConsumerName: "Ravi Kumar"},
		"1002": {ID: 2, ConsumerNumber: "1002", ConsumerName: "Sita Devi"},
	}
	routes := map[string]*models.Route{
		"R001": {ID: 10, AreaCode: "R001", AreaCodeDescription: "North Zone"},
		"R002": {ID: 11, AreaCode: "R002", AreaCodeDescription: "South Zone"},
	}
	return consumers, routes, make(map[int]bool)
}

func TestPlanRouteAssignments_OnePerConsumer(t *testing.T) {
	consumers, routes, assigned := assignmentFixture()
	table := tableFromRows(
		[]string{"ConsumerNumber", "AreaCodeDesc"},
		Record{"ConsumerNumber": "1001", "AreaCodeDesc": "R001-North Zone"},
		// Second valid row for the same consumer: skipped, even with a
		// different route.
		Record{"ConsumerNumber": "1001", "AreaCodeDesc": "R002-South Zone"},
		Record{"ConsumerNumber": "1002", "AreaCodeDesc": "R002-South Zone"},
	)

	plan, summary, err := PlanRouteAssignments(table, consumers, routes, assigned)
	if err != nil {
		t.Fatalf("PlanRouteAssignments error: %v", err)
	}
	if summary.Created != 2 || summary.SkippedAssigned != 1 {
		t.Fatalf("expected 2 created / 1 skipped, got %+v", summary)
	}
	if plan.Assignments[0].RouteId != 10 {
		t.Fatalf("expected first-seen route kept for consumer 1001, got route %d", plan.Assignments[0].RouteId)
	}
}

func TestPlanRouteAssignments_SkipsStoreAssignedAndMissing(t *testing.T) {
	consumers, routes, assigned := assignmentFixture()
	assigned[1] = true // consumer 1001 already assigned in the store

	table := tableFromRows(
		[]string{"ConsumerNumber", "AreaCodeDesc"},
		Record{"ConsumerNumber": "1001", "AreaCodeDesc": "R001-North Zone"},
		Record{"ConsumerNumber": "9999", "AreaCodeDesc": "R001-North Zone"}, // unknown consumer
		Record{"ConsumerNumber": "1002", "AreaCodeDesc": "RXXX-Nowhere"},    // unknown route
		Record{"ConsumerNumber": "", "AreaCodeDesc": "R001-North Zone"},     // blank
	)

	plan, summary, err := PlanRouteAssignments(table, consumers, routes, assigned)
	if err != nil {
		t.Fatalf("PlanRouteAssignments error: %v", err)
	}
	if summary.Created != 0 {
		t.Fatalf("expected nothing created, got %d", summary.Created)
	}
	if summary.SkippedAssigned != 1 || summary.SkippedMissing != 3 {
		t.Fatalf("expected 1 assigned-skip and 3 missing-skips, got %+v", summary)
	}
	if len(plan.Assignments) != 0 {
		t.Fatalf("expected empty plan, got %d", len(plan.Assignments))
	}
}

func TestPlanRouteAssignments_RequiresColumns(t *testing.T) {
	consumers, routes, assigned := assignmentFixture()
	table := tableFromRows([]string{"ConsumerNumber"}, Record{"ConsumerNumber": "1001"})
	_, _, err := PlanRouteAssignments(table, consumers, routes, assigned)
	if _, ok := err.(*SchemaError); !ok {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}
