package importer

import (
	"testing"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
)

func TestDistinctColumnValues(t *testing.T) {
	table := tableFromRows(
		[]string{"Category"},
		Record{"Category": "General"},
		Record{"Category": "PMUY"},
		Record{"Category": "General"},
		Record{"Category": ""},
	)
	values := DistinctColumnValues(table, "Category")
	if len(values) != 2 || values[0] != "General" || values[1] != "PMUY" {
		t.Fatalf("expected [General PMUY] in first-seen order, got %v", values)
	}
	if got := DistinctColumnValues(table, "NoSuchColumn"); got != nil {
		t.Fatalf("expected nil for missing column, got %v", got)
	}
}

func TestEssentialSeeds_IncludeReconcilerDefaults(t *testing.T) {
	// The reconciler resolves these names unconditionally when building
	// import-time variants; the seed sets must always carry them.
	products := make(map[string]bool)
	for _, p := range essentialProducts() {
		products[p.Name] = true
	}
	if !products["LPG Cylinder"] {
		t.Fatal("essential products must include LPG Cylinder")
	}

	units := make(map[string]bool)
	for _, u := range essentialUnits() {
		units[u.ShortName] = true
	}
	if !units["kg"] {
		t.Fatal("essential units must include kg")
	}
}

func TestStandardVariants_Catalogue(t *testing.T) {
	variants := standardVariants()
	if len(variants) != 10 {
		t.Fatalf("expected 10 standard variants, got %d", len(variants))
	}

	byCode := make(map[string]standardVariant, len(variants))
	for _, sv := range variants {
		if byCode[sv.Code].Code != "" {
			t.Fatalf("duplicate product code %s", sv.Code)
		}
		byCode[sv.Code] = sv
	}

	industrial, ok := byCode["LPG-IND-47.5"]
	if !ok || industrial.Type != models.VariantTypeIndustrial || industrial.Size != 47.5 {
		t.Fatalf("expected LPG-IND-47.5 industrial 47.5kg, got %+v", industrial)
	}
	hose, ok := byCode["HOSE-COM-3M"]
	if !ok || hose.Type != models.VariantTypeCommercial || hose.Unit != "mtr" {
		t.Fatalf("expected HOSE-COM-3M commercial in mtr, got %+v", hose)
	}

	// Every variant must resolve against the essential seeds so seeding
	// variants right after products never hits a missing lookup.
	products := make(map[string]bool)
	for _, p := range essentialProducts() {
		products[p.Name] = true
	}
	units := make(map[string]bool)
	for _, u := range essentialUnits() {
		units[u.ShortName] = true
	}
	for _, sv := range variants {
		if !products[sv.Product] {
			t.Fatalf("variant %s references unseeded product %q", sv.Code, sv.Product)
		}
		if !units[sv.Unit] {
			t.Fatalf("variant %s references unseeded unit %q", sv.Code, sv.Unit)
		}
	}
}

func TestLookupColumns_CoverEveryRegistry(t *testing.T) {
	want := map[string]string{
		"MarketType":       "TypeOfMarket",
		"ConnectionType":   "InDocTypeIdDesc",
		"ConsumerType":     "ConsumerTypeIdDesc",
		"ConsumerCategory": "Category",
		"BPLType":          "BPLType",
		"DCTType":          "DCTType",
		"Scheme":           "Scheme",
	}
	if len(LookupColumns) != len(want) {
		t.Fatalf("expected %d registries, got %d", len(want), len(LookupColumns))
	}
	for registry, column := range want {
		if LookupColumns[registry] != column {
			t.Fatalf("registry %s: expected column %s, got %s", registry, column, LookupColumns[registry])
		}
	}
}
