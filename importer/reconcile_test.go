package importer

import (
	"errors"
	"testing"

	"bitbucket.org/mmdatafocus/lpg_backend/models"
)

func testRegistries() *Registries {
	return &Registries{
		Categories:      map[string]int{"General": 1, "PMUY": 2},
		ConsumerTypes:   map[string]int{"Domestic": 1, "Commercial": 2},
		ConnectionTypes: map[string]int{"Single Bottle": 1, "Double Bottle": 2},
		Products:        map[string]int{"LPG Cylinder": 1},
		Units:           map[string]int{"kg": 1},
	}
}

func emptyKeys() *ExistingKeys {
	return &ExistingKeys{
		ConsumerNumbers: make(map[string]bool),
		SvNumbers:       make(map[string]bool),
		VariantCodes:    make(map[string]bool),
	}
}

func consumerRow(overrides Record) Record {
	row := Record{
		"ConsumerNumber":     "1001",
		"ConsumerName":       "Ravi Kumar",
		"Category":           "General",
		"ConsumerTypeIdDesc": "Domestic",
		"SvNumber":           "SV100",
		"ProdCode":           "P142",
		"NoOfCylinder":       "14.2",
		"InDocTypeIdDesc":    "Single Bottle",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func reconcileColumns() []string {
	return []string{"ConsumerNumber", "ConsumerName", "Category", "ConsumerTypeIdDesc",
		"SvNumber", "ProdCode", "NoOfCylinder", "InDocTypeIdDesc", "BlueBookNumber",
		"LPGId", "KYCDone", "Rationcardno", "Address", "MobileNumber", "SvDateInt", "NoOfDpr"}
}

func TestReconcile_FirstSeenConsumerWins(t *testing.T) {
	table := tableFromRows(reconcileColumns(),
		consumerRow(Record{"ConsumerName": "first row"}),
		consumerRow(Record{"ConsumerName": "second row", "SvNumber": "SV101"}),
	)

	batches, summary, err := Reconcile(table, emptyKeys(), testRegistries())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if summary.NewConsumers != 1 {
		t.Fatalf("expected 1 new consumer, got %d", summary.NewConsumers)
	}
	if batches.Consumers[0].ConsumerName != "first row" {
		t.Fatalf("expected first-seen row to build the consumer, got %q", batches.Consumers[0].ConsumerName)
	}
	// Both rows still contribute connections.
	if summary.NewConnections != 2 {
		t.Fatalf("expected 2 connections, got %d", summary.NewConnections)
	}
}

func TestReconcile_SkipsExistingByNaturalKey(t *testing.T) {
	existing := emptyKeys()
	existing.ConsumerNumbers["1001"] = true
	existing.SvNumbers["SV100"] = true
	existing.VariantCodes["P142"] = true

	table := tableFromRows(reconcileColumns(), consumerRow(nil))
	batches, summary, err := Reconcile(table, existing, testRegistries())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if summary.NewConsumers != 0 || summary.NewVariants != 0 || summary.NewConnections != 0 {
		t.Fatalf("expected nothing staged, got %+v", summary)
	}
	if summary.SkippedConsumers != 1 || summary.SkippedConnections != 1 {
		t.Fatalf("expected skips counted, got %+v", summary)
	}
	if len(batches.Consumers) != 0 {
		t.Fatalf("expected empty consumer batch, got %d", len(batches.Consumers))
	}
}

func TestReconcile_InBatchSvDedup(t *testing.T) {
	table := tableFromRows(reconcileColumns(),
		consumerRow(nil),
		consumerRow(Record{"ConsumerNumber": "1002"}),
	)

	_, summary, err := Reconcile(table, emptyKeys(), testRegistries())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if summary.NewConnections != 1 {
		t.Fatalf("expected SV100 staged once, got %d connections", summary.NewConnections)
	}
	if summary.SkippedConnections != 1 {
		t.Fatalf("expected second SV100 skipped, got %d", summary.SkippedConnections)
	}
}

func TestReconcile_MissingLookupAborts(t *testing.T) {
	table := tableFromRows(reconcileColumns(),
		consumerRow(Record{"Category": "NoSuchCategory"}),
	)
	_, _, err := Reconcile(table, emptyKeys(), testRegistries())
	var lookupErr *LookupMissingError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupMissingError, got %v", err)
	}
	if lookupErr.Registry != "ConsumerCategory" || lookupErr.Value != "NoSuchCategory" {
		t.Fatalf("unexpected error detail: %+v", lookupErr)
	}
}

func TestReconcile_BlankConnectionTypeIsOptional(t *testing.T) {
	table := tableFromRows(reconcileColumns(),
		consumerRow(Record{"InDocTypeIdDesc": ""}),
	)
	batches, _, err := Reconcile(table, emptyKeys(), testRegistries())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if batches.Connections[0].ConnectionTypeId != 0 {
		t.Fatalf("expected zero connection type id, got %d", batches.Connections[0].ConnectionTypeId)
	}
}

func TestReconcile_FieldCleaning(t *testing.T) {
	table := tableFromRows(reconcileColumns(),
		consumerRow(Record{
			"BlueBookNumber": "12.5",        // not a pure integer: dropped
			"LPGId":          "7000123.0",   // float-like: truncated
			"KYCDone":        "KYC Pending", // only exact "KYC Done" counts
			"SvDateInt":      "Jan 15, 2019",
			"NoOfDpr":        "",
		}),
	)
	batches, _, err := Reconcile(table, emptyKeys(), testRegistries())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	consumer := batches.Consumers[0]
	if consumer.BlueBook != nil {
		t.Fatalf("expected malformed blue book dropped, got %v", *consumer.BlueBook)
	}
	if consumer.LpgId == nil || *consumer.LpgId != 7000123 {
		t.Fatalf("expected lpg id truncated to 7000123, got %v", consumer.LpgId)
	}
	if consumer.IsKycDone {
		t.Fatal("expected KYC false for non-exact marker")
	}
	connection := batches.Connections[0]
	if connection.SvDate == nil || connection.SvDate.Year() != 2019 {
		t.Fatalf("expected sv date parsed, got %v", connection.SvDate)
	}
	if connection.NumOfRegulators != 1 {
		t.Fatalf("expected regulator default 1, got %d", connection.NumOfRegulators)
	}
}

func TestVariantName(t *testing.T) {
	cases := []struct {
		variantType models.VariantType
		size        float64
		want        string
	}{
		{models.VariantTypeDomestic, 14.2, "Domestic Cylinder 14.2kg"},
		{models.VariantTypeCommercial, 19, "Commercial Cylinder 19kg"},
		{models.VariantTypeDomestic, 5, "Domestic Cylinder 5kg"},
	}
	for _, tc := range cases {
		if got := VariantName(tc.variantType, tc.size); got != tc.want {
			t.Fatalf("VariantName(%s, %v) expected %q, got %q", tc.variantType, tc.size, tc.want, got)
		}
	}
}

func TestReconcile_VariantTypeFromConsumerType(t *testing.T) {
	table := tableFromRows(reconcileColumns(),
		consumerRow(nil),
		consumerRow(Record{
			"ConsumerNumber":     "1002",
			"ConsumerTypeIdDesc": "Commercial",
			"SvNumber":           "SV200",
			"ProdCode":           "P190",
			"NoOfCylinder":       "19",
		}),
	)
	batches, summary, err := Reconcile(table, emptyKeys(), testRegistries())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if summary.NewVariants != 2 {
		t.Fatalf("expected 2 variants, got %d", summary.NewVariants)
	}
	if batches.Variants[0].VariantType != models.VariantTypeDomestic {
		t.Fatalf("expected DOMESTIC for exact Domestic type, got %s", batches.Variants[0].VariantType)
	}
	if batches.Variants[1].VariantType != models.VariantTypeCommercial {
		t.Fatalf("expected COMMERCIAL for any other type, got %s", batches.Variants[1].VariantType)
	}
	if batches.Variants[1].Name != "Commercial Cylinder 19kg" {
		t.Fatalf("unexpected variant name %q", batches.Variants[1].Name)
	}
}

func TestParseHelpers(t *testing.T) {
	blueBookCases := []struct {
		in    string
		valid bool
	}{
		{"12345", true},
		{"0", true},
		{"12.5", false},
		{"-3", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range blueBookCases {
		if got := IsValidBlueBook(tc.in); got != tc.valid {
			t.Fatalf("IsValidBlueBook(%q) expected %v, got %v", tc.in, tc.valid, got)
		}
	}

	lpgCases := []struct {
		in    string
		valid bool
	}{
		{"7000123", true},
		{"7000123.0", true},
		{"7000.12.3", false},
		{"7000123a", false},
		{"", false},
	}
	for _, tc := range lpgCases {
		if got := IsValidLpgId(tc.in); got != tc.valid {
			t.Fatalf("IsValidLpgId(%q) expected %v, got %v", tc.in, tc.valid, got)
		}
	}
}
