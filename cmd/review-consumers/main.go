// review-consumers dry-runs an export row by row against the live registries
// and reports what a real import would reject or clean up: unresolvable
// lookups, malformed blue book or LPG id values, bad mobile numbers. Nothing
// is written.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/importer"
	"bitbucket.org/mmdatafocus/lpg_backend/utils"
)

func main() {
	file := flag.String("file", "", "Required: path to the consumer export (csv or xlsx)")
	maxIssues := flag.Int("max-issues", 50, "Maximum issue rows to print (0 = all)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "--file is required")
		os.Exit(1)
	}

	table, err := importer.LoadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *file, err)
		os.Exit(1)
	}
	if err := table.RequireColumns("ConsumerNumber", "Category", "ConsumerTypeIdDesc"); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	registries, err := importer.LoadRegistries(context.Background(), db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load registries: %v\n", err)
		os.Exit(1)
	}

	type counters struct {
		blankNumber    int
		missingLookups int
		badBlueBooks   int
		badLpgIds      int
		badPhones      int
	}
	var counts counters
	var issues [][]string

	note := func(row importer.Record, problem string) {
		issues = append(issues, []string{row.Get("ConsumerNumber"), row.Get("ConsumerName"), problem})
	}

	for _, row := range table.Rows {
		if row.Get("ConsumerNumber") == "" {
			counts.blankNumber++
			continue
		}
		if _, ok := registries.Categories[row.Get("Category")]; !ok {
			counts.missingLookups++
			note(row, fmt.Sprintf("unknown category %q", row.Get("Category")))
		}
		if _, ok := registries.ConsumerTypes[row.Get("ConsumerTypeIdDesc")]; !ok {
			counts.missingLookups++
			note(row, fmt.Sprintf("unknown consumer type %q", row.Get("ConsumerTypeIdDesc")))
		}
		if name := row.Get("InDocTypeIdDesc"); name != "" {
			if _, ok := registries.ConnectionTypes[name]; !ok {
				counts.missingLookups++
				note(row, fmt.Sprintf("unknown connection type %q", name))
			}
		}
		if v := row.Get("BlueBookNumber"); v != "" && !importer.IsValidBlueBook(v) {
			counts.badBlueBooks++
			note(row, fmt.Sprintf("blue book %q would be dropped", v))
		}
		if v := row.Get("LPGId"); v != "" && !importer.IsValidLpgId(v) {
			counts.badLpgIds++
			note(row, fmt.Sprintf("lpg id %q would be dropped", v))
		}
		if phone := row.Get("MobileNumber"); phone != "" {
			if err := utils.ValidatePhoneNumber(phone, utils.CountryCode); err != nil {
				counts.badPhones++
				note(row, fmt.Sprintf("mobile %q is not a valid %s number", phone, utils.CountryCode))
			}
		}
	}

	fmt.Printf("rows reviewed:        %d\n", len(table.Rows))
	fmt.Printf("blank consumer nums:  %d\n", counts.blankNumber)
	fmt.Printf("unresolved lookups:   %d\n", counts.missingLookups)
	fmt.Printf("malformed blue books: %d\n", counts.badBlueBooks)
	fmt.Printf("malformed lpg ids:    %d\n", counts.badLpgIds)
	fmt.Printf("invalid mobiles:      %d\n", counts.badPhones)

	if len(issues) == 0 {
		fmt.Println("\nno issues found")
		return
	}
	shown := issues
	if *maxIssues > 0 && len(shown) > *maxIssues {
		shown = shown[:*maxIssues]
	}
	fmt.Printf("\nissues (%d total, showing %d):\n", len(issues), len(shown))
	importer.RenderTable(os.Stdout, []string{"Consumer Number", "Consumer Name", "Problem"}, shown, 70)
}
