// validate-consumer-addresses checks, for one route, whether each unique
// consumer's address mentions any of the route's sub-area names. Purely a
// report; nothing is written.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/importer"
)

func main() {
	file := flag.String("file", "", "Required: path to the consumer export (csv or xlsx)")
	area := flag.String("area", "", "Required: AreaCodeDesc value, e.g. \"R001-North Zone\"")
	showValid := flag.Bool("show-valid", false, "Also list consumers whose address matched")
	flag.Parse()

	if *file == "" || *area == "" {
		fmt.Fprintln(os.Stderr, "--file and --area are required")
		os.Exit(1)
	}

	table, err := importer.LoadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *file, err)
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}

	result, err := importer.ValidateAddresses(context.Background(), db, table, *area)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("route:            %s - %s\n", result.Route.AreaCode, result.Route.AreaCodeDescription)
	fmt.Printf("sub-areas:        %d\n", len(result.AreaNames))
	fmt.Printf("rows in file:     %d (matching filter: %d)\n", result.TotalRows, result.FilteredRows)
	fmt.Printf("unique consumers: %d\n", len(result.Checks))
	fmt.Printf("match rate:       %.2f%%\n", result.MatchPercentage())

	invalid := result.InvalidChecks()
	if len(invalid) > 0 {
		fmt.Printf("\nconsumers with no matching sub-area (%d):\n", len(invalid))
		rows := make([][]string, 0, len(invalid))
		for _, check := range invalid {
			rows = append(rows, []string{check.ConsumerNumber, check.Address})
		}
		importer.RenderTable(os.Stdout, []string{"Consumer Number", "Address"}, rows, 80)
	}

	if *showValid {
		fmt.Println("\nconsumers whose address matched:")
		rows := make([][]string, 0, len(result.Checks))
		for _, check := range result.Checks {
			if check.Valid {
				rows = append(rows, []string{check.ConsumerNumber, check.Address})
			}
		}
		importer.RenderTable(os.Stdout, []string{"Consumer Number", "Address"}, rows, 80)
	}
}
