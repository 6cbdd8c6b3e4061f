// populate-routes imports delivery routes and their sub-areas from a route
// master sheet. A blank AREA CODE cell attaches the row's AREA NAME to the
// most recent route above it. Safe to rerun.
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
	file := flag.String("file", "", "Required: path to the route master sheet (csv or xlsx)")
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

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}

	summary, err := importer.ImportRoutes(context.Background(), db, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "route import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("routes:  created=%d found=%d\n", summary.CreatedRoutes, summary.FoundRoutes)
	fmt.Printf("areas:   created=%d skipped=%d\n", summary.CreatedAreas, summary.SkippedAreas)
	fmt.Println("route import complete")
}
