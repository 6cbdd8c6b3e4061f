// populate-consumers-route assigns each consumer in the export to the route
// named by its AreaCodeDesc column. A consumer gets at most one assignment;
// every created assignment also writes a CREATED history row, all in one
// transaction.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/importer"
	"bitbucket.org/mmdatafocus/lpg_backend/utils"
	"github.com/google/uuid"
)

func main() {
	file := flag.String("file", "", "Required: path to the consumer export (csv or xlsx)")
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

	// One correlation id ties together every history row of this run.
	ctx := utils.SetCorrelationIdInContext(context.Background(), uuid.NewString())

	summary, err := importer.AssignRoutes(ctx, db, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "route assignment failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rows:              %d\n", summary.Total)
	fmt.Printf("created:           %d\n", summary.Created)
	fmt.Printf("already assigned:  %d\n", summary.SkippedAssigned)
	fmt.Printf("missing data:      %d\n", summary.SkippedMissing)
	fmt.Println("route assignment complete")
}
