// populate-consumers imports consumers, their addresses and contacts, product
// variants and connection details from a legacy consumer export. The whole
// import commits in one transaction: a mid-file failure leaves nothing behind.
// Rerunning skips everything already present by natural key.
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
	dryRun := flag.Bool("dry-run", false, "Reconcile and report without writing")
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

	ctx := context.Background()
	existing, err := importer.LoadExistingKeys(ctx, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load existing keys: %v\n", err)
		os.Exit(1)
	}
	registries, err := importer.LoadRegistries(ctx, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load registries: %v\n", err)
		os.Exit(1)
	}

	batches, summary, err := importer.Reconcile(table, existing, registries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rows seen:            %d\n", summary.RowsSeen)
	fmt.Printf("new consumers:        %d (skipped existing: %d, blank rows: %d)\n",
		summary.NewConsumers, summary.SkippedConsumers, summary.SkippedBlankRows)
	fmt.Printf("new variants:         %d\n", summary.NewVariants)
	fmt.Printf("new connections:      %d (skipped existing: %d)\n",
		summary.NewConnections, summary.SkippedConnections)

	if *dryRun {
		fmt.Println("dry run: nothing written")
		return
	}

	commit, err := importer.CommitBatches(ctx, db, batches)
	if err != nil {
		fmt.Fprintf(os.Stderr, "commit failed (rolled back): %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("written: consumers=%d addresses=%d contacts=%d variants=%d connections=%d dropped=%d\n",
		commit.ConsumersCreated, commit.AddressesCreated, commit.ContactsCreated,
		commit.VariantsCreated, commit.ConnectionsCreated, commit.ConnectionsDropped)
	fmt.Println("consumer import complete")
}
