// populate-lookups gets-or-creates the name-keyed registries (market types,
// connection types, consumer types, categories, BPL/DCT types, schemes) from
// the distinct values of a legacy consumer export. Safe to rerun.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/importer"
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

	ctx := context.Background()

	// The reconciler resolves "LPG Cylinder" and "kg" unconditionally, so the
	// essential products and units are part of foundational data too.
	if err := importer.SeedProducts(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "seed products failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("essential products and units ensured")

	counts, err := importer.PopulateLookups(ctx, db, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "populate lookups failed: %v\n", err)
		os.Exit(1)
	}

	registries := make([]string, 0, len(importer.LookupColumns))
	for registry := range importer.LookupColumns {
		registries = append(registries, registry)
	}
	sort.Strings(registries)
	for _, registry := range registries {
		fmt.Printf("%-18s created=%d found=%d\n", registry, counts.Created[registry], counts.Found[registry])
	}
	fmt.Println("lookup population complete")
}
