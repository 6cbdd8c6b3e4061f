// populate-products seeds the base product catalogue (cylinders, appliances,
// regulators, hoses), measurement units, and the standard cylinder/regulator/
// hose variants keyed by product code. Safe to rerun.
package main

import (
	"context"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/importer"
)

func main() {
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}
	ctx := context.Background()

	if err := importer.SeedProducts(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "seed products failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("products and units ensured")

	created, found, err := importer.SeedStandardVariants(ctx, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed standard variants failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("standard variants: created=%d found=%d\n", created, found)
	fmt.Println("product seed complete")
}
