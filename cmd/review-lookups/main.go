// review-lookups lists the distinct values each lookup column of an export
// would feed into its registry, without touching the database. Run it before
// populate-lookups to eyeball what would be created.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

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

	registries := make([]string, 0, len(importer.LookupColumns))
	for registry := range importer.LookupColumns {
		registries = append(registries, registry)
	}
	sort.Strings(registries)

	for _, registry := range registries {
		column := importer.LookupColumns[registry]
		values := importer.DistinctColumnValues(table, column)
		fmt.Printf("\n%s (column %s): %d distinct values\n", registry, column, len(values))
		for _, v := range values {
			fmt.Printf("  %s\n", v)
		}
	}
}
