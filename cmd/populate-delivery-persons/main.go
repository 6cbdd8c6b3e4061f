// populate-delivery-persons gets-or-creates delivery persons from the
// DeliveryPerson column of an export, or from names given on the command
// line. Safe to rerun.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"bitbucket.org/mmdatafocus/lpg_backend/config"
	"bitbucket.org/mmdatafocus/lpg_backend/importer"
	"bitbucket.org/mmdatafocus/lpg_backend/models"
)

func main() {
	file := flag.String("file", "", "Optional: export with a DeliveryPerson column (csv or xlsx)")
	names := flag.String("names", "", "Optional: comma-separated delivery person names")
	flag.Parse()

	if *file == "" && strings.TrimSpace(*names) == "" {
		fmt.Fprintln(os.Stderr, "either --file or --names is required")
		os.Exit(1)
	}

	var candidates []string
	if *file != "" {
		table, err := importer.LoadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *file, err)
			os.Exit(1)
		}
		if err := table.RequireColumns("DeliveryPerson"); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		seen := make(map[string]bool)
		for _, row := range table.Rows {
			name := strings.TrimSpace(row.Get("DeliveryPerson"))
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			candidates = append(candidates, name)
		}
	}
	for _, name := range strings.Split(*names, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			candidates = append(candidates, name)
		}
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}

	ctx := context.Background()
	created, found := 0, 0
	for _, name := range candidates {
		person := models.DeliveryPerson{Name: name}
		result := db.WithContext(ctx).Where(models.DeliveryPerson{Name: name}).FirstOrCreate(&person)
		if result.Error != nil {
			fmt.Fprintf(os.Stderr, "failed to create delivery person %q: %v\n", name, result.Error)
			os.Exit(1)
		}
		if result.RowsAffected > 0 {
			created++
		} else {
			found++
		}
	}

	fmt.Printf("delivery persons: created=%d found=%d\n", created, found)
}
