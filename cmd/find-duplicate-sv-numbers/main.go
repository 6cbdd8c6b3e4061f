// find-duplicate-sv-numbers reports SV numbers occurring on more than one row
// of an export. Every occurrence is listed, including the first; groups print
// in ascending SV number order.
package main

import (
	"flag"
	"fmt"
	"os"

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
	if err := table.RequireColumns("SvNumber"); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	dupes := importer.DuplicateRows(table, "SvNumber")
	if len(dupes) == 0 {
		fmt.Println("no duplicate sv numbers found")
		return
	}

	totalRows := 0
	for _, group := range dupes {
		fmt.Printf("\nSV number %s appears on %d rows:\n", group.Key, len(group.Rows))
		rows := make([][]string, 0, len(group.Rows))
		for _, row := range group.Rows {
			rows = append(rows, []string{row.Get("ConsumerNumber"), row.Get("ConsumerName"), row.Get("ProdCode")})
		}
		importer.RenderTable(os.Stdout, []string{"Consumer Number", "Consumer Name", "Product Code"}, rows, 60)
		totalRows += len(group.Rows)
	}
	fmt.Printf("\nduplicate sv numbers: %d (%d rows affected)\n", len(dupes), totalRows)
}
