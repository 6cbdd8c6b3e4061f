// shared-bluebook reports blue book numbers shared by more than one distinct
// consumer in an export, smallest-shared-count first.
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
	if err := table.RequireColumns("BlueBookNumber", "ConsumerNumber"); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Exports repeat a consumer once per connection; keep the first row per
	// consumer so sharing is counted across consumers, not connections.
	table = importer.Deduplicate(table, "ConsumerNumber")

	shared := importer.SharedKeys(table, "BlueBookNumber", "ConsumerNumber")
	importer.SortSharedByCount(shared)

	if len(shared) == 0 {
		fmt.Println("no shared blue books found")
		return
	}

	for _, group := range shared {
		fmt.Printf("\nBlue book %s shared by %d consumers:\n", group.Key, group.Count)
		rows := make([][]string, 0, len(group.Rows))
		for _, row := range group.Rows {
			rows = append(rows, []string{row.Get("ConsumerNumber"), row.Get("ConsumerName"), row.Get("MobileNumber")})
		}
		importer.RenderTable(os.Stdout, []string{"Consumer Number", "Consumer Name", "Mobile Number"}, rows, 60)
	}
	fmt.Printf("\ntotal shared blue books: %d\n", len(shared))
}
