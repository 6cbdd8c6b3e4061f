// find-duplicate-ration-cards reports ration card numbers shared by more than
// one distinct consumer in an export. A consumer listed twice under the same
// card is not a duplicate; groups print smallest-shared-count first.
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
	if err := table.RequireColumns("Rationcardno", "ConsumerNumber"); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	shared := importer.SharedKeys(table, "Rationcardno", "ConsumerNumber")
	importer.SortSharedByCount(shared)

	if len(shared) == 0 {
		fmt.Println("no shared ration cards found")
		return
	}

	for _, group := range shared {
		fmt.Printf("\nRation card %s shared by %d consumers:\n", group.Key, group.Count)
		rows := make([][]string, 0, len(group.Rows))
		for _, row := range group.Rows {
			rows = append(rows, []string{row.Get("ConsumerNumber"), row.Get("ConsumerName"), row.Get("Address")})
		}
		importer.RenderTable(os.Stdout, []string{"Consumer Number", "Consumer Name", "Address"}, rows, 60)
	}
	fmt.Printf("\ntotal shared ration cards: %d\n", len(shared))
}
