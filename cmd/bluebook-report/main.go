// bluebook-report writes a CSV of blue book numbers shared by more than one
// distinct consumer, one row per blue book with the consumer numbers joined
// by "|". Default output file: shared_bluebooks.csv.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bitbucket.org/mmdatafocus/lpg_backend/importer"
)

func main() {
	file := flag.String("file", "", "Required: path to the consumer export (csv or xlsx)")
	out := flag.String("out", "shared_bluebooks.csv", "Output CSV path")
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

	// Keep the first row per consumer so repeated connection rows do not
	// inflate the sharing counts.
	table = importer.Deduplicate(table, "ConsumerNumber")

	shared := importer.SharedKeys(table, "BlueBookNumber", "ConsumerNumber")
	importer.SortSharedByCount(shared)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"BlueBookNumber", "ConsumerCount", "ConsumerNumbers"}); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}
	for _, group := range shared {
		numbers := make([]string, 0, len(group.Rows))
		for _, row := range group.Rows {
			numbers = append(numbers, row.Get("ConsumerNumber"))
		}
		record := []string{group.Key, strconv.Itoa(group.Count), strings.Join(numbers, "|")}
		if err := writer.Write(record); err != nil {
			fmt.Fprintf(os.Stderr, "write record: %v\n", err)
			os.Exit(1)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d shared blue books to %s\n", len(shared), *out)
}
