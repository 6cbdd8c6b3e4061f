// process-areas groups the unique AreaId values of an export by their
// AreaCodeDesc and prints the grouping as a table, CSV or JSON, followed by
// summary statistics. Read-only.
package main

import (
	"flag"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/lpg_backend/importer"
)

func main() {
	file := flag.String("file", "", "Required: path to the area export (csv or xlsx)")
	output := flag.String("output", "table", "Output format: table, csv or json")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "--file is required")
		os.Exit(1)
	}
	format, err := importer.ParseOutputFormat(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	table, err := importer.LoadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *file, err)
		os.Exit(1)
	}

	groups, processed, err := importer.GroupAreas(table)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	switch format {
	case importer.OutputCSV:
		if err := importer.WriteAreaGroupsCSV(os.Stdout, groups); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
	case importer.OutputJSON:
		if err := importer.WriteAreaGroupsJSON(os.Stdout, groups); err != nil {
			fmt.Fprintf(os.Stderr, "write json: %v\n", err)
			os.Exit(1)
		}
	default:
		importer.WriteAreaGroupsTable(os.Stdout, groups)
	}

	fmt.Println()
	fmt.Printf("rows processed: %d\n", processed)
	importer.WriteAreaSummary(os.Stdout, groups)
}
