package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat selects how a report command renders its results.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputCSV   OutputFormat = "csv"
	OutputJSON  OutputFormat = "json"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputTable, OutputCSV, OutputJSON:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("invalid output format %q (choices: table, csv, json)", s)
}

// RenderTable prints a fixed-width console table. Cells longer than maxWidth
// are truncated; zero means no cap.
func RenderTable(w io.Writer, headers []string, rows [][]string, maxWidth int) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	clipped := make([][]string, len(rows))
	for r, row := range rows {
		clipped[r] = make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if maxWidth > 0 && len(cell) > maxWidth {
				cell = cell[:maxWidth]
			}
			clipped[r][i] = cell
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	for i, h := range headers {
		if i > 0 {
			header.WriteString(" | ")
		}
		header.WriteString(fmt.Sprintf("%-*s", widths[i], h))
	}
	fmt.Fprintln(w, header.String())
	fmt.Fprintln(w, strings.Repeat("-", len(header.String())))

	for _, row := range clipped {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString(" | ")
			}
			line.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		fmt.Fprintln(w, line.String())
	}
}

// WriteAreaGroupsTable renders the area groups as a console table.
func WriteAreaGroupsTable(w io.Writer, groups []*AreaGroup) {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.AreaCodeDesc,
			fmt.Sprint(g.Count),
			strings.Join(g.AreaIds, ", "),
		})
	}
	RenderTable(w, []string{"Area Code Description", "Count", "Area IDs"}, rows, 60)
}

// WriteAreaGroupsCSV renders the area groups as CSV with pipe-joined
// multi-value cells.
func WriteAreaGroupsCSV(w io.Writer, groups []*AreaGroup) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"AreaCodeDesc", "Count", "AreaIDs"}); err != nil {
		return err
	}
	for _, g := range groups {
		record := []string{g.AreaCodeDesc, fmt.Sprint(g.Count), strings.Join(g.AreaIds, "|")}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteAreaGroupsJSON renders the area groups as indented JSON.
func WriteAreaGroupsJSON(w io.Writer, groups []*AreaGroup) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(groups)
}

// WriteAreaSummary prints the summary statistics block after an area report.
func WriteAreaSummary(w io.Writer, groups []*AreaGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No area groups found.")
		return
	}

	totalIds := 0
	maxGroup := groups[0]
	minGroup := groups[0]
	for _, g := range groups {
		totalIds += g.Count
		if g.Count > maxGroup.Count {
			maxGroup = g
		}
		if g.Count < minGroup.Count {
			minGroup = g
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "%-32s %d\n", "Total Area Code Descriptions", len(groups))
	fmt.Fprintf(w, "%-32s %d\n", "Total Unique Area IDs", totalIds)
	fmt.Fprintf(w, "%-32s %.2f\n", "Average IDs per Description", float64(totalIds)/float64(len(groups)))
	fmt.Fprintf(w, "%-32s %s (%d IDs)\n", "Most IDs", maxGroup.AreaCodeDesc, maxGroup.Count)
	fmt.Fprintf(w, "%-32s %s (%d IDs)\n", "Least IDs", minGroup.AreaCodeDesc, minGroup.Count)
}
