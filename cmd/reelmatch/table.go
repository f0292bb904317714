package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one table column. Numeric columns (ids, scores) set
// rightAlign so digits line up.
type column struct {
	title      string
	rightAlign bool
}

var (
	candidateColumns = []column{
		{title: "ID", rightAlign: true},
		{title: "Title"},
		{title: "Score", rightAlign: true},
		{title: "Match"},
	}
	extensionColumns = []column{
		{title: "Movie", rightAlign: true},
		{title: "Property"},
		{title: "Values"},
	}
	registryColumns = []column{
		{title: "ID"},
		{title: "Name"},
		{title: "Kind"},
	}
)

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		align := text.AlignLeft
		if col.rightAlign {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
