// Package stats contains statistics calculations and reporting.
package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

type column struct {
	title string
	align columnAlignment
}

// formatTable lays rows out under columns, one space between cells.
// Missing cells render blank; extra cells are dropped.
func formatTable(columns []column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = displayWidth(col.title)
	}
	for _, row := range rows {
		for i := range columns {
			if w := displayWidth(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(columns, widths, header))
	for _, row := range rows {
		lines = append(lines, formatRow(columns, widths, row))
	}
	return lines
}

func formatRow(columns []column, widths []int, row []string) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cell := cellAt(row, i)
		if col.align == alignRight {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.Join(cells, " ")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
