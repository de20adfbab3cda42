// Package table pads string rows into aligned columns for plain-text
// display, such as the per-category census in the detail panel.
package table

import (
	"strings"
	"unicode/utf8"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format pads every cell to its column's widest entry and joins the cells
// with a two-space gap. Columns without an explicit alignment are
// left-aligned. Ragged rows are allowed; short rows simply end early.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			align := AlignLeft
			if c < len(alignments) {
				align = alignments[c]
			}
			cells[c] = pad(cell, widths[c], align)
		}
		out[i] = strings.Join(cells, columnGap)
	}
	return out
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func pad(cell string, width int, align Alignment) string {
	gap := width - utf8.RuneCountInString(cell)
	if gap <= 0 {
		return cell
	}
	filler := strings.Repeat(" ", gap)
	if align == AlignRight {
		return filler + cell
	}
	return cell + filler
}
