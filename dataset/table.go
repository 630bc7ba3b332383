// Package dataset wraps the raw cell values returned by the Google Sheets API in a
// rectangular table with ordered column labels, and implements the header detection,
// header promotion and column filtering used to prepare a worksheet for profiling.
package dataset

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// MaxHeaderScan is the default number of leading rows scanned for a header row.
const MaxHeaderScan = 5

// Table is an ordered sequence of rows, each an ordered sequence of cells, with a
// label per column. Rows are padded to a uniform width on construction and the
// labels default to the column index.
type Table struct {
	Labels []string
	Rows   [][]any
}

// New builds a Table from the values of a worksheet. Ragged rows are padded with
// empty strings to the width of the longest row.
func New(values [][]any) *Table {
	width := 0
	for _, row := range values {
		if len(row) > width {
			width = len(row)
		}
	}

	rows := make([][]any, len(values))
	for i, row := range values {
		cells := make([]any, width)
		for j := range cells {
			if j < len(row) {
				cells[j] = row[j]
			} else {
				cells[j] = ""
			}
		}

		rows[i] = cells
	}

	labels := make([]string, width)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return &Table{
		Labels: labels,
		Rows:   rows,
	}
}

// IsEmpty returns true for a table with no rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// HeaderRow scans the first `limit` rows (or all rows, for a shorter table) and
// returns the index of the row with the highest score, where a row scores the
// number of non-blank cells multiplied by the average string length over all cells
// in the row. A strictly-greater comparison against an initial best score of zero
// keeps the earliest row on a tie and never selects an all-blank row. Returns
// (0, false) if the table is empty or no row scores above zero.
func (t *Table) HeaderRow(limit int) (int, bool) {
	if limit <= 0 {
		limit = MaxHeaderScan
	}

	if limit > len(t.Rows) {
		limit = len(t.Rows)
	}

	best := 0.0
	header := 0
	found := false

	for i := 0; i < limit; i++ {
		row := t.Rows[i]
		if len(row) == 0 {
			continue
		}

		filled := 0
		length := 0
		for _, cell := range row {
			s := cast.ToString(cell)
			if strings.TrimSpace(s) != "" {
				filled++
			}

			length += utf8.RuneCountInString(s)
		}

		score := float64(filled) * float64(length) / float64(len(row))
		if score > best {
			best = score
			header = i
			found = true
		}
	}

	return header, found
}

// Promote replaces the column labels with the stringified cells of the row at ix
// and discards that row and every row above it. Rows below the header keep their
// order and are renumbered contiguously from zero.
func (t *Table) Promote(ix int) {
	if ix < 0 || ix >= len(t.Rows) {
		return
	}

	labels := make([]string, len(t.Rows[ix]))
	for i, cell := range t.Rows[ix] {
		labels[i] = cast.ToString(cell)
	}

	rows := make([][]any, 0, len(t.Rows)-ix-1)
	rows = append(rows, t.Rows[ix+1:]...)

	t.Labels = labels
	t.Rows = rows
}

// FilterScalars returns a copy of the table without any column that holds a
// composite (slice, array or map) value in any cell, along with the sorted labels
// of the excluded columns. The excluded set is exactly the difference between the
// original and filtered label sets.
func (t *Table) FilterScalars() (*Table, []string) {
	keep := []int{}
	excluded := []string{}

	for col := range t.Labels {
		if t.scalar(col) {
			keep = append(keep, col)
		} else {
			excluded = append(excluded, t.Labels[col])
		}
	}

	labels := make([]string, len(keep))
	for i, col := range keep {
		labels[i] = t.Labels[col]
	}

	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]any, len(keep))
		for j, col := range keep {
			cells[j] = row[col]
		}

		rows[i] = cells
	}

	sort.Strings(excluded)

	return &Table{Labels: labels, Rows: rows}, excluded
}

// Column returns the cells of the column at ix, top to bottom.
func (t *Table) Column(ix int) []any {
	cells := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row[ix]
	}

	return cells
}

func (t *Table) scalar(col int) bool {
	for _, row := range t.Rows {
		if composite(row[col]) {
			return false
		}
	}

	return true
}

func composite(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}

	return false
}
