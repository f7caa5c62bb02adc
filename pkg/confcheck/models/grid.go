package models

import "strings"

// ExtendedColumn is the first column index (0-based) outside the operating range.
const ExtendedColumn = 10

// Grid is an immutable table of cell values. Row 0 is the header.
// Every row has the same width.
type Grid struct {
	rows  [][]string
	width int
}

// NewGrid copies rows into a Grid, padding short rows with empty cells
// so that every row is as wide as the widest one.
func NewGrid(rows [][]string) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		r := make([]string, width)
		copy(r, row)
		copied[i] = r
	}

	return &Grid{rows: copied, width: width}
}

// RowCount returns the number of rows including the header.
func (g *Grid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// ColumnCount returns the width of the grid.
func (g *Grid) ColumnCount() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Cell returns the trimmed value at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	return strings.TrimSpace(g.Raw(row, col))
}

// Raw returns the untrimmed value at (row, col), or "" when out of range.
func (g *Grid) Raw(row, col int) string {
	if g == nil || row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return ""
	}
	return g.rows[row][col]
}

// Header returns a copy of row 0.
func (g *Grid) Header() []string {
	if g.RowCount() == 0 {
		return nil
	}
	return append([]string(nil), g.rows[0]...)
}

// Rows returns a deep copy of all rows.
func (g *Grid) Rows() [][]string {
	if g == nil {
		return nil
	}
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Record returns the data row at index as a Record.
func (g *Grid) Record(row int) Record {
	var r Record
	for i := range r {
		r[i] = g.Cell(row, i)
	}
	return r
}

// Map returns a new grid with fn applied to every raw cell value.
func (g *Grid) Map(fn func(addr CellAddress, value string) string) *Grid {
	rows := g.Rows()
	for r, row := range rows {
		for c, v := range row {
			rows[r][c] = fn(CellAddress{Col: c, Row: r}, v)
		}
	}
	return NewGrid(rows)
}

// Filter returns a new grid holding the header and the data rows for which keep returns true.
func (g *Grid) Filter(keep func(row int) bool) *Grid {
	if g.RowCount() == 0 {
		return NewGrid(nil)
	}
	rows := [][]string{g.Header()}
	for r := 1; r < len(g.rows); r++ {
		if keep(r) {
			rows = append(rows, append([]string(nil), g.rows[r]...))
		}
	}
	return &Grid{rows: rows, width: g.width}
}

// Equal reports whether both grids hold the same raw values.
func (g *Grid) Equal(other *Grid) bool {
	if g.RowCount() != other.RowCount() || g.ColumnCount() != other.ColumnCount() {
		return false
	}
	for r := range g.rows {
		for c := range g.rows[r] {
			if g.rows[r][c] != other.rows[r][c] {
				return false
			}
		}
	}
	return true
}
