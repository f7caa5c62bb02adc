// Package models defines data structures for submission sheet validation.
package models

import (
	"github.com/xuri/excelize/v2"
)

// CellAddress identifies a single cell of a grid.
type CellAddress struct {
	// Col is the column index (0-based).
	Col int `json:"col"`
	// Row is the row index (0-based, row 0 is the header).
	Row int `json:"row"`
}

// String renders the address in A1 notation, e.g. "C12".
func (a CellAddress) String() string {
	name, err := excelize.CoordinatesToCellName(a.Col+1, a.Row+1)
	if err != nil {
		return "?"
	}
	return name
}

// MarshalText renders the address in A1 notation.
func (a CellAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ColumnLetter returns the column name for a 0-based column index ("A", "B", ... "Z", "AA").
func ColumnLetter(index int) string {
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return ""
	}
	return name
}
