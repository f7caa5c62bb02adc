package models

import "fmt"

// Range represents cell coordinate bounds of a rectangular block.
type Range struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// String renders the range in A1 notation, e.g. "K1:Z7".
func (r Range) String() string {
	start := CellAddress{Col: r.C1 - 1, Row: r.R1 - 1}
	end := CellAddress{Col: r.C2 - 1, Row: r.R2 - 1}
	return fmt.Sprintf("%s:%s", start, end)
}

// MarshalText renders the range in A1 notation.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Contains reports whether the 0-based address lies inside the range.
func (r Range) Contains(a CellAddress) bool {
	return a.Row+1 >= r.R1 && a.Row+1 <= r.R2 && a.Col+1 >= r.C1 && a.Col+1 <= r.C2
}
