package parser

// UsedRange cuts rows down to the block from A1 to the last non-empty
// row and column. Trailing empty rows and columns are dropped.
func UsedRange(rows [][]string) [][]string {
	lastRow, lastCol := dataExtent(rows)
	if lastRow < 0 {
		return nil
	}

	out := make([][]string, lastRow+1)
	for i := range out {
		row := make([]string, lastCol+1)
		copy(row, rows[i])
		out[i] = row
	}
	return out
}

// dataExtent returns the 0-based index of the last row and last column
// holding a non-empty cell, or -1, -1 when every cell is empty.
func dataExtent(rows [][]string) (lastRow, lastCol int) {
	lastRow, lastCol = -1, -1
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			lastRow = r
			if c > lastCol {
				lastCol = c
			}
		}
	}
	return lastRow, lastCol
}
