package parser

import (
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/xuri/excelize/v2"
)

// WriteGrid replaces the used range of a sheet with g. Cells that were part
// of the previous used range but lie outside g are cleared.
func WriteGrid(f *excelize.File, sheetName string, g *models.Grid) error {
	if !HasSheet(f, sheetName) {
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
	}

	old, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	oldRows, oldCols := len(old), 0
	for _, row := range old {
		if len(row) > oldCols {
			oldCols = len(row)
		}
	}

	for r := 0; r < g.RowCount(); r++ {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, g.ColumnCount())
		for c := range values {
			values[c] = g.Raw(r, c)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	// Clear stale cells right of and below the new grid.
	if oldCols > g.ColumnCount() && g.RowCount() > 0 {
		stale := models.Range{R1: 1, C1: g.ColumnCount() + 1, R2: g.RowCount(), C2: oldCols}
		if err := ClearRange(f, sheetName, stale); err != nil {
			return err
		}
	}
	if oldRows > g.RowCount() && oldCols > 0 {
		stale := models.Range{R1: g.RowCount() + 1, C1: 1, R2: oldRows, C2: oldCols}
		if err := ClearRange(f, sheetName, stale); err != nil {
			return err
		}
	}
	return nil
}
