// Package parser reads submission sheets into grids and writes grids back.
package parser

import (
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads the used range of a sheet into a Grid.
// The used range starts at A1 and ends at the last non-empty row and column.
func ReadGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return models.NewGrid(UsedRange(rows)), nil
}

// SheetNames returns the sheets of f in workbook order.
func SheetNames(f *excelize.File) []string {
	return f.GetSheetList()
}

// HasSheet reports whether f contains sheetName.
func HasSheet(f *excelize.File, sheetName string) bool {
	idx, err := f.GetSheetIndex(sheetName)
	return err == nil && idx >= 0
}
