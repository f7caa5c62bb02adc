package parser

import (
	"fmt"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like "K1:Z7", "$K$1:$Z$7" or
// "'Sheet 1'!K1:Z7" into a Range. A sheet prefix is ignored.
func ParseRange(ref string) (models.Range, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}

	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.Range{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.Range{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}

// ClearRange empties every cell of rng on the sheet.
func ClearRange(f *excelize.File, sheetName string, rng models.Range) error {
	for r := rng.R1; r <= rng.R2; r++ {
		for c := rng.C1; c <= rng.C2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
