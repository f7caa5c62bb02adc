package confcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// csvSheetName is the sheet name reported for csv input.
const csvSheetName = "csv"

// ValidateFile validates every sheet of an xlsx file, or the single table of a csv file.
func ValidateFile(path string, opts Options) (*models.WorkbookReport, error) {
	v, err := NewValidator(opts)
	if err != nil {
		return nil, err
	}
	return v.ValidateFile(path)
}

// ValidateFile validates every selected sheet of the file at path.
func (v *Validator) ValidateFile(path string) (*models.WorkbookReport, error) {
	grids, order, err := v.loadFile(path)
	if err != nil {
		return nil, err
	}

	wb := &models.WorkbookReport{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]*models.Report),
		Order:    order,
	}
	for _, name := range order {
		v.log.Debug("validating sheet", zap.String("sheet", name))
		report := v.Validate(grids[name])
		report.SheetName = name
		wb.Sheets[name] = report
	}
	return wb, nil
}

// LoadGrid reads one sheet of an xlsx file, or a csv file, into a Grid.
// An empty sheet selects the first sheet.
func LoadGrid(path, sheet, encoding string) (*models.Grid, string, error) {
	if err := checkInput(path); err != nil {
		return nil, "", err
	}

	if isCSV(path) {
		g, err := readCSVFile(path, encoding)
		return g, csvSheetName, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	name, err := selectSheet(f, sheet)
	if err != nil {
		return nil, "", err
	}
	g, err := parser.ReadGrid(f, name)
	if err != nil {
		return nil, "", NewLoadError(name, "read", err)
	}
	return g, name, nil
}

// CleanFile applies op to one sheet of the file at in and saves the result to out.
// out may equal in. csv input is written back as csv.
func (v *Validator) CleanFile(in, out, sheet string, op Cleanup) (*CleanupResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	if isCSV(in) {
		g, err := readCSVFile(in, v.opts.Encoding)
		if err != nil {
			return nil, err
		}
		res, err := v.Apply(op, g)
		if err != nil {
			return nil, err
		}
		return res, writeCSVFile(out, res.Grid)
	}

	f, err := excelize.OpenFile(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	name, err := selectSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	g, err := parser.ReadGrid(f, name)
	if err != nil {
		return nil, NewLoadError(name, "read", err)
	}

	res, err := v.Apply(op, g)
	if err != nil {
		return nil, err
	}
	if err := parser.WriteGrid(f, name, res.Grid); err != nil {
		return nil, NewLoadError(name, "write", err)
	}
	if err := f.SaveAs(out); err != nil {
		return nil, NewLoadError(name, "save", err)
	}
	return res, nil
}

func (v *Validator) loadFile(path string) (map[string]*models.Grid, []string, error) {
	if err := checkInput(path); err != nil {
		return nil, nil, err
	}

	if isCSV(path) {
		g, err := readCSVFile(path, v.opts.Encoding)
		if err != nil {
			return nil, nil, err
		}
		return map[string]*models.Grid{csvSheetName: g}, []string{csvSheetName}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheets := parser.SheetNames(f)
	if v.opts.Sheet != "" {
		if !parser.HasSheet(f, v.opts.Sheet) {
			return nil, nil, fmt.Errorf("%w: %s", ErrSheetNotFound, v.opts.Sheet)
		}
		sheets = []string{v.opts.Sheet}
	}

	grids := make(map[string]*models.Grid, len(sheets))
	for _, name := range sheets {
		g, err := parser.ReadGrid(f, name)
		if err != nil {
			// Log warning and continue with an empty grid
			v.log.Warn("failed to read sheet", zap.String("sheet", name), zap.Error(err))
			g = models.NewGrid(nil)
		}
		grids[name] = g
	}
	return grids, sheets, nil
}

func selectSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		sheets := parser.SheetNames(f)
		if len(sheets) == 0 {
			return "", ErrEmptyGrid
		}
		return sheets[0], nil
	}
	if !parser.HasSheet(f, sheet) {
		return "", fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return sheet, nil
}

func checkInput(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".csv":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, ext)
	}
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func readCSVFile(path, encoding string) (*models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(csvSheetName, "open", err)
	}
	defer f.Close()

	g, err := parser.ReadCSV(f, encoding)
	if err != nil {
		return nil, NewLoadError(csvSheetName, "read", err)
	}
	return g, nil
}

func writeCSVFile(path string, g *models.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return NewLoadError(csvSheetName, "save", err)
	}
	if err := parser.WriteCSV(f, g); err != nil {
		f.Close()
		return NewLoadError(csvSheetName, "write", err)
	}
	if err := f.Close(); err != nil {
		return NewLoadError(csvSheetName, "save", err)
	}
	return nil
}
