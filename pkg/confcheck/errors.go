package confcheck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither xlsx nor csv.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrSheetNotFound indicates the requested sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyGrid indicates the sheet has no header row.
var ErrEmptyGrid = errors.New("empty sheet")

// ErrUnknownCleanup indicates an unsupported cleanup name.
var ErrUnknownCleanup = errors.New("unknown cleanup")

// LoadError represents an error while reading or writing a sheet.
type LoadError struct {
	SheetName string
	Component string // "open", "read", "write", "save"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// UsageError reports an invalid option value.
type UsageError struct {
	Flag    string
	Value   string
	Allowed []string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid %s: %s (must be %s)", e.Flag, e.Value, strings.Join(e.Allowed, ", "))
}
