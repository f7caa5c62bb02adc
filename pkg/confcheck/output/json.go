// Package output serializes validation reports.
package output

import (
	"encoding/json"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
)

// ToJSON serializes a sheet report.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// WorkbookToJSON serializes a workbook report.
func WorkbookToJSON(wb *models.WorkbookReport, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// ResultToJSON serializes any cleanup or summary value.
func ResultToJSON(v any, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
