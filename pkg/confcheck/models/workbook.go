package models

// WorkbookReport represents workbook-level container with per-sheet reports.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its report.
	Sheets map[string]*Report `json:"sheets"`
	// Order lists sheet names in workbook order.
	Order []string `json:"order"`
}

// OK reports whether every sheet validated without findings.
func (w *WorkbookReport) OK() bool {
	for _, r := range w.Sheets {
		if !r.OK() {
			return false
		}
	}
	return true
}

// HasErrors reports whether any sheet has error findings.
func (w *WorkbookReport) HasErrors() bool {
	for _, r := range w.Sheets {
		if r.HasErrors() {
			return true
		}
	}
	return false
}
