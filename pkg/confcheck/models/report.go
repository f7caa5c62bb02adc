package models

import "sort"

// Section holds the findings of one (category, severity) pair.
type Section struct {
	// Category is the producing rule.
	Category Category `json:"category"`
	// Severity is shared by every finding in the section.
	Severity Severity `json:"severity"`
	// Title is the card label of the category.
	Title string `json:"title"`
	// Findings are kept in discovery order.
	Findings []Finding `json:"findings"`
}

// Report is the result of validating one sheet.
type Report struct {
	// SheetName is the validated sheet (empty for in-memory grids).
	SheetName string `json:"sheet_name,omitempty"`
	// Rows is the number of rows in the grid, header included.
	Rows int `json:"rows"`
	// Columns is the grid width.
	Columns int `json:"columns"`
	// Sections contains non-empty sections in pipeline order, errors before warnings.
	Sections []Section `json:"sections,omitempty"`
}

// NewReport groups findings into sections ordered by category and severity.
func NewReport(findings []Finding) *Report {
	buckets := make(map[Category]map[Severity][]Finding)
	for _, f := range findings {
		if buckets[f.Category] == nil {
			buckets[f.Category] = make(map[Severity][]Finding)
		}
		buckets[f.Category][f.Severity] = append(buckets[f.Category][f.Severity], f)
	}

	r := &Report{}
	for _, c := range orderedCategories(buckets) {
		for _, s := range []Severity{SeverityError, SeverityWarning} {
			if fs := buckets[c][s]; len(fs) > 0 {
				r.Sections = append(r.Sections, Section{
					Category: c,
					Severity: s,
					Title:    c.Title(),
					Findings: fs,
				})
			}
		}
	}
	return r
}

// orderedCategories returns known categories in pipeline order, then unknown ones.
func orderedCategories(buckets map[Category]map[Severity][]Finding) []Category {
	var out []Category
	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
		if _, ok := buckets[c]; ok {
			out = append(out, c)
		}
	}
	var extra []Category
	for c := range buckets {
		if !known[c] {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// OK reports whether no rule produced a finding.
func (r *Report) OK() bool {
	return r == nil || len(r.Sections) == 0
}

// Count returns the number of findings with the given severity.
func (r *Report) Count(s Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, sec := range r.Sections {
		if sec.Severity == s {
			n += len(sec.Findings)
		}
	}
	return n
}

// HasErrors reports whether any section holds errors.
func (r *Report) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// Section returns the findings for (category, severity), or nil.
func (r *Report) Section(c Category, s Severity) []Finding {
	if r == nil {
		return nil
	}
	for _, sec := range r.Sections {
		if sec.Category == c && sec.Severity == s {
			return sec.Findings
		}
	}
	return nil
}

// Findings returns every finding in report order.
func (r *Report) Findings() []Finding {
	if r == nil {
		return nil
	}
	var out []Finding
	for _, sec := range r.Sections {
		out = append(out, sec.Findings...)
	}
	return out
}
