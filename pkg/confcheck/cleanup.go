package confcheck

import (
	"fmt"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/markup"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/rules"
	"go.uber.org/zap"
)

// Cleanup names a grid transform.
type Cleanup string

const (
	CleanupResetHeaders              Cleanup = "reset-headers"
	CleanupClearRange                Cleanup = "clear-range"
	CleanupRemoveFullDuplicates      Cleanup = "remove-full-duplicates"
	CleanupRemovePresentedDuplicates Cleanup = "remove-presented-duplicates"
	CleanupStripMarkup               Cleanup = "strip-markup"
)

// Cleanups lists every supported cleanup.
var Cleanups = []Cleanup{
	CleanupResetHeaders,
	CleanupClearRange,
	CleanupRemoveFullDuplicates,
	CleanupRemovePresentedDuplicates,
	CleanupStripMarkup,
}

// ParseCleanup converts a name to a Cleanup.
func ParseCleanup(s string) (Cleanup, error) {
	for _, c := range Cleanups {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCleanup, s)
}

// CleanupResult is the outcome of a cleanup. The input grid is never modified.
type CleanupResult struct {
	// Cleanup is the applied transform.
	Cleanup Cleanup `json:"cleanup"`
	// Grid is the transformed grid.
	Grid *models.Grid `json:"-"`
	// RowsRemoved counts dropped data rows.
	RowsRemoved int `json:"rows_removed"`
	// CellsChanged counts rewritten cells.
	CellsChanged int `json:"cells_changed"`
	// Cleared is the block emptied by clear-range, if any.
	Cleared *models.Range `json:"cleared,omitempty"`
}

// Apply runs the named cleanup on g.
func (v *Validator) Apply(op Cleanup, g *models.Grid) (*CleanupResult, error) {
	var res *CleanupResult
	switch op {
	case CleanupResetHeaders:
		res = ResetHeaders(g, v.rules.Headers())
	case CleanupClearRange:
		res = ClearExtendedRange(g)
	case CleanupRemoveFullDuplicates:
		res = RemoveFullDuplicates(g)
	case CleanupRemovePresentedDuplicates:
		res = RemovePresentedDuplicates(g)
	case CleanupStripMarkup:
		res = StripMarkup(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCleanup, op)
	}

	v.log.Info("cleanup applied",
		zap.String("cleanup", string(op)),
		zap.Int("rows_removed", res.RowsRemoved),
		zap.Int("cells_changed", res.CellsChanged))
	return res, nil
}

// ResetHeaders writes the header template into the first row.
func ResetHeaders(g *models.Grid, headers []string) *CleanupResult {
	rows := g.Rows()
	if len(rows) == 0 {
		rows = [][]string{nil}
	}
	changed := 0
	header := rows[0]
	for len(header) < len(headers) {
		header = append(header, "")
	}
	for i, h := range headers {
		if header[i] != h {
			header[i] = h
			changed++
		}
	}
	rows[0] = header
	return &CleanupResult{Cleanup: CleanupResetHeaders, Grid: models.NewGrid(rows), CellsChanged: changed}
}

// ClearExtendedRange empties every cell right of the operating range.
// The grid keeps its width so the host can clear the reported block.
func ClearExtendedRange(g *models.Grid) *CleanupResult {
	res := &CleanupResult{Cleanup: CleanupClearRange}
	if g.ColumnCount() <= models.ExtendedColumn || g.RowCount() == 0 {
		res.Grid = g
		return res
	}

	res.Cleared = &models.Range{
		R1: 1,
		C1: models.ExtendedColumn + 1,
		R2: g.RowCount(),
		C2: g.ColumnCount(),
	}
	res.Grid = g.Map(func(addr models.CellAddress, v string) string {
		if !res.Cleared.Contains(addr) {
			return v
		}
		if v != "" {
			res.CellsChanged++
		}
		return ""
	})
	return res
}

// RemoveFullDuplicates drops rows equal to an earlier row on all ten fields.
// Repeated blank rows count as duplicates.
func RemoveFullDuplicates(g *models.Grid) *CleanupResult {
	res := removeDuplicates(g, rules.AllFields)
	res.Cleanup = CleanupRemoveFullDuplicates
	return res
}

// RemovePresentedDuplicates drops rows equal to an earlier row on name,
// affiliation, role, session name and title.
func RemovePresentedDuplicates(g *models.Grid) *CleanupResult {
	res := removeDuplicates(g, rules.PresentedFields)
	res.Cleanup = CleanupRemovePresentedDuplicates
	return res
}

// removeDuplicates keeps the first row of every duplicate group.
func removeDuplicates(g *models.Grid, fields []models.Field) *CleanupResult {
	drop := make(map[int]bool)
	for _, grp := range rules.MatchingRows(g, fields) {
		for _, r := range grp[1:] {
			drop[r] = true
		}
	}
	return &CleanupResult{
		Grid:        g.Filter(func(r int) bool { return !drop[r] }),
		RowsRemoved: len(drop),
	}
}

// StripMarkup replaces every cell by its plain text.
func StripMarkup(g *models.Grid) *CleanupResult {
	res := &CleanupResult{Cleanup: CleanupStripMarkup}
	res.Grid = g.Map(func(_ models.CellAddress, v string) string {
		clean := markup.Clean(v)
		if clean != v && clean != strings.TrimSpace(v) {
			res.CellsChanged++
			return clean
		}
		return v
	})
	return res
}
