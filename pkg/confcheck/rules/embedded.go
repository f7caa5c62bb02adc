package rules

import (
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/markup"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
)

// CheckEmbeddedTags reports cells holding real HTML tags.
func (s *Set) CheckEmbeddedTags(g *models.Grid) []models.Finding {
	return scanCells(g, func(addr models.CellAddress, v string) (models.Finding, bool) {
		tags := markup.KnownTags(v)
		if len(tags) == 0 {
			return models.Finding{}, false
		}
		return finding(models.CategoryEmbeddedTags, models.SeverityError, addr.Col, addr.Row,
			"Cell contains embedded tags: %s", strings.Join(tags, ", ")), true
	})
}

// CheckEmbeddedEntities reports cells holding HTML character references.
func (s *Set) CheckEmbeddedEntities(g *models.Grid) []models.Finding {
	return scanCells(g, func(addr models.CellAddress, v string) (models.Finding, bool) {
		ents := markup.Entities(v)
		if len(ents) == 0 {
			return models.Finding{}, false
		}
		return finding(models.CategoryEmbeddedEntities, models.SeverityError, addr.Col, addr.Row,
			"Cell contains embedded entities: %s", strings.Join(ents, ", ")), true
	})
}

// scanCells visits every cell row by row, header included.
func scanCells(g *models.Grid, check func(models.CellAddress, string) (models.Finding, bool)) []models.Finding {
	var out []models.Finding
	for r := 0; r < g.RowCount(); r++ {
		for c := 0; c < g.ColumnCount(); c++ {
			v := g.Cell(r, c)
			if v == "" {
				continue
			}
			if f, ok := check(models.CellAddress{Col: c, Row: r}, v); ok {
				out = append(out, f)
			}
		}
	}
	return out
}
