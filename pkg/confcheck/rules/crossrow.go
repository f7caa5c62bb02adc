package rules

import (
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
)

// keySep joins composite key parts so that ("ab", "c") and ("a", "bc") stay distinct.
const keySep = "\x1f"

// PresentedFields identify a presentation slot: one person giving one talk in one session.
var PresentedFields = []models.Field{
	models.FieldName,
	models.FieldAffiliation,
	models.FieldRole,
	models.FieldSessionName,
	models.FieldTitle,
}

// AllFields covers every field of the operating range.
var AllFields = []models.Field{
	models.FieldName,
	models.FieldAffiliation,
	models.FieldRole,
	models.FieldEmail,
	models.FieldSessionName,
	models.FieldSessionDescription,
	models.FieldTitle,
	models.FieldAbstract,
	models.FieldAbstractURL,
	models.FieldVideoURL,
}

// CompositeKey joins the trimmed values of fields on row r.
func CompositeKey(g *models.Grid, r int, fields []models.Field) string {
	rec := g.Record(r)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = rec.Get(f)
	}
	return strings.Join(parts, keySep)
}

// GroupRows groups data rows by key. Groups are returned in order of their
// first row and rows within a group keep grid order. Rows with an empty key
// are skipped.
func GroupRows(g *models.Grid, key func(r int) string) [][]int {
	return groupRows(g, key, true)
}

func groupRows(g *models.Grid, key func(r int) string, skipEmpty bool) [][]int {
	index := make(map[string]int)
	var groups [][]int
	for r := 1; r < g.RowCount(); r++ {
		k := key(r)
		if skipEmpty && strings.Trim(k, keySep) == "" {
			continue
		}
		if i, ok := index[k]; ok {
			groups[i] = append(groups[i], r)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, []int{r})
	}
	return groups
}

// DuplicateRows returns the groups of two or more rows sharing the values of
// fields. Rows whose fields are all empty are not reported.
func DuplicateRows(g *models.Grid, fields []models.Field) [][]int {
	return duplicates(g, fields, true)
}

// MatchingRows is DuplicateRows including rows whose fields are all empty.
// Cleanups use it so that repeated blank rows collapse too.
func MatchingRows(g *models.Grid, fields []models.Field) [][]int {
	return duplicates(g, fields, false)
}

func duplicates(g *models.Grid, fields []models.Field, skipEmpty bool) [][]int {
	var out [][]int
	key := func(r int) string { return CompositeKey(g, r, fields) }
	for _, grp := range groupRows(g, key, skipEmpty) {
		if len(grp) > 1 {
			out = append(out, grp)
		}
	}
	return out
}

// CheckDuplicates reports rows presenting the same talk more than once.
func (s *Set) CheckDuplicates(g *models.Grid) []models.Finding {
	var out []models.Finding
	for _, grp := range DuplicateRows(g, PresentedFields) {
		out = append(out, groupFinding(g, models.CategoryDuplicates, models.SeverityError,
			"Duplicate presentation rows", grp))
	}
	return out
}

// CheckMainRoles warns when one presentation title lists several people in a main role.
func (s *Set) CheckMainRoles(g *models.Grid) []models.Finding {
	var out []models.Finding
	groups := GroupRows(g, func(r int) string { return g.Record(r).Title() })
	for _, grp := range groups {
		if len(grp) < 2 {
			continue
		}
		var main []int
		for _, r := range grp {
			if s.mainRoles[strings.ToLower(g.Cell(r, int(models.FieldRole)))] {
				main = append(main, r)
			}
		}
		if len(main) > 1 {
			out = append(out, groupFinding(g, models.CategoryMainRoles, models.SeverityWarning,
				"Several main roles for one presentation", main))
		}
	}
	return out
}

// CheckPosterSessions reports talk roles inside sessions that hold a poster presenter.
func (s *Set) CheckPosterSessions(g *models.Grid) []models.Finding {
	poster := make(map[string]bool)
	for r := 1; r < g.RowCount(); r++ {
		rec := g.Record(r)
		// Rows without a session belong to none; CheckSessions reports them.
		if rec.Session() != "" && strings.EqualFold(rec.Role(), s.cfg.PosterRole) {
			poster[rec.Session()] = true
		}
	}
	if len(poster) == 0 {
		return nil
	}

	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		rec := g.Record(r)
		if poster[rec.Session()] && s.talkRoles[strings.ToLower(rec.Role())] {
			out = append(out, errorAt(models.CategoryPosterSessions, models.FieldName, r, "%s in a poster session", rec.Role()))
		}
	}
	return out
}

func groupFinding(g *models.Grid, c models.Category, sev models.Severity, msg string, rows []int) models.Finding {
	members := make([]models.GroupMember, len(rows))
	for i, r := range rows {
		rec := g.Record(r)
		members[i] = models.GroupMember{
			Address: models.CellAddress{Col: int(models.FieldName), Row: r},
			Summary: rec.Name() + " | " + rec.Role(),
		}
	}
	return models.Finding{
		Address:  members[0].Address,
		Severity: sev,
		Category: c,
		Message:  msg,
		Group:    members,
	}
}
