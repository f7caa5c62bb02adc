package rules

import (
	"math"
	"strconv"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
)

// CheckHeaders compares the header row with the template, one finding per mismatch.
func (s *Set) CheckHeaders(g *models.Grid) []models.Finding {
	var out []models.Finding
	for i, want := range s.cfg.Headers {
		if g.Cell(0, i) != want {
			out = append(out, models.Finding{
				Address:  models.CellAddress{Col: i, Row: 0},
				Severity: models.SeverityError,
				Category: models.CategoryHeaders,
				Message:  `Header must be "` + want + `"`,
			})
		}
	}
	return out
}

// CheckDataRange reports every non-empty cell outside the operating range.
func (s *Set) CheckDataRange(g *models.Grid) []models.Finding {
	var out []models.Finding
	for r := 0; r < g.RowCount(); r++ {
		for c := models.ExtendedColumn; c < g.ColumnCount(); c++ {
			if g.Cell(r, c) != "" {
				out = append(out, finding(models.CategoryRange, models.SeverityError, c, r, "Data out of operating range"))
			}
		}
	}
	return out
}

// CheckNames validates author names. Error checks stop at the first match;
// the capitalization warning is independent.
func (s *Set) CheckNames(g *models.Grid) []models.Finding {
	const c = models.CategoryNames
	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		name := g.Cell(r, int(models.FieldName))

		switch {
		case ContainsDigit(name):
			out = append(out, errorAt(c, models.FieldName, r, "Author name %q contains a number", name))
		case name == "":
			out = append(out, errorAt(c, models.FieldName, r, "Author name is empty"))
		case !HasInternalSpace(name):
			out = append(out, errorAt(c, models.FieldName, r, "Author name %q doesn't contain spaces", name))
		case !LengthInRange(name, s.cfg.NameMinLength, math.MaxInt):
			out = append(out, errorAt(c, models.FieldName, r, "Author name %q is too short", name))
		case !LengthInRange(name, 0, s.cfg.NameMaxLength):
			out = append(out, errorAt(c, models.FieldName, r, "Author name is too long"))
		default:
			if ch, ok := ContainsAnyRune(name, s.cfg.UnexpectedChars); ok {
				out = append(out, errorAt(c, models.FieldName, r, "Author name %q contains an unexpected character: %q", name, ch))
			} else if word, ok := ContainsAny(name, s.cfg.Blacklist); ok {
				out = append(out, errorAt(c, models.FieldName, r, "Author name %q contains a word from a blacklist: %q", name, word))
			}
		}

		if name != "" && !StartsWithUppercase(name) {
			out = append(out, warningAt(c, models.FieldName, r, "Author name %q should start with a capital letter", name))
		}
	}
	return out
}

// CheckRoles requires a role from the closed role set.
func (s *Set) CheckRoles(g *models.Grid) []models.Finding {
	const c = models.CategoryRoles
	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		role := g.Cell(r, int(models.FieldRole))
		if role == "" {
			out = append(out, errorAt(c, models.FieldRole, r, "Author role is empty"))
		} else if !s.roles[strings.ToLower(role)] {
			out = append(out, errorAt(c, models.FieldRole, r, "Author role %q is invalid", role))
		}
	}
	return out
}

// CheckEmails validates non-empty email cells.
func (s *Set) CheckEmails(g *models.Grid) []models.Finding {
	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		email := g.Cell(r, int(models.FieldEmail))
		if email != "" && !IsValidEmail(email) {
			out = append(out, errorAt(models.CategoryEmails, models.FieldEmail, r, "Author email %q is invalid", email))
		}
	}
	return out
}

// CheckSessions requires a session name on every row.
func (s *Set) CheckSessions(g *models.Grid) []models.Finding {
	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		if g.Cell(r, int(models.FieldSessionName)) == "" {
			out = append(out, errorAt(models.CategorySessions, models.FieldSessionName, r, "Session name is empty"))
		}
	}
	return out
}

// CheckTitles requires a title for presenters and forbids one for moderators.
func (s *Set) CheckTitles(g *models.Grid) []models.Finding {
	const c = models.CategoryTitles
	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		role := g.Cell(r, int(models.FieldRole))
		title := g.Cell(r, int(models.FieldTitle))

		if s.isModerator(role) {
			if title != "" {
				out = append(out, errorAt(c, models.FieldTitle, r, "Presentation title should be empty (Moderator)"))
			}
			continue
		}
		if title == "" {
			out = append(out, errorAt(c, models.FieldTitle, r, "Presentation title is empty"))
		} else if LengthInRange(title, 0, s.cfg.ShortTitleLength) {
			out = append(out, warningAt(c, models.FieldTitle, r, "Presentation title is too short"))
		}
	}
	return out
}

// CheckURLs validates the abstract and video URL cells. Each "||"-separated
// part is checked on its own and reported against the same cell.
func (s *Set) CheckURLs(g *models.Grid) []models.Finding {
	var out []models.Finding
	for r := 1; r < g.RowCount(); r++ {
		role := g.Cell(r, int(models.FieldRole))
		abstract := g.Cell(r, int(models.FieldAbstractURL))
		video := g.Cell(r, int(models.FieldVideoURL))

		if s.isModerator(role) {
			out = append(out, s.moderatorURLs(r, abstract, video)...)
		} else {
			out = append(out, s.presenterURLs(r, abstract, video)...)
		}
	}
	return out
}

func (s *Set) presenterURLs(r int, abstract, video string) []models.Finding {
	const c = models.CategoryURLs
	var out []models.Finding

	if abstract == "" {
		out = append(out, errorAt(c, models.FieldAbstractURL, r, "Presentation URL is empty"))
	}
	parts := SplitMulti(abstract, s.cfg.URLDelimiter)
	for i, u := range parts {
		label := partLabel("Presentation URL", i, len(parts))
		if !IsValidHTTPURL(u) {
			out = append(out, errorAt(c, models.FieldAbstractURL, r, "%s is invalid", label))
		} else if host, ok := ContainsAny(u, s.cfg.ForbiddenURLHosts); ok {
			out = append(out, errorAt(c, models.FieldAbstractURL, r, "%s leads to the %s PDF viewer", label, host))
		}
	}

	parts = SplitMulti(video, s.cfg.URLDelimiter)
	for i, u := range parts {
		if !IsValidHTTPURL(u) {
			out = append(out, errorAt(c, models.FieldVideoURL, r, "%s is invalid", partLabel("Video URL", i, len(parts))))
		}
	}
	return out
}

func (s *Set) moderatorURLs(r int, abstract, video string) []models.Finding {
	const c = models.CategoryURLs
	var out []models.Finding

	if abstract != "" {
		parts := SplitMulti(abstract, s.cfg.URLDelimiter)
		for i, u := range parts {
			if !IsValidHTTPURL(u) {
				out = append(out, errorAt(c, models.FieldAbstractURL, r, "%s is invalid", partLabel("Presentation URL", i, len(parts))))
			}
		}
		out = append(out, warningAt(c, models.FieldAbstractURL, r, "Double check if the moderator needs the URL"))
	}
	if video != "" {
		out = append(out, errorAt(c, models.FieldVideoURL, r, "Video URL must be empty for Moderator"))
	}
	return out
}

// partLabel numbers the parts of a multi-value cell; single values keep the plain label.
func partLabel(label string, i, n int) string {
	if n <= 1 {
		return label
	}
	return label + " #" + strconv.Itoa(i+1)
}
