package rules

import (
	"strings"
	"testing"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRow returns a data row that passes every field rule.
func validRow() []string {
	return []string{
		"Jane Doe",
		"Uni Example, Berlin",
		"Speaker",
		"jane@example.com",
		"Session A",
		"",
		"A long enough title",
		"",
		"http://a.com/abstract.pdf",
		"",
	}
}

// sheet builds a grid from the default header and the given data rows.
func sheet(rows ...[]string) *models.Grid {
	all := [][]string{DefaultHeaders}
	all = append(all, rows...)
	return models.NewGrid(all)
}

// with returns a copy of validRow with the given fields replaced.
func with(values map[models.Field]string) []string {
	row := validRow()
	for f, v := range values {
		row[f] = v
	}
	return row
}

func bySeverity(findings []models.Finding, sev models.Severity) []models.Finding {
	var out []models.Finding
	for _, f := range findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

func runAll(s *Set, g *models.Grid) []models.Finding {
	var out []models.Finding
	for _, r := range s.Rules() {
		out = append(out, r.Check(g)...)
	}
	return out
}

func TestHeaderTemplateHasNoFindings(t *testing.T) {
	s := Default()
	assert.Empty(t, runAll(s, sheet()))
}

func TestValidRowHasNoFindings(t *testing.T) {
	s := Default()
	assert.Empty(t, runAll(s, sheet(validRow())))
}

func TestRulesFollowCategoryOrder(t *testing.T) {
	rules := Default().Rules()
	require.Len(t, rules, len(models.Categories))
	for i, r := range rules {
		assert.Equal(t, models.Categories[i], r.Category, "rule %d", i)
	}
}

func TestCheckHeaders(t *testing.T) {
	header := append([]string(nil), DefaultHeaders...)
	header[2] = "role"
	g := models.NewGrid([][]string{header})

	findings := Default().CheckHeaders(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "C1", findings[0].Address.String())
	assert.Equal(t, `Header must be "Role"`, findings[0].Message)
	assert.Equal(t, models.SeverityError, findings[0].Severity)
}

func TestCheckHeadersMissingRow(t *testing.T) {
	findings := Default().CheckHeaders(models.NewGrid(nil))
	assert.Len(t, findings, len(DefaultHeaders))
}

func TestCheckDataRange(t *testing.T) {
	row := append(validRow(), "", "stray")
	findings := Default().CheckDataRange(sheet(row))

	require.Len(t, findings, 1)
	assert.Equal(t, "L2", findings[0].Address.String())
	assert.Equal(t, models.CategoryRange, findings[0].Category)
}

func TestCheckNames(t *testing.T) {
	tests := []struct {
		name    string
		err     string
		warning bool
	}{
		{"Jane Doe", "", false},
		{"Élodie Martin", "", false},
		{"J4ne Doe", "contains a number", false},
		{"", "is empty", false},
		{"JaneDoe", "doesn't contain spaces", false},
		{"Jo D", "is too short", false},
		{"A" + strings.Repeat("b", 25) + " " + strings.Repeat("c", 24), "is too long", false},
		{"Jane@Doe X", "unexpected character: '@'", false},
		{"Mrs. Jane Doe", `blacklist: "mrs."`, false},
		{"The Research Team", `blacklist: "team"`, false},
		{"Zoé Â", "", false},
		{"É" + strings.Repeat("é", 24) + " " + strings.Repeat("é", 24), "", false},
		{"jane doe", "", true},
		{"'Jane Doe", "", true},
		{"j4ne doe", "contains a number", true},
	}

	s := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := s.CheckNames(sheet(with(map[models.Field]string{models.FieldName: tt.name})))
			errs := bySeverity(findings, models.SeverityError)
			warns := bySeverity(findings, models.SeverityWarning)

			if tt.err == "" {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1, "error checks stop at the first match")
				assert.Contains(t, errs[0].Message, tt.err)
				assert.Equal(t, "A2", errs[0].Address.String())
			}
			if tt.warning {
				require.Len(t, warns, 1)
				assert.Contains(t, warns[0].Message, "capital letter")
			} else {
				assert.Empty(t, warns)
			}
		})
	}
}

func TestCheckRoles(t *testing.T) {
	s := Default()
	g := sheet(
		with(map[models.Field]string{models.FieldRole: ""}),
		with(map[models.Field]string{models.FieldRole: "Chair"}),
		with(map[models.Field]string{models.FieldRole: "KEYNOTE SPEAKER"}),
	)

	findings := s.CheckRoles(g)
	require.Len(t, findings, 2)
	assert.Equal(t, "Author role is empty", findings[0].Message)
	assert.Equal(t, "C2", findings[0].Address.String())
	assert.Equal(t, `Author role "Chair" is invalid`, findings[1].Message)
	assert.Equal(t, "C3", findings[1].Address.String())
}

func TestCheckEmails(t *testing.T) {
	g := sheet(
		with(map[models.Field]string{models.FieldEmail: ""}),
		with(map[models.Field]string{models.FieldEmail: "not-an-email"}),
	)

	findings := Default().CheckEmails(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "D3", findings[0].Address.String())
}

func TestCheckSessions(t *testing.T) {
	g := sheet(with(map[models.Field]string{models.FieldSessionName: "  "}))

	findings := Default().CheckSessions(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "Session name is empty", findings[0].Message)
	assert.Equal(t, "E2", findings[0].Address.String())
}

func TestCheckTitles(t *testing.T) {
	tests := []struct {
		role, title string
		severity    models.Severity
		message     string
	}{
		{"Moderator", "Opening words", models.SeverityError, "Presentation title should be empty (Moderator)"},
		{"moderator", "", "", ""},
		{"Speaker", "", models.SeverityError, "Presentation title is empty"},
		{"Speaker", "Intro", models.SeverityWarning, "Presentation title is too short"},
		{"Speaker", "Intro!", "", ""},
	}

	s := Default()
	for _, tt := range tests {
		g := sheet(with(map[models.Field]string{models.FieldRole: tt.role, models.FieldTitle: tt.title}))
		findings := s.CheckTitles(g)
		if tt.message == "" {
			assert.Empty(t, findings, "role %q title %q", tt.role, tt.title)
			continue
		}
		if assert.Len(t, findings, 1, "role %q title %q", tt.role, tt.title) {
			assert.Equal(t, tt.severity, findings[0].Severity)
			assert.Equal(t, tt.message, findings[0].Message)
			assert.Equal(t, "G2", findings[0].Address.String())
		}
	}
}

func TestCheckURLsPresenter(t *testing.T) {
	tests := []struct {
		name     string
		abstract string
		video    string
		messages []string
	}{
		{"valid", "https://example.org/a.pdf", "", nil},
		{"empty abstract", "", "", []string{"Presentation URL is empty"}},
		{"second part invalid", "http://a.com||not-a-url", "", []string{"Presentation URL #2 is invalid"}},
		{"github viewer", "https://github.com/org/repo/paper.pdf", "", []string{"Presentation URL leads to the github PDF viewer"}},
		{"invalid video", "http://a.com", "youtube", []string{"Video URL is invalid"}},
		{"two videos", "http://a.com", "http://v.com || ftp://v.com", []string{"Video URL #2 is invalid"}},
	}

	s := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := sheet(with(map[models.Field]string{
				models.FieldAbstractURL: tt.abstract,
				models.FieldVideoURL:    tt.video,
			}))
			findings := s.CheckURLs(g)

			var got []string
			for _, f := range findings {
				assert.Equal(t, models.SeverityError, f.Severity)
				got = append(got, f.Message)
			}
			assert.Equal(t, tt.messages, got)
		})
	}
}

func TestCheckURLsModerator(t *testing.T) {
	s := Default()

	g := sheet(with(map[models.Field]string{
		models.FieldRole:        "Moderator",
		models.FieldTitle:       "",
		models.FieldAbstractURL: "http://a.com",
	}))
	findings := s.CheckURLs(g)
	assert.Empty(t, bySeverity(findings, models.SeverityError))
	warns := bySeverity(findings, models.SeverityWarning)
	require.Len(t, warns, 1)
	assert.Equal(t, "Double check if the moderator needs the URL", warns[0].Message)

	g = sheet(with(map[models.Field]string{
		models.FieldRole:        "Moderator",
		models.FieldAbstractURL: "",
		models.FieldVideoURL:    "http://v.com",
	}))
	findings = s.CheckURLs(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "Video URL must be empty for Moderator", findings[0].Message)
	assert.Equal(t, "J2", findings[0].Address.String())

	g = sheet(with(map[models.Field]string{
		models.FieldRole:        "Moderator",
		models.FieldAbstractURL: "bad",
	}))
	findings = s.CheckURLs(g)
	assert.Len(t, bySeverity(findings, models.SeverityError), 1)
	assert.Len(t, bySeverity(findings, models.SeverityWarning), 1)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Headers = cfg.Headers[:3]
	cfg.URLDelimiter = ""

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "headers")
	assert.Contains(t, err.Error(), "url_delimiter")
}

func TestSetKeepsOwnConfig(t *testing.T) {
	cfg := DefaultConfig()
	s, err := New(cfg)
	require.NoError(t, err)

	cfg.Roles[0] = "changed"
	assert.Equal(t, "moderator", s.Config().Roles[0])

	h := s.Headers()
	h[0] = "changed"
	assert.Equal(t, DefaultHeaders[0], s.Headers()[0])
}

func TestCustomRoles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roles = append(cfg.Roles, "Chair")
	s, err := New(cfg)
	require.NoError(t, err)

	g := sheet(with(map[models.Field]string{models.FieldRole: "chair"}))
	assert.Empty(t, s.CheckRoles(g))
}
