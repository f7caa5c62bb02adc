package rules

import (
	"fmt"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
)

// Rule is one check of the pipeline.
type Rule struct {
	// Category is the category of every finding the rule produces.
	Category models.Category
	// Check scans the grid and returns fresh findings.
	Check func(g *models.Grid) []models.Finding
}

// Set is a compiled, read-only rule configuration.
type Set struct {
	cfg       Config
	roles     map[string]bool
	mainRoles map[string]bool
	talkRoles map[string]bool
}

// New compiles cfg into a Set. The Set keeps its own copy of the configuration.
func New(cfg Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule config: %w", err)
	}
	cfg = cfg.clone()
	return &Set{
		cfg:       cfg,
		roles:     lowerSet(cfg.Roles),
		mainRoles: lowerSet(cfg.MainRoles),
		talkRoles: lowerSet(cfg.TalkRoles),
	}, nil
}

// Default returns a Set built from DefaultConfig.
func Default() *Set {
	s, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// Config returns a copy of the compiled configuration.
func (s *Set) Config() Config {
	return s.cfg.clone()
}

// Headers returns a copy of the header template.
func (s *Set) Headers() []string {
	return append([]string(nil), s.cfg.Headers...)
}

// Rules returns every rule in pipeline order.
func (s *Set) Rules() []Rule {
	return []Rule{
		{models.CategoryHeaders, s.CheckHeaders},
		{models.CategoryRange, s.CheckDataRange},
		{models.CategoryNames, s.CheckNames},
		{models.CategoryRoles, s.CheckRoles},
		{models.CategoryEmails, s.CheckEmails},
		{models.CategorySessions, s.CheckSessions},
		{models.CategoryTitles, s.CheckTitles},
		{models.CategoryURLs, s.CheckURLs},
		{models.CategoryDuplicates, s.CheckDuplicates},
		{models.CategoryMainRoles, s.CheckMainRoles},
		{models.CategoryPosterSessions, s.CheckPosterSessions},
		{models.CategoryEmbeddedTags, s.CheckEmbeddedTags},
		{models.CategoryEmbeddedEntities, s.CheckEmbeddedEntities},
	}
}

func (s *Set) isModerator(role string) bool {
	return strings.EqualFold(role, s.cfg.ModeratorRole)
}

func (c Config) clone() Config {
	out := c
	out.Headers = append([]string(nil), c.Headers...)
	out.Roles = append([]string(nil), c.Roles...)
	out.MainRoles = append([]string(nil), c.MainRoles...)
	out.TalkRoles = append([]string(nil), c.TalkRoles...)
	out.Blacklist = append([]string(nil), c.Blacklist...)
	out.ForbiddenURLHosts = append([]string(nil), c.ForbiddenURLHosts...)
	return out
}

func lowerSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return m
}

func errorAt(c models.Category, col models.Field, row int, format string, args ...any) models.Finding {
	return finding(c, models.SeverityError, int(col), row, format, args...)
}

func warningAt(c models.Category, col models.Field, row int, format string, args ...any) models.Finding {
	return finding(c, models.SeverityWarning, int(col), row, format, args...)
}

func finding(c models.Category, sev models.Severity, col, row int, format string, args ...any) models.Finding {
	return models.Finding{
		Address:  models.CellAddress{Col: col, Row: row},
		Severity: sev,
		Category: c,
		Message:  fmt.Sprintf(format, args...),
	}
}
