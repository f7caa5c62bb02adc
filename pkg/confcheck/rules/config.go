package rules

import (
	"errors"
	"fmt"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
)

// Config holds the static rule data. It is read once and compiled into a Set.
type Config struct {
	// Headers is the expected header row, one title per field.
	Headers []string `yaml:"headers"`
	// Roles is the closed set of accepted roles (case-insensitive).
	Roles []string `yaml:"roles"`
	// MainRoles are the primary presenting roles.
	MainRoles []string `yaml:"main_roles"`
	// TalkRoles are roles that must not appear in a poster session.
	TalkRoles []string `yaml:"talk_roles"`
	// PosterRole marks a session as a poster session.
	PosterRole string `yaml:"poster_role"`
	// ModeratorRole is exempt from title and URL requirements.
	ModeratorRole string `yaml:"moderator_role"`
	// Blacklist holds substrings that must not occur in an author name.
	Blacklist []string `yaml:"blacklist"`
	// UnexpectedChars holds characters that must not occur in an author name.
	UnexpectedChars string `yaml:"unexpected_chars"`
	// NameMinLength and NameMaxLength bound the author name length in characters.
	NameMinLength int `yaml:"name_min_length"`
	NameMaxLength int `yaml:"name_max_length"`
	// ShortTitleLength is the longest title still reported as too short.
	ShortTitleLength int `yaml:"short_title_length"`
	// URLDelimiter separates several URLs in one cell.
	URLDelimiter string `yaml:"url_delimiter"`
	// ForbiddenURLHosts are substrings that make an abstract URL unsuitable.
	ForbiddenURLHosts []string `yaml:"forbidden_url_hosts"`
}

// DefaultHeaders is the canonical header template.
var DefaultHeaders = []string{
	"Name (incl. titles)",
	"Affiliation/Organisation and location",
	"Role",
	"Email",
	"Session Name",
	"Session Description",
	"Presentation Title",
	"Presentation Abstract",
	"Abstract URL",
	"Video URL",
}

// DefaultBlacklist lists substrings that suggest a name cell holds something other than a person.
var DefaultBlacklist = []string{
	"director", "department", "team", "group", "consortium", "project",
	"university", "institution", "program", "organization", "research",
	"network", "international", "medical", "center", "application",
	"organisation", "on behalf", "study", "genetic", "medicine", "topmed",
	"genom", "board", "institute", "science", "college", "accociat",
	"global", "develop", "health", "workplace", "workspace", "grupo",
	"committee", "hospital", "student", "associat", "clinic", "service",
	"society", "social", "collaborat", "national", "working", "contribut",
	"surgery", "covid", "candidate", "scient", "non role", "question",
	"answer", "unknown", "author", "invest", "general", "panel", "discus",
	"graduat", "mr.", "mrs.", "ms.", "technical", "leader", "senior", "other",
}

// DefaultConfig returns the built-in rule data.
func DefaultConfig() Config {
	return Config{
		Headers: append([]string(nil), DefaultHeaders...),
		Roles: []string{
			"moderator", "speaker", "poster presenter", "panelist",
			"keynote speaker", "invited speaker", "abstract author",
		},
		MainRoles:         []string{"poster presenter", "speaker", "invited speaker", "keynote speaker"},
		TalkRoles:         []string{"speaker", "invited speaker", "keynote speaker"},
		PosterRole:        "poster presenter",
		ModeratorRole:     "moderator",
		Blacklist:         append([]string(nil), DefaultBlacklist...),
		UnexpectedChars:   "@#$%^&*_=+[]{}|\\<>/?;:\"!~`",
		NameMinLength:     5,
		NameMaxLength:     50,
		ShortTitleLength:  5,
		URLDelimiter:      "||",
		ForbiddenURLHosts: []string{"github"},
	}
}

// Validate checks the configuration for inconsistent settings.
func (c Config) Validate() error {
	var errs []error
	if len(c.Headers) != int(models.FieldCount) {
		errs = append(errs, fmt.Errorf("headers: expected %d titles, got %d", models.FieldCount, len(c.Headers)))
	}
	if len(c.Roles) == 0 {
		errs = append(errs, errors.New("roles: must not be empty"))
	}
	if c.NameMinLength < 0 || c.NameMaxLength < c.NameMinLength {
		errs = append(errs, fmt.Errorf("name length bounds [%d, %d] are invalid", c.NameMinLength, c.NameMaxLength))
	}
	if c.URLDelimiter == "" {
		errs = append(errs, errors.New("url_delimiter: must not be empty"))
	}
	return errors.Join(errs...)
}
