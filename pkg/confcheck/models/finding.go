package models

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks data that must be fixed.
	SeverityError Severity = "error"
	// SeverityWarning marks data that needs a second look.
	SeverityWarning Severity = "warning"
)

// Category names the rule that produced a finding.
type Category string

const (
	CategoryHeaders          Category = "headers"
	CategoryRange            Category = "range"
	CategoryNames            Category = "names"
	CategoryRoles            Category = "roles"
	CategoryEmails           Category = "emails"
	CategorySessions         Category = "sessions"
	CategoryTitles           Category = "titles"
	CategoryURLs             Category = "urls"
	CategoryDuplicates       Category = "duplicates"
	CategoryMainRoles        Category = "main_roles"
	CategoryPosterSessions   Category = "poster_sessions"
	CategoryEmbeddedTags     Category = "embedded_tags"
	CategoryEmbeddedEntities Category = "embedded_entities"
)

// Categories lists every category in pipeline order.
var Categories = []Category{
	CategoryHeaders,
	CategoryRange,
	CategoryNames,
	CategoryRoles,
	CategoryEmails,
	CategorySessions,
	CategoryTitles,
	CategoryURLs,
	CategoryDuplicates,
	CategoryMainRoles,
	CategoryPosterSessions,
	CategoryEmbeddedTags,
	CategoryEmbeddedEntities,
}

var categoryTitles = map[Category]string{
	CategoryHeaders:          "HEADERS",
	CategoryRange:            "RANGE",
	CategoryNames:            "AUTHORS",
	CategoryRoles:            "ROLES",
	CategoryEmails:           "EMAILS",
	CategorySessions:         "SESSION",
	CategoryTitles:           "TITLE",
	CategoryURLs:             "URL",
	CategoryDuplicates:       "DUPLICATE",
	CategoryMainRoles:        "SEVERAL MAIN ROLES BY PRESENTATION",
	CategoryPosterSessions:   "WRONG ROLE IN POSTER SESSION",
	CategoryEmbeddedTags:     "EMBEDDED TAGS",
	CategoryEmbeddedEntities: "EMBEDDED ENTITIES",
}

// Title returns the card label used when reporting the category.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}

// GroupMember is one row of a grouped finding.
type GroupMember struct {
	// Address is the name cell of the member row.
	Address CellAddress `json:"address"`
	// Summary is a short "name | role" description of the row.
	Summary string `json:"summary"`
}

// Finding is a single error or warning tied to a cell.
type Finding struct {
	// Address is the reported cell. For grouped findings it is the first member.
	Address CellAddress `json:"address"`
	// Severity is error or warning.
	Severity Severity `json:"severity"`
	// Category is the producing rule.
	Category Category `json:"category"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// Group lists the rows of a duplicate-style finding (two or more members).
	Group []GroupMember `json:"group,omitempty"`
}

// IsGroup reports whether the finding addresses a group of rows.
func (f Finding) IsGroup() bool {
	return len(f.Group) > 0
}
