package confcheck

import (
	"errors"
	"testing"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func submission(rows ...[]string) *models.Grid {
	all := [][]string{rules.DefaultHeaders}
	all = append(all, rows...)
	return models.NewGrid(all)
}

func talk(name, role, session, title string) []string {
	return []string{
		name, "Uni Example, Berlin", role, "someone@example.com", session,
		"", title, "", "http://a.com/abstract.pdf", "",
	}
}

func TestValidateCleanSheet(t *testing.T) {
	r := Validate(submission(
		talk("Jane Doe", "Speaker", "Session A", "A long enough title"),
		talk("John Smith", "Speaker", "Session A", "Another long title"),
	))

	assert.True(t, r.OK())
	assert.Equal(t, 3, r.Rows)
	assert.Equal(t, 10, r.Columns)
}

func TestValidateGroupsSectionsInPipelineOrder(t *testing.T) {
	bad := talk("jane doe", "Chair", "Session A", "Intro")
	bad[int(models.FieldAbstractURL)] = "not-a-url"
	r := Validate(submission(bad))

	var got []string
	for _, sec := range r.Sections {
		got = append(got, string(sec.Category)+"/"+string(sec.Severity))
	}
	assert.Equal(t, []string{
		"names/warning",
		"roles/error",
		"titles/warning",
		"urls/error",
	}, got)
	assert.Equal(t, "AUTHORS", r.Sections[0].Title)
	assert.True(t, r.HasErrors())
}

func TestModeErrorsDropsWarnings(t *testing.T) {
	g := submission(talk("jane doe", "Speaker", "Session A", "Intro"))

	opts := DefaultOptions()
	opts.Mode = ModeErrors
	v, err := NewValidator(opts)
	require.NoError(t, err)

	r := v.Validate(g)
	assert.True(t, r.OK())
	assert.Zero(t, r.Count(models.SeverityWarning))

	strict := Validate(g)
	assert.Equal(t, 2, strict.Count(models.SeverityWarning))
}

func TestIncludeWarningsOverridesMode(t *testing.T) {
	include := true
	opts := Options{Mode: ModeErrors, IncludeWarnings: &include}
	assert.True(t, opts.ShouldIncludeWarnings())

	include = false
	opts.Mode = ModeStrict
	assert.False(t, opts.ShouldIncludeWarnings())
}

func TestValidateIsRepeatable(t *testing.T) {
	g := submission(
		talk("Jane Doe", "Speaker", "Session A", "Same title here"),
		talk("Jane Doe", "Speaker", "Session A", "Same title here"),
	)
	v, err := NewValidator(DefaultOptions())
	require.NoError(t, err)

	first := v.Validate(g)
	second := v.Validate(g)
	assert.Equal(t, first, second)
	assert.Len(t, first.Section(models.CategoryDuplicates, models.SeverityError), 1)
}

func TestValidateLogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	v, err := NewValidator(opts)
	require.NoError(t, err)
	v.Validate(submission(talk("J4ne Doe", "Speaker", "Session A", "A long enough title")))

	assert.Equal(t, len(models.Categories), logs.FilterMessage("rule finished").Len())
	summary := logs.FilterMessage("validation finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].ContextMap()["errors"])
}

func TestNewValidatorRejectsBadConfig(t *testing.T) {
	cfg := rules.DefaultConfig()
	cfg.Roles = nil

	_, err := NewValidator(Options{Config: &cfg})
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("errors")
	require.NoError(t, err)
	assert.Equal(t, ModeErrors, m)

	_, err = ParseMode("loose")
	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	assert.Equal(t, "mode", usage.Flag)
	assert.Contains(t, err.Error(), "strict, errors")
}
