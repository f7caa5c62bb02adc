package confcheck

import (
	"errors"
	"testing"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/rules"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveFullDuplicates(t *testing.T) {
	a := talk("Jane Doe", "Speaker", "Session A", "A long enough title")
	b := talk("John Smith", "Speaker", "Session B", "Another long title")
	g := submission(a, a, b)

	res := RemoveFullDuplicates(g)

	want := submission(a, b).Rows()
	if diff := cmp.Diff(want, res.Grid.Rows()); diff != "" {
		t.Errorf("RemoveFullDuplicates() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, res.RowsRemoved)
	assert.Equal(t, 4, g.RowCount(), "input grid must not change")
}

func TestRemoveFullDuplicatesCollapsesBlankRows(t *testing.T) {
	g := models.NewGrid([][]string{{"Name"}, {"Jane Doe"}, {""}, {"  "}, {"John Roe"}})

	res := RemoveFullDuplicates(g)

	want := [][]string{{"Name"}, {"Jane Doe"}, {""}, {"John Roe"}}
	if diff := cmp.Diff(want, res.Grid.Rows()); diff != "" {
		t.Errorf("RemoveFullDuplicates() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, res.RowsRemoved)

	again := RemoveFullDuplicates(res.Grid)
	assert.Zero(t, again.RowsRemoved)

	presented := RemovePresentedDuplicates(g)
	assert.Equal(t, 1, presented.RowsRemoved)
}

func TestRemovePresentedDuplicatesKeepsFirst(t *testing.T) {
	first := talk("Jane Doe", "Speaker", "Session A", "A long enough title")
	second := talk("Jane Doe", "Speaker", "Session A", "A long enough title")
	second[int(models.FieldEmail)] = "other@example.com"
	g := submission(first, second)

	assert.Zero(t, RemoveFullDuplicates(g).RowsRemoved)

	res := RemovePresentedDuplicates(g)
	assert.Equal(t, 1, res.RowsRemoved)
	if diff := cmp.Diff(submission(first).Rows(), res.Grid.Rows()); diff != "" {
		t.Errorf("RemovePresentedDuplicates() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Validate(res.Grid).Section(models.CategoryDuplicates, models.SeverityError))
}

func TestResetHeaders(t *testing.T) {
	header := append([]string(nil), rules.DefaultHeaders...)
	header[0] = "Name"
	header[3] = "E-mail"
	g := models.NewGrid([][]string{header, talk("Jane Doe", "Speaker", "Session A", "A long enough title")})

	res := ResetHeaders(g, rules.DefaultHeaders)
	assert.Equal(t, 2, res.CellsChanged)
	assert.Equal(t, rules.DefaultHeaders, res.Grid.Header())
	assert.Empty(t, Validate(res.Grid).Section(models.CategoryHeaders, models.SeverityError))
	assert.Equal(t, "Name", g.Cell(0, 0))
}

func TestResetHeadersOnEmptyGrid(t *testing.T) {
	res := ResetHeaders(models.NewGrid(nil), rules.DefaultHeaders)
	assert.Equal(t, 1, res.Grid.RowCount())
	assert.Equal(t, len(rules.DefaultHeaders), res.CellsChanged)
}

func TestClearExtendedRange(t *testing.T) {
	row := append(talk("Jane Doe", "Speaker", "Session A", "A long enough title"), "notes", "more")
	g := submission(row)

	res := ClearExtendedRange(g)
	require.NotNil(t, res.Cleared)
	assert.Equal(t, "K1:L2", res.Cleared.String())
	assert.Equal(t, 2, res.CellsChanged)
	assert.Equal(t, 12, res.Grid.ColumnCount())
	assert.Empty(t, Validate(res.Grid).Section(models.CategoryRange, models.SeverityError))

	narrow := ClearExtendedRange(submission(talk("Jane Doe", "Speaker", "Session A", "A long enough title")))
	assert.Nil(t, narrow.Cleared)
	assert.Zero(t, narrow.CellsChanged)
}

func TestStripMarkup(t *testing.T) {
	row := talk("Jane Doe", "Speaker", "Session A", "Fish &amp; <b>chips</b>")
	row[int(models.FieldAbstract)] = "  plain abstract  "
	g := submission(row)

	res := StripMarkup(g)
	assert.Equal(t, 1, res.CellsChanged)
	assert.Equal(t, "Fish & chips", res.Grid.Cell(1, int(models.FieldTitle)))
	assert.Equal(t, "  plain abstract  ", res.Grid.Raw(1, int(models.FieldAbstract)))

	r := Validate(res.Grid)
	assert.Empty(t, r.Section(models.CategoryEmbeddedTags, models.SeverityError))
	assert.Empty(t, r.Section(models.CategoryEmbeddedEntities, models.SeverityError))
}

func TestCleanupsAreIdempotent(t *testing.T) {
	dup := talk("Jane Doe", "Speaker", "Session A", "<i>Same</i> title &amp; more")
	wide := append(talk("John Smith", "Moderator", "Session A", ""), "stray")
	g := models.NewGrid([][]string{{"Name"}, dup, dup, wide})

	v, err := NewValidator(DefaultOptions())
	require.NoError(t, err)

	for _, op := range Cleanups {
		t.Run(string(op), func(t *testing.T) {
			once, err := v.Apply(op, g)
			require.NoError(t, err)
			twice, err := v.Apply(op, once.Grid)
			require.NoError(t, err)

			if diff := cmp.Diff(once.Grid.Rows(), twice.Grid.Rows()); diff != "" {
				t.Errorf("%s is not idempotent (-once +twice):\n%s", op, diff)
			}
			assert.Zero(t, twice.RowsRemoved)
			assert.Zero(t, twice.CellsChanged)
		})
	}
}

func TestParseCleanup(t *testing.T) {
	for _, c := range Cleanups {
		got, err := ParseCleanup(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCleanup("shuffle")
	assert.True(t, errors.Is(err, ErrUnknownCleanup))

	v, err := NewValidator(DefaultOptions())
	require.NoError(t, err)
	_, err = v.Apply(Cleanup("shuffle"), submission())
	assert.True(t, errors.Is(err, ErrUnknownCleanup))
}
