package rules

import (
	"testing"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmbeddedTags(t *testing.T) {
	g := sheet(
		with(map[models.Field]string{models.FieldAbstract: "We show <b>bold</b> results<br/>"}),
		with(map[models.Field]string{models.FieldName: "John Smith", models.FieldAbstract: "a < b and <foo> is not html"}),
	)

	findings := Default().CheckEmbeddedTags(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "H2", findings[0].Address.String())
	assert.Equal(t, "Cell contains embedded tags: b, br", findings[0].Message)
}

func TestCheckEmbeddedEntities(t *testing.T) {
	g := sheet(
		with(map[models.Field]string{models.FieldTitle: "Fish &amp; chips &amp; more"}),
		with(map[models.Field]string{models.FieldName: "John Smith", models.FieldTitle: "R&D and a &xyzzy; case"}),
	)

	findings := Default().CheckEmbeddedEntities(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "G2", findings[0].Address.String())
	assert.Equal(t, "Cell contains embedded entities: &amp;", findings[0].Message)
}

func TestEmbeddedScanIncludesHeader(t *testing.T) {
	header := append([]string(nil), DefaultHeaders...)
	header[0] = "<i>Name</i>"
	g := models.NewGrid([][]string{header})

	findings := Default().CheckEmbeddedTags(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "A1", findings[0].Address.String())
}
