package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encodings maps accepted encoding names to decoders.
var Encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf8":         unicode.UTF8BOM,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// ReadCSV reads comma-separated rows into a Grid, decoding from enc.
// An empty enc means UTF-8; a leading byte order mark is dropped.
func ReadCSV(r io.Reader, enc string) (*models.Grid, error) {
	name := strings.ToLower(strings.TrimSpace(enc))
	if name == "" {
		name = "utf-8"
	}
	e, ok := Encodings[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}

	cr := csv.NewReader(transform.NewReader(r, e.NewDecoder()))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return models.NewGrid(UsedRange(rows)), nil
}

// WriteCSV writes g as UTF-8 comma-separated rows.
func WriteCSV(w io.Writer, g *models.Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(g.Rows()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
