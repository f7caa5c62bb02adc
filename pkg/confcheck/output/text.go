package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	addressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(7)
	dupMarker    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// RenderText writes a report as one card per section.
func RenderText(w io.Writer, r *models.Report) error {
	if r.SheetName != "" {
		if _, err := fmt.Fprintf(w, "%s\n", titleStyle.Render("Sheet: "+r.SheetName)); err != nil {
			return err
		}
	}
	if r.OK() {
		_, err := fmt.Fprintln(w, okStyle.Render("No errors found"))
		return err
	}
	for _, sec := range r.Sections {
		if _, err := fmt.Fprintln(w, renderSection(sec)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d error(s), %d warning(s)\n",
		r.Count(models.SeverityError), r.Count(models.SeverityWarning))
	return err
}

// RenderWorkbook writes every sheet report in workbook order.
func RenderWorkbook(w io.Writer, wb *models.WorkbookReport) error {
	for _, name := range wb.Order {
		if err := RenderText(w, wb.Sheets[name]); err != nil {
			return err
		}
	}
	return nil
}

func renderSection(sec models.Section) string {
	label := errorLabel.Render("ERROR")
	if sec.Severity == models.SeverityWarning {
		label = warningLabel.Render("WARNING")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(sec.Title) + " " + label)
	for _, f := range sec.Findings {
		if f.IsGroup() {
			b.WriteString("\n")
			for i, m := range f.Group {
				marker := "  "
				if i > 0 && sec.Severity == models.SeverityError {
					marker = dupMarker.Render("x ")
				}
				b.WriteString("\n" + marker + addressStyle.Render(m.Address.String()) + m.Summary)
			}
			continue
		}
		b.WriteString("\n" + addressStyle.Render(f.Address.String()) + f.Message)
	}
	return cardStyle.Render(b.String())
}
