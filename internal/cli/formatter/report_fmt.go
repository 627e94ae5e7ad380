package formatter

import (
	"strings"

	"github.com/alexanderramin/dotori/internal/checklist"
	"github.com/alexanderramin/dotori/internal/report"
)

// FormatReport renders every section as a table with one column per
// facility. Highlighted values are marked.
func FormatReport(r *report.Report) string {
	var b strings.Builder
	b.WriteString(Header(r.Title))
	b.WriteString("\n\n")

	headers := make([]string, 0, len(r.Facilities)+1)
	headers = append(headers, "")
	for _, f := range r.Facilities {
		headers = append(headers, f.Name)
	}

	for _, s := range r.Sections {
		b.WriteString(Bold(s.Title))
		b.WriteString("\n")

		rows := make([][]string, 0, len(s.Items))
		var marks []Highlight
		for i, it := range s.Items {
			row := make([]string, 0, len(it.Values)+1)
			row = append(row, it.Label)
			row = append(row, it.Values...)
			rows = append(rows, row)
			if it.HighlightIndex != nil {
				marks = append(marks, Highlight{Row: i, Col: *it.HighlightIndex + 1})
			}
		}
		b.WriteString(RenderTable(headers, rows, marks...))
		b.WriteString("\n")
	}

	b.WriteString(RenderBox("요약", r.Summary))
	b.WriteString("\n")
	return b.String()
}

// FormatChecklist renders categories with checkboxes. Required items are
// tagged 필수.
func FormatChecklist(c *checklist.Checklist) string {
	var b strings.Builder
	b.WriteString(Header(c.Title))
	b.WriteString("\n")

	for _, cat := range c.Categories {
		b.WriteString("\n")
		b.WriteString(Bold(cat.Title))
		b.WriteString("\n")
		for _, it := range cat.Items {
			required := it.Required != nil && *it.Required
			line := "  " + Checkbox(it.Checked, required) + " " + it.Text
			if required {
				line += " " + StyleRed.Render("필수")
			}
			b.WriteString(line + "\n")
			if it.Detail != "" {
				b.WriteString("      " + Dim(it.Detail) + "\n")
			}
		}
	}
	return b.String()
}
