package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Highlight marks one cell of a table body by row and column.
type Highlight struct {
	Row, Col int
}

// RenderTable renders rows under headers with a rounded dim border. Cells
// named in highlights are rendered bold green.
func RenderTable(headers []string, rows [][]string, highlights ...Highlight) string {
	if len(headers) == 0 {
		return ""
	}

	marked := make(map[Highlight]bool, len(highlights))
	for _, h := range highlights {
		marked[h] = true
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cell.Foreground(ColorHeader).Bold(true)
			case marked[Highlight{Row: row, Col: col}]:
				return cell.Foreground(ColorGreen).Bold(true)
			case col == 0:
				return cell.Foreground(ColorDim)
			default:
				return cell
			}
		})
	return t.Render() + "\n"
}
