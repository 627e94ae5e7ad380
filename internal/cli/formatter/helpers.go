package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(title)
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Checkbox renders a checklist mark. Required unchecked items are flagged.
func Checkbox(checked bool, required bool) string {
	switch {
	case checked:
		return StyleGreen.Render("[✔]")
	case required:
		return StyleRed.Render("[ ]")
	default:
		return StyleDim.Render("[ ]")
	}
}

// Bullet renders one indented list line.
func Bullet(text string) string {
	return fmt.Sprintf("  %s %s", StyleAcorn.Render("•"), text)
}

// KeyValue renders aligned "key  value" lines. Keys are padded to the widest.
func KeyValue(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		pad := width - lipgloss.Width(p[0])
		b.WriteString(Dim(p[0]))
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}

// OrDash returns s, or a dimmed dash when s is empty.
func OrDash(s string) string {
	if s == "" {
		return Dim("-")
	}
	return s
}
