package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/dotori/internal/domain"
)

// Acorn palette: warm browns with a green accent.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorAcorn  = lipgloss.Color("#c8814a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#d65d0e")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleAcorn  = lipgloss.NewStyle().Foreground(ColorAcorn)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColor switches styled output on or off for the whole process.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// SentimentStyle returns the style an insight or reason of sentiment s is
// rendered in.
func SentimentStyle(s domain.Sentiment) lipgloss.Style {
	switch s {
	case domain.SentimentPositive:
		return StyleGreen
	case domain.SentimentCaution:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// SentimentIndicator returns a colored marker such as "● 긍정".
func SentimentIndicator(s domain.Sentiment) string {
	switch s {
	case domain.SentimentPositive:
		return StyleGreen.Render("● 긍정")
	case domain.SentimentCaution:
		return StyleYellow.Render("▲ 주의")
	case domain.SentimentNeutral:
		return StyleBlue.Render("○ 참고")
	default:
		return StyleDim.Render("○ " + string(s))
	}
}

// StatusPill returns a colored indicator for a facility status.
func StatusPill(status domain.FacilityStatus) string {
	switch status {
	case domain.StatusAvailable:
		return StyleGreen.Render("● 입소 가능")
	case domain.StatusWaiting:
		return StyleYellow.Render("○ 대기")
	case domain.StatusFull:
		return StyleRed.Render("✖ 마감")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the header style and an underline
// as wide as the visible text.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
