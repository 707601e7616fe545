package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/themeport/themeport/internal/contrast"
)

const swatchBlock = "██"

// renderSwatch prints a color block next to its hex value. Placeholder and
// malformed values fall back to the plain string.
func renderSwatch(hex string) string {
	if !colorOutput() {
		return hex
	}
	if _, err := colorful.Hex(hex); err != nil {
		return hex
	}
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatchBlock)
	return block + " " + hex
}

// renderRating colors a WCAG rating label for human-readable output.
func renderRating(rating string) string {
	if !colorOutput() {
		return rating
	}

	var style lipgloss.Style
	switch rating {
	case contrast.RatingAAA:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case contrast.RatingAA:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	}
	return style.Render(rating)
}
