package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/asciisweep/internal/sweep"
)

// ANSI codes for the named colors; lipgloss downsamples for the terminal.
var colorCodes = [...]lipgloss.Color{
	sweep.Black:   lipgloss.Color("0"),
	sweep.Red:     lipgloss.Color("1"),
	sweep.Green:   lipgloss.Color("2"),
	sweep.Yellow:  lipgloss.Color("3"),
	sweep.Blue:    lipgloss.Color("4"),
	sweep.Magenta: lipgloss.Color("5"),
	sweep.Cyan:    lipgloss.Color("6"),
	sweep.Grey:    lipgloss.Color("7"),
}

// styleSet holds one foreground style per named color.
type styleSet [len(colorCodes)]lipgloss.Style

func newStyleSet() *styleSet {
	var s styleSet
	for i, code := range colorCodes {
		s[i] = lipgloss.NewStyle().
			Foreground(code).
			TabWidth(lipgloss.NoTabConversion)
	}
	return &s
}

func (s *styleSet) render(c sweep.Color, text string) string {
	if !c.Valid() {
		return text
	}
	return s[c].Render(text)
}
