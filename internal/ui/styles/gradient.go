package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not "#rrggbb".
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}

// Blend mixes from and to in HCL space; t is clamped to [0, 1].
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return lipgloss.Color(toColorful(from).BlendHcl(toColorful(to), t).Clamped().Hex())
}

// Gradient colors each grapheme of text along a from..to ramp.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	base := lipgloss.NewStyle().Bold(bold)
	if len(clusters) < 2 {
		if text == "" {
			return ""
		}
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, c := range clusters {
		b.WriteString(base.Foreground(Blend(from, to, float64(i)/last)).Render(c))
	}
	return b.String()
}

// Panel is a rounded border, highlighted when focused.
func Panel(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
