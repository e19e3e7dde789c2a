package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#a78bfa")

	assert.Equal(t, from, Blend(from, to, 0))
	assert.Equal(t, from, Blend(from, to, -1))
	assert.Equal(t, to, Blend(from, to, 1))
	assert.Equal(t, to, Blend(from, to, 2))

	mid := Blend(from, to, 0.5)
	assert.NotEqual(t, from, mid)
	assert.NotEqual(t, to, mid)
	assert.Len(t, string(mid), 7)
}

func TestBlend_NonHexFallsBackToGray(t *testing.T) {
	mid := Blend("5", "#808080", 0.5)
	assert.Equal(t, lipgloss.Color("#808080"), mid)
}

func TestGradient_KeepsText(t *testing.T) {
	out := Gradient("Queue", "#ffffff", "#a78bfa", true)
	assert.Equal(t, "Queue", ansi.Strip(out))
	assert.Empty(t, Gradient("", "#000000", "#ffffff", false))
	assert.Equal(t, "Q", ansi.Strip(Gradient("Q", "#000000", "#ffffff", false)))
}

func TestLabelStylesShareBackground(t *testing.T) {
	s := T().S()
	assert.Equal(t, s.LabelDefault.GetBackground(), s.LabelSubtle.GetBackground())
	assert.NotEqual(t, s.LabelDefault.GetForeground(), s.LabelSubtle.GetForeground())
}
