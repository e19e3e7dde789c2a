package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPlace_OffsetsContent(t *testing.T) {
	placed := Place("ab\ncd", 3, 2)
	assert.Equal(t, "\n\n   ab\n   cd", placed)
}

func TestPlace_ClampsNegative(t *testing.T) {
	assert.Equal(t, "x", Place("x", -4, -1))
}

func TestCompose_PlacedOverlay(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	out := Compose(base, Place("XY", 4, 1), 10, 3)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....XY....", lines[1])
	assert.Equal(t, "..........", lines[2])
}

func TestCompose_KeepsBaseAroundBlankOverlay(t *testing.T) {
	base := "abc\ndef"
	assert.Equal(t, base, Compose(base, "   \n", 3, 2))
}

func TestCenter(t *testing.T) {
	out := Center("ab\ncd", 6, 4)
	assert.Equal(t, "\n  ab\n  cd", out)
}

func TestDialog_Render(t *testing.T) {
	out := ansi.Strip(Dialog{Title: "Error", Content: "disk full", Footer: "Press any key"}.Render(40, 12))
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Press any key")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestRenderBordered_RespectsMaxWidth(t *testing.T) {
	content := strings.Repeat("x", 100)
	out := RenderBordered(content, 120, 20, SizeConfig{MaxWidth: 50})
	assert.LessOrEqual(t, maxLineWidth(out), 35+50)
	assert.Contains(t, ansi.Strip(out), "╭")
}
