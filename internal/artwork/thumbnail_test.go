package artwork

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/songrow/internal/ui/testutil"
)

func TestThumbnail_Size(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}

	out := Thumbnail(img, 6, 3)
	lines := strings.Split(testutil.StripANSI(out), "\n")

	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 6, utf8.RuneCountInString(line))
		assert.Equal(t, strings.Repeat(halfBlock, 6), line)
	}
}

func TestThumbnail_Empty(t *testing.T) {
	assert.Empty(t, Thumbnail(nil, 4, 2))
	assert.Empty(t, Thumbnail(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, 2))
}

func TestPlaceholder(t *testing.T) {
	out := testutil.StripANSI(Placeholder(6, 3, "*", lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "      ", lines[0])
	assert.Equal(t, "  *   ", lines[1])
	assert.Equal(t, "      ", lines[2])
}
