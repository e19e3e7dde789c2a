package artwork

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

// Thumbnail renders img into a cols×rows block of terminal cells. Each
// cell shows two vertically stacked pixels: the upper one as the
// foreground of a half block, the lower one as its background.
func Thumbnail(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	lines := make([]string, rows)
	for y := range rows {
		var b strings.Builder
		for x := range cols {
			top := dst.RGBAAt(x, 2*y)
			bottom := dst.RGBAAt(x, 2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render(halfBlock))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Placeholder renders a cols×rows block with glyph centered, used while
// artwork is loading or when a track has none.
func Placeholder(cols, rows int, glyph string, style lipgloss.Style) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	lines := make([]string, rows)
	for y := range rows {
		if y == rows/2 && glyph != "" {
			w := lipgloss.Width(glyph)
			left := max((cols-w)/2, 0)
			right := max(cols-w-left, 0)
			lines[y] = style.Render(strings.Repeat(" ", left) + glyph + strings.Repeat(" ", right))
			continue
		}
		lines[y] = style.Render(strings.Repeat(" ", cols))
	}
	return strings.Join(lines, "\n")
}

func hexColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
