package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

// Dialog is a box with a centered title, a body and a footer hint.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

// Render returns the dialog centered on a termWidth x termHeight screen.
func (d Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()
	s := t.S()

	inner := max(maxLineWidth(d.Content), ansi.StringWidth(d.Title), ansi.StringWidth(d.Footer))
	inner = min(inner, max(termWidth-6, 1))

	var lines []string
	if d.Title != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.Title.Render(d.Title)), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, render.PadStyled(ansi.Truncate(line, inner, "…"), inner))
	}
	if d.Footer != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.Subtle.Render(d.Footer)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	return Center(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// Center pads box with spaces so it sits in the middle of the screen.
func Center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	top := max((termHeight-len(lines))/2, 0)
	left := max((termWidth-maxLineWidth(box))/2, 0)
	return Place(box, left, top)
}

// SizeConfig bounds a popup. The zero value fits the content.
type SizeConfig struct {
	MaxWidth int // 0 = screen width
}

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width := maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)
	height := min(strings.Count(content, "\n")+5, screenH-4)

	box := styles.Panel(true).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Compose draws overlay over base. Each overlay line replaces the base
// between its first and last visible cell; blank overlay lines leave the
// base untouched. Both may carry ANSI styling.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(plain) - len(trimmed)
		end := ansi.StringWidth(strings.TrimRight(plain, " "))
		baseLines[i] = splice(baseLines[i], ansi.Cut(line, start, end), start, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces cells [start, end) of line with content. Wide
// characters cut by either edge turn into spaces.
func splice(line, content string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	prefix := ansi.Truncate(line, start, "")
	out := prefix + strings.Repeat(" ", start-ansi.StringWidth(prefix)) + content
	if end >= width {
		return out
	}
	suffix := ansi.TruncateLeft(line, end, "")
	suffix = ansi.Truncate(suffix, width-end, "")
	return out + strings.Repeat(" ", width-end-ansi.StringWidth(suffix)) + suffix
}

// Place positions content with its top-left corner at x, y, for use as
// the overlay argument of Compose.
func Place(content string, x, y int) string {
	x, y = max(x, 0), max(y, 0)
	indent := strings.Repeat(" ", x)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Repeat("\n", y) + strings.Join(lines, "\n")
}
