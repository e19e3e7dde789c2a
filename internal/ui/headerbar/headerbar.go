// Package headerbar renders the one-line header above the song list: a
// back control, the current view title and the view tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab is a top-level view.
type Tab int

const (
	TabLibrary Tab = iota
	TabQueue
)

// Target is a clickable part of the header.
type Target int

const (
	TargetNone Target = iota
	TargetBack
	TargetLibrary
	TargetQueue
)

type tab struct {
	name   string
	tab    Tab
	target Target
}

var tabs = []tab{
	{"Library", TabLibrary, TargetLibrary},
	{"Queue", TabQueue, TargetQueue},
}

const (
	backLabel = "‹ Back"
	separator = " │ "
)

// Header is the header content for one frame.
type Header struct {
	Active  Tab
	Title   string
	CanBack bool
}

type span struct {
	start, end int
	target     Target
}

// spans lays out the clickable parts. Tabs are right aligned.
func (h Header) spans(width int) []span {
	var out []span
	if h.CanBack {
		out = append(out, span{0, lipgloss.Width(backLabel), TargetBack})
	}
	x := width - h.tabsWidth()
	for i, t := range tabs {
		if i > 0 {
			x += lipgloss.Width(separator)
		}
		w := lipgloss.Width(t.name)
		out = append(out, span{x, x + w, t.target})
		x += w
	}
	return out
}

func (h Header) tabsWidth() int {
	w := 0
	for i, t := range tabs {
		if i > 0 {
			w += lipgloss.Width(separator)
		}
		w += lipgloss.Width(t.name)
	}
	return w
}

// HitTest returns the control at column x.
func (h Header) HitTest(x, width int) Target {
	if width < 20 {
		return TargetNone
	}
	for _, s := range h.spans(width) {
		if x >= s.start && x < s.end {
			return s.target
		}
	}
	return TargetNone
}

// Render returns the header line for the given width.
func (h Header) Render(width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	var left strings.Builder
	if h.CanBack {
		left.WriteString(s.Playing.Render(backLabel))
		left.WriteString("  ")
	}
	tabsWidth := h.tabsWidth()
	room := width - tabsWidth - lipgloss.Width(left.String()) - 1
	if room > 0 {
		left.WriteString(s.Title.Render(render.TruncateEllipsis(render.Sanitize(h.Title), room)))
	}

	theme := styles.T()
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.tab == h.Active {
			parts = append(parts, styles.Gradient(t.name, theme.Primary, theme.Secondary, true))
			continue
		}
		parts = append(parts, s.Muted.Render(t.name))
	}
	right := strings.Join(parts, s.Subtle.Render(separator))

	return render.PadStyled(left.String(), width-tabsWidth) + right
}
