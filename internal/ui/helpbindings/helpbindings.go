// Package helpbindings is the popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songrow/internal/keymap"
	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// sections in display order.
var sections = []struct{ context, label string }{
	{keymap.ContextGlobal, "Global"},
	{keymap.ContextList, "Song list"},
	{keymap.ContextRow, "Song"},
	{keymap.ContextMenu, "Menu"},
	{keymap.ContextDrag, "Reordering"},
}

// Model shows the bindings of some contexts, scrolled with j/k.
type Model struct {
	ui.Base
	lines        []string // rendered once, padded to a common width
	scrollOffset int
}

// New lists the given contexts, or every context when none is given.
func New(contexts ...string) *Model {
	var bindings []keymap.Binding
	for _, sec := range sections {
		if len(contexts) == 0 || slices.Contains(contexts, sec.context) {
			bindings = append(bindings, keymap.ByContext(sec.context)...)
		}
	}
	return &Model{lines: renderBindings(bindings)}
}

func renderBindings(bindings []keymap.Binding) []string {
	t := styles.T()
	s := t.S()
	heading := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for i, b := range bindings {
		if i == 0 || b.Context != bindings[i-1].Context {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines,
				heading.Render(sectionLabel(b.Context)),
				s.Subtle.Render(strings.Repeat("─", keyWidth+15)))
		}
		keys := render.PadStyled(strings.Join(b.Keys, ", "), keyWidth)
		lines = append(lines, s.Playing.Render(keys)+"  "+s.Base.Render(b.Description))
	}

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	for i, l := range lines {
		lines[i] = render.PadStyled(l, width)
	}
	return lines
}

func sectionLabel(context string) string {
	for _, sec := range sections {
		if sec.context == context {
			return sec.label
		}
	}
	return context
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(m.lines[m.scrollOffset:end], "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

// visibleHeight leaves room for the title, the footer and their gaps.
func (m *Model) visibleHeight() int {
	return max(m.Height()-4, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
