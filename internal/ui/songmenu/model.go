package songmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songrow/internal/icons"
	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/cursor"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	menuMinWidth = 16
	menuMaxWidth = 48
	menuChrome   = 4 // border + padding on each side
)

// Model renders a session's entries as a dropdown. Entries are rebuilt
// once per update so they follow the current services state; View and
// Bounds render the last build.
type Model struct {
	ui.Base
	session  *Session
	actions  []Action
	trailing []Item
	items    []Item
	cursor   cursor.Cursor
}

// New creates a menu for session showing actions then trailing.
func New(session *Session, actions []Action, trailing []Item) *Model {
	m := &Model{
		session:  session,
		actions:  actions,
		trailing: trailing,
		cursor:   cursor.New(0),
	}
	m.Refresh()
	return m
}

// Refresh rebuilds the entries.
func (m *Model) Refresh() {
	m.items = Build(m.session, m.actions, m.trailing)
	m.cursor.ClampToBounds(len(m.items))
}

// Session returns the menu's session.
func (m *Model) Session() *Session {
	return m.session
}

// Items returns the entries as they render now.
func (m *Model) Items() []Item {
	return m.items
}

// Selected returns the index of the highlighted entry.
func (m *Model) Selected() int {
	return m.cursor.Pos()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup. Mouse coordinates are relative to the
// top-left corner of the rendered menu.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.session.MenuOpen() {
		return m, nil
	}
	m.Refresh()
	items := m.items

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg, items)
	case tea.MouseMsg:
		return m, m.handleMouse(msg, items)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg, items []Item) tea.Cmd {
	key := msg.String()
	switch key {
	case "j", "down", "k", "up", "g", "home", "G", "end":
		m.cursor.HandleKey(key, len(items), len(items))
	case "enter":
		if len(items) == 0 {
			return m.dismiss()
		}
		return m.activate(items[m.cursor.Pos()])
	case "esc", "q":
		return m.dismiss()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg, items []Item) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	w, h := m.Bounds()
	if msg.X < 0 || msg.Y < 0 || msg.X >= w || msg.Y >= h {
		return m.dismiss()
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	row := msg.Y - 1
	if row < 0 || row >= len(items) {
		return nil
	}
	m.cursor.Jump(row, len(items), len(items))
	return m.activate(items[row])
}

func (m *Model) activate(item Item) tea.Cmd {
	cmd := m.session.Activate(item)
	return tea.Batch(cmd, closedCmd)
}

func (m *Model) dismiss() tea.Cmd {
	m.session.Dismiss()
	return closedCmd
}

func closedCmd() tea.Msg {
	return ActionMsg(Closed{})
}

// Bounds returns the width and height of the rendered menu, border
// included.
func (m *Model) Bounds() (width, height int) {
	return m.menuWidth(m.items), len(m.items) + 2
}

func (m *Model) menuWidth(items []Item) int {
	w := menuMinWidth
	for _, it := range items {
		w = max(w, lipgloss.Width(icons.Prefix(it.Icon, it.Label))+menuChrome)
	}
	w = min(w, menuMaxWidth)
	if m.Width() > 0 {
		w = min(w, m.Width())
	}
	return w
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.session.MenuOpen() {
		return ""
	}
	items := m.items

	t := styles.T()
	s := t.S()
	inner := m.menuWidth(items) - menuChrome

	lines := make([]string, 0, len(items))
	for i, it := range items {
		text := render.TruncateAndPad(" "+icons.Prefix(it.Icon, render.Sanitize(it.Label)), inner+2)
		style := s.Base
		if it.Destructive {
			style = s.Error
		}
		if i == m.cursor.Pos() {
			style = s.Cursor.Inherit(style)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Render(strings.Join(lines, "\n"))
}
