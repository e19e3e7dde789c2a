// Package confirm is the yes/no popup shown before irreversible actions.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Request describes what to ask. Context comes back untouched in the
// Result.
type Request struct {
	Title       string
	Message     string
	Verb        string // hint label for the confirm key, "confirm" if empty
	Destructive bool   // title in the error color
	Context     any
}

// Model is the popup. It answers once, then ignores further input.
type Model struct {
	ui.Base
	req      Request
	answered bool
}

func New(req Request) *Model {
	if req.Verb == "" {
		req.Verb = "confirm"
	}
	req.Verb = strings.ToLower(req.Verb)
	return &Model{req: req}
}

// Active reports whether the popup still waits for an answer.
func (m *Model) Active() bool { return !m.answered }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}
	switch key.String() {
	case "enter", "y", "Y":
		return m, m.answer(true)
	case "esc", "n", "N", "q":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	m.answered = true
	res := Result{Confirmed: yes, Context: m.req.Context}
	return func() tea.Msg { return ActionMsg(res) }
}

func (m *Model) View() string {
	if m.answered || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := s.Title.Foreground(t.Primary)
	if m.req.Destructive {
		title = s.Error.Bold(true)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render(m.req.Title),
		"",
		s.Base.Width(min(m.Width()-8, 60)).Render(m.req.Message),
		"",
		s.Subtle.Render("Enter/Y: "+m.req.Verb+", Esc/N: cancel"),
	)
}
