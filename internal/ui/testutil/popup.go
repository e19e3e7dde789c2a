package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songrow/internal/ui/popup"
)

// PopupHarness drives a popup the way the popup manager does and records
// every command it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p, recording its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// Popup returns the popup as last returned by Update.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize resizes the popup.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View renders the popup.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg updates the popup with msg.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	h.record(cmd)
	return cmd
}

// SendKey sends the key named key; see Key.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// SendEnter sends the enter key.
func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyEnter})
}

// SendEscape sends the escape key.
func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyEscape})
}

// SendDown sends the down arrow.
func (h *PopupHarness) SendDown() tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyDown})
}

// Commands returns the commands recorded since creation or the last
// ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the recorded commands.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs cmd, tolerating nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// AssertViewContains returns a failure message when the view lacks substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns a failure message when the view shows substr.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
