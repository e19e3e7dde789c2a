package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component hosted by the popup manager. View renders
// the bare content; the manager adds the border and centers it within
// the size last passed to SetSize.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}
