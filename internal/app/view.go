package app

import (
	"strings"

	"github.com/llehouerou/songrow/internal/keymap"
	"github.com/llehouerou/songrow/internal/ui/headerbar"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

const footerHeight = 1

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	view := strings.Join([]string{
		render.Pad(m.header().Render(m.width), m.width),
		m.list.View(),
		m.footer(),
	}, "\n")

	if m.menu != nil {
		view = popup.Compose(view, popup.Place(m.menu.View(), m.menuX, m.menuY), m.width, m.height)
	}
	return m.popups.RenderOverlay(view)
}

func (m *Model) footer() string {
	s := styles.T().S()
	if m.toast != "" {
		return s.Notice.Render(render.Truncate(m.toast, max(m.width-2, 0)))
	}
	var hints []string
	if m.list.Dragging() {
		hints = []string{
			dragKeys.Hint("move", keymap.ActionMoveDown, keymap.ActionMoveUp),
			dragKeys.Hint("drop", keymap.ActionDrop),
			dragKeys.Hint("cancel", keymap.ActionCancelDrag),
		}
	} else {
		hints = []string{
			rowKeys.Hint("play", keymap.ActionPlay),
			rowKeys.Hint("menu", keymap.ActionMenu),
			m.keys.Hint(m.otherTabName(), keymap.ActionSwitchTab),
			m.keys.Hint("help", keymap.ActionHelp),
			m.keys.Hint("quit", keymap.ActionQuit),
		}
	}
	return s.Subtle.Render(render.Truncate(strings.Join(hints, "  "), m.width))
}

var (
	rowKeys  = keymap.NewResolver(keymap.ByContext(keymap.ContextRow))
	dragKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextDrag))
)

func (m *Model) otherTabName() string {
	if m.tab == headerbar.TabQueue {
		return "library"
	}
	return "queue"
}
