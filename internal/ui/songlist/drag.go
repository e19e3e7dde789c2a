package songlist

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/dnd"
	"github.com/llehouerou/songrow/internal/ui/songcard"
)

// dragState is an in-flight reorder gesture. hover is the row whose drop
// zone is targeted; Len() targets the end zone after the last row.
type dragState struct {
	session *dnd.Session
	hover   int
}

// Dragging reports whether a reorder gesture is in progress.
func (m *Model) Dragging() bool {
	return m.drag != nil
}

// DragSession returns the in-flight session, or nil.
func (m *Model) DragSession() *dnd.Session {
	if m.drag == nil {
		return nil
	}
	return m.drag.session
}

// DragHover returns the targeted row index, or -1 when not dragging.
func (m *Model) DragHover() int {
	if m.drag == nil {
		return -1
	}
	return m.drag.hover
}

// StartDrag begins a reorder gesture for the row at queue position.
func (m *Model) StartDrag(position int, trackID string) {
	m.cancelDrag()
	from := m.indexOfPosition(position)
	if from < 0 {
		m.logger.Debug("drag from unknown position", zap.Int("position", position), zap.String("track", trackID))
		return
	}
	m.drag = &dragState{session: dnd.NewSession(position, trackID), hover: -1}
	m.setHover(from, true)
}

// CancelDrag ends the gesture without dropping. The session is never
// consumed, so no row reorders.
func (m *Model) CancelDrag() {
	m.cancelDrag()
}

func (m *Model) cancelDrag() {
	if m.drag == nil {
		return
	}
	if c, ok := m.Card(m.drag.hover); ok {
		c.DragExit()
	}
	m.drag = nil
}

func (m *Model) indexOfPosition(position int) int {
	for i, c := range m.cards {
		dd := c.Options().DragAndDrop
		if dd.Enabled && dd.Position == position {
			return i
		}
	}
	return -1
}

// endPosition is the queue position the end zone stands for.
func (m *Model) endPosition() int {
	if len(m.cards) == 0 {
		return 0
	}
	return m.cards[len(m.cards)-1].Options().DragAndDrop.Position + 1
}

// setHover retargets the drag. follow moves the cursor along, which
// keyboard drags use to scroll.
func (m *Model) setHover(i int, follow bool) {
	i = min(max(i, 0), len(m.cards))
	if m.drag.hover == i {
		return
	}
	if c, ok := m.Card(m.drag.hover); ok {
		c.DragExit()
	}
	m.drag.hover = i
	if c, ok := m.Card(i); ok {
		c.DragEnter(m.drag.session)
	}
	if follow && len(m.cards) > 0 {
		m.Select(min(i, len(m.cards)-1))
	}
}

func (m *Model) drop() tea.Cmd {
	d := m.drag
	m.drag = nil
	if c, ok := m.Card(d.hover); ok {
		return c.Drop(d.session)
	}

	p, err := d.session.Consume()
	if err != nil {
		m.logger.Warn("rejected drag session", zap.Error(err))
		return nil
	}
	r := songcard.Reorder{From: p.Position, To: m.endPosition(), TrackID: p.TrackID}
	return func() tea.Msg { return songcard.ActionMsg(r) }
}

func (m *Model) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		m.setHover(m.drag.hover+1, true)
	case "k", "up":
		m.setHover(m.drag.hover-1, true)
	case " ", "space", "enter":
		return m.drop()
	case "esc":
		m.cancelDrag()
	}
	return nil
}

func (m *Model) handleDragMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		if i, _ := m.rowAt(msg.Y); i >= 0 {
			m.setHover(i, false)
		}
	case tea.MouseActionRelease:
		m.capture = -1
		if i, _ := m.rowAt(msg.Y); i >= 0 {
			m.setHover(i, false)
		}
		return m.drop()
	case tea.MouseActionPress:
	}
	return nil
}
