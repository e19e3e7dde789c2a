package songcard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/ui/action"
)

// Clicked is emitted when the row is tapped.
type Clicked struct {
	TrackID string
}

// ActionType implements action.Action.
func (a Clicked) ActionType() string { return "songcard.clicked" }

// MenuRequested is emitted when the trailing menu control is tapped.
type MenuRequested struct {
	TrackID string
}

// ActionType implements action.Action.
func (a MenuRequested) ActionType() string { return "songcard.menu_requested" }

// DragRequested is emitted when the drag handle is grabbed.
type DragRequested struct {
	Position int
	TrackID  string
}

// ActionType implements action.Action.
func (a DragRequested) ActionType() string { return "songcard.drag_requested" }

// Reorder is emitted when a row dragged from From is dropped on the drop
// zone of the row at To.
type Reorder struct {
	From    int
	To      int
	TrackID string
}

// ActionType implements action.Action.
func (a Reorder) ActionType() string { return "songcard.reorder" }

// Swiped is emitted after a completed swipe ran its action.
type Swiped struct {
	Action  config.SwipeAction
	TrackID string
}

// ActionType implements action.Action.
func (a Swiped) ActionType() string { return "songcard.swiped" }

// Notice asks the host to show a transient message.
type Notice struct {
	Text string
}

// ActionType implements action.Action.
func (a Notice) ActionType() string { return "songcard.notice" }

// ActionMsg creates an action.Msg for a songcard action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "songcard", Action: a}
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}
