package songmenu

import (
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui/action"
)

// Notice asks the host to show a transient message.
type Notice struct {
	Text string
}

// ActionType implements action.Action.
func (a Notice) ActionType() string { return "songmenu.notice" }

// DialogRequested asks the host to show the dialog a menu entry opened.
type DialogRequested struct {
	Dialog Dialog
	Track  library.Track
}

// ActionType implements action.Action.
func (a DialogRequested) ActionType() string { return "songmenu.dialog_requested" }

// Closed reports that the menu was dismissed, by an entry or by the user.
type Closed struct{}

// ActionType implements action.Action.
func (a Closed) ActionType() string { return "songmenu.closed" }

// ActionMsg creates an action.Msg for a songmenu action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "songmenu", Action: a}
}
