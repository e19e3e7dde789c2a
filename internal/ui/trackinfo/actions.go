package trackinfo

import "github.com/llehouerou/songrow/internal/ui/action"

// Closed reports that the details dialog was dismissed.
type Closed struct{}

// ActionType implements action.Action.
func (a Closed) ActionType() string { return "trackinfo.closed" }

// ActionMsg creates an action.Msg for a trackinfo action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "trackinfo", Action: a}
}
