package helpbindings

import "github.com/llehouerou/songrow/internal/ui/action"

// Close asks the host to hide the help popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
