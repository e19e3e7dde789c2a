package confirm

import "github.com/llehouerou/songrow/internal/ui/action"

// Result is the answer. Context is the Request's.
type Result struct {
	Confirmed bool
	Context   any
}

func (Result) ActionType() string { return "confirm.result" }

func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
