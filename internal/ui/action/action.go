// Package action carries component events up to the app model.
package action

// Action is an event raised by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg a component emits for an Action. Source is the
// emitting component, e.g. "songcard" or "songmenu".
type Msg struct {
	Source string
	Action Action
}
