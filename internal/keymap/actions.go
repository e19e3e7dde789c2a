// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionSwitchTab Action = "switch_tab"
	ActionBack      Action = "back"
	ActionHelp      Action = "help"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Row actions
	ActionPlay       Action = "play"
	ActionMenu       Action = "menu"
	ActionUnfavorite Action = "unfavorite"
	ActionSwipe      Action = "swipe"
	ActionUnswipe    Action = "unswipe"
	ActionDrag       Action = "drag"

	// While dragging
	ActionDrop       Action = "drop"
	ActionCancelDrag Action = "cancel_drag"
)
