package keymap

// Binding contexts.
const (
	ContextGlobal = "global"
	ContextList   = "list"
	ContextRow    = "row"
	ContextDrag   = "drag"
	ContextMenu   = "menu"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings, in help order.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchTab, []string{"tab"}, "Switch library / queue", ContextGlobal},
	{ActionBack, []string{"backspace", "b"}, "Back", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextList},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	{ActionJumpStart, []string{"g", "home"}, "First song", ContextList},
	{ActionJumpEnd, []string{"G", "end"}, "Last song", ContextList},
	{ActionPageDown, []string{"ctrl+d"}, "Page down", ContextList},
	{ActionPageUp, []string{"ctrl+u"}, "Page up", ContextList},

	{ActionPlay, []string{"enter"}, "Play", ContextRow},
	{ActionMenu, []string{"."}, "Open menu", ContextRow},
	{ActionUnfavorite, []string{"f"}, "Unfavorite", ContextRow},
	{ActionSwipe, []string{"l", "right"}, "Swipe", ContextRow},
	{ActionUnswipe, []string{"h", "left"}, "Undo swipe", ContextRow},
	{ActionDrag, []string{"space"}, "Start dragging (queue)", ContextRow},

	{ActionMoveDown, []string{"j", "down"}, "Move drop target down", ContextDrag},
	{ActionMoveUp, []string{"k", "up"}, "Move drop target up", ContextDrag},
	{ActionDrop, []string{"enter", "space"}, "Drop", ContextDrag},
	{ActionCancelDrag, []string{"esc"}, "Cancel", ContextDrag},

	{ActionMoveDown, []string{"j", "down"}, "Next entry", ContextMenu},
	{ActionMoveUp, []string{"k", "up"}, "Previous entry", ContextMenu},
	{ActionPlay, []string{"enter"}, "Run entry", ContextMenu},
	{ActionCancelDrag, []string{"esc", "q"}, "Close menu", ContextMenu},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
