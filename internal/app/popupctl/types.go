package popupctl

// Type names a popup slot. At most one popup of each type is shown.
type Type int

const (
	None Type = iota
	Confirm
	Info
	AddToPlaylist
	Help
	Error
)

// stack lists the slots from the top of the screen down. The first
// visible one receives input; rendering walks it in reverse.
var stack = []Type{Error, Confirm, AddToPlaylist, Info, Help}
