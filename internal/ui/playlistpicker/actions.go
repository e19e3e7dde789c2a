package playlistpicker

import "github.com/llehouerou/songrow/internal/ui/action"

// Added reports that the track was added to a playlist.
type Added struct {
	PlaylistID int64
	Name       string
	TrackID    string
	Created    bool // the playlist was created for this add
}

// ActionType implements action.Action.
func (a Added) ActionType() string { return "playlistpicker.added" }

// Notice asks the host to show a transient message.
type Notice struct {
	Text string
}

// ActionType implements action.Action.
func (a Notice) ActionType() string { return "playlistpicker.notice" }

// Canceled reports that the picker was closed without adding.
type Canceled struct{}

// ActionType implements action.Action.
func (a Canceled) ActionType() string { return "playlistpicker.canceled" }

// ActionMsg creates an action.Msg for a playlistpicker action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "playlistpicker", Action: a}
}
