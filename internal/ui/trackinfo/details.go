package trackinfo

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.senan.xyz/taglib"

	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/share"
)

// Details is what the dialog shows about a track: the library fields plus
// what can be read from the file itself.
type Details struct {
	Track    library.Track
	MIMEType string

	Size     int64
	Modified time.Time
	FileErr  error

	Duration   time.Duration
	Bitrate    uint // kbit/s
	SampleRate uint // Hz
	Channels   uint
	AudioErr   error
}

// LoadedMsg carries details read in the background.
type LoadedMsg struct {
	Details Details
}

// Read gathers the details of track. File and audio property errors are
// recorded rather than returned so the dialog can still show the library
// fields.
func Read(track library.Track) Details {
	d := Details{Track: track}

	info, err := os.Stat(track.Path)
	if err != nil {
		d.FileErr = err
		return d
	}
	d.Size = info.Size()
	d.Modified = info.ModTime()
	d.MIMEType = share.MIMEType(track.Path)

	props, err := taglib.ReadProperties(track.Path)
	if err != nil {
		d.AudioErr = fmt.Errorf("read audio properties: %w", err)
		return d
	}
	d.Duration = props.Length
	d.Bitrate = props.Bitrate
	d.SampleRate = props.SampleRate
	d.Channels = props.Channels
	return d
}

// LoadCmd reads the details of track off the update loop.
func LoadCmd(ctx context.Context, track library.Track) tea.Cmd {
	return func() tea.Msg {
		done := make(chan Details, 1)
		go func() { done <- Read(track) }()
		select {
		case d := <-done:
			return LoadedMsg{Details: d}
		case <-ctx.Done():
			return LoadedMsg{Details: Details{Track: track, FileErr: ctx.Err()}}
		}
	}
}
