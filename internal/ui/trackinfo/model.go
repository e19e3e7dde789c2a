// Package trackinfo provides the song details dialog.
package trackinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const (
	readTimeout = 5 * time.Second
	labelWidth  = 14
)

// Model is the details dialog for one track.
type Model struct {
	ui.Base
	track   library.Track
	details *Details
}

// New creates a dialog for track. Details load on Init.
func New(track library.Track) *Model {
	return &Model{track: track}
}

// Track returns the track the dialog describes.
func (m *Model) Track() library.Track {
	return m.track
}

// Loaded reports whether the file details have arrived.
func (m *Model) Loaded() bool {
	return m.details != nil
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	track := m.track
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
		return LoadCmd(ctx, track)()
	}
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.Details.Track.ID == m.track.ID {
			d := msg.Details
			m.details = &d
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q", "i":
			return m, func() tea.Msg { return ActionMsg(Closed{}) }
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	t := m.track

	rows := [][2]string{
		{"Title", t.DisplayTitle()},
		{"Artists", strings.Join(t.Artists, ", ")},
		{"Album artists", strings.Join(t.AlbumArtists, ", ")},
		{"Album", t.Album},
		{"Genre", t.Genre},
		{"Year", positive(t.Year)},
		{"Track", trackPosition(t.TrackNumber, t.DiscNumber)},
		{"Path", t.Path},
	}
	rows = append(rows, m.fileRows()...)

	valueWidth := 0
	if m.Width() > 0 {
		valueWidth = max(m.Width()-labelWidth-1, 8)
	}

	lines := []string{s.Title.Render("Song details"), ""}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		value := render.Sanitize(r[1])
		if valueWidth > 0 {
			value = render.TruncateEllipsis(value, valueWidth)
		}
		lines = append(lines, s.Muted.Render(render.Pad(r[0], labelWidth))+" "+s.Base.Render(value))
	}
	lines = append(lines, "", s.Subtle.Render("Esc: close"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) fileRows() [][2]string {
	d := m.details
	if d == nil {
		return [][2]string{{"File", "loading…"}}
	}
	if d.FileErr != nil {
		return [][2]string{{"File", "unavailable: " + d.FileErr.Error()}}
	}
	rows := [][2]string{
		{"Type", d.MIMEType},
		{"Size", humanize.IBytes(uint64(d.Size))}, //nolint:gosec // file sizes are non-negative
		{"Modified", humanize.Time(d.Modified)},
	}
	if d.AudioErr != nil {
		return append(rows, [2]string{"Audio", errmsg.Format(errmsg.OpTrackInfo, d.AudioErr)})
	}
	rows = append(rows, [2]string{"Duration", formatDuration(d.Duration)})
	if d.Bitrate > 0 {
		rows = append(rows, [2]string{"Bitrate", fmt.Sprintf("%d kbps", d.Bitrate)})
	}
	if d.SampleRate > 0 {
		rows = append(rows, [2]string{"Sample rate", humanize.SIWithDigits(float64(d.SampleRate), 1, "Hz")})
	}
	if d.Channels > 0 {
		rows = append(rows, [2]string{"Channels", strconv.FormatUint(uint64(d.Channels), 10)})
	}
	return rows
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func trackPosition(track, disc int) string {
	switch {
	case track <= 0:
		return ""
	case disc > 0:
		return fmt.Sprintf("%d (disc %d)", track, disc)
	default:
		return strconv.Itoa(track)
	}
}

func formatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
