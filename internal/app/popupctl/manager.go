// Package popupctl manages the modal dialogs shown over the song list.
package popupctl

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/ui/confirm"
	"github.com/llehouerou/songrow/internal/ui/helpbindings"
	"github.com/llehouerou/songrow/internal/ui/playlistpicker"
	"github.com/llehouerou/songrow/internal/ui/popup"
	"github.com/llehouerou/songrow/internal/ui/trackinfo"
)

// Border and padding RenderBordered adds around popup content.
const (
	chromeWidth  = 8
	chromeHeight = 6
)

// Manager holds the open popups. The error slot is plain text and takes
// precedence over everything else.
type Manager struct {
	open          map[Type]popup.Popup
	sizes         map[Type]popup.SizeConfig
	errText       string
	width, height int
}

func New() *Manager {
	return &Manager{
		open: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Info: {MaxWidth: 90},
			Help: {MaxWidth: 70},
		},
	}
}

// SetSize records the screen size and resizes every open popup.
func (p *Manager) SetSize(width, height int) {
	p.width, p.height = width, height
	for t, pop := range p.open {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	width = max(p.width-chromeWidth, 0)
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth-chromeWidth)
	}
	return width, max(p.height-chromeHeight, 0)
}

func (p *Manager) visible(t Type) bool {
	if t == Error {
		return p.errText != ""
	}
	return p.open[t] != nil
}

// ActivePopup returns the topmost visible popup, or None.
func (p *Manager) ActivePopup() Type {
	for _, t := range stack {
		if p.visible(t) {
			return t
		}
	}
	return None
}

// Show opens pop in slot t, replacing what was there.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.open[t] = pop
	return pop.Init()
}

// Hide closes slot t.
func (p *Manager) Hide(t Type) {
	if t == Error {
		p.errText = ""
		return
	}
	delete(p.open, t)
}

// ShowError shows msg until the next key press.
func (p *Manager) ShowError(msg string) {
	p.errText = msg
}

// ShowDeleteConfirm asks before deleting track. The confirm result
// carries the track as its context.
func (p *Manager) ShowDeleteConfirm(track library.Track, confirmLabel string) tea.Cmd {
	return p.Show(Confirm, confirm.New(confirm.Request{
		Title:       confirmLabel,
		Message:     "Remove \"" + track.DisplayTitle() + "\" from the library, the queue and every playlist?",
		Verb:        confirmLabel,
		Destructive: true,
		Context:     track,
	}))
}

func (p *Manager) ShowTrackInfo(track library.Track) tea.Cmd {
	return p.Show(Info, trackinfo.New(track))
}

func (p *Manager) ShowPlaylistPicker(store playlistpicker.Store, track library.Track, logger *zap.Logger) tea.Cmd {
	return p.Show(AddToPlaylist, playlistpicker.New(store, track, logger))
}

func (p *Manager) ShowHelp() tea.Cmd {
	return p.Show(Help, helpbindings.New())
}

// HandleKey gives msg to the active popup. Any key dismisses an error.
// handled is false when no popup is open.
func (p *Manager) HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if p.errText != "" {
		p.errText = ""
		return true, nil
	}
	return p.HandleMsg(msg)
}

// HandleMsg gives any message to the active popup, for popups that load
// data in the background.
func (p *Manager) HandleMsg(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	t := p.ActivePopup()
	pop := p.open[t]
	if pop == nil {
		return false, nil
	}
	p.open[t], cmd = pop.Update(msg)
	return true, cmd
}

// RenderOverlay draws the visible popups over base, bottom one first.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range slices.Backward(stack) {
		if !p.visible(t) {
			continue
		}
		var box string
		if t == Error {
			box = popup.Dialog{
				Title:   "Error",
				Content: p.errText,
				Footer:  "Press any key to dismiss",
			}.Render(p.width, p.height)
		} else {
			box = popup.RenderBordered(p.open[t].View(), p.width, p.height, p.sizes[t])
		}
		base = popup.Compose(base, box, p.width, p.height)
	}
	return base
}
