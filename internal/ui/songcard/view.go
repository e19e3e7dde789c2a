package songcard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/icons"
	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

const (
	thumbCols = 4
	thumbRows = 2
	thumbGap  = 2
	// swipeReveal is how many columns a full swipe uncovers.
	swipeReveal = 6
)

// Region is a hit-test area of a row.
type Region int

const (
	RegionNone Region = iota
	RegionDropZone
	RegionHandle
	RegionBody
	RegionHeart
	RegionMenu
)

// layout holds the column widths of the body rows. View and HitTest
// share it so clicks land where things are drawn.
type layout struct {
	dropZone bool
	handle   int
	leading  int
	text     int
	heart    int
	menu     int
}

func (m *Model) layout() layout {
	l := layout{dropZone: m.opts.DragAndDrop.Enabled}
	if l.dropZone {
		l.handle = lipgloss.Width(icons.Drag()) + 2
	}
	if m.opts.Leading != "" {
		l.leading = lipgloss.Width(m.opts.Leading) + 1
	}
	if m.heartVisible() {
		l.heart = lipgloss.Width(icons.Favorite()) + 1
	}
	l.menu = lipgloss.Width(icons.Menu()) + 1
	fixed := l.handle + l.leading + thumbCols + thumbGap + 1 + l.heart + l.menu
	l.text = max(m.Width()-fixed, 0)
	return l
}

func (l layout) heartX(width int) int { return width - l.menu - l.heart }
func (l layout) menuX(width int) int  { return width - l.menu }

// HitTest returns the region under x, y, relative to the row.
func (m *Model) HitTest(x, y int) Region {
	if x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
		return RegionNone
	}
	l := m.layout()
	if l.dropZone {
		if y == 0 {
			return RegionDropZone
		}
		y--
	}
	if y < thumbRows {
		switch {
		case x < l.handle:
			return RegionHandle
		case y == 0 && l.heart > 0 && x >= l.heartX(m.Width()) && x < l.menuX(m.Width()):
			return RegionHeart
		case y == 0 && x >= l.menuX(m.Width()):
			return RegionMenu
		}
	}
	return RegionBody
}

// View renders the row.
func (m *Model) View() string {
	if m.Width() == 0 {
		return ""
	}
	width := m.Width()
	l := m.layout()

	var lines []string
	if l.dropZone {
		lines = append(lines, m.renderDropZone(width))
	}

	thumb := strings.Split(m.renderThumbnail(), "\n")
	text := m.renderText(l.text)
	for row := range thumbRows {
		var b strings.Builder
		b.WriteString(m.renderHandle(l, row))
		b.WriteString(render.PadStyled(leadingFor(m.opts.Leading, row), l.leading))
		b.WriteString(thumb[row])
		b.WriteString(strings.Repeat(" ", thumbGap))
		b.WriteString(text[row])
		b.WriteString(" ")
		b.WriteString(m.renderTrailing(l, row))
		lines = append(lines, m.applySwipe(ansi.Truncate(b.String(), width, ""), row, width))
	}

	if m.opts.ThumbnailLabel != "" {
		lines = append(lines, m.renderLabelRow(l, width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderDropZone(width int) string {
	s := styles.T().S()
	if m.DropHighlighted() {
		return s.DropZoneActive.Render(strings.Repeat("╌", width))
	}
	return s.DropZone.Render(strings.Repeat(" ", width))
}

func (m *Model) renderHandle(l layout, row int) string {
	if l.handle == 0 {
		return ""
	}
	if row != 0 {
		return strings.Repeat(" ", l.handle)
	}
	return " " + styles.T().S().Muted.Render(icons.Drag()) + " "
}

func leadingFor(leading string, row int) string {
	if row != 0 {
		return ""
	}
	return styles.T().S().Muted.Render(leading)
}

func (m *Model) renderThumbnail() string {
	if m.thumb != "" {
		return m.thumb
	}
	return artwork.Placeholder(thumbCols, thumbRows, icons.Audio(), styles.T().S().LabelSubtle)
}

// renderText returns the title and artists lines, each exactly width
// columns wide.
func (m *Model) renderText(width int) [thumbRows]string {
	s := styles.T().S()

	titleStyle := s.Base
	if m.opts.Highlighted || m.IsCurrent() {
		titleStyle = s.Playing
	}
	artistStyle := s.Muted
	if m.IsFocused() {
		titleStyle = s.Cursor.Inherit(titleStyle)
		artistStyle = s.Cursor.Inherit(artistStyle)
	}

	title := render.TruncateAndPadEllipsis(render.Sanitize(m.track.DisplayTitle()), width)
	artists := render.TruncateAndPadEllipsis(render.Sanitize(strings.Join(m.track.Artists, ", ")), width)
	return [thumbRows]string{titleStyle.Render(title), artistStyle.Render(artists)}
}

func (m *Model) renderTrailing(l layout, row int) string {
	if row != 0 {
		return strings.Repeat(" ", l.heart+l.menu)
	}
	s := styles.T().S()
	var b strings.Builder
	if l.heart > 0 {
		b.WriteString(s.Heart.Render(icons.Favorite()))
		b.WriteString(" ")
	}
	b.WriteString(s.Base.Render(icons.Menu()))
	b.WriteString(" ")
	return b.String()
}

func (m *Model) renderLabelRow(l layout, width int) string {
	s := styles.T().S()
	style := s.LabelDefault
	if m.opts.ThumbnailLabelStyle == LabelSubtle {
		style = s.LabelSubtle
	}
	// The label may spill into the gap after the thumbnail.
	room := thumbCols + thumbGap
	label := render.TruncateEllipsis(render.Sanitize(m.opts.ThumbnailLabel), room-2)
	badge := style.Render(" " + label + " ")
	bw := lipgloss.Width(badge)
	left := max((thumbCols-bw)/2, 0)

	line := strings.Repeat(" ", l.handle+l.leading+left) + badge
	return render.PadStyled(line, width)
}

// applySwipe shifts a body row right by the swipe progress, revealing the
// swipe action icon with an opacity that follows the progress.
func (m *Model) applySwipe(line string, row, width int) string {
	if m.swipe <= 0 {
		return line
	}
	offset := max(int(m.swipe*swipeReveal+0.5), 1)
	reveal := strings.Repeat(" ", offset)
	if row == 0 {
		t := styles.T()
		icon := swipeIcon(m.state.Settings.SwipeAction)
		fg := styles.Blend(t.BgBase, t.FgBase, m.swipe)
		iw := lipgloss.Width(icon)
		if iw <= offset {
			pad := (offset - iw) / 2
			reveal = strings.Repeat(" ", pad) +
				lipgloss.NewStyle().Foreground(fg).Render(icon) +
				strings.Repeat(" ", offset-iw-pad)
		}
	}
	return reveal + ansi.Truncate(line, width-offset, "")
}

func swipeIcon(a config.SwipeAction) string {
	ic := icons.Current()
	switch a {
	case config.SwipePlayNext, config.SwipeAddToQueue:
		return ic.Queue
	case config.SwipeViewAlbum:
		return ic.Album
	case config.SwipeNothing:
		return ic.Close
	}
	return ic.Close
}
