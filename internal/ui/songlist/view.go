package songlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songrow/internal/ui/render"
	"github.com/llehouerou/songrow/internal/ui/styles"
)

func (m *Model) listHeight() int {
	return m.Height()
}

// span returns the number of lines rows from..to (inclusive) take.
func (m *Model) span(from, to int) int {
	total := 0
	for i := from; i <= to && i < len(m.cards); i++ {
		total += m.cards[i].Height()
	}
	return total
}

func (m *Model) ensureVisible() {
	n := len(m.cards)
	if n == 0 {
		m.offset = 0
		return
	}
	pos := m.cursor.Pos()
	m.offset = min(max(m.offset, 0), n-1)
	if pos < m.offset {
		m.offset = pos
	}
	if m.listHeight() <= 0 {
		return
	}
	for m.offset < pos && m.span(m.offset, pos) > m.listHeight() {
		m.offset++
	}
}

// visibleCount returns how many rows fit from the scroll offset on.
func (m *Model) visibleCount() int {
	used, count := 0, 0
	for i := m.offset; i < len(m.cards); i++ {
		used += m.cards[i].Height()
		if used > m.listHeight() {
			break
		}
		count++
	}
	return count
}

// visibleRange returns the rows drawn on screen, partial ones included,
// as the half-open range [from, to).
func (m *Model) visibleRange() (from, to int) {
	from, to = m.offset, m.offset
	for used := 0; to < len(m.cards) && used < m.listHeight(); to++ {
		used += m.cards[to].Height()
	}
	return from, to
}

// rowTop returns the first line of row i, if it is on screen.
func (m *Model) rowTop(i int) (int, bool) {
	if i < m.offset || i >= len(m.cards) {
		return 0, false
	}
	y := m.span(m.offset, i-1)
	if y >= m.listHeight() {
		return 0, false
	}
	return y, true
}

// RowTop returns the line row i starts on, relative to the list, if the
// row is on screen.
func (m *Model) RowTop(i int) (int, bool) {
	return m.rowTop(i)
}

// rowAt returns the row under line y and y relative to that row. While
// dragging, the line after the last row is the end drop zone and maps
// to Len(). It returns -1 outside any row.
func (m *Model) rowAt(y int) (row, localY int) {
	if y < 0 || y >= m.listHeight() {
		return -1, 0
	}
	top := 0
	for i := m.offset; i < len(m.cards); i++ {
		h := m.cards[i].Height()
		if y < top+h {
			return i, y - top
		}
		top += h
	}
	if m.drag != nil && y == top {
		return len(m.cards), 0
	}
	return -1, 0
}

// View renders the visible rows.
func (m *Model) View() string {
	width, height := m.Size()
	if width == 0 || height == 0 {
		return ""
	}
	s := styles.T().S()

	var lines []string
	if len(m.cards) == 0 {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.Muted.Render(render.TruncateEllipsis(m.empty, width))))
	}
	for i := m.offset; i < len(m.cards) && len(lines) < height; i++ {
		lines = append(lines, strings.Split(m.cards[i].View(), "\n")...)
	}
	if m.drag != nil && len(lines) < height {
		lines = append(lines, m.renderEndZone(width))
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderEndZone(width int) string {
	s := styles.T().S()
	if m.drag.hover == len(m.cards) {
		return s.DropZoneActive.Render(strings.Repeat("╌", width))
	}
	return s.DropZone.Render(strings.Repeat(" ", width))
}
