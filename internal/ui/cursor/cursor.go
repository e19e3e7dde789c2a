// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor is a list selection. List length and viewport height change
// with the data and the terminal, so callers pass them on every call.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible around pos while scrolling
}

// New creates a cursor at the top keeping margin rows of context.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row.
func (c Cursor) Pos() int {
	return c.pos
}

// Jump selects pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = min(max(pos, 0), listLen-1)
	c.scrollTo(listLen, height)
}

func (c *Cursor) move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// scrollTo moves the offset so pos stays margin rows away from the edges.
func (c *Cursor) scrollTo(listLen, height int) {
	if height <= 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = c.pos - c.margin
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = min(max(c.offset, 0), max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank and
// reports whether it moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := *c
	if listLen == 0 {
		c.pos, c.offset = 0, 0
	} else {
		c.pos = min(max(c.pos, 0), listLen-1)
	}
	return *c != old
}

// VisibleRange returns the rows [start, end) in the viewport.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies a list navigation key and reports whether it was
// one: j/k and the arrows move by one, g/G and home/end jump to the
// ends, ctrl+d/ctrl+u move half a page.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.move(1, listLen, height)
	case "k", "up":
		c.move(-1, listLen, height)
	case "g", "home":
		c.Jump(0, listLen, height)
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d":
		c.move(height/2, listLen, height)
	case "ctrl+u":
		c.move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}
