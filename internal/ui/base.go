// Package ui holds pieces shared by the UI components.
package ui

// Base stores the size and focus state every component carries.
// Components embed it and read the values back through its getters.
type Base struct {
	w, h  int
	focus bool
}

func (b *Base) SetFocused(focused bool) { b.focus = focused }
func (b *Base) SetSize(width, height int) { b.w, b.h = width, height }

func (b Base) IsFocused() bool            { return b.focus }
func (b Base) Size() (width, height int) { return b.w, b.h }
func (b Base) Width() int                { return b.w }
func (b Base) Height() int               { return b.h }
