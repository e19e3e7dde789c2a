// Package render holds width-aware string helpers shared by UI components.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops invalid UTF-8 and control characters other than tab,
// and turns non-breaking spaces into plain ones. Tag metadata goes
// through it before reaching the terminal.
func Sanitize(s string) string {
	clean := strings.ToValidUTF8(s, "")
	if strings.IndexFunc(clean, needsMapping) < 0 {
		return clean
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, clean)
}

func needsMapping(r rune) bool {
	return r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
}

// Truncate sanitizes s and cuts it to maxWidth cells, ending in "...".
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis cuts s to maxWidth cells, ending in "…".
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad right-fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadStyled is Pad for strings that already carry ANSI styling.
func PadStyled(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// TruncateAndPad returns s sanitized at exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// TruncateAndPadEllipsis returns s at exactly width cells.
func TruncateAndPadEllipsis(s string, width int) string {
	return Pad(TruncateEllipsis(s, width), width)
}
