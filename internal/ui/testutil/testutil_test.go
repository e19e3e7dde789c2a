package testutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello") + " \x1b[38;2;1;2;3mworld\x1b[0m"
	assert.Equal(t, "hello world", StripANSI(styled))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 5, MeasureWidth("\x1b[1mhello\x1b[0m"))
	assert.Equal(t, 4, MeasureWidth("日本"))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, CountLines(""))
	assert.Equal(t, 2, CountLines("a\n  \nb\n"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n \n"))
	assert.Empty(t, SplitLines("\n\n"))
}

func TestAssertContains(t *testing.T) {
	out := "\x1b[1mSave\x1b[0m changes"
	assert.Empty(t, AssertContains(out, "Save changes"))
	assert.NotEmpty(t, AssertContains(out, "Discard"))
	assert.Empty(t, AssertNotContains(out, "Discard"))
	assert.NotEmpty(t, AssertNotContains(out, "Save"))
}
