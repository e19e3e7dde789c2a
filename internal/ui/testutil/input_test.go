package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKey_StringRoundTrip(t *testing.T) {
	for _, key := range []string{"enter", "esc", "tab", "up", "down", "left", "right", "home", "end", "ctrl+d", "ctrl+u", "j", "."} {
		assert.Equal(t, key, Key(key).String(), "key %q", key)
	}
}

func TestMouseBuilders(t *testing.T) {
	p := Press(3, 4)
	assert.Equal(t, tea.MouseActionPress, p.Action)
	assert.Equal(t, tea.MouseButtonLeft, p.Button)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 4, p.Y)

	assert.Equal(t, tea.MouseActionRelease, Release(0, 0).Action)
	assert.Equal(t, tea.MouseActionMotion, Drag(0, 0).Action)
	assert.Equal(t, tea.MouseButtonWheelDown, Wheel(true).Button)
	assert.Equal(t, tea.MouseButtonWheelUp, Wheel(false).Button)
}
