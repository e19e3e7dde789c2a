package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(ByContext(ContextGlobal))

	assert.Equal(t, ActionQuit, r.Resolve("q"))
	assert.Equal(t, ActionQuit, r.Resolve("ctrl+c"))
	assert.Equal(t, ActionBack, r.Resolve("b"))
	assert.Equal(t, Action(""), r.Resolve("x"))
}

func TestResolver_KeysForDedupes(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionMoveDown, []string{"j", "down"}, "Move down", ContextList},
		{ActionMoveDown, []string{"j"}, "Move drop target down", ContextDrag},
	})

	assert.Equal(t, []string{"j", "down"}, r.KeysFor(ActionMoveDown))
	assert.Nil(t, r.KeysFor(ActionQuit))
}

func TestAll_NoKeyBoundTwiceInAContext(t *testing.T) {
	seen := map[string]Action{}
	for _, b := range All {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok {
				t.Errorf("%s bound to %s and %s", id, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}

func TestByContext(t *testing.T) {
	row := ByContext(ContextRow)
	assert.NotEmpty(t, row)
	for _, b := range row {
		assert.Equal(t, ContextRow, b.Context)
	}
	assert.Empty(t, ByContext("nope"))
}

func TestResolver_Hint(t *testing.T) {
	r := NewResolver(ByContext(ContextDrag))

	assert.Equal(t, "j/k: move", r.Hint("move", ActionMoveDown, ActionMoveUp))
	assert.Equal(t, "enter: drop", r.Hint("drop", ActionDrop))
	assert.Equal(t, "esc: cancel", r.Hint("cancel", ActionCancelDrag, ActionQuit))
	assert.Empty(t, r.Hint("quit", ActionQuit))
}
