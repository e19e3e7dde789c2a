package keymap

import (
	"slices"
	"strings"
)

// Resolver looks up the action bound to a key within a set of bindings.
// When two bindings claim the same key, the later one wins.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings both ways.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "".
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor lists the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint formats a status-line entry from the first key of each action:
// Hint("move", ActionMoveDown, ActionMoveUp) gives "j/k: move".
// Actions without keys are skipped; "" when none has one.
func (r *Resolver) Hint(label string, actions ...Action) string {
	var keys []string
	for _, a := range actions {
		if ks := r.keys[a]; len(ks) > 0 {
			keys = append(keys, ks[0])
		}
	}
	if len(keys) == 0 {
		return ""
	}
	return strings.Join(keys, "/") + ": " + label
}
