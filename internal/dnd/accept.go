package dnd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	ErrNoSession        = errors.New("no drag session")
	ErrWrongMIMEType    = errors.New("drag does not carry text/plain")
	ErrWrongLabel       = errors.New("drag label is not a song row")
	ErrNoLocalState     = errors.New("drag has no local state")
	ErrMalformedPayload = errors.New("malformed drag payload")
	ErrConsumed         = errors.New("drag payload already consumed")
)

// Accept validates a drag session and decodes its payload. Checks run in
// order: MIME type, label, local state present, local state is a list,
// list has two elements, first element is an integer position.
func Accept(s *Session) (Payload, error) {
	if s == nil {
		return Payload{}, ErrNoSession
	}
	if !slices.Contains(s.MIMETypes, MIMETextPlain) {
		return Payload{}, ErrWrongMIMEType
	}
	if s.Label != Label {
		return Payload{}, ErrWrongLabel
	}
	if s.LocalState == nil {
		return Payload{}, ErrNoLocalState
	}

	items, ok := asList(s.LocalState)
	if !ok {
		return Payload{}, fmt.Errorf("%w: local state is %T, not a list", ErrMalformedPayload, s.LocalState)
	}
	if len(items) != 2 {
		return Payload{}, fmt.Errorf("%w: %d elements, want 2", ErrMalformedPayload, len(items))
	}

	pos, err := strconv.Atoi(items[0])
	if err != nil {
		return Payload{}, fmt.Errorf("%w: position %q", ErrMalformedPayload, items[0])
	}
	return Payload{Position: pos, TrackID: items[1]}, nil
}

// asList accepts the list shapes a drag source may attach and renders each
// element as a string.
func asList(v any) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		return l, true
	case []any:
		out := make([]string, len(l))
		for i, e := range l {
			out[i] = fmt.Sprint(e)
		}
		return out, true
	default:
		return nil, false
	}
}
