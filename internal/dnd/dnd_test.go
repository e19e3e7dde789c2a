package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewSession_RoundTrip(t *testing.T) {
	s := NewSession(3, "abc")
	assert.Equal(t, []string{MIMETextPlain}, s.MIMETypes)
	assert.Equal(t, Label, s.Label)

	p, err := Accept(s)
	require.NoError(t, err)
	assert.Equal(t, Payload{Position: 3, TrackID: "abc"}, p)
}

func TestAccept_Rejections(t *testing.T) {
	valid := func() *Session { return NewSession(1, "id") }

	tests := []struct {
		name    string
		mutate  func(*Session)
		wantErr error
	}{
		{"wrong mime", func(s *Session) { s.MIMETypes = []string{"image/png"} }, ErrWrongMIMEType},
		{"no mime", func(s *Session) { s.MIMETypes = nil }, ErrWrongMIMEType},
		{"missing label", func(s *Session) { s.Label = "" }, ErrWrongLabel},
		{"other label", func(s *Session) { s.Label = "files" }, ErrWrongLabel},
		{"nil local state", func(s *Session) { s.LocalState = nil }, ErrNoLocalState},
		{"not a list", func(s *Session) { s.LocalState = "1,id" }, ErrMalformedPayload},
		{"one element", func(s *Session) { s.LocalState = []string{"1"} }, ErrMalformedPayload},
		{"three elements", func(s *Session) { s.LocalState = []string{"1", "a", "b"} }, ErrMalformedPayload},
		{"bad position", func(s *Session) { s.LocalState = []string{"one", "id"} }, ErrMalformedPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			_, err := Accept(s)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Accept(nil)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAccept_LabelCheckedBeforeState(t *testing.T) {
	s := &Session{MIMETypes: []string{MIMETextPlain}}
	_, err := Accept(s)
	assert.ErrorIs(t, err, ErrWrongLabel)
}

func TestAccept_AnyList(t *testing.T) {
	s := &Session{
		MIMETypes:  []string{MIMETextPlain},
		Label:      Label,
		LocalState: []any{7, "xyz"},
	}
	p, err := Accept(s)
	require.NoError(t, err)
	assert.Equal(t, Payload{Position: 7, TrackID: "xyz"}, p)
}

func TestSession_ConsumeOnce(t *testing.T) {
	s := NewSession(2, "t")
	p, err := s.Consume()
	require.NoError(t, err)
	assert.Equal(t, Payload{Position: 2, TrackID: "t"}, p)
	assert.True(t, s.Consumed())

	_, err = s.Consume()
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestTarget_AcceptedDropInvokesOnce(t *testing.T) {
	var got []Payload
	target := NewTarget(0, func(p Payload) { got = append(got, p) }, zap.NewNop())
	s := NewSession(4, "song")

	require.True(t, target.Enter(s))
	assert.Equal(t, Hover, target.State())
	assert.True(t, target.Highlighted())

	require.True(t, target.Drop(s))
	assert.Equal(t, Dropped, target.State())
	assert.False(t, target.Highlighted(), "drop clears the highlight")

	// Same session again: nothing happens.
	assert.False(t, target.Enter(s))
	assert.False(t, target.Drop(s))

	require.Len(t, got, 1)
	assert.Equal(t, Payload{Position: 4, TrackID: "song"}, got[0])
}

func TestTarget_SecondTargetCannotTakeConsumedPayload(t *testing.T) {
	calls := 0
	onDrop := func(Payload) { calls++ }
	a := NewTarget(0, onDrop, nil)
	b := NewTarget(1, onDrop, nil)
	s := NewSession(5, "x")

	require.True(t, a.Enter(s))
	require.True(t, a.Drop(s))
	assert.False(t, b.Enter(s))
	assert.False(t, b.Drop(s))
	assert.Equal(t, 1, calls)
}

func TestTarget_DropRequiresHover(t *testing.T) {
	calls := 0
	target := NewTarget(2, func(Payload) { calls++ }, nil)
	s := NewSession(0, "a")

	assert.False(t, target.Drop(s), "idle target")
	assert.Equal(t, Idle, target.State())
	assert.False(t, s.Consumed())

	require.True(t, target.Enter(s))
	target.Exit()
	assert.False(t, target.Drop(s), "drag left the target")
	assert.False(t, s.Consumed())

	require.True(t, target.Enter(s))
	require.True(t, target.Drop(s))
	assert.Equal(t, 1, calls)
}

func TestTarget_MissingLabelRejectedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	called := false
	target := NewTarget(3, func(Payload) { called = true }, zap.New(core))

	s := NewSession(1, "id")
	s.Label = ""

	assert.False(t, target.Enter(s))
	assert.Equal(t, Idle, target.State())
	assert.False(t, target.Drop(s))
	assert.False(t, called)

	entries := logs.FilterMessage("rejected drag session").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "droptarget", entries[0].LoggerName)
	assert.Equal(t, int64(3), entries[0].ContextMap()["position"])
}

func TestTarget_ExitReturnsToIdle(t *testing.T) {
	target := NewTarget(0, nil, nil)
	require.True(t, target.Enter(NewSession(0, "a")))
	target.Exit()
	assert.Equal(t, Idle, target.State())

	target.Reset()
	assert.Equal(t, "idle", target.State().String())
}
