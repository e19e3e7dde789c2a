package dnd

import (
	"go.uber.org/zap"
)

// TargetState is the state of a drop target.
type TargetState int

const (
	Idle TargetState = iota
	Hover
	Dropped
)

func (s TargetState) String() string {
	switch s {
	case Hover:
		return "hover"
	case Dropped:
		return "dropped"
	default:
		return "idle"
	}
}

// Target is the drop zone of one song row. It only reacts to sessions that
// pass Accept; rejected sessions are logged and otherwise ignored.
type Target struct {
	state    TargetState
	onDrop   func(Payload)
	logger   *zap.Logger
	position int
}

// NewTarget creates a drop target for the row at position. onDrop runs
// once per accepted drop.
func NewTarget(position int, onDrop func(Payload), logger *zap.Logger) *Target {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Target{onDrop: onDrop, logger: logger.Named("droptarget"), position: position}
}

// State returns the current state.
func (t *Target) State() TargetState {
	return t.state
}

// Highlighted reports whether the drop zone shows its hover highlight.
func (t *Target) Highlighted() bool {
	return t.state == Hover
}

// Enter is called when a drag moves over the target. It returns whether
// the target accepts the session.
func (t *Target) Enter(s *Session) bool {
	if _, err := Accept(s); err != nil {
		t.reject(s, err)
		return false
	}
	if s.Consumed() {
		return false
	}
	t.state = Hover
	return true
}

// Exit is called when the drag leaves the target without dropping.
func (t *Target) Exit() {
	if t.state == Hover {
		t.state = Idle
	}
}

// Drop delivers the session to the target. It returns whether the drop was
// handled; a session is handled by at most one drop, and only by a target
// it hovers.
func (t *Target) Drop(s *Session) bool {
	if _, err := Accept(s); err != nil {
		t.reject(s, err)
		t.state = Idle
		return false
	}
	if t.state != Hover {
		return false
	}
	p, err := s.Consume()
	if err != nil {
		t.reject(s, err)
		t.state = Idle
		return false
	}
	if t.onDrop != nil {
		t.onDrop(p)
	}
	t.state = Dropped
	return true
}

// Reset returns a dropped target to idle for the next gesture.
func (t *Target) Reset() {
	t.state = Idle
}

func (t *Target) reject(s *Session, err error) {
	fields := []zap.Field{zap.Int("position", t.position), zap.Error(err)}
	if s != nil {
		fields = append(fields, zap.String("label", s.Label), zap.Strings("mime_types", s.MIMETypes))
	}
	t.logger.Warn("rejected drag session", fields...)
}
