// Package share hands a track's locator to the platform: the system
// clipboard, or the terminal's clipboard through OSC 52 when running
// remotely.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when a sharer cannot work in the current
// environment.
var ErrUnavailable = errors.New("share target unavailable")

// Sharer hands a resource locator to the platform.
type Sharer interface {
	Share(ctx context.Context, uri, mimeType string) error
}

// ClipboardSharer copies the locator to the system clipboard.
type ClipboardSharer struct {
	write func(string) error
}

// NewClipboardSharer creates a sharer backed by the system clipboard.
func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{write: clipboard.WriteAll}
}

// Share implements Sharer.
func (s *ClipboardSharer) Share(ctx context.Context, uri, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.write == nil {
		if clipboard.Unsupported {
			return fmt.Errorf("clipboard: %w", ErrUnavailable)
		}
		s.write = clipboard.WriteAll
	}
	if err := s.write(uri); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// OSC52Mode selects how the escape sequence is wrapped.
type OSC52Mode int

const (
	OSC52Plain OSC52Mode = iota
	OSC52Tmux
	OSC52Screen
)

// DetectOSC52Mode picks the wrapping from the environment.
func DetectOSC52Mode() OSC52Mode {
	switch {
	case os.Getenv("TMUX") != "":
		return OSC52Tmux
	case os.Getenv("STY") != "":
		return OSC52Screen
	default:
		return OSC52Plain
	}
}

// OSC52Sharer writes an OSC 52 clipboard sequence to the terminal.
type OSC52Sharer struct {
	out  io.Writer
	mode OSC52Mode
}

// NewOSC52Sharer creates a sharer writing to out. A nil out selects
// stderr, which bubbletea leaves alone.
func NewOSC52Sharer(out io.Writer, mode OSC52Mode) *OSC52Sharer {
	if out == nil {
		out = os.Stderr
	}
	return &OSC52Sharer{out: out, mode: mode}
}

// Share implements Sharer.
func (s *OSC52Sharer) Share(ctx context.Context, uri, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(uri)
	switch s.mode {
	case OSC52Tmux:
		seq = seq.Tmux()
	case OSC52Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(s.out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// Chain tries sharers in order and stops at the first success.
type Chain []Sharer

// Share implements Sharer. If every sharer fails the errors are joined.
func (c Chain) Share(ctx context.Context, uri, mimeType string) error {
	if len(c) == 0 {
		return ErrUnavailable
	}
	var errs []error
	for _, s := range c {
		err := s.Share(ctx, uri, mimeType)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Default returns the sharer used by the application: the system
// clipboard, then OSC 52.
func Default() Sharer {
	return Chain{NewClipboardSharer(), NewOSC52Sharer(nil, DetectOSC52Mode())}
}
