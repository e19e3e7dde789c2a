// Package notify provides desktop notifications via D-Bus.
package notify

import "sync"

// Urgency is the freedesktop notification urgency byte.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }
func (discard) Close(uint32) error                 { return nil }

// Discard drops every notification.
var Discard Notifier = discard{}

// NoticeTimeout is how long transient notices stay on screen, in ms.
const NoticeTimeout = 3000

// Notice builds a low-urgency notification for a transient message.
// icon may be a cover image path or empty.
func Notice(text, icon string) Notification {
	return Notification{
		Title:   "songrow",
		Body:    text,
		Icon:    icon,
		Timeout: NoticeTimeout,
		Urgency: UrgencyLow,
	}
}

// Forwarder sends notices to a Notifier, replacing the previous notice so
// that a burst of messages does not stack up on the desktop.
type Forwarder struct {
	mu       sync.Mutex
	notifier Notifier
	lastID   uint32
}

// NewForwarder wraps notifier. A nil notifier drops every notice.
func NewForwarder(notifier Notifier) *Forwarder {
	return &Forwarder{notifier: notifier}
}

// Forward sends text as a notice.
func (f *Forwarder) Forward(text, icon string) error {
	if f == nil || f.notifier == nil || text == "" {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	n := Notice(text, icon)
	n.ReplacesID = f.lastID
	id, err := f.notifier.Notify(n)
	if err != nil {
		return err
	}
	f.lastID = id
	return nil
}
