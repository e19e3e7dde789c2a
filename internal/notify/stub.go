//go:build !linux

package notify

// New returns Discard; desktop notices need the freedesktop bus.
func New() (Notifier, error) {
	return Discard, nil
}
