//go:build linux

package notify

import "github.com/godbus/dbus/v5"

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	appName   = "songrow"
	methodAdd = busName + ".Notify"
	methodDel = busName + ".CloseNotification"
)

type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one, notices are discarded.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Discard, nil //nolint:nilerr // no session bus on headless hosts
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

func hints(n Notification) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
	}
}

func (b *busNotifier) Notify(n Notification) (uint32, error) {
	var id uint32
	err := b.obj.Call(methodAdd, 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints(n), n.Timeout,
	).Store(&id)
	return id, err
}

func (b *busNotifier) Close(id uint32) error {
	return b.obj.Call(methodDel, 0, id).Err
}
