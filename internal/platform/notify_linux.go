package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod  = "org.freedesktop.Notifications.Notify"

	urgencyCritical = byte(2)
)

type dbusNotifier struct {
	appName string
}

func newNotifier(appName string) Notifier {
	return &dbusNotifier{appName: appName}
}

// Notify sends a critical-urgency notification over the session bus.
// The shared bus connection is obtained lazily so the daemon starts fine
// on systems without one; delivery just fails and gets logged upstream.
func (notifier *dbusNotifier) Notify(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyCritical),
	}
	call := conn.Object(notifyService, notifyPath).Call(
		notifyMethod, 0,
		notifier.appName, uint32(0), "", summary, body,
		[]string{}, hints, int32(-1),
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
