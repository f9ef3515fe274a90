package platform

import "errors"

// ErrNotifyUnsupported indicates no notification backend is available on
// this system.
var ErrNotifyUnsupported = errors.New("desktop notifications unsupported")

// Notifier delivers a desktop notification to the user.
type Notifier interface {
	Notify(summary, body string) error
}

// NewNotifier returns a platform-specific notifier.
func NewNotifier(appName string) Notifier {
	return newNotifier(appName)
}
