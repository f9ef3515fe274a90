//go:build !linux && !darwin

package platform

type unsupportedNotifier struct{}

func newNotifier(appName string) Notifier {
	return unsupportedNotifier{}
}

func (unsupportedNotifier) Notify(summary, body string) error {
	return ErrNotifyUnsupported
}
