package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

type osascriptNotifier struct {
	osascriptPath string
}

func newNotifier(appName string) Notifier {
	path, err := exec.LookPath("osascript")
	if err != nil {
		return unsupportedNotifier{}
	}
	return &osascriptNotifier{osascriptPath: path}
}

func (notifier *osascriptNotifier) Notify(summary, body string) error {
	script := fmt.Sprintf("display notification %s with title %s",
		appleScriptString(body), appleScriptString(summary))
	if err := exec.Command(notifier.osascriptPath, "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}

func appleScriptString(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return `"` + value + `"`
}

type unsupportedNotifier struct{}

func (unsupportedNotifier) Notify(summary, body string) error {
	return ErrNotifyUnsupported
}
