package alert

import (
	"log"

	"pomod/internal/core/timer"
	"pomod/internal/platform"
)

const notifySummary = "pomod: time is up"

// Alerter announces phase transitions with a desktop notification and a
// short audible cue. It implements timer.Observer. Both side effects are
// best effort: a failed delivery is logged and never stops the timer.
type Alerter struct {
	notifier      platform.Notifier
	player        platform.Player
	notifications bool
	sound         bool
}

// New creates an Alerter. The notifications and sound switches come from
// user settings; a disabled channel is skipped entirely.
func New(notifier platform.Notifier, player platform.Player, notifications, sound bool) *Alerter {
	return &Alerter{
		notifier:      notifier,
		player:        player,
		notifications: notifications,
		sound:         sound,
	}
}

// StateChanged delivers the alert for the phase the timer just entered.
func (alerter *Alerter) StateChanged(state timer.State) {
	if state == timer.StateIdle {
		// The engine never advances into idle.
		log.Printf("alert: observed transition into idle state")
		return
	}

	if alerter.notifications && alerter.notifier != nil {
		body := "next up: " + PhaseName(state)
		if err := alerter.notifier.Notify(notifySummary, body); err != nil {
			log.Printf("alert: notification failed: %v", err)
		}
	}

	if alerter.sound && alerter.player != nil {
		if err := alerter.player.Play(); err != nil {
			log.Printf("alert: sound failed: %v", err)
		}
	}
}

// PhaseName returns the human-readable name used in notification text.
func PhaseName(state timer.State) string {
	switch state {
	case timer.StateWork:
		return "pomodoro"
	case timer.StateShortBreak:
		return "short break"
	case timer.StateLongBreak:
		return "long break"
	default:
		return "none? how did this happen?"
	}
}
