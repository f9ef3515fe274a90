package config

import (
	"time"

	"pomod/internal/core/timer"
)

// Glyphs holds per-phase status-bar labels.
type Glyphs struct {
	Idle       string
	Work       string
	ShortBreak string
	LongBreak  string
}

// Sound controls the audible cue played on phase transitions.
type Sound struct {
	Enabled bool
	// File overrides the bundled chime. Empty means use the bundled one.
	File string
	// Command overrides player auto-detection, e.g. "paplay". The sound
	// file path is appended as the final argument.
	Command string
}

// Settings defines editable behavior. Interval lengths are fixed by the
// pomodoro cycle and deliberately not configurable.
type Settings struct {
	PollInterval  time.Duration
	Notifications bool
	Sound         Sound
	Glyphs        Glyphs
}

// Default returns the default settings for pomod.
func Default() Settings {
	return Settings{
		PollInterval:  500 * time.Millisecond,
		Notifications: true,
		Sound: Sound{
			Enabled: true,
		},
		Glyphs: Glyphs{
			Idle:       timer.StateIdle.Glyph(),
			Work:       timer.StateWork.Glyph(),
			ShortBreak: timer.StateShortBreak.Glyph(),
			LongBreak:  timer.StateLongBreak.Glyph(),
		},
	}
}

// Glyph returns the configured label for the given phase.
func (glyphs Glyphs) Glyph(state timer.State) string {
	switch state {
	case timer.StateWork:
		return glyphs.Work
	case timer.StateShortBreak:
		return glyphs.ShortBreak
	case timer.StateLongBreak:
		return glyphs.LongBreak
	default:
		return glyphs.Idle
	}
}
