package timer

import "time"

// Fixed interval lengths for the pomodoro cycle.
const (
	WorkTime       = 25 * time.Minute
	ShortBreakTime = 5 * time.Minute
	LongBreakTime  = 30 * time.Minute

	// BreakCycle is the number of work phases per long-break cycle.
	BreakCycle uint8 = 4
)

// State represents the current timer phase.
type State int

const (
	// StateIdle is the pre-start sentinel; the timer has never run.
	StateIdle State = iota
	StateWork
	StateShortBreak
	StateLongBreak
)

// Duration returns the nominal length of the phase. Idle reports the
// work length, used only as the initial display value before first start.
func (state State) Duration() time.Duration {
	switch state {
	case StateShortBreak:
		return ShortBreakTime
	case StateLongBreak:
		return LongBreakTime
	default:
		return WorkTime
	}
}

// Glyph returns the short status-bar label for the phase.
func (state State) Glyph() string {
	switch state {
	case StateWork:
		return "W"
	case StateShortBreak:
		return "S"
	case StateLongBreak:
		return "L"
	default:
		return "-"
	}
}

// String returns a lowercase name for logs.
func (state State) String() string {
	switch state {
	case StateIdle:
		return "idle"
	case StateWork:
		return "work"
	case StateShortBreak:
		return "short_break"
	case StateLongBreak:
		return "long_break"
	default:
		return "unknown"
	}
}

// Advance moves the phase to its successor and updates the break counter.
// Short breaks follow each of the first BreakCycle-1 work phases, a long
// break follows the last; breaks always return to work.
func (state *State) Advance(breakCounter *uint8) {
	switch *state {
	case StateIdle:
		*state = StateWork
	case StateWork:
		if *breakCounter < BreakCycle-1 {
			*state = StateShortBreak
		} else {
			*state = StateLongBreak
		}
		*breakCounter = (*breakCounter + 1) % BreakCycle
	case StateShortBreak, StateLongBreak:
		*state = StateWork
	}
}
