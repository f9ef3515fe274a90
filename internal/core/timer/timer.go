package timer

import "time"

// Observer is notified with the new phase each time a poll discovers an
// expired phase and advances past it. The initial Idle to Work transition
// made by Start is not observed.
type Observer interface {
	StateChanged(state State)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(state State)

// StateChanged calls the wrapped function.
func (fn ObserverFunc) StateChanged(state State) {
	fn(state)
}

// Timer is the poll-driven pomodoro engine. It is not safe for concurrent
// use; a single driver loop owns it exclusively.
type Timer struct {
	running      bool
	state        State
	startedAt    time.Time // zero until the first Start
	remaining    time.Duration
	expired      bool // phase fully consumed, transition pending
	lastPoll     time.Time
	breakCounter uint8
	observer     Observer
	now          func() time.Time
}

// New creates a stopped timer in the Idle phase.
func New() *Timer {
	return NewWithNow(time.Now)
}

// NewWithNow creates a timer reading time from the given clock. The clock
// must be monotonic; tests use it to simulate elapsed poll time.
func NewWithNow(now func() time.Time) *Timer {
	return &Timer{
		state:     StateIdle,
		remaining: StateIdle.Duration(),
		lastPoll:  now(),
		now:       now,
	}
}

// SetObserver installs the single transition observer, replacing any
// previous one.
func (timer *Timer) SetObserver(observer Observer) {
	timer.observer = observer
}

// Start resumes the countdown. The very first start also performs the
// silent Idle to Work transition. Starting a running timer is a no-op.
func (timer *Timer) Start() {
	if timer.running {
		return
	}
	if timer.startedAt.IsZero() {
		timer.startedAt = timer.now()
		timer.beginNextState()
	}
	timer.running = true
}

// Stop freezes the countdown in place; the phase and remaining time are
// untouched and resume on the next Start.
func (timer *Timer) Stop() {
	if timer.running {
		timer.running = false
	}
}

// Toggle stops a running timer and starts a stopped one.
func (timer *Timer) Toggle() {
	if timer.running {
		timer.Stop()
	} else {
		timer.Start()
	}
}

// Poll advances the countdown by the wall-clock time elapsed since the
// previous poll. A phase that ran out on an earlier poll is advanced now
// and the observer notified; a phase that runs out on this poll is only
// marked expired, to be advanced on the next call. Time spent stopped is
// never charged because lastPoll refreshes on every call.
func (timer *Timer) Poll() {
	now := timer.now()
	if timer.running {
		if timer.expired {
			timer.beginNextState()
			if timer.observer != nil {
				timer.observer.StateChanged(timer.state)
			}
		} else {
			elapsed := now.Sub(timer.lastPoll)
			if elapsed >= timer.remaining {
				timer.remaining = 0
				timer.expired = true
			} else {
				timer.remaining -= elapsed
			}
		}
	}
	timer.lastPoll = now
}

// State returns the current phase.
func (timer *Timer) State() State {
	return timer.state
}

// Remaining returns the time left in the current phase, zero once the
// phase has expired.
func (timer *Timer) Remaining() time.Duration {
	if timer.expired {
		return 0
	}
	return timer.remaining
}

// Running reports whether the countdown is advancing.
func (timer *Timer) Running() bool {
	return timer.running
}

// Started reports whether the timer has ever been started. It stays true
// after Stop and is cleared only by replacing the timer.
func (timer *Timer) Started() bool {
	return !timer.startedAt.IsZero()
}

func (timer *Timer) beginNextState() {
	timer.state.Advance(&timer.breakCounter)
	timer.remaining = timer.state.Duration()
	timer.expired = false
}
