// Package app runs the driver loop that owns the timer. Each iteration
// waits a bounded interval for an external command, applies it, polls the
// timer once, then renders the status line. The loop is the sole mutator
// of the timer, so no locking is needed.
package app

import (
	"fmt"
	"log"
	"time"

	"pomod/internal/command"
	"pomod/internal/core/timer"
	"pomod/internal/status"
)

// Options wires the loop's collaborators.
type Options struct {
	// PollInterval bounds the command wait and therefore the display and
	// expiry-detection latency.
	PollInterval time.Duration
	Source       command.Source
	Renderer     *status.Renderer
	// Observer is notified on expiry-driven transitions. The loop
	// re-registers it whenever a reset replaces the timer.
	Observer timer.Observer
	// Clock overrides the time source; nil means time.Now.
	Clock func() time.Time
}

// Run drives the timer until a quit command arrives or an unrecognized
// command forces a fatal exit.
func Run(options Options) error {
	if options.PollInterval <= 0 {
		options.PollInterval = 500 * time.Millisecond
	}
	clock := options.Clock
	if clock == nil {
		clock = time.Now
	}

	newTimer := func() *timer.Timer {
		fresh := timer.NewWithNow(clock)
		fresh.SetObserver(options.Observer)
		return fresh
	}
	engine := newTimer()

	for {
		if cmd, ok := options.Source.Next(options.PollInterval); ok {
			switch cmd {
			case command.Toggle:
				engine.Toggle()
			case command.Reset:
				// Reset replaces the timer wholesale rather than
				// mutating it back; the fresh value gets the observer
				// registered again.
				engine = newTimer()
			case command.Quit:
				log.Printf("app: quit requested")
				return nil
			default:
				return fmt.Errorf("unrecognized command %q", cmd)
			}
		}

		engine.Poll()

		if err := options.Renderer.Render(engine.State(), engine.Remaining()); err != nil {
			return err
		}
	}
}
