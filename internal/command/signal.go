package command

import (
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

// SignalSource delivers commands via POSIX signals: SIGUSR1 toggles,
// SIGUSR2 resets, SIGINT and SIGTERM quit.
type SignalSource struct {
	signals chan os.Signal
}

// NewSignalSource subscribes to the command signals.
func NewSignalSource() *SignalSource {
	signals := make(chan os.Signal, 4)
	signal.Notify(signals, unix.SIGUSR1, unix.SIGUSR2, unix.SIGINT, unix.SIGTERM)
	return &SignalSource{signals: signals}
}

// Next waits up to timeout for a signal and maps it to a command.
func (source *SignalSource) Next(timeout time.Duration) (Command, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case received := <-source.signals:
		return mapSignal(received), true
	case <-timer.C:
		return Unknown, false
	}
}

// Close unsubscribes from signal delivery.
func (source *SignalSource) Close() {
	signal.Stop(source.signals)
}

func mapSignal(received os.Signal) Command {
	switch received {
	case unix.SIGUSR1:
		return Toggle
	case unix.SIGUSR2:
		return Reset
	case unix.SIGINT, unix.SIGTERM:
		return Quit
	default:
		return Unknown
	}
}
