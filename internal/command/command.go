// Package command abstracts how external control reaches the timer. The
// driver loop blocks on a Source with a bounded wait and receives at most
// one command per iteration; the core never assumes a particular IPC
// mechanism.
package command

import "time"

// Command is an external instruction for the driver loop.
type Command int

const (
	// Unknown marks a delivery the source could not map; the driver
	// treats it as fatal.
	Unknown Command = iota
	// Toggle starts a stopped timer or stops a running one.
	Toggle
	// Reset discards the timer and rebuilds it from scratch.
	Reset
	// Quit asks the driver loop to exit cleanly.
	Quit
)

// String returns the command name for logs.
func (cmd Command) String() string {
	switch cmd {
	case Toggle:
		return "toggle"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Source yields external commands with a bounded wait. Next blocks for at
// most the given timeout and reports whether a command arrived.
type Source interface {
	Next(timeout time.Duration) (Command, bool)
}
