package status

import (
	"fmt"
	"io"
	"time"

	"pomod/internal/config"
	"pomod/internal/core/timer"
)

// Renderer writes one status line per loop iteration for a status-bar
// reader, formatted as "<glyph> MM:SS".
type Renderer struct {
	writer io.Writer
	glyphs config.Glyphs
}

// NewRenderer creates a renderer writing to the given output.
func NewRenderer(writer io.Writer, glyphs config.Glyphs) *Renderer {
	return &Renderer{writer: writer, glyphs: glyphs}
}

// Render writes the status line for the current phase and remaining time.
func (renderer *Renderer) Render(state timer.State, remaining time.Duration) error {
	line := renderer.glyphs.Glyph(state) + " " + FormatClock(remaining)
	if _, err := fmt.Fprintln(renderer.writer, line); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}

// FormatClock renders a duration as MM:SS, flooring to whole seconds and
// clamping negatives to zero.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	totalSeconds := int(remaining.Seconds())
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
