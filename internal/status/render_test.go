package status

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pomod/internal/config"
	"pomod/internal/core/timer"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		want      string
	}{
		{90 * time.Second, "01:30"},
		{0, "00:00"},
		{25 * time.Minute, "25:00"},
		{30 * time.Minute, "30:00"},
		{61 * time.Minute, "61:00"},
		{999 * time.Millisecond, "00:00"},
		{-5 * time.Second, "00:00"},
	}
	for _, testCase := range cases {
		require.Equal(t, testCase.want, FormatClock(testCase.remaining),
			"remaining %s", testCase.remaining)
	}
}

func TestRenderWritesGlyphAndClock(t *testing.T) {
	var output strings.Builder
	renderer := NewRenderer(&output, config.Default().Glyphs)

	require.NoError(t, renderer.Render(timer.StateWork, 25*time.Minute))
	require.NoError(t, renderer.Render(timer.StateShortBreak, 90*time.Second))
	require.NoError(t, renderer.Render(timer.StateIdle, 0))

	lines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	glyphs := config.Default().Glyphs
	require.Equal(t, []string{
		glyphs.Work + " 25:00",
		glyphs.ShortBreak + " 01:30",
		glyphs.Idle + " 00:00",
	}, lines)
}

func TestRenderUsesConfiguredGlyphs(t *testing.T) {
	var output strings.Builder
	glyphs := config.Glyphs{Idle: "zz", Work: "🍅", ShortBreak: "sb", LongBreak: "lb"}
	renderer := NewRenderer(&output, glyphs)

	require.NoError(t, renderer.Render(timer.StateLongBreak, 30*time.Minute))
	require.Equal(t, "lb 30:00\n", output.String())
}
