package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pomod/internal/config"
)

func TestNewPlayerWithoutAnyPlayerBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	player := NewPlayer(testAppName, config.Sound{Enabled: true}, []byte("chime"))
	require.ErrorIs(t, player.Play(), ErrSoundUnsupported)
}

func TestResolveSoundFileWritesBundledChime(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)

	chime := []byte("RIFF-fake-wav")
	player := &execPlayer{
		appName:    testAppName,
		playerPath: "/bin/true",
		chime:      chime,
	}

	path, err := player.resolveSoundFile()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cacheDir, testAppName, "chime.wav"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, chime, written)
}

func TestResolveSoundFilePrefersConfiguredOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "ding.wav")
	require.NoError(t, os.WriteFile(override, []byte("ding"), 0o644))

	player := &execPlayer{
		appName:    testAppName,
		playerPath: "/bin/true",
		soundFile:  override,
	}

	path, err := player.resolveSoundFile()
	require.NoError(t, err)
	require.Equal(t, override, path)
}

func TestResolveSoundFileMissingOverride(t *testing.T) {
	player := &execPlayer{
		appName:    testAppName,
		playerPath: "/bin/true",
		soundFile:  filepath.Join(t.TempDir(), "missing.wav"),
	}

	_, err := player.resolveSoundFile()
	require.Error(t, err)
}
