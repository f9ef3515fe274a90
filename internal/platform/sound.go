package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"pomod/internal/config"
)

// ErrSoundUnsupported indicates no audio player is available on this system.
var ErrSoundUnsupported = errors.New("audio playback unsupported")

// Player plays the short transition cue.
type Player interface {
	Play() error
}

// Known command-line players, tried in order when no command is configured.
var playerCandidates = []struct {
	name string
	args []string
}{
	{name: "paplay"},
	{name: "pw-play"},
	{name: "aplay", args: []string{"-q"}},
	{name: "afplay"},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

type execPlayer struct {
	appName    string
	playerPath string
	playerArgs []string
	soundFile  string // empty means use the bundled chime
	chime      []byte

	resolveOnce sync.Once
	resolvedErr error
	resolved    string
}

// NewPlayer builds a player from the sound settings. The chime bytes back
// the default cue when no sound file is configured.
func NewPlayer(appName string, sound config.Sound, chime []byte) Player {
	playerPath, playerArgs := resolvePlayerCommand(sound.Command)
	if playerPath == "" {
		return unsupportedPlayer{}
	}
	return &execPlayer{
		appName:    appName,
		playerPath: playerPath,
		playerArgs: playerArgs,
		soundFile:  sound.File,
		chime:      chime,
	}
}

// Play launches the player without waiting for playback to finish.
func (player *execPlayer) Play() error {
	soundPath, err := player.resolveSoundFile()
	if err != nil {
		return err
	}

	command := exec.Command(player.playerPath, append(player.playerArgs, soundPath)...)
	if err := command.Start(); err != nil {
		return fmt.Errorf("start player: %w", err)
	}
	go func() {
		_ = command.Wait()
	}()
	return nil
}

// resolveSoundFile materializes the bundled chime into the user cache dir
// on first use, or validates the configured override.
func (player *execPlayer) resolveSoundFile() (string, error) {
	player.resolveOnce.Do(func() {
		if player.soundFile != "" {
			if _, err := os.Stat(player.soundFile); err != nil {
				player.resolvedErr = fmt.Errorf("sound file: %w", err)
				return
			}
			player.resolved = player.soundFile
			return
		}

		cacheDir, err := os.UserCacheDir()
		if err != nil {
			player.resolvedErr = fmt.Errorf("resolve user cache dir: %w", err)
			return
		}
		chimePath := filepath.Join(cacheDir, player.appName, "chime.wav")
		if err := os.MkdirAll(filepath.Dir(chimePath), 0o755); err != nil {
			player.resolvedErr = fmt.Errorf("create cache directory: %w", err)
			return
		}
		if err := os.WriteFile(chimePath, player.chime, 0o644); err != nil {
			player.resolvedErr = fmt.Errorf("write chime file: %w", err)
			return
		}
		player.resolved = chimePath
	})
	return player.resolved, player.resolvedErr
}

func resolvePlayerCommand(custom string) (string, []string) {
	if custom != "" {
		path, err := exec.LookPath(custom)
		if err != nil {
			return "", nil
		}
		return path, nil
	}
	for _, candidate := range playerCandidates {
		if path, err := exec.LookPath(candidate.name); err == nil {
			return path, candidate.args
		}
	}
	return "", nil
}

type unsupportedPlayer struct{}

func (unsupportedPlayer) Play() error {
	return ErrSoundUnsupported
}
