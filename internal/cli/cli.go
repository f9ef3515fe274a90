package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"pomod/internal/alert"
	"pomod/internal/app"
	"pomod/internal/command"
	"pomod/internal/platform"
	"pomod/internal/status"
	"pomod/internal/storage"
	"pomod/resources"
)

const appName = "pomod"

// BuildCLI assembles the pomod command tree.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pomod",
		Short: "A pomodoro timer for status bars",
		Long: `pomod cycles through pomodoro work and break intervals, printing one
status line per poll for a status-bar reader and announcing each
transition with a desktop notification and a short chime.

The daemon is controlled by signaling the running instance:
SIGUSR1 toggles the countdown, SIGUSR2 resets the timer. The toggle
and reset subcommands deliver those signals for you.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(buildRunCommand())
	rootCmd.AddCommand(buildToggleCommand())
	rootCmd.AddCommand(buildResetCommand())

	return rootCmd
}

func buildRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the timer daemon",
		Long:  "Run the timer loop, writing one status line per poll to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon()
		},
	}
}

func buildToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Start or stop the running daemon's countdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			return signalDaemon(unix.SIGUSR1)
		},
	}
}

func buildResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the running daemon to a fresh idle timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return signalDaemon(unix.SIGUSR2)
		},
	}
}

func runDaemon() error {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	notifier := platform.NewNotifier(appName)
	player := platform.NewPlayer(appName, settings.Sound, resources.Chime())
	alerter := alert.New(notifier, player, settings.Notifications, settings.Sound.Enabled)

	source := command.NewSignalSource()
	defer source.Close()

	log.Printf("pomod running: pid %d, SIGUSR1 toggles, SIGUSR2 resets", os.Getpid())

	return app.Run(app.Options{
		PollInterval: settings.PollInterval,
		Source:       source,
		Renderer:     status.NewRenderer(os.Stdout, settings.Glyphs),
		Observer:     alerter,
	})
}

func signalDaemon(signal unix.Signal) error {
	if err := platform.SignalRunning(appName, signal); err != nil {
		if errors.Is(err, platform.ErrNotRunning) {
			return fmt.Errorf("%w (start one with 'pomod run')", err)
		}
		return err
	}
	return nil
}
