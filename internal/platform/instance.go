package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// ErrNotRunning indicates no live instance was found to signal.
var ErrNotRunning = errors.New("no running instance")

// InstanceGuard holds the single-instance pidfile lock. The pidfile doubles
// as the address the toggle and reset subcommands signal.
type InstanceGuard struct {
	path string
}

// AcquireSingleInstance writes this process's pid to the instance pidfile.
// A pidfile naming a live process means another instance owns the lock;
// a stale file from a crashed instance is taken over.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	path := pidFilePath(appName)
	if pid, err := readPidFile(path); err == nil && processAlive(pid) {
		return nil, ErrAlreadyRunning
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create runtime directory: %w", err)
	}
	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(pid+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write pidfile: %w", err)
	}
	return &InstanceGuard{path: path}, nil
}

// Release removes the pidfile.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.path == "" {
		return nil
	}
	return os.Remove(guard.path)
}

// Path returns the pidfile location.
func (guard *InstanceGuard) Path() string {
	if guard == nil {
		return ""
	}
	return guard.path
}

// SignalRunning delivers a signal to the instance named by the pidfile.
func SignalRunning(appName string, signal unix.Signal) error {
	pid, err := readPidFile(pidFilePath(appName))
	if err != nil {
		return ErrNotRunning
	}
	if !processAlive(pid) {
		return ErrNotRunning
	}
	if err := unix.Kill(pid, signal); err != nil {
		return fmt.Errorf("signal pid %d: %w", pid, err)
	}
	return nil
}

func pidFilePath(appName string) string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, appName+".pid")
	}
	return filepath.Join(os.TempDir(), appName+".pid")
}

func readPidFile(path string) (int, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(rawData)))
	if err != nil {
		return 0, fmt.Errorf("parse pidfile: %w", err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("parse pidfile: invalid pid %d", pid)
	}
	return pid, nil
}

// processAlive probes the pid with a null signal.
func processAlive(pid int) bool {
	return unix.Kill(pid, 0) == nil
}
