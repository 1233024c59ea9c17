//go:build !windows

package config

import (
	"fmt"
	"os"
	"syscall"
)

// Lock acquires an exclusive lock, blocking until it is available.
// SaveConfig holds it while rewriting config.json.
func (l *FileLock) Lock() error {
	return l.flock(os.O_CREATE|os.O_RDWR, syscall.LOCK_EX, "exclusive")
}

// RLock acquires a shared lock, blocking until it is available.
// Any number of LoadConfig calls may hold it at once.
func (l *FileLock) RLock() error {
	return l.flock(os.O_CREATE|os.O_RDONLY, syscall.LOCK_SH, "shared")
}

func (l *FileLock) flock(openFlag, how int, kind string) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, openFlag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire %s lock: %w", kind, err)
	}

	l.file = f
	return nil
}

// Unlock releases the lock. It is a no-op if no lock is held.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	return nil
}
