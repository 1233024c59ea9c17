//go:build windows

package config

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Lock acquires an exclusive lock, blocking until it is available.
// SaveConfig holds it while rewriting config.json.
func (l *FileLock) Lock() error {
	return l.lockFileEx(os.O_CREATE|os.O_RDWR, windows.LOCKFILE_EXCLUSIVE_LOCK, "exclusive")
}

// RLock acquires a shared lock, blocking until it is available.
// Any number of LoadConfig calls may hold it at once.
func (l *FileLock) RLock() error {
	// No flags = shared lock
	return l.lockFileEx(os.O_CREATE|os.O_RDONLY, 0, "shared")
}

func (l *FileLock) lockFileEx(openFlag int, flags uint32, kind string) error {
	if l.file != nil {
		return fmt.Errorf("lock already held")
	}

	f, err := os.OpenFile(l.path, openFlag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	// Lock the first byte of the lock file; every locker agrees on the range.
	ol := new(windows.Overlapped)
	if err := windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, 1, 0, ol); err != nil {
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

	ol := new(windows.Overlapped)
	if err := windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, ol); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	return nil
}
