package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

// FileLock provides file-based locking for cross-process synchronization.
// It uses a separate lock file rather than locking the data file directly,
// so a config rewrite never races a concurrent reader.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a new FileLock for the given path.
// The lock file will be created in the same directory as the given path.
func NewFileLock(path string) *FileLock {
	lockPath := filepath.Join(filepath.Dir(path), lockFileName)
	return &FileLock{
		path: lockPath,
	}
}

// Held reports whether this FileLock currently holds a lock.
func (l *FileLock) Held() bool {
	return l.file != nil
}

// GetConfigLock returns a FileLock for the config file.
func GetConfigLock() (*FileLock, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFileLock(filepath.Join(configDir, ConfigFileName)), nil
}
