package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"viewport-watch/log"
	"viewport-watch/viewport"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".viewport-watch"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Config represents the application configuration
type Config struct {
	// Breakpoint is the terminal width, in columns, at or below which the
	// viewport is considered narrow.
	Breakpoint int `json:"breakpoint"`
	// PollIntervalMs is the interval (ms) at which terminal size is polled on
	// platforms without SIGWINCH.
	PollIntervalMs int `json:"poll_interval_ms"`
	// AltScreen runs the TUI in the terminal's alternate screen buffer.
	AltScreen bool `json:"alt_screen"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Breakpoint:     viewport.DefaultBreakpoint,
		PollIntervalMs: int(viewport.DefaultPollInterval / time.Millisecond),
		AltScreen:      true,
	}
}

// PollInterval returns PollIntervalMs as a duration, or the default if unset.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return viewport.DefaultPollInterval
	}
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// LoadConfig loads the configuration from disk. It never fails: on any error
// the defaults are returned and the problem is logged.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	lock := NewFileLock(configPath)
	if err := os.MkdirAll(configDir, 0755); err == nil {
		if err := lock.RLock(); err != nil {
			log.WarningLog.Printf("failed to acquire read lock: %v", err)
			// Continue without lock - better to have stale data than fail
		} else {
			defer lock.Unlock()
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			// Drop the read lock first; saving takes the exclusive lock.
			_ = lock.Unlock()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	lock := NewFileLock(configPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire config lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
