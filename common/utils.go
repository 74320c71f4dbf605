// Package common provides shared constants, types, and utilities
// used across the DataWindow application.
package common

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the application configuration directory.
// Unlike EnsureConfigDir it never touches the filesystem.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", ConfigDirName), nil
}

// EnsureConfigDir returns the configuration directory, creating it if needed.
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}
	return configDir, nil
}

// GetLogDir returns the log directory path.
func GetLogDir() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "logs")
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isSymlink checks if a path is a symbolic link.
// Returns false if path doesn't exist (safe to create).
func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
