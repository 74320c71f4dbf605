// Package common provides shared constants, types, and utilities
// used across the DataWindow application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a config value such as "debug" or "WARN" into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// AppLogger is a leveled logger writing to the console and optionally to a
// size-rotated file.
type AppLogger struct {
	mu          sync.Mutex
	level       LogLevel
	logger      *log.Logger
	console     io.Writer
	logFile     *os.File
	filePath    string
	written     int64
	maxFileSize int64
	maxBackups  int
}

// LogConfig holds configuration options for the logger.
type LogConfig struct {
	Level          LogLevel
	EnableFile     bool
	DisableConsole bool  // TUI mode owns the terminal
	MaxFileSize    int64 // in bytes, default 2MB
	MaxBackups     int   // number of rotated files to keep, default 3
}

var (
	defaultLogger *AppLogger
	loggerOnce    sync.Once
)

const (
	defaultMaxFileSize = 2 * 1024 * 1024
	defaultMaxBackups  = 3
)

// GetLogger returns the singleton logger instance.
func GetLogger() *AppLogger {
	loggerOnce.Do(func() {
		defaultLogger = newAppLogger(os.Stdout)
	})
	return defaultLogger
}

func newAppLogger(console io.Writer) *AppLogger {
	return &AppLogger{
		level:       LevelInfo,
		console:     console,
		logger:      log.New(console, "", 0),
		maxFileSize: defaultMaxFileSize,
		maxBackups:  defaultMaxBackups,
	}
}

// InitLogger configures the default logger.
// Should be called early in application startup.
func InitLogger(config LogConfig) error {
	logger := GetLogger()
	logger.SetLevel(config.Level)

	logger.mu.Lock()
	if config.MaxFileSize > 0 {
		logger.maxFileSize = config.MaxFileSize
	}
	if config.MaxBackups > 0 {
		logger.maxBackups = config.MaxBackups
	}
	if config.DisableConsole {
		logger.console = io.Discard
	}
	logger.resetWriterLocked()
	logger.mu.Unlock()

	if config.EnableFile {
		return logger.EnableFileLogging()
	}
	return nil
}

// SetLevel sets the minimum log level.
func (l *AppLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum log level.
func (l *AppLogger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput replaces the console destination.
func (l *AppLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = w
	l.resetWriterLocked()
}

func (l *AppLogger) resetWriterLocked() {
	if l.logFile != nil {
		l.logger = log.New(io.MultiWriter(l.console, l.logFile), "", 0)
		return
	}
	l.logger = log.New(l.console, "", 0)
}

// EnableFileLogging enables logging to the file under GetLogDir.
func (l *AppLogger) EnableFileLogging() error {
	logDir := GetLogDir()
	if logDir == "" {
		return fmt.Errorf("cannot resolve log directory")
	}
	return l.enableFileLoggingAt(logDir)
}

func (l *AppLogger) enableFileLoggingAt(logDir string) error {
	if isSymlink(logDir) {
		return fmt.Errorf("security error: log directory is a symlink")
	}
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, LogFileName)
	if isSymlink(logPath) {
		return fmt.Errorf("security error: log file is a symlink")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.filePath = logPath
	return l.openFileLocked()
}

func (l *AppLogger) openFileLocked() error {
	if info, err := os.Stat(l.filePath); err == nil && info.Size() >= l.maxFileSize {
		l.rotateLocked()
	}

	file, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = file
	l.written = info.Size()
	l.resetWriterLocked()
	return nil
}

// rotateLocked shifts datawindow.log -> .1 -> .2 ... and drops the oldest.
func (l *AppLogger) rotateLocked() {
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}

	os.Remove(fmt.Sprintf("%s.%d", l.filePath, l.maxBackups))
	for i := l.maxBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", l.filePath, i), fmt.Sprintf("%s.%d", l.filePath, i+1))
	}
	os.Rename(l.filePath, l.filePath+".1")
}

// log writes a formatted log message.
func (l *AppLogger) log(level LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	caller := "???"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	logLine := fmt.Sprintf("%s [%s] %s: %s",
		time.Now().Format("2006/01/02 15:04:05"), level.String(), caller, msg)

	l.logger.Println(logLine)

	if l.logFile != nil {
		l.written += int64(len(logLine) + 1)
		if l.written >= l.maxFileSize {
			if err := l.openFileLocked(); err != nil {
				l.logFile = nil
				l.resetWriterLocked()
			}
		}
	}
}

// Debug logs a debug message.
func (l *AppLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *AppLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *AppLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *AppLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// Shorthand functions for default logger.

// LogDebug logs a debug message to the default logger.
func LogDebug(msg string, args ...interface{}) {
	GetLogger().log(LevelDebug, msg, args...)
}

// LogInfo logs an info message to the default logger.
func LogInfo(msg string, args ...interface{}) {
	GetLogger().log(LevelInfo, msg, args...)
}

// LogWarn logs a warning message to the default logger.
func LogWarn(msg string, args ...interface{}) {
	GetLogger().log(LevelWarn, msg, args...)
}

// LogError logs an error message to the default logger.
func LogError(msg string, args ...interface{}) {
	GetLogger().log(LevelError, msg, args...)
}

// Close closes the log file. Should be called on application shutdown.
func (l *AppLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	l.resetWriterLocked()
	return err
}

// CloseLogger closes the default logger.
func CloseLogger() error {
	return GetLogger().Close()
}
