// Package common provides shared constants, types, and utilities
// used across the DataWindow application.
package common

import "errors"

// Sentinel errors shared between packages.
// These can be checked with errors.Is() for proper error handling.
var (
	// ErrInitialization is returned when the UI toolkit fails to start.
	ErrInitialization = errors.New("failed to initialize GTK")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// ErrWindowNotFound is returned when a side-list lookup has no match.
	ErrWindowNotFound = errors.New("window not found")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
