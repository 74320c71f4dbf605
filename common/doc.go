// Package common provides shared constants, types, and utilities
// used throughout the DataWindow application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: window sizes, list sizes, file names and theme names
//   - Errors: sentinel errors for consistent error handling across packages
//   - Interfaces: the logging abstraction consumed by the views
//   - Logger: leveled logging to the console and a rotated log file
//   - Utils: config directory resolution and file helpers
//
// # Usage
//
//	import "github.com/yllada/datawindow/common"
//
//	// Use constants
//	rows := common.RowsPerTab
//
//	// Use logger
//	common.LogInfo("Adding tab %s", title)
//
//	// Check errors
//	if errors.Is(err, common.ErrWindowNotFound) {
//	    // Handle unknown window name
//	}
package common
