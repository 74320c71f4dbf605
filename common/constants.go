// Package common provides shared constants, types, and utilities
// used across the DataWindow application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.datawindow.demo"
	// AppName is the display name of the application.
	AppName = "DataWindow"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "datawindow"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "datawindow.log"
)

// Synthetic data sizes.
const (
	// WindowListSize is the number of entries in the side list.
	WindowListSize = 50
	// RowsPerTab is the number of rows generated for every tab's list panel.
	RowsPerTab = 50
	// DefaultTabCount is the number of tabs opened at startup.
	DefaultTabCount = 3
	// DetailFieldCount is the number of label/entry pairs in the detail form.
	DetailFieldCount = 5
)

// UI constants.
const (
	// WindowTitle is the title of the main window.
	WindowTitle = "DataWindow - GTK"
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 1024
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 768
	// MinWindowWidth is the minimum window width.
	MinWindowWidth = 400
	// MinWindowHeight is the minimum window height.
	MinWindowHeight = 300
	// SideListWidth is the requested width of the side list.
	SideListWidth = 200
	// ConnectionDialogWidth is the default connection dialog width.
	ConnectionDialogWidth = 300
	// ConnectionDialogHeight is the default connection dialog height.
	ConnectionDialogHeight = 400
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
