// Package ui provides the graphical user interface for DataWindow.
//
// This package implements the GTK4-based user interface including:
//
//   - The main window with the side list of windows and the tab notebook
//   - Data tabs with a toolbar, a list panel and a detail panel
//   - The connection dialog with simple and advanced pages
//   - The preferences dialog
//   - A system tray indicator showing the open tab count
//
// # Architecture
//
// The widgets are thin views over the model in package data. The
// Application owns the libadwaita application object and the DataWindow;
// the DataWindow keeps a data.Notebook in step with the gtk.Notebook and
// maps tab IDs to their DataTab pages.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The tray menu and the
// signal handler in main run on other goroutines and use glib.IdleAdd() to
// schedule their work on the main thread.
//
// # File Organization
//
//   - app.go: Application lifecycle, theme and quit handling
//   - data_window.go: Main window layout, side list and notebook
//   - data_tab.go: List and detail panels of a tab
//   - tab_toolbar.go: Per-tab action buttons
//   - connection_dialog.go: Connection entry dialog
//   - preferences.go: Settings dialog
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS styling
package ui
