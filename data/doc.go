// Package data holds the toolkit-free model behind the DataWindow views.
//
// The GTK widgets in package ui and the terminal preview in package tui are
// thin renderings of the types defined here:
//
//   - WindowTitles: the fixed side list of window names
//   - Store: the synthetic rows shown in a tab's list panel
//   - DetailFields: the record form shown in a tab's detail panel
//   - Tab and Notebook: which tabs are open, in which order, and which panel
//     of each tab is visible
//   - ToolbarActions: the per-tab action table
//   - Connection: the value entered in the connection dialog
//
// Nothing in this package is safe for concurrent use. Callers drive it from
// a single goroutine (the GTK main loop or the bubbletea update loop).
package data
