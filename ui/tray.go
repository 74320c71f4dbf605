package ui

import (
	"fmt"
	"sync"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/yllada/datawindow/common"
)

var iconTray = GenerateTrayIcon()

// TrayIndicator manages the system tray icon and menu.
//
// systray runs its own loop on a separate goroutine; every menu click is
// handed to the GTK main loop with glib.IdleAdd.
type TrayIndicator struct {
	app *Application

	mu       sync.Mutex
	openTabs int
	tabsItem *systray.MenuItem
	ready    bool
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	t := &TrayIndicator{app: app}
	if app.window != nil {
		t.openTabs = app.window.notebook.Len()
	}
	return t
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Stop removes the tray icon and ends Run.
func (t *TrayIndicator) Stop() {
	systray.Quit()
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(iconTray)
	systray.SetTitle(common.AppName)

	t.mu.Lock()
	t.tabsItem = systray.AddMenuItem("", "Number of open data tabs")
	t.tabsItem.Disable()
	t.ready = true
	t.refreshLocked()
	t.mu.Unlock()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Open DataWindow", "Show main window")
	go func() {
		for range showItem.ClickedCh {
			glib.IdleAdd(t.app.showWindow)
		}
	}()

	connectItem := systray.AddMenuItem("Connect to Server…", "Enter database connection details")
	go func() {
		for range connectItem.ClickedCh {
			glib.IdleAdd(t.app.openConnectionDialog)
		}
	}()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Close DataWindow")
	go func() {
		for range quitItem.ClickedCh {
			t.app.QuitAsync()
		}
	}()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

// SetOpenTabs updates the tab count shown in the tooltip and menu.
func (t *TrayIndicator) SetOpenTabs(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.openTabs = n
	t.refreshLocked()
}

func (t *TrayIndicator) refreshLocked() {
	if !t.ready {
		return
	}
	systray.SetTooltip(fmt.Sprintf("%s - %d open tabs", common.AppName, t.openTabs))
	t.tabsItem.SetTitle(fmt.Sprintf("Open tabs: %d", t.openTabs))
}
