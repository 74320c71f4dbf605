package ui

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/config"
)

// Application represents the main application
type Application struct {
	app     *adw.Application
	window  *DataWindow
	config  *config.Config
	version string
	tray    *TrayIndicator
}

// Initialize starts the toolkit and creates the application.
// It returns common.ErrInitialization when no display is available.
func Initialize(cfg *config.Config, version string) (*Application, error) {
	if !gtk.InitCheck() {
		return nil, common.ErrInitialization
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	application := &Application{
		app:     adw.NewApplication(common.AppID, gio.ApplicationFlagsNone),
		config:  cfg,
		version: version,
	}

	application.app.ConnectActivate(application.onActivate)
	application.app.ConnectShutdown(func() {
		common.LogInfo("Application shutting down")
	})

	return application, nil
}

// Run runs the event loop until Quit is called.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	// A second activation (e.g. launching the binary again) presents the
	// existing window instead of building another one.
	if a.window != nil {
		a.showWindow()
		return
	}

	a.ApplyTheme(a.config.Theme)
	LoadStyles()

	a.window = NewDataWindow(a)
	a.window.Show()

	if a.config.ShowTray {
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
	}
	common.LogInfo("DataWindow ready with %d tabs", a.window.notebook.Len())
}

// GetConfig returns the configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetVersion returns the application version
func (a *Application) GetVersion() string {
	return a.version
}

// GetWindow returns the main window
func (a *Application) GetWindow() *gtk.Window {
	if a.window != nil {
		return &a.window.window.Window
	}
	return nil
}

// GetTray returns the tray indicator, or nil when disabled.
func (a *Application) GetTray() *TrayIndicator {
	return a.tray
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	manager := adw.StyleManagerGetDefault()
	if manager == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		manager.SetColorScheme(adw.ColorSchemeForceLight)
	case common.ThemeDark:
		manager.SetColorScheme(adw.ColorSchemeForceDark)
	default:
		manager.SetColorScheme(adw.ColorSchemeDefault)
	}
}

// showWindow presents the main window
func (a *Application) showWindow() {
	if a.window != nil {
		a.window.window.Present()
	}
}

// openConnectionDialog opens a fresh connection dialog over the main window.
func (a *Application) openConnectionDialog() {
	if a.window != nil {
		a.window.onConnect()
	}
}

// Quit stops the event loop and the tray.
func (a *Application) Quit() {
	if a.tray != nil {
		a.tray.Stop()
	}
	a.app.Quit()
}

// QuitAsync schedules Quit on the GTK main loop. It is safe to call from
// any goroutine.
func (a *Application) QuitAsync() {
	glib.IdleAdd(a.Quit)
}
