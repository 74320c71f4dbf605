package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/config"
)

var (
	themeIDs       = []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark}
	themeLabels    = []string{"System Default", "Light", "Dark"}
	logLevelIDs    = []string{"debug", "info", "warn", "error"}
	logLevelLabels = []string{"Debug", "Info", "Warning", "Error"}
)

// PreferencesDialog edits the persisted settings.
type PreferencesDialog struct {
	window        *gtk.Window
	dataWindow    *DataWindow
	config        *config.Config
	themeDropDown *gtk.DropDown
	traySwitch    *gtk.Switch
	levelDropDown *gtk.DropDown
	fileSwitch    *gtk.Switch
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(dw *DataWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		dataWindow: dw,
		config:     dw.app.GetConfig(),
	}

	pd.build()
	return pd
}

func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Preferences")
	pd.window.SetTransientFor(&pd.dataWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(460, 420)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetVExpand(true)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// Appearance
	appearSection := pd.createSection("Appearance", "preferences-desktop-theme-symbolic")
	appearCard := pd.createCard()

	pd.themeDropDown = gtk.NewDropDown(gtk.NewStringList(themeLabels), nil)
	pd.themeDropDown.SetSelected(indexOf(themeIDs, pd.config.Theme))
	pd.themeDropDown.SetVAlign(gtk.AlignCenter)
	pd.themeDropDown.AddCSSClass("flat")
	appearCard.Append(pd.createSettingRow(
		"Theme",
		"Choose the visual appearance of the application",
		pd.themeDropDown,
	))

	pd.traySwitch = gtk.NewSwitch()
	pd.traySwitch.SetActive(pd.config.ShowTray)
	pd.traySwitch.SetVAlign(gtk.AlignCenter)
	appearCard.Append(pd.createSeparator())
	appearCard.Append(pd.createSettingRow(
		"Tray Icon",
		"Show the open tab count in the system tray (applies on restart)",
		pd.traySwitch,
	))

	appearSection.Append(appearCard)
	mainBox.Append(appearSection)

	// Logging
	logSection := pd.createSection("Logging", "utilities-terminal-symbolic")
	logCard := pd.createCard()

	pd.levelDropDown = gtk.NewDropDown(gtk.NewStringList(logLevelLabels), nil)
	pd.levelDropDown.SetSelected(indexOf(logLevelIDs, pd.config.LogLevel))
	pd.levelDropDown.SetVAlign(gtk.AlignCenter)
	pd.levelDropDown.AddCSSClass("flat")
	logCard.Append(pd.createSettingRow(
		"Log Level",
		"Minimum severity written to the log (applies on restart)",
		pd.levelDropDown,
	))

	pd.fileSwitch = gtk.NewSwitch()
	pd.fileSwitch.SetActive(pd.config.LogToFile)
	pd.fileSwitch.SetVAlign(gtk.AlignCenter)
	logCard.Append(pd.createSeparator())
	logCard.Append(pd.createSettingRow(
		"Log to File",
		"Also write logs under the configuration directory",
		pd.fileSwitch,
	))

	logSection.Append(logCard)
	mainBox.Append(logSection)

	rootBox.Append(mainBox)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)
	buttonBar.AddCSSClass("dialog-action-area")

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.AddCSSClass("dialog-button")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.AddCSSClass("dialog-button")
	saveBtn.ConnectClicked(func() {
		pd.savePreferences()
		pd.window.Close()
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	// Header with icon
	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

// createCard creates a styled card container for settings.
func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	// Text container (title + description)
	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// createSeparator creates a styled separator for cards.
func (pd *PreferencesDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// indexOf returns the position of id in ids, or 0 if not found.
func indexOf(ids []string, id string) uint {
	for i, v := range ids {
		if v == id {
			return uint(i)
		}
	}
	return 0
}

// savePreferences writes the settings and applies the theme right away.
func (pd *PreferencesDialog) savePreferences() {
	if idx := int(pd.themeDropDown.Selected()); idx < len(themeIDs) {
		pd.config.Theme = themeIDs[idx]
	}
	if idx := int(pd.levelDropDown.Selected()); idx < len(logLevelIDs) {
		pd.config.LogLevel = logLevelIDs[idx]
	}
	pd.config.ShowTray = pd.traySwitch.Active()
	pd.config.LogToFile = pd.fileSwitch.Active()

	if err := pd.config.Save(); err != nil {
		common.LogError("Could not save preferences: %v", err)
		pd.dataWindow.SetStatus("Could not save preferences")
		return
	}

	pd.dataWindow.app.ApplyTheme(pd.config.Theme)
	pd.dataWindow.SetStatus("Settings saved")
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
