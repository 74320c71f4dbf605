package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/data"
)

const (
	pageSimple  = "simple"
	pageAdvance = "advance"
)

// ConnectionDialog collects database connection details, either as
// separate fields or as a single URL. It never opens a connection.
type ConnectionDialog struct {
	window    *gtk.Window
	stack     *gtk.Stack
	platforms []data.Platform

	platformDropDown *gtk.DropDown
	hostEntry        *gtk.Entry
	portEntry        *gtk.Entry
	databaseEntry    *gtk.Entry
	userEntry        *gtk.Entry
	passwordEntry    *gtk.PasswordEntry
	urlEntry         *gtk.Entry
}

// NewConnectionDialog creates a dialog transient for parent. Every call
// returns an independent dialog.
func NewConnectionDialog(parent *gtk.Window) *ConnectionDialog {
	cd := &ConnectionDialog{platforms: data.Platforms()}
	cd.build(parent)
	return cd
}

func (cd *ConnectionDialog) build(parent *gtk.Window) {
	cd.window = gtk.NewWindow()
	cd.window.SetTitle("Connect to Server")
	if parent != nil {
		cd.window.SetTransientFor(parent)
	}
	cd.window.SetModal(false)
	cd.window.SetDefaultSize(common.ConnectionDialogWidth, common.ConnectionDialogHeight)
	cd.window.AddCSSClass("connection-dialog")

	rootBox := gtk.NewBox(gtk.OrientationVertical, 12)
	rootBox.SetMarginTop(12)
	rootBox.SetMarginBottom(12)
	rootBox.SetMarginStart(12)
	rootBox.SetMarginEnd(12)

	cd.stack = gtk.NewStack()
	cd.stack.SetVExpand(true)
	cd.stack.SetTransitionType(gtk.StackTransitionTypeSlideLeftRight)
	cd.stack.AddTitled(cd.createSimplePage(), pageSimple, "Simple")
	cd.stack.AddTitled(cd.createAdvancePage(), pageAdvance, "Advance")

	switcher := gtk.NewStackSwitcher()
	switcher.SetStack(cd.stack)
	switcher.SetHAlign(gtk.AlignCenter)

	rootBox.Append(switcher)
	rootBox.Append(cd.stack)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.AddCSSClass("dialog-action-area")

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.AddCSSClass("dialog-button")
	cancelBtn.ConnectClicked(func() {
		common.LogDebug("Connection dialog: cancel %s", cd.Connection())
	})
	buttonBar.Append(cancelBtn)

	connectBtn := gtk.NewButtonWithLabel("Connect")
	connectBtn.AddCSSClass("suggested-action")
	connectBtn.AddCSSClass("dialog-button")
	connectBtn.ConnectClicked(func() {
		common.LogDebug("Connection dialog: connect %s", cd.Connection())
	})
	buttonBar.Append(connectBtn)

	rootBox.Append(buttonBar)

	cd.window.SetChild(rootBox)
}

// createSimplePage builds the field-by-field form.
func (cd *ConnectionDialog) createSimplePage() *gtk.Grid {
	grid := gtk.NewGrid()
	grid.SetRowSpacing(8)
	grid.SetColumnSpacing(12)

	names := make([]string, len(cd.platforms))
	for i, p := range cd.platforms {
		names[i] = p.Name
	}
	cd.platformDropDown = gtk.NewDropDown(gtk.NewStringList(names), nil)

	cd.hostEntry = gtk.NewEntry()
	cd.hostEntry.SetPlaceholderText("localhost")

	cd.portEntry = gtk.NewEntry()
	cd.portEntry.SetInputPurpose(gtk.InputPurposeDigits)

	cd.databaseEntry = gtk.NewEntry()
	cd.userEntry = gtk.NewEntry()

	cd.passwordEntry = gtk.NewPasswordEntry()
	cd.passwordEntry.SetShowPeekIcon(true)

	rows := []struct {
		label  string
		widget gtk.Widgetter
	}{
		{"Platform", cd.platformDropDown},
		{"Host", cd.hostEntry},
		{"Port", cd.portEntry},
		{"Database", cd.databaseEntry},
		{"User", cd.userEntry},
		{"Password", cd.passwordEntry},
	}
	for i, row := range rows {
		label := gtk.NewLabel(row.label)
		label.SetXAlign(0)
		grid.Attach(label, 0, i, 1, 1)

		gtk.BaseWidget(row.widget).SetHExpand(true)
		grid.Attach(row.widget, 1, i, 1, 1)
	}

	return grid
}

// createAdvancePage builds the single URL form.
func (cd *ConnectionDialog) createAdvancePage() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 8)

	label := gtk.NewLabel("Connection Url: ")
	label.SetXAlign(0)
	box.Append(label)

	cd.urlEntry = gtk.NewEntry()
	cd.urlEntry.SetText(data.DefaultConnection().URL)
	box.Append(cd.urlEntry)

	return box
}

// Connection returns the value currently entered on the visible page.
func (cd *ConnectionDialog) Connection() data.Connection {
	if cd.stack.VisibleChildName() == pageAdvance {
		return data.URLConnection(cd.urlEntry.Text())
	}

	port, err := data.ParsePort(cd.portEntry.Text())
	if err != nil {
		common.LogDebug("Connection dialog: %v", err)
	}

	platform := ""
	if idx := int(cd.platformDropDown.Selected()); idx < len(cd.platforms) {
		platform = cd.platforms[idx].ID
	}

	return data.SchemeConnection(data.Scheme{
		Platform: platform,
		Host:     cd.hostEntry.Text(),
		Port:     port,
		Database: cd.databaseEntry.Text(),
		User:     cd.userEntry.Text(),
		Password: cd.passwordEntry.Text(),
	})
}

// Show displays the dialog.
func (cd *ConnectionDialog) Show() {
	cd.window.Show()
}
