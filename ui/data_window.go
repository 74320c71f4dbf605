package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/google/uuid"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/data"
)

// DataWindow is the main application window: the side list of windows on
// the left and the notebook of data tabs on the right.
type DataWindow struct {
	app         *Application
	window      *gtk.ApplicationWindow
	headerBar   *gtk.HeaderBar
	sideList    *gtk.ListBox
	sideGate    rowGate
	titles      []string
	nb          *gtk.Notebook
	notebook    *data.Notebook
	tabs        map[uuid.UUID]*DataTab
	statusBar   *gtk.Box
	statusLabel *gtk.Label
}

// NewDataWindow creates the main window and opens the default tabs.
func NewDataWindow(app *Application) *DataWindow {
	dw := &DataWindow{
		app:      app,
		titles:   data.WindowTitles(common.WindowListSize),
		notebook: data.NewNotebook(),
		tabs:     make(map[uuid.UUID]*DataTab),
	}

	cfg := app.GetConfig()
	dw.window = gtk.NewApplicationWindow(&app.app.Application)
	dw.window.SetTitle(common.WindowTitle)
	dw.window.SetDefaultSize(cfg.WindowWidth, cfg.WindowHeight)
	dw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)

	// Closing the main window ends the program.
	dw.window.ConnectCloseRequest(func() bool {
		common.LogInfo("Main window closed")
		app.Quit()
		return false
	})

	dw.createLayout()

	for _, title := range dw.titles[:common.DefaultTabCount] {
		dw.AddTab(title)
	}

	return dw
}

// createLayout creates the window layout.
func (dw *DataWindow) createLayout() {
	dw.headerBar = gtk.NewHeaderBar()

	connectButton := gtk.NewButtonWithLabel("Connect to Server")
	connectButton.SetTooltipText("Enter database connection details")
	connectButton.ConnectClicked(dw.onConnect)
	dw.headerBar.PackStart(connectButton)

	prefsButton := gtk.NewButtonWithLabel("Preferences")
	prefsButton.ConnectClicked(dw.onPreferences)
	dw.headerBar.PackStart(prefsButton)

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(dw.createMenu())
	dw.headerBar.PackEnd(menuButton)

	dw.window.SetTitlebar(dw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	paned := gtk.NewPaned(gtk.OrientationHorizontal)
	paned.SetVExpand(true)
	paned.SetStartChild(dw.createSideList())
	paned.SetResizeStartChild(false)
	paned.SetShrinkStartChild(false)
	paned.SetEndChild(dw.createNotebook())
	mainBox.Append(paned)

	dw.createStatusBar()
	mainBox.Append(dw.statusBar)

	dw.window.SetChild(mainBox)
}

// createSideList builds the scrolled list of window names.
func (dw *DataWindow) createSideList() gtk.Widgetter {
	dw.sideList = gtk.NewListBox()
	dw.sideList.SetSelectionMode(gtk.SelectionSingle)
	dw.sideList.AddCSSClass("side-list")

	for _, title := range dw.titles {
		label := gtk.NewLabel(title)
		label.SetXAlign(0)
		label.SetMarginTop(6)
		label.SetMarginBottom(6)
		label.SetMarginStart(12)
		dw.sideList.Append(label)
	}

	// Every selection change opens a tab. Activating the row that is already
	// selected (click or Enter) opens another one.
	dw.sideList.ConnectRowSelected(func(row *gtk.ListBoxRow) {
		if row == nil {
			return
		}
		dw.sideGate.selected()
		glib.IdleAdd(dw.sideGate.settle)
		dw.openSideRow(row)
	})
	dw.sideList.ConnectRowActivated(func(row *gtk.ListBoxRow) {
		if dw.sideGate.activated() {
			dw.openSideRow(row)
		}
	})

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scrolled.SetSizeRequest(common.SideListWidth, -1)
	scrolled.SetChild(dw.sideList)
	return scrolled
}

// openSideRow opens a tab for the window shown by row.
func (dw *DataWindow) openSideRow(row *gtk.ListBoxRow) {
	idx := row.Index()
	if idx < 0 || idx >= len(dw.titles) {
		return
	}
	dw.AddTab(dw.titles[idx])
}

// createNotebook builds the tab container and keeps the model in step with
// user reordering and page switches.
func (dw *DataWindow) createNotebook() gtk.Widgetter {
	dw.nb = gtk.NewNotebook()
	dw.nb.SetScrollable(true)
	dw.nb.PopupEnable()
	dw.nb.SetHExpand(true)
	dw.nb.SetVExpand(true)

	dw.nb.ConnectSwitchPage(func(page gtk.Widgetter, _ uint) {
		id, ok := pageID(page)
		if !ok {
			return
		}
		if err := dw.notebook.Select(id); err != nil {
			common.LogDebug("switch-page: %v", err)
		}
	})

	dw.nb.ConnectPageReordered(func(_ gtk.Widgetter, _ uint) {
		ids := make([]uuid.UUID, 0, dw.nb.NPages())
		for i := 0; i < dw.nb.NPages(); i++ {
			if id, ok := pageID(dw.nb.NthPage(i)); ok {
				ids = append(ids, id)
			}
		}
		if err := dw.notebook.Reorder(ids); err != nil {
			common.LogWarn("page-reordered: %v", err)
		}
	})

	return dw.nb
}

// pageID recovers the tab identity stored in a page's widget name.
func pageID(page gtk.Widgetter) (uuid.UUID, bool) {
	if page == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(gtk.BaseWidget(page).Name())
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// createMenu creates the application menu.
func (dw *DataWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	windowSection := gio.NewMenu()
	windowSection.Append("Connect to Server…", "app.connect")
	windowSection.Append("Preferences", "app.preferences")
	menu.AppendSection("", &windowSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	dw.setupActions()

	return menu
}

// setupActions registers the menu actions and their accelerators.
func (dw *DataWindow) setupActions() {
	app := dw.app.app

	actions := []struct {
		name   string
		accels []string
		run    func()
	}{
		{"connect", []string{"<Control>o"}, dw.onConnect},
		{"preferences", []string{"<Control>comma"}, dw.onPreferences},
		{"about", nil, dw.onAbout},
		{"quit", []string{"<Control>q"}, func() { dw.window.Close() }},
		{"close-tab", []string{"<Control>w"}, dw.closeCurrentTab},
		{"toggle-view", []string{"<Control>d"}, dw.toggleCurrentTab},
	}

	for _, a := range actions {
		run := a.run
		action := gio.NewSimpleAction(a.name, nil)
		action.ConnectActivate(func(_ *glib.Variant) {
			run()
		})
		app.AddAction(action)
		if len(a.accels) > 0 {
			app.SetAccelsForAction("app."+a.name, a.accels)
		}
	}
}

// createStatusBar creates the status bar.
func (dw *DataWindow) createStatusBar() {
	dw.statusBar = gtk.NewBox(gtk.OrientationHorizontal, 12)
	dw.statusBar.SetMarginTop(6)
	dw.statusBar.SetMarginBottom(6)
	dw.statusBar.SetMarginStart(12)
	dw.statusBar.SetMarginEnd(12)

	dw.statusLabel = gtk.NewLabel("Ready")
	dw.statusLabel.SetXAlign(0)
	dw.statusLabel.AddCSSClass("status-label")
	dw.statusBar.Append(dw.statusLabel)
}

// Show displays the window.
func (dw *DataWindow) Show() {
	dw.window.Show()
}

// SetStatus updates the status text.
func (dw *DataWindow) SetStatus(text string) {
	if dw.statusLabel != nil {
		dw.statusLabel.SetText(text)
	}
}

// AddTab opens a new data tab titled title and makes it current.
func (dw *DataWindow) AddTab(title string) {
	tab := dw.notebook.Add(title)
	dt := NewDataTab(tab)
	dw.tabs[tab.ID] = dt

	page := dt.GetWidget()
	gtk.BaseWidget(page).SetName(tab.ID.String())

	id := tab.ID
	idx := dw.nb.AppendPage(page, newTabHeader(title, func() { dw.CloseTab(id) }))
	dw.nb.SetTabReorderable(page, true)
	dw.nb.SetCurrentPage(idx)

	common.LogInfo("Opened tab %s", title)
	dw.tabsChanged(fmt.Sprintf("Opened %s", title))
}

// CloseTab removes the tab with the given ID. The page is located by its
// widget, so earlier closes or reorders never shift the target.
func (dw *DataWindow) CloseTab(id uuid.UUID) {
	dt, ok := dw.tabs[id]
	if !ok {
		return
	}
	title := dt.tab.Title

	if err := dw.notebook.Close(id); err != nil {
		common.LogWarn("close tab: %v", err)
		return
	}
	delete(dw.tabs, id)

	if num := dw.nb.PageNum(dt.GetWidget()); num >= 0 {
		dw.nb.RemovePage(num)
	}

	common.LogInfo("Closed tab %s", title)
	dw.tabsChanged(fmt.Sprintf("Closed %s", title))
}

// closeCurrentTab closes the current tab, if any.
func (dw *DataWindow) closeCurrentTab() {
	if cur := dw.notebook.Current(); cur != nil {
		dw.CloseTab(cur.ID)
	}
}

// toggleCurrentTab flips the visible panel of the current tab.
func (dw *DataWindow) toggleCurrentTab() {
	if cur := dw.notebook.Current(); cur != nil {
		if dt, ok := dw.tabs[cur.ID]; ok {
			dt.ToggleView()
		}
	}
}

// tabsChanged refreshes everything that shows the open tab count.
func (dw *DataWindow) tabsChanged(status string) {
	n := dw.notebook.Len()
	dw.SetStatus(fmt.Sprintf("%s · %d open tabs", status, n))
	if tray := dw.app.GetTray(); tray != nil {
		tray.SetOpenTabs(n)
	}
}

// newTabHeader builds a notebook tab label with a close button.
func newTabHeader(title string, onClose func()) *gtk.Box {
	header := gtk.NewBox(gtk.OrientationHorizontal, 6)

	label := gtk.NewLabel(title)
	header.Append(label)

	closeBtn := gtk.NewButtonFromIconName("window-close-symbolic")
	closeBtn.AddCSSClass("flat")
	closeBtn.AddCSSClass("tab-close")
	closeBtn.SetTooltipText("Close tab")
	closeBtn.ConnectClicked(onClose)
	header.Append(closeBtn)

	return header
}

// Event handlers

func (dw *DataWindow) onConnect() {
	dialog := NewConnectionDialog(&dw.window.Window)
	dialog.Show()
}

func (dw *DataWindow) onPreferences() {
	prefsDialog := NewPreferencesDialog(dw)
	prefsDialog.Show()
}

func (dw *DataWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&dw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName("x-office-spreadsheet")
	about.SetVersion(dw.app.GetVersion())
	about.SetComments("Data browsing window demo.\nTabs of synthetic rows with list and detail views.")
	about.SetLicenseType(gtk.LicenseMITX11)

	about.Show()
}
