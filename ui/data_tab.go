package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/data"
)

// DataTab is the page shown for one open tab: a toolbar above either the
// list panel or the detail panel.
type DataTab struct {
	tab         *data.Tab
	root        *gtk.Box
	toolbar     *TabToolbar
	listPanel   *gtk.Box
	detailPanel *gtk.Box
}

// NewDataTab builds the page for tab, showing its list panel.
func NewDataTab(tab *data.Tab) *DataTab {
	dt := &DataTab{
		tab:     tab,
		root:    gtk.NewBox(gtk.OrientationVertical, 0),
		toolbar: NewTabToolbar(),
	}
	dt.root.AddCSSClass("data-tab")

	dt.toolbar.OnClicked(data.ActionDetail, dt.ToggleView)
	dt.root.Append(dt.toolbar.GetWidget())
	dt.root.Append(gtk.NewSeparator(gtk.OrientationHorizontal))

	dt.listPanel = dt.createListPanel()
	dt.detailPanel = dt.createDetailPanel()
	dt.root.Append(dt.listPanel)
	dt.root.Append(dt.detailPanel)

	dt.syncPanels()
	return dt
}

// createListPanel builds the table of rows with its paging buttons.
func (dt *DataTab) createListPanel() *gtk.Box {
	panel := gtk.NewBox(gtk.OrientationVertical, 0)
	panel.SetVExpand(true)

	store := dt.tab.Store()

	header := gtk.NewBox(gtk.OrientationHorizontal, 12)
	header.AddCSSClass("table-header")
	for col := 0; col < store.ColumnCount(); col++ {
		name, _ := store.ColumnName(col)
		label := gtk.NewLabel(name)
		label.SetXAlign(0)
		label.SetHExpand(col != data.ColumnActive)
		header.Append(label)
	}
	panel.Append(header)

	rows := store.Rows()
	list := gtk.NewListBox()
	list.SetSelectionMode(gtk.SelectionSingle)
	list.AddCSSClass("data-rows")
	for _, r := range rows {
		list.Append(newRowWidget(r))
	}
	list.ConnectRowSelected(func(row *gtk.ListBoxRow) {
		if row == nil {
			return
		}
		if idx := row.Index(); idx >= 0 && idx < len(rows) {
			common.LogInfo("%s", rows[idx].Cell)
		}
	})

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetChild(list)
	panel.Append(scrolled)

	panel.Append(newNavBar("Previous page", "Next page"))
	return panel
}

func newRowWidget(r data.Row) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationHorizontal, 12)
	box.SetMarginTop(4)
	box.SetMarginBottom(4)
	box.SetMarginStart(6)
	box.SetMarginEnd(6)

	text := gtk.NewLabel(r.Text)
	text.SetXAlign(0)
	text.SetHExpand(true)
	box.Append(text)

	cell := gtk.NewLabel(r.Cell)
	cell.SetXAlign(0)
	cell.SetHExpand(true)
	box.Append(cell)

	active := gtk.NewCheckButton()
	active.SetActive(r.Active)
	active.SetSensitive(false)
	box.Append(active)

	return box
}

// createDetailPanel builds the record form.
func (dt *DataTab) createDetailPanel() *gtk.Box {
	panel := gtk.NewBox(gtk.OrientationVertical, 12)
	panel.SetVExpand(true)
	panel.SetMarginTop(12)
	panel.SetMarginStart(24)
	panel.SetMarginEnd(24)

	panel.Append(newNavBar("Previous record", "Next record"))

	grid := gtk.NewGrid()
	grid.SetRowSpacing(8)
	grid.SetColumnSpacing(12)
	grid.AddCSSClass("detail-form")

	for i, field := range dt.tab.Detail() {
		label := gtk.NewLabel(field.Label)
		label.SetXAlign(1)
		grid.Attach(label, 0, i, 1, 1)

		entry := gtk.NewEntry()
		entry.SetText(field.Value)
		entry.SetHExpand(true)
		grid.Attach(entry, 1, i, 1, 1)
	}
	panel.Append(grid)

	return panel
}

// newNavBar returns a pair of previous/next buttons with no behavior.
func newNavBar(prevTooltip, nextTooltip string) *gtk.Box {
	bar := gtk.NewBox(gtk.OrientationHorizontal, 6)
	bar.SetHAlign(gtk.AlignCenter)
	bar.SetMarginTop(6)
	bar.SetMarginBottom(6)

	prev := gtk.NewButtonFromIconName("go-previous-symbolic")
	prev.SetTooltipText(prevTooltip)
	bar.Append(prev)

	next := gtk.NewButtonFromIconName("go-next-symbolic")
	next.SetTooltipText(nextTooltip)
	bar.Append(next)

	return bar
}

// ToggleView switches between the list and detail panels.
func (dt *DataTab) ToggleView() {
	panel := dt.tab.Toggle()
	common.LogDebug("Tab %s shows %s panel", dt.tab.Title, panel)
	dt.syncPanels()
}

// syncPanels shows exactly the panel selected in the model and updates the
// toggle button to offer the other one.
func (dt *DataTab) syncPanels() {
	showList := dt.tab.Panel() == data.PanelList
	dt.listPanel.SetVisible(showList)
	dt.detailPanel.SetVisible(!showList)
	dt.toolbar.SetAction(data.ActionDetail, dt.tab.ToggleAction())
}

// GetWidget returns the page widget.
func (dt *DataTab) GetWidget() *gtk.Box {
	return dt.root
}
