package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/data"
)

// toolButton is a toolbar button that owns its icon and label, so both can
// be replaced after construction.
type toolButton struct {
	button *gtk.Button
	image  *gtk.Image
	label  *gtk.Label
}

// TabToolbar is the row of actions at the top of a data tab.
type TabToolbar struct {
	box      *gtk.Box
	buttons  map[string]*toolButton
	handlers map[string]func()
}

// NewTabToolbar builds one button per entry of data.ToolbarActions.
func NewTabToolbar() *TabToolbar {
	tb := &TabToolbar{
		box:      gtk.NewBox(gtk.OrientationHorizontal, 4),
		buttons:  make(map[string]*toolButton),
		handlers: make(map[string]func()),
	}
	tb.box.AddCSSClass("tab-toolbar")
	tb.box.SetMarginTop(4)
	tb.box.SetMarginBottom(4)
	tb.box.SetMarginStart(6)
	tb.box.SetMarginEnd(6)

	for _, action := range data.ToolbarActions() {
		tb.box.Append(tb.newButton(action))
	}

	return tb
}

func (tb *TabToolbar) newButton(action data.ToolAction) *gtk.Button {
	content := gtk.NewBox(gtk.OrientationHorizontal, 4)

	image := gtk.NewImageFromIconName(action.Icon)
	content.Append(image)

	label := gtk.NewLabel(action.Label)
	content.Append(label)

	button := gtk.NewButton()
	button.AddCSSClass("flat")
	button.SetChild(content)
	button.SetTooltipText(action.Label)

	id := action.ID
	button.ConnectClicked(func() {
		if handler, ok := tb.handlers[id]; ok {
			handler()
			return
		}
		common.LogDebug("Toolbar action %q has no handler", id)
	})

	tb.buttons[id] = &toolButton{button: button, image: image, label: label}
	return button
}

// OnClicked binds handler to the action with the given id.
func (tb *TabToolbar) OnClicked(id string, handler func()) {
	tb.handlers[id] = handler
}

// SetAction replaces the icon and label of an action's button.
func (tb *TabToolbar) SetAction(id string, action data.Action) {
	btn, ok := tb.buttons[id]
	if !ok {
		return
	}
	btn.image.SetFromIconName(action.Icon)
	btn.label.SetText(action.Label)
	btn.button.SetTooltipText(action.Label)
}

// GetWidget returns the toolbar container.
func (tb *TabToolbar) GetWidget() *gtk.Box {
	return tb.box
}
