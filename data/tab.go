package data

import (
	"github.com/google/uuid"
	"github.com/yllada/datawindow/common"
)

// Panel identifies which half of a tab is visible.
type Panel int

const (
	PanelList Panel = iota
	PanelDetail
)

// String returns a human-readable panel name.
func (p Panel) String() string {
	switch p {
	case PanelList:
		return "List"
	case PanelDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// Tab is one open page of the notebook.
type Tab struct {
	// ID identifies the tab independently of its title and position.
	ID    uuid.UUID
	Title string

	panel  Panel
	store  *Store
	detail []Field
}

// NewTab creates a tab showing its list panel, backed by a fresh store.
func NewTab(title string) *Tab {
	return &Tab{
		ID:     uuid.New(),
		Title:  title,
		panel:  PanelList,
		store:  NewStore(GenerateRows(common.RowsPerTab)),
		detail: DetailFields(common.DetailFieldCount),
	}
}

// Panel returns the visible panel.
func (t *Tab) Panel() Panel {
	return t.panel
}

// Toggle flips the visible panel and returns the new one.
func (t *Tab) Toggle() Panel {
	if t.panel == PanelList {
		t.panel = PanelDetail
	} else {
		t.panel = PanelList
	}
	return t.panel
}

// Store returns the tab's rows.
func (t *Tab) Store() *Store {
	return t.store
}

// Detail returns a copy of the detail form fields.
func (t *Tab) Detail() []Field {
	return append([]Field(nil), t.detail...)
}

// ToggleAction returns the action offered by the toggle button: the label
// and icon of the panel a click would switch to.
func (t *Tab) ToggleAction() Action {
	if t.panel == PanelList {
		return Action{Label: "View detail", Icon: "view-fullscreen"}
	}
	return Action{Label: "List view", Icon: "view-restore"}
}
