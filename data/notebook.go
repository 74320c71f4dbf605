package data

import (
	"fmt"

	"github.com/google/uuid"
)

// Notebook tracks the open tabs in page order and which one is current.
// Pages are addressed by tab ID, never by a cached index, so closing or
// reordering one page never disturbs another.
type Notebook struct {
	tabs    []*Tab
	current uuid.UUID
}

// NewNotebook returns an empty notebook.
func NewNotebook() *Notebook {
	return &Notebook{}
}

// Add appends a new tab, makes it current and returns it.
// Duplicate titles are allowed.
func (n *Notebook) Add(title string) *Tab {
	tab := NewTab(title)
	n.tabs = append(n.tabs, tab)
	n.current = tab.ID
	return tab
}

// Close removes the tab with the given ID.
//
// When the current tab is closed, the tab that takes over its position
// becomes current, or the last tab when it was the last one.
func (n *Notebook) Close(id uuid.UUID) error {
	idx := n.Index(id)
	if idx < 0 {
		return fmt.Errorf("close %s: %w", id, ErrTabNotFound)
	}

	n.tabs = append(n.tabs[:idx], n.tabs[idx+1:]...)

	if n.current != id {
		return nil
	}
	switch {
	case len(n.tabs) == 0:
		n.current = uuid.Nil
	case idx < len(n.tabs):
		n.current = n.tabs[idx].ID
	default:
		n.current = n.tabs[len(n.tabs)-1].ID
	}
	return nil
}

// Select makes the tab with the given ID current.
func (n *Notebook) Select(id uuid.UUID) error {
	if n.Index(id) < 0 {
		return fmt.Errorf("select %s: %w", id, ErrTabNotFound)
	}
	n.current = id
	return nil
}

// Current returns the current tab, or nil when the notebook is empty.
func (n *Notebook) Current() *Tab {
	return n.Tab(n.current)
}

// CurrentIndex returns the position of the current tab, or -1.
func (n *Notebook) CurrentIndex() int {
	return n.Index(n.current)
}

// Index returns the position of the tab, or -1 when it is not open.
func (n *Notebook) Index(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	for i, t := range n.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Tab returns the open tab with the given ID, or nil.
func (n *Notebook) Tab(id uuid.UUID) *Tab {
	if i := n.Index(id); i >= 0 {
		return n.tabs[i]
	}
	return nil
}

// At returns the tab at position i, or nil.
func (n *Notebook) At(i int) *Tab {
	if i < 0 || i >= len(n.tabs) {
		return nil
	}
	return n.tabs[i]
}

// Tabs returns the open tabs in page order.
func (n *Notebook) Tabs() []*Tab {
	return append([]*Tab(nil), n.tabs...)
}

// Titles returns the titles of the open tabs in page order.
func (n *Notebook) Titles() []string {
	titles := make([]string, len(n.tabs))
	for i, t := range n.tabs {
		titles[i] = t.Title
	}
	return titles
}

// Len returns the number of open tabs.
func (n *Notebook) Len() int {
	return len(n.tabs)
}

// Move places the tab at position pos, shifting the others.
func (n *Notebook) Move(id uuid.UUID, pos int) error {
	idx := n.Index(id)
	if idx < 0 {
		return fmt.Errorf("move %s: %w", id, ErrTabNotFound)
	}
	if pos < 0 || pos >= len(n.tabs) {
		return fmt.Errorf("move to %d: %w", pos, ErrInvalidPosition)
	}

	tab := n.tabs[idx]
	n.tabs = append(n.tabs[:idx], n.tabs[idx+1:]...)
	n.tabs = append(n.tabs[:pos], append([]*Tab{tab}, n.tabs[pos:]...)...)
	return nil
}

// Reorder replaces the page order. ids must list every open tab exactly once.
func (n *Notebook) Reorder(ids []uuid.UUID) error {
	if len(ids) != len(n.tabs) {
		return ErrInvalidOrder
	}

	byID := make(map[uuid.UUID]*Tab, len(n.tabs))
	for _, t := range n.tabs {
		byID[t.ID] = t
	}

	ordered := make([]*Tab, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return ErrInvalidOrder
		}
		delete(byID, id)
		ordered = append(ordered, t)
	}

	n.tabs = ordered
	return nil
}
