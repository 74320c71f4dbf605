// Package tui provides a Bubble Tea preview of the DataWindow layout.
package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/data"
)

// pane is the part of the screen receiving navigation keys.
type pane int

const (
	paneSide pane = iota
	paneTab
)

const (
	sideWidth     = 18
	defaultHeight = 24
	chromeHeight  = 8 // tab strip, table header, borders, help line
)

// Model is the root state of the preview.
type Model struct {
	notebook *data.Notebook
	titles   []string
	log      common.Logger

	cursor int
	focus  pane
	table  table.Model
	keys   keyMap
	help   help.Model

	width  int
	height int
}

// New creates a preview with the default tabs open.
func New(log common.Logger) Model {
	if log == nil {
		log = common.GetLogger()
	}

	m := Model{
		notebook: data.NewNotebook(),
		titles:   data.WindowTitles(common.WindowListSize),
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		height:   defaultHeight,
	}
	for _, title := range m.titles[:common.DefaultTabCount] {
		m.notebook.Add(title)
	}
	m.rebuildTable()
	return m
}

// Notebook exposes the open tabs.
func (m Model) Notebook() *data.Notebook {
	return m.notebook
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeTable()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Focus):
		if m.focus == paneSide {
			m.focus = paneTab
		} else {
			m.focus = paneSide
		}
		m.syncFocus()

	case key.Matches(msg, m.keys.Up):
		if m.focus == paneSide {
			m.cursor = max(m.cursor-1, 0)
		} else {
			m.table.MoveUp(1)
		}

	case key.Matches(msg, m.keys.Down):
		if m.focus == paneSide {
			m.cursor = min(m.cursor+1, len(m.titles)-1)
		} else {
			m.table.MoveDown(1)
		}

	case key.Matches(msg, m.keys.Open):
		if m.focus == paneSide {
			title := m.titles[m.cursor]
			m.notebook.Add(title)
			m.log.Info("Opened tab %s", title)
			m.rebuildTable()
		} else if row := m.table.SelectedRow(); len(row) > data.ColumnCell {
			m.log.Info("%s", row[data.ColumnCell])
		}

	case key.Matches(msg, m.keys.PrevTab):
		m.selectRelative(-1)

	case key.Matches(msg, m.keys.NextTab):
		m.selectRelative(1)

	case key.Matches(msg, m.keys.Toggle):
		if cur := m.notebook.Current(); cur != nil {
			panel := cur.Toggle()
			m.log.Debug("Tab %s shows %s panel", cur.Title, panel)
		}

	case key.Matches(msg, m.keys.Copy):
		m.copySelectedRow()

	case key.Matches(msg, m.keys.Close):
		if cur := m.notebook.Current(); cur != nil {
			if err := m.notebook.Close(cur.ID); err != nil {
				m.log.Warn("close tab: %v", err)
			} else {
				m.log.Info("Closed tab %s", cur.Title)
			}
			m.rebuildTable()
		}
	}

	return m, nil
}

// copySelectedRow puts the selected row's first two columns on the system
// clipboard, tab separated.
func (m Model) copySelectedRow() {
	cur := m.notebook.Current()
	if cur == nil || cur.Panel() != data.PanelList {
		return
	}
	row := m.table.SelectedRow()
	if len(row) <= data.ColumnCell {
		return
	}
	if err := clipboard.WriteAll(row[data.ColumnText] + "\t" + row[data.ColumnCell]); err != nil {
		m.log.Warn("copy row: %v", err)
		return
	}
	m.log.Debug("Copied row %d of %s", m.table.Cursor(), cur.Title)
}

// selectRelative moves the current tab by delta, wrapping around.
func (m *Model) selectRelative(delta int) {
	n := m.notebook.Len()
	if n == 0 {
		return
	}
	idx := (m.notebook.CurrentIndex() + delta + n) % n
	if err := m.notebook.Select(m.notebook.At(idx).ID); err != nil {
		m.log.Warn("select tab: %v", err)
		return
	}
	m.rebuildTable()
}

// rebuildTable loads the current tab's rows into a fresh table widget.
// Call it only when the current tab changes; the row cursor restarts at 0.
func (m *Model) rebuildTable() {
	var rows []table.Row
	if cur := m.notebook.Current(); cur != nil {
		store := cur.Store()
		for i := 0; i < store.RowCount(); i++ {
			r, _ := store.Row(i)
			active := " "
			if r.Active {
				active = "✓"
			}
			rows = append(rows, table.Row{r.Text, r.Cell, active})
		}
	}

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithHeight(m.tableHeight()),
		table.WithFocused(m.focus == paneTab),
		table.WithStyles(tableStyles()),
	)
}

// resizeTable fits the table to the terminal, keeping rows and cursor.
func (m *Model) resizeTable() {
	m.table.SetColumns(m.columns())
	m.table.SetHeight(m.tableHeight())
}

// syncFocus makes the table follow the focused pane, keeping rows and cursor.
func (m *Model) syncFocus() {
	if m.focus == paneTab {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m Model) columns() []table.Column {
	width := m.width - sideWidth - 4
	if width < 30 {
		width = 60
	}
	textWidth := width / 2
	cellWidth := width - textWidth - 10

	return []table.Column{
		{Title: "Column1", Width: textWidth},
		{Title: "Column2", Width: cellWidth},
		{Title: "Active", Width: 6},
	}
}

func (m Model) tableHeight() int {
	return max(m.height-chromeHeight, 3)
}

// Run starts the preview and blocks until the user quits or ctx is done.
func Run(ctx context.Context, log common.Logger) error {
	p := tea.NewProgram(New(log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
