package tui

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yllada/datawindow/data"
)

// recordingLogger captures log calls.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) record(level, msg string, args ...interface{}) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...interface{})  { l.record("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...interface{})  { l.record("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...interface{}) { l.record("ERROR", msg, args...) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNew_DefaultTabs(t *testing.T) {
	m := New(&recordingLogger{})

	if got := m.Notebook().Titles(); !reflect.DeepEqual(got, []string{"Window 0", "Window 1", "Window 2"}) {
		t.Errorf("Titles() = %v", got)
	}
	if m.Notebook().CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %v, want 2", m.Notebook().CurrentIndex())
	}
	if len(m.table.Rows()) != 50 {
		t.Errorf("table rows = %v, want 50", len(m.table.Rows()))
	}
}

func TestModel_EndToEnd(t *testing.T) {
	m := New(&recordingLogger{})

	// Move the side cursor to Window 5 and open it.
	for i := 0; i < 5; i++ {
		m = press(t, m, runes("j"))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	nb := m.Notebook()
	if nb.Len() != 4 {
		t.Fatalf("Len() = %v, want 4", nb.Len())
	}
	if nb.CurrentIndex() != 3 || nb.Current().Title != "Window 5" {
		t.Errorf("current = %v at %v, want Window 5 at 3", nb.Current().Title, nb.CurrentIndex())
	}

	// Select the second tab and close it.
	m = press(t, m, runes("]"), runes("]"))
	if nb.CurrentIndex() != 1 {
		t.Fatalf("CurrentIndex() = %v, want 1", nb.CurrentIndex())
	}
	m = press(t, m, runes("x"))

	if got := nb.Titles(); !reflect.DeepEqual(got, []string{"Window 0", "Window 2", "Window 5"}) {
		t.Errorf("Titles() = %v, want [Window 0 Window 2 Window 5]", got)
	}
}

func TestModel_SideCursorBounds(t *testing.T) {
	m := New(&recordingLogger{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %v, want 0", m.cursor)
	}

	for i := 0; i < 60; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 49 {
		t.Errorf("cursor = %v, want 49", m.cursor)
	}
}

func TestModel_ToggleView(t *testing.T) {
	m := New(&recordingLogger{})
	cur := m.Notebook().Current()

	m = press(t, m, runes("v"))
	if cur.Panel() != data.PanelDetail {
		t.Errorf("Panel() = %v, want Detail", cur.Panel())
	}
	if view := m.View(); !strings.Contains(view, "value 500") || !strings.Contains(view, "List view") {
		t.Error("detail panel should be rendered after toggle")
	}

	m = press(t, m, runes("v"))
	if cur.Panel() != data.PanelList {
		t.Errorf("Panel() = %v, want List", cur.Panel())
	}
	if view := m.View(); !strings.Contains(view, "Column1") {
		t.Error("list panel should be rendered after second toggle")
	}
}

func TestModel_TabSelectionWraps(t *testing.T) {
	m := New(&recordingLogger{})
	nb := m.Notebook()

	m = press(t, m, runes("]"))
	if nb.CurrentIndex() != 0 {
		t.Errorf("] from last tab: CurrentIndex() = %v, want 0", nb.CurrentIndex())
	}
	m = press(t, m, runes("["))
	if nb.CurrentIndex() != 2 {
		t.Errorf("[ from first tab: CurrentIndex() = %v, want 2", nb.CurrentIndex())
	}
}

func TestModel_CloseAllTabs(t *testing.T) {
	m := New(&recordingLogger{})

	m = press(t, m, runes("x"), runes("x"), runes("x"), runes("x"))

	if m.Notebook().Len() != 0 {
		t.Errorf("Len() = %v, want 0", m.Notebook().Len())
	}
	if !strings.Contains(m.View(), "No open tabs") {
		t.Error("empty notebook should render a placeholder")
	}

	// Toggling and switching tabs on an empty notebook is a no-op.
	m = press(t, m, runes("v"), runes("]"), runes("["))
	if m.Notebook().Len() != 0 {
		t.Error("no tab should appear")
	}
}

func TestModel_RowSelectionLogsCell(t *testing.T) {
	log := &recordingLogger{}
	m := New(log)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.Notebook().Len() != 3 {
		t.Errorf("enter in the tab pane should not open a tab, Len() = %v", m.Notebook().Len())
	}
	last := log.lines[len(log.lines)-1]
	if last != "INFO Cell 2 tab 2" {
		t.Errorf("last log line = %q, want INFO Cell 2 tab 2", last)
	}
}

func TestModel_HelpAndQuit(t *testing.T) {
	m := New(&recordingLogger{})

	m = press(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := New(&recordingLogger{})
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if len(m.table.Rows()) != 50 {
		t.Errorf("table rows = %v, want 50", len(m.table.Rows()))
	}
}

func TestModel_CursorSurvivesFocusAndResize(t *testing.T) {
	m := New(&recordingLogger{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("j"), runes("j"), runes("j"))
	if m.table.Cursor() != 3 {
		t.Fatalf("Cursor() = %v, want 3", m.table.Cursor())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.table.Focused() {
		t.Error("table should lose focus with the side pane focused")
	}
	if m.table.Cursor() != 3 {
		t.Errorf("after focus switch Cursor() = %v, want 3", m.table.Cursor())
	}

	m = press(t, m, tea.WindowSizeMsg{Width: 140, Height: 50}, tea.KeyMsg{Type: tea.KeyTab})
	if !m.table.Focused() {
		t.Error("table should regain focus")
	}
	if m.table.Cursor() != 3 {
		t.Errorf("after resize Cursor() = %v, want 3", m.table.Cursor())
	}
	if got := m.table.Columns()[0].Width; got != (140-sideWidth-4)/2 {
		t.Errorf("first column width = %v, want %v", got, (140-sideWidth-4)/2)
	}

	// Switching tabs loads the other tab's rows from the top.
	m = press(t, m, runes("["))
	if m.table.Cursor() != 0 {
		t.Errorf("after tab switch Cursor() = %v, want 0", m.table.Cursor())
	}
}
