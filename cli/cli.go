// Package cli prints the DataWindow model to the terminal without
// launching the GUI.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yllada/datawindow/common"
	"github.com/yllada/datawindow/data"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

// CLI represents the command-line interface.
type CLI struct {
	out    io.Writer
	width  int
	titles []string
}

// New creates a CLI writing to out. Tables are fitted to the terminal width
// when out is a terminal.
func New(out io.Writer) *CLI {
	if out == nil {
		out = os.Stdout
	}
	return &CLI{
		out:    out,
		width:  terminalWidth(out),
		titles: data.WindowTitles(common.WindowListSize),
	}
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return defaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// ListWindows prints the side list.
func (c *CLI) ListWindows() error {
	t := newTable("#", "WINDOW")
	for i, title := range c.titles {
		t.Row(strconv.Itoa(i), title)
	}

	_, err := fmt.Fprintln(c.out, t.Render())
	return err
}

// ShowTab prints the rows and the detail form of the tab that would open
// for the named window. name is a window title or its index, matched
// case-insensitively.
func (c *CLI) ShowTab(name string) error {
	title, err := c.findWindow(name)
	if err != nil {
		return err
	}

	tab := data.NewTab(title)
	store := tab.Store()

	headers := make([]string, store.ColumnCount())
	for col := range headers {
		headers[col], _ = store.ColumnName(col)
	}

	t := newTable(headers...).Width(min(c.width, 100))
	for i := 0; i < store.RowCount(); i++ {
		cells := make([]string, store.ColumnCount())
		for col := range cells {
			cells[col], _ = store.Cell(i, col)
		}
		t.Row(cells...)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(tab.Title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Detail"))
	b.WriteString("\n")
	for _, field := range tab.Detail() {
		fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render(fmt.Sprintf("%-10s", field.Label)), field.Value)
	}

	_, err = fmt.Fprint(c.out, b.String())
	return err
}

// findWindow resolves a window title or index (case-insensitive).
func (c *CLI) findWindow(name string) (string, error) {
	name = strings.TrimSpace(name)

	if i, err := strconv.Atoi(name); err == nil {
		if i >= 0 && i < len(c.titles) {
			return c.titles[i], nil
		}
		return "", fmt.Errorf("%w: %s", common.ErrWindowNotFound, name)
	}

	for _, title := range c.titles {
		if strings.EqualFold(title, name) {
			return title, nil
		}
	}
	return "", fmt.Errorf("%w: %s", common.ErrWindowNotFound, name)
}

// PrintHelp prints CLI usage help.
func PrintHelp(w io.Writer) {
	fmt.Fprintln(w, `DataWindow - data browsing window demo

Usage:
  datawindow [OPTIONS]

Options:
  --version          Show version and exit
  --verbose          Enable verbose logging
  --config PATH      Use an alternate config file
  --init-config      Write the default config file and exit
  --list             List the side-list windows
  --show NAME        Print a tab's rows and detail form (title or index)
  --tui              Run the terminal preview
  --help             Show this help message

Examples:
  datawindow --list
  datawindow --show "Window 5"
  datawindow --show 5
  datawindow --tui

Notes:
  - Run without options to launch the GUI
  - The configuration lives in ~/.config/datawindow/config.yaml`)
}
