package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/datawindow/data"
)

var (
	accent = lipgloss.Color("#3584e4")
	muted  = lipgloss.Color("#888888")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted)
	focusedPaneStyle = paneStyle.BorderForeground(accent)

	cursorStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	activeTabStyle = lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(muted)
	labelStyle     = lipgloss.NewStyle().Foreground(muted).Width(12)
	emptyStyle     = lipgloss.NewStyle().Foreground(muted).Italic(true)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(accent)
	return s
}

// View implements tea.Model.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSide(), m.renderTab())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

// renderSide draws the window list, scrolled to keep the cursor visible.
func (m Model) renderSide() string {
	visible := max(m.height-4, 3)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.titles))

	var b strings.Builder
	for i := start; i < end; i++ {
		line := "  " + m.titles[i]
		if i == m.cursor {
			line = cursorStyle.Render("> " + m.titles[i])
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if m.focus == paneSide {
		style = focusedPaneStyle
	}
	return style.Width(sideWidth).Render(b.String())
}

// renderTab draws the tab strip and the visible panel of the current tab.
func (m Model) renderTab() string {
	style := paneStyle
	if m.focus == paneTab {
		style = focusedPaneStyle
	}

	cur := m.notebook.Current()
	if cur == nil {
		return style.Render(emptyStyle.Render("No open tabs. Select a window and press enter."))
	}

	strip := make([]string, 0, m.notebook.Len())
	for _, t := range m.notebook.Tabs() {
		if t.ID == cur.ID {
			strip = append(strip, activeTabStyle.Render(t.Title))
		} else {
			strip = append(strip, tabStyle.Render(t.Title))
		}
	}

	action := cur.ToggleAction()
	header := fmt.Sprintf("%s   %s",
		strings.Join(strip, " │ "),
		tabStyle.Render(fmt.Sprintf("[v] %s", action.Label)))

	var panel string
	if cur.Panel() == data.PanelList {
		panel = m.table.View()
	} else {
		panel = renderDetail(cur.Detail())
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", panel))
}

func renderDetail(fields []data.Field) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = labelStyle.Render(f.Label) + f.Value
	}
	return strings.Join(lines, "\n")
}
