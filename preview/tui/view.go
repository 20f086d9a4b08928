package tui

import (
	"fmt"
	"strings"
)

const maxListRows = 12

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Posting queue preview"))
	b.WriteString("\n")

	if len(m.Actions) == 0 {
		b.WriteString(ItemStyle.Render("Nothing to post: no fresh, unposted documents."))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("Press 'q' or Ctrl+C to quit"))
		return b.String()
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/k up | ↓/j down | q quit"))
	return b.String()
}

// renderList shows a window of queue rows around the cursor
func (m Model) renderList() string {
	start := 0
	if m.Cursor >= maxListRows {
		start = m.Cursor - maxListRows + 1
	}
	end := start + maxListRows
	if end > len(m.Actions) {
		end = len(m.Actions)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		a := m.Actions[i]
		row := fmt.Sprintf("%2d. %s  %-28s %s %s", i+1, a.When, a.Source, a.DocType, a.Date)
		if i == m.Cursor {
			b.WriteString(SelectedStyle.Render(row))
		} else {
			b.WriteString(ItemStyle.Render(row))
		}
		b.WriteString("\n")
	}
	if end < len(m.Actions) {
		b.WriteString(ItemStyle.Render(fmt.Sprintf("    … %d more", len(m.Actions)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail shows the composed post and summary for the selection
func (m Model) renderDetail() string {
	a, ok := m.selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.BasePost)
	b.WriteString("\n\n")
	if a.Summary != "" {
		b.WriteString(SummaryStyle.Render(a.Summary))
	} else {
		b.WriteString(ItemStyle.Render("(none)"))
	}
	return DetailBoxStyle.Render(b.String())
}
