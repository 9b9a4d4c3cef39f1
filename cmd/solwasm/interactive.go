package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type sectionBrowserModel struct {
	bin       []byte
	entries   []sectionEntry
	err       error
	selected  int
	filtering bool
	filter    textinput.Model
}

func newSectionBrowserModel(bin []byte) *sectionBrowserModel {
	entries, err := walkSections(bin)
	ti := textinput.New()
	ti.Placeholder = "section name"
	ti.Prompt = "/"
	ti.Width = 30
	return &sectionBrowserModel{bin: bin, entries: entries, err: err, filter: ti}
}

// visible returns the entries matching the current filter text, or all
// entries when no filter is active.
func (m *sectionBrowserModel) visible() []sectionEntry {
	q := m.filter.Value()
	if q == "" {
		return m.entries
	}
	var out []sectionEntry
	for _, e := range m.entries {
		if strings.Contains(e.name(), q) {
			out = append(out, e)
		}
	}
	return out
}

func (m *sectionBrowserModel) Init() tea.Cmd { return nil }

func (m *sectionBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch keyMsg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
			m.selected = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.selected = 0
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if n := len(m.visible()); m.selected < n-1 {
			m.selected++
		}
	}
	return m, nil
}

func (m *sectionBrowserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("solwasm"))
	b.WriteString(fmt.Sprintf(" %d bytes\n\n", len(m.bin)))

	entries := m.visible()
	for i, e := range entries {
		line := fmt.Sprintf("%-16s", e.name()) +
			offsetStyle.Render(fmt.Sprintf("offset=%-6d size=%d", e.offset, e.size))
		cursor := "  "
		if i == m.selected {
			cursor = "> "
			line = selectedStyle.Render(cursor + line)
		} else {
			line = cursor + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(entries) == 0 {
		b.WriteString(helpStyle.Render("(no matching sections)\n"))
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc apply filter"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ browse • / filter • q quit"))
	}
	return b.String()
}

func runInteractive(bin []byte) error {
	p := tea.NewProgram(newSectionBrowserModel(bin), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
