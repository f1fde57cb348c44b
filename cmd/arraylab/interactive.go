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

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	elemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	elemsPerRow = 8
	maxHistory  = 8
)

type labModel struct {
	arr     labArray
	input   textinput.Model
	history []string
	err     error
}

func newLabModel(arr labArray) *labModel {
	ti := textinput.New()
	ti.Placeholder = "set:0:42"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	return &labModel{arr: arr, input: ti}
}

func (m *labModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *labModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			op := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if op == "" {
				return m, nil
			}
			if op == "q" || op == "quit" {
				return m, tea.Quit
			}
			out, err := apply(m.arr, op)
			m.err = err
			if err == nil {
				m.history = append(m.history, out)
				if len(m.history) > maxHistory {
					m.history = m.history[1:]
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *labModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Array Lab"))
	b.WriteString(" ")
	b.WriteString(m.arr.Kind().TypeName())
	b.WriteString(fmt.Sprintf(" · %d elements", m.arr.Len()))
	b.WriteString("\n\n")

	elems := m.arr.Elems()
	if len(elems) == 0 {
		b.WriteString(helpStyle.Render("(empty array)"))
		b.WriteString("\n")
	}

	width := 5
	for i, e := range elems {
		if l := len(e) + 1; l > width {
			width = l
		}
		if l := len(fmt.Sprintf("[%d]", i)) + 1; l > width {
			width = l
		}
	}
	for row := 0; row < len(elems); row += elemsPerRow {
		end := row + elemsPerRow
		if end > len(elems) {
			end = len(elems)
		}
		for i := row; i < end; i++ {
			b.WriteString(indexStyle.Render(fmt.Sprintf("%*s", width, fmt.Sprintf("[%d]", i))))
		}
		b.WriteString("\n")
		for i := row; i < end; i++ {
			b.WriteString(elemStyle.Render(fmt.Sprintf("%*s", width, elems[i])))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range m.history {
		b.WriteString(resultStyle.Render(line))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("set:i:v get:i incr:i decr:i postincr:i postdecr:i export:off len • esc quit"))

	return b.String()
}

func runInteractive(kindName string, length int, initValues string) error {
	arr, err := newLabArray(kindName, length, initValues)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newLabModel(arr), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
