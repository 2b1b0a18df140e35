package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgressMsg reports how many of the sampled possible worlds have been
// solved so far, for the --interactive live view.
type ProgressMsg struct {
	Done, Total int
}

// ResultMsg carries the finished table for one decision point: the CLI
// sends one of these per replayed trick when running --interactive.
type ResultMsg struct {
	Rows []Row
}

// DoneMsg signals that the whole replay has finished and the program
// should exit after the user has seen the final table.
type DoneMsg struct{}

// Model is the --interactive live view: a single screen that shows a
// progress line while the current decision point is being solved, then
// the rendered table once ResultMsg arrives.
type Model struct {
	progress ProgressMsg
	rows     []Row
	done     bool
	quitting bool
}

// NewModel returns a fresh live view with no progress or rows yet.
func NewModel() *Model {
	return &Model{}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case ProgressMsg:
		m.progress = msg

	case ResultMsg:
		m.rows = msg.Rows

	case DoneMsg:
		m.done = true
		if m.quitting {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	table := RenderTable(m.rows)
	if m.done {
		return table + "\n"
	}
	return table + "\n" + mutedStyle.Render(progressLine(m.progress)) + "\n"
}

func progressLine(p ProgressMsg) string {
	if p.Total == 0 {
		return "solving..."
	}
	return fmt.Sprintf("solving possible worlds: %d/%d", p.Done, p.Total)
}
