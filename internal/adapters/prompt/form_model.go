package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formModel runs a single huh form and quits when it is submitted or cancelled
type formModel struct {
	Cancelled bool
	Completed bool
	form      *huh.Form
}

func newFormModel(form *huh.Form) *formModel {
	return &formModel{form: form}
}

func (m *formModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.Cancelled = true
			m.Completed = true
			return m, tea.Quit
		}
	}

	// Forward message to form
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.Completed = true
		return m, tea.Quit
	case huh.StateAborted:
		m.Cancelled = true
		m.Completed = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *formModel) View() string {
	if m.Completed {
		return ""
	}
	return m.form.View()
}
