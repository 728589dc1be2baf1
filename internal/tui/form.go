// Package tui provides the interactive equation entry form shown when the
// CLI is invoked without positional arguments.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form styling.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	wrapStyle  = lipgloss.NewStyle().Padding(1, 2)
)

type model struct {
	input     textarea.Model
	submitted bool
}

func newModel() model {
	ta := textarea.New()
	ta.Placeholder = `$E = mc^2$`
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.Focus()

	return model{input: ta}
}

func (m model) Init() tea.Cmd { return textarea.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(msg.Width - 6)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlD, tea.KeyCtrlS:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.submitted = false
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return wrapStyle.Render(
		titleStyle.Render("latex2svg") + "\n" +
			"Enter a LaTeX equation (multi-line allowed):\n\n" +
			m.input.View() + "\n\n" +
			helpStyle.Render("ctrl+d convert and copy · esc cancel"),
	)
}

// Run presents the entry form and blocks until the user submits or cancels.
// It returns the entered equation and whether the user submitted it.
func Run() (latex string, submitted bool, err error) {
	final, err := tea.NewProgram(newModel()).Run()
	if err != nil {
		return "", false, fmt.Errorf("running interactive form: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return "", false, nil
	}
	return strings.TrimSpace(m.input.Value()), m.submitted, nil
}
