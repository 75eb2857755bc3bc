package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	lp "github.com/charmbracelet/lipgloss"
)

// Styles using lipgloss
var (
	// Using default terminal colors
	promptStyle = lp.NewStyle().Bold(true).Foreground(lp.Color("11")) // Yellow
)

const pausePrompt = "Press any key to close..."

// PauseModel is a minimal bubbletea model that exits on the first keypress.
// It is the console equivalent of the batch "pause" builtin: it keeps the
// terminal open so output from the launched process stays readable.
type PauseModel struct{}

// Init implements tea.Model.
func (m PauseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Any key quits; everything else is ignored.
func (m PauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m PauseModel) View() string {
	return promptStyle.Render(pausePrompt) + "\n"
}

// WaitForKey blocks until the user presses a single key.
// The program runs inline, not in the alt screen, so the child process
// output above the prompt stays visible.
func WaitForKey() error {
	p := tea.NewProgram(PauseModel{})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run pause prompt: %w", err)
	}
	return nil
}
