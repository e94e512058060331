package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModal is a single-line text prompt. Enter submits, escape
// cancels, and an empty submission is treated as a cancel.
type promptModal struct {
	input  textinput.Model
	submit func(text string) tea.Cmd
}

func newPromptModal(prompt string, submit func(string) tea.Cmd) *promptModal {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 120
	input.Focus()
	return &promptModal{input: input, submit: submit}
}

func (m *promptModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return nil, nil, true
			}
			return nil, m.submit(text), true
		case tea.KeyEsc, tea.KeyCtrlC:
			return nil, nil, true
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

func (m *promptModal) View(styles *Styles, width, height int) string {
	return modalBox(m.input.View())
}
