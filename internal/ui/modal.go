package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const modalWidth = 40

// Modal is a focused overlay. While one is open it receives all key
// events. Update returns the modal to keep showing (usually itself), an
// optional command, and whether the modal closed.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(styles *Styles, width, height int) string
}

// modalBox renders content inside the standard bordered modal frame.
func modalBox(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(modalWidth).
		Render(content)
}

// overlay centers a modal view over the page background.
func overlay(view string, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		view,
		lipgloss.WithWhitespaceChars(" "),
	)
}
