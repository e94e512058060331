package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// timeMenuModal narrows a top or controversial sort to a time period.
// Any key other than a listed digit cancels.
type timeMenuModal struct {
	apply func(period string) tea.Cmd
}

var timePeriods = []struct {
	period string
	label  string
}{
	{"hour", "Past hour"},
	{"day", "Past 24 hours"},
	{"week", "Past week"},
	{"month", "Past month"},
	{"year", "Past year"},
	{"all", "All time"},
}

func (m *timeMenuModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	s := key.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '6' {
		return nil, m.apply(timePeriods[s[0]-'1'].period), true
	}
	return nil, nil, true
}

func (m *timeMenuModal) View(styles *Styles, width, height int) string {
	var b strings.Builder
	b.WriteString(styles.OrderBar.Render("Links from:"))
	for i, p := range timePeriods {
		b.WriteString("\n  ")
		b.WriteString(styles.HiddenCommentExpand.Render(fmt.Sprintf("[%d]", i+1)))
		b.WriteString(" ")
		b.WriteString(p.label)
	}
	return modalBox(b.String())
}

// confirmModal asks a yes/no question. Only y confirms; every other
// key backs out.
type confirmModal struct {
	question string
	confirm  func() tea.Cmd
}

func (m *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if key.String() == "y" {
		return nil, m.confirm(), true
	}
	return nil, nil, true
}

func (m *confirmModal) View(styles *Styles, width, height int) string {
	return modalBox(styles.NoticeInfo.Render(m.question + " (y/n)"))
}
