package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seaward/perch/internal/content"
)

// renderSubscriptionRow draws one subscribed subreddit or multireddit:
// the location line, then the wrapped description.
func (m *Model) renderSubscriptionRow(it *content.Item, selected bool) []string {
	st := &m.styles
	cur := gutter(st.CursorBlock, " ", selected)
	width := m.width - 1

	nameStyle, textStyle := st.SubscriptionName, st.SubscriptionText
	if it.Subreddit == "" {
		nameStyle, textStyle = st.MultiredditName, st.MultiredditText
	}

	lines := make([]string, 0, len(it.BodyLines)+1)
	l := newLine(width)
	l.add(it.Title, nameStyle)
	if it.NSFW {
		l.space()
		l.add("NSFW", st.NSFW)
	}
	lines = append(lines, cur+l.String())

	for _, t := range it.BodyLines {
		l := newLine(width)
		l.add(t, textStyle)
		lines = append(lines, cur+l.String())
	}
	return lines
}

func (m *Model) handleSubscriptionKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Select) {
		it := m.selectedItem()
		if it == nil {
			return m.flash(), true
		}
		return m.loadSubredditCmd(it.Title, "", "", false), true
	}
	return nil, false
}
