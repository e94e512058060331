package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// helpModal shows the key bindings, grouped by purpose. It is built
// from the live keymap so config overrides show their real keys.
type helpModal struct {
	sections []helpSection
	version  string
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func newHelpModal(keys keyMap, version string) *helpModal {
	section := func(title string, bindings ...key.Binding) helpSection {
		s := helpSection{title: title}
		for _, b := range bindings {
			if !b.Enabled() {
				continue
			}
			s.items = append(s.items, helpItem{key: b.Help().Key, desc: b.Help().Desc})
		}
		return s
	}

	return &helpModal{
		version: version,
		sections: []helpSection{
			section("Movement",
				keys.Up, keys.Down, keys.PageUp, keys.PageDown,
				keys.Top, keys.Bottom, keys.Parent, keys.Sibling,
			),
			section("Navigation",
				keys.Select, keys.Back, keys.Open, keys.Prompt, keys.Search,
				keys.Frontpage, keys.Inbox, keys.Subscriptions, keys.Multireddits,
			),
			section("Actions",
				keys.Fold, keys.Upvote, keys.Downvote, keys.Save,
				keys.Reply, keys.Compose, keys.Edit, keys.Delete,
				keys.YankPermalink, keys.YankURL,
			),
			section("Interface",
				keys.Refresh, keys.PrevTheme, keys.NextTheme,
				keys.Help, keys.Quit,
			),
		},
	}
}

func (m *helpModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil, nil, true
	}
	return m, nil, false
}

func (m *helpModal) View(styles *Styles, width, height int) string {
	keyWidth := 0
	for _, section := range m.sections {
		for _, item := range section.items {
			keyWidth = maxInt(keyWidth, displayWidth(item.key))
		}
	}

	var b strings.Builder
	for i, section := range m.sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.HelpBar.Render(padRight(" "+section.title, modalWidth-2)))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString("  ")
			b.WriteString(styles.HiddenCommentExpand.Render(padRight(item.key, keyWidth)))
			b.WriteString("  ")
			b.WriteString(item.desc)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	footer := " press any key to close"
	if m.version != "" {
		footer = " perch " + m.version + " -" + footer
	}
	b.WriteString(styles.Created.Render(footer))

	return modalBox(b.String())
}
