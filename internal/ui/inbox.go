package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seaward/perch/internal/content"
	"github.com/seaward/perch/internal/reddit"
)

// renderMessageRow draws one inbox entry: the subject row, the byline
// row, then the wrapped body.
func (m *Model) renderMessageRow(it *content.Item, selected bool) []string {
	st := &m.styles
	cur := gutter(st.CursorBlock, " ", selected)
	width := m.width - 1

	lines := make([]string, 0, len(it.BodyLines)+2)

	l := newLine(width)
	if it.New {
		l.add("[new]", st.New)
		l.space()
	}
	l.add(it.Subject, st.MessageSubject)
	if it.Title != "" {
		l.space()
		l.add(it.Title, st.MessageLink)
	}
	lines = append(lines, cur+l.String())

	l = newLine(width)
	if m.snapshot.Account != nil && it.Author == m.snapshot.Account.Name && it.Recipient != "" {
		l.add("to", st.Normal)
		l.space()
		l.add(it.Recipient, st.MessageAuthor)
	} else {
		l.add("from", st.Normal)
		l.space()
		l.add(it.Author, st.MessageAuthor)
	}
	l.space()
	l.add("sent "+it.CreatedLong, st.Created)
	if it.Subreddit != "" {
		l.space()
		l.add("via /r/"+it.Subreddit, st.MessageSubreddit)
	}
	lines = append(lines, cur+l.String())

	for _, t := range it.BodyLines {
		l := newLine(width)
		l.add(t, st.MessageText)
		lines = append(lines, cur+l.String())
	}
	return lines
}

func (m *Model) handleInboxKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Select):
		it := m.selectedItem()
		if it == nil || !it.WasComment || it.Context == "" {
			return m.flash(), true
		}
		permalink, opts := contextOptions(it.Context)
		return m.openSubmissionWith(permalink, opts, true), true

	case key.Matches(msg, keys.Open):
		it := m.selectedItem()
		if it == nil || !it.WasComment || it.Context == "" {
			return m.flash(), true
		}
		return m.openSubmissionCmd(threadPermalink(it.Context), "", true), true

	case key.Matches(msg, keys.Reply):
		return m.replyCmd(m.selectedItem()), true

	case key.Matches(msg, keys.Save):
		return m.readToggleCmd(m.selectedItem()), true
	}

	if i := m.sortIndex(msg); i >= 0 && i < len(inboxOrders) {
		return m.loadInboxCmd(inboxOrders[i], false), true
	}
	return nil, false
}

func (m *Model) readToggleCmd(it *content.Item) tea.Cmd {
	if it == nil || it.Type != content.ItemMessage {
		return m.flash()
	}
	if it.New {
		return m.actionCmd("Marked as read", func() error {
			return m.client.MarkRead(m.ctx, it.Fullname)
		}, func() { it.New = false })
	}
	return m.actionCmd("Marked as unread", func() error {
		return m.client.MarkUnread(m.ctx, it.Fullname)
	}, func() { it.New = true })
}

// contextOptions splits a comment reply's context link into the thread
// permalink and the fetch options that focus the replied-to comment
// with its surrounding parents.
func contextOptions(context string) (string, reddit.CommentsOptions) {
	var opts reddit.CommentsOptions
	path := context
	if p, q, ok := strings.Cut(context, "?"); ok {
		path = p
		for _, kv := range strings.Split(q, "&") {
			if v, found := strings.CutPrefix(kv, "context="); found {
				opts.Context, _ = strconv.Atoi(v)
			}
		}
	}
	if parts := splitPermalink(path); len(parts) >= 6 {
		opts.Comment = parts[5]
	}
	return threadPermalink(context), opts
}

// threadPermalink cuts a comment's context link down to its submission.
func threadPermalink(context string) string {
	path, _, _ := strings.Cut(context, "?")
	if parts := splitPermalink(path); len(parts) >= 5 {
		return "/" + strings.Join(parts[:5], "/") + "/"
	}
	return path
}

func splitPermalink(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 4 && parts[0] == "r" && parts[2] == "comments" {
		return parts
	}
	return nil
}
