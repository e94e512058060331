package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seaward/perch/internal/content"
	"github.com/seaward/perch/internal/reddit"
)

// renderListingRow draws one submission of a listing: numbered title
// lines, the display link, the score line, and the author line, with a
// cursor block down the left edge.
func (m *Model) renderListingRow(it *content.Item, selected bool) []string {
	st := &m.styles
	seen := m.history.Contains(it.Permalink)

	titleStyle := st.SubmissionTitle
	linkStyle := st.Link
	if seen {
		titleStyle = st.SubmissionTitleSeen
		linkStyle = st.LinkSeen
	}

	cur := gutter(st.CursorBlock, " ", selected)
	width := m.width - 1
	lines := make([]string, 0, it.Rows)

	for _, t := range it.TitleLines {
		l := newLine(width)
		l.add(t, titleStyle)
		lines = append(lines, cur+l.String())
	}

	l := newLine(width)
	l.add(it.DisplayURL, linkStyle)
	lines = append(lines, cur+l.String())

	l = newLine(width)
	l.add(it.Score, st.Score)
	l.space()
	l.add(m.glyphs.Arrow(it.Likes), st.Vote(it.Likes))
	l.space()
	l.add(it.Created, st.Created)
	if it.Comments != "" {
		l.space()
		l.add("-", st.Separator)
		l.space()
		l.add(it.Comments, st.CommentCount)
	}
	if it.Saved {
		l.space()
		l.add("[saved]", st.Saved)
	}
	if it.Hidden {
		l.space()
		l.add("[hidden]", st.Hidden)
	}
	if it.Stickied {
		l.space()
		l.add("[stickied]", st.Stickied)
	}
	if it.Gold {
		l.space()
		l.add(m.glyphs.Gold, st.Gold)
	}
	if it.NSFW {
		l.space()
		l.add("NSFW", st.NSFW)
	}
	lines = append(lines, cur+l.String())

	l = newLine(width)
	l.add(it.Author, st.SubmissionAuthor)
	l.space()
	l.add("/r/"+it.Subreddit, st.SubmissionSubreddit)
	if it.Flair != "" {
		l.space()
		l.add(it.Flair, st.SubmissionFlair)
	}
	lines = append(lines, cur+l.String())

	return lines
}

func (m *Model) handleSubredditKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Select):
		it := m.selectedItem()
		if it == nil {
			return m.flash(), true
		}
		m.history.Add(it.Permalink)
		if err := m.history.Save(); err != nil {
			m.notice = errorNotice(err)
		}
		return m.openSubmissionCmd(it.Permalink, "", true), true

	case key.Matches(msg, keys.Search):
		name := m.page.content.Name()
		prompt := fmt.Sprintf("search %s: ", displayName(name))
		m.modal = newPromptModal(prompt, func(query string) tea.Cmd {
			return m.loadSubredditCmd(name, "", query, false)
		})
		return textinput.Blink, true

	case key.Matches(msg, keys.Frontpage):
		if m.page.content.Name() == "/r/front" {
			if m.lastSubreddit == "" {
				return m.flash(), true
			}
			return m.loadSubredditCmd(m.lastSubreddit, "", "", false), true
		}
		m.lastSubreddit = m.page.content.Name()
		return m.loadSubredditCmd("/r/front", "", "", false), true

	case key.Matches(msg, keys.Fold):
		return m.hideCmd(), true

	case key.Matches(msg, keys.Upvote):
		return m.voteCmd(m.selectedItem(), 1), true

	case key.Matches(msg, keys.Downvote):
		return m.voteCmd(m.selectedItem(), -1), true

	case key.Matches(msg, keys.Save):
		return m.saveCmd(m.selectedItem()), true

	case key.Matches(msg, keys.Reply):
		return m.postCmd(), true

	case key.Matches(msg, keys.Open):
		return m.flash(), true
	}

	if i := m.sortIndex(msg); i >= 0 && i < len(subredditOrders) {
		return m.applySortCmd(subredditOrders[i]), true
	}
	return nil, false
}

// applySortCmd changes the listing order. Orders that take a time
// period open the period menu first.
func (m *Model) applySortCmd(order string) tea.Cmd {
	if order == reddit.OrderTop || order == reddit.OrderControversial {
		m.modal = &timeMenuModal{apply: func(period string) tea.Cmd {
			return m.reorderCmd(order + "-" + period)
		}}
		return nil
	}
	return m.reorderCmd(order)
}

// reorderCmd reloads the current page with a new sort order.
func (m *Model) reorderCmd(order string) tea.Cmd {
	switch m.page.view {
	case ViewSubmission:
		return m.openSubmissionCmd(m.page.content.Name(), order, false)
	case ViewInbox:
		return m.loadInboxCmd(order, false)
	default:
		return m.loadSubredditCmd(m.page.content.Name(), order, m.page.query, false)
	}
}

// hideCmd toggles the selected submission out of the listing feed.
func (m *Model) hideCmd() tea.Cmd {
	it := m.selectedItem()
	if it == nil || it.Type != content.ItemSubmission {
		return m.flash()
	}
	call := m.client.Hide
	noun := "Hidden"
	if it.Hidden {
		call = m.client.Unhide
		noun = "Unhidden"
	}
	return m.actionCmd(noun, func() error {
		return call(m.ctx, it.Fullname)
	}, func() {
		it.Hidden = !it.Hidden
	})
}

// postCmd opens the editor on a new-submission template. Only a plain
// single subreddit can take a post; front, user pages, domains, merges
// and multireddits cannot.
func (m *Model) postCmd() tea.Cmd {
	name := m.page.content.Name()
	sub, ok := strings.CutPrefix(name, "/r/")
	if !ok || sub == "front" || strings.ContainsAny(sub, "/+") {
		m.notice = errorNotice(fmt.Errorf("cannot post to %s", displayName(name)))
		return nil
	}
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	return editorCmd(execPost, sub, fmt.Sprintf(postTemplate, "/r/"+sub))
}
