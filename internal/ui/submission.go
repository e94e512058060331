package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seaward/perch/internal/content"
)

// renderSubmissionHeader draws the post at the top of a comment page:
// a bordered box with the title, byline, link, selftext, and score row.
// Selftext that cannot fit the window is cut with a notice line.
func (m *Model) renderSubmissionHeader(w window) []string {
	it := w.item
	st := &m.styles
	width := m.width - 3

	body := it.BodyLines
	if overflow := it.Rows - w.rows; overflow > 0 {
		body = clipBody(body, overflow)
	}

	rows := make([]string, 0, it.Rows-2)
	for _, t := range it.TitleLines {
		l := newLine(width)
		l.add(t, st.SubmissionTitle)
		rows = append(rows, " "+l.String())
	}

	l := newLine(width)
	l.add(it.Author, st.SubmissionAuthor)
	if it.Flair != "" {
		l.space()
		l.add(it.Flair, st.SubmissionFlair)
	}
	l.space()
	l.add("/r/"+it.Subreddit, st.SubmissionSubreddit)
	l.space()
	l.add(it.CreatedLong, st.Created)
	rows = append(rows, " "+l.String())

	linkStyle := st.Link
	if m.history.Contains(it.Permalink) {
		linkStyle = st.LinkSeen
	}
	l = newLine(width)
	l.add(it.DisplayURL, linkStyle)
	rows = append(rows, " "+l.String())

	for _, t := range body {
		l := newLine(width)
		l.add(t, st.SubmissionText)
		rows = append(rows, " "+l.String())
	}

	l = newLine(width)
	l.add(it.Score, st.Score)
	l.space()
	l.add(m.glyphs.Arrow(it.Likes), st.Vote(it.Likes))
	l.space()
	l.add(it.Comments, st.CommentCount)
	if it.Gold {
		l.space()
		l.add(m.glyphs.Gold, st.Gold)
	}
	if it.NSFW {
		l.space()
		l.add("NSFW", st.NSFW)
	}
	if it.Saved {
		l.space()
		l.add("[saved]", st.Saved)
	}
	rows = append(rows, " "+l.String())

	return boxLines(rows, m.width, m.glyphs, st.Normal)
}

// renderComment draws one comment: the byline row, then the body,
// behind a nesting-colored gutter bar. A comment alone on the page that
// still cannot fit is cut with a notice line.
func (m *Model) renderComment(w window, nWindows int, selected bool) []string {
	it := w.item
	st := &m.styles

	body := it.BodyLines
	if it.Rows > w.rows && !w.inverted && nWindows == 1 {
		body = clipBody(body, it.Rows-w.rows)
	}

	indent := strings.Repeat(" ", it.Offset)
	bar := gutter(st.CursorBar(it.Level), m.glyphs.VLine, selected)
	width := m.width - it.Offset - 1
	lines := make([]string, 0, len(body)+1)

	l := newLine(width)
	if it.IsAuthor {
		l.add(it.Author+" [S]", st.CommentAuthorSelf)
	} else {
		l.add(it.Author, st.CommentAuthor)
	}
	if it.Flair != "" {
		l.space()
		l.add(it.Flair, st.UserFlair)
	}
	l.space()
	l.add(m.glyphs.Arrow(it.Likes), st.Vote(it.Likes))
	l.space()
	l.add(it.Score, st.Score)
	l.space()
	l.add(it.Created, st.Created)
	if it.Gold {
		l.space()
		l.add(m.glyphs.Gold, st.Gold)
	}
	if it.Stickied {
		l.space()
		l.add("[stickied]", st.Stickied)
	}
	if it.Saved {
		l.space()
		l.add("[saved]", st.Saved)
	}
	lines = append(lines, indent+bar+l.String())

	for _, t := range body {
		l := newLine(width)
		l.add(t, st.CommentText)
		lines = append(lines, indent+bar+l.String())
	}
	return lines
}

// renderStub draws a folded-subtree or unloaded-children row.
func (m *Model) renderStub(it *content.Item, selected bool) []string {
	st := &m.styles
	indent := strings.Repeat(" ", it.Offset)
	bar := gutter(st.CursorBar(it.Level), m.glyphs.VLine, selected)

	l := newLine(m.width - it.Offset - 1)
	l.add("[+]", st.HiddenCommentExpand)
	l.space()
	l.add(it.Body, st.HiddenCommentText)
	l.space()
	l.add(fmt.Sprintf("[%d]", it.Count), st.HiddenCommentExpand)
	return []string{indent + bar + l.String()}
}

// parentMoves counts the upward cursor steps that land on the selected
// comment's parent: one past every preceding item nested at least as
// deep. Zero means there is nowhere to go.
func parentMoves(c content.Content, index, cols int) int {
	if index <= 0 {
		return 0
	}
	it, err := c.Get(index, cols)
	if err != nil {
		return 0
	}
	moves := 0
	for i := index - 1; i >= 0; i-- {
		prev, err := c.Get(i, cols)
		if err != nil || prev.Level < it.Level {
			break
		}
		moves++
	}
	return moves + 1
}

// siblingMoves counts the downward cursor steps to the next comment at
// the same nesting level, skipping over the selected item's subtree.
// Zero means there is no following sibling.
func siblingMoves(c content.Content, index, cols int) int {
	if index < 0 {
		return 0
	}
	it, err := c.Get(index, cols)
	if err != nil {
		return 0
	}
	for move := 1; ; move++ {
		next, err := c.Get(index+move, cols)
		if err != nil || next.Level < it.Level {
			return 0
		}
		if next.Level == it.Level {
			return move
		}
	}
}

func (m *Model) handleSubmissionKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	keys := m.keys
	sub, ok := m.page.content.(*content.SubmissionContent)
	if !ok {
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Fold):
		return m.toggleFoldCmd(sub), true

	case key.Matches(msg, keys.Select):
		it := m.selectedItem()
		if it == nil {
			return m.flash(), true
		}
		return pagerCmd(pagerText(it)), true

	case key.Matches(msg, keys.Parent):
		moves := parentMoves(sub, m.page.nav.AbsoluteIndex(), m.width-2)
		if moves == 0 {
			return m.flash(), true
		}
		for i := 0; i < moves; i++ {
			m.page.nav.Move(-1, len(m.windows))
		}
		m.drawContent()
		return nil, true

	case key.Matches(msg, keys.Sibling):
		moves := siblingMoves(sub, m.page.nav.AbsoluteIndex(), m.width-2)
		if moves == 0 {
			return m.flash(), true
		}
		for i := 0; i < moves; i++ {
			m.page.nav.Move(1, len(m.windows))
		}
		m.drawContent()
		return nil, true

	case key.Matches(msg, keys.Upvote):
		return m.voteCmd(m.selectedItem(), 1), true

	case key.Matches(msg, keys.Downvote):
		return m.voteCmd(m.selectedItem(), -1), true

	case key.Matches(msg, keys.Save):
		return m.saveCmd(m.selectedItem()), true

	case key.Matches(msg, keys.Reply):
		return m.replyCmd(m.selectedItem()), true

	case key.Matches(msg, keys.Edit):
		return m.editCmd(m.selectedItem()), true

	case key.Matches(msg, keys.Delete):
		return m.deleteConfirm(m.selectedItem()), true

	case key.Matches(msg, keys.Open):
		return m.flash(), true
	}

	if i := m.sortIndex(msg); i >= 0 && i < len(subredditOrders) {
		return m.applySortCmd(subredditOrders[i]), true
	}
	return nil, false
}

// toggleFoldCmd folds, unfolds, or expands the selected item. Local
// folds apply immediately; expanding an unloaded stub goes through the
// network behind the loader.
func (m *Model) toggleFoldCmd(sub *content.SubmissionContent) tea.Cmd {
	nav := m.page.nav
	index := nav.AbsoluteIndex()
	cols := m.width - 2

	it, err := sub.Get(index, cols)
	if err != nil {
		return m.flash()
	}
	if it.Type == content.ItemMore {
		ctx := m.ctx
		seq, tick := m.startLoader("Loading comments")
		return tea.Batch(tick, func() tea.Msg {
			return toggleDoneMsg{seq: seq, index: index, err: sub.Toggle(ctx, index, cols)}
		})
	}

	if err := sub.Toggle(m.ctx, index, cols); err != nil {
		m.notice = errorNotice(err)
		return nil
	}
	m.foldCursorFix()
	m.drawContent()
	return nil
}

// foldCursorFix keeps the toggled item's row stationary on an inverted
// page: flip back to normal orientation with the selection on top,
// restricted to the height it occupied before the toggle.
func (m *Model) foldCursorFix() {
	nav := m.page.nav
	if !nav.Inverted {
		return
	}
	ci := nav.CursorIndex
	if ci >= len(m.windows) {
		return
	}
	nav.Flip(ci)
	nav.TopItemHeight = m.windows[ci].rows
}

// pagerText is the plain-text form of an item for the external pager.
func pagerText(it *content.Item) string {
	var b strings.Builder
	switch it.Type {
	case content.ItemSubmission:
		b.WriteString(it.Title)
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%s posted %s in /r/%s\n", it.Author, it.CreatedLong, it.Subreddit)
		b.WriteString(it.URL)
		b.WriteString("\n")
		if it.Body != "" {
			b.WriteString("\n")
			b.WriteString(it.Body)
			b.WriteString("\n")
		}
	case content.ItemMessage:
		fmt.Fprintf(&b, "%s from %s, sent %s\n\n", it.Subject, it.Author, it.CreatedLong)
		b.WriteString(it.Body)
		b.WriteString("\n")
	default:
		fmt.Fprintf(&b, "%s - %s, %s\n\n", it.Author, it.Score, it.Created)
		b.WriteString(it.Body)
		b.WriteString("\n")
	}
	return b.String()
}
