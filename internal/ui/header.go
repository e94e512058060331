package ui

import (
	"fmt"

	"github.com/seaward/perch/internal/reddit"
	"github.com/seaward/perch/internal/state"
)

// displayName maps internal location names to friendly page titles.
func displayName(name string) string {
	switch name {
	case "/r/front":
		return "Front Page"
	case "/u/me":
		return "My Submissions"
	case "/u/saved":
		return "My Saved Submissions"
	case "/u/me/saved":
		return "My Saved Submissions"
	case "/u/me/hidden":
		return "My Hidden Submissions"
	case "/u/me/upvoted":
		return "My Upvoted Submissions"
	case "/u/me/downvoted":
		return "My Downvoted Submissions"
	}
	return name
}

// headerText lays out the title bar row: the page title on the left and
// the account label on the right, dropped when space runs out.
func headerText(name, query, account string, cols int) string {
	left := displayName(name)
	if query != "" {
		left += ` "` + query + `"`
	}
	left = clip(left, cols)

	if account != "" {
		col := cols - displayWidth(account) - 1
		if col-1 >= displayWidth(left) {
			return padRight(left, col) + account + " "
		}
	}
	return padRight(left, cols)
}

// accountLabel is the right side of the title bar: the signed-in user,
// their karma, a mail glyph while the inbox has unread items, and an
// offline marker when polling keeps failing.
func accountLabel(snap state.Snapshot, mail string) string {
	if snap.Account == nil {
		return ""
	}
	a := snap.Account
	label := fmt.Sprintf("%s (%d/%d)", a.Name, a.LinkKarma, a.CommentKarma)
	if snap.UnreadCount > 0 {
		label = fmt.Sprintf("%s %s%d", label, mail, snap.UnreadCount)
	}
	if snap.IsOffline() {
		label += " (offline)"
	}
	return label
}

// Sort banners

var subredditOrders = []string{
	reddit.OrderHot,
	reddit.OrderTop,
	reddit.OrderRising,
	reddit.OrderNew,
	reddit.OrderControversial,
}

var inboxOrders = []string{
	"all", "unread", "messages", "comments", "posts", "mentions", "sent",
}

// bannerTags prefixes each order with its digit shortcut.
func bannerTags(orders []string) []string {
	items := make([]string, len(orders))
	for i, o := range orders {
		items[i] = fmt.Sprintf("[%d]%s", i+1, o)
	}
	return items
}

// bannerSpacing spreads the banner items across the row, never closer
// than one space.
func bannerSpacing(items []string, cols int) int {
	if len(items) < 2 {
		return 1
	}
	total := 0
	for _, it := range items {
		total += displayWidth(it)
	}
	return maxInt(1, (cols-total-1)/(len(items)-1))
}

// Footers

const (
	footerSubreddit    = "[?]Help [q]Quit [l]Comments [/]Prompt [f]Search [c]Post [a/z]Vote [r]Refresh"
	footerSubmission   = "[?]Help [q]Quit [h]Return [space]Fold [J/K]Jump [c]Comment [a/z]Vote [r]Refresh"
	footerSubscription = "[?]Help [q]Quit [h]Return [l]Select [r]Refresh"
	footerInbox        = "[?]Help [l]View Context [o]Open Submission [c]Reply [w]Mark Read [r]Refresh"
)

func footerText(view View) string {
	switch view {
	case ViewSubmission:
		return footerSubmission
	case ViewSubscription:
		return footerSubscription
	case ViewInbox:
		return footerInbox
	default:
		return footerSubreddit
	}
}
