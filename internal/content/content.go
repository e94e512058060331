package content

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/seaward/perch/internal/reddit"
)

// ItemType discriminates the renderable units a Content produces.
type ItemType int

const (
	// ItemSubmission is a post: the header of a submission view or one
	// row of a listing view.
	ItemSubmission ItemType = iota
	// ItemComment is a loaded comment in a submission's tree.
	ItemComment
	// ItemMore is an unloaded-children stub that expands on demand.
	ItemMore
	// ItemHidden is a folded comment holding its subtree in a cache.
	ItemHidden
	// ItemSubscription is a subscribed subreddit or multireddit row.
	ItemSubscription
	// ItemMessage is an inbox entry.
	ItemMessage
)

// URLType classifies where a submission's link points.
type URLType int

const (
	// URLSelf marks a text post.
	URLSelf URLType = iota
	// URLCrosspost marks a link back into the same service.
	URLCrosspost
	// URLExternal marks an outbound link.
	URLExternal
)

// Item is one renderable unit. Views read the display fields; action
// handlers read the identity fields and flip the mutable flags (Likes,
// Saved, Hidden) after a successful API call so redraws reflect the new
// state without a refetch.
type Item struct {
	Type ItemType

	// Identity.
	Fullname  string
	Author    string
	Recipient string
	Permalink string
	Subreddit string

	// Submission link.
	URL        string
	DisplayURL string
	URLType    URLType

	// Display.
	Title       string
	Body        string
	Flair       string
	Created     string
	CreatedLong string
	Score       string
	Comments    string
	Subject     string

	// Flags.
	Likes      *bool
	Gold       bool
	NSFW       bool
	Saved      bool
	Hidden     bool
	Stickied   bool
	Archived   bool
	IsAuthor   bool
	New        bool
	WasComment bool

	// Tree shape and pagination.
	Index int
	Level int
	Count int

	// More-comments expansion handles.
	MoreIDs []string

	// Inbox context link.
	Context string

	// Layout, computed by Get for the requested width.
	Offset     int
	Rows       int
	TitleLines []string
	BodyLines  []string

	// Folded subtree, owned by SubmissionContent.
	cache []*Item
}

// Content is a navigable sequence of items. Get is pure: it formats and
// returns the item at index for the given width, or ErrIndexOut when
// the index falls outside the loaded range. Loading more rows is an
// explicit, separate step (see Extend on the listing types) so that
// cursor movement never blocks on the network.
type Content interface {
	Name() string
	Order() string
	Get(index, cols int) (*Item, error)
}

// Extender is implemented by contents that load lazily.
type Extender interface {
	// Extend loads rows until index upTo exists or the source is
	// exhausted.
	Extend(ctx context.Context, upTo int) error
	// Exhausted reports whether every row has been loaded.
	Exhausted() bool
	// Len returns the number of loaded rows.
	Len() int
}

// MinIndex returns the smallest valid index for a content: -1 for
// submission views (the post header), 0 otherwise.
func MinIndex(c Content) int {
	if _, ok := c.(*SubmissionContent); ok {
		return -1
	}
	return 0
}

// Iterate walks items starting at index, stepping by step, and calls fn
// for each until fn returns false or the loaded range ends. Stepping
// backward stops before the post header so an inverted draw never
// repeats it.
func Iterate(c Content, index, step, cols int, fn func(*Item) bool) {
	for {
		if step < 0 && index < 0 {
			return
		}
		item, err := c.Get(index, cols)
		if err != nil {
			return
		}
		if !fn(item) {
			return
		}
		index += step
	}
}

var crosspostPattern = regexp.MustCompile(`https?://(www\.)?(np\.)?redd(it\.com|\.it)/r/.*`)

// submissionItem converts a wire submission into a display item.
func submissionItem(s *reddit.Submission, now time.Time) *Item {
	item := &Item{
		Type:        ItemSubmission,
		Fullname:    s.Fullname(),
		Author:      authorOrDeleted(s.Author),
		Permalink:   s.Permalink,
		Subreddit:   s.Subreddit,
		URL:         s.URL,
		Title:       CleanTitle(s.Title),
		Body:        s.SelfText,
		Flair:       formatFlair(s.LinkFlair),
		Created:     HumanizeTimestamp(s.Created.Time, now, false),
		CreatedLong: HumanizeTimestamp(s.Created.Time, now, true),
		Score:       FormatScore(s.Score, s.HideScore),
		Comments:    FormatCount(s.NumComments, "comment"),
		Likes:       s.Likes,
		Gold:        s.Gilded > 0,
		NSFW:        s.NSFW,
		Saved:       s.Saved,
		Hidden:      s.Hidden,
		Stickied:    s.Stickied,
		Archived:    s.Archived,
		Index:       -1,
	}

	switch {
	case s.IsSelf || sameThread(s.URL, s.Permalink):
		item.URLType = URLSelf
		item.DisplayURL = "self." + s.Subreddit
	case crosspostPattern.MatchString(s.URL):
		item.URLType = URLCrosspost
		item.DisplayURL = "self." + crosspostSubreddit(s.URL)
	default:
		item.URLType = URLExternal
		item.DisplayURL = s.URL
	}
	return item
}

// commentItem converts a wire comment into a display item.
func commentItem(c *reddit.Comment, submissionAuthor string, level int, now time.Time) *Item {
	author := authorOrDeleted(c.Author)
	return &Item{
		Type:      ItemComment,
		Fullname:  c.Fullname(),
		Author:    author,
		Permalink: c.Permalink,
		Body:      c.Body,
		Flair:     c.AuthorFlair,
		Created:   HumanizeTimestamp(c.Created.Time, now, false),
		Score:     FormatScore(c.Score, c.ScoreHidden),
		Likes:     c.Likes,
		Gold:      c.Gilded > 0,
		Saved:     c.Saved,
		Stickied:  c.Stickied,
		IsAuthor:  author != deletedAuthor && author == submissionAuthor,
		Level:     level,
		Count:     1,
	}
}

// moreItem converts an unloaded-children stub into a display item.
func moreItem(m *reddit.More, level int) *Item {
	return &Item{
		Type:     ItemMore,
		Fullname: m.Name,
		Body:     "More comments",
		Level:    level,
		Count:    m.Count,
		MoreIDs:  append([]string(nil), m.Children...),
	}
}

// subscriptionItem converts a subscribed subreddit into a display item.
// Title carries the location the row opens; Body the descriptive title.
func subscriptionItem(s *reddit.Subreddit) *Item {
	return &Item{
		Type:      ItemSubscription,
		Fullname:  s.Name,
		Subreddit: s.DisplayName,
		Title:     "/r/" + s.DisplayName,
		Body:      s.Title,
		NSFW:      s.NSFW,
	}
}

// multiredditItem converts a curated multireddit into a display item.
func multiredditItem(m *reddit.Multireddit) *Item {
	title := m.Path
	if title == "" {
		title = "/u/me/m/" + m.Name
	}
	return &Item{
		Type:     ItemSubscription,
		Fullname: m.Name,
		Title:    title,
		Body:     m.DisplayName,
	}
}

// messageItem converts an inbox entry into a display item. Title holds
// the parent link's title for comment replies.
func messageItem(m *reddit.Message, now time.Time) *Item {
	return &Item{
		Type:        ItemMessage,
		Fullname:    m.Fullname(),
		Author:      authorOrDeleted(m.Author),
		Recipient:   m.Dest,
		Subreddit:   m.Subreddit,
		Subject:     m.Subject,
		Title:       m.LinkTitle,
		Body:        m.Body,
		Context:     m.Context,
		Created:     HumanizeTimestamp(m.Created.Time, now, false),
		CreatedLong: HumanizeTimestamp(m.Created.Time, now, true),
		New:         m.New,
		WasComment:  m.WasComment,
	}
}

const deletedAuthor = "[deleted]"

func authorOrDeleted(author string) string {
	if strings.TrimSpace(author) == "" {
		return deletedAuthor
	}
	return author
}

func formatFlair(flair string) string {
	trimmed := strings.Trim(strings.TrimSpace(flair), "[]")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return ""
	}
	return "[" + trimmed + "]"
}

// sameThread reports whether a submission's link points at its own
// comment thread, which marks it as a text post.
func sameThread(url, permalink string) bool {
	if url == "" || permalink == "" {
		return false
	}
	return tailAfter(url, "/r/") == tailAfter(permalink, "/r/")
}

func tailAfter(s, sep string) string {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[i+len(sep):]
	}
	return s
}

// crosspostSubreddit extracts the subreddit name from a link into the
// service ("https://host/r/name/...").
func crosspostSubreddit(url string) string {
	rest := tailAfter(url, "/r/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}
