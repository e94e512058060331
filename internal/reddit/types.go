package reddit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Thing kinds used by the wire format.
const (
	KindComment    = "t1"
	KindAccount    = "t2"
	KindSubmission = "t3"
	KindMessage    = "t4"
	KindSubreddit  = "t5"
	KindMore       = "more"
	KindListing    = "Listing"
	KindMulti      = "LabeledMulti"
)

// thing is the tagged envelope every API object arrives in.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// listing is the paginated container for things.
type listing struct {
	Children []thing `json:"children"`
	After    string  `json:"after"`
	Before   string  `json:"before"`
}

// unwrapListing decodes a raw Listing envelope.
func unwrapListing(raw json.RawMessage) (listing, error) {
	var t thing
	if err := json.Unmarshal(raw, &t); err != nil {
		return listing{}, fmt.Errorf("decode envelope: %w", err)
	}
	if t.Kind != KindListing {
		return listing{}, fmt.Errorf("expected Listing envelope, got %q", t.Kind)
	}
	var l listing
	if err := json.Unmarshal(t.Data, &l); err != nil {
		return listing{}, fmt.Errorf("decode listing: %w", err)
	}
	return l, nil
}

// Timestamp decodes the API's float epoch-second timestamps.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	// Edited timestamps are "false" until the item is edited.
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var sec float64
	if err := json.Unmarshal(data, &sec); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	t.Time = time.Unix(int64(sec), 0).UTC()
	return nil
}

// Submission is a top-level post (t3).
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Subreddit   string    `json:"subreddit"`
	SelfText    string    `json:"selftext"`
	URL         string    `json:"url"`
	Permalink   string    `json:"permalink"`
	Score       int       `json:"score"`
	HideScore   bool      `json:"hide_score"`
	Likes       *bool     `json:"likes"`
	NumComments int       `json:"num_comments"`
	Created     Timestamp `json:"created_utc"`
	Edited      Timestamp `json:"edited"`
	Saved       bool      `json:"saved"`
	Hidden      bool      `json:"hidden"`
	Gilded      int       `json:"gilded"`
	NSFW        bool      `json:"over_18"`
	Stickied    bool      `json:"stickied"`
	Archived    bool      `json:"archived"`
	LinkFlair   string    `json:"link_flair_text"`
	IsSelf      bool      `json:"is_self"`
}

// Fullname returns the globally unique t3_<id> identifier.
func (s *Submission) Fullname() string {
	if s.Name != "" {
		return s.Name
	}
	return KindSubmission + "_" + s.ID
}

// Comment is a reply (t1). Replies holds the raw child listing; the
// field is a bare "" in the wire format when there are none.
type Comment struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ParentID    string          `json:"parent_id"`
	LinkID      string          `json:"link_id"`
	LinkTitle   string          `json:"link_title"` // set in listing responses only
	Author      string          `json:"author"`
	Subreddit   string          `json:"subreddit"`
	Permalink   string          `json:"permalink"`
	Body        string          `json:"body"`
	Score       int             `json:"score"`
	ScoreHidden bool            `json:"score_hidden"`
	Likes       *bool           `json:"likes"`
	Created     Timestamp       `json:"created_utc"`
	Edited      Timestamp       `json:"edited"`
	Saved       bool            `json:"saved"`
	Gilded      int             `json:"gilded"`
	Stickied    bool            `json:"stickied"`
	AuthorFlair string          `json:"author_flair_text"`
	Replies     json.RawMessage `json:"replies"`
}

// Fullname returns the t1_<id> identifier.
func (c *Comment) Fullname() string {
	if c.Name != "" {
		return c.Name
	}
	return KindComment + "_" + c.ID
}

// More is a stub standing in for unloaded children (kind "more").
type More struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ParentID string   `json:"parent_id"`
	Count    int      `json:"count"`
	Depth    int      `json:"depth"`
	Children []string `json:"children"`
}

// CommentNode is one node of a decoded comment forest.
type CommentNode struct {
	Comment  *Comment
	More     *More
	Children []CommentNode
}

// decodeForest turns a listing of t1/more things into a tree slice.
func decodeForest(l listing) ([]CommentNode, error) {
	nodes := make([]CommentNode, 0, len(l.Children))
	for _, t := range l.Children {
		node, ok, err := decodeCommentThing(t)
		if err != nil {
			return nil, err
		}
		if ok {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

func decodeCommentThing(t thing) (CommentNode, bool, error) {
	switch t.Kind {
	case KindComment:
		var c Comment
		if err := json.Unmarshal(t.Data, &c); err != nil {
			return CommentNode{}, false, fmt.Errorf("decode comment: %w", err)
		}
		children, err := decodeReplies(c.Replies)
		if err != nil {
			return CommentNode{}, false, err
		}
		c.Replies = nil
		return CommentNode{Comment: &c, Children: children}, true, nil
	case KindMore:
		var m More
		if err := json.Unmarshal(t.Data, &m); err != nil {
			return CommentNode{}, false, fmt.Errorf("decode more stub: %w", err)
		}
		// Empty stubs carry no loadable children and render nothing.
		if m.Count == 0 && len(m.Children) == 0 {
			return CommentNode{}, false, nil
		}
		return CommentNode{More: &m}, true, nil
	default:
		// Listings can interleave kinds we do not render.
		return CommentNode{}, false, nil
	}
}

// decodeReplies parses a comment's replies field, which is either a
// Listing envelope or the empty string.
func decodeReplies(raw json.RawMessage) ([]CommentNode, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte(`""`)) || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	l, err := unwrapListing(trimmed)
	if err != nil {
		return nil, err
	}
	return decodeForest(l)
}

// Account is the authenticated user's identity (t2).
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LinkKarma    int    `json:"link_karma"`
	CommentKarma int    `json:"comment_karma"`
	InboxCount   int    `json:"inbox_count"`
	HasMail      bool   `json:"has_mail"`
}

// Subreddit describes a community (t5).
type Subreddit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Title       string `json:"title"`
	Description string `json:"public_description"`
	Subscribers int    `json:"subscribers"`
	NSFW        bool   `json:"over18"`
}

// Multireddit is a user-curated collection of subreddits.
type Multireddit struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Path        string           `json:"path"`
	Subreddits  []multiSubreddit `json:"subreddits"`
}

type multiSubreddit struct {
	Name string `json:"name"`
}

// SubredditNames returns the member subreddit names in order.
func (m *Multireddit) SubredditNames() []string {
	names := make([]string, 0, len(m.Subreddits))
	for _, s := range m.Subreddits {
		names = append(names, s.Name)
	}
	return names
}

// Message is an inbox item (t4): a private message or a comment reply
// surfaced in the inbox.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Author     string    `json:"author"`
	Dest       string    `json:"dest"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Context    string    `json:"context"`
	New        bool      `json:"new"`
	WasComment bool      `json:"was_comment"`
	Created    Timestamp `json:"created_utc"`
	Subreddit  string    `json:"subreddit"`
	LinkTitle  string    `json:"link_title"`
}

// Fullname returns the t4_<id> (or t1_<id> for comment replies)
// identifier used by the mark-read endpoints.
func (m *Message) Fullname() string {
	if m.Name != "" {
		return m.Name
	}
	return KindMessage + "_" + m.ID
}
