package content

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seaward/perch/internal/reddit"
)

// InboxLister is the slice of the API client the inbox view consumes.
type InboxLister interface {
	Inbox(ctx context.Context, where, after string, limit int) ([]reddit.Message, string, error)
}

var _ InboxLister = (*reddit.Client)(nil)

// inboxWheres maps the sort banner's order names to inbox endpoints.
var inboxWheres = map[string]string{
	"all":      "inbox",
	"unread":   "unread",
	"messages": "messages",
	"comments": "comments",
	"posts":    "selfreply",
	"mentions": "mentions",
	"sent":     "sent",
}

// InboxContent lists private messages and comment replies. Extend may
// run on a background goroutine while the UI keeps calling Get; the
// mutex is never held across a network call and the UI serializes
// Extend calls.
type InboxContent struct {
	order  string
	client InboxLister
	where  string

	mu        sync.Mutex
	after     string
	items     []*Item
	exhausted bool

	now func() time.Time
}

// NewInbox builds an inbox listing for the given order (empty for all).
func NewInbox(ctx context.Context, client InboxLister, order string) (*InboxContent, error) {
	if order == "" {
		order = "all"
	}
	where, ok := inboxWheres[order]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	c := &InboxContent{order: order, client: client, where: where, now: time.Now}
	if err := c.Extend(ctx, 0); err != nil {
		return nil, err
	}
	if len(c.items) == 0 {
		return nil, ErrNoMessages
	}
	return c, nil
}

// Name returns the page title.
func (c *InboxContent) Name() string { return "My Inbox" }

// Order returns the inbox view in effect: all, unread, messages,
// comments, posts, mentions, or sent.
func (c *InboxContent) Order() string { return c.order }

// Len returns the number of loaded rows.
func (c *InboxContent) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Exhausted reports whether the source has no more pages.
func (c *InboxContent) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exhausted
}

// Extend pulls pages until index upTo is loaded or the inbox runs dry.
func (c *InboxContent) Extend(ctx context.Context, upTo int) error {
	for {
		c.mu.Lock()
		loaded, done := len(c.items), c.exhausted
		after := c.after
		c.mu.Unlock()
		if upTo < loaded || done {
			return nil
		}

		messages, next, err := c.client.Inbox(ctx, c.where, after, 0)
		if err != nil {
			return err
		}

		c.mu.Lock()
		if next == "" || len(messages) == 0 {
			c.exhausted = true
		}
		c.after = next
		now := c.now()
		for i := range messages {
			item := messageItem(&messages[i], now)
			item.Index = len(c.items)
			c.items = append(c.items, item)
		}
		c.mu.Unlock()

		if len(messages) == 0 {
			return nil
		}
	}
}

// Get returns the message at index, body wrapped for cols.
func (c *InboxContent) Get(index, cols int) (*Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return nil, ErrIndexOut
	}
	item := c.items[index]
	item.BodyLines = WrapText(item.Body, cols)
	item.Rows = len(item.BodyLines) + 2
	item.Offset = 0
	return item, nil
}
