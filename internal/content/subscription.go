package content

import (
	"context"
	"sync"

	"github.com/seaward/perch/internal/reddit"
)

// SubscriptionLister is the slice of the API client the subscription
// views consume.
type SubscriptionLister interface {
	Subscriptions(ctx context.Context, after string, limit int) ([]reddit.Subreddit, string, error)
	Multireddits(ctx context.Context) ([]reddit.Multireddit, error)
}

var _ SubscriptionLister = (*reddit.Client)(nil)

type subscriptionSource interface {
	nextPage(ctx context.Context) ([]*Item, error)
	exhausted() bool
}

// SubscriptionContent lists the user's subscribed subreddits or curated
// multireddits. The two differ only in source and display name; the
// page machinery is shared. Extend may run on a background goroutine
// while the UI keeps calling Get; the mutex is never held across a
// network call and the UI serializes Extend calls.
type SubscriptionContent struct {
	name   string
	source subscriptionSource

	mu        sync.Mutex
	items     []*Item
	exhausted bool
}

// NewSubscriptions builds the subscribed-subreddit listing.
func NewSubscriptions(ctx context.Context, client SubscriptionLister) (*SubscriptionContent, error) {
	return newSubscriptionContent(ctx, "Subscriptions", &subredditSubscriptions{client: client})
}

// NewMultireddits builds the curated-multireddit listing.
func NewMultireddits(ctx context.Context, client SubscriptionLister) (*SubscriptionContent, error) {
	return newSubscriptionContent(ctx, "My Multireddits", &multiredditSubscriptions{client: client})
}

func newSubscriptionContent(ctx context.Context, name string, source subscriptionSource) (*SubscriptionContent, error) {
	c := &SubscriptionContent{name: name, source: source}
	if err := c.Extend(ctx, 0); err != nil {
		return nil, err
	}
	if len(c.items) == 0 {
		return nil, ErrNoSubscriptions
	}
	return c, nil
}

// Name returns the page title.
func (c *SubscriptionContent) Name() string { return c.name }

// Order returns the empty string: subscriptions cannot be sorted.
func (c *SubscriptionContent) Order() string { return "" }

// Len returns the number of loaded rows.
func (c *SubscriptionContent) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Exhausted reports whether the source has no more pages.
func (c *SubscriptionContent) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exhausted
}

// Extend pulls pages until index upTo is loaded or the source runs dry.
func (c *SubscriptionContent) Extend(ctx context.Context, upTo int) error {
	for {
		c.mu.Lock()
		loaded, done := len(c.items), c.exhausted
		c.mu.Unlock()
		if upTo < loaded || done {
			return nil
		}

		items, err := c.source.nextPage(ctx)
		if err != nil {
			return err
		}

		c.mu.Lock()
		for _, item := range items {
			item.Index = len(c.items)
			c.items = append(c.items, item)
		}
		c.exhausted = c.source.exhausted()
		c.mu.Unlock()

		if len(items) == 0 {
			return nil
		}
	}
}

// Get returns the subscription row at index, description wrapped for
// cols. The location line itself is never wrapped.
func (c *SubscriptionContent) Get(index, cols int) (*Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return nil, ErrIndexOut
	}
	item := c.items[index]
	item.BodyLines = WrapText(item.Body, cols)
	item.Rows = len(item.BodyLines) + 1
	item.Offset = 0
	return item, nil
}

type subredditSubscriptions struct {
	client SubscriptionLister
	after  string
	done   bool
}

func (s *subredditSubscriptions) nextPage(ctx context.Context) ([]*Item, error) {
	if s.done {
		return nil, nil
	}
	subs, after, err := s.client.Subscriptions(ctx, s.after, 0)
	if err != nil {
		return nil, err
	}
	if after == "" || len(subs) == 0 {
		s.done = true
	}
	s.after = after

	items := make([]*Item, 0, len(subs))
	for i := range subs {
		items = append(items, subscriptionItem(&subs[i]))
	}
	return items, nil
}

func (s *subredditSubscriptions) exhausted() bool { return s.done }

type multiredditSubscriptions struct {
	client SubscriptionLister
	done   bool
}

func (s *multiredditSubscriptions) nextPage(ctx context.Context) ([]*Item, error) {
	if s.done {
		return nil, nil
	}
	s.done = true

	multis, err := s.client.Multireddits(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(multis))
	for i := range multis {
		items = append(items, multiredditItem(&multis[i]))
	}
	return items, nil
}

func (s *multiredditSubscriptions) exhausted() bool { return s.done }
