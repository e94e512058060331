package content

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/seaward/perch/internal/reddit"
)

// Lister is the slice of the API client the listing contents consume.
type Lister interface {
	Authenticated() bool
	Me(ctx context.Context) (*reddit.Account, error)
	Listing(ctx context.Context, q reddit.ListingQuery, after string, limit int) (reddit.Page, error)
}

var _ Lister = (*reddit.Client)(nil)

// ListingSource pulls successive pages of submissions.
type ListingSource interface {
	// NextPage returns the next page, empty once the listing runs dry.
	NextPage(ctx context.Context) ([]reddit.Submission, error)
	// Exhausted reports whether every page has been pulled.
	Exhausted() bool
}

// NewListingSource wraps a listing query in an after-cursor pager.
func NewListingSource(client Lister, q reddit.ListingQuery) ListingSource {
	return &listingPager{client: client, query: q}
}

type listingPager struct {
	client Lister
	query  reddit.ListingQuery
	after  string
	done   bool
}

func (p *listingPager) NextPage(ctx context.Context) ([]reddit.Submission, error) {
	if p.done {
		return nil, nil
	}
	page, err := p.client.Listing(ctx, p.query, p.after, 0)
	if err != nil {
		return nil, err
	}
	if page.After == "" || len(page.Submissions) == 0 {
		p.done = true
	}
	p.after = page.After
	return page.Submissions, nil
}

func (p *listingPager) Exhausted() bool { return p.done }

// SubredditContent is a lazily-extended submission listing. Rows are
// pulled from the source page by page as the cursor approaches the end
// of what is loaded.
//
// Extend may run on a background goroutine while the UI keeps calling
// Get; the mutex keeps the row list consistent between the two and is
// never held across a network call. The UI serializes Extend calls, so
// the source itself is only ever touched by one goroutine.
type SubredditContent struct {
	name   string
	order  string
	source ListingSource

	mu        sync.Mutex
	items     []*Item
	exhausted bool

	now func() time.Time
}

// NewSubreddit builds listing content over a source and probes the
// first page so an empty listing fails fast.
func NewSubreddit(ctx context.Context, name, order string, source ListingSource) (*SubredditContent, error) {
	c := &SubredditContent{name: name, order: order, source: source, now: time.Now}
	if err := c.Extend(ctx, 0); err != nil {
		return nil, err
	}
	if len(c.items) == 0 {
		return nil, ErrNoSubmissions
	}
	return c, nil
}

// FromName resolves a typed location to listing content. The name
// grammar accepts plain (possibly +-merged) subreddits with an optional
// /order suffix, front, me, saved, u/<user> paths, u/<user>/m/<multi>
// multireddits, and domain/<host>. A non-empty query searches instead,
// scoped to the named subreddit unless that is front.
func FromName(ctx context.Context, client Lister, name, order, query string) (*SubredditContent, error) {
	name = strings.Trim(name, " /")
	name = strings.TrimPrefix(name, "r/")

	parts := strings.Split(name, "/")
	switch parts[0] {
	case "u", "user":
		return fromUserPath(ctx, client, parts, order)
	case "domain":
		if len(parts) > 1 && parts[1] != "" {
			if err := checkOrder(order); err != nil {
				return nil, err
			}
			q := reddit.DomainQuery(parts[1], order)
			return NewSubreddit(ctx, "/domain/"+parts[1], order, NewListingSource(client, q))
		}
	}

	// A remaining path component is an order spelled into the name,
	// unless an explicit order was already given.
	if len(parts) == 2 && order == "" {
		name, order = parts[0], parts[1]
	} else {
		name = parts[0]
	}
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	display := "/r/" + name

	switch {
	case name == "me":
		account, err := requireAccount(ctx, client)
		if err != nil {
			return nil, err
		}
		q := reddit.UserQuery(account.Name, "submitted", order)
		return NewSubreddit(ctx, "/u/me", order, NewListingSource(client, q))

	case name == "saved":
		account, err := requireAccount(ctx, client)
		if err != nil {
			return nil, err
		}
		q := reddit.UserQuery(account.Name, "saved", order)
		return NewSubreddit(ctx, "/u/saved", order, NewListingSource(client, q))

	case query != "":
		subreddit := name
		if name == "front" {
			subreddit = ""
		}
		q := reddit.SearchQuery(subreddit, query, order)
		return NewSubreddit(ctx, display, order, NewListingSource(client, q))

	case name == "front":
		q := reddit.FrontpageQuery(order)
		return NewSubreddit(ctx, "/r/front", order, NewListingSource(client, q))

	default:
		q := reddit.SubredditQuery(name, order)
		return NewSubreddit(ctx, display, order, NewListingSource(client, q))
	}
}

// fromUserPath handles u/<user>, u/<user>/<where> and u/<user>/m/<multi>.
func fromUserPath(ctx context.Context, client Lister, parts []string, order string) (*SubredditContent, error) {
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, strings.Join(parts, "/"))
	}
	if err := checkOrder(order); err != nil {
		return nil, err
	}

	user, display := parts[1], parts[1]
	if user == "me" {
		account, err := requireAccount(ctx, client)
		if err != nil {
			return nil, err
		}
		user = account.Name
	}

	if len(parts) >= 4 && parts[2] == "m" {
		q := reddit.MultiredditQuery(user, parts[3], order)
		name := "/u/" + display + "/m/" + parts[3]
		return NewSubreddit(ctx, name, order, NewListingSource(client, q))
	}

	where := "submitted"
	if len(parts) >= 3 && parts[2] != "" {
		where = parts[2]
	}
	q := reddit.UserQuery(user, where, order)
	name := "/u/" + display
	if where != "submitted" {
		name += "/" + where
	}
	return NewSubreddit(ctx, name, order, NewListingSource(client, q))
}

func checkOrder(order string) error {
	if order != "" && !reddit.ValidOrder(order) {
		return fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	return nil
}

func requireAccount(ctx context.Context, client Lister) (*reddit.Account, error) {
	if !client.Authenticated() {
		return nil, ErrNotLoggedIn
	}
	return client.Me(ctx)
}

// Name returns the display name, e.g. "/r/golang" or "/u/me".
func (c *SubredditContent) Name() string { return c.name }

// Order returns the sort order in effect, empty for the default.
func (c *SubredditContent) Order() string { return c.order }

// Len returns the number of loaded rows.
func (c *SubredditContent) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Exhausted reports whether the source has no more pages.
func (c *SubredditContent) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exhausted
}

// Extend pulls pages until index upTo is loaded or the source runs dry.
func (c *SubredditContent) Extend(ctx context.Context, upTo int) error {
	for {
		c.mu.Lock()
		loaded, done := len(c.items), c.exhausted
		c.mu.Unlock()
		if upTo < loaded || done {
			return nil
		}

		subs, err := c.source.NextPage(ctx)
		if err != nil {
			return err
		}

		c.mu.Lock()
		now := c.now()
		for i := range subs {
			item := submissionItem(&subs[i], now)
			item.Index = len(c.items)
			item.Title = fmt.Sprintf("%d. %s", item.Index+1, item.Title)
			c.items = append(c.items, item)
		}
		c.exhausted = c.source.Exhausted()
		c.mu.Unlock()

		if len(subs) == 0 {
			return nil
		}
	}
}

// Get returns the loaded submission at index, title wrapped for cols.
// Get never touches the network; use Extend to load further rows.
func (c *SubredditContent) Get(index, cols int) (*Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return nil, ErrIndexOut
	}
	item := c.items[index]
	item.TitleLines = WrapText(item.Title, cols)
	item.Rows = len(item.TitleLines) + 3
	item.Offset = 0
	return item, nil
}
