package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Submission orderings accepted by the listing endpoints.
const (
	OrderHot           = "hot"
	OrderTop           = "top"
	OrderRising        = "rising"
	OrderNew           = "new"
	OrderControversial = "controversial"
)

// Page is one page of a submission listing. After resumes pagination;
// it is empty once the listing is exhausted.
type Page struct {
	Submissions []Submission
	After       string
}

// ListingQuery addresses one remote listing: a path plus fixed query
// parameters. Pagination parameters are appended per request.
type ListingQuery struct {
	Path   string
	Params url.Values
}

// FrontpageQuery addresses the authenticated front page (or the public
// one when unauthenticated).
func FrontpageQuery(order string) ListingQuery {
	if order == "" {
		order = OrderHot
	}
	order, period := SplitOrder(order)
	q := ListingQuery{Path: "/" + order + ".json", Params: url.Values{}}
	if period != "" {
		q.Params.Set("t", period)
	}
	return q
}

// SubredditQuery addresses a subreddit listing. The name may be a
// +-joined merge of several subreddits.
func SubredditQuery(name, order string) ListingQuery {
	if order == "" {
		order = OrderHot
	}
	order, period := SplitOrder(order)
	q := ListingQuery{
		Path:   "/r/" + name + "/" + order + ".json",
		Params: url.Values{},
	}
	if period != "" {
		q.Params.Set("t", period)
	}
	return q
}

// UserQuery addresses a user listing: where is one of submitted, saved,
// hidden, upvoted, downvoted, comments, overview.
func UserQuery(user, where, order string) ListingQuery {
	q := ListingQuery{
		Path:   "/user/" + user + "/" + where + ".json",
		Params: url.Values{},
	}
	if order != "" {
		o, period := SplitOrder(order)
		q.Params.Set("sort", o)
		if period != "" {
			q.Params.Set("t", period)
		}
	}
	return q
}

// SearchQuery addresses a search within a subreddit, or site-wide when
// the subreddit is empty.
func SearchQuery(subreddit, query, sort string) ListingQuery {
	params := url.Values{}
	params.Set("q", query)
	path := "/search.json"
	if subreddit != "" {
		path = "/r/" + subreddit + "/search.json"
		params.Set("restrict_sr", "on")
	}
	if sort != "" {
		s, period := SplitOrder(sort)
		params.Set("sort", s)
		if period != "" {
			params.Set("t", period)
		}
	}
	return ListingQuery{Path: path, Params: params}
}

// DomainQuery addresses submissions linking to the given domain.
func DomainQuery(domain, order string) ListingQuery {
	if order == "" {
		order = OrderHot
	}
	order, period := SplitOrder(order)
	q := ListingQuery{
		Path:   "/domain/" + domain + "/" + order + ".json",
		Params: url.Values{},
	}
	if period != "" {
		q.Params.Set("t", period)
	}
	return q
}

// MultiredditQuery addresses a user's curated multireddit.
func MultiredditQuery(user, multi, order string) ListingQuery {
	if order == "" {
		order = OrderHot
	}
	order, period := SplitOrder(order)
	q := ListingQuery{
		Path:   "/user/" + user + "/m/" + multi + "/" + order + ".json",
		Params: url.Values{},
	}
	if period != "" {
		q.Params.Set("t", period)
	}
	return q
}

// SplitOrder splits a combined "top-week" style order into its base
// order and time period. Plain orders pass through with no period.
func SplitOrder(order string) (base, period string) {
	if i := strings.IndexByte(order, '-'); i >= 0 {
		return order[:i], order[i+1:]
	}
	return order, ""
}

// ValidOrder reports whether an order (with optional -period suffix) is
// one the listing endpoints accept.
func ValidOrder(order string) bool {
	if order == "" {
		return true
	}
	base, period := SplitOrder(order)
	switch base {
	case OrderHot, OrderRising, OrderNew:
		return period == ""
	case OrderTop, OrderControversial:
	default:
		return false
	}
	switch period {
	case "", "hour", "day", "week", "month", "year", "all":
		return true
	}
	return false
}

// Listing fetches one page of submissions for the given query. Saved,
// overview and comment listings interleave t1 things; those are coerced
// into submissions whose permalink points at the comment, so selecting
// one opens the thread focused there.
func (c *Client) Listing(ctx context.Context, q ListingQuery, after string, limit int) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if limit <= 0 || limit > maxListingLimit {
		limit = maxListingLimit
	}
	params := url.Values{}
	for k, vs := range q.Params {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("raw_json", "1")
	if after != "" {
		params.Set("after", after)
	}

	var raw json.RawMessage
	if err := c.get(ctx, q.Path, params, &raw); err != nil {
		return Page{}, err
	}
	l, err := unwrapListing(raw)
	if err != nil {
		return Page{}, fmt.Errorf("listing %s: %w", q.Path, err)
	}

	page := Page{After: l.After}
	for _, t := range l.Children {
		switch t.Kind {
		case KindSubmission:
			var s Submission
			if err := json.Unmarshal(t.Data, &s); err != nil {
				return Page{}, fmt.Errorf("listing %s: decode submission: %w", q.Path, err)
			}
			page.Submissions = append(page.Submissions, s)
		case KindComment:
			var cm Comment
			if err := json.Unmarshal(t.Data, &cm); err != nil {
				return Page{}, fmt.Errorf("listing %s: decode comment: %w", q.Path, err)
			}
			page.Submissions = append(page.Submissions, submissionFromComment(cm))
		default:
			c.log.Debug().Str("kind", t.Kind).Str("path", q.Path).Msg("skipping unrenderable listing child")
		}
	}
	return page, nil
}

// submissionFromComment wraps a listing comment in a submission shell.
// The fullname stays t1 so votes and saves land on the comment itself.
func submissionFromComment(c Comment) Submission {
	return Submission{
		ID:        c.ID,
		Name:      c.Fullname(),
		Title:     c.LinkTitle,
		Author:    c.Author,
		Subreddit: c.Subreddit,
		SelfText:  c.Body,
		Permalink: c.Permalink,
		Score:     c.Score,
		HideScore: c.ScoreHidden,
		Likes:     c.Likes,
		Created:   c.Created,
		Edited:    c.Edited,
		Saved:     c.Saved,
		Gilded:    c.Gilded,
		Stickied:  c.Stickied,
		IsSelf:    true,
	}
}

// Subscriptions fetches one page of the authenticated user's subscribed
// subreddits.
func (c *Client) Subscriptions(ctx context.Context, after string, limit int) ([]Subreddit, string, error) {
	if c == nil {
		return nil, "", fmt.Errorf("client is nil")
	}
	if limit <= 0 || limit > maxListingLimit {
		limit = maxListingLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if after != "" {
		params.Set("after", after)
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/subreddits/mine/subscriber.json", params, &raw); err != nil {
		return nil, "", err
	}
	l, err := unwrapListing(raw)
	if err != nil {
		return nil, "", fmt.Errorf("subscriptions: %w", err)
	}

	subs := make([]Subreddit, 0, len(l.Children))
	for _, t := range l.Children {
		if t.Kind != KindSubreddit {
			continue
		}
		var s Subreddit
		if err := json.Unmarshal(t.Data, &s); err != nil {
			return nil, "", fmt.Errorf("subscriptions: decode subreddit: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, l.After, nil
}

// Multireddits fetches the authenticated user's curated multireddits.
// The endpoint is not paginated.
func (c *Client) Multireddits(ctx context.Context) ([]Multireddit, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var things []thing
	if err := c.get(ctx, "/api/multi/mine", url.Values{}, &things); err != nil {
		return nil, err
	}
	multis := make([]Multireddit, 0, len(things))
	for _, t := range things {
		if t.Kind != KindMulti {
			continue
		}
		var m Multireddit
		if err := json.Unmarshal(t.Data, &m); err != nil {
			return nil, fmt.Errorf("multireddits: decode: %w", err)
		}
		multis = append(multis, m)
	}
	return multis, nil
}

// Inbox fetches one page of the named inbox listing: inbox, unread,
// messages, comments, selfreply, mentions, or sent.
func (c *Client) Inbox(ctx context.Context, where, after string, limit int) ([]Message, string, error) {
	if c == nil {
		return nil, "", fmt.Errorf("client is nil")
	}
	if where == "" {
		where = "inbox"
	}
	if limit <= 0 || limit > maxListingLimit {
		limit = maxListingLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("raw_json", "1")
	if after != "" {
		params.Set("after", after)
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/message/"+where+".json", params, &raw); err != nil {
		return nil, "", err
	}
	l, err := unwrapListing(raw)
	if err != nil {
		return nil, "", fmt.Errorf("inbox %s: %w", where, err)
	}

	msgs := make([]Message, 0, len(l.Children))
	for _, t := range l.Children {
		switch t.Kind {
		case KindMessage, KindComment:
			var m Message
			if err := json.Unmarshal(t.Data, &m); err != nil {
				return nil, "", fmt.Errorf("inbox %s: decode message: %w", where, err)
			}
			if t.Kind == KindComment {
				m.WasComment = true
			}
			msgs = append(msgs, m)
		}
	}
	return msgs, l.After, nil
}

// Me fetches the authenticated user's account details.
func (c *Client) Me(ctx context.Context) (*Account, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var account Account
	if err := c.get(ctx, "/api/v1/me", url.Values{}, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
