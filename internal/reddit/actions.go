package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Vote casts a vote on a submission or comment. dir is 1 for an upvote,
// -1 for a downvote, and 0 to clear an existing vote.
func (c *Client) Vote(ctx context.Context, fullname string, dir int) error {
	if dir < -1 || dir > 1 {
		return fmt.Errorf("vote direction %d out of range", dir)
	}
	form := url.Values{}
	form.Set("id", fullname)
	form.Set("dir", strconv.Itoa(dir))
	return c.post(ctx, "/api/vote", form, nil)
}

// Save adds an item to the authenticated user's saved list.
func (c *Client) Save(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/save", fullname)
}

// Unsave removes an item from the saved list.
func (c *Client) Unsave(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/unsave", fullname)
}

// Hide removes a submission from the user's listings.
func (c *Client) Hide(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/hide", fullname)
}

// Unhide restores a hidden submission.
func (c *Client) Unhide(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/unhide", fullname)
}

// Delete removes the authenticated user's own submission or comment.
func (c *Client) Delete(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/del", fullname)
}

// MarkRead flags an inbox item as seen.
func (c *Client) MarkRead(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/read_message", fullname)
}

// MarkUnread restores an inbox item's unread flag.
func (c *Client) MarkUnread(ctx context.Context, fullname string) error {
	return c.idAction(ctx, "/api/unread_message", fullname)
}

func (c *Client) idAction(ctx context.Context, path, fullname string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if fullname == "" {
		return fmt.Errorf("fullname is required")
	}
	form := url.Values{}
	form.Set("id", fullname)
	return c.post(ctx, path, form, nil)
}

// Reply posts a comment under the given parent (a submission, comment,
// or message fullname) and returns the created comment.
func (c *Client) Reply(ctx context.Context, parentFullname, text string) (*Comment, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", parentFullname)
	form.Set("text", text)

	var resp jsonResponse
	if err := c.post(ctx, "/api/comment", form, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, fmt.Errorf("reply: %w", err)
	}
	for _, t := range resp.JSON.Data.Things {
		if t.Kind != KindComment {
			continue
		}
		var created Comment
		if err := json.Unmarshal(t.Data, &created); err != nil {
			return nil, fmt.Errorf("reply: decode created comment: %w", err)
		}
		created.Replies = nil
		return &created, nil
	}
	return nil, nil
}

// Edit replaces the body of the authenticated user's own submission or
// comment.
func (c *Client) Edit(ctx context.Context, fullname, text string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", fullname)
	form.Set("text", text)

	var resp jsonResponse
	if err := c.post(ctx, "/api/editusertext", form, &resp); err != nil {
		return err
	}
	if err := resp.err(); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	return nil
}

// Submit posts a new submission: a self post when url is empty,
// otherwise a link post. It returns the new submission's permalink when
// the service provides one.
func (c *Client) Submit(ctx context.Context, subreddit, title, text, link string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("sr", subreddit)
	form.Set("title", title)
	if link == "" {
		form.Set("kind", "self")
		form.Set("text", text)
	} else {
		form.Set("kind", "link")
		form.Set("url", link)
	}

	var resp jsonResponse
	if err := c.post(ctx, "/api/submit", form, &resp); err != nil {
		return "", err
	}
	if err := resp.err(); err != nil {
		return "", fmt.Errorf("submit: %w", err)
	}
	return resp.JSON.Data.URL, nil
}

// Compose sends a private message.
func (c *Client) Compose(ctx context.Context, to, subject, text string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("text", text)

	var resp jsonResponse
	if err := c.post(ctx, "/api/compose", form, &resp); err != nil {
		return err
	}
	if err := resp.err(); err != nil {
		return fmt.Errorf("compose: %w", err)
	}
	return nil
}

// Subscribe adds a subreddit to the user's subscriptions.
func (c *Client) Subscribe(ctx context.Context, subreddit string) error {
	return c.subscribeAction(ctx, "sub", subreddit)
}

// Unsubscribe removes a subreddit from the user's subscriptions.
func (c *Client) Unsubscribe(ctx context.Context, subreddit string) error {
	return c.subscribeAction(ctx, "unsub", subreddit)
}

func (c *Client) subscribeAction(ctx context.Context, action, subreddit string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if subreddit == "" {
		return fmt.Errorf("subreddit is required")
	}
	form := url.Values{}
	form.Set("action", action)
	form.Set("sr_name", subreddit)
	return c.post(ctx, "/api/subscribe", form, nil)
}
