package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CommentsOptions tunes a comment-tree fetch.
type CommentsOptions struct {
	Sort    string // hot, top, new, controversial, ...
	Comment string // focus on a single comment id
	Context int    // parents to include when focused
}

// Comments fetches a submission together with its comment forest. The
// endpoint responds with a two-element array: a listing holding the
// submission and a listing holding the top-level comments.
func (c *Client) Comments(ctx context.Context, permalink string, opts CommentsOptions) (*Submission, []CommentNode, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("client is nil")
	}
	path, err := commentsPath(permalink)
	if err != nil {
		return nil, nil, err
	}

	params := url.Values{}
	params.Set("raw_json", "1")
	if opts.Sort != "" {
		params.Set("sort", opts.Sort)
	}
	if opts.Comment != "" {
		params.Set("comment", opts.Comment)
		if opts.Context > 0 {
			params.Set("context", strconv.Itoa(opts.Context))
		}
	}

	var envelopes []json.RawMessage
	if err := c.get(ctx, path, params, &envelopes); err != nil {
		return nil, nil, err
	}
	if len(envelopes) < 2 {
		return nil, nil, fmt.Errorf("comments %s: malformed response (%d listings)", path, len(envelopes))
	}

	subListing, err := unwrapListing(envelopes[0])
	if err != nil {
		return nil, nil, fmt.Errorf("comments %s: %w", path, err)
	}
	if len(subListing.Children) == 0 || subListing.Children[0].Kind != KindSubmission {
		return nil, nil, fmt.Errorf("comments %s: missing submission", path)
	}
	var sub Submission
	if err := json.Unmarshal(subListing.Children[0].Data, &sub); err != nil {
		return nil, nil, fmt.Errorf("comments %s: decode submission: %w", path, err)
	}

	commentListing, err := unwrapListing(envelopes[1])
	if err != nil {
		return nil, nil, fmt.Errorf("comments %s: %w", path, err)
	}
	forest, err := decodeForest(commentListing)
	if err != nil {
		return nil, nil, fmt.Errorf("comments %s: %w", path, err)
	}
	return &sub, forest, nil
}

// MoreChildren resolves a more-comments stub into its comment forest.
// The returned things arrive flat and pre-ordered; nesting is rebuilt
// from parent ids, with unmatched parents treated as roots.
func (c *Client) MoreChildren(ctx context.Context, linkFullname string, ids []string, sort string) ([]CommentNode, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("api_type", "json")
	params.Set("raw_json", "1")
	params.Set("link_id", linkFullname)
	params.Set("children", strings.Join(ids, ","))
	if sort != "" {
		params.Set("sort", sort)
	}

	var resp jsonResponse
	if err := c.get(ctx, "/api/morechildren", params, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, fmt.Errorf("morechildren: %w", err)
	}

	return buildForest(resp.JSON.Data.Things)
}

// buildForest nests a flat, ordered slice of comment things by parent
// fullname. Parents always precede their children in the flat order, so
// walking backwards guarantees each node's subtree is complete before
// the node itself is attached.
func buildForest(things []thing) ([]CommentNode, error) {
	nodes := make([]*CommentNode, 0, len(things))
	parents := make([]string, 0, len(things))
	byName := make(map[string]*CommentNode, len(things))

	for _, t := range things {
		node, ok, err := decodeCommentThing(t)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		n := node
		nodes = append(nodes, &n)
		switch {
		case n.Comment != nil:
			parents = append(parents, n.Comment.ParentID)
			byName[n.Comment.Fullname()] = &n
		case n.More != nil:
			parents = append(parents, n.More.ParentID)
		default:
			parents = append(parents, "")
		}
	}

	var roots []CommentNode
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if parent, ok := byName[parents[i]]; ok && parent != n && parent.Comment != nil {
			parent.Children = append([]CommentNode{*n}, parent.Children...)
			continue
		}
		roots = append([]CommentNode{*n}, roots...)
	}
	return roots, nil
}

// commentsPath normalizes a permalink into the JSON comments endpoint
// path.
func commentsPath(permalink string) (string, error) {
	trimmed := strings.TrimSpace(permalink)
	if trimmed == "" {
		return "", fmt.Errorf("permalink is required")
	}
	if strings.Contains(trimmed, "://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return "", fmt.Errorf("parse permalink %q: %w", permalink, err)
		}
		trimmed = u.Path
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if !strings.HasSuffix(trimmed, ".json") {
		trimmed += ".json"
	}
	return trimmed, nil
}
