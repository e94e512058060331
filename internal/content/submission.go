package content

import (
	"context"
	"sync"
	"time"

	"github.com/seaward/perch/internal/reddit"
)

// SubmissionLoader fetches comment data for a single submission.
type SubmissionLoader interface {
	Comments(ctx context.Context, permalink string, opts reddit.CommentsOptions) (*reddit.Submission, []reddit.CommentNode, error)
	MoreChildren(ctx context.Context, linkFullname string, ids []string, sort string) ([]reddit.CommentNode, error)
}

var _ SubmissionLoader = (*reddit.Client)(nil)

// SubmissionOption adjusts layout parameters at construction.
type SubmissionOption func(*SubmissionContent)

// WithIndent sets the per-level indent width and the nesting level at
// which indentation stops growing.
func WithIndent(size, maxLevel int) SubmissionOption {
	return func(s *SubmissionContent) {
		if size >= 0 {
			s.indentSize = size
		}
		if maxLevel > 0 {
			s.maxIndentLevel = maxLevel
		}
	}
}

// SubmissionContent is one post plus its comment tree, flattened into
// display order. Index -1 addresses the post header; comments start at
// 0. Folding and more-comments expansion splice the flat list in place,
// so indexes shift but relative order is always the tree's preorder.
//
// Toggle may run on a background goroutine while the UI keeps calling
// Get; the mutex keeps the item list consistent between the two. The
// lock is never held across a network call.
type SubmissionContent struct {
	loader SubmissionLoader
	order  string

	mu         sync.Mutex
	submission *Item
	items      []*Item

	indentSize     int
	maxIndentLevel int
	now            func() time.Time
}

// NewSubmission builds content from an already-fetched comment page.
func NewSubmission(sub *reddit.Submission, forest []reddit.CommentNode, loader SubmissionLoader, order string, opts ...SubmissionOption) *SubmissionContent {
	s := &SubmissionContent{
		loader:         loader,
		order:          order,
		indentSize:     2,
		maxIndentLevel: 8,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.submission = submissionItem(sub, s.now())
	s.items = s.flatten(forest, 0)
	return s
}

// LoadSubmission fetches a submission's comment page through the loader
// and builds its content.
func LoadSubmission(ctx context.Context, loader SubmissionLoader, permalink string, fetch reddit.CommentsOptions, opts ...SubmissionOption) (*SubmissionContent, error) {
	sub, forest, err := loader.Comments(ctx, permalink, fetch)
	if err != nil {
		return nil, err
	}
	return NewSubmission(sub, forest, loader, fetch.Sort, opts...), nil
}

// Name returns the submission's permalink.
func (s *SubmissionContent) Name() string { return s.submission.Permalink }

// Order returns the comment sort in effect.
func (s *SubmissionContent) Order() string { return s.order }

// Len returns the number of comment rows (the header is not counted).
func (s *SubmissionContent) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get formats and returns the item at index for the given width.
// Index -1 is the post header. Get never touches the network.
func (s *SubmissionContent) Get(index, cols int) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(index, cols)
}

func (s *SubmissionContent) get(index, cols int) (*Item, error) {
	if index < -1 || index >= len(s.items) {
		return nil, ErrIndexOut
	}

	if index == -1 {
		item := s.submission
		width := max(cols-2, 1)
		item.TitleLines = WrapText(item.Title, width)
		item.BodyLines = WrapText(item.Body, width)
		item.Offset = 0
		item.Rows = len(item.TitleLines) + len(item.BodyLines) + 5
		return item, nil
	}

	item := s.items[index]
	item.Index = index
	item.Offset = min(item.Level, s.maxIndentLevel) * s.indentSize
	if item.Type == ItemComment {
		item.BodyLines = WrapText(item.Body, max(cols-item.Offset, 1))
		item.Rows = len(item.BodyLines) + 1
	} else {
		item.Rows = 1
	}
	return item, nil
}

// Toggle folds a comment, unfolds a folded one, or loads the children
// behind a more stub. Only the stub case reaches the network; when the
// fetch fails the stub stays in place and the error is returned.
func (s *SubmissionContent) Toggle(ctx context.Context, index, cols int) error {
	s.mu.Lock()
	item, err := s.get(index, cols)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	switch item.Type {
	case ItemSubmission:
		// The post header does not fold.
		s.mu.Unlock()

	case ItemComment:
		cache := []*Item{item}
		count := item.Count
		for i := index + 1; i < len(s.items); i++ {
			next, err := s.get(i, cols)
			if err != nil || next.Level <= item.Level {
				break
			}
			count += next.Count
			cache = append(cache, next)
		}
		hidden := &Item{
			Type:   ItemHidden,
			Level:  item.Level,
			Body:   "Hidden",
			Count:  count,
			Hidden: true,
			cache:  cache,
		}
		s.splice(index, len(cache), []*Item{hidden})
		s.mu.Unlock()

	case ItemHidden:
		s.splice(index, 1, item.cache)
		s.mu.Unlock()

	case ItemMore:
		link := s.submission.Fullname
		ids := item.MoreIDs
		s.mu.Unlock()

		nodes, err := s.loader.MoreChildren(ctx, link, ids, s.order)
		if err != nil {
			return err
		}

		// The list may have been folded while the fetch was in
		// flight, so find the stub again before splicing it out. A
		// stub folded away into a hidden cache stays unexpanded.
		s.mu.Lock()
		for i, it := range s.items {
			if it == item {
				s.splice(i, 1, s.flatten(nodes, item.Level))
				break
			}
		}
		s.mu.Unlock()
	}
	return nil
}

func (s *SubmissionContent) splice(index, n int, repl []*Item) {
	items := make([]*Item, 0, len(s.items)-n+len(repl))
	items = append(items, s.items[:index]...)
	items = append(items, repl...)
	items = append(items, s.items[index+n:]...)
	s.items = items
}

type flatNode struct {
	node  *reddit.CommentNode
	level int
}

// flatten walks a comment forest in preorder, stamping each item with
// its nesting level. Children go to the front of the work list so a
// node's subtree is emitted before its next sibling.
func (s *SubmissionContent) flatten(nodes []reddit.CommentNode, rootLevel int) []*Item {
	now := s.now()
	stack := make([]flatNode, 0, len(nodes))
	for i := range nodes {
		stack = append(stack, flatNode{&nodes[i], rootLevel})
	}

	var out []*Item
	for len(stack) > 0 {
		fn := stack[0]
		stack = stack[1:]
		if n := len(fn.node.Children); n > 0 {
			children := make([]flatNode, 0, n+len(stack))
			for i := range fn.node.Children {
				children = append(children, flatNode{&fn.node.Children[i], fn.level + 1})
			}
			stack = append(children, stack...)
		}
		if fn.node.More != nil {
			out = append(out, moreItem(fn.node.More, fn.level))
		} else if fn.node.Comment != nil {
			out = append(out, commentItem(fn.node.Comment, s.submission.Author, fn.level, now))
		}
	}
	return out
}
