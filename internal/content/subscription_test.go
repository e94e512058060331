package content

import (
	"context"
	"errors"
	"testing"

	"github.com/seaward/perch/internal/reddit"
)

type fakeSubscriptionLister struct {
	pages  [][]reddit.Subreddit
	afters []string
	multis []reddit.Multireddit

	calls int
}

func (f *fakeSubscriptionLister) Subscriptions(_ context.Context, after string, _ int) ([]reddit.Subreddit, string, error) {
	if f.calls >= len(f.pages) {
		return nil, "", nil
	}
	page, next := f.pages[f.calls], f.afters[f.calls]
	f.calls++
	return page, next, nil
}

func (f *fakeSubscriptionLister) Multireddits(context.Context) ([]reddit.Multireddit, error) {
	return f.multis, nil
}

func TestNewSubscriptions_ListsSubreddits(t *testing.T) {
	f := &fakeSubscriptionLister{
		pages: [][]reddit.Subreddit{
			{
				{Name: "t5_a", DisplayName: "golang", Title: "The Go Programming Language"},
				{Name: "t5_b", DisplayName: "commandline", Title: "Life at the terminal"},
			},
			{
				{Name: "t5_c", DisplayName: "vim", Title: "For vim enthusiasts"},
			},
		},
		afters: []string{"t5_b", ""},
	}

	c, err := NewSubscriptions(context.Background(), f)
	if err != nil {
		t.Fatalf("NewSubscriptions error: %v", err)
	}
	if c.Name() != "Subscriptions" {
		t.Fatalf("Name = %q, want Subscriptions", c.Name())
	}

	item, err := c.Get(0, 80)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if item.Title != "/r/golang" {
		t.Fatalf("Title = %q, want /r/golang", item.Title)
	}
	if item.Rows != len(item.BodyLines)+1 {
		t.Fatalf("Rows = %d, want body lines + 1", item.Rows)
	}

	if err := c.Extend(context.Background(), 2); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	item, err = c.Get(2, 80)
	if err != nil {
		t.Fatalf("Get(2) error: %v", err)
	}
	if item.Title != "/r/vim" {
		t.Fatalf("Title = %q, want /r/vim", item.Title)
	}
	if !c.Exhausted() {
		t.Fatal("content should be exhausted after the final page")
	}
}

func TestNewSubscriptions_EmptyFails(t *testing.T) {
	_, err := NewSubscriptions(context.Background(), &fakeSubscriptionLister{})
	if !errors.Is(err, ErrNoSubscriptions) {
		t.Fatalf("error = %v, want ErrNoSubscriptions", err)
	}
}

func TestNewMultireddits_UsesPath(t *testing.T) {
	f := &fakeSubscriptionLister{
		multis: []reddit.Multireddit{
			{Name: "fav", DisplayName: "Favorites", Path: "/user/alice/m/fav"},
		},
	}

	c, err := NewMultireddits(context.Background(), f)
	if err != nil {
		t.Fatalf("NewMultireddits error: %v", err)
	}
	if c.Name() != "My Multireddits" {
		t.Fatalf("Name = %q, want My Multireddits", c.Name())
	}

	item, err := c.Get(0, 80)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if item.Title != "/user/alice/m/fav" {
		t.Fatalf("Title = %q, want the multireddit path", item.Title)
	}
	if !c.Exhausted() {
		t.Fatal("multireddit listing should load in one page")
	}
}
