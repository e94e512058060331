package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seaward/perch/internal/reddit"
)

type fakeInboxLister struct {
	pages  [][]reddit.Message
	afters []string

	calls    int
	gotWhere []string
	gotAfter []string
}

func (f *fakeInboxLister) Inbox(_ context.Context, where, after string, _ int) ([]reddit.Message, string, error) {
	f.gotWhere = append(f.gotWhere, where)
	f.gotAfter = append(f.gotAfter, after)
	if f.calls >= len(f.pages) {
		return nil, "", nil
	}
	page, next := f.pages[f.calls], f.afters[f.calls]
	f.calls++
	return page, next, nil
}

func inboxPage(after string, subjects ...string) ([]reddit.Message, string) {
	msgs := make([]reddit.Message, 0, len(subjects))
	for _, subject := range subjects {
		msgs = append(msgs, reddit.Message{
			ID:      "m_" + subject,
			Name:    "t4_" + subject,
			Author:  "alice",
			Dest:    "bob",
			Subject: subject,
			Body:    "hello there",
		})
	}
	return msgs, after
}

func TestNewInbox_MapsOrders(t *testing.T) {
	cases := []struct {
		order     string
		wantWhere string
	}{
		{"", "inbox"},
		{"all", "inbox"},
		{"unread", "unread"},
		{"messages", "messages"},
		{"comments", "comments"},
		{"posts", "selfreply"},
		{"mentions", "mentions"},
		{"sent", "sent"},
	}
	for _, tc := range cases {
		f := &fakeInboxLister{}
		f.pages = make([][]reddit.Message, 1)
		f.pages[0], _ = inboxPage("", "greetings")
		f.afters = []string{""}

		c, err := NewInbox(context.Background(), f, tc.order)
		if err != nil {
			t.Fatalf("NewInbox(%q) error: %v", tc.order, err)
		}
		if f.gotWhere[0] != tc.wantWhere {
			t.Fatalf("order %q fetched %q, want %q", tc.order, f.gotWhere[0], tc.wantWhere)
		}
		wantOrder := tc.order
		if wantOrder == "" {
			wantOrder = "all"
		}
		if c.Order() != wantOrder {
			t.Fatalf("Order() = %q, want %q", c.Order(), wantOrder)
		}
	}
}

func TestNewInbox_RejectsUnknownOrder(t *testing.T) {
	_, err := NewInbox(context.Background(), &fakeInboxLister{}, "starred")
	if !errors.Is(err, ErrUnknownOrder) {
		t.Fatalf("error = %v, want ErrUnknownOrder", err)
	}
}

func TestNewInbox_EmptyFails(t *testing.T) {
	_, err := NewInbox(context.Background(), &fakeInboxLister{}, "all")
	if !errors.Is(err, ErrNoMessages) {
		t.Fatalf("error = %v, want ErrNoMessages", err)
	}
}

func TestInboxContent_GetShapesMessage(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &fakeInboxLister{
		pages: [][]reddit.Message{{
			{
				Name:       "t1_reply",
				Author:     "alice",
				Dest:       "bob",
				Subject:    "comment reply",
				LinkTitle:  "A very good post",
				Body:       "first line\n\nsecond line",
				Subreddit:  "golang",
				New:        true,
				WasComment: true,
				Created:    reddit.Timestamp{Time: created},
			},
		}},
		afters: []string{""},
	}

	c, err := NewInbox(context.Background(), f, "comments")
	if err != nil {
		t.Fatalf("NewInbox error: %v", err)
	}
	if c.Name() != "My Inbox" {
		t.Fatalf("Name = %q, want My Inbox", c.Name())
	}

	item, err := c.Get(0, 80)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if item.Type != ItemMessage {
		t.Fatalf("Type = %v, want ItemMessage", item.Type)
	}
	if !item.New || !item.WasComment {
		t.Fatalf("New/WasComment = %v/%v, want true/true", item.New, item.WasComment)
	}
	if item.Author != "alice" || item.Recipient != "bob" {
		t.Fatalf("Author/Recipient = %q/%q, want alice/bob", item.Author, item.Recipient)
	}
	if item.Subject != "A very good post" {
		t.Fatalf("Subject = %q, want the link title for comment replies", item.Subject)
	}
	if item.Subreddit != "golang" {
		t.Fatalf("Subreddit = %q, want golang", item.Subreddit)
	}
	if len(item.BodyLines) != 3 {
		t.Fatalf("BodyLines = %v, want 3 lines", item.BodyLines)
	}
	if item.Rows != len(item.BodyLines)+2 {
		t.Fatalf("Rows = %d, want body lines + 2", item.Rows)
	}
}

func TestInboxContent_ExtendFollowsCursor(t *testing.T) {
	f := &fakeInboxLister{}
	f.pages = make([][]reddit.Message, 2)
	f.pages[0], _ = inboxPage("", "one", "two")
	f.pages[1], _ = inboxPage("", "three")
	f.afters = []string{"t4_two", ""}

	c, err := NewInbox(context.Background(), f, "all")
	if err != nil {
		t.Fatalf("NewInbox error: %v", err)
	}

	if _, err := c.Get(2, 80); !errors.Is(err, ErrIndexOut) {
		t.Fatalf("Get past loaded range = %v, want ErrIndexOut", err)
	}
	if err := c.Extend(context.Background(), 2); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if f.gotAfter[1] != "t4_two" {
		t.Fatalf("second fetch after = %q, want t4_two", f.gotAfter[1])
	}
	item, err := c.Get(2, 80)
	if err != nil {
		t.Fatalf("Get(2) error: %v", err)
	}
	if item.Subject != "three" {
		t.Fatalf("Subject = %q, want three", item.Subject)
	}
	if !c.Exhausted() {
		t.Fatal("content should be exhausted once the after cursor runs out")
	}
}
