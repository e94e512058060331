package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/seaward/perch/internal/reddit"
)

type fakeLister struct {
	authed  bool
	account *reddit.Account
	pages   []reddit.Page
	err     error

	calls    int
	gotQuery []reddit.ListingQuery
	gotAfter []string
}

func (f *fakeLister) Authenticated() bool { return f.authed }

func (f *fakeLister) Me(context.Context) (*reddit.Account, error) {
	if f.account == nil {
		return nil, errors.New("no account configured")
	}
	return f.account, nil
}

func (f *fakeLister) Listing(_ context.Context, q reddit.ListingQuery, after string, _ int) (reddit.Page, error) {
	f.gotQuery = append(f.gotQuery, q)
	f.gotAfter = append(f.gotAfter, after)
	if f.err != nil {
		return reddit.Page{}, f.err
	}
	if f.calls >= len(f.pages) {
		return reddit.Page{}, nil
	}
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func listingPage(after string, titles ...string) reddit.Page {
	subs := make([]reddit.Submission, 0, len(titles))
	for _, title := range titles {
		subs = append(subs, reddit.Submission{
			Name:      "t3_" + title,
			Title:     title,
			Author:    "author",
			Subreddit: "golang",
			URL:       "https://example.com/" + title,
			Permalink: "/r/golang/comments/abc/" + title + "/",
		})
	}
	return reddit.Page{Submissions: subs, After: after}
}

func TestFromName_Grammar(t *testing.T) {
	tests := []struct {
		name  string
		order string
		query string

		wantPath    string
		wantDisplay string
		wantParam   [2]string
	}{
		{name: "r/golang", wantPath: "/r/golang/hot.json", wantDisplay: "/r/golang"},
		{name: " /r/golang/ ", wantPath: "/r/golang/hot.json", wantDisplay: "/r/golang"},
		{name: "python/new", wantPath: "/r/python/new.json", wantDisplay: "/r/python"},
		{name: "python/new", order: "top", wantPath: "/r/python/top.json", wantDisplay: "/r/python"},
		{name: "golang", order: "top-week", wantPath: "/r/golang/top.json", wantDisplay: "/r/golang", wantParam: [2]string{"t", "week"}},
		{name: "golang+rust", wantPath: "/r/golang+rust/hot.json", wantDisplay: "/r/golang+rust"},
		{name: "front", wantPath: "/hot.json", wantDisplay: "/r/front"},
		{name: "front", order: "controversial", wantPath: "/controversial.json", wantDisplay: "/r/front"},
		{name: "domain/example.com", wantPath: "/domain/example.com/hot.json", wantDisplay: "/domain/example.com"},
		{name: "u/spez", wantPath: "/user/spez/submitted.json", wantDisplay: "/u/spez"},
		{name: "user/spez/comments", wantPath: "/user/spez/comments.json", wantDisplay: "/u/spez/comments"},
		{name: "u/multi-mod/m/android", wantPath: "/user/multi-mod/m/android/hot.json", wantDisplay: "/u/multi-mod/m/android"},
		{name: "golang", query: "generics", wantPath: "/r/golang/search.json", wantDisplay: "/r/golang", wantParam: [2]string{"restrict_sr", "on"}},
		{name: "front", query: "generics", wantPath: "/search.json", wantDisplay: "/r/front", wantParam: [2]string{"q", "generics"}},
	}

	for _, tt := range tests {
		f := &fakeLister{pages: []reddit.Page{listingPage("", "one")}}
		c, err := FromName(context.Background(), f, tt.name, tt.order, tt.query)
		if err != nil {
			t.Errorf("FromName(%q, %q, %q) error: %v", tt.name, tt.order, tt.query, err)
			continue
		}
		if got := f.gotQuery[0].Path; got != tt.wantPath {
			t.Errorf("FromName(%q) path = %q, want %q", tt.name, got, tt.wantPath)
		}
		if c.Name() != tt.wantDisplay {
			t.Errorf("FromName(%q) display = %q, want %q", tt.name, c.Name(), tt.wantDisplay)
		}
		if tt.wantParam[0] != "" {
			if got := f.gotQuery[0].Params.Get(tt.wantParam[0]); got != tt.wantParam[1] {
				t.Errorf("FromName(%q) param %s = %q, want %q",
					tt.name, tt.wantParam[0], got, tt.wantParam[1])
			}
		}
	}
}

func TestFromName_RejectsUnknownOrder(t *testing.T) {
	f := &fakeLister{pages: []reddit.Page{listingPage("", "one")}}

	for _, tt := range []struct{ name, order string }{
		{"python/bogus", ""},
		{"golang", "sideways"},
		{"front", "top-decade"},
	} {
		_, err := FromName(context.Background(), f, tt.name, tt.order, "")
		if !errors.Is(err, ErrUnknownOrder) {
			t.Errorf("FromName(%q, %q) error = %v, want ErrUnknownOrder", tt.name, tt.order, err)
			continue
		}
		bad := tt.order
		if bad == "" {
			bad = "bogus"
		}
		if !strings.Contains(err.Error(), bad) {
			t.Errorf("error %q does not name the bad order %q", err, bad)
		}
	}
}

func TestFromName_MeAndSavedUseAccountName(t *testing.T) {
	f := &fakeLister{pages: []reddit.Page{listingPage("", "one")}}
	if _, err := FromName(context.Background(), f, "me", "", ""); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("unauthenticated me error = %v, want ErrNotLoggedIn", err)
	}

	f = &fakeLister{
		authed:  true,
		account: &reddit.Account{Name: "alice"},
		pages:   []reddit.Page{listingPage("", "one")},
	}
	c, err := FromName(context.Background(), f, "me", "", "")
	if err != nil {
		t.Fatalf("FromName(me) error: %v", err)
	}
	if got := f.gotQuery[0].Path; got != "/user/alice/submitted.json" {
		t.Fatalf("me path = %q, want /user/alice/submitted.json", got)
	}
	if c.Name() != "/u/me" {
		t.Fatalf("me display = %q, want /u/me", c.Name())
	}

	f = &fakeLister{
		authed:  true,
		account: &reddit.Account{Name: "alice"},
		pages:   []reddit.Page{listingPage("", "one")},
	}
	c, err = FromName(context.Background(), f, "saved", "", "")
	if err != nil {
		t.Fatalf("FromName(saved) error: %v", err)
	}
	if got := f.gotQuery[0].Path; got != "/user/alice/saved.json" {
		t.Fatalf("saved path = %q, want /user/alice/saved.json", got)
	}
	if c.Name() != "/u/saved" {
		t.Fatalf("saved display = %q, want /u/saved", c.Name())
	}
}

func TestSubredditContent_NumbersTitles(t *testing.T) {
	f := &fakeLister{pages: []reddit.Page{listingPage("", "first post", "second post")}}
	c, err := NewSubreddit(context.Background(), "/r/golang", "", NewListingSource(f, reddit.SubredditQuery("golang", "")))
	if err != nil {
		t.Fatalf("NewSubreddit error: %v", err)
	}

	item, err := c.Get(0, 80)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if item.Title != "1. first post" {
		t.Fatalf("title = %q, want numbered", item.Title)
	}
	if item.Rows != len(item.TitleLines)+3 {
		t.Fatalf("Rows = %d, want title lines + 3", item.Rows)
	}

	item, _ = c.Get(1, 80)
	if item.Title != "2. second post" {
		t.Fatalf("second title = %q, want numbered", item.Title)
	}
}

func TestSubredditContent_ExtendPullsPages(t *testing.T) {
	f := &fakeLister{pages: []reddit.Page{
		listingPage("t3_cursor", "one", "two"),
		listingPage("", "three"),
	}}
	c, err := NewSubreddit(context.Background(), "/r/golang", "", NewListingSource(f, reddit.SubredditQuery("golang", "")))
	if err != nil {
		t.Fatalf("NewSubreddit error: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("construction made %d fetches, want 1", f.calls)
	}

	// Get is pure: the third row is not loaded yet.
	if _, err := c.Get(2, 80); !errors.Is(err, ErrIndexOut) {
		t.Fatalf("Get(2) before Extend error = %v, want ErrIndexOut", err)
	}

	if err := c.Extend(context.Background(), 2); err != nil {
		t.Fatalf("Extend error: %v", err)
	}
	if f.gotAfter[1] != "t3_cursor" {
		t.Fatalf("second fetch after = %q, want t3_cursor", f.gotAfter[1])
	}
	item, err := c.Get(2, 80)
	if err != nil {
		t.Fatalf("Get(2) after Extend error: %v", err)
	}
	if item.Title != "3. three" {
		t.Fatalf("title = %q, want numbering to continue across pages", item.Title)
	}
	if !c.Exhausted() {
		t.Fatal("content should be exhausted after the final page")
	}

	// Further extends are free once the source is exhausted.
	if err := c.Extend(context.Background(), 10); err != nil {
		t.Fatalf("Extend past end error: %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("fetch count = %d, want 2", f.calls)
	}
}

func TestNewSubreddit_EmptyListingFails(t *testing.T) {
	f := &fakeLister{}
	_, err := NewSubreddit(context.Background(), "/r/empty", "", NewListingSource(f, reddit.SubredditQuery("empty", "")))
	if !errors.Is(err, ErrNoSubmissions) {
		t.Fatalf("error = %v, want ErrNoSubmissions", err)
	}
}
