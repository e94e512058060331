package reddit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c, err := New(Options{
		BaseURL:    serverURL,
		Token:      "tok-123",
		Timeout:    2 * time.Second,
		MaxRetries: 1,
		Backoff:    time.Millisecond,
		MaxBackoff: 2 * time.Millisecond,
		RateLimit:  1000,
		RateBurst:  1000,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestParseBaseURL_Normalizes(t *testing.T) {
	u, err := parseBaseURL("example.test")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.test" {
		t.Fatalf("url = %q, want https://example.test", u.String())
	}

	u, err = parseBaseURL("http://example.test:8080/base/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/base" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("   "); err == nil {
		t.Fatalf("parseBaseURL accepted empty input, want error")
	}
}

func TestClient_SendsAuthAndUserAgent(t *testing.T) {
	t.Parallel()

	var gotAuth, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "tester", "link_karma": 10, "comment_karma": 5}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	account, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if account.Name != "tester" || account.LinkKarma != 10 {
		t.Fatalf("Me = %+v, want tester with 10 link karma", account)
	}
	if gotAuth != "bearer tok-123" {
		t.Fatalf("Authorization = %q, want bearer tok-123", gotAuth)
	}
	if !strings.HasPrefix(gotUA, "perch/") {
		t.Fatalf("User-Agent = %q, want perch/*", gotUA)
	}
}

func TestClient_RetriesServerErrorsOnGet(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "tester"}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me returned error after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("server calls = %d, want 2", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	_, err := c.Me(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Me error = %v, want ErrNotFound", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("server calls = %d, want 1", got)
	}
}

func TestClient_StatusErrorMapping(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/forbidden.json":
			http.Error(w, "no", http.StatusForbidden)
		case "/limited.json":
			http.Error(w, "slow down", http.StatusTooManyRequests)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)

	err := c.get(context.Background(), "/forbidden.json", url.Values{}, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("forbidden error = %v, want ErrForbidden", err)
	}

	err = c.get(context.Background(), "/limited.json", url.Values{}, nil)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("rate limited error = %v, want ErrRateLimited", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("error = %v, want *APIError with status 429", err)
	}
}

func TestClient_VoteEncodesForm(t *testing.T) {
	t.Parallel()

	var gotForm url.Values
	var gotMethod, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	if err := c.Vote(context.Background(), "t3_abc", 1); err != nil {
		t.Fatalf("Vote returned error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("Content-Type = %q, want form encoding", gotContentType)
	}
	if gotForm.Get("id") != "t3_abc" || gotForm.Get("dir") != "1" {
		t.Fatalf("form = %v, want id=t3_abc dir=1", gotForm)
	}

	if err := c.Vote(context.Background(), "t3_abc", 2); err == nil {
		t.Fatalf("Vote accepted direction 2, want error")
	}
}

func TestClient_ReplySurfacesAPIErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"json": {"errors": [["RATELIMIT", "you are doing that too much", "ratelimit"]]}}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	_, err := c.Reply(context.Background(), "t3_abc", "hello")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Reply error = %v, want ErrRateLimited", err)
	}
	if !strings.Contains(err.Error(), "too much") {
		t.Fatalf("Reply error = %q, want the API message included", err.Error())
	}
}

func TestClient_ListingPaginationParams(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kind": "Listing", "data": {"children": [], "after": null}}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	q := SubredditQuery("golang", "top-week")
	page, err := c.Listing(context.Background(), q, "t3_prev", 25)
	if err != nil {
		t.Fatalf("Listing returned error: %v", err)
	}
	if page.After != "" || len(page.Submissions) != 0 {
		t.Fatalf("page = %+v, want empty", page)
	}
	if gotQuery.Get("t") != "week" || gotQuery.Get("after") != "t3_prev" || gotQuery.Get("limit") != "25" {
		t.Fatalf("query = %v, want t=week after=t3_prev limit=25", gotQuery)
	}
}

func TestClient_SubscribeEncodesForm(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	if err := c.Subscribe(context.Background(), "golang"); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if gotPath != "/api/subscribe" {
		t.Fatalf("path = %q, want /api/subscribe", gotPath)
	}
	if gotForm.Get("action") != "sub" || gotForm.Get("sr_name") != "golang" {
		t.Fatalf("form = %v, want action=sub sr_name=golang", gotForm)
	}

	if err := c.Unsubscribe(context.Background(), "golang"); err != nil {
		t.Fatalf("Unsubscribe returned error: %v", err)
	}
	if gotForm.Get("action") != "unsub" {
		t.Fatalf("form = %v, want action=unsub", gotForm)
	}

	if err := c.Subscribe(context.Background(), ""); err == nil {
		t.Fatalf("Subscribe accepted an empty subreddit")
	}
}

func TestClient_ListingCoercesSavedComments(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kind": "Listing", "data": {"children": [
  {"kind": "t3", "data": {"id": "s1", "name": "t3_s1", "title": "A post", "author": "alice",
    "subreddit": "golang", "permalink": "/r/golang/comments/s1/a_post/", "score": 10,
    "created_utc": 1558308399.0}},
  {"kind": "t1", "data": {"id": "c1", "name": "t1_c1", "link_id": "t3_s1",
    "link_title": "A post", "author": "bob", "subreddit": "golang", "body": "saved words",
    "permalink": "/r/golang/comments/s1/a_post/c1/", "score": 7, "likes": false,
    "saved": true, "created_utc": 1558308400.0}}
], "after": null}}`))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	page, err := c.Listing(context.Background(), UserQuery("bob", "saved", ""), "", 0)
	if err != nil {
		t.Fatalf("Listing returned error: %v", err)
	}
	if len(page.Submissions) != 2 {
		t.Fatalf("got %d submissions, want 2", len(page.Submissions))
	}

	got := page.Submissions[1]
	if got.Name != "t1_c1" {
		t.Fatalf("Name = %q, want t1_c1", got.Name)
	}
	if got.Title != "A post" || got.Author != "bob" || got.SelfText != "saved words" {
		t.Fatalf("coerced comment = %+v", got)
	}
	if got.Permalink != "/r/golang/comments/s1/a_post/c1/" {
		t.Fatalf("Permalink = %q, want the comment permalink", got.Permalink)
	}
	if !got.IsSelf || !got.Saved {
		t.Fatalf("IsSelf = %v Saved = %v, want both true", got.IsSelf, got.Saved)
	}
	if got.Likes == nil || *got.Likes {
		t.Fatalf("Likes = %v, want downvote preserved", got.Likes)
	}
}
