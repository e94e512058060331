package reddit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const commentsFixture = `[
  {"kind": "Listing", "data": {"children": [
    {"kind": "t3", "data": {
      "id": "sub1", "name": "t3_sub1", "title": "A title",
      "author": "alice", "subreddit": "golang", "selftext": "body",
      "url": "https://example.test/article", "permalink": "/r/golang/comments/sub1/a_title/",
      "score": 42, "num_comments": 3, "created_utc": 1558308399.0,
      "likes": true, "over_18": false, "archived": false
    }}
  ], "after": null}},
  {"kind": "Listing", "data": {"children": [
    {"kind": "t1", "data": {
      "id": "c1", "name": "t1_c1", "parent_id": "t3_sub1", "link_id": "t3_sub1",
      "author": "bob", "body": "first", "score": 5, "created_utc": 1558308400.0,
      "replies": {"kind": "Listing", "data": {"children": [
        {"kind": "t1", "data": {
          "id": "c2", "name": "t1_c2", "parent_id": "t1_c1", "link_id": "t3_sub1",
          "author": "carol", "body": "nested", "score": 2, "created_utc": 1558308401.0,
          "replies": ""
        }},
        {"kind": "more", "data": {"id": "c9", "name": "t1_c9", "parent_id": "t1_c1",
          "count": 7, "children": ["c3", "c4"]}}
      ], "after": null}}
    }},
    {"kind": "t1", "data": {
      "id": "c5", "name": "t1_c5", "parent_id": "t3_sub1", "link_id": "t3_sub1",
      "author": "dave", "body": "second", "score": 1, "created_utc": 1558308402.0,
      "replies": ""
    }},
    {"kind": "more", "data": {"id": "c0", "name": "t1_c0", "parent_id": "t3_sub1",
      "count": 0, "children": []}}
  ], "after": null}}
]`

func TestComments_DecodesNestedForest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/comments/sub1/a_title.json" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("sort") != "top" {
			t.Errorf("sort = %q, want top", r.URL.Query().Get("sort"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(commentsFixture))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	sub, forest, err := c.Comments(context.Background(), "/r/golang/comments/sub1/a_title/", CommentsOptions{Sort: "top"})
	if err != nil {
		t.Fatalf("Comments returned error: %v", err)
	}

	if sub.Title != "A title" || sub.Fullname() != "t3_sub1" {
		t.Fatalf("submission = %+v, want A title / t3_sub1", sub)
	}
	if sub.Likes == nil || !*sub.Likes {
		t.Fatalf("submission likes = %v, want true", sub.Likes)
	}
	if got := sub.Created.UTC().Unix(); got != 1558308399 {
		t.Fatalf("created = %d, want 1558308399", got)
	}

	// Empty more stub is dropped, so the forest has two roots.
	if len(forest) != 2 {
		t.Fatalf("forest roots = %d, want 2", len(forest))
	}
	first := forest[0]
	if first.Comment == nil || first.Comment.Body != "first" {
		t.Fatalf("first root = %+v, want comment 'first'", first)
	}
	if len(first.Children) != 2 {
		t.Fatalf("first root children = %d, want 2", len(first.Children))
	}
	if first.Children[0].Comment == nil || first.Children[0].Comment.Body != "nested" {
		t.Fatalf("nested child = %+v, want comment 'nested'", first.Children[0])
	}
	more := first.Children[1].More
	if more == nil || more.Count != 7 || len(more.Children) != 2 {
		t.Fatalf("more stub = %+v, want count 7 with 2 ids", first.Children[1])
	}
	if forest[1].Comment == nil || forest[1].Comment.Body != "second" {
		t.Fatalf("second root = %+v, want comment 'second'", forest[1])
	}
}

func TestMoreChildren_RebuildsNesting(t *testing.T) {
	t.Parallel()

	fixture := `{"json": {"errors": [], "data": {"things": [
	  {"kind": "t1", "data": {"id": "c3", "name": "t1_c3", "parent_id": "t1_c1",
	    "author": "erin", "body": "child of c1", "replies": ""}},
	  {"kind": "t1", "data": {"id": "c4", "name": "t1_c4", "parent_id": "t1_c3",
	    "author": "frank", "body": "child of c3", "replies": ""}},
	  {"kind": "t1", "data": {"id": "c6", "name": "t1_c6", "parent_id": "t1_missing",
	    "author": "gail", "body": "orphan", "replies": ""}}
	]}}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/morechildren" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("link_id") != "t3_sub1" || q.Get("children") != "c3,c4,c6" {
			t.Errorf("query = %v, want link_id and children encoded", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixture))
	}))
	t.Cleanup(server.Close)

	c := testClient(t, server.URL)
	forest, err := c.MoreChildren(context.Background(), "t3_sub1", []string{"c3", "c4", "c6"}, "")
	if err != nil {
		t.Fatalf("MoreChildren returned error: %v", err)
	}

	if len(forest) != 2 {
		t.Fatalf("forest roots = %d, want 2 (c3 and the orphan)", len(forest))
	}
	if forest[0].Comment.Body != "child of c1" {
		t.Fatalf("first root = %q, want 'child of c1'", forest[0].Comment.Body)
	}
	if len(forest[0].Children) != 1 || forest[0].Children[0].Comment.Body != "child of c3" {
		t.Fatalf("nesting not rebuilt: %+v", forest[0])
	}
	if forest[1].Comment.Body != "orphan" {
		t.Fatalf("second root = %q, want 'orphan'", forest[1].Comment.Body)
	}
}

func TestMoreChildren_EmptyIDsSkipsRequest(t *testing.T) {
	c := testClient(t, "https://unreachable.invalid")
	forest, err := c.MoreChildren(context.Background(), "t3_x", nil, "")
	if err != nil || forest != nil {
		t.Fatalf("MoreChildren = %v, %v, want nil, nil", forest, err)
	}
}

func TestTimestamp_UnmarshalHandlesEditedFalse(t *testing.T) {
	var s Submission
	if err := json.Unmarshal([]byte(`{"id": "x", "edited": false, "created_utc": 100.0}`), &s); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !s.Edited.IsZero() {
		t.Fatalf("edited = %v, want zero", s.Edited)
	}
	if s.Created.Unix() != 100 {
		t.Fatalf("created = %d, want 100", s.Created.Unix())
	}

	if err := json.Unmarshal([]byte(`{"id": "x", "edited": 200.5}`), &s); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if s.Edited.Unix() != 200 {
		t.Fatalf("edited = %d, want 200", s.Edited.Unix())
	}
}

func TestValidOrder(t *testing.T) {
	valid := []string{"", "hot", "top", "rising", "new", "controversial", "top-week", "controversial-all", "top-hour"}
	for _, order := range valid {
		if !ValidOrder(order) {
			t.Errorf("ValidOrder(%q) = false, want true", order)
		}
	}
	invalid := []string{"best-week", "gilded", "hot-week", "top-decade", "rising-day"}
	for _, order := range invalid {
		if ValidOrder(order) {
			t.Errorf("ValidOrder(%q) = true, want false", order)
		}
	}
}
