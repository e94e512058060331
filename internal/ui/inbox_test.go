package ui

import (
	"testing"
)

func TestThreadPermalink(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"comment context",
			"/r/golang/comments/abc123/generics_question/def456/?context=3",
			"/r/golang/comments/abc123/generics_question/",
		},
		{
			"already a thread",
			"/r/golang/comments/abc123/generics_question/",
			"/r/golang/comments/abc123/generics_question/",
		},
		{
			"no slug",
			"/r/golang/comments/abc123",
			"/r/golang/comments/abc123",
		},
		{
			"not a comments link",
			"/message/messages/xyz",
			"/message/messages/xyz",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := threadPermalink(tc.in); got != tc.want {
				t.Fatalf("threadPermalink(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestContextOptions(t *testing.T) {
	permalink, opts := contextOptions("/r/golang/comments/abc123/slug/def456/?context=3")
	if permalink != "/r/golang/comments/abc123/slug/" {
		t.Fatalf("permalink = %q, want submission thread", permalink)
	}
	if opts.Comment != "def456" {
		t.Fatalf("opts.Comment = %q, want def456", opts.Comment)
	}
	if opts.Context != 3 {
		t.Fatalf("opts.Context = %d, want 3", opts.Context)
	}

	// A bare thread link carries no focus comment.
	permalink, opts = contextOptions("/r/golang/comments/abc123/slug/")
	if permalink != "/r/golang/comments/abc123/slug/" {
		t.Fatalf("permalink = %q, want unchanged", permalink)
	}
	if opts.Comment != "" || opts.Context != 0 {
		t.Fatalf("bare link produced opts %+v, want zero", opts)
	}
}
