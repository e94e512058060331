package ui

import (
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"one cell", "hello", 1, "…"},
		{"zero", "hello", 0, ""},
		{"wide runes", "日本語のテキスト", 7, "日本語…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.width); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	if got := clip("hello world", 5); got != "hello" {
		t.Fatalf("clip = %q, want hello", got)
	}
	if got := clip("hi", 5); got != "hi" {
		t.Fatalf("clip should not pad, got %q", got)
	}
	if got := clip("hi", 0); got != "" {
		t.Fatalf("clip to zero width = %q, want empty", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := displayWidth(padRight("日本", 6)); got != 6 {
		t.Fatalf("padded width = %d, want 6", got)
	}
}
