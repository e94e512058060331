package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Each field holds the color for one display
// element: an ANSI palette index ("4"), a hex value ("#87afd7"), or an
// empty string to inherit the base Foreground. The text attributes of
// each element (bold, reverse, underline) are fixed and applied when
// the styles are built, so a theme only ever chooses colors.
type Theme struct {
	Name string

	// Base colors. Empty means the terminal default.
	Foreground string
	Background string

	// Bars across the top and bottom of the screen.
	TitleBar          string
	OrderBar          string
	OrderBarHighlight string
	HelpBar           string
	Prompt            string

	// Status line notices.
	NoticeInfo    string
	NoticeLoading string
	NoticeError   string
	NoticeSuccess string

	// Cursor column. The bars color comment gutters by nesting depth.
	CursorBlock string
	CursorBar1  string
	CursorBar2  string
	CursorBar3  string
	CursorBar4  string

	// Submission rows.
	SubmissionTitle     string
	SubmissionTitleSeen string
	SubmissionAuthor    string
	SubmissionSubreddit string
	SubmissionFlair     string
	SubmissionText      string
	Link                string
	LinkSeen            string

	// Comment rows.
	CommentAuthor       string
	CommentAuthorSelf   string
	CommentText         string
	CommentCount        string
	HiddenCommentText   string
	HiddenCommentExpand string

	// Markers shared across rows.
	Score       string
	Created     string
	Separator   string
	Upvote      string
	Downvote    string
	NeutralVote string
	Gold        string
	NSFW        string
	Saved       string
	Stickied    string
	Hidden      string
	UserFlair   string

	// Subscription rows.
	SubscriptionName string
	SubscriptionText string
	MultiredditName  string
	MultiredditText  string

	// Inbox rows.
	New              string
	MessageSubject   string
	MessageLink      string
	MessageAuthor    string
	MessageSubreddit string
	MessageText      string
	Distinguished    string
}

// Styles holds the pre-built lipgloss styles for a theme, one per
// display element.
type Styles struct {
	App    lipgloss.Style
	Normal lipgloss.Style

	TitleBar          lipgloss.Style
	OrderBar          lipgloss.Style
	OrderBarHighlight lipgloss.Style
	HelpBar           lipgloss.Style
	Prompt            lipgloss.Style

	NoticeInfo    lipgloss.Style
	NoticeLoading lipgloss.Style
	NoticeError   lipgloss.Style
	NoticeSuccess lipgloss.Style

	CursorBlock lipgloss.Style
	CursorBars  [4]lipgloss.Style

	SubmissionTitle     lipgloss.Style
	SubmissionTitleSeen lipgloss.Style
	SubmissionAuthor    lipgloss.Style
	SubmissionSubreddit lipgloss.Style
	SubmissionFlair     lipgloss.Style
	SubmissionText      lipgloss.Style
	Link                lipgloss.Style
	LinkSeen            lipgloss.Style

	CommentAuthor       lipgloss.Style
	CommentAuthorSelf   lipgloss.Style
	CommentText         lipgloss.Style
	CommentCount        lipgloss.Style
	HiddenCommentText   lipgloss.Style
	HiddenCommentExpand lipgloss.Style

	Score       lipgloss.Style
	Created     lipgloss.Style
	Separator   lipgloss.Style
	Upvote      lipgloss.Style
	Downvote    lipgloss.Style
	NeutralVote lipgloss.Style
	Gold        lipgloss.Style
	NSFW        lipgloss.Style
	Saved       lipgloss.Style
	Stickied    lipgloss.Style
	Hidden      lipgloss.Style
	UserFlair   lipgloss.Style

	SubscriptionName lipgloss.Style
	SubscriptionText lipgloss.Style
	MultiredditName  lipgloss.Style
	MultiredditText  lipgloss.Style

	New              lipgloss.Style
	MessageSubject   lipgloss.Style
	MessageLink      lipgloss.Style
	MessageAuthor    lipgloss.Style
	MessageSubreddit lipgloss.Style
	MessageText      lipgloss.Style
	Distinguished    lipgloss.Style
}

// CursorBar returns the gutter style for a comment nesting level.
func (s *Styles) CursorBar(level int) lipgloss.Style {
	return s.CursorBars[level%len(s.CursorBars)]
}

// Vote returns the arrow style for a vote state.
func (s *Styles) Vote(likes *bool) lipgloss.Style {
	switch {
	case likes == nil:
		return s.NeutralVote
	case *likes:
		return s.Upvote
	default:
		return s.Downvote
	}
}

// Styles builds the lipgloss styles for the theme. Element colors that
// are unset fall back to the base Foreground; attributes are applied
// here so every theme renders with the same shape.
func (t Theme) Styles() Styles {
	fg := func(color string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if color == "" {
			color = t.Foreground
		}
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		if t.Background != "" {
			s = s.Background(lipgloss.Color(t.Background))
		}
		return s
	}

	app := lipgloss.NewStyle()
	if t.Background != "" {
		app = app.Background(lipgloss.Color(t.Background))
	}
	if t.Foreground != "" {
		app = app.Foreground(lipgloss.Color(t.Foreground))
	}

	return Styles{
		App:    app,
		Normal: fg(""),

		TitleBar:          fg(t.TitleBar).Bold(true).Reverse(true),
		OrderBar:          fg(t.OrderBar).Bold(true),
		OrderBarHighlight: fg(t.OrderBarHighlight).Bold(true).Reverse(true),
		HelpBar:           fg(t.HelpBar).Bold(true).Reverse(true),
		Prompt:            fg(t.Prompt).Bold(true).Reverse(true),

		NoticeInfo:    fg(t.NoticeInfo).Bold(true),
		NoticeLoading: fg(t.NoticeLoading).Bold(true),
		NoticeError:   fg(t.NoticeError).Bold(true),
		NoticeSuccess: fg(t.NoticeSuccess).Bold(true),

		CursorBlock: fg(t.CursorBlock),
		CursorBars: [4]lipgloss.Style{
			fg(t.CursorBar1),
			fg(t.CursorBar2),
			fg(t.CursorBar3),
			fg(t.CursorBar4),
		},

		SubmissionTitle:     fg(t.SubmissionTitle).Bold(true),
		SubmissionTitleSeen: fg(t.SubmissionTitleSeen),
		SubmissionAuthor:    fg(t.SubmissionAuthor).Bold(true),
		SubmissionSubreddit: fg(t.SubmissionSubreddit),
		SubmissionFlair:     fg(t.SubmissionFlair),
		SubmissionText:      fg(t.SubmissionText),
		Link:                fg(t.Link).Underline(true),
		LinkSeen:            fg(t.LinkSeen).Underline(true),

		CommentAuthor:       fg(t.CommentAuthor).Bold(true),
		CommentAuthorSelf:   fg(t.CommentAuthorSelf).Bold(true),
		CommentText:         fg(t.CommentText),
		CommentCount:        fg(t.CommentCount),
		HiddenCommentText:   fg(t.HiddenCommentText),
		HiddenCommentExpand: fg(t.HiddenCommentExpand).Bold(true),

		Score:       fg(t.Score),
		Created:     fg(t.Created),
		Separator:   fg(t.Separator).Bold(true),
		Upvote:      fg(t.Upvote).Bold(true),
		Downvote:    fg(t.Downvote).Bold(true),
		NeutralVote: fg(t.NeutralVote).Bold(true),
		Gold:        fg(t.Gold).Bold(true),
		NSFW:        fg(t.NSFW).Bold(true).Reverse(true),
		Saved:       fg(t.Saved),
		Stickied:    fg(t.Stickied),
		Hidden:      fg(t.Hidden),
		UserFlair:   fg(t.UserFlair).Bold(true),

		SubscriptionName: fg(t.SubscriptionName).Bold(true),
		SubscriptionText: fg(t.SubscriptionText),
		MultiredditName:  fg(t.MultiredditName).Bold(true),
		MultiredditText:  fg(t.MultiredditText),

		New:              fg(t.New).Bold(true),
		MessageSubject:   fg(t.MessageSubject).Bold(true),
		MessageLink:      fg(t.MessageLink).Underline(true),
		MessageAuthor:    fg(t.MessageAuthor).Bold(true),
		MessageSubreddit: fg(t.MessageSubreddit),
		MessageText:      fg(t.MessageText),
		Distinguished:    fg(t.Distinguished).Bold(true),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"default":         defaultTheme(),
	"monochrome":      monochromeTheme(),
	"molokai":         molokaiTheme(),
	"solarized-dark":  solarizedDarkTheme(),
	"solarized-light": solarizedLightTheme(),
	"papercolor":      papercolorTheme(),
}

var themeOrder = []string{
	"default",
	"monochrome",
	"molokai",
	"solarized-dark",
	"solarized-light",
	"papercolor",
}

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return defaultTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// PrevTheme returns the previous theme name in the cycle.
func PrevTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+len(themeOrder)-1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	return themeOrder
}

func defaultTheme() Theme {
	// ANSI palette indexes so the terminal's own colors shine through.
	return Theme{
		Name: "default",

		TitleBar:          "6", // cyan
		OrderBar:          "3", // yellow
		OrderBarHighlight: "3",
		HelpBar:           "6",
		Prompt:            "6",

		CursorBar1: "5", // magenta
		CursorBar2: "6", // cyan
		CursorBar3: "2", // green
		CursorBar4: "3", // yellow

		SubmissionAuthor:    "2",
		SubmissionSubreddit: "3",
		SubmissionFlair:     "1", // red
		Link:                "4", // blue
		LinkSeen:            "5",

		CommentAuthor:     "4",
		CommentAuthorSelf: "2",

		Upvote:    "2",
		Downvote:  "1",
		Gold:      "3",
		NSFW:      "1",
		Saved:     "2",
		Stickied:  "2",
		Hidden:    "3",
		UserFlair: "3",

		SubscriptionName: "3",
		MultiredditName:  "3",

		New:              "2",
		MessageLink:      "4",
		MessageAuthor:    "4",
		MessageSubreddit: "3",
		Distinguished:    "2",
	}
}

func monochromeTheme() Theme {
	// No colors at all; bold, reverse and underline carry the layout.
	return Theme{Name: "monochrome"}
}

func molokaiTheme() Theme {
	// Molokai palette: https://github.com/tomasr/molokai
	return Theme{
		Name: "molokai",

		Foreground: "#f8f8f2",
		Background: "#1b1d1e",

		TitleBar:          "#66d9ef", // cyan
		OrderBar:          "#e6db74", // yellow
		OrderBarHighlight: "#e6db74",
		HelpBar:           "#66d9ef",
		Prompt:            "#66d9ef",

		NoticeError:   "#f92672", // magenta
		NoticeSuccess: "#a6e22e", // green

		CursorBar1: "#f92672",
		CursorBar2: "#66d9ef",
		CursorBar3: "#a6e22e",
		CursorBar4: "#e6db74",

		SubmissionAuthor:    "#a6e22e",
		SubmissionSubreddit: "#e6db74",
		SubmissionFlair:     "#fd971f", // orange
		Link:                "#66d9ef",
		LinkSeen:            "#ae81ff", // purple

		CommentAuthor:     "#66d9ef",
		CommentAuthorSelf: "#a6e22e",

		Upvote:    "#a6e22e",
		Downvote:  "#f92672",
		Gold:      "#e6db74",
		NSFW:      "#f92672",
		Saved:     "#a6e22e",
		Stickied:  "#a6e22e",
		Hidden:    "#e6db74",
		UserFlair: "#e6db74",

		SubscriptionName: "#e6db74",
		MultiredditName:  "#e6db74",

		New:              "#a6e22e",
		MessageLink:      "#66d9ef",
		MessageAuthor:    "#66d9ef",
		MessageSubreddit: "#e6db74",
		Distinguished:    "#a6e22e",
	}
}

func solarizedDarkTheme() Theme {
	// Solarized palette: https://ethanschoonover.com/solarized
	return Theme{
		Name: "solarized-dark",

		Foreground: "#839496", // base0
		Background: "#002b36", // base03

		TitleBar:          "#2aa198", // cyan
		OrderBar:          "#b58900", // yellow
		OrderBarHighlight: "#b58900",
		HelpBar:           "#2aa198",
		Prompt:            "#2aa198",

		NoticeError:   "#dc322f", // red
		NoticeSuccess: "#859900", // green

		CursorBar1: "#d33682", // magenta
		CursorBar2: "#2aa198",
		CursorBar3: "#859900",
		CursorBar4: "#b58900",

		SubmissionAuthor:    "#859900",
		SubmissionSubreddit: "#b58900",
		SubmissionFlair:     "#dc322f",
		Link:                "#268bd2", // blue
		LinkSeen:            "#6c71c4", // violet

		CommentAuthor:     "#268bd2",
		CommentAuthorSelf: "#859900",

		Upvote:    "#859900",
		Downvote:  "#dc322f",
		Gold:      "#b58900",
		NSFW:      "#dc322f",
		Saved:     "#859900",
		Stickied:  "#859900",
		Hidden:    "#b58900",
		UserFlair: "#b58900",

		SubscriptionName: "#b58900",
		MultiredditName:  "#b58900",

		New:              "#859900",
		MessageLink:      "#268bd2",
		MessageAuthor:    "#268bd2",
		MessageSubreddit: "#b58900",
		Distinguished:    "#859900",
	}
}

func solarizedLightTheme() Theme {
	// Solarized palette, light variant.
	t := solarizedDarkTheme()
	t.Name = "solarized-light"
	t.Foreground = "#657b83" // base00
	t.Background = "#fdf6e3" // base3
	return t
}

func papercolorTheme() Theme {
	// PaperColor palette: https://github.com/NLKNguyen/papercolor-theme
	return Theme{
		Name: "papercolor",

		Foreground: "#444444",
		Background: "#eeeeee",

		TitleBar:          "#0087af",
		OrderBar:          "#af8700",
		OrderBarHighlight: "#af8700",
		HelpBar:           "#0087af",
		Prompt:            "#0087af",

		NoticeError:   "#af0000",
		NoticeSuccess: "#008700",

		CursorBar1: "#d70087",
		CursorBar2: "#0087af",
		CursorBar3: "#008700",
		CursorBar4: "#af8700",

		SubmissionAuthor:    "#008700",
		SubmissionSubreddit: "#af8700",
		SubmissionFlair:     "#d75f00",
		Link:                "#005f87",
		LinkSeen:            "#8700af",

		CommentAuthor:     "#005f87",
		CommentAuthorSelf: "#008700",

		Upvote:    "#008700",
		Downvote:  "#af0000",
		Gold:      "#af8700",
		NSFW:      "#af0000",
		Saved:     "#008700",
		Stickied:  "#008700",
		Hidden:    "#af8700",
		UserFlair: "#af8700",

		SubscriptionName: "#af8700",
		MultiredditName:  "#af8700",

		New:              "#008700",
		MessageLink:      "#005f87",
		MessageAuthor:    "#005f87",
		MessageSubreddit: "#af8700",
		Distinguished:    "#008700",
	}
}
