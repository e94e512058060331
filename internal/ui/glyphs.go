package ui

// Glyphs are the decorative characters used by the row renderers.
// Terminals with broken unicode fonts can swap in the ascii set.
type Glyphs struct {
	UpArrow      string
	DownArrow    string
	NeutralArrow string
	Gold         string
	Mail         string

	// Comment gutters and the submission header border.
	VLine       string
	HLine       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func unicodeGlyphs() Glyphs {
	return Glyphs{
		UpArrow:      "▲",
		DownArrow:    "▼",
		NeutralArrow: "•",
		Gold:         "✪",
		Mail:         "✉",
		VLine:        "│",
		HLine:        "─",
		TopLeft:      "┌",
		TopRight:     "┐",
		BottomLeft:   "└",
		BottomRight:  "┘",
	}
}

func asciiGlyphs() Glyphs {
	return Glyphs{
		UpArrow:      "^",
		DownArrow:    "v",
		NeutralArrow: "o",
		Gold:         "*",
		Mail:         "[m]",
		VLine:        "|",
		HLine:        "-",
		TopLeft:      "+",
		TopRight:     "+",
		BottomLeft:   "+",
		BottomRight:  "+",
	}
}

// GlyphSet returns the glyphs for the given mode.
func GlyphSet(ascii bool) Glyphs {
	if ascii {
		return asciiGlyphs()
	}
	return unicodeGlyphs()
}

// Arrow picks the vote arrow for a likes state: up when upvoted, down
// when downvoted, a neutral bullet otherwise.
func (g Glyphs) Arrow(likes *bool) string {
	switch {
	case likes == nil:
		return g.NeutralArrow
	case *likes:
		return g.UpArrow
	default:
		return g.DownArrow
	}
}
