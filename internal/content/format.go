package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// HumanizeTimestamp renders a creation time relative to now. The short
// form ("5min", "2hr", "1month") fits listing rows; the verbose form
// ("5 minutes ago") suits the submission header.
func HumanizeTimestamp(created, now time.Time, verbose bool) string {
	seconds := int(now.Sub(created).Seconds())
	if seconds < 60 {
		if verbose {
			return "moments ago"
		}
		return "0min"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return humanUnit(minutes, "min", "minute", verbose)
	}
	hours := minutes / 60
	if hours < 24 {
		return humanUnit(hours, "hr", "hour", verbose)
	}
	days := hours / 24
	if days < 30 {
		return humanUnit(days, "day", "day", verbose)
	}
	months := int(float64(days) / 30.4)
	if months < 12 {
		return humanUnit(months, "month", "month", verbose)
	}
	years := months / 12
	return humanUnit(years, "yr", "year", verbose)
}

func humanUnit(n int, short, long string, verbose bool) string {
	if verbose {
		return fmt.Sprintf("%d %ss ago", n, long)
	}
	return fmt.Sprintf("%d%s", n, short)
}

// FormatScore renders a score, masking it while the service hides it.
func FormatScore(score int, hidden bool) string {
	if hidden {
		return "- pts"
	}
	return fmt.Sprintf("%d pts", score)
}

// FormatCount renders "{n} {noun}s".
func FormatCount(n int, noun string) string {
	return fmt.Sprintf("%d %ss", n, noun)
}

// CleanTitle collapses internal whitespace so multi-line titles render
// on one logical line.
func CleanTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// WrapText wraps text to the given display width while preserving
// paragraph breaks: a blank line in the input stays a blank line in the
// output, empty text yields no lines, and a single trailing newline is
// not a blank line. Width is measured in terminal cells, so wide runes
// count double.
func WrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	var out []string
	for _, paragraph := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		out = append(out, wrapParagraph(paragraph, width)...)
	}
	return out
}

func wrapParagraph(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	currentWidth := 0

	for _, word := range words {
		w := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+w > width {
			lines = append(lines, current)
			current, currentWidth = "", 0
		}
		if w > width {
			// Hard-break an overlong word; the final chunk stays on
			// the current line so following words can join it.
			chunks := splitWord(word, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			current = chunks[len(chunks)-1]
			currentWidth = runewidth.StringWidth(current)
			continue
		}
		if currentWidth > 0 {
			current += " " + word
			currentWidth += 1 + w
		} else {
			current, currentWidth = word, w
		}
	}
	if currentWidth > 0 {
		lines = append(lines, current)
	}
	return lines
}

func splitWord(word string, width int) []string {
	var chunks []string
	var chunk strings.Builder
	chunkWidth := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if chunkWidth+rw > width && chunkWidth > 0 {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteRune(r)
		chunkWidth += rw
	}
	if chunk.Len() > 0 {
		chunks = append(chunks, chunk.String())
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks
}
