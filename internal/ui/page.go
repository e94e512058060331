package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seaward/perch/internal/content"
	"github.com/seaward/perch/internal/reddit"
)

const clippedNotice = "(Not enough space to display)"

// lineBuilder assembles one screen row from styled segments, clipping
// at the right edge so a row never wraps.
type lineBuilder struct {
	width int
	used  int
	b     strings.Builder
}

func newLine(width int) *lineBuilder {
	return &lineBuilder{width: width}
}

// pad advances n blank columns.
func (l *lineBuilder) pad(n int) {
	n = minInt(n, l.width-l.used)
	if n > 0 {
		l.b.WriteString(strings.Repeat(" ", n))
		l.used += n
	}
}

// space is the single-column separator between fields.
func (l *lineBuilder) space() {
	l.pad(1)
}

// add writes text in the given style, clipped to the space left on the
// row.
func (l *lineBuilder) add(text string, style lipgloss.Style) {
	text = clip(text, l.width-l.used)
	if text == "" {
		return
	}
	l.used += displayWidth(text)
	l.b.WriteString(style.Render(text))
}

func (l *lineBuilder) String() string {
	return l.b.String()
}

// clipLines reduces lines to fit rows: the head normally, the tail when
// the window is drawn bottom-aligned.
func clipLines(lines []string, rows int, inverted bool) []string {
	if rows >= len(lines) {
		return lines
	}
	if rows <= 0 {
		return nil
	}
	if inverted {
		return lines[len(lines)-rows:]
	}
	return lines[:rows]
}

// clipBody drops overflow+1 lines from the tail of a body and puts a
// truncation notice in their place, shrinking the full render by
// exactly overflow rows.
func clipBody(body []string, overflow int) []string {
	keep := maxInt(len(body)-overflow-1, 0)
	out := make([]string, 0, keep+1)
	out = append(out, body[:keep]...)
	return append(out, clippedNotice)
}

// boxLines frames pre-styled rows in a border, padding each row to the
// full width.
func boxLines(rows []string, cols int, g Glyphs, border lipgloss.Style) []string {
	inner := cols - 2
	out := make([]string, 0, len(rows)+2)
	out = append(out, border.Render(g.TopLeft+strings.Repeat(g.HLine, inner)+g.TopRight))
	for _, row := range rows {
		pad := maxInt(inner-lipgloss.Width(row), 0)
		out = append(out, border.Render(g.VLine)+row+strings.Repeat(" ", pad)+border.Render(g.VLine))
	}
	out = append(out, border.Render(g.BottomLeft+strings.Repeat(g.HLine, inner)+g.BottomRight))
	return out
}

// window records where one item landed on the page.
type window struct {
	item     *content.Item
	start    int  // first row within the content area
	rows     int  // rows on screen
	inverted bool // bottom-aligned: the tail of the item shows
}

// contentSize is the area left for items after the chrome rows.
func (m *Model) contentSize() (rows, cols int) {
	rows = m.height - 2 // title bar and footer
	if m.page != nil && m.page.view != ViewSubscription {
		rows-- // sort banner
	}
	return rows, m.width
}

// drawContent lays the visible items out and caches the rendered rows.
// Items pack top-down, or bottom-up when the navigator is inverted,
// with one blank row between; the last item clips to the remaining
// space. An inverted layout that fails to fill the page flips back to
// normal orientation and packs again, so a partially-loaded tail never
// leaves dead space at the top.
func (m *Model) drawContent() {
	totalRows, totalCols := m.contentSize()
	m.contentLines = nil
	m.windows = nil
	if m.page == nil || totalRows <= 0 || totalCols <= 2 {
		return
	}
	nav := m.page.nav

	for {
		pageIndex, _, inverted := nav.Position()
		step := nav.Step()

		windows := make([]window, 0, 16)
		cancelInverted := true
		currentRow := 0
		if inverted {
			currentRow = totalRows - 1
		}
		availableRows := totalRows
		topItemHeight := 0
		if !inverted {
			topItemHeight = nav.TopItemHeight
		}

		content.Iterate(m.page.content, pageIndex, step, totalCols-2, func(it *content.Item) bool {
			winRows := minInt(availableRows, it.Rows)
			winInverted := inverted
			if topItemHeight > 0 {
				// The top item keeps its restricted height and draws
				// bottom-aligned while the rest of the page is normal,
				// so a fold never moves the cursor row on screen.
				winRows = minInt(winRows, topItemHeight)
				winInverted = true
				topItemHeight = 0
			}
			start := currentRow
			if inverted {
				start = currentRow - winRows + 1
			}
			windows = append(windows, window{item: it, start: start, rows: winRows, inverted: winInverted})
			availableRows -= winRows + 1 // blank row between items
			currentRow += step * (winRows + 1)
			if availableRows <= 0 {
				cancelInverted = false
				return false
			}
			return true
		})

		// A single window always aligns with the top of the screen.
		if len(windows) == 1 {
			cancelInverted = true
		}
		if cancelInverted && nav.Inverted {
			nav.Flip(len(windows) - 1)
			continue
		}

		m.windows = windows
		m.contentLines = m.renderWindows(windows, totalRows, totalCols)
		return
	}
}

// renderWindows paints each placed window into the content area.
func (m *Model) renderWindows(windows []window, totalRows, totalCols int) []string {
	nav := m.page.nav

	// The cursor can be left past the last window by a resize; pull it
	// back. A cursor on the submission header draws no gutter mark.
	selected := -1
	if nav.AbsoluteIndex() >= 0 && len(windows) > 0 {
		nav.CursorIndex = minInt(nav.CursorIndex, len(windows)-1)
		if !m.flashing {
			selected = nav.CursorIndex
		}
	}

	lines := make([]string, totalRows)
	for i, w := range windows {
		rendered := clipLines(m.renderWindow(w, len(windows), i == selected), w.rows, w.inverted)
		for j, line := range rendered {
			row := w.start + j
			if row >= 0 && row < totalRows {
				lines[row] = line
			}
		}
	}
	return lines
}

// renderWindow builds the full logical rows for a window's item.
func (m *Model) renderWindow(w window, nWindows int, selected bool) []string {
	switch w.item.Type {
	case content.ItemSubmission:
		if m.page.view == ViewSubmission {
			return m.renderSubmissionHeader(w)
		}
		return m.renderListingRow(w.item, selected)
	case content.ItemComment:
		return m.renderComment(w, nWindows, selected)
	case content.ItemMore, content.ItemHidden:
		return m.renderStub(w.item, selected)
	case content.ItemSubscription:
		return m.renderSubscriptionRow(w.item, selected)
	case content.ItemMessage:
		return m.renderMessageRow(w.item, selected)
	}
	return nil
}

// gutter renders the one-column cursor mark at the left edge of a row.
func gutter(style lipgloss.Style, ch string, selected bool) string {
	if selected {
		style = style.Reverse(true)
	}
	return style.Render(ch)
}

// renderBanner lays the order names across a row with even spacing and
// the active order's digit tag highlighted.
func (m *Model) renderBanner(orders []string, current string, cols int) string {
	items := bannerTags(orders)
	gap := strings.Repeat(" ", bannerSpacing(items, cols))
	base, _ := reddit.SplitOrder(current)

	l := newLine(cols)
	for i, order := range orders {
		if i > 0 {
			l.add(gap, m.styles.OrderBar)
		}
		tag := items[i][:3]
		if order == base && current != "" {
			l.add(tag, m.styles.OrderBarHighlight)
		} else {
			l.add(tag, m.styles.OrderBar)
		}
		l.add(order, m.styles.OrderBar)
	}
	return l.String()
}
