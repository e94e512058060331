package content

// probeWidth is the width used for validity checks. Layout fields are
// recomputed at the real width when the item is drawn.
const probeWidth = 70

// ValidFunc reports whether an index is inside the loaded range.
type ValidFunc func(index int) bool

// Validator adapts a Content into a ValidFunc.
func Validator(c Content) ValidFunc {
	return func(index int) bool {
		_, err := c.Get(index, probeWidth)
		return err == nil
	}
}

// Navigator holds the cursor and paging state for one view.
//
// The screen is drawn in one of two orientations. Normal: items are
// drawn top-down starting with PageIndex, and the cursor counts down
// from the top. Inverted: items are drawn bottom-up starting with
// PageIndex at the bottom, and the cursor counts up. Scrolling past
// the last drawn row flips the orientation, which guarantees the
// selected item is always fully on screen.
type Navigator struct {
	PageIndex   int
	CursorIndex int
	Inverted    bool

	// TopItemHeight, when positive, tells the renderer to clip the top
	// item to that many rows and draw it bottom-aligned while the rest
	// of the page draws top-down. Folding a comment from an inverted
	// view sets it to keep the cursor stationary on screen; any cursor
	// or page movement clears it.
	TopItemHeight int

	minIndex int
	valid    ValidFunc
}

// NewNavigator returns a navigator starting at minIndex, the smallest
// valid index of the underlying content (-1 when a post header is
// present, see MinIndex).
func NewNavigator(valid ValidFunc, minIndex int) *Navigator {
	return &Navigator{PageIndex: minIndex, minIndex: minIndex, valid: valid}
}

// Step is the direction items are laid out in: 1 normal, -1 inverted.
func (n *Navigator) Step() int {
	if n.Inverted {
		return -1
	}
	return 1
}

// AbsoluteIndex is the content index of the selected item.
func (n *Navigator) AbsoluteIndex() int {
	return n.PageIndex + n.Step()*n.CursorIndex
}

// Position returns the page index, cursor index and orientation.
func (n *Navigator) Position() (pageIndex, cursorIndex int, inverted bool) {
	return n.PageIndex, n.CursorIndex, n.Inverted
}

// Move shifts the cursor by direction (+1 down, -1 up) across the
// nWindows items currently drawn. It reports whether the move was
// allowed and whether the screen layout changed (as opposed to the
// cursor alone).
func (n *Navigator) Move(direction, nWindows int) (valid, redraw bool) {
	valid = true
	n.TopItemHeight = 0
	forward := direction*n.Step() > 0

	if forward {
		if n.PageIndex < 0 {
			if n.valid(0) {
				// Step off the post header onto the first comment.
				n.PageIndex = 0
				n.CursorIndex = 0
				redraw = true
			} else {
				valid = false
			}
		} else {
			n.CursorIndex++
			if !n.valid(n.AbsoluteIndex()) {
				n.CursorIndex--
				valid = false
			} else if n.CursorIndex >= nWindows-1 {
				// Reached the last drawn row: flip so the selection
				// lands at the opposite edge.
				n.Flip(n.CursorIndex)
				n.CursorIndex = 0
				redraw = true
			}
		}
	} else {
		if n.CursorIndex > 0 {
			n.CursorIndex--
		} else {
			n.PageIndex -= n.Step()
			if n.valid(n.AbsoluteIndex()) {
				redraw = true
			} else {
				n.PageIndex += n.Step()
				valid = false
			}
		}
	}
	return valid, redraw
}

// MovePage scrolls a whole screen at a time. Paging down makes the
// bottom item the new top item; paging up mirrors that. The screen is
// always redrawn except when the call degrades to a plain Move.
func (n *Navigator) MovePage(direction, nWindows int) (valid, redraw bool) {
	n.TopItemHeight = 0

	// At the post header, or nothing drawn yet: act as a normal move.
	if n.AbsoluteIndex() < 0 || nWindows == 0 {
		return n.Move(direction, nWindows)
	}

	if n.AbsoluteIndex() < nWindows && direction < 0 {
		// First screen: jump to the very top.
		n.PageIndex = n.minIndex
		n.CursorIndex = 0
		n.Inverted = false
		if !n.valid(n.AbsoluteIndex()) {
			n.PageIndex = 0
		}
		return true, true
	}

	// Flip into the direction of travel so the jump lands with the
	// cursor at the leading edge.
	if (direction > 0 && n.Inverted) || (direction < 0 && !n.Inverted) {
		n.PageIndex += n.Step() * (nWindows - 1)
		n.Inverted = !n.Inverted
		edge := nWindows
		if direction < 0 {
			edge = nWindows - 1
		}
		n.CursorIndex = edge - n.CursorIndex
	}

	// Try a full-page jump, shrinking the distance until it lands on a
	// valid index. Near the end of the content only a partial page is
	// left to jump across.
	for adj := 0; adj < nWindows; adj++ {
		jump := (nWindows - adj) * direction
		n.PageIndex += jump
		if n.valid(n.AbsoluteIndex()) {
			return true, true
		}
		n.PageIndex -= jump
	}
	return false, true
}

// Flip reverses the orientation around the item nWindows rows away,
// keeping the same item selected.
func (n *Navigator) Flip(nWindows int) {
	n.PageIndex += n.Step() * nWindows
	n.CursorIndex = nWindows
	n.Inverted = !n.Inverted
}

// MoveTop jumps to the first item.
func (n *Navigator) MoveTop() {
	n.TopItemHeight = 0
	n.PageIndex = n.minIndex
	n.CursorIndex = 0
	n.Inverted = false
}

// MoveBottom walks to the last loaded item and lands inverted so the
// selection sits at the bottom of the screen.
func (n *Navigator) MoveBottom() {
	n.TopItemHeight = 0
	index := n.AbsoluteIndex()
	if !n.valid(index) {
		index = n.minIndex
	}
	for n.valid(index + 1) {
		index++
	}
	n.PageIndex = index
	n.CursorIndex = 0
	n.Inverted = true
}
