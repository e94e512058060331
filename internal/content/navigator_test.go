package content

import "testing"

// rangeValid simulates content whose loaded indexes span [min, max].
func rangeValid(min, max int) ValidFunc {
	return func(i int) bool { return i >= min && i <= max }
}

func TestNavigator_MoveForwardLeavesHeader(t *testing.T) {
	nav := NewNavigator(rangeValid(-1, 5), -1)

	valid, redraw := nav.Move(1, 3)
	if !valid || !redraw {
		t.Fatalf("Move(1) = (%v, %v), want (true, true)", valid, redraw)
	}
	if nav.PageIndex != 0 || nav.CursorIndex != 0 || nav.Inverted {
		t.Fatalf("position = (%d, %d, %v), want (0, 0, false)",
			nav.PageIndex, nav.CursorIndex, nav.Inverted)
	}
}

func TestNavigator_MoveForwardFlipsAtLastRow(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 9), 0)

	valid, redraw := nav.Move(1, 3)
	if !valid || redraw {
		t.Fatalf("first Move = (%v, %v), want (true, false)", valid, redraw)
	}
	if nav.AbsoluteIndex() != 1 {
		t.Fatalf("AbsoluteIndex = %d, want 1", nav.AbsoluteIndex())
	}

	// The cursor reaches the last drawn row, so the orientation flips
	// and the selected item moves to the opposite edge.
	valid, redraw = nav.Move(1, 3)
	if !valid || !redraw {
		t.Fatalf("flip Move = (%v, %v), want (true, true)", valid, redraw)
	}
	if !nav.Inverted || nav.CursorIndex != 0 || nav.PageIndex != 2 {
		t.Fatalf("position = (%d, %d, %v), want (2, 0, true)",
			nav.PageIndex, nav.CursorIndex, nav.Inverted)
	}
	if nav.AbsoluteIndex() != 2 {
		t.Fatalf("AbsoluteIndex = %d, want 2", nav.AbsoluteIndex())
	}
}

func TestNavigator_MoveForwardAtEndIsInvalid(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 2), 0)
	nav.PageIndex, nav.CursorIndex, nav.Inverted = 2, 0, true

	valid, _ := nav.Move(1, 3)
	if valid {
		t.Fatal("Move past the last item reported valid")
	}
	if nav.AbsoluteIndex() != 2 {
		t.Fatalf("AbsoluteIndex = %d, want unchanged 2", nav.AbsoluteIndex())
	}
}

func TestNavigator_MoveBackwardAtTopIsInvalid(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 5), 0)

	valid, _ := nav.Move(-1, 3)
	if valid {
		t.Fatal("Move above the first item reported valid")
	}
	if nav.PageIndex != 0 || nav.CursorIndex != 0 {
		t.Fatalf("position = (%d, %d), want reverted (0, 0)",
			nav.PageIndex, nav.CursorIndex)
	}
}

func TestNavigator_MoveBackwardReachesHeader(t *testing.T) {
	nav := NewNavigator(rangeValid(-1, 5), -1)
	nav.PageIndex = 0

	valid, redraw := nav.Move(-1, 3)
	if !valid || !redraw {
		t.Fatalf("Move(-1) = (%v, %v), want (true, true)", valid, redraw)
	}
	if nav.AbsoluteIndex() != -1 {
		t.Fatalf("AbsoluteIndex = %d, want -1", nav.AbsoluteIndex())
	}
}

func TestNavigator_MovePageDownJumpsFullPage(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 9), 0)

	valid, redraw := nav.MovePage(1, 4)
	if !valid || !redraw {
		t.Fatalf("MovePage = (%v, %v), want (true, true)", valid, redraw)
	}
	if nav.AbsoluteIndex() != 4 {
		t.Fatalf("AbsoluteIndex = %d, want 4", nav.AbsoluteIndex())
	}
}

func TestNavigator_MovePageDownShrinksNearEnd(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 5), 0)
	nav.PageIndex = 4

	// Only one item remains past the page, so the jump shrinks from 4
	// down to 1 before it lands.
	valid, redraw := nav.MovePage(1, 4)
	if !valid || !redraw {
		t.Fatalf("MovePage = (%v, %v), want (true, true)", valid, redraw)
	}
	if nav.AbsoluteIndex() != 5 {
		t.Fatalf("AbsoluteIndex = %d, want 5", nav.AbsoluteIndex())
	}
}

func TestNavigator_MovePageDownAtEndIsInvalid(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 5), 0)
	nav.PageIndex = 5

	valid, redraw := nav.MovePage(1, 4)
	if valid {
		t.Fatal("MovePage past the end reported valid")
	}
	if !redraw {
		t.Fatal("MovePage should always request a redraw")
	}
	if nav.AbsoluteIndex() != 5 {
		t.Fatalf("AbsoluteIndex = %d, want unchanged 5", nav.AbsoluteIndex())
	}
}

func TestNavigator_MovePageUpFromFirstScreenJumpsToTop(t *testing.T) {
	nav := NewNavigator(rangeValid(-1, 9), -1)
	nav.PageIndex, nav.CursorIndex = 2, 1

	valid, redraw := nav.MovePage(-1, 4)
	if !valid || !redraw {
		t.Fatalf("MovePage = (%v, %v), want (true, true)", valid, redraw)
	}
	if nav.AbsoluteIndex() != -1 || nav.Inverted {
		t.Fatalf("position = (%d, inverted=%v), want header not inverted",
			nav.AbsoluteIndex(), nav.Inverted)
	}

	// Without a header item the same jump stops at index zero.
	nav = NewNavigator(rangeValid(0, 9), 0)
	nav.PageIndex, nav.CursorIndex = 2, 1
	if valid, _ := nav.MovePage(-1, 4); !valid {
		t.Fatal("MovePage to top reported invalid")
	}
	if nav.AbsoluteIndex() != 0 {
		t.Fatalf("AbsoluteIndex = %d, want 0", nav.AbsoluteIndex())
	}
}

func TestNavigator_MovePageUpFlipsOrientation(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 9), 0)
	nav.PageIndex = 6

	valid, redraw := nav.MovePage(-1, 4)
	if !valid || !redraw {
		t.Fatalf("MovePage = (%v, %v), want (true, true)", valid, redraw)
	}
	if !nav.Inverted {
		t.Fatal("MovePage up should flip into the direction of travel")
	}
	if nav.AbsoluteIndex() != 2 {
		t.Fatalf("AbsoluteIndex = %d, want 2", nav.AbsoluteIndex())
	}
}

func TestNavigator_MovePageZeroWindowsDegradesToMove(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 5), 0)

	valid, _ := nav.MovePage(1, 0)
	if !valid {
		t.Fatal("MovePage with no windows reported invalid")
	}
	if nav.AbsoluteIndex() != 1 {
		t.Fatalf("AbsoluteIndex = %d, want 1", nav.AbsoluteIndex())
	}
}

func TestNavigator_FlipReversesOrientation(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 9), 0)
	nav.PageIndex, nav.CursorIndex = 2, 2

	// Flip re-anchors the page n rows away and reverses the step, so
	// the item at the old page index ends up selected.
	nav.Flip(nav.CursorIndex)
	if !nav.Inverted || nav.PageIndex != 4 || nav.CursorIndex != 2 {
		t.Fatalf("position = (%d, %d, %v), want (4, 2, true)",
			nav.PageIndex, nav.CursorIndex, nav.Inverted)
	}
	if nav.AbsoluteIndex() != 2 {
		t.Fatalf("AbsoluteIndex = %d, want 2", nav.AbsoluteIndex())
	}
}

func TestNavigator_MoveTopAndBottom(t *testing.T) {
	nav := NewNavigator(rangeValid(-1, 7), -1)
	nav.PageIndex, nav.CursorIndex = 3, 1

	nav.MoveBottom()
	if nav.AbsoluteIndex() != 7 || !nav.Inverted || nav.CursorIndex != 0 {
		t.Fatalf("after MoveBottom position = (%d, %d, %v), want (7, 0, true)",
			nav.PageIndex, nav.CursorIndex, nav.Inverted)
	}

	nav.MoveTop()
	if nav.AbsoluteIndex() != -1 || nav.Inverted {
		t.Fatalf("after MoveTop position = (%d, %d, %v), want (-1, 0, false)",
			nav.PageIndex, nav.CursorIndex, nav.Inverted)
	}
}

func TestNavigator_MovementClearsTopItemHeight(t *testing.T) {
	nav := NewNavigator(rangeValid(0, 9), 0)
	nav.TopItemHeight = 4

	nav.Move(1, 3)
	if nav.TopItemHeight != 0 {
		t.Fatalf("TopItemHeight = %d, want cleared", nav.TopItemHeight)
	}
}
