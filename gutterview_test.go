package main

import "testing"

func TestGutterViewInitialFill(t *testing.T) {
	v := newGutterView()
	v.update(3, 1, 10)

	for row, want := range []int{1, 2, 3, 0, 0} {
		if v.rows[row] != want {
			t.Errorf("row %d = %d, want %d", row, v.rows[row], want)
		}
	}
}

func TestGutterViewNewLineFillsItsRow(t *testing.T) {
	v := newGutterView()
	v.update(1, 1, 10)
	if v.rows[0] != 1 {
		t.Fatalf("row 0 = %d, want 1", v.rows[0])
	}

	// Typing Enter adds a line without scrolling or resizing.
	v.update(2, 1, 10)
	if v.rows[1] != 2 {
		t.Errorf("after growing to 2 lines, row 1 = %d, want line number 2", v.rows[1])
	}
	if v.rows[0] != 1 {
		t.Errorf("row 0 = %d, want 1", v.rows[0])
	}
}

func TestGutterViewDeletedLineBlanksItsRow(t *testing.T) {
	v := newGutterView()
	v.update(3, 1, 10)

	// Deleting the last line must not leave its number behind.
	v.update(2, 1, 10)
	if v.rows[2] != 0 {
		t.Errorf("after shrinking to 2 lines, row 2 = %d, want blank (0)", v.rows[2])
	}
	if v.rows[0] != 1 || v.rows[1] != 2 {
		t.Errorf("surviving rows = %d, %d, want 1, 2", v.rows[0], v.rows[1])
	}
}

func TestGutterViewScrollTranslatesCache(t *testing.T) {
	v := newGutterView()
	v.update(20, 1, 5)
	v.update(20, 3, 5)

	for row, want := range []int{3, 4, 5, 6, 7} {
		if v.rows[row] != want {
			t.Errorf("row %d = %d, want %d", row, v.rows[row], want)
		}
	}
}

func TestGutterViewScrollAndEditTogether(t *testing.T) {
	// Enter on the bottom row both grows the line count and scrolls.
	v := newGutterView()
	v.update(5, 1, 5)
	v.update(6, 2, 5)

	for row, want := range []int{2, 3, 4, 5, 6} {
		if v.rows[row] != want {
			t.Errorf("row %d = %d, want %d", row, v.rows[row], want)
		}
	}
}

func TestGutterViewDigitBoundaryRepaintsAll(t *testing.T) {
	v := newGutterView()
	v.update(9, 1, 12)
	v.update(10, 1, 12)

	if v.width != 3+2 {
		t.Errorf("width = %d, want 5 at two digits", v.width)
	}
	for row := 0; row < 10; row++ {
		if v.rows[row] != row+1 {
			t.Errorf("row %d = %d, want %d", row, v.rows[row], row+1)
		}
	}
}
