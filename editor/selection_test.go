package editor

import "testing"

func TestSelectionActive(t *testing.T) {
	s := Selection{}
	if s.Active() {
		t.Error("zero selection should not be active")
	}
	s = Selection{Anchor: 2, Cursor: 5}
	if !s.Active() {
		t.Error("non-empty selection should be active")
	}
}

func TestSelectionOrdered(t *testing.T) {
	s := Selection{Anchor: 7, Cursor: 3}
	start, end := s.Ordered()
	if start != 3 || end != 7 {
		t.Errorf("Ordered = (%d, %d), want (3, 7)", start, end)
	}
	if r := s.Range(); r.Start != 3 || r.End != 7 {
		t.Errorf("Range = %+v, want {3 7}", r)
	}
}

func TestSelectionText(t *testing.T) {
	content := "hello world"
	s := Selection{Anchor: 6, Cursor: 11}
	if got := s.Text(content); got != "world" {
		t.Errorf("Text = %q, want %q", got, "world")
	}

	// Reversed selection extracts the same text.
	s = Selection{Anchor: 11, Cursor: 6}
	if got := s.Text(content); got != "world" {
		t.Errorf("reversed Text = %q, want %q", got, "world")
	}

	// Out-of-range bounds are clamped.
	s = Selection{Anchor: -3, Cursor: 100}
	if got := s.Text(content); got != content {
		t.Errorf("clamped Text = %q, want %q", got, content)
	}
}

func TestSelectionCollapseAndSelect(t *testing.T) {
	s := Selection{Anchor: 1, Cursor: 4}
	s.CollapseTo(9)
	if s.Active() || s.Cursor != 9 {
		t.Errorf("after CollapseTo selection = %+v, want collapsed at 9", s)
	}

	s.SelectRange(Range{Start: 2, End: 6})
	if s.Anchor != 2 || s.Cursor != 6 {
		t.Errorf("after SelectRange selection = %+v, want {2 6}", s)
	}

	s.SelectAll(11)
	if s.Anchor != 0 || s.Cursor != 11 {
		t.Errorf("after SelectAll selection = %+v, want {0 11}", s)
	}

	s.Clear()
	if s.Active() {
		t.Error("selection should be collapsed after Clear")
	}
}
