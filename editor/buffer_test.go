package editor

import "testing"

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if b == nil {
		t.Fatal("NewBuffer returned nil")
	}
	if b.Text() != "" {
		t.Errorf("new buffer text = %q, want empty", b.Text())
	}
	if b.Path() != "" {
		t.Errorf("new buffer path = %q, want empty", b.Path())
	}
	if b.Dirty() {
		t.Error("new buffer should not be dirty")
	}
	if !b.Untitled() {
		t.Error("new buffer should be untitled")
	}
	if b.Title() != "untitled" {
		t.Errorf("new buffer title = %q, want %q", b.Title(), "untitled")
	}
}

func TestLoadStartsClean(t *testing.T) {
	b := NewBuffer()
	b.Load("hello, world\nsecond line\n")

	if b.Text() != "hello, world\nsecond line\n" {
		t.Errorf("text = %q after Load", b.Text())
	}
	if b.Dirty() {
		t.Error("buffer should not be dirty after Load")
	}
}

func TestSetTextDirtyTracking(t *testing.T) {
	b := NewBuffer()
	b.Load("original")

	b.SetText("changed")
	if !b.Dirty() {
		t.Error("buffer should be dirty after SetText with new content")
	}

	// Restoring the loaded content makes the buffer clean again: dirty is
	// a comparison against the snapshot, not an edit counter.
	b.SetText("original")
	if b.Dirty() {
		t.Error("buffer should be clean after restoring original content")
	}
}

func TestSetTextIdempotent(t *testing.T) {
	b := NewBuffer()
	b.Load("same")

	b.SetText("same")
	if b.Dirty() {
		t.Error("no-op SetText must not flip the modified flag")
	}
}

func TestMarkSaved(t *testing.T) {
	b := NewBuffer()
	b.Load("v1")
	b.SetText("v2")
	if !b.Dirty() {
		t.Fatal("buffer should be dirty before MarkSaved")
	}

	b.MarkSaved()
	if b.Dirty() {
		t.Error("buffer should be clean after MarkSaved")
	}
	if b.Text() != "v2" {
		t.Errorf("text = %q after MarkSaved, want %q", b.Text(), "v2")
	}

	// Editing again re-dirties against the new snapshot.
	b.SetText("v3")
	if !b.Dirty() {
		t.Error("buffer should be dirty after editing past the new snapshot")
	}
}

func TestTitleFromPath(t *testing.T) {
	b := NewBuffer()
	b.SetPath("/tmp/some/dir/notes.txt")
	if b.Title() != "notes.txt" {
		t.Errorf("Title = %q, want %q", b.Title(), "notes.txt")
	}
	if b.Untitled() {
		t.Error("buffer with a path should not be untitled")
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"one line", 1},
		{"a\nb", 2},
		{"a\nb\n", 3},
		{"\n\n\n", 4},
	}
	for _, tt := range tests {
		b := NewBuffer()
		b.Load(tt.text)
		if got := b.LineCount(); got != tt.want {
			t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestApplyEdit(t *testing.T) {
	b := NewBuffer()
	b.Load("hello world")

	b.ApplyEdit(6, "world", "there")
	if b.Text() != "hello there" {
		t.Errorf("text = %q, want %q", b.Text(), "hello there")
	}
	if !b.Dirty() {
		t.Error("buffer should be dirty after ApplyEdit")
	}
}

func TestApplyEditInsert(t *testing.T) {
	b := NewBuffer()
	b.Load("ac")

	b.ApplyEdit(1, "", "b")
	if b.Text() != "abc" {
		t.Errorf("text = %q, want %q", b.Text(), "abc")
	}
}

func TestUndoRedo(t *testing.T) {
	b := NewBuffer()
	b.Load("hello")

	b.ApplyEdit(5, "", " world")
	b.ApplyEdit(0, "hello", "goodbye")
	if b.Text() != "goodbye world" {
		t.Fatalf("text = %q, want %q", b.Text(), "goodbye world")
	}

	if !b.Undo() {
		t.Fatal("Undo returned false with edits on the stack")
	}
	if b.Text() != "hello world" {
		t.Errorf("after first undo text = %q, want %q", b.Text(), "hello world")
	}

	if !b.Undo() {
		t.Fatal("second Undo returned false")
	}
	if b.Text() != "hello" {
		t.Errorf("after second undo text = %q, want %q", b.Text(), "hello")
	}
	if b.Dirty() {
		t.Error("buffer should be clean after undoing back to the snapshot")
	}

	if b.Undo() {
		t.Error("Undo should return false with an empty stack")
	}

	if !b.Redo() {
		t.Fatal("Redo returned false with undone edits")
	}
	if b.Text() != "hello world" {
		t.Errorf("after redo text = %q, want %q", b.Text(), "hello world")
	}
}

func TestRedoClearedByNewEdit(t *testing.T) {
	b := NewBuffer()
	b.Load("abc")

	b.ApplyEdit(3, "", "d")
	b.Undo()
	b.ApplyEdit(0, "a", "x")

	if b.Redo() {
		t.Error("Redo should return false after a fresh edit cleared the stack")
	}
	if b.Text() != "xbc" {
		t.Errorf("text = %q, want %q", b.Text(), "xbc")
	}
}

func TestLoadDiscardsHistory(t *testing.T) {
	b := NewBuffer()
	b.Load("first")
	b.ApplyEdit(0, "first", "second")

	b.Load("third")
	if b.Undo() {
		t.Error("Undo should return false after Load discarded history")
	}
	if b.Dirty() {
		t.Error("buffer should be clean after Load")
	}
}
