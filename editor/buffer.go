package editor

import (
	"path/filepath"
	"strings"
)

// Range represents a byte range [Start, End) within buffer text.
type Range struct {
	Start, End int
}

// editOp records a single edit for undo/redo support.
type editOp struct {
	offset  int
	oldText string
	newText string
}

// Buffer holds the text content of a single open document together with
// the snapshot taken at the last load or save. A buffer never performs
// file I/O itself; reading and writing happen at the session boundary, so
// no operation here can fail.
type Buffer struct {
	path      string // absolute path, or "" if untitled
	text      string // current text content
	savedText string // text at last load/save (for dirty comparison)
	undoStack []editOp
	redoStack []editOp
}

// NewBuffer creates a new empty, untitled buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Load replaces the buffer content with text and resets the saved
// snapshot, so the buffer starts clean. Undo history is discarded.
func (b *Buffer) Load(text string) {
	b.text = text
	b.savedText = text
	b.undoStack = nil
	b.redoStack = nil
}

// Text returns the current text content of the buffer.
func (b *Buffer) Text() string {
	return b.text
}

// SetText updates the buffer's text content. Setting identical content is
// a no-op, so it cannot affect dirty status.
func (b *Buffer) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
}

// Dirty reports whether the buffer's text differs from the last
// loaded/saved snapshot.
func (b *Buffer) Dirty() bool {
	return b.text != b.savedText
}

// MarkSaved records the current text as the saved snapshot, clearing
// dirty status. The session calls this after a successful write.
func (b *Buffer) MarkSaved() {
	b.savedText = b.text
}

// Path returns the absolute file path, or "" if the buffer is untitled.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath associates the buffer with a file path. The session passes
// absolute paths only.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Untitled reports whether the buffer has no associated file path.
func (b *Buffer) Untitled() bool {
	return b.path == ""
}

// Title returns the base filename, or "untitled" if the buffer has no path.
func (b *Buffer) Title() string {
	if b.path == "" {
		return "untitled"
	}
	return filepath.Base(b.path)
}

// LineCount returns the number of lines in the buffer. An empty buffer
// has one line.
func (b *Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

// ApplyEdit records the edit on the undo stack, clears the redo stack,
// and applies the edit to the buffer text. The edit replaces the text at
// [offset, offset+len(oldText)) with newText.
func (b *Buffer) ApplyEdit(offset int, oldText, newText string) {
	b.undoStack = append(b.undoStack, editOp{
		offset:  offset,
		oldText: oldText,
		newText: newText,
	})
	b.redoStack = nil
	b.text = b.text[:offset] + newText + b.text[offset+len(oldText):]
}

// Undo reverses the last edit. Returns true if an edit was undone, false
// if the undo stack is empty.
func (b *Buffer) Undo() bool {
	if len(b.undoStack) == 0 {
		return false
	}
	op := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	// Reverse the edit: replace newText back with oldText.
	b.text = b.text[:op.offset] + op.oldText + b.text[op.offset+len(op.newText):]
	b.redoStack = append(b.redoStack, op)
	return true
}

// Redo reapplies the last undone edit. Returns true if an edit was
// redone, false if the redo stack is empty.
func (b *Buffer) Redo() bool {
	if len(b.redoStack) == 0 {
		return false
	}
	op := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	// Reapply the edit.
	b.text = b.text[:op.offset] + op.newText + b.text[op.offset+len(op.oldText):]
	b.undoStack = append(b.undoStack, op)
	return true
}
