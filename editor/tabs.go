package editor

import (
	"fmt"
	"path/filepath"
)

// TabManager owns the ordered collection of open buffers and tracks
// which one is active. It is pure data management plus the close
// negotiation; it talks to the outside world only through the
// collaborator interfaces from session.go.
type TabManager struct {
	buffers []*Buffer
	active  int // index of active tab, or -1 if none

	files  FileStore
	picker PathPicker
	prompt ClosePrompt
}

// NewTabManager creates a TabManager with no open buffers.
func NewTabManager(files FileStore, picker PathPicker, prompt ClosePrompt) *TabManager {
	return &TabManager{
		active: -1,
		files:  files,
		picker: picker,
		prompt: prompt,
	}
}

// Count returns the number of open buffers.
func (tm *TabManager) Count() int {
	return len(tm.buffers)
}

// Active returns the index of the active tab, or -1 if there are no open
// buffers.
func (tm *TabManager) Active() int {
	return tm.active
}

// ActiveBuffer returns the currently active buffer, or nil if there are
// no open buffers.
func (tm *TabManager) ActiveBuffer() *Buffer {
	if tm.active < 0 || tm.active >= len(tm.buffers) {
		return nil
	}
	return tm.buffers[tm.active]
}

// Buffer returns the buffer at the given index, or nil if the index is
// out of range.
func (tm *TabManager) Buffer(index int) *Buffer {
	if index < 0 || index >= len(tm.buffers) {
		return nil
	}
	return tm.buffers[index]
}

// Buffers returns all open buffers in tab order.
func (tm *TabManager) Buffers() []*Buffer {
	return tm.buffers
}

// SetActive switches the active tab to the given index. If the index is
// out of range, this is a no-op.
func (tm *TabManager) SetActive(index int) {
	if index < 0 || index >= len(tm.buffers) {
		return
	}
	tm.active = index
}

// NewDocument creates a new empty, untitled buffer, appends it, sets it
// as the active tab, and returns its index.
func (tm *TabManager) NewDocument() int {
	buf := NewBuffer()
	tm.buffers = append(tm.buffers, buf)
	tm.active = len(tm.buffers) - 1
	return tm.active
}

// OpenPath opens the file at path. If a buffer with the same absolute
// path is already open, it activates that buffer instead of opening a
// duplicate. A read failure creates no tab and leaves the session
// unchanged. Returns the tab index of the opened or activated buffer.
func (tm *TabManager) OpenPath(path string) (int, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return -1, err
	}

	// An already-open path activates the existing tab.
	for i, buf := range tm.buffers {
		if buf.Path() == absPath {
			tm.active = i
			return i, nil
		}
	}

	text, err := tm.files.ReadAll(absPath)
	if err != nil {
		return -1, fmt.Errorf("open %s: %w", path, err)
	}

	buf := NewBuffer()
	buf.Load(text) // freshly opened documents start clean
	buf.SetPath(absPath)
	tm.buffers = append(tm.buffers, buf)
	tm.active = len(tm.buffers) - 1
	return tm.active, nil
}

// SaveActive writes the active buffer to its path, delegating to the
// save-as flow when it has none. Returns ErrCancelled if the user
// declined the path picker. On a write failure the buffer stays dirty.
func (tm *TabManager) SaveActive() error {
	buf := tm.ActiveBuffer()
	if buf == nil {
		return nil
	}
	return tm.save(buf)
}

// SaveActiveAs always asks for a path, then writes the active buffer
// there and rebinds the buffer to that path.
func (tm *TabManager) SaveActiveAs() error {
	buf := tm.ActiveBuffer()
	if buf == nil {
		return nil
	}
	return tm.saveAs(buf)
}

// save writes buf to its path, routing untitled buffers through the
// picker first.
func (tm *TabManager) save(buf *Buffer) error {
	if buf.Untitled() {
		return tm.saveAs(buf)
	}
	if err := tm.files.WriteAll(buf.Path(), buf.Text()); err != nil {
		return fmt.Errorf("save %s: %w", buf.Title(), err)
	}
	buf.MarkSaved()
	return nil
}

// saveAs picks a path, writes buf there, and rebinds buf to the path.
// The buffer is only marked clean after a successful write.
func (tm *TabManager) saveAs(buf *Buffer) error {
	path, ok := tm.picker.PickSave(buf.Title())
	if !ok {
		return ErrCancelled
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := tm.files.WriteAll(absPath, buf.Text()); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(absPath), err)
	}
	buf.SetPath(absPath)
	buf.MarkSaved()
	return nil
}

// CloseTab closes the buffer at index. A dirty buffer triggers the
// unsaved-changes prompt: Cancel aborts with no mutation, Discard removes
// the tab unconditionally, and Save must fully succeed (including the
// save-as path for an untitled buffer) before the tab is removed. Returns
// whether the tab was removed; ErrCancelled covers both a prompt cancel
// and a declined save-as picker.
func (tm *TabManager) CloseTab(index int) (bool, error) {
	buf := tm.Buffer(index)
	if buf == nil {
		return false, nil
	}
	if buf.Dirty() {
		switch tm.prompt.ConfirmClose(buf.Title()) {
		case CancelClose:
			return false, ErrCancelled
		case SaveChanges:
			if err := tm.save(buf); err != nil {
				return false, err
			}
		case DiscardChanges:
			// fall through to removal
		}
	}
	tm.remove(index)
	return true, nil
}

// CloseAll runs the close negotiation for every open tab in order, for
// session termination. The first aborted negotiation stops the sweep and
// leaves the whole collection intact; tabs are only removed after every
// negotiation has been resolved. Returns whether the session may
// terminate.
func (tm *TabManager) CloseAll() (bool, error) {
	for _, buf := range tm.buffers {
		if !buf.Dirty() {
			continue
		}
		switch tm.prompt.ConfirmClose(buf.Title()) {
		case CancelClose:
			return false, ErrCancelled
		case SaveChanges:
			if err := tm.save(buf); err != nil {
				return false, err
			}
		case DiscardChanges:
		}
	}
	tm.buffers = nil
	tm.active = -1
	return true, nil
}

// Startup opens each argument path in order; a failed open is reported
// through notify and does not stop the remaining paths. Returns whether
// any document is open afterwards, so the host creates the default empty
// document only when nothing was opened during startup.
func (tm *TabManager) Startup(paths []string, notify Notifier) bool {
	for _, p := range paths {
		if _, err := tm.OpenPath(p); err != nil && notify != nil {
			notify.Warn(err.Error())
		}
	}
	return tm.Count() > 0
}

// remove deletes the buffer at index and adjusts the active index:
//   - If the removed tab was before the active tab, active shifts down.
//   - If the removed tab was the active tab, active clamps to the last
//     valid index.
//   - If no buffers remain, active becomes -1.
func (tm *TabManager) remove(index int) {
	if index < 0 || index >= len(tm.buffers) {
		return
	}

	tm.buffers = append(tm.buffers[:index], tm.buffers[index+1:]...)

	if len(tm.buffers) == 0 {
		tm.active = -1
		return
	}

	if index < tm.active {
		tm.active--
	} else if index == tm.active {
		if tm.active >= len(tm.buffers) {
			tm.active = len(tm.buffers) - 1
		}
	}
	// If index > tm.active, active stays the same (still valid).
}
