package editor

import (
	"errors"
	"os"
)

// The session boundary: everything the engine needs from its host that
// involves I/O or user interaction is expressed as a small interface
// here. The TabManager resolves file and picker failures at this
// boundary; they never reach the gutter or highlighter.

// FileStore reads and writes whole documents. Text is handled as
// complete UTF-8 files; no streaming or partial writes are exposed.
type FileStore interface {
	ReadAll(path string) (string, error)
	WriteAll(path, text string) error
}

// PathPicker asks the user for a path. The boolean is false when the user
// cancelled, which silently aborts the enclosing operation.
type PathPicker interface {
	PickOpen() (path string, ok bool)
	PickSave(suggested string) (path string, ok bool)
}

// CloseDecision is the outcome of the unsaved-changes prompt.
type CloseDecision int

const (
	SaveChanges CloseDecision = iota
	DiscardChanges
	CancelClose
)

// ClosePrompt asks the user what to do with unsaved changes in the
// document named title.
type ClosePrompt interface {
	ConfirmClose(title string) CloseDecision
}

// Notifier carries non-fatal user-facing notices. Warn is for failed
// opens and saves, Info for statuses like "no matches". No notice is ever
// fatal to the session.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
}

// ErrCancelled is returned when the user declines a picker or prompt.
// Callers abort the enclosing operation without surfacing an error.
var ErrCancelled = errors.New("cancelled")

// OSFileStore is the default FileStore backed by the local filesystem.
type OSFileStore struct{}

func (OSFileStore) ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (OSFileStore) WriteAll(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
