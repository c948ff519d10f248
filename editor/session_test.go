package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.txt")
	text := "first line\nsecond line with ünïcode\n"

	var store OSFileStore
	if err := store.WriteAll(path, text); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := store.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestOSFileStoreReadMissing(t *testing.T) {
	var store OSFileStore
	if _, err := store.ReadAll(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ReadAll of a missing file should fail")
	}
}

func TestSaveRoundTripClearsDirty(t *testing.T) {
	// Writing through the session and reading the file back yields the
	// buffer text, and the buffer is clean immediately after the save.
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("seed"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tm := NewTabManager(OSFileStore{}, &scriptedPicker{}, &scriptedPrompt{})
	if _, err := tm.OpenPath(path); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	buf := tm.ActiveBuffer()
	buf.SetText("updated contents\n")

	if err := tm.SaveActive(); err != nil {
		t.Fatalf("SaveActive: %v", err)
	}
	if buf.Dirty() {
		t.Error("buffer must be clean immediately after a successful save")
	}

	data, err := os.ReadFile(buf.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "updated contents\n" {
		t.Errorf("file = %q, want %q", string(data), "updated contents\n")
	}
}
