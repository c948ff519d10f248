package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// findField identifies which text field has focus in the find bar.
type findField int

const (
	fieldQuery findField = iota
	fieldReplacement
)

// findBar renders a one- or two-row surface above the status line:
//
//	Row 1: "Find: " + query + match counter (e.g. "2/5")
//	Row 2: "Replace: " + replacement (replace mode only)
//
// Keyboard handling while open:
//   - Tab switches focus between the fields (replace mode)
//   - Enter on the query field finds the next match
//   - Enter on the replacement field replaces the current match and
//     advances to the next one
//   - Ctrl+A replaces all matches
//   - Escape closes the bar
//   - Backspace deletes the last character in the focused field
type findBar struct {
	visible     bool
	replaceMode bool

	query       string
	replacement string
	field       findField

	matchTotal   int
	matchCurrent int // 0-based, or -1 when no occurrence is selected

	onFindNext   func()
	onReplace    func()
	onReplaceAll func()
	onChange     func()
	onClose      func()
}

// open shows the bar. Replace mode adds the replacement row.
func (f *findBar) open(replaceMode bool) {
	f.visible = true
	f.replaceMode = replaceMode
	f.field = fieldQuery
}

func (f *findBar) close() {
	f.visible = false
	if f.onClose != nil {
		f.onClose()
	}
}

// rowCount returns how many screen rows the bar occupies.
func (f *findBar) rowCount() int {
	if !f.visible {
		return 0
	}
	if f.replaceMode {
		return 2
	}
	return 1
}

func (f *findBar) setMatchInfo(current, total int) {
	f.matchCurrent = current
	f.matchTotal = total
}

// matchCounter formats the right-aligned counter: "2/5" when an
// occurrence is selected, "5 matches" when none is, "No matches" for a
// fruitless query.
func (f *findBar) matchCounter() string {
	switch {
	case f.matchTotal > 0 && f.matchCurrent >= 0:
		return fmt.Sprintf("%d/%d", f.matchCurrent+1, f.matchTotal)
	case f.matchTotal > 0:
		return fmt.Sprintf("%d matches", f.matchTotal)
	case f.query != "":
		return "No matches"
	}
	return ""
}

func (f *findBar) draw(screen tcell.Screen, y, width int, th *theme) {
	if !f.visible {
		return
	}

	counter := f.matchCounter()
	drawText(screen, 0, y, width, "Find: "+f.query, th.prompt)
	if counter != "" {
		w := runewidth.StringWidth(counter) + 1
		drawText(screen, width-w, y, w, counter, th.prompt)
	}
	if f.field == fieldQuery {
		screen.ShowCursor(runewidth.StringWidth("Find: "+f.query), y)
	}

	if f.replaceMode {
		drawText(screen, 0, y+1, width, "Replace: "+f.replacement, th.prompt)
		if f.field == fieldReplacement {
			screen.ShowCursor(runewidth.StringWidth("Replace: "+f.replacement), y+1)
		}
	}
}

// handleKey processes a key event while the bar is open. Returns false
// for keys the bar does not consume.
func (f *findBar) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		f.close()
		return true

	case tcell.KeyTab:
		if f.replaceMode {
			if f.field == fieldQuery {
				f.field = fieldReplacement
			} else {
				f.field = fieldQuery
			}
		}
		return true

	case tcell.KeyEnter:
		if f.field == fieldReplacement {
			if f.onReplace != nil {
				f.onReplace()
			}
		} else if f.onFindNext != nil {
			f.onFindNext()
		}
		return true

	case tcell.KeyCtrlA:
		// Only meaningful with a replacement field; otherwise let the
		// editor's own binding have it.
		if !f.replaceMode {
			return false
		}
		if f.onReplaceAll != nil {
			f.onReplaceAll()
		}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.deleteChar()
		return true

	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return false
		}
		f.insertChar(ev.Rune())
		return true
	}

	return false
}

// insertChar appends a rune to the currently focused field.
func (f *findBar) insertChar(r rune) {
	if f.field == fieldQuery {
		f.query += string(r)
		if f.onChange != nil {
			f.onChange()
		}
	} else {
		f.replacement += string(r)
	}
}

// deleteChar removes the last rune from the currently focused field.
func (f *findBar) deleteChar() {
	if f.field == fieldQuery {
		if len(f.query) > 0 {
			_, size := utf8.DecodeLastRuneInString(f.query)
			f.query = f.query[:len(f.query)-size]
			if f.onChange != nil {
				f.onChange()
			}
		}
	} else {
		if len(f.replacement) > 0 {
			_, size := utf8.DecodeLastRuneInString(f.replacement)
			f.replacement = f.replacement[:len(f.replacement)-size]
		}
	}
}
