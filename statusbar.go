package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// statusBar renders the bottom line: document status on the left, a
// transient notice on the right. It is also the engine's Notifier, so
// open/save warnings and find/replace notices land here instead of
// terminating anything.
type statusBar struct {
	left   string
	notice string
	isWarn bool
}

func (s *statusBar) Info(msg string) {
	s.notice = msg
	s.isWarn = false
}

func (s *statusBar) Warn(msg string) {
	s.notice = msg
	s.isWarn = true
}

// clearNotice drops the transient notice; the app calls this on the next
// user command so notices survive exactly one interaction.
func (s *statusBar) clearNotice() {
	s.notice = ""
}

func (s *statusBar) draw(screen tcell.Screen, y, width int, th *theme) {
	drawText(screen, 0, y, width, s.left, th.status)

	if s.notice == "" {
		return
	}
	style := th.info
	if s.isWarn {
		style = th.warn
	}
	msg := " " + s.notice + " "
	w := runewidth.StringWidth(msg)
	x := width - w
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, width-x, msg, style)
}

// drawText writes text at (x, y), clipped to maxWidth cells, padding the
// remainder with spaces in the same style.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col+w > x+maxWidth {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col += w
	}
	for col < x+maxWidth {
		screen.SetContent(col, y, ' ', nil, style)
		col++
	}
}
