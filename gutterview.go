package main

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/scribe/editor"
)

// gutterView owns the line-number column on screen. It keeps a cache of
// which line number each screen row shows and lets the engine's gutter
// coordinator decide, per frame, whether the cache can be translated
// (pure vertical scroll) or which region must be recomputed.
type gutterView struct {
	g *editor.Gutter

	rows      []int // cached line number per row, 0 = blank, -1 = invalid
	prevTop   int   // topmost visible line (1-based) of the cached frame
	prevCount int   // line count of the cached frame
	height    int
	width     int
}

func newGutterView() *gutterView {
	return &gutterView{g: editor.NewGutter()}
}

// Scroll and Repaint make the row cache an editor.GutterSurface: the
// coordinator calls Scroll to translate cached content and Repaint to
// invalidate a region for recomputation.
func (v *gutterView) Scroll(dy int) {
	shifted := make([]int, len(v.rows))
	for i := range shifted {
		src := i - dy
		if src >= 0 && src < len(v.rows) {
			shifted[i] = v.rows[src]
		} else {
			shifted[i] = -1
		}
	}
	v.rows = shifted
}

func (v *gutterView) Repaint(r editor.GutterRect) {
	for row := r.Y; row < r.Y+r.Height && row < len(v.rows); row++ {
		if row >= 0 {
			v.rows[row] = -1
		}
	}
}

// update synchronizes the cache with the buffer's line count and the
// viewport's top line, and returns whether the column width changed (the
// text area must then be re-margined).
func (v *gutterView) update(lineCount, topLine, height int) bool {
	widthChanged := v.g.SetLineCount(lineCount)
	// Terminal cells are the pixel unit here, so a digit glyph is 1 wide.
	v.width = v.g.RequiredWidth(1)

	viewport := editor.GutterRect{X: 0, Y: 0, Width: v.width, Height: height}

	if widthChanged || height != v.height || v.rows == nil {
		// Geometry changed: full repaint.
		v.rows = make([]int, height)
		v.height = height
		v.g.HandleViewportUpdate(viewport, 0, viewport, v)
	} else {
		if dy := v.prevTop - topLine; dy != 0 {
			// Pure vertical scroll: translate, then repaint only the
			// band the scroll exposed.
			v.g.HandleViewportUpdate(viewport, dy, viewport, v)
			exposed := editor.GutterRect{X: 0, Y: 0, Width: v.width, Height: -dy}
			if dy > 0 {
				exposed = editor.GutterRect{X: 0, Y: 0, Width: v.width, Height: dy}
			} else {
				exposed.Y = height + dy
			}
			v.g.HandleViewportUpdate(exposed, 0, viewport, v)
		}
		if v.prevCount != lineCount {
			// Lines appeared or vanished: every row from the first
			// changed line down is stale (a new line's row is blank, a
			// removed line's row keeps its old number).
			first := v.prevCount
			if lineCount < first {
				first = lineCount
			}
			start := first + 1 - topLine
			if start < 0 {
				start = 0
			}
			if start < height {
				tail := editor.GutterRect{X: 0, Y: start, Width: v.width, Height: height - start}
				v.g.HandleViewportUpdate(tail, 0, viewport, v)
			}
		}
	}
	v.prevTop = topLine
	v.prevCount = lineCount

	v.fill(topLine, height)
	return widthChanged
}

// fill recomputes only the invalidated rows by walking the visible bands.
func (v *gutterView) fill(topLine, height int) {
	invalid := make([]bool, len(v.rows))
	any := false
	for i, r := range v.rows {
		if r == -1 {
			invalid[i] = true
			v.rows[i] = 0
			any = true
		}
	}
	if !any {
		return
	}
	v.g.VisibleBands(topLine, 0, height-1,
		func(int) (int, bool) { return 1, true },
		func(b editor.Band) bool {
			if b.Top >= 0 && b.Top < len(v.rows) && invalid[b.Top] {
				v.rows[b.Top] = b.Line
			}
			return true
		})
}

// draw renders the cached column starting at screen row yOff. The row
// holding currentLine is emphasized.
func (v *gutterView) draw(screen tcell.Screen, yOff, currentLine int, th *theme) {
	for row, line := range v.rows {
		style := th.gutter
		label := ""
		if line > 0 {
			label = strconv.Itoa(line)
			if line == currentLine {
				style = th.gutterCurrent
			}
		}

		// Right-align the number, leaving one trailing separator cell.
		x := 0
		pad := v.width - 1 - len(label)
		for ; x < pad; x++ {
			screen.SetContent(x, yOff+row, ' ', nil, style)
		}
		for _, r := range label {
			screen.SetContent(x, yOff+row, r, nil, style)
			x++
		}
		for ; x < v.width; x++ {
			screen.SetContent(x, yOff+row, ' ', nil, style)
		}
	}
}
