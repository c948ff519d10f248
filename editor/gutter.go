package editor

// Band is one gutter entry: a line number and the top coordinate of the
// band it occupies, in the same units the host's viewport reports
// (pixels for a graphical host, rows for a terminal host).
type Band struct {
	Line int // 1-based line number
	Top  int
}

// GutterRect is an axis-aligned region of the gutter's drawing surface.
type GutterRect struct {
	X, Y, Width, Height int
}

// Contains reports whether r fully contains other.
func (r GutterRect) Contains(other GutterRect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// GutterSurface is the host-owned drawing surface for the gutter. The
// coordinator decides whether an update can be satisfied by translating
// the existing content or needs a repaint; the host owns the pixels.
type GutterSurface interface {
	// Scroll translates the surface content vertically by dy.
	Scroll(dy int)
	// Repaint redraws the given region from scratch.
	Repaint(r GutterRect)
}

// Gutter maps buffer line numbers to vertical bands for the line-number
// column and tracks the width the column needs. It holds no reference to
// any buffer; the host feeds it the current line count and viewport
// state per update.
type Gutter struct {
	lineCount int
	digits    int
}

// NewGutter returns a gutter sized for a one-line document.
func NewGutter() *Gutter {
	return &Gutter{lineCount: 1, digits: 1}
}

// LineCount returns the line count last passed to SetLineCount.
func (g *Gutter) LineCount() int {
	return g.lineCount
}

// SetLineCount records the buffer's current line count and reports
// whether the required width changed. The width only moves at digit-count
// boundaries (9→10, 99→100, ...), so the host re-margins its viewport
// only when this returns true instead of on every line-count change.
func (g *Gutter) SetLineCount(count int) bool {
	if count < 1 {
		count = 1
	}
	g.lineCount = count
	d := digitCount(count)
	if d == g.digits {
		return false
	}
	g.digits = d
	return true
}

// RequiredWidth returns the width of the line-number column for the
// current line count: 3 units of padding plus one digit-glyph width per
// digit of the highest line number.
func (g *Gutter) RequiredWidth(digitGlyphWidth int) int {
	return 3 + digitGlyphWidth*g.digits
}

// VisibleBands walks forward from the first visible line, accumulating
// band heights until the viewport bottom is passed, and calls fn for each
// visible band. The rows callback supplies each line's band height and
// whether the line is visible (collapsed lines report hidden and
// typically a zero height, which skips them without emitting a band).
// Returning false from fn stops the walk, so one paint request consumes
// exactly as much of the sequence as it needs.
func (g *Gutter) VisibleBands(firstLine, top, bottom int, rows func(line int) (height int, visible bool), fn func(Band) bool) {
	for line := firstLine; line <= g.lineCount && top <= bottom; line++ {
		height, visible := rows(line)
		if visible {
			if !fn(Band{Line: line, Top: top}) {
				return
			}
		}
		top += height
	}
}

// HandleViewportUpdate reacts to a viewport update event. A pure vertical
// scroll of dy translates the surface instead of repainting it; any other
// change repaints the affected region. Returns true when the update
// covered the whole viewport, in which case the host should re-check
// RequiredWidth and re-margin if needed.
func (g *Gutter) HandleViewportUpdate(region GutterRect, dy int, viewport GutterRect, surface GutterSurface) bool {
	if dy != 0 {
		surface.Scroll(dy)
	} else {
		surface.Repaint(region)
	}
	return region.Contains(viewport)
}

// digitCount returns the number of digits needed to display n, treating
// anything below 1 as a one-line document.
func digitCount(n int) int {
	if n < 1 {
		n = 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
