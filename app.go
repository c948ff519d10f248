package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/scribe/editor"
)

// viewState is the per-tab cursor/scroll state. The engine owns the
// buffers; the host owns how each one is being looked at.
type viewState struct {
	cursor  int // byte offset into buffer text
	sel     editor.Selection
	topLine int // first visible line, 0-based
}

// app is the terminal host. It wires the engine (tabs, search, gutter,
// highlighter) to a tcell screen and dispatches user commands to it, one
// event at a time on the single control goroutine.
type app struct {
	screen tcell.Screen
	cfg    Config
	th     theme

	tabs    *editor.TabManager
	hl      *editor.Highlighter
	gutterV *gutterView

	bar    *tabBar
	status *statusBar
	find   *findBar

	views map[*editor.Buffer]*viewState

	quitting bool
}

func newApp(cfg Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{
		screen:  screen,
		cfg:     cfg,
		th:      themeByName(cfg.Theme),
		hl:      editor.NewHighlighter(cfg.Keywords),
		gutterV: newGutterView(),
		bar:     &tabBar{},
		status:  &statusBar{},
		find:    &findBar{},
		views:   make(map[*editor.Buffer]*viewState),
	}

	p := &prompter{a: a}
	a.tabs = editor.NewTabManager(editor.OSFileStore{}, p, p)

	a.bar.onClick = func(index int) {
		a.tabs.SetActive(index)
	}
	a.find.onChange = a.onSearchChange
	a.find.onFindNext = a.onFindNext
	a.find.onReplace = a.onReplace
	a.find.onReplaceAll = a.onReplaceAll
	a.find.onClose = func() { a.refreshMatchInfo() }

	return a, nil
}

// run is the event loop: draw, poll, dispatch, until quit.
func (a *app) run() error {
	defer a.screen.Fini()

	for !a.quitting {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventKey:
			a.handleKey(ev)
		}
	}
	return nil
}

// view returns the view state for the active buffer, creating it on
// first use. Returns nil when no tab is open.
func (a *app) view() *viewState {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return nil
	}
	v, ok := a.views[buf]
	if !ok {
		v = &viewState{}
		a.views[buf] = v
	}
	return v
}

// ---- layout and drawing ----

// textHeight returns the number of rows available to the text area.
func (a *app) textHeight() int {
	_, h := a.screen.Size()
	h -= 2 // tab bar + status line
	h -= a.find.rowCount()
	if h < 1 {
		h = 1
	}
	return h
}

func (a *app) draw() {
	a.screen.HideCursor()
	w, h := a.screen.Size()

	tabs := make([]tabInfo, a.tabs.Count())
	for i, buf := range a.tabs.Buffers() {
		tabs[i] = tabInfo{title: buf.Title(), dirty: buf.Dirty()}
	}
	a.bar.setTabs(tabs, a.tabs.Active())
	a.bar.draw(a.screen, 0, w, &a.th)

	textH := a.textHeight()
	a.drawTextArea(1, textH, w)

	if a.find.visible {
		a.find.draw(a.screen, 1+textH, w, &a.th)
	}

	a.updateStatusLeft()
	a.status.draw(a.screen, h-1, w, &a.th)

	a.screen.Show()
}

// drawWithPromptLine redraws the frame with the status row replaced by a
// modal prompt. Used by the prompter while one of its loops runs.
func (a *app) drawWithPromptLine(label, value string) {
	a.draw()
	w, h := a.screen.Size()
	drawText(a.screen, 0, h-1, w, label+value, a.th.prompt)
	a.screen.ShowCursor(runewidth.StringWidth(label+value), h-1)
	a.screen.Show()
}

func (a *app) drawTextArea(yOff, height, width int) {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		for row := 0; row < height; row++ {
			drawText(a.screen, 0, yOff+row, width, "", a.th.text)
		}
		return
	}
	v := a.view()
	text := buf.Text()
	lines := strings.Split(text, "\n")

	a.clampView(v, len(lines), height)
	cursorLine, cursorCol := locate(lines, v.cursor)

	a.gutterV.update(buf.LineCount(), v.topLine+1, height)
	a.gutterV.draw(a.screen, yOff, cursorLine+1, &a.th)

	gutterW := a.gutterV.width
	textW := width - gutterW
	if textW < 1 {
		return
	}

	selStart, selEnd := v.sel.Ordered()
	lineOff := offsetOfLine(lines, v.topLine)

	for row := 0; row < height; row++ {
		lineIdx := v.topLine + row
		if lineIdx >= len(lines) {
			drawText(a.screen, gutterW, yOff+row, textW, "", a.th.text)
			continue
		}
		line := lines[lineIdx]
		base := a.th.text
		if lineIdx == cursorLine {
			base = a.th.currentLine
		}
		styles := a.lineStyles(line, base)

		x := 0
		for i, r := range line {
			if x >= textW {
				break
			}
			style := styles[i]
			off := lineOff + i
			if v.sel.Active() && off >= selStart && off < selEnd {
				style = a.th.selection
			}
			if r == '\t' {
				next := (x/a.cfg.TabWidth + 1) * a.cfg.TabWidth
				for x < next && x < textW {
					a.screen.SetContent(gutterW+x, yOff+row, ' ', nil, style)
					x++
				}
				continue
			}
			a.screen.SetContent(gutterW+x, yOff+row, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
		for ; x < textW; x++ {
			a.screen.SetContent(gutterW+x, yOff+row, ' ', nil, base)
		}

		lineOff += len(line) + 1
	}

	// Place the terminal cursor unless a find-bar field owns it.
	if !a.find.visible {
		cx := visualColumn(lines[cursorLine], cursorCol, a.cfg.TabWidth)
		if cx < textW {
			a.screen.ShowCursor(gutterW+cx, yOff+cursorLine-v.topLine)
		}
	}
}

// lineStyles expands the highlighter's spans into a per-byte style
// table over the row's base style. Spans are applied in emission order,
// so later categories overwrite earlier ones where they overlap (comment
// over string over keyword). Only the span's foreground and attributes
// are taken, so the base background (current-line tint included) shows
// through.
func (a *app) lineStyles(line string, base tcell.Style) []tcell.Style {
	styles := make([]tcell.Style, len(line))
	for i := range styles {
		styles[i] = base
	}
	for _, sp := range a.hl.Highlight(line) {
		fg, _, attrs := a.th.spanStyle(sp.Category).Decompose()
		style := base.Foreground(fg).Attributes(attrs)
		for i := sp.Offset; i < sp.Offset+sp.Length && i < len(styles); i++ {
			styles[i] = style
		}
	}
	return styles
}

func (a *app) updateStatusLeft() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		a.status.left = " no document"
		return
	}
	dirty := ""
	if buf.Dirty() {
		dirty = " [modified]"
	}
	v := a.view()
	lines := strings.Split(buf.Text(), "\n")
	line, col := locate(lines, v.cursor)
	a.status.left = fmt.Sprintf(" %s%s  Ln %d, Col %d",
		buf.Title(), dirty, line+1, utf8.RuneCountInString(lines[line][:col])+1)
}

// clampView keeps cursor and scroll inside the buffer and keeps the
// cursor row on screen.
func (a *app) clampView(v *viewState, lineCount, height int) {
	buf := a.tabs.ActiveBuffer()
	if v.cursor > len(buf.Text()) {
		v.cursor = len(buf.Text())
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	lines := strings.Split(buf.Text(), "\n")
	line, _ := locate(lines, v.cursor)
	if line < v.topLine {
		v.topLine = line
	}
	if line >= v.topLine+height {
		v.topLine = line - height + 1
	}
	if v.topLine > lineCount-1 {
		v.topLine = lineCount - 1
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
}

// ---- input ----

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if y == 0 {
		a.bar.handleClick(x)
		return
	}
	// Click in the text area moves the cursor.
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	v := a.view()
	row := y - 1
	if row < 0 || row >= a.textHeight() {
		return
	}
	lines := strings.Split(buf.Text(), "\n")
	lineIdx := v.topLine + row
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}
	col := byteColumnAt(lines[lineIdx], x-a.gutterV.width, a.cfg.TabWidth)
	v.cursor = offsetOfLine(lines, lineIdx) + col
	v.sel.CollapseTo(v.cursor)
}

func (a *app) handleKey(ev *tcell.EventKey) {
	a.status.clearNotice()

	if a.find.visible && a.find.handleKey(ev) {
		return
	}

	switch ev.Key() {
	case tcell.KeyCtrlN:
		a.cmdNew()
	case tcell.KeyCtrlO:
		a.cmdOpen()
	case tcell.KeyCtrlS:
		a.cmdSave()
	case tcell.KeyF12:
		a.cmdSaveAs()
	case tcell.KeyCtrlW:
		a.cmdCloseTab()
	case tcell.KeyCtrlQ:
		a.cmdQuit()
	case tcell.KeyCtrlF:
		a.find.open(false)
	case tcell.KeyCtrlR:
		a.find.open(true)
	case tcell.KeyF3:
		a.onFindNext()
	case tcell.KeyF6:
		a.cmdCycleTab(ev.Modifiers()&tcell.ModShift == 0)
	case tcell.KeyCtrlA:
		a.cmdSelectAll()
	case tcell.KeyCtrlZ:
		a.cmdUndo()
	case tcell.KeyCtrlY:
		a.cmdRedo()
	case tcell.KeyCtrlC:
		a.cmdCopy()
	case tcell.KeyCtrlX:
		a.cmdCut()
	case tcell.KeyCtrlV:
		a.cmdPaste()
	default:
		a.handleEditKey(ev)
	}
}

func (a *app) handleEditKey(ev *tcell.EventKey) {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	v := a.view()

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return
		}
		a.insertText(string(ev.Rune()))
	case tcell.KeyEnter:
		a.insertText("\n")
	case tcell.KeyTab:
		a.insertText("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.deleteBackward()
	case tcell.KeyDelete:
		a.deleteForward()
	case tcell.KeyLeft:
		a.moveCursor(v, -1, 0)
	case tcell.KeyRight:
		a.moveCursor(v, 1, 0)
	case tcell.KeyUp:
		a.moveCursor(v, 0, -1)
	case tcell.KeyDown:
		a.moveCursor(v, 0, 1)
	case tcell.KeyPgUp:
		a.moveCursor(v, 0, -a.textHeight())
	case tcell.KeyPgDn:
		a.moveCursor(v, 0, a.textHeight())
	case tcell.KeyHome:
		lines := strings.Split(buf.Text(), "\n")
		line, _ := locate(lines, v.cursor)
		v.cursor = offsetOfLine(lines, line)
		v.sel.CollapseTo(v.cursor)
	case tcell.KeyEnd:
		lines := strings.Split(buf.Text(), "\n")
		line, _ := locate(lines, v.cursor)
		v.cursor = offsetOfLine(lines, line) + len(lines[line])
		v.sel.CollapseTo(v.cursor)
	}
}

// moveCursor moves by dx runes and dy lines, collapsing any selection.
func (a *app) moveCursor(v *viewState, dx, dy int) {
	buf := a.tabs.ActiveBuffer()
	text := buf.Text()

	if dx < 0 && v.cursor > 0 {
		_, size := utf8.DecodeLastRuneInString(text[:v.cursor])
		v.cursor -= size
	} else if dx > 0 && v.cursor < len(text) {
		_, size := utf8.DecodeRuneInString(text[v.cursor:])
		v.cursor += size
	}

	if dy != 0 {
		lines := strings.Split(text, "\n")
		line, col := locate(lines, v.cursor)
		line += dy
		if line < 0 {
			line = 0
		}
		if line > len(lines)-1 {
			line = len(lines) - 1
		}
		if col > len(lines[line]) {
			col = len(lines[line])
		}
		v.cursor = offsetOfLine(lines, line) + col
	}

	v.sel.CollapseTo(v.cursor)
}

// ---- editing ----

// insertText replaces the selection (if any) with text, or inserts it at
// the cursor.
func (a *app) insertText(text string) {
	buf := a.tabs.ActiveBuffer()
	v := a.view()
	if v.sel.Active() {
		r := v.sel.Range()
		buf.ApplyEdit(r.Start, v.sel.Text(buf.Text()), text)
		v.cursor = r.Start + len(text)
	} else {
		buf.ApplyEdit(v.cursor, "", text)
		v.cursor += len(text)
	}
	v.sel.CollapseTo(v.cursor)
}

func (a *app) deleteBackward() {
	buf := a.tabs.ActiveBuffer()
	v := a.view()
	if v.sel.Active() {
		a.deleteSelection()
		return
	}
	if v.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(buf.Text()[:v.cursor])
	buf.ApplyEdit(v.cursor-size, buf.Text()[v.cursor-size:v.cursor], "")
	v.cursor -= size
	v.sel.CollapseTo(v.cursor)
}

func (a *app) deleteForward() {
	buf := a.tabs.ActiveBuffer()
	v := a.view()
	if v.sel.Active() {
		a.deleteSelection()
		return
	}
	text := buf.Text()
	if v.cursor >= len(text) {
		return
	}
	_, size := utf8.DecodeRuneInString(text[v.cursor:])
	buf.ApplyEdit(v.cursor, text[v.cursor:v.cursor+size], "")
}

func (a *app) deleteSelection() {
	buf := a.tabs.ActiveBuffer()
	v := a.view()
	r := v.sel.Range()
	buf.ApplyEdit(r.Start, v.sel.Text(buf.Text()), "")
	v.cursor = r.Start
	v.sel.CollapseTo(v.cursor)
}

// ---- clipboard ----

func (a *app) cmdCopy() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	v := a.view()
	if !v.sel.Active() {
		return
	}
	if err := clipboard.WriteAll(v.sel.Text(buf.Text())); err != nil {
		a.status.Warn(fmt.Sprintf("Clipboard: %v", err))
	}
}

func (a *app) cmdCut() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	v := a.view()
	if !v.sel.Active() {
		return
	}
	if err := clipboard.WriteAll(v.sel.Text(buf.Text())); err != nil {
		a.status.Warn(fmt.Sprintf("Clipboard: %v", err))
		return
	}
	a.deleteSelection()
}

func (a *app) cmdPaste() {
	if a.tabs.ActiveBuffer() == nil {
		return
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		a.status.Warn(fmt.Sprintf("Clipboard: %v", err))
		return
	}
	if text != "" {
		a.insertText(text)
	}
}

// ---- commands ----

func (a *app) cmdNew() {
	a.tabs.NewDocument()
}

func (a *app) cmdOpen() {
	p := &prompter{a: a}
	path, ok := p.PickOpen()
	if !ok {
		return
	}
	if _, err := a.tabs.OpenPath(path); err != nil {
		a.status.Warn(err.Error())
	}
}

func (a *app) cmdSave() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	err := a.tabs.SaveActive()
	switch {
	case errors.Is(err, editor.ErrCancelled):
		// silent abort
	case err != nil:
		a.status.Warn(err.Error())
	default:
		a.status.Info(fmt.Sprintf("Saved %s", buf.Title()))
	}
}

func (a *app) cmdSaveAs() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	err := a.tabs.SaveActiveAs()
	switch {
	case errors.Is(err, editor.ErrCancelled):
	case err != nil:
		a.status.Warn(err.Error())
	default:
		a.status.Info(fmt.Sprintf("Saved %s", buf.Title()))
	}
}

func (a *app) cmdCloseTab() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	closed, err := a.tabs.CloseTab(a.tabs.Active())
	switch {
	case errors.Is(err, editor.ErrCancelled):
	case err != nil:
		a.status.Warn(err.Error())
	}
	if closed {
		delete(a.views, buf)
	}
}

func (a *app) cmdQuit() {
	done, err := a.tabs.CloseAll()
	switch {
	case errors.Is(err, editor.ErrCancelled):
	case err != nil:
		a.status.Warn(err.Error())
	}
	if done {
		a.quitting = true
	}
}

func (a *app) cmdCycleTab(forward bool) {
	count := a.tabs.Count()
	if count == 0 {
		return
	}
	idx := a.tabs.Active()
	if forward {
		idx = (idx + 1) % count
	} else {
		idx = (idx - 1 + count) % count
	}
	a.tabs.SetActive(idx)
}

func (a *app) cmdSelectAll() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	v := a.view()
	v.sel.SelectAll(len(buf.Text()))
	v.cursor = v.sel.Cursor
}

func (a *app) cmdUndo() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil || !buf.Undo() {
		return
	}
	v := a.view()
	if v.cursor > len(buf.Text()) {
		v.cursor = len(buf.Text())
	}
	v.sel.CollapseTo(v.cursor)
}

func (a *app) cmdRedo() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil || !buf.Redo() {
		return
	}
	v := a.view()
	if v.cursor > len(buf.Text()) {
		v.cursor = len(buf.Text())
	}
	v.sel.CollapseTo(v.cursor)
}

// ---- find/replace wiring ----

// onSearchChange re-runs the live search as the query is edited.
func (a *app) onSearchChange() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	v := a.view()
	query := a.find.query
	if query == "" {
		a.find.setMatchInfo(-1, 0)
		return
	}
	if r, ok := editor.FindNext(buf, query, v.sel.Range().Start); ok {
		v.sel.SelectRange(r)
		v.cursor = r.End
	}
	a.refreshMatchInfo()
}

func (a *app) onFindNext() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil || a.find.query == "" {
		return
	}
	v := a.view()
	r, ok := editor.FindNext(buf, a.find.query, v.sel.Range().End)
	if !ok {
		a.status.Info(fmt.Sprintf("Not found: %s", a.find.query))
		a.find.setMatchInfo(-1, 0)
		return
	}
	v.sel.SelectRange(r)
	v.cursor = r.End
	a.refreshMatchInfo()
}

func (a *app) onReplace() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil || a.find.query == "" {
		return
	}
	v := a.view()
	next, ok := editor.ReplaceCurrentAndAdvance(buf, &v.sel, a.find.query, a.find.replacement)
	if ok {
		v.cursor = next.End
	} else {
		v.cursor = v.sel.Cursor
		a.status.Info(fmt.Sprintf("No more matches: %s", a.find.query))
	}
	a.refreshMatchInfo()
}

func (a *app) onReplaceAll() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil {
		return
	}
	count := editor.ReplaceAll(buf, a.find.query, a.find.replacement)
	if count == 0 {
		a.status.Info(fmt.Sprintf("No occurrences of %q", a.find.query))
	} else {
		a.status.Info(fmt.Sprintf("Replaced %d occurrence(s)", count))
	}
	v := a.view()
	if v.cursor > len(buf.Text()) {
		v.cursor = len(buf.Text())
	}
	v.sel.CollapseTo(v.cursor)
	a.refreshMatchInfo()
}

// refreshMatchInfo recomputes the "n/total" counter shown in the bar.
func (a *app) refreshMatchInfo() {
	buf := a.tabs.ActiveBuffer()
	if buf == nil || !a.find.visible {
		return
	}
	matches := editor.FindAll(buf, a.find.query)
	if len(matches) == 0 {
		a.find.setMatchInfo(-1, 0)
		return
	}
	v := a.view()
	current := -1
	for i, m := range matches {
		if m == v.sel.Range() {
			current = i
			break
		}
	}
	a.find.setMatchInfo(current, len(matches))
}

// ---- text geometry helpers ----

// locate returns the 0-based line index and byte column of offset.
func locate(lines []string, offset int) (line, col int) {
	for i, l := range lines {
		if offset <= len(l) {
			return i, offset
		}
		offset -= len(l) + 1
	}
	last := len(lines) - 1
	return last, len(lines[last])
}

// offsetOfLine returns the byte offset where the given line starts.
func offsetOfLine(lines []string, line int) int {
	off := 0
	for i := 0; i < line && i < len(lines); i++ {
		off += len(lines[i]) + 1
	}
	return off
}

// visualColumn converts a byte column into a screen column, expanding
// tabs to the next tab stop.
func visualColumn(line string, byteCol, tabWidth int) int {
	x := 0
	for i, r := range line {
		if i >= byteCol {
			break
		}
		if r == '\t' {
			x = (x/tabWidth + 1) * tabWidth
		} else {
			x += runewidth.RuneWidth(r)
		}
	}
	return x
}

// byteColumnAt converts a screen column back into a byte column.
func byteColumnAt(line string, visualCol, tabWidth int) int {
	x := 0
	for i, r := range line {
		if x >= visualCol {
			return i
		}
		if r == '\t' {
			x = (x/tabWidth + 1) * tabWidth
		} else {
			x += runewidth.RuneWidth(r)
		}
	}
	return len(line)
}
