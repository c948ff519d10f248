package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tabInfo holds display data for a single tab.
type tabInfo struct {
	title string
	dirty bool
}

// tabBar renders a horizontal row of tab titles. The active tab is
// highlighted and dirty buffers show a "*" indicator. Clicking a tab
// fires the onClick callback with the tab index.
type tabBar struct {
	tabs    []tabInfo
	active  int
	onClick func(index int)
}

// setTabs replaces the tab data.
func (t *tabBar) setTabs(tabs []tabInfo, active int) {
	t.tabs = tabs
	t.active = active
}

func tabLabel(tab tabInfo) string {
	label := " " + tab.title
	if tab.dirty {
		label += "*"
	}
	return label + " "
}

// draw renders the bar into screen row y across the given width.
func (t *tabBar) draw(screen tcell.Screen, y, width int, th *theme) {
	x := 0
	for i, tab := range t.tabs {
		if x >= width {
			break
		}

		s := th.tabInactive
		if i == t.active {
			s = th.tabActive
		}

		for _, r := range tabLabel(tab) {
			w := runewidth.RuneWidth(r)
			if x+w > width {
				break
			}
			screen.SetContent(x, y, r, nil, s)
			x += w
		}

		// Separator between tabs
		if i < len(t.tabs)-1 && x < width {
			screen.SetContent(x, y, '│', nil, th.tabInactive)
			x++
		}
	}

	for x < width {
		screen.SetContent(x, y, ' ', nil, th.tabInactive)
		x++
	}
}

// handleClick reports whether a press at column px selected a tab.
func (t *tabBar) handleClick(px int) bool {
	idx := t.tabAtX(px)
	if idx < 0 || idx >= len(t.tabs) || t.onClick == nil {
		return false
	}
	t.onClick(idx)
	return true
}

// tabAtX returns the tab index at the given x coordinate, or -1.
func (t *tabBar) tabAtX(px int) int {
	x := 0
	for i, tab := range t.tabs {
		w := runewidth.StringWidth(tabLabel(tab))
		if px >= x && px < x+w {
			return i
		}
		x += w

		// Account for separator
		if i < len(t.tabs)-1 {
			x++
		}
	}
	return -1
}
