package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/odvcencio/scribe/editor"
)

// theme maps the engine's span categories and the chrome elements to
// terminal styles. Derived shades (inactive tabs, the gutter column) are
// blended from the base palette instead of hand-picked.
type theme struct {
	name string

	text        tcell.Style
	selection   tcell.Style
	currentLine tcell.Style

	gutter        tcell.Style
	gutterCurrent tcell.Style

	tabActive   tcell.Style
	tabInactive tcell.Style

	status tcell.Style
	info   tcell.Style
	warn   tcell.Style
	prompt tcell.Style

	keyword tcell.Style
	strLit  tcell.Style
	comment tcell.Style
}

// spanStyle returns the style for a highlight span category.
func (t *theme) spanStyle(cat editor.SpanCategory) tcell.Style {
	switch cat {
	case editor.SpanKeyword:
		return t.keyword
	case editor.SpanString:
		return t.strLit
	case editor.SpanComment:
		return t.comment
	}
	return t.text
}

func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend mixes two palette colors in Lab space, which keeps derived shades
// perceptually between their parents.
func blend(hexA, hexB string, t float64) tcell.Color {
	a, errA := colorful.Hex(hexA)
	b, errB := colorful.Hex(hexB)
	if errA != nil || errB != nil {
		return tcell.ColorDefault
	}
	c := a.BlendLab(b, t).Clamped()
	r, g, bl := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// themeByName returns the named theme, falling back to dark.
func themeByName(name string) theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

func darkTheme() theme {
	const (
		bg = "#1b1b22"
		fg = "#d8d8d2"
	)
	base := tcell.StyleDefault.Background(hexColor(bg)).Foreground(hexColor(fg))

	return theme{
		name: "dark",

		text:        base,
		selection:   base.Background(hexColor("#44475a")),
		currentLine: base.Background(blend(bg, "#44475a", 0.4)),

		gutter:        base.Foreground(blend(fg, bg, 0.55)),
		gutterCurrent: base.Foreground(hexColor("#f4bf75")),

		tabActive:   base.Reverse(true).Bold(true),
		tabInactive: base.Foreground(blend(fg, bg, 0.35)),

		status: base.Reverse(true),
		info:   base.Foreground(hexColor("#a1b56c")),
		warn:   base.Foreground(hexColor("#ab4642")).Bold(true),
		prompt: base.Reverse(true),

		keyword: base.Foreground(hexColor("#7cafc2")).Bold(true),
		strLit:  base.Foreground(hexColor("#a1b56c")),
		comment: base.Foreground(blend(fg, bg, 0.5)).Italic(true),
	}
}

func lightTheme() theme {
	const (
		bg = "#f5f5f0"
		fg = "#33332e"
	)
	base := tcell.StyleDefault.Background(hexColor(bg)).Foreground(hexColor(fg))

	return theme{
		name: "light",

		text:        base,
		selection:   base.Background(hexColor("#c8d4e8")),
		currentLine: base.Background(blend(bg, "#c8d4e8", 0.45)),

		gutter:        base.Foreground(blend(fg, bg, 0.55)),
		gutterCurrent: base.Foreground(hexColor("#8f5902")),

		tabActive:   base.Reverse(true).Bold(true),
		tabInactive: base.Foreground(blend(fg, bg, 0.35)),

		status: base.Reverse(true),
		info:   base.Foreground(hexColor("#4e7a27")),
		warn:   base.Foreground(hexColor("#a02222")).Bold(true),
		prompt: base.Reverse(true),

		keyword: base.Foreground(hexColor("#204a87")).Bold(true),
		strLit:  base.Foreground(hexColor("#4e7a27")),
		comment: base.Foreground(blend(fg, bg, 0.5)).Italic(true),
	}
}
