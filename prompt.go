package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/scribe/editor"
)

// prompter implements the engine's PathPicker and ClosePrompt
// collaborators as modal one-line prompts over the status row. Each
// prompt runs its own small event loop, so from the engine's point of
// view the collaborator call is synchronous.
type prompter struct {
	a *app
}

// ConfirmClose asks what to do with unsaved changes. Escape means cancel.
func (p *prompter) ConfirmClose(title string) editor.CloseDecision {
	msg := fmt.Sprintf("Save changes to %s? [y]es / [n]o / [esc] cancel", title)
	for {
		p.a.drawWithPromptLine(msg, "")
		ev := p.a.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return editor.CancelClose
		case tcell.KeyRune:
			switch key.Rune() {
			case 'y', 'Y':
				return editor.SaveChanges
			case 'n', 'N':
				return editor.DiscardChanges
			}
		}
	}
}

func (p *prompter) PickOpen() (string, bool) {
	return p.inputLine("Open file: ", "")
}

func (p *prompter) PickSave(suggested string) (string, bool) {
	initial := ""
	if suggested != "" && suggested != "untitled" {
		initial = suggested
	}
	return p.inputLine("Save as: ", initial)
}

// inputLine runs a modal text-entry loop. Enter accepts a non-empty
// value, Escape cancels.
func (p *prompter) inputLine(label, initial string) (string, bool) {
	value := initial
	for {
		p.a.drawWithPromptLine(label, value)
		ev := p.a.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			p.a.screen.Sync()
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyEnter:
				if value == "" {
					return "", false
				}
				return value, true
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(value) > 0 {
					_, size := utf8.DecodeLastRuneInString(value)
					value = value[:len(value)-size]
				}
			case tcell.KeyCtrlU:
				value = ""
			case tcell.KeyRune:
				if e.Modifiers()&tcell.ModCtrl == 0 {
					value += string(e.Rune())
				}
			}
		}
	}
}
