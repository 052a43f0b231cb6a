package main

import (
	"strings"
	"unicode"

	"byofish/sprite"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

var directionKeys = map[string]sprite.Direction{
	"left":  sprite.Left,
	"right": sprite.Right,
	"up":    sprite.Up,
	"down":  sprite.Down,
}

// vim keys only move the cursor outside glyph mode, where they are not
// paintable characters.
var vimKeys = map[string]sprite.Direction{
	"h": sprite.Left,
	"l": sprite.Right,
	"k": sprite.Up,
	"j": sprite.Down,
}

// decodeKey turns one key press into at most one edit command for the grid.
// Keys that drive the editor itself (save, quit, mode switches) return nil.
func decodeKey(msg tea.KeyMsg, mode Mode) sprite.Command {
	key := msg.String()

	if dir, ok := directionKeys[key]; ok {
		return sprite.MoveCursor{Dir: dir}
	}
	if dir, ok := directionKeys[trimPrefix(key, "ctrl+")]; ok {
		return sprite.Resize{Dir: dir, Delta: 1}
	}
	if dir, ok := directionKeys[trimPrefix(key, "shift+")]; ok {
		return sprite.Resize{Dir: dir, Delta: -1}
	}

	switch key {
	case "insert":
		return sprite.AddFrame{}
	case "delete":
		return sprite.DeleteFrame{}
	case "ctrl+d":
		return sprite.DuplicateFrame{}
	case "pgup":
		return sprite.CycleFrame{Delta: 1}
	case "pgdown":
		return sprite.CycleFrame{Delta: -1}
	case "backspace":
		return sprite.ClearCell{}
	}

	r, ok := singleRune(msg)
	if !ok {
		return nil
	}

	switch mode {
	case ModeGlyph:
		if isPaintable(r) {
			return sprite.SetGlyph{Glyph: r}
		}
	case ModeColor, ModeHighlight:
		if dir, ok := vimKeys[key]; ok {
			return sprite.MoveCursor{Dir: dir}
		}
		color, ok := paletteKey(r)
		if !ok {
			return nil
		}
		if mode == ModeColor {
			return sprite.SetColor{Color: color}
		}
		return sprite.SetHighlight{Color: color}
	}
	return nil
}

func trimPrefix(key, prefix string) string {
	if rest, ok := strings.CutPrefix(key, prefix); ok {
		return rest
	}
	return ""
}

func singleRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Alt || (msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace) || len(msg.Runes) != 1 {
		return 0, false
	}
	return msg.Runes[0], true
}

// isPaintable reports whether r fits in exactly one terminal cell, so rows
// stay aligned when rendered.
func isPaintable(r rune) bool {
	return unicode.IsPrint(r) && runewidth.RuneWidth(r) == 1
}

// paletteKey maps a palette letter to its color. Space clears the color.
func paletteKey(r rune) (sprite.Color, bool) {
	if r == ' ' {
		return sprite.NoColor, true
	}
	color := sprite.ColorFromCode(r)
	return color, color != sprite.NoColor
}
