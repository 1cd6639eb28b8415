package keymap

import (
	"strings"
	"unicode"
)

// Modifier is a bitmask of active modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift

	ModNone Modifier = 0
)

// Event is a single raw key press: either a printable rune or a named
// special key, plus the active modifiers.
type Event struct {
	// Key is the canonical name for special keys ("Esc", "Enter", "Left",
	// ...). Empty for rune events.
	Key string
	// Rune is the character for printable key events.
	Rune rune
	// Mods holds the active modifiers.
	Mods Modifier
}

// RuneEvent returns an event for a printable character.
func RuneEvent(r rune, mods Modifier) Event {
	return Event{Rune: r, Mods: mods}
}

// SpecialEvent returns an event for a named special key.
func SpecialEvent(name string, mods Modifier) Event {
	return Event{Key: name, Mods: mods}
}

// IsRune reports whether this is a character event.
func (e Event) IsRune() bool {
	return e.Key == "" && e.Rune != 0
}

// IsText reports whether the event is literal text input: a printable rune
// with no Ctrl/Alt held. Shift is part of the character itself.
func (e Event) IsText() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && e.Mods&(ModCtrl|ModAlt) == 0
}

// IsDigit reports whether the event is a bare decimal digit.
func (e Event) IsDigit() bool {
	return e.IsText() && e.Rune >= '0' && e.Rune <= '9'
}

// Chord builds the canonical chord string for the event. Modifiers are
// ordered Ctrl, Alt, Shift; a shifted letter is normalized to
// "Shift+<lower>" so user mappings and composed pane chords agree on one
// spelling.
func (e Event) Chord() string {
	var parts []string

	mods := e.Mods
	keyName := e.Key
	if e.IsRune() {
		keyName = string(e.Rune)
		if e.Rune == ' ' {
			keyName = "Space"
		}
		if mods&ModShift != 0 && unicode.IsLetter(e.Rune) {
			keyName = string(unicode.ToLower(e.Rune))
		}
	}

	if mods&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if mods&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if mods&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	parts = append(parts, keyName)
	return strings.Join(parts, "+")
}

// shiftedChord returns the "Shift+<lower>" spelling for an uppercase rune
// delivered without the Shift flag, or "" when it does not apply. Some
// terminals encode Shift only in the character case.
func (e Event) shiftedChord() string {
	if !e.IsRune() || e.Mods&ModShift != 0 {
		return ""
	}
	if !unicode.IsUpper(e.Rune) {
		return ""
	}
	shifted := Event{Rune: unicode.ToLower(e.Rune), Mods: e.Mods | ModShift}
	return shifted.Chord()
}
