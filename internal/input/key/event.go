package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events, always lowercase.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character. Uppercase letters imply
// Shift.
func NewRuneEvent(r rune, mods Modifier) Event {
	if unicode.IsUpper(r) {
		mods = mods.With(ModShift)
		r = unicode.ToLower(r)
	}
	if r == ' ' {
		return Event{Key: KeySpace, Modifiers: mods}
	}
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key. A bare modifier key
// never carries its own modifier.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods.Without(k.Modifier())}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// ID returns the canonical identifier, such as "command+a", "shift+left"
// or "esc".
func (e Event) ID() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Modifiers == ModNone {
		return name
	}
	return e.Modifiers.String() + "+" + name
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return e.ID()
}

// Matches checks if this event matches a key identifier in any spelling.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e == parsed
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, strings.ToUpper(e.Modifiers.String()))
}
