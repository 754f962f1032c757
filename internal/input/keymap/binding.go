package keymap

import "github.com/dshills/gridedit/internal/editor"

// Handler runs against a snapshot of the editor taken when the key event
// arrives.
type Handler func(editor.Commands)

// Binding is the key-down handler and optional key-up handler of one key.
type Binding struct {
	Down Handler
	Up   Handler
}

// Single returns a binding that reacts to key-down only.
func Single(h Handler) Binding {
	return Binding{Down: h}
}

// Pair returns a binding with separate press and release handlers.
func Pair(down, up Handler) Binding {
	return Binding{Down: down, Up: up}
}

// IsPair reports whether b reacts to key-up.
func (b Binding) IsPair() bool {
	return b.Up != nil
}

// Map binds key identifiers to bindings.
type Map map[string]Binding
