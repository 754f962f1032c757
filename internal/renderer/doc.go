// Package renderer draws the grid editor on a terminal.
//
// One terminal cell covers one minor unit of the canvas at zoom 1. Blocks
// are drawn as filled cells: selected blocks highlighted, blocks with a
// pending change dimmed, and the rectangle of a selection drag outlined.
// The last row belongs to a statusline.StatusLine.
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, settings.MinorUnit())
//	r.Draw(ed, statusline.New())
//
// KeyListener is the terminal side of key routing: the keymap router binds
// identifiers on it, and the event loop dispatches decoded key presses.
package renderer
