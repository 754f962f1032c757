// Package app wires the grid editor together and runs its event loop.
//
// New loads the configuration, the document and the optional Lua script,
// builds the editor and the key map, and starts watching the configuration
// file. Run owns the terminal: backend events, configuration reloads and
// cancellation are all handled on the goroutine that called Run, so the
// editor and the document are never touched concurrently.
//
// The document is the owner of the editor's elements. Every batch the editor
// emits is mapped to note actions, applied to the document as one undoable
// step, and the resulting notes are handed back to the editor.
package app
