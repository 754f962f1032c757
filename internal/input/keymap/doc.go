// Package keymap routes key identifiers to handlers that operate on the
// editor's command surface.
//
// A Map binds canonical key identifiers (see package key) to a Binding: a
// single key-down Handler or a down/up pair. The Router hands the Map to an
// external Listener, which owns the actual key listening, and invokes the
// matching handler with a fresh editor.Commands snapshot on every event, so
// handlers always see current selection, zoom, offset and mode without the
// mapping being re-subscribed.
//
// # Actions
//
// Configuration names actions rather than functions. Actions is a registry of
// named bindings ("move.left", "select.all", "tool.pencil") plus prefix
// resolvers for actions provided elsewhere, such as "lua:quantize":
//
//	actions := keymap.BuiltinActions()
//	actions.WithPrefix("lua", scriptResolver)
//	keys, err := actions.Build(keymap.Merge(keymap.DefaultBindings(), overrides))
//	router, err := keymap.NewRouter(ed, keys)
//	err = router.Subscribe(listener)
package keymap
