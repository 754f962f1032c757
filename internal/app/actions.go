package app

import (
	"github.com/dshills/gridedit/internal/config"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/input/keymap"
)

// appBindings are the terminal keys for application actions.
func appBindings() map[string]string {
	return map[string]string{
		"ctrl+q": "app.quit",
		"ctrl+c": "app.quit",
		"ctrl+s": "document.save",
		"ctrl+z": "history.undo",
		"ctrl+y": "history.redo",
	}
}

// actions returns the built-in editor actions plus the application ones.
// Actions written "lua:<function>" resolve against the loaded script.
func (app *Application) actions() *keymap.Actions {
	a := keymap.BuiltinActions()

	a.Register("app.quit", keymap.Single(func(editor.Commands) {
		app.quitRequested = true
	}))
	a.Register("document.save", keymap.Single(func(editor.Commands) {
		if err := app.Save(); err != nil {
			app.alert("save failed: %v", err)
			return
		}
		app.notify("saved %s", app.config.Document.Path)
	}))
	a.Register("history.undo", keymap.Single(func(editor.Commands) { app.undo() }))
	a.Register("history.redo", keymap.Single(func(editor.Commands) { app.redo() }))

	if app.script != nil {
		a.WithPrefix("lua", app.script.Resolve)
	}
	return a
}

// keyMap resolves the terminal bindings overlaid with overrides.
func (app *Application) keyMap(overrides map[string]string) (keymap.Map, error) {
	bindings := keymap.Merge(keymap.Merge(keymap.TerminalBindings(), appBindings()), overrides)
	return app.actions().Build(bindings)
}

// reloadKeys re-reads the [keys] table and replaces the router's map. The
// current map stays in place when the file is invalid.
func (app *Application) reloadKeys() error {
	overrides, err := config.LoadKeys(app.configPath)
	if err != nil {
		return err
	}
	keys, err := app.keyMap(overrides)
	if err != nil {
		return err
	}
	if err := app.router.SetMap(keys); err != nil {
		return err
	}
	app.config.Keys = overrides
	return nil
}

func (app *Application) undo() {
	info, _ := app.doc.PeekUndo()
	if err := app.doc.Undo(); err != nil {
		app.alert("%v", err)
		return
	}
	app.sync()
	app.notify("undo %s", info.Description)
}

func (app *Application) redo() {
	info, _ := app.doc.PeekRedo()
	if err := app.doc.Redo(); err != nil {
		app.alert("%v", err)
		return
	}
	app.sync()
	app.notify("redo %s", info.Description)
}
