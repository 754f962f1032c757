package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/dshills/gridedit/internal/config/watcher"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/input/key"
	"github.com/dshills/gridedit/internal/renderer/backend"
)

// pollEvents forwards backend events until the backend closes or done is
// closed.
func (app *Application) pollEvents(events chan<- backend.Event, done <-chan struct{}) {
	for {
		ev := app.backend.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev.Type == backend.EventClosed {
			return
		}
	}
}

// eventLoop serialises backend events and configuration reloads and redraws
// after each one.
func (app *Application) eventLoop(ctx context.Context, events <-chan backend.Event) error {
	var (
		changes <-chan watcher.Event
		errs    <-chan error
	)
	if app.watcher != nil {
		changes = app.watcher.Events()
		errs = app.watcher.Errors()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.handleConfigEvent(ev)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			app.logger.Warn("config watcher", "error", err)
			continue
		}

		app.draw()
	}
}

// handleBackendEvent routes one backend event. It returns ErrQuit when the
// application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev.Key)
	case backend.EventMouse:
		app.mouse.Handle(ev.Mouse)
	case backend.EventResize:
		app.backend.Clear()
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

func (app *Application) handleKey(ev key.Event) error {
	app.status.ClearMessage()
	if !app.keys.Dispatch(ev) {
		app.logger.Debug("unbound key", "key", ev.ID())
		return nil
	}
	if app.quitRequested {
		return ErrQuit
	}
	return nil
}

// handleConfigEvent reloads the key map after the configuration file was
// written or replaced.
func (app *Application) handleConfigEvent(ev watcher.Event) {
	if !ev.Op.Has(watcher.OpWrite) && !ev.Op.Has(watcher.OpCreate) {
		return
	}
	if err := app.reloadKeys(); err != nil {
		app.logger.Warn("config reload failed", "path", ev.Path, "error", err)
		app.alert("config reload failed: %v", err)
		return
	}
	app.logger.Info("reloaded key map", "path", ev.Path)
	app.notify("reloaded keys")
}

func (app *Application) draw() {
	app.updateStatus()
	app.renderer.Draw(app.editor, app.status)
}

// updateStatus copies the editor and document state into the status line.
func (app *Application) updateStatus() {
	app.status.SetTool(app.editor.Tool().String())
	app.status.SetSpecial(app.editor.Mode() == editor.ModeSpecial)
	app.status.SetDocument(filepath.Base(app.config.Document.Path))
	app.status.SetModified(app.doc.Dirty())
	app.status.SetZoom(app.editor.Zoom())
	app.status.SetCounts(len(app.doc.Notes()), len(app.editor.Selected()))
}
