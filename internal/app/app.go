package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dshills/gridedit/internal/config"
	"github.com/dshills/gridedit/internal/config/watcher"
	"github.com/dshills/gridedit/internal/document"
	"github.com/dshills/gridedit/internal/domain"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/input/keymap"
	"github.com/dshills/gridedit/internal/input/mouse"
	"github.com/dshills/gridedit/internal/plugin/lua"
	"github.com/dshills/gridedit/internal/renderer"
	"github.com/dshills/gridedit/internal/renderer/backend"
	"github.com/dshills/gridedit/internal/renderer/statusline"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means config.DefaultFileName.
	ConfigPath string

	// DocumentPath overrides the configured document path.
	DocumentPath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// DisableWatch turns off configuration reloading.
	DisableWatch bool
}

// Application owns the editor, its document and the terminal.
type Application struct {
	opts       Options
	configPath string
	config     *config.Config

	logger   *slog.Logger
	closeLog func() error

	settings editor.Settings
	mapper   domain.Mapper
	doc      *document.Document
	editor   *editor.Editor
	mouse    *mouse.Handler
	script   *lua.State
	router   *keymap.Router
	watcher  *watcher.Watcher

	backend  backend.Backend
	renderer *renderer.Renderer
	keys     *renderer.KeyListener
	status   *statusline.StatusLine

	quitRequested bool

	running   atomic.Bool
	closeOnce sync.Once
}

// New loads the configuration, document and script and builds the editor.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:       opts,
		configPath: opts.ConfigPath,
		logger:     slog.New(slog.DiscardHandler),
		closeLog:   func() error { return nil },
		status:     statusline.New(),
	}
	if app.configPath == "" {
		app.configPath = config.DefaultFileName
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal Run draws on.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config { return app.config }

// Editor returns the grid editor.
func (app *Application) Editor() *editor.Editor { return app.editor }

// Document returns the document backing the editor.
func (app *Application) Document() *document.Document { return app.doc }

// Router returns the key router.
func (app *Application) Router() *keymap.Router { return app.router }

// Logger returns the process logger.
func (app *Application) Logger() *slog.Logger { return app.logger }

// Run draws the editor and processes events until the user quits, the
// backend closes or ctx is cancelled. A modified document is saved on the
// way out.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if err := app.start(); err != nil {
		return err
	}
	defer app.stop()

	events := make(chan backend.Event)
	done := make(chan struct{})
	defer close(done)
	go app.pollEvents(events, done)

	err := app.eventLoop(ctx, events)
	if app.doc.Dirty() {
		if saveErr := app.Save(); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}
	return err
}

// start initialises the backend and binds the key map on it.
func (app *Application) start() error {
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.renderer = renderer.New(app.backend, app.settings.MinorUnit())
	app.keys = renderer.NewKeyListener()
	if err := app.router.Subscribe(app.keys); err != nil {
		app.backend.Shutdown()
		return &InitError{Component: "keymap", Err: err}
	}

	app.focus()
	app.draw()
	app.logger.Info("started", "config", app.configPath, "document", app.config.Document.Path)
	return nil
}

func (app *Application) stop() {
	if err := app.router.Unsubscribe(); err != nil {
		app.logger.Debug("unsubscribe", "error", err)
	}
	app.backend.Shutdown()
}

// focus pans vertically so the topmost note starts on the third row.
func (app *Application) focus() {
	els := app.editor.Elements()
	if len(els) == 0 || app.editor.Offset() != (geom.Position{}) {
		return
	}
	top := els[0].Y
	for _, el := range els[1:] {
		top = min(top, el.Y)
	}
	cell := app.renderer.CellSize()
	app.editor.SetOffset(geom.Position{Y: 2*cell.Height - top*app.editor.Zoom().Y})
}

// onChange applies an editor batch to the document and hands the result
// back to the editor.
func (app *Application) onChange(batch []element.ChangeEvent) {
	for _, c := range batch {
		if c.Kind == element.KindSelect {
			app.doc.SetSelection(c.Selection)
		}
	}

	actions := app.mapper.ToActions(batch)
	if len(actions) == 0 {
		return
	}
	app.doc.Apply(actions)
	app.sync()
}

// sync replaces the editor's elements with the document's notes.
func (app *Application) sync() {
	app.editor.SetElements(app.mapper.ToElements(app.doc.Notes()))
}

// Save writes the document to its configured path.
func (app *Application) Save() error {
	path := app.config.Document.Path
	if err := app.doc.Save(path); err != nil {
		app.logger.Error("save failed", "path", path, "error", err)
		return fmt.Errorf("saving document: %w", err)
	}
	app.logger.Info("saved document", "path", path, "notes", len(app.doc.Notes()))
	return nil
}

// Close releases the watcher, the script and the log file.
func (app *Application) Close() error {
	var errs []error
	app.closeOnce.Do(func() {
		if app.watcher != nil {
			errs = append(errs, app.watcher.Close())
		}
		if app.script != nil {
			errs = append(errs, app.script.Close())
		}
		errs = append(errs, app.closeLog())
	})
	return errors.Join(errs...)
}

// notify shows an informational message until the next key press.
func (app *Application) notify(format string, args ...any) {
	app.status.SetMessage(fmt.Sprintf(format, args...), statusline.MessageInfo)
}

// alert shows an error message until the next key press.
func (app *Application) alert(format string, args ...any) {
	app.status.SetMessage(fmt.Sprintf(format, args...), statusline.MessageError)
}
