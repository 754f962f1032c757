package app

import (
	"github.com/dshills/gridedit/internal/config"
	"github.com/dshills/gridedit/internal/config/watcher"
	"github.com/dshills/gridedit/internal/document"
	"github.com/dshills/gridedit/internal/domain"
	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/input/keymap"
	"github.com/dshills/gridedit/internal/input/mouse"
	"github.com/dshills/gridedit/internal/plugin/lua"
)

// bootstrap initializes the components in dependency order. On failure the
// components already started are closed.
func (app *Application) bootstrap() error {
	steps := []struct {
		component string
		init      func() error
	}{
		{"config", app.initConfig},
		{"logger", app.initLogger},
		{"document", app.initDocument},
		{"editor", app.initEditor},
		{"script", app.initScript},
		{"keymap", app.initKeymap},
		{"watcher", app.initWatcher},
	}

	for _, step := range steps {
		if err := step.init(); err != nil {
			app.Close()
			return &InitError{Component: step.component, Err: err}
		}
	}
	return nil
}

func (app *Application) initConfig() error {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return err
	}
	if app.opts.DocumentPath != "" {
		cfg.Document.Path = app.opts.DocumentPath
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	app.config = cfg
	return nil
}

func (app *Application) initLogger() error {
	logger, closeLog, err := NewLogger(app.config.Log)
	if err != nil {
		return err
	}
	app.logger = logger
	app.closeLog = closeLog
	return nil
}

func (app *Application) initDocument() error {
	doc, err := document.Load(app.config.Document.Path,
		document.WithHistory(app.config.Document.History),
		document.WithLogger(WithComponent(app.logger, "document")),
	)
	if err != nil {
		return err
	}
	app.doc = doc
	return nil
}

func (app *Application) initEditor() error {
	app.settings = app.config.Settings()
	app.mapper = domain.NewMapper(app.settings)

	app.editor = editor.New(app.settings, app.mapper.ToElements(app.doc.Notes()),
		editor.WithOnChange(app.onChange),
		editor.WithSelectionEvents(true),
		editor.WithSelection(app.doc.Selection()),
		editor.WithLogger(WithComponent(app.logger, "editor")),
	)

	cfg := mouse.DefaultConfig()
	cfg.CellSize = app.settings.MinorUnit()
	app.mouse = mouse.NewHandler(app.editor, cfg)
	app.mouse.SetLogger(WithComponent(app.logger, "mouse"))
	return nil
}

func (app *Application) initScript() error {
	path := app.config.Script.Path
	if path == "" {
		return nil
	}
	script, err := lua.Load(path, lua.WithLogger(WithComponent(app.logger, "script")))
	if err != nil {
		return err
	}
	app.script = script
	return nil
}

func (app *Application) initKeymap() error {
	keys, err := app.keyMap(app.config.Keys)
	if err != nil {
		return err
	}
	router, err := keymap.NewRouter(app.editor, keys,
		keymap.WithLogger(WithComponent(app.logger, "keymap")),
	)
	if err != nil {
		return err
	}
	app.router = router
	return nil
}

// initWatcher starts watching the configuration file. Failing to watch is
// logged and otherwise ignored.
func (app *Application) initWatcher() error {
	if app.opts.DisableWatch {
		return nil
	}
	w, err := watcher.New(app.configPath)
	if err != nil {
		app.logger.Warn("config reload disabled", "path", app.configPath, "error", err)
		return nil
	}
	app.watcher = w
	return nil
}
