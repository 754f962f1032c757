package config

import (
	"fmt"
	"maps"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/geom"
)

// DefaultFileName is the configuration file looked up when no path is given.
const DefaultFileName = "gridedit.toml"

// Config is the full configuration.
type Config struct {
	Editor   EditorConfig      `toml:"editor"`
	Keys     map[string]string `toml:"keys"`
	Script   ScriptConfig      `toml:"script"`
	Document DocumentConfig    `toml:"document"`
	Log      LogConfig         `toml:"log"`
}

// EditorConfig holds the canvas settings of a session.
type EditorConfig struct {
	SnapToGrid bool         `toml:"snap_to_grid"`
	Grid       SizeConfig   `toml:"grid"`
	Quantize   SizeConfig   `toml:"quantize"`
	Bounds     BoundsConfig `toml:"bounds"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// BoundsConfig sizes the canvas in grid cells across and minor rows down.
type BoundsConfig struct {
	Bars int `toml:"bars"`
	Rows int `toml:"rows"`
}

// ScriptConfig points at the Lua script providing "lua:" actions.
type ScriptConfig struct {
	Path string `toml:"path"`
}

// DocumentConfig controls session persistence.
type DocumentConfig struct {
	Path    string `toml:"path"`
	History int    `toml:"history"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			SnapToGrid: true,
			Grid:       SizeConfig{Width: 50, Height: 100},
			Quantize:   SizeConfig{Width: 4, Height: 12},
			Bounds:     BoundsConfig{Bars: 16, Rows: 128},
		},
		Keys: map[string]string{},
		Document: DocumentConfig{
			Path:    "gridedit.yaml",
			History: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Keys = maps.Clone(c.Keys)
	return &out
}

// Validate checks the values that would make the editor misbehave.
func (c *Config) Validate() error {
	e := c.Editor
	switch {
	case e.Grid.Width <= 0 || e.Grid.Height <= 0:
		return fmt.Errorf("%w: editor.grid must be positive, got %vx%v", ErrInvalidValue, e.Grid.Width, e.Grid.Height)
	case e.Quantize.Width < 0 || e.Quantize.Height < 0:
		return fmt.Errorf("%w: editor.quantize must not be negative", ErrInvalidValue)
	case e.Bounds.Bars <= 0 || e.Bounds.Rows <= 0:
		return fmt.Errorf("%w: editor.bounds must be positive, got %d bars %d rows", ErrInvalidValue, e.Bounds.Bars, e.Bounds.Rows)
	case c.Document.History < 0:
		return fmt.Errorf("%w: document.history must not be negative", ErrInvalidValue)
	}
	return nil
}

// Settings converts the editor section into editor settings.
func (c *Config) Settings() editor.Settings {
	s := editor.DefaultSettings()
	s.SnapToGrid = c.Editor.SnapToGrid
	s.Grid = geom.Size{Width: c.Editor.Grid.Width, Height: c.Editor.Grid.Height}
	s.Quantize = geom.Size{Width: c.Editor.Quantize.Width, Height: c.Editor.Quantize.Height}

	unit := s.MinorUnit()
	s.Bounds = geom.Bounds{
		Width:  float64(c.Editor.Bounds.Bars) * s.Grid.Width,
		Height: float64(c.Editor.Bounds.Rows) * unit.Height,
	}
	return s
}
