// Package config loads the gridedit configuration file.
//
// Configuration is a single TOML file. Every value has a default, and a
// missing file yields the defaults:
//
//	[editor]
//	snap_to_grid = true
//
//	[editor.grid]
//	width = 50
//	height = 100
//
//	[editor.quantize]
//	width = 4
//	height = 12
//
//	[editor.bounds]
//	bars = 16
//	rows = 128
//
//	[keys]
//	"ctrl+q" = "lua:quantize"
//	"x" = ""
//
//	[script]
//	path = "~/.config/gridedit/init.lua"
//
//	[document]
//	path = "session.yaml"
//	history = 1000
//
//	[log]
//	level = "info"
//	file = "/tmp/gridedit.log"
//
// Entries in [keys] override the built-in key map. An empty action removes
// the binding. The watcher subpackage reports edits to the file so the key
// map can be reloaded while the editor runs.
package config
