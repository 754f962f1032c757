package lua

import (
	"fmt"
	"log/slog"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/input/keymap"
)

// upSuffix marks the key-release companion of a bound function.
const upSuffix = "_up"

// editorModule builds the functions of the editor module for one snapshot.
func editorModule(b *Bridge, c editor.Commands) map[string]lua.LGFunction {
	noArgs := func(fn func()) lua.LGFunction {
		return func(*lua.LState) int {
			fn()
			return 0
		}
	}

	return map[string]lua.LGFunction{
		"selected": func(L *lua.LState) int {
			L.Push(b.Strings(c.Selected))
			return 1
		},
		"blocks": func(L *lua.LState) int {
			L.Push(b.Elements(c.Blocks))
			return 1
		},
		"select_all":          noArgs(c.SelectAll),
		"deselect_all":        noArgs(c.DeselectAll),
		"duplicate_selection": noArgs(c.DuplicateSelection),
		"delete_selection":    noArgs(c.DeleteSelection),
		"reset_zoom":          noArgs(c.ResetZoom),
		"reset_offset":        noArgs(c.ResetOffset),
		"move_selection": func(*lua.LState) int {
			c.MoveSelection(b.CheckPosition(1))
			return 0
		},
		"multiply_zoom": func(*lua.LState) int {
			c.MultiplyZoom(b.CheckPosition(1))
			return 0
		},
		"transpose_offset": func(*lua.LState) int {
			c.TransposeOffset(b.CheckPosition(1))
			return 0
		},
		"set_tool": func(L *lua.LState) int {
			tool, err := editor.ParseTool(L.CheckString(1))
			if err != nil {
				L.ArgError(1, err.Error())
				return 0
			}
			c.SetTool(tool)
			return 0
		},
		"set_mode": func(L *lua.LState) int {
			mode, err := editor.ParseMode(L.CheckString(1))
			if err != nil {
				L.ArgError(1, err.Error())
				return 0
			}
			c.SetMode(mode)
			return 0
		},
		"tool": func(L *lua.LState) int {
			L.Push(lua.LString(c.Tool.String()))
			return 1
		},
		"mode": func(L *lua.LState) int {
			L.Push(lua.LString(c.Mode.String()))
			return 1
		},
		"zoom": func(*lua.LState) int {
			return b.PushPosition(c.Zoom)
		},
		"offset": func(*lua.LState) int {
			return b.PushPosition(c.Offset)
		},
		"minor_unit": func(*lua.LState) int {
			unit := c.MinorUnit()
			return b.PushPosition(geom.Position{X: unit.Width, Y: unit.Height})
		},
	}
}

// Run calls the global function fn with an editor module bound to c.
func (s *State) Run(fn string, c editor.Commands) error {
	_, err := s.call(fn, func(L *lua.LState) []lua.LValue {
		mod := L.SetFuncs(L.NewTable(), editorModule(NewBridge(L), c))
		return []lua.LValue{mod}
	})
	return err
}

// Handler returns a key handler that runs fn. Failures are logged and
// swallowed so a broken script never interrupts key routing.
func (s *State) Handler(fn string) keymap.Handler {
	return func(c editor.Commands) {
		if err := s.Run(fn, c); err != nil {
			s.logger.Error("script failed", "function", fn, slog.Any("error", err))
		}
	}
}

// Resolve binds the global function name. If name_up also exists the
// binding is a pair. It is a keymap.PrefixResolver for the "lua" prefix.
func (s *State) Resolve(name string) (keymap.Binding, error) {
	if !s.HasFunction(name) {
		return keymap.Binding{}, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	if s.HasFunction(name + upSuffix) {
		return keymap.Pair(s.Handler(name), s.Handler(name+upSuffix)), nil
	}
	return keymap.Single(s.Handler(name)), nil
}
