package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

// Bridge converts editor values to and from Lua.
type Bridge struct {
	L *lua.LState
}

// NewBridge creates a new Bridge for the given Lua state.
func NewBridge(L *lua.LState) *Bridge {
	return &Bridge{L: L}
}

// Strings converts a string slice to a Lua array.
func (b *Bridge) Strings(s []string) *lua.LTable {
	t := b.L.CreateTable(len(s), 0)
	for i, v := range s {
		t.RawSetInt(i+1, lua.LString(v))
	}
	return t
}

// Element converts an element to a table with id, x, y, width and height.
func (b *Bridge) Element(el element.Element) *lua.LTable {
	t := b.L.CreateTable(0, 5)
	t.RawSetString("id", lua.LString(el.ID))
	t.RawSetString("x", lua.LNumber(el.X))
	t.RawSetString("y", lua.LNumber(el.Y))
	t.RawSetString("width", lua.LNumber(el.Width))
	t.RawSetString("height", lua.LNumber(el.Height))
	return t
}

// Elements converts elements to a Lua array of element tables.
func (b *Bridge) Elements(els []element.Element) *lua.LTable {
	t := b.L.CreateTable(len(els), 0)
	for i, el := range els {
		t.RawSetInt(i+1, b.Element(el))
	}
	return t
}

// CheckPosition reads the arguments at n and n+1 as a position. Both are
// required.
func (b *Bridge) CheckPosition(n int) geom.Position {
	return geom.Position{
		X: float64(b.L.CheckNumber(n)),
		Y: float64(b.L.CheckNumber(n + 1)),
	}
}

// PushPosition pushes p as two return values.
func (b *Bridge) PushPosition(p geom.Position) int {
	b.L.Push(lua.LNumber(p.X))
	b.L.Push(lua.LNumber(p.Y))
	return 2
}
