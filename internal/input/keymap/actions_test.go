package keymap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

func subscribedDefault(t *testing.T, ed *editor.Editor) *fakeListener {
	t.Helper()
	r, err := NewRouter(ed, DefaultMap())
	require.NoError(t, err)
	l := newFakeListener()
	require.NoError(t, r.Subscribe(l))
	return l
}

func TestDefaultMapResolves(t *testing.T) {
	keys := DefaultMap()
	require.Len(t, keys, len(DefaultBindings()))
	require.True(t, keys["shift"].IsPair())
}

func TestDefaultArrowsMoveSelection(t *testing.T) {
	ed := newEditor([]element.Element{{ID: "a", X: 100, Y: 100, Width: 12.5, Height: 10}},
		editor.WithSelection([]string{"a"}))
	l := subscribedDefault(t, ed)

	l.press(t, "left")
	el, ok := element.Find(ed.Elements(), "a")
	require.True(t, ok)
	require.Equal(t, 87.5, el.X)

	l.press(t, "shift+down")
	el, _ = element.Find(ed.Elements(), "a")
	require.Equal(t, 200.0, el.Y)
	require.Equal(t, geom.Position{}, ed.Offset())
}

func TestDefaultArrowsPanWithoutSelection(t *testing.T) {
	ed := newEditor(nil)
	l := subscribedDefault(t, ed)

	l.press(t, "right")
	l.press(t, "shift+up")

	require.Equal(t, geom.Position{X: 12.5, Y: -100}, ed.Offset())
}

func TestDefaultShiftTogglesMode(t *testing.T) {
	ed := newEditor(nil)
	l := subscribedDefault(t, ed)

	l.press(t, "shift")
	require.Equal(t, editor.ModeSpecial, ed.Mode())
	l.release(t, "shift")
	require.Equal(t, editor.ModeDefault, ed.Mode())
}

func TestDefaultEscapeResetsView(t *testing.T) {
	ed := newEditor([]element.Element{{ID: "a", Width: 10, Height: 10}})
	l := subscribedDefault(t, ed)

	l.press(t, "command+a")
	l.press(t, "command+right")
	l.press(t, "command+up")
	ed.TransposeOffset(geom.Position{X: 30, Y: 40})
	require.Equal(t, []string{"a"}, ed.Selected())
	require.InDelta(t, 1.2, ed.Zoom().X, 1e-12)
	require.InDelta(t, 1/1.2, ed.Zoom().Y, 1e-12)

	l.press(t, "esc")

	require.Empty(t, ed.Selected())
	require.Equal(t, geom.Position{X: 1, Y: 1}, ed.Zoom())
	require.Equal(t, geom.Position{}, ed.Offset())
	require.Len(t, ed.Elements(), 1)
}

func TestDefaultEditingKeys(t *testing.T) {
	ed := newEditor([]element.Element{{ID: "a", Width: 25, Height: 10}}, editor.WithGenerateID(func() string { return "copy" }))
	l := subscribedDefault(t, ed)

	l.press(t, "command+a")
	l.press(t, "command+d")
	require.Equal(t, []string{"copy"}, ed.Selected())
	require.Len(t, ed.Elements(), 2)

	l.press(t, "backspace")
	require.Equal(t, []string{"a"}, element.IDs(ed.Elements()))
	require.Empty(t, ed.Selected())
}

func TestDefaultToolKeys(t *testing.T) {
	ed := newEditor(nil)
	l := subscribedDefault(t, ed)

	for spec, want := range map[string]editor.Tool{
		"alt+2": editor.ToolPencil,
		"alt+3": editor.ToolScissor,
		"alt+4": editor.ToolLasso,
		"alt+1": editor.ToolPointer,
	} {
		l.press(t, spec)
		require.Equal(t, want, ed.Tool(), spec)
	}
}

func TestResolvePrefixedActions(t *testing.T) {
	var called string
	a := BuiltinActions().WithPrefix("lua", func(name string) (Binding, error) {
		if name == "missing" {
			return Binding{}, errors.New("no such function")
		}
		return Single(func(editor.Commands) { called = name }), nil
	})

	b, err := a.Resolve("lua:quantize")
	require.NoError(t, err)
	b.Down(editor.Commands{})
	require.Equal(t, "quantize", called)

	_, err = a.Resolve("lua:missing")
	require.Error(t, err)

	_, err = a.Resolve("python:quantize")
	require.ErrorIs(t, err, ErrUnknownAction)

	_, err = a.Resolve("teleport")
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestBuildReportsKey(t *testing.T) {
	_, err := BuiltinActions().Build(map[string]string{"x": "teleport"})
	require.ErrorIs(t, err, ErrUnknownAction)
	require.Contains(t, err.Error(), `"x"`)
}

func TestActionNames(t *testing.T) {
	names := BuiltinActions().Names()
	require.Contains(t, names, "select.all")
	require.Contains(t, names, "tool.lasso")
	require.Contains(t, names, "move.left.grid")
	require.IsIncreasing(t, names)
}

func TestMerge(t *testing.T) {
	merged := Merge(DefaultBindings(), map[string]string{
		"cmd+a": "select.none",
		"esc":   "",
		"q":     "lua:quantize",
	})

	require.Equal(t, "select.none", merged["command+a"])
	require.NotContains(t, merged, "esc")
	require.Equal(t, "lua:quantize", merged["q"])
	require.Equal(t, "move.left", merged["left"])
}

func TestTerminalBindings(t *testing.T) {
	b := TerminalBindings()
	require.Equal(t, "select.all", b["ctrl+a"])
	require.Equal(t, "selection.duplicate", b["ctrl+d"])
	require.Equal(t, "zoom.out.x", b["ctrl+left"])
	require.Equal(t, "select.all", b["command+a"])
	require.Equal(t, "selection.delete", b["delete"])
}
