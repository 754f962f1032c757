package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/geom"
)

// ErrUnknownAction is returned when an action name resolves to nothing.
var ErrUnknownAction = errors.New("unknown action")

// PrefixResolver resolves the name part of a "<prefix>:<name>" action.
type PrefixResolver func(name string) (Binding, error)

// Actions is a registry of named bindings.
type Actions struct {
	named    map[string]Binding
	prefixes map[string]PrefixResolver
}

// NewActions creates an empty registry.
func NewActions() *Actions {
	return &Actions{
		named:    make(map[string]Binding),
		prefixes: make(map[string]PrefixResolver),
	}
}

// Register adds or replaces a named action.
func (a *Actions) Register(name string, b Binding) {
	a.named[name] = b
}

// WithPrefix routes actions written as "<prefix>:<name>" to fn.
func (a *Actions) WithPrefix(prefix string, fn PrefixResolver) *Actions {
	a.prefixes[prefix] = fn
	return a
}

// Lookup returns a named action.
func (a *Actions) Lookup(name string) (Binding, bool) {
	b, ok := a.named[name]
	return b, ok
}

// Names returns the registered action names in sorted order.
func (a *Actions) Names() []string {
	names := make([]string, 0, len(a.named))
	for name := range a.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the binding for an action name or prefixed action.
func (a *Actions) Resolve(action string) (Binding, error) {
	if prefix, name, ok := strings.Cut(action, ":"); ok {
		fn, found := a.prefixes[prefix]
		if !found {
			return Binding{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		return fn(name)
	}
	if b, ok := a.named[action]; ok {
		return b, nil
	}
	return Binding{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// Build resolves a key-to-action table into a Map.
func (a *Actions) Build(bindings map[string]string) (Map, error) {
	keys := make(Map, len(bindings))
	for spec, action := range bindings {
		b, err := a.Resolve(action)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", spec, err)
		}
		keys[spec] = b
	}
	return keys, nil
}

// zoomStep is the factor of one zoom key press.
const zoomStep = 1.2

// BuiltinActions returns a registry holding the editor's built-in actions.
func BuiltinActions() *Actions {
	a := NewActions()

	a.Register("mode.special", Pair(
		func(c editor.Commands) { c.SetMode(editor.ModeSpecial) },
		func(c editor.Commands) { c.SetMode(editor.ModeDefault) },
	))

	// Arrows nudge the selection, or pan when nothing is selected.
	for _, d := range []struct {
		name string
		x, y float64
	}{
		{"left", -1, 0},
		{"right", 1, 0},
		{"up", 0, -1},
		{"down", 0, 1},
	} {
		a.Register("move."+d.name, Single(func(c editor.Commands) {
			unit := c.MinorUnit()
			nudge(c, geom.Position{X: d.x * unit.Width, Y: d.y * unit.Height})
		}))
		a.Register("move."+d.name+".grid", Single(func(c editor.Commands) {
			grid := c.Settings.Grid
			nudge(c, geom.Position{X: d.x * grid.Width, Y: d.y * grid.Height})
		}))
	}

	a.Register("select.all", Single(func(c editor.Commands) { c.SelectAll() }))
	a.Register("select.none", Single(func(c editor.Commands) { c.DeselectAll() }))
	a.Register("selection.duplicate", Single(func(c editor.Commands) { c.DuplicateSelection() }))
	a.Register("selection.delete", Single(func(c editor.Commands) { c.DeleteSelection() }))

	a.Register("view.reset", Single(func(c editor.Commands) {
		c.ResetZoom()
		c.ResetOffset()
		c.DeselectAll()
	}))
	a.Register("zoom.out.x", Single(func(c editor.Commands) { c.MultiplyZoom(geom.Position{X: 1 / zoomStep, Y: 1}) }))
	a.Register("zoom.in.x", Single(func(c editor.Commands) { c.MultiplyZoom(geom.Position{X: zoomStep, Y: 1}) }))
	a.Register("zoom.out.y", Single(func(c editor.Commands) { c.MultiplyZoom(geom.Position{X: 1, Y: 1 / zoomStep}) }))
	a.Register("zoom.in.y", Single(func(c editor.Commands) { c.MultiplyZoom(geom.Position{X: 1, Y: zoomStep}) }))

	for _, tool := range []editor.Tool{editor.ToolPointer, editor.ToolPencil, editor.ToolScissor, editor.ToolLasso} {
		a.Register("tool."+tool.String(), Single(func(c editor.Commands) { c.SetTool(tool) }))
	}

	return a
}

func nudge(c editor.Commands, delta geom.Position) {
	if c.HasSelection() {
		c.MoveSelection(delta)
		return
	}
	c.TransposeOffset(delta)
}
