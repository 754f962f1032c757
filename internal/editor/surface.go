package editor

import (
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

// Surface is the set of operations an Editor exposes to key handlers,
// scripts and input collaborators.
type Surface interface {
	SelectAll()
	DeselectAll()
	MoveSelection(delta geom.Position)
	DuplicateSelection()
	DeleteSelection()

	SetZoom(zoom geom.Position)
	ResetZoom()
	MultiplyZoom(factor geom.Position)
	SetOffset(offset geom.Position)
	ResetOffset()
	TransposeOffset(delta geom.Position)

	SetTool(tool Tool)
	SetMode(mode Mode)

	OnDown(pos geom.Position)
	OnMove(pos geom.Position)
	OnUp(pos geom.Position)

	IsSelected(el element.Element) bool
	IsChanged(el element.Element) bool
}

var _ Surface = (*Editor)(nil)

// Commands is a snapshot of the editor state taken when a handler runs,
// bound to the live mutators. Fields reflect the state at snapshot time;
// calling a mutator does not refresh them.
type Commands struct {
	Surface

	Settings Settings
	Selected []string
	Zoom     geom.Position
	Offset   geom.Position
	Tool     Tool
	Mode     Mode
	Blocks   []element.Element
	Changes  []element.ChangeEvent

	// Selection is the rectangle of a selection drag in progress, or nil.
	Selection *geom.Bounds
}

// Commands takes a snapshot of the current state.
func (e *Editor) Commands() Commands {
	c := Commands{
		Surface:  e,
		Settings: e.settings,
		Selected: e.Selected(),
		Zoom:     e.zoom,
		Offset:   e.offset,
		Tool:     e.tool,
		Mode:     e.mode,
		Blocks:   e.Blocks(),
		Changes:  e.Changes(),
	}
	if rect, ok := e.SelectionBounds(); ok {
		c.Selection = &rect
	}
	return c
}

// HasSelection reports whether anything was selected at snapshot time.
func (c Commands) HasSelection() bool {
	return len(c.Selected) > 0
}

// MinorUnit returns the smallest snap increment of the session.
func (c Commands) MinorUnit() geom.Size {
	return c.Settings.MinorUnit()
}
