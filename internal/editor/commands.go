package editor

import (
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

// SelectAll selects every authoritative element.
func (e *Editor) SelectAll() {
	e.selectIDs(element.IDs(e.elements))
}

// DeselectAll clears the selection.
func (e *Editor) DeselectAll() {
	e.selectIDs(nil)
}

// MoveSelection translates every selected element by delta and flushes the
// updates at once. It does not touch the buffer of a gesture in progress.
func (e *Editor) MoveSelection(delta geom.Position) {
	sel := e.selectedElements()
	batch := make([]element.ChangeEvent, 0, len(sel))
	for _, el := range sel {
		batch = append(batch, element.Update(el.Translate(delta)))
	}
	e.emit(batch)
}

// DuplicateSelection clones the selection to the right of itself, shifted by
// the width of its bounding box, and selects the clones.
func (e *Editor) DuplicateSelection() {
	sel := e.selectedElements()
	if len(sel) == 0 {
		return
	}

	boxes := make([]geom.Bounds, len(sel))
	for i, el := range sel {
		boxes[i] = el.Bounds()
	}
	shift := geom.UpperBounds(boxes).Width

	batch := make([]element.ChangeEvent, 0, len(sel))
	ids := make([]string, 0, len(sel))
	for _, el := range sel {
		clone := el
		clone.ID = e.generateID()
		clone.X += shift
		batch = append(batch, element.Add(clone))
		ids = append(ids, clone.ID)
	}

	e.emit(batch)
	e.selectIDs(ids)
}

// DeleteSelection removes every selected element and drops the removed ids
// from the selection.
func (e *Editor) DeleteSelection() {
	sel := e.selectedElements()
	if len(sel) == 0 {
		return
	}

	batch := make([]element.ChangeEvent, 0, len(sel))
	removed := make(map[string]struct{}, len(sel))
	for _, el := range sel {
		batch = append(batch, element.Remove(el))
		removed[el.ID] = struct{}{}
	}

	e.emit(batch)

	var keep []string
	for _, id := range e.selected {
		if _, ok := removed[id]; !ok {
			keep = append(keep, id)
		}
	}
	e.selectIDs(keep)
}

// SetZoom sets the zoom factors.
func (e *Editor) SetZoom(zoom geom.Position) { e.zoom = zoom }

// ResetZoom restores 1/1 zoom.
func (e *Editor) ResetZoom() { e.zoom = geom.Position{X: 1, Y: 1} }

// MultiplyZoom scales the zoom component-wise by factor.
func (e *Editor) MultiplyZoom(factor geom.Position) { e.zoom = e.zoom.Mul(factor) }

// SetOffset sets the pan translation.
func (e *Editor) SetOffset(offset geom.Position) { e.offset = offset }

// ResetOffset restores a zero pan translation.
func (e *Editor) ResetOffset() { e.offset = geom.Position{} }

// TransposeOffset moves the pan translation by delta.
func (e *Editor) TransposeOffset(delta geom.Position) { e.offset = e.offset.Add(delta) }

// SetTool switches the active tool. A gesture in progress finishes with the
// tool it started with.
func (e *Editor) SetTool(tool Tool) { e.tool = tool }

// SetMode switches the mode. A selection drag or rectangle selection in
// progress is recomputed so the change shows without another move.
func (e *Editor) SetMode(mode Mode) {
	if e.mode == mode {
		return
	}
	e.mode = mode

	if !e.ptr.down || !e.moved() {
		return
	}
	switch {
	case e.rubberBanding():
		e.updateRubberBand()
	case e.ptr.tool == ToolPointer && e.ptr.target == TargetElement:
		e.dragSelection()
	}
}
