package editor

import "github.com/dshills/gridedit/internal/geom"

// OnDown starts a gesture at pos (canvas-local pointer coordinates).
func (e *Editor) OnDown(pos geom.Position) {
	e.ptr = pointer{down: true, origin: pos, tool: e.tool}
	e.pending = nil
	e.clones = nil
	e.baseSelection = nil
	e.workingID = ""

	e.acquireTarget()

	switch e.ptr.tool {
	case ToolPointer:
		if e.ptr.target == TargetElement {
			e.pickElement()
		} else {
			e.beginRubberBand()
		}
	case ToolLasso:
		e.beginRubberBand()
	case ToolPencil:
		if e.ptr.target == TargetElement {
			e.beginResize()
		} else {
			e.create()
		}
	case ToolScissor:
		if e.ptr.target == TargetElement {
			e.split()
		}
	}
}

// OnMove tracks the pointer while a gesture is in progress. Moves without a
// preceding OnDown are ignored.
func (e *Editor) OnMove(pos geom.Position) {
	if !e.ptr.down {
		return
	}
	e.ptr.drag = &pos

	switch e.ptr.tool {
	case ToolPointer:
		if e.ptr.target == TargetElement {
			e.dragSelection()
		} else {
			e.updateRubberBand()
		}
	case ToolLasso:
		e.updateRubberBand()
	case ToolPencil:
		e.resize()
	}
}

// OnUp ends the gesture at pos. At most one flush happens here.
func (e *Editor) OnUp(pos geom.Position) {
	if !e.ptr.down {
		return
	}
	e.ptr.down = false

	switch e.ptr.tool {
	case ToolPointer:
		if e.ptr.target == TargetElement {
			e.finishDrag(pos)
		} else {
			e.finishRubberBand(pos)
		}
	case ToolLasso:
		e.finishRubberBand(pos)
	case ToolPencil:
		if len(e.pending) > 0 {
			e.flush()
		}
	}

	e.pending = nil
	e.clones = nil
	e.baseSelection = nil
	e.workingID = ""
}

// moved reports whether the pointer moved since pointer-down.
func (e *Editor) moved() bool {
	return e.ptr.drag != nil
}

// rubberBanding reports whether the gesture in progress selects by rectangle.
func (e *Editor) rubberBanding() bool {
	switch e.ptr.tool {
	case ToolLasso:
		return e.ptr.target != TargetNone
	case ToolPointer:
		return e.ptr.target == TargetGrid
	}
	return false
}
