package editor

import (
	"math"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

// splitEpsilon absorbs float error when counting split pieces.
const splitEpsilon = 1e-9

// pickElement selects the element under the origin unless it already is.
func (e *Editor) pickElement() {
	if e.isSelectedID(e.ptr.hit) {
		return
	}
	if e.mode == ModeSpecial {
		e.appendSelection(e.ptr.hit)
		return
	}
	e.selectIDs([]string{e.ptr.hit})
}

// dragSelection rebuilds the pending buffer for the selection moved by the
// pointer delta. In Special mode the buffer holds clones instead of moves.
func (e *Editor) dragSelection() {
	if !e.moved() || len(e.selected) == 0 {
		return
	}

	delta := e.toCanvas(*e.ptr.drag).Sub(e.toCanvas(e.ptr.origin))
	sources := e.selectedElements()
	pending := make([]pendingChange, 0, len(sources))

	for _, src := range sources {
		moved := src
		pos := e.settings.snapNearest(geom.Position{X: src.X + delta.X, Y: src.Y + delta.Y})
		moved.X, moved.Y = pos.X, pos.Y

		if e.mode == ModeSpecial {
			moved.ID = e.cloneID(src.ID)
			pending = append(pending, pendingChange{event: element.Add(moved)})
			continue
		}
		pending = append(pending, pendingChange{event: element.Update(moved)})
	}

	e.pending = pending
}

// cloneID returns the clone id for src, allocating one on first use.
func (e *Editor) cloneID(src string) string {
	if e.clones == nil {
		e.clones = make(map[string]string)
	}
	id, ok := e.clones[src]
	if !ok {
		id = e.generateID()
		e.clones[src] = id
	}
	return id
}

// finishDrag flushes a moved selection, or completes a click.
func (e *Editor) finishDrag(pos geom.Position) {
	if e.moved() {
		if len(e.pending) == 0 {
			return
		}
		batch := e.flush()
		if element.Count(batch, element.KindAdd) > 0 {
			var ids []string
			for _, c := range batch {
				if c.Kind == element.KindAdd {
					ids = append(ids, c.Element.ID)
				}
			}
			e.selectIDs(ids)
		}
		return
	}

	if e.mode == ModeSpecial {
		if el, ok := e.elementAt(e.toCanvas(pos)); ok {
			e.appendSelection(el.ID)
		}
	}
}

// beginRubberBand remembers the selection a Special-mode rectangle adds to.
func (e *Editor) beginRubberBand() {
	e.baseSelection = e.Selected()
}

// updateRubberBand selects the elements intersecting the rectangle from the
// origin to the current pointer position.
func (e *Editor) updateRubberBand() {
	rect, ok := e.bandRect()
	if !ok {
		return
	}

	var hits []string
	for _, el := range e.elements {
		if geom.Intersects(rect, el.Bounds()) {
			hits = append(hits, el.ID)
		}
	}

	if e.mode == ModeSpecial {
		e.selectIDs(append(append([]string(nil), e.baseSelection...), hits...))
		return
	}
	e.selectIDs(hits)
}

// finishRubberBand completes a rectangle selection, or handles a click on
// empty canvas.
func (e *Editor) finishRubberBand(pos geom.Position) {
	if e.moved() {
		e.ptr.drag = &pos
		e.updateRubberBand()
		return
	}

	if e.mode == ModeDefault {
		e.selectIDs(nil)
		return
	}
	if el, ok := e.elementAt(e.toCanvas(pos)); ok {
		e.appendSelection(el.ID)
	}
}

// create buffers a new minor-unit element at the origin and selects it.
func (e *Editor) create() {
	unit := e.settings.MinorUnit()
	at := e.settings.snapDown(e.toCanvas(e.ptr.origin))

	e.workingID = e.generateID()
	e.logger.Debug("create element", "id", e.workingID, "x", at.X, "y", at.Y)

	e.selectIDs([]string{e.workingID})
	e.pending = []pendingChange{{
		event: element.Add(element.Element{
			ID:     e.workingID,
			X:      at.X,
			Y:      at.Y,
			Width:  unit.Width,
			Height: unit.Height,
		}),
		provisional: true,
	}}
}

// beginResize selects the element under the origin and buffers a resize
// to the pointer.
func (e *Editor) beginResize() {
	el, ok := element.Find(e.elements, e.ptr.hit)
	if !ok {
		return
	}

	e.workingID = el.ID
	e.logger.Debug("start resize", "id", el.ID)

	e.selectIDs([]string{el.ID})
	el.Width = e.resizeWidth(e.toCanvas(e.ptr.origin).X - el.X)
	e.pending = []pendingChange{{event: element.Update(el)}}
}

// resize replaces the buffered change of the working element with one sized
// to the current pointer.
func (e *Editor) resize() {
	for i, p := range e.pending {
		if p.event.Element.ID != e.workingID {
			continue
		}
		el := p.event.Element
		el.Width = e.resizeWidth(e.toCanvas(*e.ptr.drag).X - el.X)
		e.pending[i].event.Element = el
		return
	}
}

// resizeWidth returns the width for a resize to raw, never below one minor unit.
func (e *Editor) resizeWidth(raw float64) float64 {
	return math.Max(e.settings.MinorUnit().Width, e.settings.snapWidth(raw))
}

// split cuts the element under the origin at the pointer and flushes
// immediately. Default mode cuts once; Special mode cuts the whole element
// into pieces of the same width. The last created piece is selected.
func (e *Editor) split() {
	el, ok := element.Find(e.elements, e.ptr.hit)
	if !ok {
		return
	}

	unit := e.settings.MinorUnit().Width
	width := e.settings.snapWidth(math.Max(unit, e.toCanvas(e.ptr.origin).X-el.X))
	if width > el.Width {
		width = el.Width
	}

	pieces := 0
	switch {
	case width <= 0:
	case e.mode == ModeSpecial:
		pieces = int(math.Ceil(el.Width/width-splitEpsilon)) - 1
	case width < el.Width:
		pieces = 1
	}

	e.logger.Debug("split element", "id", el.ID, "width", width, "pieces", pieces)

	head := el
	head.Width = width
	batch := []element.ChangeEvent{element.Update(head)}

	for k := 1; k <= pieces; k++ {
		piece := el
		piece.ID = e.generateID()
		piece.X = el.X + width*float64(k)
		piece.Width = width
		if k == pieces {
			piece.Width = el.Width - width*float64(k)
		}
		batch = append(batch, element.Add(piece))
	}

	e.pending = nil
	e.selectIDs([]string{batch[len(batch)-1].Element.ID})
	e.emit(batch)
}
