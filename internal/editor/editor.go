package editor

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

// pendingChange is one buffered event of the gesture in progress.
type pendingChange struct {
	event element.ChangeEvent

	// provisional marks an element created by this gesture and still being
	// sized. It is tracked like any other buffered change and always
	// flushed as an Add.
	provisional bool
}

// pointer is the tracking state of the current gesture.
type pointer struct {
	down bool

	// origin is the raw position at pointer-down.
	origin geom.Position

	// drag is the latest raw position while down; nil until the first move.
	drag *geom.Position

	// tool is the tool the gesture started with.
	tool Tool

	target Target

	// hit is the id of the element under origin when target is TargetElement.
	hit string
}

// Editor is the grid interaction state machine.
type Editor struct {
	settings   Settings
	elements   []element.Element
	generateID func() string
	onChange   func([]element.ChangeEvent)
	logger     *slog.Logger

	// selectionEvents reports selection changes to onChange as Select events.
	selectionEvents bool

	selected []string
	zoom     geom.Position
	offset   geom.Position
	tool     Tool
	mode     Mode

	ptr     pointer
	pending []pendingChange

	// workingID is the element a Pencil gesture is creating or resizing.
	workingID string

	// baseSelection is the selection when a rectangle selection started.
	baseSelection []string

	// clones maps source ids to clone ids for the drag in progress so a
	// clone keeps its id across moves.
	clones map[string]string
}

// Option configures an Editor.
type Option func(*Editor)

// WithGenerateID sets the id factory used for created, cloned and split
// elements. The default produces random UUIDs.
func WithGenerateID(fn func() string) Option {
	return func(e *Editor) {
		if fn != nil {
			e.generateID = fn
		}
	}
}

// WithOnChange sets the owner callback that receives flushed batches.
func WithOnChange(fn func([]element.ChangeEvent)) Option {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithSelectionEvents makes the editor report every selection change to the
// owner as a single Select event.
func WithSelectionEvents(enable bool) Option {
	return func(e *Editor) {
		e.selectionEvents = enable
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSelection sets the initial selection.
func WithSelection(ids []string) Option {
	return func(e *Editor) {
		e.selected = uniq(ids)
	}
}

// New creates an editor over elements.
func New(settings Settings, elements []element.Element, opts ...Option) *Editor {
	e := &Editor{
		settings:   settings,
		elements:   append([]element.Element(nil), elements...),
		generateID: uuid.NewString,
		logger:     newNopLogger(),
		zoom:       settings.Zoom,
		offset:     settings.Offset,
	}
	if e.zoom == (geom.Position{}) {
		e.zoom = geom.Position{X: 1, Y: 1}
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Settings returns the session settings.
func (e *Editor) Settings() Settings { return e.settings }

// Elements returns the authoritative elements last supplied by the owner.
func (e *Editor) Elements() []element.Element {
	return append([]element.Element(nil), e.elements...)
}

// SetElements replaces the authoritative elements. The owner calls it after
// applying a batch. While no gesture is in progress the target is
// re-acquired against the new list; during a gesture it stays fixed.
func (e *Editor) SetElements(elements []element.Element) {
	e.elements = append([]element.Element(nil), elements...)
	if !e.ptr.down && e.ptr.target != TargetNone {
		e.acquireTarget()
	}
}

// Selected returns the selected ids.
func (e *Editor) Selected() []string {
	return append([]string(nil), e.selected...)
}

// IsSelected reports whether el is selected.
func (e *Editor) IsSelected(el element.Element) bool {
	return e.isSelectedID(el.ID)
}

// IsChanged reports whether the pending buffer holds a change for el.
func (e *Editor) IsChanged(el element.Element) bool {
	for _, p := range e.pending {
		if p.event.Element.ID == el.ID {
			return true
		}
	}
	return false
}

// Zoom returns the current zoom factors.
func (e *Editor) Zoom() geom.Position { return e.zoom }

// Offset returns the current pan translation.
func (e *Editor) Offset() geom.Position { return e.offset }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// Mode returns the active mode.
func (e *Editor) Mode() Mode { return e.mode }

// Target returns what the current or last gesture origin landed on.
func (e *Editor) Target() Target { return e.ptr.target }

// IsDown reports whether a gesture is in progress.
func (e *Editor) IsDown() bool { return e.ptr.down }

// Changes returns a copy of the pending buffer. Provisional creations are
// reported as Add events.
func (e *Editor) Changes() []element.ChangeEvent {
	if e.pending == nil {
		return nil
	}
	out := make([]element.ChangeEvent, len(e.pending))
	for i, p := range e.pending {
		out[i] = p.resolved()
	}
	return out
}

// Blocks returns the merged render list: authoritative elements overlaid
// with pending changes, selected elements last.
func (e *Editor) Blocks() []element.Element {
	return element.Merge(e.elements, e.Changes(), e.isSelectedID)
}

// SelectionBounds returns the rectangle of the selection drag in progress,
// in canvas space.
func (e *Editor) SelectionBounds() (geom.Bounds, bool) {
	if !e.ptr.down {
		return geom.Bounds{}, false
	}
	return e.bandRect()
}

// bandRect returns the rectangle from the origin to the latest drag position
// when the gesture selects by rectangle.
func (e *Editor) bandRect() (geom.Bounds, bool) {
	if e.ptr.drag == nil || !e.rubberBanding() {
		return geom.Bounds{}, false
	}
	return geom.NormalizeBounds(e.toCanvas(e.ptr.origin), e.toCanvas(*e.ptr.drag)), true
}

// ResetTarget forgets the gesture target when no gesture is in progress, so
// the next pointer interaction starts clean.
func (e *Editor) ResetTarget() {
	if e.ptr.down {
		return
	}
	e.ptr.target = TargetNone
	e.ptr.hit = ""
}

// resolved returns the event as it will be flushed.
func (p pendingChange) resolved() element.ChangeEvent {
	if p.provisional {
		return element.Add(p.event.Element)
	}
	return p.event
}

// toCanvas converts a pointer position into canvas space.
func (e *Editor) toCanvas(p geom.Position) geom.Position {
	return p.Sub(e.offset).Div(e.zoom)
}

// elementAt returns the top-most element under the canvas point p.
func (e *Editor) elementAt(p geom.Position) (element.Element, bool) {
	blocks := element.Merge(e.elements, nil, e.isSelectedID)
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].Contains(p) {
			return blocks[i], true
		}
	}
	return element.Element{}, false
}

// acquireTarget hit-tests the gesture origin.
func (e *Editor) acquireTarget() {
	if el, ok := e.elementAt(e.toCanvas(e.ptr.origin)); ok {
		e.ptr.target = TargetElement
		e.ptr.hit = el.ID
		return
	}
	e.ptr.target = TargetGrid
	e.ptr.hit = ""
}

// emit hands a batch to the owner.
func (e *Editor) emit(batch []element.ChangeEvent) {
	if len(batch) == 0 {
		return
	}
	e.logger.Debug("flush changes", "events", len(batch))
	if e.onChange != nil {
		e.onChange(batch)
	}
}

// flush emits the pending buffer in construction order and clears it.
func (e *Editor) flush() []element.ChangeEvent {
	batch := e.Changes()
	e.pending = nil
	e.emit(batch)
	return batch
}
