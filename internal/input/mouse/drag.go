package mouse

import "github.com/dshills/gridedit/internal/editor"

// dragTracker tracks the state of one press/drag/release cycle.
type dragTracker struct {
	// active indicates a gesture is in progress.
	active bool

	// button is the mouse button being held.
	button Button

	// startPos is where the gesture started.
	startPos Position

	// currentPos is the latest reported position.
	currentPos Position

	// restore is the mode to return to on release when the press
	// forced Special mode.
	restore  editor.Mode
	restored bool
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

// start begins a new gesture.
func (t *dragTracker) start(pos Position, button Button) {
	t.active = true
	t.button = button
	t.startPos = pos
	t.currentPos = pos
	t.restored = false
}

// update updates the current position.
func (t *dragTracker) update(pos Position) {
	if t.active {
		t.currentPos = pos
	}
}

// end ends the current gesture.
func (t *dragTracker) end() {
	*t = dragTracker{}
}

// forceMode records the mode to restore when the gesture ends.
func (t *dragTracker) forceMode(previous editor.Mode) {
	t.restore = previous
	t.restored = true
}

// restoreMode returns the mode recorded by forceMode.
func (t *dragTracker) restoreMode() (editor.Mode, bool) {
	return t.restore, t.restored
}

func (t *dragTracker) isActive() bool {
	return t.active
}

func (t *dragTracker) getButton() Button {
	return t.button
}

func (t *dragTracker) getStartPos() Position {
	return t.startPos
}

func (t *dragTracker) getCurrentPos() Position {
	return t.currentPos
}
