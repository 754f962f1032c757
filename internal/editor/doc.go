// Package editor implements the interaction core of the grid editor.
//
// An Editor owns the transient interaction state of one canvas: the active
// tool and mode, the selection, zoom and offset, pointer tracking and the
// pending-change buffer of the gesture in progress. It consumes pointer
// events (OnDown, OnMove, OnUp) and direct commands, and hands batches of
// element.ChangeEvent to the owner through the OnChange callback. It never
// mutates the authoritative element list; the owner applies the batch and
// calls SetElements with the result.
//
// # Tools
//
//	Pointer  click selects, drag moves the selection (clones in Special mode),
//	         drag on empty grid selects by rectangle
//	Pencil   click on grid creates one minor-unit element, drag resizes it;
//	         click on an element resizes that element
//	Scissor  click on an element splits it at the pointer (into equal
//	         pieces in Special mode); fires immediately on pointer-down
//	Lasso    rectangle selection, whatever the pointer lands on
//
// # Threading
//
// An Editor is not safe for concurrent use. Pointer and key events must be
// delivered from a single goroutine, in order.
package editor
