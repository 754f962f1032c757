package document

import (
	"errors"
	"time"

	"github.com/dshills/gridedit/internal/domain"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is the history depth used when none is configured.
const DefaultMaxEntries = 1000

// step is one undoable batch.
type step struct {
	description string
	forward     []domain.Action
	inverse     []domain.Action
	timestamp   time.Time
}

// StepInfo describes an undoable step.
type StepInfo struct {
	Description string
	Timestamp   time.Time
}

// history is a bounded undo/redo stack. Callers synchronise access.
type history struct {
	undoStack []step
	redoStack []step

	maxEntries int
}

func newHistory(maxEntries int) *history {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &history{maxEntries: maxEntries}
}

// push records s and clears the redo stack.
func (h *history) push(s step) {
	h.undoStack = append(h.undoStack, s)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// popUndo moves the newest step to the redo stack and returns it.
func (h *history) popUndo() (step, error) {
	if len(h.undoStack) == 0 {
		return step{}, ErrNothingToUndo
	}
	s := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, s)
	return s, nil
}

// popRedo moves the newest undone step back to the undo stack.
func (h *history) popRedo() (step, error) {
	if len(h.redoStack) == 0 {
		return step{}, ErrNothingToRedo
	}
	s := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, s)
	return s, nil
}

func (h *history) clear() {
	h.undoStack = nil
	h.redoStack = nil
}

func peek(stack []step) (StepInfo, bool) {
	if len(stack) == 0 {
		return StepInfo{}, false
	}
	s := stack[len(stack)-1]
	return StepInfo{Description: s.description, Timestamp: s.timestamp}, true
}
