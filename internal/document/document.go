package document

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dshills/gridedit/internal/domain"
)

// Document is the authoritative state of an editing session: notes and the
// persisted selection.
type Document struct {
	mu sync.Mutex

	notes     []domain.Note
	selection []string
	history   *history
	dirty     bool

	logger *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithHistory sets the maximum number of undoable steps.
func WithHistory(maxEntries int) Option {
	return func(d *Document) {
		d.history = newHistory(maxEntries)
	}
}

// WithLogger sets the document logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a document holding notes.
func New(notes []domain.Note, opts ...Option) *Document {
	d := &Document{
		notes:   slices.Clone(notes),
		history: newHistory(DefaultMaxEntries),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Notes returns a copy of the notes.
func (d *Document) Notes() []domain.Note {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.notes)
}

// Selection returns the persisted selection.
func (d *Document) Selection() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.selection)
}

// SetSelection records the selection. It is not part of the undo history.
func (d *Document) SetSelection(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if slices.Equal(d.selection, ids) {
		return
	}
	d.selection = slices.Clone(ids)
	d.dirty = true
}

// Apply reduces actions into the notes as one undoable step.
func (d *Document) Apply(actions []domain.Action) {
	if len(actions) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	s := step{
		description: describe(actions),
		forward:     slices.Clone(actions),
		inverse:     domain.Inverse(d.notes, actions),
		timestamp:   time.Now(),
	}
	d.notes = domain.Reduce(d.notes, actions)
	d.history.push(s)
	d.dirty = true

	d.logger.Debug("applied", "step", s.description, "notes", len(d.notes))
}

// Undo reverts the most recent step.
func (d *Document) Undo() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, err := d.history.popUndo()
	if err != nil {
		return err
	}
	d.notes = domain.Reduce(d.notes, s.inverse)
	d.dirty = true
	d.logger.Debug("undo", "step", s.description)
	return nil
}

// Redo re-applies the most recently undone step.
func (d *Document) Redo() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, err := d.history.popRedo()
	if err != nil {
		return err
	}
	d.notes = domain.Reduce(d.notes, s.forward)
	d.dirty = true
	d.logger.Debug("redo", "step", s.description)
	return nil
}

// CanUndo returns true if undo is available.
func (d *Document) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.history.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (d *Document) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.history.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (d *Document) UndoCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.history.undoStack)
}

// PeekUndo describes the step Undo would revert.
func (d *Document) PeekUndo() (StepInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return peek(d.history.undoStack)
}

// PeekRedo describes the step Redo would re-apply.
func (d *Document) PeekRedo() (StepInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return peek(d.history.redoStack)
}

// ClearHistory drops all undo and redo steps.
func (d *Document) ClearHistory() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history.clear()
}

// Dirty reports whether the document changed since it was loaded or saved.
func (d *Document) Dirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

// describe summarises a batch, such as "add 2, remove 1".
func describe(actions []domain.Action) string {
	var counts [domain.ActionRemove + 1]int
	for _, a := range actions {
		if a.Kind <= domain.ActionRemove {
			counts[a.Kind]++
		}
	}
	var parts []string
	for _, k := range []domain.ActionKind{domain.ActionAdd, domain.ActionUpdate, domain.ActionRemove} {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
		}
	}
	return strings.Join(parts, ", ")
}
