package mouse

import (
	"log/slog"
	"sync"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown ||
		b == ButtonScrollLeft || b == ButtonScrollRight
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position is a terminal cell coordinate.
type Position struct {
	X int
	Y int
}

// Event represents a mouse input event.
type Event struct {
	// Position is the cell under the pointer.
	Position Position

	// Button is the mouse button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of mouse action.
	Action Action
}

// Target is the editor surface the handler drives.
type Target interface {
	OnDown(pos geom.Position)
	OnMove(pos geom.Position)
	OnUp(pos geom.Position)
	Mode() editor.Mode
	SetMode(mode editor.Mode)
	TransposeOffset(delta geom.Position)
	MultiplyZoom(factor geom.Position)
}

var _ Target = (*editor.Editor)(nil)

// Config configures mouse handler behavior.
type Config struct {
	// CellSize is the canvas extent of one terminal cell.
	CellSize geom.Size

	// Origin is the cell where the canvas starts.
	Origin Position

	// ScrollCells is the number of cells panned per wheel tick.
	ScrollCells int

	// ZoomStep is the zoom factor applied per Ctrl+wheel tick.
	ZoomStep float64

	// EnableZoom enables Ctrl+scroll zoom.
	EnableZoom bool
}

// DefaultConfig returns a configuration with one canvas unit per cell.
func DefaultConfig() Config {
	return Config{
		CellSize:    geom.Size{Width: 1, Height: 1},
		ScrollCells: 4,
		ZoomStep:    1.2,
		EnableZoom:  true,
	}
}

// Handler translates mouse events into editor gestures.
type Handler struct {
	mu     sync.Mutex
	config Config
	target Target
	logger *slog.Logger

	drag *dragTracker
}

// NewHandler creates a mouse handler driving target.
func NewHandler(target Target, config Config) *Handler {
	if config.CellSize.Width <= 0 || config.CellSize.Height <= 0 {
		config.CellSize = geom.Size{Width: 1, Height: 1}
	}
	return &Handler{
		config: config,
		target: target,
		logger: slog.New(slog.DiscardHandler),
		drag:   newDragTracker(),
	}
}

// SetLogger sets the handler logger.
func (h *Handler) SetLogger(l *slog.Logger) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if l != nil {
		h.logger = l
	}
}

// Handle processes a mouse event and reports whether it reached the editor.
func (h *Handler) Handle(event Event) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Action {
	case ActionPress:
		return h.handlePress(event)
	case ActionRelease:
		return h.handleRelease(event)
	case ActionDrag:
		return h.handleDrag(event)
	}

	return false
}

// handlePress handles mouse button press events.
func (h *Handler) handlePress(event Event) bool {
	if event.Button.IsScroll() {
		return h.handleScroll(event)
	}
	if event.Button != ButtonLeft {
		return false
	}

	// Terminals repeat the press while the button is held.
	if h.drag.isActive() {
		return h.handleDrag(event)
	}

	h.drag.start(event.Position, event.Button)
	if event.Modifiers.Has(key.ModShift) && h.target.Mode() == editor.ModeDefault {
		h.drag.forceMode(editor.ModeDefault)
		h.target.SetMode(editor.ModeSpecial)
	}

	h.logger.Debug("pointer down", "x", event.Position.X, "y", event.Position.Y)
	h.target.OnDown(h.ToCanvas(event.Position))
	return true
}

// handleDrag handles mouse drag (movement with button held).
func (h *Handler) handleDrag(event Event) bool {
	if !h.drag.isActive() || h.drag.getButton() != ButtonLeft {
		return false
	}
	if event.Position == h.drag.getCurrentPos() {
		return false
	}
	h.drag.update(event.Position)
	h.target.OnMove(h.ToCanvas(event.Position))
	return true
}

// handleRelease ends the gesture and restores a mode forced by Shift.
func (h *Handler) handleRelease(event Event) bool {
	if !h.drag.isActive() {
		return false
	}

	h.target.OnUp(h.ToCanvas(event.Position))
	if mode, ok := h.drag.restoreMode(); ok {
		h.target.SetMode(mode)
	}
	h.drag.end()

	h.logger.Debug("pointer up", "x", event.Position.X, "y", event.Position.Y)
	return true
}

// ToCanvas returns the canvas-local position of the centre of cell p.
func (h *Handler) ToCanvas(p Position) geom.Position {
	return geom.Position{
		X: (float64(p.X-h.config.Origin.X) + 0.5) * h.config.CellSize.Width,
		Y: (float64(p.Y-h.config.Origin.Y) + 0.5) * h.config.CellSize.Height,
	}
}

// Reset clears all handler state.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drag.end()
}

// IsDragging returns true if a gesture is in progress.
func (h *Handler) IsDragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drag.isActive()
}

// DragStart returns the starting cell of the current gesture (if any).
func (h *Handler) DragStart() (Position, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.drag.isActive() {
		return Position{}, false
	}
	return h.drag.getStartPos(), true
}
