package mouse

import (
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/input/key"
)

// ScrollDirection represents the direction of a scroll event.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
	// ScrollLeft indicates scrolling left.
	ScrollLeft
	// ScrollRight indicates scrolling right.
	ScrollRight
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// ButtonToScrollDirection converts a scroll button to a direction.
func ButtonToScrollDirection(b Button) ScrollDirection {
	switch b {
	case ButtonScrollUp:
		return ScrollUp
	case ButtonScrollDown:
		return ScrollDown
	case ButtonScrollLeft:
		return ScrollLeft
	case ButtonScrollRight:
		return ScrollRight
	default:
		return ScrollNone
	}
}

// handleScroll pans the view by ScrollCells cells, or zooms horizontally
// when Ctrl or Meta is held. Shift turns vertical scrolling horizontal.
func (h *Handler) handleScroll(event Event) bool {
	direction := ButtonToScrollDirection(event.Button)
	if direction == ScrollNone {
		return false
	}

	if h.config.EnableZoom && event.Modifiers.Has(key.ModCtrl|key.ModMeta) {
		step := h.config.ZoomStep
		if step <= 0 {
			return false
		}
		switch direction {
		case ScrollUp, ScrollRight:
			h.target.MultiplyZoom(geom.Position{X: step, Y: 1})
		default:
			h.target.MultiplyZoom(geom.Position{X: 1 / step, Y: 1})
		}
		return true
	}

	if event.Modifiers.Has(key.ModShift) {
		switch direction {
		case ScrollUp:
			direction = ScrollLeft
		case ScrollDown:
			direction = ScrollRight
		}
	}

	// Offsets are in screen space. Scrolling down reveals lower rows, which
	// is a negative offset.
	dx := float64(h.config.ScrollCells) * h.config.CellSize.Width
	dy := float64(h.config.ScrollCells) * h.config.CellSize.Height
	var delta geom.Position
	switch direction {
	case ScrollUp:
		delta.Y = dy
	case ScrollDown:
		delta.Y = -dy
	case ScrollLeft:
		delta.X = dx
	case ScrollRight:
		delta.X = -dx
	}

	h.target.TransposeOffset(delta)
	return true
}
