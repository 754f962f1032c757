package editor

import "github.com/dshills/gridedit/internal/geom"

// Settings is the per-session configuration of a canvas.
type Settings struct {
	// Bounds is the canvas extent.
	Bounds geom.Bounds

	// Grid is the size of one major grid cell.
	Grid geom.Size

	// Quantize is the number of subdivisions per grid cell on each axis.
	// Grid.Width / Quantize.Width is the minor snap unit.
	Quantize geom.Size

	// Zoom is the initial zoom. A zero value means 1/1.
	Zoom geom.Position

	// Offset is the initial pan translation.
	Offset geom.Position

	// SnapToGrid enables quantisation of created, moved and resized elements.
	SnapToGrid bool
}

// DefaultSettings returns the piano-roll defaults: a 50x100 grid cell split
// into 4 columns and 12 rows, 128 rows tall, snapping on.
func DefaultSettings() Settings {
	return Settings{
		Bounds:     geom.Bounds{Width: 50 * 16, Height: 100.0 / 12 * 128},
		Grid:       geom.Size{Width: 50, Height: 100},
		Quantize:   geom.Size{Width: 4, Height: 12},
		Zoom:       geom.Position{X: 1, Y: 1},
		SnapToGrid: true,
	}
}

// MinorUnit returns the smallest snap increment on each axis.
// A zero quantize component falls back to the full grid size.
func (s Settings) MinorUnit() geom.Size {
	unit := s.Grid
	if s.Quantize.Width > 0 {
		unit.Width = s.Grid.Width / s.Quantize.Width
	}
	if s.Quantize.Height > 0 {
		unit.Height = s.Grid.Height / s.Quantize.Height
	}
	return unit
}

// snapDown applies the creation snap policy when snapping is enabled.
func (s Settings) snapDown(p geom.Position) geom.Position {
	if !s.SnapToGrid {
		return p
	}
	unit := s.MinorUnit()
	return geom.Position{
		X: geom.SnapDown(p.X, unit.Width),
		Y: geom.SnapDown(p.Y, unit.Height),
	}
}

// snapNearest applies the move/resize snap policy when snapping is enabled.
func (s Settings) snapNearest(p geom.Position) geom.Position {
	if !s.SnapToGrid {
		return p
	}
	unit := s.MinorUnit()
	return geom.Position{
		X: geom.SnapNearest(p.X, unit.Width),
		Y: geom.SnapNearest(p.Y, unit.Height),
	}
}

// snapWidth rounds a width to the nearest minor unit when snapping is enabled.
func (s Settings) snapWidth(w float64) float64 {
	if !s.SnapToGrid {
		return w
	}
	return geom.SnapNearest(w, s.MinorUnit().Width)
}
