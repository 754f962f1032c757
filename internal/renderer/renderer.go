package renderer

import (
	"math"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/renderer/backend"
	"github.com/dshills/gridedit/internal/renderer/statusline"
)

// Scene is the editor state the renderer reads.
type Scene interface {
	Settings() editor.Settings
	Blocks() []element.Element
	IsSelected(el element.Element) bool
	IsChanged(el element.Element) bool
	SelectionBounds() (geom.Bounds, bool)
	Zoom() geom.Position
	Offset() geom.Position
}

var _ Scene = (*editor.Editor)(nil)

// eps absorbs rounding when canvas edges land exactly on cell edges.
const eps = 1e-9

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the theme.
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// Renderer draws a Scene on a backend.
type Renderer struct {
	backend  backend.Backend
	cellSize geom.Size
	theme    Theme
}

// New creates a renderer where one cell spans cellSize screen units.
func New(b backend.Backend, cellSize geom.Size, opts ...Option) *Renderer {
	if cellSize.Width <= 0 || cellSize.Height <= 0 {
		cellSize = geom.Size{Width: 1, Height: 1}
	}
	r := &Renderer{
		backend:  b,
		cellSize: cellSize,
		theme:    DefaultTheme(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CellSize returns the screen extent of one cell.
func (r *Renderer) CellSize() geom.Size {
	return r.cellSize
}

// cellRect is a half-open range of cells.
type cellRect struct {
	x0, y0, x1, y1 int
}

// project converts a canvas rectangle to the cells it covers. Every non-empty
// rectangle covers at least one cell.
func (r *Renderer) project(b geom.Bounds, zoom, offset geom.Position) cellRect {
	left := (b.X*zoom.X + offset.X) / r.cellSize.Width
	right := ((b.X+b.Width)*zoom.X + offset.X) / r.cellSize.Width
	top := (b.Y*zoom.Y + offset.Y) / r.cellSize.Height
	bottom := ((b.Y+b.Height)*zoom.Y + offset.Y) / r.cellSize.Height

	c := cellRect{
		x0: int(math.Floor(left + eps)),
		x1: int(math.Ceil(right - eps)),
		y0: int(math.Floor(top + eps)),
		y1: int(math.Ceil(bottom - eps)),
	}
	if c.x1 <= c.x0 {
		c.x1 = c.x0 + 1
	}
	if c.y1 <= c.y0 {
		c.y1 = c.y0 + 1
	}
	return c
}

// Draw renders the scene with status on the last row and shows the frame.
// A nil status leaves the last row blank.
func (r *Renderer) Draw(s Scene, status *statusline.StatusLine) {
	width, height := r.backend.Size()
	canvasHeight := height - 1
	if width <= 0 || canvasHeight <= 0 {
		return
	}

	settings := s.Settings()
	zoom, offset := s.Zoom(), s.Offset()

	r.drawGrid(settings, zoom, offset, width, canvasHeight)

	for _, el := range s.Blocks() {
		cell := r.theme.Block
		switch {
		case s.IsChanged(el):
			cell = r.theme.Pending
		case s.IsSelected(el):
			cell = r.theme.Selected
		}
		r.fill(r.project(el.Bounds(), zoom, offset), cell, width, canvasHeight)
	}

	if band, ok := s.SelectionBounds(); ok {
		r.outline(r.project(band, zoom, offset), width, canvasHeight)
	}

	if status != nil {
		status.Render(r.backend, height-1)
	} else {
		r.fill(cellRect{y0: height - 1, x1: width, y1: height}, r.theme.Empty, width, height)
	}
	r.backend.Show()
}

// drawGrid paints the background: major grid lines inside the canvas bounds
// and a hatch outside them.
func (r *Renderer) drawGrid(settings editor.Settings, zoom, offset geom.Position, width, height int) {
	inside := r.project(settings.Bounds, zoom, offset)

	cols := r.majorLines(settings.Grid.Width, zoom.X, offset.X, r.cellSize.Width, inside.x0, inside.x1)
	rows := r.majorLines(settings.Grid.Height, zoom.Y, offset.Y, r.cellSize.Height, inside.y0, inside.y1)

	for y := range height {
		for x := range width {
			cell := r.theme.Empty
			switch {
			case x < inside.x0 || x >= inside.x1 || y < inside.y0 || y >= inside.y1:
				cell = r.theme.Outside
			case cols[x] && rows[y]:
				cell = r.theme.GridX
			case cols[x]:
				cell = r.theme.GridV
			case rows[y]:
				cell = r.theme.GridH
			}
			r.backend.SetCell(x, y, cell)
		}
	}
}

// majorLines returns the cells in [from, to) that hold a major grid line.
// A line is drawn in the cell where the grid cell begins.
func (r *Renderer) majorLines(size, zoom, offset, cell float64, from, to int) map[int]bool {
	lines := make(map[int]bool)
	step := size * zoom / cell
	if step < 2 {
		// Lines closer than two cells would fill the canvas.
		return lines
	}
	start := offset / cell
	k := math.Ceil((float64(from) - start) / step)
	for ; ; k++ {
		c := int(math.Floor(start + k*step + eps))
		if c >= to {
			break
		}
		if c > from {
			lines[c] = true
		}
	}
	return lines
}

func (r *Renderer) fill(c cellRect, cell backend.Cell, width, height int) {
	for y := max(c.y0, 0); y < min(c.y1, height); y++ {
		for x := max(c.x0, 0); x < min(c.x1, width); x++ {
			r.backend.SetCell(x, y, cell)
		}
	}
}

// outline draws the border of c in the band style.
func (r *Renderer) outline(c cellRect, width, height int) {
	set := func(x, y int, ch rune) {
		if x >= 0 && x < width && y >= 0 && y < height {
			r.backend.SetCell(x, y, backend.NewStyledCell(ch, r.theme.Band))
		}
	}
	right, bottom := c.x1-1, c.y1-1
	for x := c.x0; x <= right; x++ {
		set(x, c.y0, '─')
		set(x, bottom, '─')
	}
	for y := c.y0; y <= bottom; y++ {
		set(c.x0, y, '│')
		set(right, y, '│')
	}
	set(c.x0, c.y0, '┌')
	set(right, c.y0, '┐')
	set(c.x0, bottom, '└')
	set(right, bottom, '┘')
}
