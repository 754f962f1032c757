package renderer

import "github.com/dshills/gridedit/internal/renderer/backend"

// Theme holds the cells used to draw each part of the canvas.
type Theme struct {
	Empty    backend.Cell
	Outside  backend.Cell
	GridV    backend.Cell
	GridH    backend.Cell
	GridX    backend.Cell
	Block    backend.Cell
	Selected backend.Cell
	Pending  backend.Cell
	Band     backend.Style
}

// DefaultTheme returns the default palette theme.
func DefaultTheme() Theme {
	grid := backend.DefaultStyle().WithForeground(backend.ColorGray).With(backend.AttrDim)
	return Theme{
		Empty:    backend.EmptyCell(),
		Outside:  backend.NewStyledCell('░', grid),
		GridV:    backend.NewStyledCell('│', grid),
		GridH:    backend.NewStyledCell('─', grid),
		GridX:    backend.NewStyledCell('┼', grid),
		Block:    backend.NewStyledCell('█', backend.DefaultStyle().WithForeground(backend.ColorCyan)),
		Selected: backend.NewStyledCell('█', backend.DefaultStyle().WithForeground(backend.ColorYellow).With(backend.AttrBold)),
		Pending:  backend.NewStyledCell('▓', backend.DefaultStyle().WithForeground(backend.ColorCyan).With(backend.AttrDim)),
		Band:     backend.DefaultStyle().WithForeground(backend.ColorWhite),
	}
}
