package geom

import "math"

// Position is a point in canvas space.
type Position struct {
	X float64
	Y float64
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from o to p.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul scales p component-wise by f.
func (p Position) Mul(f Position) Position {
	return Position{X: p.X * f.X, Y: p.Y * f.Y}
}

// Div divides p component-wise by f. A zero factor leaves the component unchanged.
func (p Position) Div(f Position) Position {
	out := p
	if f.X != 0 {
		out.X = p.X / f.X
	}
	if f.Y != 0 {
		out.Y = p.Y / f.Y
	}
	return out
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Bounds is an axis-aligned rectangle anchored at its top-left corner.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.X && p.X <= b.Right() &&
		p.Y >= b.Y && p.Y <= b.Bottom()
}

// NormalizeBounds returns the rectangle spanned by two arbitrary corners.
// Dragging up or to the left yields the same rectangle as dragging down
// or to the right.
func NormalizeBounds(p1, p2 Position) Bounds {
	return Bounds{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Intersects reports whether a and b overlap. Touching edges count as overlap.
func Intersects(a, b Bounds) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// UpperBounds returns the smallest rectangle enclosing every rectangle in bs.
// It returns the zero Bounds for an empty slice.
func UpperBounds(bs []Bounds) Bounds {
	if len(bs) == 0 {
		return Bounds{}
	}

	minX, minY := bs[0].X, bs[0].Y
	maxX, maxY := bs[0].Right(), bs[0].Bottom()
	for _, b := range bs[1:] {
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}

	return Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
