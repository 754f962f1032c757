// Package element defines the generic rectangle the grid editor manipulates,
// the change vocabulary exchanged with the owning context, the merged render
// view and a reference fold for applying change batches.
package element

import (
	"fmt"

	"github.com/dshills/gridedit/internal/geom"
)

// Element is a rectangle on the canvas. Identity is ID; two elements with the
// same ID are two versions of the same thing.
type Element struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds returns the rectangle occupied by e.
func (e Element) Bounds() geom.Bounds {
	return geom.Bounds{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Contains reports whether p lies on e, edges included.
func (e Element) Contains(p geom.Position) bool {
	return e.Bounds().Contains(p)
}

// Translate returns a copy of e moved by d.
func (e Element) Translate(d geom.Position) Element {
	e.X += d.X
	e.Y += d.Y
	return e
}

// String returns a compact description used in logs and test failures.
func (e Element) String() string {
	return fmt.Sprintf("%s(%g,%g %gx%g)", e.ID, e.X, e.Y, e.Width, e.Height)
}

// IDs returns the ids of elements in order.
func IDs(elements []Element) []string {
	ids := make([]string, len(elements))
	for i, el := range elements {
		ids[i] = el.ID
	}
	return ids
}

// Find returns the element with the given id.
func Find(elements []Element, id string) (Element, bool) {
	for _, el := range elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}
