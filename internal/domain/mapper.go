package domain

import (
	"math"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
)

// Mapper converts between notes and canvas elements for one editor
// configuration. Pan and zoom are applied by the editor and play no part
// here.
type Mapper struct {
	unit   geom.Size
	height float64
}

// NewMapper returns a mapper for settings.
func NewMapper(settings editor.Settings) Mapper {
	return Mapper{
		unit:   settings.MinorUnit(),
		height: settings.Bounds.Height,
	}
}

// ToElement places n on the canvas, snapped to the minor unit.
func (m Mapper) ToElement(n Note) element.Element {
	return element.Element{
		ID:     n.ID,
		X:      geom.SnapNearest(n.On*m.unit.Width, m.unit.Width),
		Y:      geom.SnapNearest(m.height-float64(n.Value)*m.unit.Height, m.unit.Height),
		Width:  geom.SnapNearest(n.Length()*m.unit.Width, m.unit.Width),
		Height: m.unit.Height,
	}
}

// ToElements maps every note.
func (m Mapper) ToElements(notes []Note) []element.Element {
	out := make([]element.Element, len(notes))
	for i, n := range notes {
		out[i] = m.ToElement(n)
	}
	return out
}

// FromElement returns the note drawn as el, at DefaultVelocity.
func (m Mapper) FromElement(el element.Element) Note {
	return Note{
		ID:       el.ID,
		On:       el.X / m.unit.Width,
		Off:      (el.X + el.Width) / m.unit.Width,
		Value:    int(math.Round((m.height - el.Y) / m.unit.Height)),
		Velocity: DefaultVelocity,
	}
}

// ToAction converts an element event into a note action. Select events
// have no note counterpart.
func (m Mapper) ToAction(c element.ChangeEvent) (Action, bool) {
	switch c.Kind {
	case element.KindAdd:
		return Add(m.FromElement(c.Element)), true
	case element.KindUpdate:
		n := m.FromElement(c.Element)
		n.Velocity = 0
		return Update(n), true
	case element.KindRemove:
		return Remove(c.Element.ID), true
	}
	return Action{}, false
}

// ToActions converts a batch, dropping Select events.
func (m Mapper) ToActions(batch []element.ChangeEvent) []Action {
	actions := make([]Action, 0, len(batch))
	for _, c := range batch {
		if a, ok := m.ToAction(c); ok {
			actions = append(actions, a)
		}
	}
	return actions
}
