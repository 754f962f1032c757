// Package domain holds the musical records the grid editor manipulates and
// the mapping between them and generic elements.
package domain

import (
	"fmt"
	"slices"
)

// DefaultVelocity is the velocity of notes drawn with the editor.
const DefaultVelocity = 127

// Note is a MIDI-style note. On and Off are in minor grid units; Value is
// the pitch, with higher values drawn higher on the canvas.
type Note struct {
	ID       string  `yaml:"id"`
	On       float64 `yaml:"on"`
	Off      float64 `yaml:"off"`
	Value    int     `yaml:"value"`
	Velocity int     `yaml:"velocity"`
}

// Length returns the duration of n in minor grid units.
func (n Note) Length() float64 {
	return n.Off - n.On
}

// String returns a compact description used in logs.
func (n Note) String() string {
	return fmt.Sprintf("%s[%d %g-%g v%d]", n.ID, n.Value, n.On, n.Off, n.Velocity)
}

// DefaultNotes returns the notes a new document starts with.
func DefaultNotes() []Note {
	return []Note{
		{ID: "1", On: 1, Off: 3, Value: 60, Velocity: DefaultVelocity},
		{ID: "2", On: 4, Off: 5, Value: 67, Velocity: DefaultVelocity},
	}
}

// Find returns the note with the given id.
func Find(notes []Note, id string) (Note, bool) {
	i := slices.IndexFunc(notes, func(n Note) bool { return n.ID == id })
	if i < 0 {
		return Note{}, false
	}
	return notes[i], true
}
