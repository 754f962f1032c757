package domain

import "slices"

// ActionKind tags an Action.
type ActionKind uint8

const (
	// ActionAdd inserts Note.
	ActionAdd ActionKind = iota + 1
	// ActionUpdate moves or resizes the note with ID. Velocity is kept
	// unless Note.Velocity is set.
	ActionUpdate
	// ActionRemove deletes the note with ID.
	ActionRemove
)

// String returns the kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Action is one change to a note list.
type Action struct {
	Kind ActionKind
	ID   string
	Note Note
}

// Add returns an Add action for n.
func Add(n Note) Action { return Action{Kind: ActionAdd, ID: n.ID, Note: n} }

// Update returns an Update action replacing the placement of the note n.ID.
func Update(n Note) Action { return Action{Kind: ActionUpdate, ID: n.ID, Note: n} }

// Remove returns a Remove action for id.
func Remove(id string) Action { return Action{Kind: ActionRemove, ID: id} }

// Reduce applies actions to notes left to right and returns the new list.
// notes is not modified. Adding an existing id replaces it; updating or
// removing an unknown id does nothing.
func Reduce(notes []Note, actions []Action) []Note {
	state := slices.Clone(notes)
	for _, a := range actions {
		state = reduceOne(state, a)
	}
	return state
}

func reduceOne(state []Note, a Action) []Note {
	i := slices.IndexFunc(state, func(n Note) bool { return n.ID == a.ID })

	switch a.Kind {
	case ActionAdd:
		if i >= 0 {
			state[i] = a.Note
			return state
		}
		return append(state, a.Note)

	case ActionUpdate:
		if i < 0 {
			return state
		}
		n := state[i]
		n.On, n.Off, n.Value = a.Note.On, a.Note.Off, a.Note.Value
		if a.Note.Velocity != 0 {
			n.Velocity = a.Note.Velocity
		}
		state[i] = n
		return state

	case ActionRemove:
		if i < 0 {
			return state
		}
		return slices.Delete(state, i, i+1)
	}
	return state
}

// Inverse returns the actions that undo actions when applied to the result
// of Reduce(notes, actions).
func Inverse(notes []Note, actions []Action) []Action {
	state := slices.Clone(notes)
	inverse := make([]Action, 0, len(actions))

	for _, a := range actions {
		prev, existed := Find(state, a.ID)
		switch a.Kind {
		case ActionAdd:
			if existed {
				inverse = append(inverse, Add(prev))
			} else {
				inverse = append(inverse, Remove(a.ID))
			}
		case ActionUpdate:
			if existed {
				inverse = append(inverse, Update(prev))
			}
		case ActionRemove:
			if existed {
				inverse = append(inverse, Add(prev))
			}
		}
		state = reduceOne(state, a)
	}

	slices.Reverse(inverse)
	return inverse
}
