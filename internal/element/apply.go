package element

// Apply folds batch over elements from left to right and returns the new
// collection. elements is not modified.
//
// Add appends (or replaces an element that already carries the id), Update
// replaces the matching element and is ignored for unknown ids, Remove drops
// the matching element. Select events do not touch the collection.
func Apply(elements []Element, batch []ChangeEvent) []Element {
	state := append([]Element(nil), elements...)
	for _, c := range batch {
		state = applyOne(state, c)
	}
	return state
}

func applyOne(state []Element, c ChangeEvent) []Element {
	switch c.Kind {
	case KindAdd:
		if i := indexOf(state, c.Element.ID); i >= 0 {
			state[i] = c.Element
			return state
		}
		return append(state, c.Element)

	case KindUpdate:
		if i := indexOf(state, c.Element.ID); i >= 0 {
			state[i] = c.Element
		}
		return state

	case KindRemove:
		if i := indexOf(state, c.Element.ID); i >= 0 {
			return append(state[:i], state[i+1:]...)
		}
		return state
	}

	return state
}

func indexOf(state []Element, id string) int {
	for i, el := range state {
		if el.ID == id {
			return i
		}
	}
	return -1
}
