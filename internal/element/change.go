package element

// Kind tags a ChangeEvent.
type Kind uint8

const (
	// KindAdd introduces a new element.
	KindAdd Kind = iota + 1
	// KindUpdate replaces an existing element with the same id.
	KindUpdate
	// KindRemove deletes the element with the same id.
	KindRemove
	// KindSelect reports a new selection.
	KindSelect
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "Add"
	case KindUpdate:
		return "Update"
	case KindRemove:
		return "Remove"
	case KindSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// ChangeEvent is the tagged union handed to the owner. Add, Update and Remove
// events carry Element; Select events carry Selection.
type ChangeEvent struct {
	Kind      Kind
	Element   Element
	Selection []string
}

// Add returns an Add event for el.
func Add(el Element) ChangeEvent { return ChangeEvent{Kind: KindAdd, Element: el} }

// Update returns an Update event for el.
func Update(el Element) ChangeEvent { return ChangeEvent{Kind: KindUpdate, Element: el} }

// Remove returns a Remove event for el.
func Remove(el Element) ChangeEvent { return ChangeEvent{Kind: KindRemove, Element: el} }

// Select returns a Select event carrying a copy of ids.
func Select(ids []string) ChangeEvent {
	return ChangeEvent{Kind: KindSelect, Selection: append([]string(nil), ids...)}
}

// IsElementEvent reports whether c is an Add, Update or Remove.
func (c ChangeEvent) IsElementEvent() bool {
	return c.Kind == KindAdd || c.Kind == KindUpdate || c.Kind == KindRemove
}

// IsEditorEvent reports whether c is a Select.
func (c ChangeEvent) IsEditorEvent() bool {
	return c.Kind == KindSelect
}

// Count returns how many events in batch have the given kind.
func Count(batch []ChangeEvent, kind Kind) int {
	n := 0
	for _, c := range batch {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
