package element

import "sort"

// Merge builds the list to render from the authoritative elements and the
// pending change buffer.
//
// A pending Add or Update for an id always wins over the authoritative entry
// with that id, and a pending Remove hides it. The result holds each id once
// and is stable-sorted so that selected elements come last (drawn on top).
// isSelected may be nil.
func Merge(elements []Element, pending []ChangeEvent, isSelected func(id string) bool) []Element {
	seen := make(map[string]struct{}, len(elements)+len(pending))
	out := make([]Element, 0, len(elements)+len(pending))

	for _, c := range pending {
		if !c.IsElementEvent() {
			continue
		}
		if _, dup := seen[c.Element.ID]; dup {
			continue
		}
		seen[c.Element.ID] = struct{}{}
		if c.Kind != KindRemove {
			out = append(out, c.Element)
		}
	}

	for _, el := range elements {
		if _, dup := seen[el.ID]; dup {
			continue
		}
		seen[el.ID] = struct{}{}
		out = append(out, el)
	}

	if isSelected != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return !isSelected(out[i].ID) && isSelected(out[j].ID)
		})
	}

	return out
}
