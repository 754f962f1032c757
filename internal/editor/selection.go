package editor

import (
	"slices"

	"github.com/dshills/gridedit/internal/element"
)

// uniq returns ids without duplicates, keeping first occurrences in order.
func uniq(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (e *Editor) isSelectedID(id string) bool {
	return slices.Contains(e.selected, id)
}

// selectIDs replaces the selection.
func (e *Editor) selectIDs(ids []string) {
	next := uniq(ids)
	if slices.Equal(next, e.selected) {
		return
	}
	e.selected = next
	if e.selectionEvents {
		e.emit([]element.ChangeEvent{element.Select(e.selected)})
	}
}

// appendSelection adds ids to the selection.
func (e *Editor) appendSelection(ids ...string) {
	e.selectIDs(append(e.Selected(), ids...))
}

// selectedElements returns the authoritative elements that are selected, in
// element order. Selected ids without an authoritative element are skipped.
func (e *Editor) selectedElements() []element.Element {
	var out []element.Element
	for _, el := range e.elements {
		if e.isSelectedID(el.ID) {
			out = append(out, el)
		}
	}
	return out
}
