package keymap

import "github.com/dshills/gridedit/internal/input/key"

// DefaultBindings returns the piano-roll key map as key identifier to
// action name.
func DefaultBindings() map[string]string {
	return map[string]string{
		"shift": "mode.special",

		"left":        "move.left",
		"right":       "move.right",
		"up":          "move.up",
		"down":        "move.down",
		"shift+left":  "move.left.grid",
		"shift+right": "move.right.grid",
		"shift+up":    "move.up.grid",
		"shift+down":  "move.down.grid",

		"command+a": "select.all",
		"command+d": "selection.duplicate",
		"backspace": "selection.delete",
		"esc":       "view.reset",

		"command+left":  "zoom.out.x",
		"command+right": "zoom.in.x",
		"command+up":    "zoom.out.y",
		"command+down":  "zoom.in.y",

		"alt+1": "tool.pointer",
		"alt+2": "tool.pencil",
		"alt+3": "tool.scissor",
		"alt+4": "tool.lasso",
	}
}

// TerminalBindings returns DefaultBindings plus ctrl aliases for every
// command binding, since terminals do not report the command key.
func TerminalBindings() map[string]string {
	bindings := DefaultBindings()
	for spec, action := range DefaultBindings() {
		ev, err := key.Parse(spec)
		if err != nil || !ev.Modifiers.Has(key.ModMeta) {
			continue
		}
		ev.Modifiers = ev.Modifiers.Without(key.ModMeta).With(key.ModCtrl)
		bindings[ev.ID()] = action
	}
	bindings["delete"] = "selection.delete"
	return bindings
}

// Merge overlays override on base. Keys are compared in canonical form, so
// "cmd+a" replaces "command+a". An empty action removes the binding.
func Merge(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for spec, action := range base {
		out[canonical(spec)] = action
	}
	for spec, action := range override {
		id := canonical(spec)
		if action == "" {
			delete(out, id)
			continue
		}
		out[id] = action
	}
	return out
}

// canonical normalises spec, leaving invalid identifiers for Build or
// NewRouter to report.
func canonical(spec string) string {
	if id, err := key.Normalize(spec); err == nil {
		return id
	}
	return spec
}

// DefaultMap returns the resolved default key map.
func DefaultMap() Map {
	keys, err := BuiltinActions().Build(DefaultBindings())
	if err != nil {
		panic("default key map: " + err.Error())
	}
	return keys
}
