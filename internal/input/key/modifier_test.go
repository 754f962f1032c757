package key

import "testing"

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModShift)
	if !mod.Has(ModCtrl) || !mod.Has(ModShift) {
		t.Errorf("With should accumulate, got %v", mod)
	}
	mod = mod.Without(ModCtrl)
	if mod != ModShift {
		t.Errorf("Without(ModCtrl) = %v, want shift", mod)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl"},
		{ModMeta, "command"},
		{ModShift | ModCtrl, "ctrl+shift"},
		{ModCtrl | ModAlt | ModShift | ModMeta, "ctrl+alt+shift+command"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"cmd", ModMeta},
		{"command", ModMeta},
		{"option", ModAlt},
		{" shift ", ModShift},
		{"hyper", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyModifier(t *testing.T) {
	if KeyShift.Modifier() != ModShift || KeyMeta.Modifier() != ModMeta {
		t.Error("bare modifier keys should map to their modifier")
	}
	if KeyLeft.Modifier() != ModNone {
		t.Error("non-modifier keys have no modifier")
	}
	if !KeyAlt.IsModifierKey() || KeyRune.IsModifierKey() {
		t.Error("IsModifierKey mismatch")
	}
	if !KeyDown.IsArrowKey() || KeyShift.IsArrowKey() {
		t.Error("IsArrowKey mismatch")
	}
}
