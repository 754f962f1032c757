package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"a", KeyRune, 'a', ModNone},
		{"A", KeyRune, 'a', ModShift},
		{"1", KeyRune, '1', ModNone},
		{"=", KeyRune, '=', ModNone},
		{"+", KeyRune, '+', ModNone},
		{"esc", KeyEscape, 0, ModNone},
		{"Escape", KeyEscape, 0, ModNone},
		{"backspace", KeyBackspace, 0, ModNone},
		{"spacebar", KeySpace, 0, ModNone},
		{"left", KeyLeft, 0, ModNone},
		{"shift", KeyShift, 0, ModNone},
		{"command", KeyMeta, 0, ModNone},
		{"command+a", KeyRune, 'a', ModMeta},
		{"cmd+a", KeyRune, 'a', ModMeta},
		{"meta+a", KeyRune, 'a', ModMeta},
		{"Ctrl+A", KeyRune, 'a', ModCtrl | ModShift},
		{"control+d", KeyRune, 'd', ModCtrl},
		{"shift+left", KeyLeft, 0, ModShift},
		{"command+shift+up", KeyUp, 0, ModMeta | ModShift},
		{"alt+1", KeyRune, '1', ModAlt},
		{"option+2", KeyRune, '2', ModAlt},
		{"shift++", KeyRune, '+', ModShift},
		{"shift+shift", KeyShift, 0, ModNone},
		{"<C-a>", KeyRune, 'a', ModCtrl},
		{"<D-d>", KeyRune, 'd', ModMeta},
		{"<S-Left>", KeyLeft, 0, ModShift},
		{"<Esc>", KeyEscape, 0, ModNone},
		{"<CR>", KeyEnter, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			event, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if event.Key != tt.wantKey {
				t.Errorf("Parse(%q) key = %v, want %v", tt.spec, event.Key, tt.wantKey)
			}
			if event.Rune != tt.wantRune {
				t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, event.Rune, tt.wantRune)
			}
			if event.Modifiers != tt.wantMod {
				t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, event.Modifiers, tt.wantMod)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"hyper+a", ErrInvalidSpec},
		{"ctrl+", ErrInvalidSpec},
		{"+a", ErrInvalidSpec},
		{"ctrl+banana", ErrInvalidSpec},
		{"banana", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"esc", "esc"},
		{"Escape", "esc"},
		{"<Esc>", "esc"},
		{"space", "spacebar"},
		{"Command+A", "shift+command+a"},
		{"cmd+a", "command+a"},
		{"<D-a>", "command+a"},
		{"shift+command+up", "shift+command+up"},
		{"command+shift+up", "shift+command+up"},
		{"ctrl+alt+d", "ctrl+alt+d"},
		{"alt+ctrl+d", "ctrl+alt+d"},
		{"BS", "backspace"},
		{"meta", "command"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.spec)
		if err != nil {
			t.Errorf("Normalize(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid spec")
		}
	}()
	MustParse("hyper+a")
}

func TestEventMatches(t *testing.T) {
	event := NewRuneEvent('a', ModMeta)
	for _, spec := range []string{"command+a", "cmd+a", "<D-a>", "meta+a"} {
		if !event.Matches(spec) {
			t.Errorf("event %s should match %q", event, spec)
		}
	}
	if event.Matches("ctrl+a") {
		t.Error("command+a should not match ctrl+a")
	}
	if event.Matches("") {
		t.Error("an invalid spec never matches")
	}
}
