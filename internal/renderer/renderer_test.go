package renderer

import (
	"testing"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/renderer/backend"
	"github.com/dshills/gridedit/internal/renderer/statusline"
)

type fakeScene struct {
	settings editor.Settings
	blocks   []element.Element
	selected map[string]bool
	changed  map[string]bool
	band     *geom.Bounds
	zoom     geom.Position
	offset   geom.Position
}

func newFakeScene(blocks ...element.Element) *fakeScene {
	return &fakeScene{
		settings: editor.Settings{
			Bounds:   geom.Bounds{Width: 40, Height: 40},
			Grid:     geom.Size{Width: 20, Height: 20},
			Quantize: geom.Size{Width: 4, Height: 4},
		},
		blocks:   blocks,
		selected: map[string]bool{},
		changed:  map[string]bool{},
		zoom:     geom.Position{X: 1, Y: 1},
	}
}

func (s *fakeScene) Settings() editor.Settings          { return s.settings }
func (s *fakeScene) Blocks() []element.Element          { return s.blocks }
func (s *fakeScene) IsSelected(el element.Element) bool { return s.selected[el.ID] }
func (s *fakeScene) IsChanged(el element.Element) bool  { return s.changed[el.ID] }
func (s *fakeScene) Zoom() geom.Position                { return s.zoom }
func (s *fakeScene) Offset() geom.Position              { return s.offset }
func (s *fakeScene) SelectionBounds() (geom.Bounds, bool) {
	if s.band == nil {
		return geom.Bounds{}, false
	}
	return *s.band, true
}

func newTestRenderer(t *testing.T) (*Renderer, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(12, 10)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return New(b, geom.Size{Width: 5, Height: 5}), b
}

func TestDrawGridAndBlocks(t *testing.T) {
	r, b := newTestRenderer(t)
	status := statusline.New()
	status.SetMessage("hello", statusline.MessageInfo)
	r.Draw(newFakeScene(element.Element{ID: "a", X: 5, Y: 5, Width: 10, Height: 5}), status)

	tests := []struct {
		row  int
		want string
	}{
		{0, "    │   ░░░░"},
		{1, " ██ │   ░░░░"},
		{4, "────┼───░░░░"},
		{8, "░░░░░░░░░░░░"},
		{9, "hello       "},
	}
	for _, tt := range tests {
		if got := b.Row(tt.row); got != tt.want {
			t.Errorf("Row(%d) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestDrawBlockStyles(t *testing.T) {
	r, b := newTestRenderer(t)
	scene := newFakeScene(
		element.Element{ID: "plain", X: 0, Y: 0, Width: 5, Height: 5},
		element.Element{ID: "sel", X: 10, Y: 0, Width: 5, Height: 5},
		element.Element{ID: "pending", X: 30, Y: 0, Width: 5, Height: 5},
	)
	scene.selected["sel"] = true
	scene.selected["pending"] = true
	scene.changed["pending"] = true
	r.Draw(scene, nil)

	theme := DefaultTheme()
	tests := []struct {
		x    int
		want backend.Cell
	}{
		{0, theme.Block},
		{2, theme.Selected},
		{6, theme.Pending},
	}
	for _, tt := range tests {
		if got := b.Cell(tt.x, 0); got != tt.want {
			t.Errorf("Cell(%d, 0) = %+v, want %+v", tt.x, got, tt.want)
		}
	}
}

func TestDrawZoomAndOffset(t *testing.T) {
	r, b := newTestRenderer(t)
	scene := newFakeScene(element.Element{ID: "a", X: 5, Y: 5, Width: 10, Height: 5})
	scene.zoom = geom.Position{X: 2, Y: 1}
	scene.offset = geom.Position{X: 5, Y: 0}
	r.Draw(scene, nil)

	block := DefaultTheme().Block
	for x := range 12 {
		want := x >= 3 && x < 7
		if got := b.Cell(x, 1) == block; got != want {
			t.Errorf("Cell(%d, 1) block = %v, want %v", x, got, want)
		}
	}
}

func TestDrawNarrowBlockCoversOneCell(t *testing.T) {
	r, b := newTestRenderer(t)
	r.Draw(newFakeScene(element.Element{ID: "a", X: 6, Y: 6, Width: 1, Height: 1}), nil)

	if got := b.Cell(1, 1); got != DefaultTheme().Block {
		t.Errorf("Cell(1, 1) = %+v, want block", got)
	}
	if got := b.Cell(2, 1); got == DefaultTheme().Block {
		t.Error("narrow block should cover a single cell")
	}
}

func TestDrawSelectionBand(t *testing.T) {
	r, b := newTestRenderer(t)
	scene := newFakeScene()
	scene.band = &geom.Bounds{X: 0, Y: 0, Width: 15, Height: 10}
	r.Draw(scene, nil)

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{2, 0, '┐'},
		{0, 1, '└'},
		{2, 1, '┘'},
		{1, 1, '─'},
	}
	for _, c := range corners {
		if got := b.Cell(c.x, c.y).Rune; got != c.want {
			t.Errorf("Cell(%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestDrawEditorScene(t *testing.T) {
	settings := editor.DefaultSettings()
	ed := editor.New(settings, []element.Element{
		{ID: "a", X: 0, Y: 0, Width: 25, Height: settings.MinorUnit().Height},
	})
	ed.SelectAll()

	b := backend.NewNullBackend(20, 6)
	b.Init()
	r := New(b, settings.MinorUnit())
	status := statusline.New()
	status.SetTool(ed.Tool().String())
	r.Draw(ed, status)

	theme := DefaultTheme()
	for x := range 2 {
		if got := b.Cell(x, 0); got != theme.Selected {
			t.Errorf("Cell(%d, 0) = %+v, want selected", x, got)
		}
	}
	if got := b.Cell(2, 0); got == theme.Selected {
		t.Error("block should span two cells")
	}
	if got := b.Row(5); got[:9] != " POINTER " {
		t.Errorf("status = %q", got)
	}
}

func TestDrawTooSmall(t *testing.T) {
	b := backend.NewNullBackend(5, 1)
	b.Init()
	New(b, geom.Size{}).Draw(newFakeScene(), statusline.New())
	if got := b.Row(0); got != "     " {
		t.Errorf("Row(0) = %q, want untouched", got)
	}
}
