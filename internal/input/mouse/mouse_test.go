package mouse

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/element"
	"github.com/dshills/gridedit/internal/geom"
	"github.com/dshills/gridedit/internal/input/key"
)

// recorder is a Target that logs every call.
type recorder struct {
	calls  []string
	mode   editor.Mode
	offset geom.Position
	zoom   geom.Position
}

func newRecorder() *recorder {
	return &recorder{zoom: geom.Position{X: 1, Y: 1}}
}

func (r *recorder) OnDown(p geom.Position) { r.calls = append(r.calls, fmt.Sprintf("down %g,%g", p.X, p.Y)) }
func (r *recorder) OnMove(p geom.Position) { r.calls = append(r.calls, fmt.Sprintf("move %g,%g", p.X, p.Y)) }
func (r *recorder) OnUp(p geom.Position)   { r.calls = append(r.calls, fmt.Sprintf("up %g,%g", p.X, p.Y)) }
func (r *recorder) Mode() editor.Mode      { return r.mode }

func (r *recorder) SetMode(m editor.Mode) {
	r.mode = m
	r.calls = append(r.calls, "mode "+m.String())
}

func (r *recorder) TransposeOffset(d geom.Position) { r.offset = r.offset.Add(d) }
func (r *recorder) MultiplyZoom(f geom.Position)    { r.zoom = r.zoom.Mul(f) }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CellSize = geom.Size{Width: 10, Height: 20}
	return cfg
}

func press(x, y int, mods key.Modifier) Event {
	return Event{Position: Position{X: x, Y: y}, Button: ButtonLeft, Action: ActionPress, Modifiers: mods}
}

func drag(x, y int) Event {
	return Event{Position: Position{X: x, Y: y}, Button: ButtonLeft, Action: ActionDrag}
}

func release(x, y int) Event {
	return Event{Position: Position{X: x, Y: y}, Action: ActionRelease}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonScrollUp, "scroll-up"},
		{ButtonScrollDown, "scroll-down"},
		{ButtonScrollLeft, "scroll-left"},
		{ButtonScrollRight, "scroll-right"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionPress, "press"},
		{ActionRelease, "release"},
		{ActionMove, "move"},
		{ActionDrag, "drag"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestToCanvas(t *testing.T) {
	cfg := testConfig()
	cfg.Origin = Position{X: 0, Y: 1}
	h := NewHandler(newRecorder(), cfg)

	got := h.ToCanvas(Position{X: 2, Y: 3})
	want := geom.Position{X: 25, Y: 50}
	if got != want {
		t.Errorf("ToCanvas = %v, want %v", got, want)
	}
}

func TestNewHandlerDefaultsCellSize(t *testing.T) {
	h := NewHandler(newRecorder(), Config{})
	if got := h.ToCanvas(Position{X: 1, Y: 1}); got != (geom.Position{X: 1.5, Y: 1.5}) {
		t.Errorf("ToCanvas with zero cell size = %v", got)
	}
}

func TestGestureSequence(t *testing.T) {
	r := newRecorder()
	h := NewHandler(r, testConfig())

	events := []Event{
		press(0, 0, key.ModNone),
		drag(1, 0),
		drag(1, 0), // no movement
		press(2, 0, key.ModNone),
		release(2, 1),
	}
	for _, ev := range events {
		h.Handle(ev)
	}

	want := []string{"down 5,10", "move 15,10", "move 25,10", "up 25,30"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
	if h.IsDragging() {
		t.Error("gesture should be over after release")
	}
}

func TestDragStart(t *testing.T) {
	h := NewHandler(newRecorder(), testConfig())
	if _, ok := h.DragStart(); ok {
		t.Error("DragStart should report no gesture before a press")
	}

	h.Handle(press(3, 4, key.ModNone))
	h.Handle(drag(5, 6))
	start, ok := h.DragStart()
	if !ok || start != (Position{X: 3, Y: 4}) {
		t.Errorf("DragStart = %v, %v", start, ok)
	}

	h.Reset()
	if h.IsDragging() {
		t.Error("Reset should end the gesture")
	}
}

func TestIgnoredEvents(t *testing.T) {
	r := newRecorder()
	h := NewHandler(r, testConfig())

	if h.Handle(release(0, 0)) {
		t.Error("release without press should be ignored")
	}
	if h.Handle(drag(1, 1)) {
		t.Error("drag without press should be ignored")
	}
	if h.Handle(Event{Button: ButtonRight, Action: ActionPress}) {
		t.Error("right button should be ignored")
	}
	if h.Handle(Event{Action: ActionMove}) {
		t.Error("hover should be ignored")
	}
	if len(r.calls) != 0 {
		t.Errorf("unexpected calls %v", r.calls)
	}
}

func TestShiftForcesSpecialMode(t *testing.T) {
	r := newRecorder()
	h := NewHandler(r, testConfig())

	h.Handle(press(0, 0, key.ModShift))
	h.Handle(release(0, 0))

	want := []string{"mode special", "down 5,10", "up 5,10", "mode default"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestShiftKeepsExistingSpecialMode(t *testing.T) {
	r := newRecorder()
	r.mode = editor.ModeSpecial
	h := NewHandler(r, testConfig())

	h.Handle(press(0, 0, key.ModShift))
	h.Handle(release(0, 0))

	if r.mode != editor.ModeSpecial {
		t.Errorf("mode = %v, want special", r.mode)
	}
	want := []string{"down 5,10", "up 5,10"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestScroll(t *testing.T) {
	r := newRecorder()
	h := NewHandler(r, testConfig())

	h.Handle(Event{Button: ButtonScrollDown, Action: ActionPress})
	if r.offset != (geom.Position{Y: -80}) {
		t.Errorf("offset after scroll down = %v", r.offset)
	}

	h.Handle(Event{Button: ButtonScrollDown, Action: ActionPress, Modifiers: key.ModShift})
	if r.offset != (geom.Position{X: -40, Y: -80}) {
		t.Errorf("offset after shift scroll = %v", r.offset)
	}

	h.Handle(Event{Button: ButtonScrollUp, Action: ActionPress, Modifiers: key.ModCtrl})
	if math.Abs(r.zoom.X-1.2) > 1e-12 || r.zoom.Y != 1 {
		t.Errorf("zoom after ctrl scroll = %v", r.zoom)
	}
	h.Handle(Event{Button: ButtonScrollDown, Action: ActionPress, Modifiers: key.ModCtrl})
	if math.Abs(r.zoom.X-1) > 1e-12 {
		t.Errorf("zoom after ctrl scroll back = %v", r.zoom)
	}
}

func TestButtonToScrollDirection(t *testing.T) {
	if ButtonToScrollDirection(ButtonScrollLeft) != ScrollLeft {
		t.Error("scroll-left should map to ScrollLeft")
	}
	if ButtonToScrollDirection(ButtonLeft) != ScrollNone {
		t.Error("left button is not a scroll")
	}
}

func TestDrivesEditor(t *testing.T) {
	settings := editor.DefaultSettings()
	var batches [][]element.ChangeEvent
	var ed *editor.Editor
	var elements []element.Element
	ed = editor.New(settings, nil,
		editor.WithGenerateID(func() string { return "n1" }),
		editor.WithOnChange(func(batch []element.ChangeEvent) {
			batches = append(batches, batch)
			elements = element.Apply(elements, batch)
			ed.SetElements(elements)
		}))
	ed.SetTool(editor.ToolPencil)

	cfg := DefaultConfig()
	cfg.CellSize = settings.MinorUnit()
	h := NewHandler(ed, cfg)

	h.Handle(press(2, 3, key.ModNone))
	h.Handle(release(2, 3))

	if len(batches) != 1 || batches[0][0].Kind != element.KindAdd {
		t.Fatalf("batches = %v, want one Add", batches)
	}
	created := batches[0][0].Element
	if created.X != 25 || math.Abs(created.Y-25) > 1e-9 {
		t.Errorf("created at %v,%v, want 25,25", created.X, created.Y)
	}

	ed.SetTool(editor.ToolPointer)
	h.Handle(press(2, 3, key.ModNone))
	h.Handle(drag(6, 3))
	h.Handle(release(6, 3))

	moved, ok := element.Find(elements, "n1")
	if !ok || moved.X != 75 {
		t.Errorf("moved element = %v, want x=75", moved)
	}
}
