package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/gridedit/internal/element"
)

func TestPencilCreatesOnClick(t *testing.T) {
	ed, o := newTestEditor(t, nil)
	ed.SetTool(ToolPencil)

	ed.OnDown(at(30, 30))
	require.Equal(t, TargetGrid, ed.Target())
	require.Equal(t, []string{"n1"}, ed.Selected())
	require.Len(t, ed.Changes(), 1)
	require.Empty(t, o.batches, "creation is buffered until pointer-up")

	ed.OnUp(at(30, 30))

	require.Len(t, o.batches, 1)
	batch := o.last()
	require.Len(t, batch, 1)
	require.Equal(t, element.KindAdd, batch[0].Kind)

	el := batch[0].Element
	require.Equal(t, "n1", el.ID)
	require.Equal(t, 25.0, el.X)
	require.InDelta(t, 25.0, el.Y, 1e-9)
	require.Equal(t, 12.5, el.Width)
	require.InDelta(t, rowHeight, el.Height, 1e-9)
	require.Equal(t, []string{"n1"}, ed.Selected())
}

func TestPencilCreateAndStretch(t *testing.T) {
	ed, o := newTestEditor(t, nil)
	ed.SetTool(ToolPencil)

	ed.OnDown(at(30, 30))
	ed.OnMove(at(70, 30))
	require.Equal(t, 50.0, ed.Changes()[0].Element.Width)

	ed.OnMove(at(0, 30))
	require.Equal(t, 12.5, ed.Changes()[0].Element.Width, "never narrower than one minor unit")

	ed.OnMove(at(70, 30))
	ed.OnUp(at(70, 30))

	require.Len(t, o.batches, 1)
	require.Equal(t, element.KindAdd, o.last()[0].Kind)
	require.Equal(t, 50.0, o.last()[0].Element.Width)
}

func TestPencilCreateHonoursZoom(t *testing.T) {
	ed, o := newTestEditor(t, nil)
	ed.SetTool(ToolPencil)
	ed.SetZoom(at(2, 2))

	ed.OnDown(at(60, 60))
	ed.OnUp(at(60, 60))

	require.Equal(t, 25.0, o.last()[0].Element.X)
}

func TestPencilCreateWithoutSnap(t *testing.T) {
	s := testSettings()
	s.SnapToGrid = false
	ed, o := newEditorWithSettings(t, s, nil)
	ed.SetTool(ToolPencil)

	ed.OnDown(at(30, 30))
	ed.OnMove(at(47, 30))
	ed.OnUp(at(47, 30))

	el := o.last()[0].Element
	require.Equal(t, 30.0, el.X)
	require.Equal(t, 30.0, el.Y)
	require.Equal(t, 17.0, el.Width)
}

func TestPencilResizesExisting(t *testing.T) {
	ed, o := newTestEditor(t, []element.Element{block("a", 0, 0, 25)})
	ed.SetTool(ToolPencil)

	ed.OnDown(at(10, 4))
	require.Equal(t, TargetElement, ed.Target())
	require.Equal(t, []string{"a"}, ed.Selected())

	ed.OnMove(at(60, 4))
	require.Equal(t, 62.5, ed.Changes()[0].Element.Width)
	ed.OnUp(at(60, 4))

	require.Len(t, o.batches, 1)
	require.Equal(t, []element.ChangeEvent{element.Update(block("a", 0, 0, 62.5))}, o.last())

	ed.OnDown(at(10, 4))
	ed.OnMove(at(-40, 4))
	ed.OnUp(at(-40, 4))
	require.Equal(t, 12.5, o.last()[0].Element.Width)
}

func TestScissorDefaultSplitsOnce(t *testing.T) {
	ed, o := newTestEditor(t, []element.Element{block("a", 0, 0, 50)})
	ed.SetTool(ToolScissor)

	ed.OnDown(at(20, 4))

	require.Len(t, o.batches, 1, "split flushes on pointer-down")
	batch := o.last()
	require.Equal(t, []element.ChangeEvent{
		element.Update(block("a", 0, 0, 25)),
		element.Add(block("n1", 25, 0, 25)),
	}, batch)
	require.Equal(t, []string{"n1"}, ed.Selected())

	ed.OnMove(at(40, 4))
	ed.OnUp(at(40, 4))
	require.Len(t, o.batches, 1)
	require.Equal(t, []string{"a", "n1"}, element.IDs(o.elements))
}

func TestScissorSpecialSplitsEvenly(t *testing.T) {
	ed, o := newTestEditor(t, []element.Element{block("a", 0, 0, 50)})
	ed.SetTool(ToolScissor)
	ed.SetMode(ModeSpecial)

	ed.OnDown(at(10, 4))

	batch := o.last()
	require.Len(t, batch, 4)
	require.Equal(t, element.KindUpdate, batch[0].Kind)
	require.Equal(t, 3, element.Count(batch, element.KindAdd))

	total := 0.0
	for i, c := range batch {
		require.Equal(t, 12.5*float64(i), c.Element.X)
		require.Equal(t, 12.5, c.Element.Width)
		total += c.Element.Width
	}
	require.Equal(t, 50.0, total)
	require.Equal(t, []string{"n3"}, ed.Selected())
}

func TestScissorSpecialRemainder(t *testing.T) {
	s := testSettings()
	s.SnapToGrid = false
	ed, o := newEditorWithSettings(t, s, []element.Element{block("a", 0, 0, 50)})
	ed.SetTool(ToolScissor)
	ed.SetMode(ModeSpecial)

	ed.OnDown(at(15, 4))

	batch := o.last()
	require.Len(t, batch, 4)
	widths := make([]float64, len(batch))
	for i, c := range batch {
		widths[i] = c.Element.Width
	}
	require.Equal(t, []float64{15, 15, 15, 5}, widths)
}

func TestScissorAtRightEdgeCreatesNothing(t *testing.T) {
	ed, o := newTestEditor(t, []element.Element{block("a", 0, 0, 25)})
	ed.SetTool(ToolScissor)

	ed.OnDown(at(24.9, 4))

	require.Equal(t, []element.ChangeEvent{element.Update(block("a", 0, 0, 25))}, o.last())
	require.Equal(t, []string{"a"}, ed.Selected())
}

func TestScissorOnGridDoesNothing(t *testing.T) {
	ed, o := newTestEditor(t, []element.Element{block("a", 0, 0, 50)})
	ed.SetTool(ToolScissor)

	ed.OnDown(at(200, 200))
	ed.OnUp(at(200, 200))

	require.Empty(t, o.batches)
	require.Empty(t, ed.Selected())
}
