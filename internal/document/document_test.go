package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/gridedit/internal/domain"
)

func TestApplyUndoRedo(t *testing.T) {
	d := New(domain.DefaultNotes())
	start := d.Notes()

	d.Apply([]domain.Action{
		domain.Add(domain.Note{ID: "3", On: 6, Off: 8, Value: 62, Velocity: 127}),
		domain.Remove("1"),
	})
	afterFirst := d.Notes()
	require.Len(t, afterFirst, 2)

	d.Apply([]domain.Action{domain.Update(domain.Note{ID: "3", On: 7, Off: 9, Value: 63})})
	afterSecond := d.Notes()

	info, ok := d.PeekUndo()
	require.True(t, ok)
	require.Equal(t, "update 1", info.Description)

	require.NoError(t, d.Undo())
	require.ElementsMatch(t, afterFirst, d.Notes())
	require.NoError(t, d.Undo())
	require.ElementsMatch(t, start, d.Notes())
	require.ErrorIs(t, d.Undo(), ErrNothingToUndo)

	info, ok = d.PeekRedo()
	require.True(t, ok)
	require.Equal(t, "add 1, remove 1", info.Description)

	require.NoError(t, d.Redo())
	require.NoError(t, d.Redo())
	require.ElementsMatch(t, afterSecond, d.Notes())
	require.ErrorIs(t, d.Redo(), ErrNothingToRedo)
}

func TestApplyClearsRedo(t *testing.T) {
	d := New(nil)
	d.Apply([]domain.Action{domain.Add(domain.Note{ID: "a"})})
	require.NoError(t, d.Undo())
	require.True(t, d.CanRedo())

	d.Apply([]domain.Action{domain.Add(domain.Note{ID: "b"})})
	require.False(t, d.CanRedo())
}

func TestApplyEmptyIsNotAStep(t *testing.T) {
	d := New(nil)
	d.Apply(nil)
	require.False(t, d.CanUndo())
	require.False(t, d.Dirty())
}

func TestHistoryIsBounded(t *testing.T) {
	d := New(nil, WithHistory(3))
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		d.Apply([]domain.Action{domain.Add(domain.Note{ID: id})})
	}
	require.Equal(t, 3, d.UndoCount())

	for d.CanUndo() {
		require.NoError(t, d.Undo())
	}
	ids := make([]string, 0)
	for _, n := range d.Notes() {
		ids = append(ids, n.ID)
	}
	require.Equal(t, []string{"a", "b"}, ids)

	d.ClearHistory()
	require.False(t, d.CanRedo())
}

func TestSelection(t *testing.T) {
	d := New(nil)
	d.SetSelection([]string{"a"})
	require.Equal(t, []string{"a"}, d.Selection())
	require.True(t, d.Dirty())
	require.False(t, d.CanUndo(), "selection changes are not undoable")
}

func TestEncodeDecode(t *testing.T) {
	d := New(domain.DefaultNotes())
	d.SetSelection([]string{"2"})

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	require.Contains(t, buf.String(), "version: 1")
	require.Contains(t, buf.String(), "velocity: 127")

	loaded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultNotes(), loaded.Notes())
	require.Equal(t, []string{"2"}, loaded.Selection())
	require.False(t, loaded.Dirty())
}

func TestDecodeRejectsNewerVersion(t *testing.T) {
	_, err := Decode(strings.NewReader("version: 99\nnotes: []\n"))
	require.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("notes: {on: [\n"))
	require.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	d, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, d.Notes())
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultNotes(), d.Notes())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs", "session.yaml")

	d := New(domain.DefaultNotes())
	d.Apply([]domain.Action{domain.Remove("1")})
	require.True(t, d.Dirty())
	require.NoError(t, d.Save(path))
	require.False(t, d.Dirty())

	loaded, err := Load(path, WithHistory(5))
	require.NoError(t, err)
	require.Equal(t, d.Notes(), loaded.Notes())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notes: {on: [\n"), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, path)
}
