package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dshills/gridedit/internal/domain"
)

// formatVersion is the current document file version.
const formatVersion = 1

// File is the on-disk form of a document.
type File struct {
	Version   int           `yaml:"version"`
	Notes     []domain.Note `yaml:"notes"`
	Selection []string      `yaml:"selection,omitempty"`
}

// Decode reads a document from r.
func Decode(r io.Reader, opts ...Option) (*Document, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if f.Version > formatVersion {
		return nil, fmt.Errorf("document version %d is newer than supported version %d", f.Version, formatVersion)
	}

	d := New(f.Notes, opts...)
	d.selection = f.Selection
	return d, nil
}

// Encode writes the document to w.
func (d *Document) Encode(w io.Writer) error {
	d.mu.Lock()
	f := File{
		Version:   formatVersion,
		Notes:     d.notes,
		Selection: d.selection,
	}
	d.mu.Unlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return enc.Close()
}

// Load reads the document at path. A missing file yields a document with
// the default notes.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(domain.DefaultNotes(), opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	d, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save writes the document to path atomically and clears the dirty flag.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating document directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gridedit-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := d.Encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}

	d.mu.Lock()
	d.dirty = false
	d.mu.Unlock()
	return nil
}
