package keymap

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dshills/gridedit/internal/editor"
	"github.com/dshills/gridedit/internal/input/key"
)

// Router errors
var (
	ErrNotSubscribed = errors.New("router not subscribed")
	ErrDuplicateKey  = errors.New("duplicate key binding")
)

// Listener is the external collaborator that listens for keys. Bind
// registers callbacks for a canonical key identifier; up is nil for
// single bindings.
type Listener interface {
	Bind(id string, down, up func()) error
	Unbind(id string)
}

// Source provides the state key handlers operate on.
type Source interface {
	Commands() editor.Commands
	ResetTarget()
}

var _ Source = (*editor.Editor)(nil)

// Router dispatches key events to the bindings of a Map.
type Router struct {
	source   Source
	keys     Map
	listener Listener
	logger   *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRouter creates a router for keys. Every identifier is normalised; an
// invalid identifier or two spellings of the same key are errors.
func NewRouter(source Source, keys Map, opts ...Option) (*Router, error) {
	normalized, err := normalizeMap(keys)
	if err != nil {
		return nil, err
	}

	r := &Router{
		source: source,
		keys:   normalized,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func normalizeMap(keys Map) (Map, error) {
	out := make(Map, len(keys))
	spelled := make(map[string]string, len(keys))
	for spec, b := range keys {
		id, err := key.Normalize(spec)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", spec, err)
		}
		if prev, ok := spelled[id]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateKey, prev, spec)
		}
		spelled[id] = spec
		out[id] = b
	}
	return out, nil
}

// Keys returns the bound identifiers in sorted order.
func (r *Router) Keys() []string {
	ids := make([]string, 0, len(r.keys))
	for id := range r.keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Subscribe binds every key of the map on l. A previous subscription is
// released first.
func (r *Router) Subscribe(l Listener) error {
	if r.listener != nil {
		r.unbindAll()
	}
	r.listener = l

	for _, id := range r.Keys() {
		var up func()
		if r.keys[id].IsPair() {
			up = func() { r.KeyUp(id) }
		}
		if err := l.Bind(id, func() { r.KeyDown(id) }, up); err != nil {
			r.unbindAll()
			r.listener = nil
			return fmt.Errorf("binding %q: %w", id, err)
		}
	}

	r.logger.Debug("subscribed key map", "keys", len(r.keys))
	return nil
}

// Unsubscribe releases every binding from the listener.
func (r *Router) Unsubscribe() error {
	if r.listener == nil {
		return ErrNotSubscribed
	}
	r.unbindAll()
	r.listener = nil
	return nil
}

func (r *Router) unbindAll() {
	for _, id := range r.Keys() {
		r.listener.Unbind(id)
	}
}

// SetMap replaces the mapping. When subscribed, the listener is re-bound
// to the new keys.
func (r *Router) SetMap(keys Map) error {
	normalized, err := normalizeMap(keys)
	if err != nil {
		return err
	}

	l := r.listener
	if l != nil {
		r.unbindAll()
	}
	r.keys = normalized
	if l == nil {
		return nil
	}
	r.listener = nil
	return r.Subscribe(l)
}

// KeyDown runs the key-down handler bound to id, in any spelling. The
// gesture target is cleared first so a following pointer interaction
// starts clean. It reports whether a binding matched.
func (r *Router) KeyDown(id string) bool {
	b, ok := r.lookup(id)
	if !ok || b.Down == nil {
		return false
	}
	r.source.ResetTarget()
	r.logger.Debug("key down", "key", id)
	b.Down(r.source.Commands())
	return true
}

// KeyUp runs the key-up handler of a paired binding.
func (r *Router) KeyUp(id string) bool {
	b, ok := r.lookup(id)
	if !ok || b.Up == nil {
		return false
	}
	r.logger.Debug("key up", "key", id)
	b.Up(r.source.Commands())
	return true
}

func (r *Router) lookup(id string) (Binding, bool) {
	if b, ok := r.keys[id]; ok {
		return b, true
	}
	normalized, err := key.Normalize(id)
	if err != nil {
		return Binding{}, false
	}
	b, ok := r.keys[normalized]
	return b, ok
}
