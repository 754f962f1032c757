package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/gridedit/internal/input/key"
	"github.com/dshills/gridedit/internal/input/keymap"
)

// ErrKeyBound is returned when an identifier already has callbacks.
var ErrKeyBound = errors.New("key already bound")

type keyCallbacks struct {
	down, up func()
}

// KeyListener receives key bindings from a keymap router and invokes them
// for decoded terminal key presses.
type KeyListener struct {
	mu   sync.Mutex
	keys map[string]keyCallbacks
}

var _ keymap.Listener = (*KeyListener)(nil)

// NewKeyListener creates an empty listener.
func NewKeyListener() *KeyListener {
	return &KeyListener{keys: make(map[string]keyCallbacks)}
}

// Bind registers callbacks for id.
func (l *KeyListener) Bind(id string, down, up func()) error {
	if down == nil {
		return fmt.Errorf("bind %q: nil down callback", id)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.keys[id]; ok {
		return fmt.Errorf("bind %q: %w", id, ErrKeyBound)
	}
	l.keys[id] = keyCallbacks{down: down, up: up}
	return nil
}

// Unbind removes the callbacks for id.
func (l *KeyListener) Unbind(id string) {
	l.mu.Lock()
	delete(l.keys, id)
	l.mu.Unlock()
}

// Bound reports whether id has callbacks.
func (l *KeyListener) Bound(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.keys[id]
	return ok
}

// Dispatch invokes the callbacks bound to ev and reports whether any were.
// Terminals report no key releases, so a pair binding runs down and then up.
func (l *KeyListener) Dispatch(ev key.Event) bool {
	l.mu.Lock()
	cb, ok := l.keys[ev.ID()]
	l.mu.Unlock()
	if !ok {
		return false
	}
	cb.down()
	if cb.up != nil {
		cb.up()
	}
	return true
}
