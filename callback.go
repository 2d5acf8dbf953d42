// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"sync"

	"go.uber.org/zap"
)

// slotKey names one native callback slot: the object that stores the
// callback and which of its slots it is.
type slotKey struct {
	owner uintptr
	name  string
}

// registry holds the Go closures that native code can call back into. Native
// code only ever sees the uintptr key, never a Go pointer.
//
// Each slot holds at most one closure. Binding a slot again drops the closure
// it held, and releaseOwner drops every slot of a destroyed object.
type registry struct {
	mu      sync.Mutex
	next    uintptr
	entries map[uintptr]any
	slots   map[slotKey]uintptr
	keys    map[uintptr]slotKey
}

func newRegistry() *registry {
	return &registry{
		entries: make(map[uintptr]any),
		slots:   make(map[slotKey]uintptr),
		keys:    make(map[uintptr]slotKey),
	}
}

var callbacks = newRegistry()

// bind stores fn in the slot (owner, name) and returns the key to hand to
// native code as user data.
func (r *registry) bind(owner uintptr, name string, fn any) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	sk := slotKey{owner, name}
	if old, ok := r.slots[sk]; ok {
		delete(r.entries, old)
		delete(r.keys, old)
	}
	r.next++
	key := r.next
	r.entries[key] = fn
	r.slots[sk] = key
	r.keys[key] = sk
	return key
}

// unbind empties the slot (owner, name).
func (r *registry) unbind(owner uintptr, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sk := slotKey{owner, name}
	if key, ok := r.slots[sk]; ok {
		delete(r.slots, sk)
		delete(r.keys, key)
		delete(r.entries, key)
	}
}

// remove drops a single entry by key.
func (r *registry) remove(key uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sk, ok := r.keys[key]; ok {
		if r.slots[sk] == key {
			delete(r.slots, sk)
		}
		delete(r.keys, key)
	}
	delete(r.entries, key)
}

func (r *registry) lookup(key uintptr) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, ok := r.entries[key]
	return fn, ok
}

// releaseOwner drops every slot bound to owner.
func (r *registry) releaseOwner(owner uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sk, key := range r.slots {
		if sk.owner != owner {
			continue
		}
		delete(r.slots, sk)
		delete(r.keys, key)
		delete(r.entries, key)
	}
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// lookupAs recovers the closure stored under key. A missing key (the slot was
// replaced or its object destroyed) or an unexpected type yields ok=false.
func lookupAs[T any](key uintptr, event string) (fn T, ok bool) {
	v, found := callbacks.lookup(key)
	if !found {
		Logger().Debug("stale callback ignored", zap.String("event", event), zap.Uintptr("key", key))
		return fn, false
	}
	fn, ok = v.(T)
	if !ok {
		Logger().Error("callback has unexpected type", zap.String("event", event), zap.Uintptr("key", key))
	}
	return fn, ok
}
