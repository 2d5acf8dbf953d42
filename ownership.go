// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import "fmt"

// ref is either owned or borrowed. Only owned refs ever reach a native
// destroy function.
type ref[H ~uintptr] interface {
	// get returns the handle. It panics on an owned ref after release.
	get() H
	// peek returns the handle without the closed check.
	peek() H
	owning() bool
	// released reports whether an owned ref has been released.
	released() bool
	// release destroys the handle if owned and not yet released, and
	// reports whether it did.
	release() bool
}

// owned destroys its handle exactly once, on the first release.
type owned[H ~uintptr] struct {
	kind    string
	h       H
	destroy func(H)
	closed  bool
}

func (o *owned[H]) get() H {
	if o.closed {
		panic(fmt.Sprintf("ultralight: %s used after Close", o.kind))
	}
	return o.h
}

func (o *owned[H]) peek() H        { return o.h }
func (o *owned[H]) owning() bool   { return true }
func (o *owned[H]) released() bool { return o.closed }

func (o *owned[H]) release() bool {
	if o.closed {
		return false
	}
	o.closed = true
	o.destroy(o.h)
	return true
}

// borrowed belongs to some other object. release is a no-op.
type borrowed[H ~uintptr] struct {
	h H
}

func (b borrowed[H]) get() H         { return b.h }
func (b borrowed[H]) peek() H        { return b.h }
func (b borrowed[H]) owning() bool   { return false }
func (b borrowed[H]) released() bool { return false }
func (b borrowed[H]) release() bool  { return false }

// own wraps a freshly created handle. A null handle is reported as a
// HandleError instead of being wrapped.
func own[H ~uintptr](kind string, h H, destroy func(H)) (ref[H], error) {
	if h == 0 {
		return nil, &HandleError{Kind: kind, Op: "create"}
	}
	return &owned[H]{kind: kind, h: h, destroy: destroy}, nil
}

// borrow wraps a handle returned by an accessor.
func borrow[H ~uintptr](kind string, h H) (ref[H], error) {
	if h == 0 {
		return nil, &HandleError{Kind: kind, Op: "get"}
	}
	return borrowed[H]{h: h}, nil
}
