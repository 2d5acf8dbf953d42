// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"io"
	"runtime"
	"sync"
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"go.uber.org/zap"
)

// Surface is the bitmap a CPU view paints into. Surfaces are always owned by
// their View.
type Surface struct {
	ref ref[capi.Surface]
}

func (s *Surface) Handle() uintptr { return uintptr(s.ref.get()) }
func (s *Surface) Owned() bool     { return s.ref.owning() }
func (s *Surface) Close()          { s.ref.release() }

func (s *Surface) Width() uint32    { return api.SurfaceGetWidth(s.ref.get()) }
func (s *Surface) Height() uint32   { return api.SurfaceGetHeight(s.ref.get()) }
func (s *Surface) RowBytes() uint32 { return api.SurfaceGetRowBytes(s.ref.get()) }
func (s *Surface) Size() uint64     { return api.SurfaceGetSize(s.ref.get()) }

// Resize reallocates the surface. The view resizes its surface itself; this
// is for custom surfaces.
func (s *Surface) Resize(width, height uint32) { api.SurfaceResize(s.ref.get(), width, height) }

// LockPixels locks the BGRA pixel buffer for reading.
func (s *Surface) LockPixels() (*Pixels, error) {
	h := s.ref.get()
	return lockPixels(api.SurfaceLockPixels(h), api.SurfaceGetRowBytes(h), api.SurfaceGetHeight(h), uintptr(api.SurfaceGetSize(h)),
		func() { api.SurfaceUnlockPixels(h) })
}

// Buffer returns the Go storage behind the surface when Options.SurfaceFactory
// is set, or nil for the library's own bitmap surfaces.
func (s *Surface) Buffer() SurfaceBuffer {
	e, ok := surfaces.lookup(api.SurfaceGetUserData(s.ref.get()))
	if !ok {
		return nil
	}
	return e.buf
}

// Bitmap returns the bitmap behind the surface. It is owned by the surface.
// Surfaces from a SurfaceFactory have none.
func (s *Surface) Bitmap() (*Bitmap, error) {
	r, err := borrow("bitmap", api.BitmapSurfaceGetBitmap(s.ref.get()))
	if err != nil {
		return nil, err
	}
	return &Bitmap{ref: r}, nil
}

// SurfaceFactory supplies the pixel storage of every view surface. It is
// installed once through Options.SurfaceFactory.
type SurfaceFactory interface {
	NewSurface(width, height uint32) SurfaceBuffer
}

// SurfaceBuffer is the storage of one surface. Pixels are premultiplied
// BGRA, 32 bits each. The library never resizes a buffer while it is locked.
// A buffer that implements io.Closer is closed when its view drops it.
type SurfaceBuffer interface {
	Width() uint32
	Height() uint32
	RowBytes() uint32
	// Pixels returns the whole buffer, RowBytes*Height bytes.
	Pixels() []byte
	Resize(width, height uint32)
}

// MemorySurface is a SurfaceBuffer on the Go heap with no row padding.
type MemorySurface struct {
	width, height uint32
	pix           []byte
}

func NewMemorySurface(width, height uint32) *MemorySurface {
	return &MemorySurface{width: width, height: height, pix: make([]byte, int(width)*int(height)*4)}
}

func (m *MemorySurface) Width() uint32    { return m.width }
func (m *MemorySurface) Height() uint32   { return m.height }
func (m *MemorySurface) RowBytes() uint32 { return m.width * 4 }
func (m *MemorySurface) Pixels() []byte   { return m.pix }

// Resize reallocates the buffer. Previous contents are dropped.
func (m *MemorySurface) Resize(width, height uint32) {
	m.width, m.height = width, height
	m.pix = make([]byte, int(width)*int(height)*4)
}

// MemorySurfaces is a SurfaceFactory of MemorySurface buffers.
type MemorySurfaces struct{}

func (MemorySurfaces) NewSurface(width, height uint32) SurfaceBuffer {
	return NewMemorySurface(width, height)
}

// surfaceEntry pins the buffer's pixels while the library holds a lock.
type surfaceEntry struct {
	buf    SurfaceBuffer
	pinner runtime.Pinner
	locked bool
}

// surfaceTable maps the user data handed to the library to live buffers.
type surfaceTable struct {
	mu      sync.Mutex
	next    uintptr
	entries map[uintptr]*surfaceEntry
}

func newSurfaceTable() *surfaceTable {
	return &surfaceTable{entries: make(map[uintptr]*surfaceEntry)}
}

var (
	platformSurfaces SurfaceFactory
	surfaces = newSurfaceTable()
)

func (t *surfaceTable) add(buf SurfaceBuffer) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.entries[t.next] = &surfaceEntry{buf: buf}
	return t.next
}

func (t *surfaceTable) lookup(userData uintptr) (*surfaceEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[userData]
	return e, ok
}

func (t *surfaceTable) remove(userData uintptr) (*surfaceEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[userData]
	delete(t.entries, userData)
	return e, ok
}

func (t *surfaceTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// surfaceFor resolves userData, logging a stale value at Debug.
func surfaceFor(userData uintptr, event string) (*surfaceEntry, bool) {
	e, ok := surfaces.lookup(userData)
	if !ok {
		Logger().Debug("stale surface ignored", zap.String("event", event), zap.Uintptr("user_data", userData))
	}
	return e, ok
}

// dispatchSurfaceCreate returns the user data of a new buffer, or 0 if the
// factory returned none.
func dispatchSurfaceCreate(width, height uint32) uintptr {
	buf := platformSurfaces.NewSurface(width, height)
	if buf == nil {
		Logger().Error("surface factory returned no buffer", zap.Uint32("width", width), zap.Uint32("height", height))
		return 0
	}
	return surfaces.add(buf)
}

func dispatchSurfaceDestroy(userData uintptr) {
	e, ok := surfaces.remove(userData)
	if !ok {
		return
	}
	if e.locked {
		e.pinner.Unpin()
	}
	if c, ok := e.buf.(io.Closer); ok {
		if err := c.Close(); err != nil {
			Logger().Warn("closing surface buffer", zap.Error(err))
		}
	}
}

func dispatchSurfaceWidth(userData uintptr) uint32 {
	if e, ok := surfaceFor(userData, "surface_width"); ok {
		return e.buf.Width()
	}
	return 0
}

func dispatchSurfaceHeight(userData uintptr) uint32 {
	if e, ok := surfaceFor(userData, "surface_height"); ok {
		return e.buf.Height()
	}
	return 0
}

func dispatchSurfaceRowBytes(userData uintptr) uint32 {
	if e, ok := surfaceFor(userData, "surface_row_bytes"); ok {
		return e.buf.RowBytes()
	}
	return 0
}

func dispatchSurfaceSize(userData uintptr) uint64 {
	if e, ok := surfaceFor(userData, "surface_size"); ok {
		return uint64(len(e.buf.Pixels()))
	}
	return 0
}

// dispatchSurfaceLockPixels pins the pixels until the matching unlock so the
// library can hold on to the address.
func dispatchSurfaceLockPixels(userData uintptr) uintptr {
	e, ok := surfaceFor(userData, "surface_lock_pixels")
	if !ok {
		return 0
	}
	pix := e.buf.Pixels()
	if len(pix) == 0 {
		return 0
	}
	if !e.locked {
		e.pinner.Pin(&pix[0])
		e.locked = true
	}
	return uintptr(unsafe.Pointer(&pix[0]))
}

func dispatchSurfaceUnlockPixels(userData uintptr) {
	e, ok := surfaceFor(userData, "surface_unlock_pixels")
	if !ok || !e.locked {
		return
	}
	e.pinner.Unpin()
	e.locked = false
}

func dispatchSurfaceResize(userData uintptr, width, height uint32) {
	if e, ok := surfaceFor(userData, "surface_resize"); ok {
		e.buf.Resize(width, height)
	}
}
