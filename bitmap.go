// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"fmt"
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Bitmap is a pixel buffer.
type Bitmap struct {
	ref ref[capi.Bitmap]
}

func newBitmap(h capi.Bitmap) (*Bitmap, error) {
	r, err := own("bitmap", h, api.DestroyBitmap)
	if err != nil {
		return nil, err
	}
	return &Bitmap{ref: r}, nil
}

// NewEmptyBitmap creates a bitmap with no pixels.
func NewEmptyBitmap() (*Bitmap, error) {
	if _, err := native(); err != nil {
		return nil, err
	}
	return newBitmap(api.CreateEmptyBitmap())
}

// NewBitmap creates a zeroed bitmap.
func NewBitmap(width, height uint32, format BitmapFormat) (*Bitmap, error) {
	if _, err := native(); err != nil {
		return nil, err
	}
	return newBitmap(api.CreateBitmap(width, height, uint32(format)))
}

// NewBitmapFromPixels creates a bitmap holding a copy of pixels, which must
// contain at least rowBytes*height bytes.
func NewBitmapFromPixels(width, height uint32, format BitmapFormat, rowBytes uint32, pixels []byte) (*Bitmap, error) {
	if _, err := native(); err != nil {
		return nil, err
	}
	if minRow := uint64(width) * uint64(format.BytesPerPixel()); uint64(rowBytes) < minRow {
		return nil, fmt.Errorf("ultralight: row bytes %d below minimum %d", rowBytes, minRow)
	}
	if need := uint64(rowBytes) * uint64(height); uint64(len(pixels)) < need {
		return nil, fmt.Errorf("ultralight: bitmap needs %d bytes, got %d", need, len(pixels))
	}
	return newBitmap(api.CreateBitmapFromPixels(width, height, uint32(format), rowBytes, pixels))
}

func (b *Bitmap) Handle() uintptr { return uintptr(b.ref.get()) }
func (b *Bitmap) Owned() bool     { return b.ref.owning() }

// Close destroys an owned bitmap. Bitmaps owned by a Surface are unaffected.
func (b *Bitmap) Close() { b.ref.release() }

// Clone returns a new owned deep copy.
func (b *Bitmap) Clone() (*Bitmap, error) {
	return newBitmap(api.CreateBitmapFromCopy(b.ref.get()))
}

func (b *Bitmap) Width() uint32         { return api.BitmapGetWidth(b.ref.get()) }
func (b *Bitmap) Height() uint32        { return api.BitmapGetHeight(b.ref.get()) }
func (b *Bitmap) Format() BitmapFormat  { return BitmapFormat(api.BitmapGetFormat(b.ref.get())) }
func (b *Bitmap) BytesPerPixel() uint32 { return api.BitmapGetBpp(b.ref.get()) }
func (b *Bitmap) RowBytes() uint32      { return api.BitmapGetRowBytes(b.ref.get()) }

// Size returns the size of the pixel buffer in bytes.
func (b *Bitmap) Size() uint64 { return api.BitmapGetSize(b.ref.get()) }

func (b *Bitmap) OwnsPixels() bool { return api.BitmapOwnsPixels(b.ref.get()) }
func (b *Bitmap) IsEmpty() bool    { return api.BitmapIsEmpty(b.ref.get()) }

// Erase zeroes every pixel.
func (b *Bitmap) Erase() { api.BitmapErase(b.ref.get()) }

// SwapRedBlue converts between BGRA and RGBA in place.
func (b *Bitmap) SwapRedBlue() { api.BitmapSwapRedBlueChannels(b.ref.get()) }

// WritePNG encodes the bitmap to a PNG file at path.
func (b *Bitmap) WritePNG(path string) error {
	if !api.BitmapWritePNG(b.ref.get(), path) {
		return fmt.Errorf("ultralight: writing PNG %s failed", path)
	}
	return nil
}

// LockPixels locks the pixel buffer for direct access.
func (b *Bitmap) LockPixels() (*Pixels, error) {
	h := b.ref.get()
	return lockPixels(api.BitmapLockPixels(h), api.BitmapGetRowBytes(h), api.BitmapGetHeight(h), uintptr(api.BitmapGetSize(h)),
		func() { api.BitmapUnlockPixels(h) })
}

// Pixels is a locked pixel buffer. Data aliases native memory and is only
// valid until Unlock.
type Pixels struct {
	Data     []byte
	RowBytes uint32
	Height   uint32

	unlock   func()
	unlocked bool
}

func lockPixels(ptr uintptr, rowBytes, height uint32, size uintptr, unlock func()) (*Pixels, error) {
	if ptr == 0 {
		unlock()
		return nil, &HandleError{Kind: "pixels", Op: "lock"}
	}
	return &Pixels{
		Data:     unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size),
		RowBytes: rowBytes,
		Height:   height,
		unlock:   unlock,
	}, nil
}

// Unlock releases the lock. It is safe to call twice.
func (p *Pixels) Unlock() {
	if p.unlocked {
		return
	}
	p.unlocked = true
	p.Data = nil
	p.unlock()
}
