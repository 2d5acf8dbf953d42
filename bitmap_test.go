// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

func TestNewBitmap(t *testing.T) {
	setup(t, Options{})
	tests := []struct {
		format       BitmapFormat
		wantBpp      uint32
		wantRowBytes uint32
	}{
		{BitmapA8, 1, 16},
		{BitmapBGRA8, 4, 64},
	}
	for _, tt := range tests {
		b, err := NewBitmap(16, 8, tt.format)
		if err != nil {
			t.Fatalf("NewBitmap() error = %v", err)
		}
		if b.Width() != 16 || b.Height() != 8 {
			t.Errorf("size = %dx%d, want 16x8", b.Width(), b.Height())
		}
		if b.Format() != tt.format {
			t.Errorf("Format() = %v, want %v", b.Format(), tt.format)
		}
		if b.BytesPerPixel() != tt.wantBpp {
			t.Errorf("BytesPerPixel() = %d, want %d", b.BytesPerPixel(), tt.wantBpp)
		}
		if b.RowBytes() != tt.wantRowBytes {
			t.Errorf("RowBytes() = %d, want %d", b.RowBytes(), tt.wantRowBytes)
		}
		if b.Size() != uint64(tt.wantRowBytes)*8 {
			t.Errorf("Size() = %d, want %d", b.Size(), tt.wantRowBytes*8)
		}
		b.Close()
	}

	empty, err := NewEmptyBitmap()
	if err != nil {
		t.Fatalf("NewEmptyBitmap() error = %v", err)
	}
	defer empty.Close()
	if !empty.IsEmpty() {
		t.Errorf("IsEmpty() = false for an empty bitmap")
	}
}

func TestBitmapLockPixels(t *testing.T) {
	fake := setup(t, Options{})
	b, err := NewBitmap(2, 2, BitmapBGRA8)
	if err != nil {
		t.Fatalf("NewBitmap() error = %v", err)
	}
	defer b.Close()
	bh := capi.Bitmap(b.Handle())

	px, err := b.LockPixels()
	if err != nil {
		t.Fatalf("LockPixels() error = %v", err)
	}
	if !fake.BitmapLocked(bh) {
		t.Errorf("bitmap not locked")
	}
	if len(px.Data) != 16 || px.RowBytes != 8 || px.Height != 2 {
		t.Errorf("pixels = %d bytes, row %d, height %d", len(px.Data), px.RowBytes, px.Height)
	}
	px.Data[0] = 0xAB
	px.Unlock()
	px.Unlock()
	if fake.BitmapLocked(bh) {
		t.Errorf("bitmap still locked after Unlock")
	}
	if px.Data != nil {
		t.Errorf("Data not cleared after Unlock")
	}
	if got := fake.BitmapPixels(bh)[0]; got != 0xAB {
		t.Errorf("pixel write not visible natively: %#x", got)
	}

	empty, err := NewEmptyBitmap()
	if err != nil {
		t.Fatalf("NewEmptyBitmap() error = %v", err)
	}
	defer empty.Close()
	if _, err := empty.LockPixels(); err == nil {
		t.Errorf("LockPixels() on an empty bitmap returned no error")
	}
	if fake.BitmapLocked(capi.Bitmap(empty.Handle())) {
		t.Errorf("failed lock left the bitmap locked")
	}
}

func TestNewBitmapFromPixels(t *testing.T) {
	fake := setup(t, Options{})
	pixels := make([]byte, 3*12)
	for i := range pixels {
		pixels[i] = byte(i)
	}
	b, err := NewBitmapFromPixels(3, 3, BitmapBGRA8, 12, pixels)
	if err != nil {
		t.Fatalf("NewBitmapFromPixels() error = %v", err)
	}
	defer b.Close()
	if !bytes.Equal(fake.BitmapPixels(capi.Bitmap(b.Handle())), pixels) {
		t.Errorf("pixels not copied")
	}

	if _, err := NewBitmapFromPixels(3, 3, BitmapBGRA8, 8, pixels); err == nil {
		t.Errorf("row bytes below width*bpp accepted")
	}
	if _, err := NewBitmapFromPixels(3, 4, BitmapBGRA8, 12, pixels); err == nil {
		t.Errorf("short pixel buffer accepted")
	}
}

func TestBitmapWritePNG(t *testing.T) {
	fake := setup(t, Options{})
	b, err := NewBitmap(2, 1, BitmapBGRA8)
	if err != nil {
		t.Fatalf("NewBitmap() error = %v", err)
	}
	defer b.Close()
	copy(fake.BitmapPixels(capi.Bitmap(b.Handle())), []byte{
		0x00, 0x00, 0xFF, 0xFF, // red
		0xFF, 0x00, 0x00, 0xFF, // blue
	})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.WritePNG(path); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xFFFF {
		t.Errorf("pixel (0,0) red = %#x, want 0xffff", r)
	}
	if _, _, bl, _ := img.At(1, 0).RGBA(); bl != 0xFFFF {
		t.Errorf("pixel (1,0) blue = %#x, want 0xffff", bl)
	}

	a8, err := NewBitmap(2, 2, BitmapA8)
	if err != nil {
		t.Fatalf("NewBitmap() error = %v", err)
	}
	defer a8.Close()
	if err := a8.WritePNG(filepath.Join(t.TempDir(), "a8.png")); err == nil {
		t.Errorf("WritePNG() of an A8 bitmap returned no error")
	}
}

func TestBitmapSwapRedBlueAndErase(t *testing.T) {
	fake := setup(t, Options{})
	b, err := NewBitmap(1, 1, BitmapBGRA8)
	if err != nil {
		t.Fatalf("NewBitmap() error = %v", err)
	}
	defer b.Close()
	data := fake.BitmapPixels(capi.Bitmap(b.Handle()))
	copy(data, []byte{1, 2, 3, 4})

	b.SwapRedBlue()
	if want := []byte{3, 2, 1, 4}; !bytes.Equal(data, want) {
		t.Errorf("after SwapRedBlue = %v, want %v", data, want)
	}
	b.Erase()
	if want := []byte{0, 0, 0, 0}; !bytes.Equal(data, want) {
		t.Errorf("after Erase = %v, want %v", data, want)
	}
}

func TestSurfaceLockPixels(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	s, err := v.Surface()
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	if s.Width() != 800 || s.Height() != 600 || s.RowBytes() != 3200 {
		t.Errorf("surface = %dx%d row %d", s.Width(), s.Height(), s.RowBytes())
	}
	bm, err := s.Bitmap()
	if err != nil {
		t.Fatalf("Bitmap() error = %v", err)
	}
	px, err := s.LockPixels()
	if err != nil {
		t.Fatalf("LockPixels() error = %v", err)
	}
	if uint64(len(px.Data)) != s.Size() {
		t.Errorf("len(Data) = %d, want %d", len(px.Data), s.Size())
	}
	if !fake.BitmapLocked(capi.Bitmap(bm.Handle())) {
		t.Errorf("surface bitmap not locked")
	}
	px.Unlock()
	if fake.BitmapLocked(capi.Bitmap(bm.Handle())) {
		t.Errorf("surface bitmap still locked")
	}

	v.Resize(100, 50)
	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("surface after view Resize = %dx%d, want 100x50", s.Width(), s.Height())
	}
}
