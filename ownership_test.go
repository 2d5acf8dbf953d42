// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"errors"
	"testing"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"github.com/YindSoft/ultralight-go/internal/fakeapi"
)

type resource interface {
	Handle() uintptr
	Owned() bool
	Close()
}

func TestOwnedCloseDestroysOnce(t *testing.T) {
	tests := []struct {
		kind fakeapi.Kind
		make func(t *testing.T) resource
	}{
		{fakeapi.KindConfig, func(*testing.T) resource { c, _ := NewConfig(); return c }},
		{fakeapi.KindViewConfig, func(*testing.T) resource { c, _ := NewViewConfig(); return c }},
		{fakeapi.KindSettings, func(*testing.T) resource { s, _ := NewSettings(); return s }},
		{fakeapi.KindString, func(*testing.T) resource { s, _ := NewString("hello"); return s }},
		{fakeapi.KindBitmap, func(*testing.T) resource { b, _ := NewBitmap(4, 4, BitmapBGRA8); return b }},
		{fakeapi.KindApp, func(*testing.T) resource { a, _ := NewApp(nil, nil); return a }},
		{fakeapi.KindRenderer, func(*testing.T) resource { r, _ := NewRenderer(nil); return r }},
		{fakeapi.KindWindow, func(t *testing.T) resource {
			return newTestWindowOwned(t, newTestApp(t))
		}},
		{fakeapi.KindOverlay, func(t *testing.T) resource {
			w := newTestWindow(t, newTestApp(t), WindowTitled)
			o, _ := NewOverlay(w, 100, 100, 0, 0)
			return o
		}},
		{fakeapi.KindSession, func(t *testing.T) resource {
			s, _ := newTestRenderer(t).NewSession(false, "private")
			return s
		}},
		{fakeapi.KindView, func(t *testing.T) resource {
			v, _ := newTestRenderer(t).NewView(100, 100, nil, nil)
			return v
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			fake := setup(t, Options{})
			res := tt.make(t)
			if res == nil {
				t.Fatalf("create %s failed", tt.kind)
			}
			if !res.Owned() {
				t.Fatalf("Owned() = false, want true")
			}
			h := res.Handle()
			res.Close()
			res.Close()
			if got := fake.DestroyCalls(h); got != 1 {
				t.Errorf("destroy calls = %d, want 1", got)
			}
			if fake.Alive(h) {
				t.Errorf("handle %#x still alive after Close", h)
			}
		})
	}
}

// newTestWindowOwned creates a window the test closes itself.
func newTestWindowOwned(t *testing.T, app *App) *Window {
	t.Helper()
	mon, err := app.MainMonitor()
	if err != nil {
		t.Fatalf("MainMonitor() error = %v", err)
	}
	w, err := NewWindow(mon, 640, 480, false, WindowTitled)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	return w
}

func TestBorrowedCloseDoesNotDestroy(t *testing.T) {
	fake := setup(t, Options{})
	app := newTestApp(t)
	w := newTestWindow(t, app, WindowTitled)
	overlay, err := NewOverlay(w, 200, 100, 0, 0)
	if err != nil {
		t.Fatalf("NewOverlay() error = %v", err)
	}
	defer overlay.Close()

	var borrowed []resource
	mon, err := app.MainMonitor()
	if err != nil {
		t.Fatalf("MainMonitor() error = %v", err)
	}
	borrowed = append(borrowed, mon)
	renderer, err := app.Renderer()
	if err != nil {
		t.Fatalf("Renderer() error = %v", err)
	}
	borrowed = append(borrowed, renderer)
	session, err := renderer.DefaultSession()
	if err != nil {
		t.Fatalf("DefaultSession() error = %v", err)
	}
	borrowed = append(borrowed, session)
	view, err := overlay.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	borrowed = append(borrowed, view)
	surface, err := view.Surface()
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	borrowed = append(borrowed, surface)
	bitmap, err := surface.Bitmap()
	if err != nil {
		t.Fatalf("Bitmap() error = %v", err)
	}
	borrowed = append(borrowed, bitmap)

	for _, b := range borrowed {
		if b.Owned() {
			t.Errorf("%T.Owned() = true, want false", b)
		}
		h := b.Handle()
		b.Close()
		b.Close()
		if got := fake.DestroyCalls(h); got != 0 {
			t.Errorf("%T: destroy calls = %d, want 0", b, got)
		}
		if !fake.Alive(h) {
			t.Errorf("%T: handle %#x destroyed by a borrowed Close", b, h)
		}
	}
	// Borrowed wrappers stay usable while their owner lives.
	if got := view.Width(); got != 200 {
		t.Errorf("view.Width() = %d, want 200", got)
	}
}

func TestCloneIsDistinctOwnedHandle(t *testing.T) {
	fake := setup(t, Options{})

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	defer cfg.Close()
	if err := cfg.SetCachePath("/tmp/cache"); err != nil {
		t.Fatalf("SetCachePath() error = %v", err)
	}
	cfg.SetFontGamma(1.8)
	cfg.SetFontGamma(2.2)
	cfg.SetMemoryCacheSize(64 << 20)
	cfg.SetForceRepaint(true)

	clone, err := cfg.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if clone.Handle() == cfg.Handle() {
		t.Fatalf("Clone() returned the same handle %#x", cfg.Handle())
	}
	if !clone.Owned() {
		t.Errorf("clone.Owned() = false, want true")
	}
	ch := capi.Config(clone.Handle())
	checks := []struct {
		key  capi.ConfigKey
		want any
	}{
		{capi.ConfigCachePath, "/tmp/cache"},
		{capi.ConfigFontGamma, 2.2},
		{capi.ConfigMemoryCacheSize, uint32(64 << 20)},
		{capi.ConfigForceRepaint, true},
	}
	for _, c := range checks {
		if got := fake.ConfigValue(ch, c.key); got != c.want {
			t.Errorf("clone value %d = %v, want %v", c.key, got, c.want)
		}
	}
	clone.Close()
	if !fake.Alive(cfg.Handle()) {
		t.Errorf("closing the clone destroyed the original")
	}
	if got := fake.Destroyed(fakeapi.KindConfig); got != 1 {
		t.Errorf("configs destroyed = %d, want 1", got)
	}
}

func TestCloneOfBorrowedIsOwned(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	surface, err := v.Surface()
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	bm, err := surface.Bitmap()
	if err != nil {
		t.Fatalf("Bitmap() error = %v", err)
	}
	clone, err := bm.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if !clone.Owned() || bm.Owned() {
		t.Errorf("Owned() clone=%v original=%v, want true false", clone.Owned(), bm.Owned())
	}
	if clone.Width() != 800 || clone.Height() != 600 {
		t.Errorf("clone size = %dx%d, want 800x600", clone.Width(), clone.Height())
	}
	h := clone.Handle()
	clone.Close()
	if got := fake.DestroyCalls(h); got != 1 {
		t.Errorf("clone destroy calls = %d, want 1", got)
	}
}

func TestCreateFailureReportsHandleError(t *testing.T) {
	fake := setup(t, Options{})
	r := newTestRenderer(t)

	fake.FailCreate[fakeapi.KindView] = true
	v, err := r.NewView(10, 10, nil, nil)
	if v != nil {
		t.Errorf("NewView() = %v, want nil", v)
	}
	if !errors.Is(err, ErrHandleUnavailable) {
		t.Fatalf("NewView() error = %v, want ErrHandleUnavailable", err)
	}
	var he *HandleError
	if !errors.As(err, &he) || he.Kind != "view" || he.Op != "create" {
		t.Errorf("NewView() error = %#v, want view create HandleError", err)
	}

	fake.FailCreate[fakeapi.KindString] = true
	if _, err := NewString("x"); !errors.Is(err, ErrHandleUnavailable) {
		t.Errorf("NewString() error = %v, want ErrHandleUnavailable", err)
	}
}

func TestNotInitialized(t *testing.T) {
	if _, err := NewConfig(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NewConfig() error = %v, want ErrNotInitialized", err)
	}
	if _, err := NewRenderer(nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NewRenderer() error = %v, want ErrNotInitialized", err)
	}
}

func TestUseAfterClosePanics(t *testing.T) {
	setup(t, Options{})
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	cfg.Close()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("SetForceRepaint after Close did not panic")
		}
		if msg, _ := r.(string); msg != "ultralight: config used after Close" {
			t.Errorf("panic = %v", r)
		}
	}()
	cfg.SetForceRepaint(true)
}

func TestOverlayCloseDestroysItsView(t *testing.T) {
	fake := setup(t, Options{})
	w := newTestWindow(t, newTestApp(t), WindowTitled)
	overlay, err := NewOverlay(w, 300, 200, 10, 20)
	if err != nil {
		t.Fatalf("NewOverlay() error = %v", err)
	}
	view, err := overlay.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	view.OnDOMReady(func(*View, uint64, bool, string) {})
	view.OnChangeTitle(func(*View, string) {})
	vh := view.Handle()
	if got := callbacks.len(); got != 2 {
		t.Fatalf("registry len = %d, want 2", got)
	}
	overlay.Close()
	if fake.Alive(vh) {
		t.Errorf("overlay view still alive after overlay Close")
	}
	if got := fake.DestroyCalls(vh); got != 0 {
		t.Errorf("view destroy calls = %d, want 0 (owned by the overlay)", got)
	}
	if got := callbacks.len(); got != 0 {
		t.Errorf("registry len after Close = %d, want 0", got)
	}
}

func TestOverlayWithViewKeepsView(t *testing.T) {
	fake := setup(t, Options{})
	w := newTestWindow(t, newTestApp(t), WindowTitled)
	v := newTestView(t)
	overlay, err := NewOverlayWithView(w, v, 5, 5)
	if err != nil {
		t.Fatalf("NewOverlayWithView() error = %v", err)
	}
	if got := overlay.Width(); got != 800 {
		t.Errorf("overlay.Width() = %d, want 800", got)
	}
	overlay.Close()
	if !fake.Alive(v.Handle()) {
		t.Errorf("view destroyed with overlay")
	}
}

func TestOverlayCloseTwice(t *testing.T) {
	fake := setup(t, Options{})
	w := newTestWindow(t, newTestApp(t), WindowTitled)
	overlay, err := NewOverlay(w, 100, 100, 0, 0)
	if err != nil {
		t.Fatalf("NewOverlay() error = %v", err)
	}
	view, err := overlay.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	view.OnChangeURL(func(*View, string) {})
	h := overlay.Handle()

	overlay.Close()
	overlay.Close()
	if got := fake.DestroyCalls(h); got != 1 {
		t.Errorf("overlay destroy calls = %d, want 1", got)
	}
	if got := callbacks.len(); got != 0 {
		t.Errorf("registry len = %d, want 0", got)
	}
}

// A borrowed view must not be used once its overlay is closed. The wrapper
// itself stays inert: Close is still a no-op and Handle reports the old value
// without reaching the native side. Any other call is undefined.
func TestBorrowedViewOutlivingOverlay(t *testing.T) {
	fake := setup(t, Options{})
	w := newTestWindow(t, newTestApp(t), WindowTitled)
	overlay, err := NewOverlay(w, 100, 100, 0, 0)
	if err != nil {
		t.Fatalf("NewOverlay() error = %v", err)
	}
	view, err := overlay.View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	vh := view.Handle()
	overlay.Close()

	if fake.Alive(vh) {
		t.Fatalf("overlay view still alive after overlay Close")
	}
	if view.Owned() {
		t.Errorf("Owned() = true, want false")
	}
	view.Close()
	if got := view.Handle(); got != vh {
		t.Errorf("Handle() = %#x, want %#x", got, vh)
	}
	if got := fake.DestroyCalls(vh); got != 0 {
		t.Errorf("view destroy calls = %d, want 0", got)
	}
}
