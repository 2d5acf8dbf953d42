// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"reflect"
	"testing"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"github.com/YindSoft/ultralight-go/internal/fakeapi"
)

func TestRendererUpdateRender(t *testing.T) {
	fake := setup(t, Options{})
	r := newTestRenderer(t)
	for i := 0; i < 3; i++ {
		r.Update()
	}
	r.RefreshDisplay(0)
	r.Render()
	updates, renders := fake.RendererStats(capi.Renderer(r.Handle()))
	if updates != 3 || renders != 1 {
		t.Errorf("stats = %d updates, %d renders, want 3, 1", updates, renders)
	}
	if live := fake.Live(fakeapi.KindConfig); live != 0 {
		t.Errorf("default config leaked: %d live", live)
	}
}

func TestSessions(t *testing.T) {
	setup(t, Options{})
	r := newTestRenderer(t)

	def, err := r.DefaultSession()
	if err != nil {
		t.Fatalf("DefaultSession() error = %v", err)
	}
	if !def.IsPersistent() {
		t.Errorf("default session IsPersistent() = false")
	}

	tests := []struct {
		persistent bool
		name       string
		wantPath   string
	}{
		{false, "private", ""},
		{true, "profile", "/tmp/ultralight/profile"},
	}
	ids := map[uint64]bool{def.ID(): true}
	for _, tt := range tests {
		s, err := r.NewSession(tt.persistent, tt.name)
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		if got, err := s.Name(); err != nil || got != tt.name {
			t.Errorf("Name() = %q, %v, want %q", got, err, tt.name)
		}
		if s.IsPersistent() != tt.persistent {
			t.Errorf("IsPersistent() = %v, want %v", s.IsPersistent(), tt.persistent)
		}
		if got, err := s.DiskPath(); err != nil || got != tt.wantPath {
			t.Errorf("DiskPath() = %q, %v, want %q", got, err, tt.wantPath)
		}
		if ids[s.ID()] {
			t.Errorf("session ID %d reused", s.ID())
		}
		ids[s.ID()] = true
		s.Close()
	}
}

func TestViewWithSession(t *testing.T) {
	setup(t, Options{})
	r := newTestRenderer(t)
	s, err := r.NewSession(false, "isolated")
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	defer s.Close()
	v, err := r.NewView(64, 32, nil, s)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	defer v.Close()
	if v.Width() != 64 || v.Height() != 32 {
		t.Errorf("view = %dx%d, want 64x32", v.Width(), v.Height())
	}
}

func TestViewNavigation(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	vh := capi.View(v.Handle())

	if err := v.LoadHTML("<p>start</p>"); err != nil {
		t.Fatalf("LoadHTML() error = %v", err)
	}
	if got := fake.ViewHTML(vh); got != "<p>start</p>" {
		t.Errorf("ViewHTML() = %q", got)
	}
	for _, u := range []string{"https://a.test/", "https://b.test/"} {
		if err := v.LoadURL(u); err != nil {
			t.Fatalf("LoadURL() error = %v", err)
		}
	}
	if got, _ := v.URL(); got != "https://b.test/" {
		t.Errorf("URL() = %q, want https://b.test/", got)
	}
	if v.IsLoading() {
		t.Errorf("IsLoading() = true after a completed load")
	}
	if !v.CanGoBack() || v.CanGoForward() {
		t.Errorf("CanGoBack=%v CanGoForward=%v, want true false", v.CanGoBack(), v.CanGoForward())
	}

	v.GoBack()
	if got, _ := v.URL(); got != "https://a.test/" {
		t.Errorf("after GoBack URL() = %q", got)
	}
	if !v.CanGoForward() {
		t.Errorf("CanGoForward() = false after GoBack")
	}
	v.GoForward()
	v.GoToHistoryOffset(-2)
	if got, _ := v.URL(); got != "" {
		t.Errorf("after GoToHistoryOffset(-2) URL() = %q, want the HTML page", got)
	}

	v.Reload()
	v.Stop()
	if fake.ViewReloads(vh) != 1 || fake.ViewStops(vh) != 1 {
		t.Errorf("reloads=%d stops=%d, want 1 1", fake.ViewReloads(vh), fake.ViewStops(vh))
	}
}

func TestViewState(t *testing.T) {
	setup(t, Options{})
	v := newTestView(t)

	v.Focus()
	if !v.HasFocus() {
		t.Errorf("HasFocus() = false after Focus")
	}
	v.Unfocus()
	if v.HasFocus() {
		t.Errorf("HasFocus() = true after Unfocus")
	}
	v.SetNeedsPaint(true)
	if !v.NeedsPaint() {
		t.Errorf("NeedsPaint() = false")
	}
	v.SetDeviceScale(1.5)
	if got := v.DeviceScale(); got != 1.5 {
		t.Errorf("DeviceScale() = %v, want 1.5", got)
	}
	v.Resize(1024, 512)
	if v.Width() != 1024 || v.Height() != 512 {
		t.Errorf("after Resize = %dx%d", v.Width(), v.Height())
	}
}

func TestViewInputEvents(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)

	if err := v.FireKeyEvent(KeyEvent{
		Type:           RawKeyDown,
		Modifiers:      ModCtrl | ModShift,
		VirtualKeyCode: 0x41,
		Text:           "A",
		UnmodifiedText: "a",
	}); err != nil {
		t.Fatalf("FireKeyEvent() error = %v", err)
	}
	if err := v.FireMouseEvent(MouseDown, 10, 20, MouseButtonLeft); err != nil {
		t.Fatalf("FireMouseEvent() error = %v", err)
	}
	if err := v.FireScrollEvent(ScrollByPixel, 0, -120); err != nil {
		t.Fatalf("FireScrollEvent() error = %v", err)
	}

	want := []fakeapi.Event{
		{Kind: "key", Type: int32(RawKeyDown), VK: 0x41, Mods: uint32(ModCtrl | ModShift), Text: "A"},
		{Kind: "mouse", Type: int32(MouseDown), X: 10, Y: 20, Button: int32(MouseButtonLeft)},
		{Kind: "scroll", Type: int32(ScrollByPixel), X: 0, Y: -120},
	}
	if got := fake.ViewEvents(capi.View(v.Handle())); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %+v, want %+v", got, want)
	}
	for _, k := range []fakeapi.Kind{fakeapi.KindKeyEvent, fakeapi.KindMouseEvent, fakeapi.KindScrollEvent, fakeapi.KindString} {
		if live := fake.Live(k); live != 0 {
			t.Errorf("%s leaked: %d live", k, live)
		}
	}
}

func TestInputEventCreateFailure(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	fake.FailCreate[fakeapi.KindMouseEvent] = true
	if err := v.FireMouseEvent(MouseMoved, 1, 1, MouseButtonNone); err == nil {
		t.Errorf("FireMouseEvent() error = nil, want create failure")
	}
	fake.FailCreate[fakeapi.KindKeyEvent] = true
	if err := v.FireKeyEvent(KeyEvent{Type: KeyDown}); err == nil {
		t.Errorf("FireKeyEvent() error = nil, want create failure")
	}
	if live := fake.Live(fakeapi.KindString); live != 0 {
		t.Errorf("strings leaked after failed key event: %d", live)
	}
	if got := len(fake.ViewEvents(capi.View(v.Handle()))); got != 0 {
		t.Errorf("events delivered = %d, want 0", got)
	}
}
