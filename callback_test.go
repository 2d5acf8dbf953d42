// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"testing"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistryBindReplacesSlot(t *testing.T) {
	r := newRegistry()
	k1 := r.bind(1, "resize", "first")
	k2 := r.bind(1, "resize", "second")
	if k1 == k2 {
		t.Fatalf("bind() reused key %d", k1)
	}
	if _, ok := r.lookup(k1); ok {
		t.Errorf("lookup(old key) found an entry after rebind")
	}
	if v, ok := r.lookup(k2); !ok || v != "second" {
		t.Errorf("lookup(new key) = %v, %v, want second, true", v, ok)
	}
	if got := r.len(); got != 1 {
		t.Errorf("len() = %d, want 1", got)
	}
}

func TestRegistryReleaseOwner(t *testing.T) {
	r := newRegistry()
	r.bind(1, "a", 1)
	r.bind(1, "b", 2)
	keep := r.bind(2, "a", 3)
	r.releaseOwner(1)
	if got := r.len(); got != 1 {
		t.Errorf("len() = %d, want 1", got)
	}
	if _, ok := r.lookup(keep); !ok {
		t.Errorf("releaseOwner(1) dropped an entry of owner 2")
	}
	r.unbind(2, "a")
	r.unbind(2, "a")
	if got := r.len(); got != 0 {
		t.Errorf("len() after unbind = %d, want 0", got)
	}
}

func TestRegistryRemoveKeepsNewerSlot(t *testing.T) {
	r := newRegistry()
	old := r.bind(7, "js:f", "old")
	cur := r.bind(7, "js:f", "new")
	r.remove(old)
	if _, ok := r.lookup(cur); !ok {
		t.Fatalf("remove(old) dropped the current entry")
	}
	r.remove(cur)
	if got := r.len(); got != 0 {
		t.Errorf("len() = %d, want 0", got)
	}
	// The slot is free again.
	r.bind(7, "js:f", "again")
	if got := r.len(); got != 1 {
		t.Errorf("len() after rebind = %d, want 1", got)
	}
}

func TestStaleCallbackIsNoop(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)
	called := false
	key := callbacks.bind(42, "update", func() { called = true })
	callbacks.unbind(42, "update")
	dispatchUpdate(key)
	if called {
		t.Errorf("stale callback was invoked")
	}
	if got := logs.FilterMessage("stale callback ignored").Len(); got != 1 {
		t.Errorf("stale callback log entries = %d, want 1", got)
	}
}

func TestWindowResizeCallback(t *testing.T) {
	fake := setup(t, Options{})
	w := newTestWindow(t, newTestApp(t), WindowTitled|WindowResizable)

	var calls int
	var gotW, gotH uint32
	w.OnResize(func(width, height uint32) {
		calls++
		gotW, gotH = width, height
	})
	fake.FireResize(capi.Window(w.Handle()), 800, 600)
	if calls != 1 {
		t.Fatalf("resize calls = %d, want 1", calls)
	}
	if gotW != 800 || gotH != 600 {
		t.Errorf("resize = %dx%d, want 800x600", gotW, gotH)
	}
	if w.Width() != 800 {
		t.Errorf("Width() = %d, want 800", w.Width())
	}
}

func TestWindowCloseCallback(t *testing.T) {
	setup(t, Options{})
	app := newTestApp(t)
	w := newTestWindow(t, app, WindowTitled)
	app.SetWindow(w)
	if app.Window() != w {
		t.Errorf("Window() did not return the window set")
	}
	closed := 0
	w.OnClose(func() { closed++ })
	w.RequestClose()
	if closed != 1 {
		t.Errorf("close calls = %d, want 1", closed)
	}
	w.OnClose(nil)
	w.RequestClose()
	if closed != 1 {
		t.Errorf("close calls after clearing = %d, want 1", closed)
	}
}

func TestAppUpdateCallback(t *testing.T) {
	setup(t, Options{})
	app := newTestApp(t)
	updates := 0
	app.OnUpdate(func() { updates++ })
	app.Run()
	if updates != 1 {
		t.Errorf("update calls = %d, want 1", updates)
	}
	if app.IsRunning() {
		t.Errorf("IsRunning() = true after Run returned")
	}
}

func TestDOMReadyCallback(t *testing.T) {
	setup(t, Options{})
	v := newTestView(t)

	type frame struct {
		id   uint64
		main bool
		url  string
	}
	var got []frame
	v.OnDOMReady(func(caller *View, frameID uint64, isMainFrame bool, url string) {
		if caller.Handle() != v.Handle() {
			t.Errorf("caller handle = %#x, want %#x", caller.Handle(), v.Handle())
		}
		if caller.Owned() {
			t.Errorf("callback view is owned, want borrowed")
		}
		got = append(got, frame{frameID, isMainFrame, url})
	})
	if err := v.LoadURL("https://example.com/"); err != nil {
		t.Fatalf("LoadURL() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("dom ready calls = %d, want 1", len(got))
	}
	want := frame{0, true, "https://example.com/"}
	if got[0] != want {
		t.Errorf("dom ready = %+v, want %+v", got[0], want)
	}
}

func TestLoadSequence(t *testing.T) {
	setup(t, Options{})
	v := newTestView(t)
	var events []string
	record := func(name string) FrameHandler {
		return func(*View, uint64, bool, string) { events = append(events, name) }
	}
	v.OnBeginLoading(record("begin"))
	v.OnWindowObjectReady(record("window"))
	v.OnDOMReady(record("dom"))
	v.OnFinishLoading(record("finish"))
	v.OnChangeURL(func(_ *View, url string) { events = append(events, "url:"+url) })
	v.OnUpdateHistory(func(*View) { events = append(events, "history") })

	if err := v.LoadURL("file:///index.html"); err != nil {
		t.Fatalf("LoadURL() error = %v", err)
	}
	want := []string{"begin", "url:file:///index.html", "window", "dom", "finish", "history"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestReRegistrationReplaces(t *testing.T) {
	setup(t, Options{})
	v := newTestView(t)
	var first, second int
	v.OnDOMReady(func(*View, uint64, bool, string) { first++ })
	before := callbacks.len()
	v.OnDOMReady(func(*View, uint64, bool, string) { second++ })
	if got := callbacks.len(); got != before {
		t.Errorf("registry len = %d after re-registration, want %d", got, before)
	}
	if err := v.LoadHTML("<p>hi</p>"); err != nil {
		t.Fatalf("LoadHTML() error = %v", err)
	}
	if first != 0 || second != 1 {
		t.Errorf("calls first=%d second=%d, want 0 1", first, second)
	}

	v.OnDOMReady(nil)
	if got := callbacks.len(); got != before-1 {
		t.Errorf("registry len after clearing = %d, want %d", got, before-1)
	}
	if err := v.LoadHTML("<p>again</p>"); err != nil {
		t.Fatalf("LoadHTML() error = %v", err)
	}
	if second != 1 {
		t.Errorf("cleared callback fired, calls = %d", second)
	}
}

func TestCloseReleasesCallbacks(t *testing.T) {
	setup(t, Options{})
	r := newTestRenderer(t)
	v, err := r.NewView(100, 100, nil, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	v.OnDOMReady(func(*View, uint64, bool, string) {})
	v.OnChangeTitle(func(*View, string) {})
	v.OnChangeCursor(func(*View, Cursor) {})
	v.OnConsoleMessage(func(*View, ConsoleMessage) {})
	if got := callbacks.len(); got != 4 {
		t.Fatalf("registry len = %d, want 4", got)
	}
	v.Close()
	if got := callbacks.len(); got != 0 {
		t.Errorf("registry len after Close = %d, want 0", got)
	}
}

func TestTextCallbacks(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	vh := capi.View(v.Handle())

	got := map[string]string{}
	v.OnChangeTitle(func(_ *View, s string) { got["title"] = s })
	v.OnChangeTooltip(func(_ *View, s string) { got["tooltip"] = s })
	fake.FireString(vh, capi.ChangeTitle, "Héllo 世界")
	fake.FireString(vh, capi.ChangeTooltip, "")
	if got["title"] != "Héllo 世界" {
		t.Errorf("title = %q, want %q", got["title"], "Héllo 世界")
	}
	if s, ok := got["tooltip"]; !ok || s != "" {
		t.Errorf("tooltip = %q, %v, want empty, true", s, ok)
	}
	if title, err := v.Title(); err != nil || title != "Héllo 世界" {
		t.Errorf("Title() = %q, %v", title, err)
	}
}

func TestCallbackRepairsInvalidUTF8(t *testing.T) {
	fake := setup(t, Options{})
	logs := observe(t, zapcore.WarnLevel)
	v := newTestView(t)

	var got string
	v.OnChangeTitle(func(_ *View, s string) { got = s })
	fake.FireString(capi.View(v.Handle()), capi.ChangeTitle, "ab\xffc")
	if got != "ab\uFFFDc" {
		t.Errorf("title = %q, want %q", got, "ab\uFFFDc")
	}
	entries := logs.FilterMessage("repaired invalid UTF-8 from native string").All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(entries))
	}
	if off := entries[0].ContextMap()["offset"]; off != int64(2) {
		t.Errorf("logged offset = %v, want 2", off)
	}
	// The checked accessor refuses the same text.
	if _, err := v.Title(); err == nil {
		t.Errorf("Title() error = nil, want EncodingError")
	}
}

func TestCursorAndHistoryCallbacks(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	vh := capi.View(v.Handle())

	var cursor Cursor = -1
	v.OnChangeCursor(func(_ *View, c Cursor) { cursor = c })
	fake.FireCursor(vh, int32(CursorIBeam))
	if cursor != CursorIBeam {
		t.Errorf("cursor = %d, want %d", cursor, CursorIBeam)
	}

	histories := 0
	v.OnUpdateHistory(func(*View) { histories++ })
	fake.FireUpdateHistory(vh)
	if histories != 1 {
		t.Errorf("history calls = %d, want 1", histories)
	}
}

func TestFailLoadingCallback(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	var got *LoadError
	v.OnFailLoading(func(_ *View, err *LoadError) { got = err })
	fake.FireFailLoading(capi.View(v.Handle()), 3, false, "https://bad.example/", "Not found", "http", 404)
	if got == nil {
		t.Fatal("fail loading callback not called")
	}
	want := LoadError{FrameID: 3, URL: "https://bad.example/", Description: "Not found", Domain: "http", Code: 404}
	if *got != want {
		t.Errorf("LoadError = %+v, want %+v", *got, want)
	}
	if got.Error() == "" {
		t.Errorf("Error() is empty")
	}
}

func TestCreateChildViewCallback(t *testing.T) {
	fake := setup(t, Options{})
	r := newTestRenderer(t)
	v, err := r.NewView(400, 300, nil, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	defer v.Close()
	child, err := r.NewView(200, 100, nil, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	defer child.Close()

	var req ChildViewRequest
	v.OnCreateChildView(func(_ *View, rq ChildViewRequest) *View {
		req = rq
		if rq.IsPopup {
			return child
		}
		return nil
	})
	rect := capi.IntRect{Left: 10, Top: 20, Right: 210, Bottom: 120}
	got := fake.FireCreateChildView(capi.View(v.Handle()), "https://a/", "https://b/", true, rect)
	if uintptr(got) != child.Handle() {
		t.Errorf("returned view = %#x, want %#x", got, child.Handle())
	}
	if req.OpenerURL != "https://a/" || req.TargetURL != "https://b/" || !req.IsPopup {
		t.Errorf("request = %+v", req)
	}
	if req.PopupRect.Width() != 200 || req.PopupRect.Height() != 100 {
		t.Errorf("popup rect size = %dx%d, want 200x100", req.PopupRect.Width(), req.PopupRect.Height())
	}
	if got := fake.FireCreateChildView(capi.View(v.Handle()), "", "", false, rect); got != 0 {
		t.Errorf("declined request returned %#x, want 0", got)
	}
	if !fake.Alive(child.Handle()) {
		t.Errorf("child view destroyed by the callback")
	}
}

func TestCreateChildViewClosedView(t *testing.T) {
	fake := setup(t, Options{})
	logs := observe(t, zapcore.WarnLevel)
	r := newTestRenderer(t)
	v, err := r.NewView(400, 300, nil, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	defer v.Close()
	child, err := r.NewView(200, 100, nil, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	child.Close()

	v.OnCreateChildView(func(*View, ChildViewRequest) *View { return child })
	if got := fake.FireCreateChildView(capi.View(v.Handle()), "", "https://b/", true, capi.IntRect{}); got != 0 {
		t.Errorf("closed child returned %#x, want 0", got)
	}
	if n := logs.FilterMessage("create child view returned a closed view").Len(); n != 1 {
		t.Errorf("warnings logged = %d, want 1", n)
	}
}

func TestForwardConsole(t *testing.T) {
	fake := setup(t, Options{})
	v := newTestView(t)
	core, logs := observer.New(zapcore.DebugLevel)
	v.ForwardConsole(zap.New(core))

	vh := capi.View(v.Handle())
	fake.FireConsoleMessage(vh, uint32(MessageSourceJS), uint32(MessageLevelError), "boom", 12, 4, "app.js")
	fake.FireConsoleMessage(vh, uint32(MessageSourceNetwork), uint32(MessageLevelWarning), "slow", 0, 0, "")
	fake.FireConsoleMessage(vh, uint32(MessageSourceConsoleAPI), uint32(MessageLevelLog), "hello", 1, 1, "")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("log entries = %d, want 3", len(entries))
	}
	tests := []struct {
		level   zapcore.Level
		logger  string
		message string
	}{
		{zapcore.ErrorLevel, "js", "boom"},
		{zapcore.WarnLevel, "network", "slow"},
		{zapcore.DebugLevel, "console-api", "hello"},
	}
	for i, tt := range tests {
		e := entries[i]
		if e.Level != tt.level || e.LoggerName != tt.logger || e.Message != tt.message {
			t.Errorf("entry %d = %s %s %q, want %s %s %q", i, e.Level, e.LoggerName, e.Message, tt.level, tt.logger, tt.message)
		}
	}
	if line := entries[0].ContextMap()["line"]; line != uint32(12) {
		t.Errorf("line field = %v, want 12", line)
	}
}
