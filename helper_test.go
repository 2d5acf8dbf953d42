// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"testing"

	"github.com/YindSoft/ultralight-go/internal/fakeapi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// setup installs a fake native library with opts and restores the package
// state when the test ends. Ownership violations recorded by the fake fail
// the test.
func setup(t *testing.T, opts Options) *fakeapi.Lib {
	t.Helper()
	fake := fakeapi.New()
	stateMu.Lock()
	err := initLocked(fake, opts)
	stateMu.Unlock()
	if err != nil {
		t.Fatalf("initLocked() error = %v", err)
	}
	t.Cleanup(func() {
		stateMu.Lock()
		api = nil
		initialized = false
		hostClass = 0
		platformLogger, platformFS, platformClipboard = nil, nil, nil
		platformSurfaces = nil
		stateMu.Unlock()
		callbacks = newRegistry()
		surfaces = newSurfaceTable()
		for _, v := range fake.Violations() {
			t.Errorf("ownership violation: %s", v)
		}
	})
	return fake
}

// observe routes the package logger to an in-memory core until the test ends.
func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(nil, nil)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

func newTestWindow(t *testing.T, app *App, flags WindowFlags) *Window {
	t.Helper()
	mon, err := app.MainMonitor()
	if err != nil {
		t.Fatalf("MainMonitor() error = %v", err)
	}
	w, err := NewWindow(mon, 1024, 768, false, flags)
	if err != nil {
		t.Fatalf("NewWindow() error = %v", err)
	}
	t.Cleanup(w.Close)
	return w
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(nil)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

// newTestView creates an owned view. It is closed before its renderer.
func newTestView(t *testing.T) *View {
	t.Helper()
	r := newTestRenderer(t)
	v, err := r.NewView(800, 600, nil, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	t.Cleanup(v.Close)
	return v
}
