// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// App is the windowed application runner. It owns the main monitor and a
// Renderer, and drives them from Run.
type App struct {
	ref    ref[capi.App]
	window *Window
}

// NewApp creates an App. Nil settings or config use the library defaults.
// Only one App may exist per process.
func NewApp(settings *Settings, config *Config) (*App, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		if settings, err = NewSettings(); err != nil {
			return nil, err
		}
		defer settings.Close()
	}
	if config == nil {
		if config, err = NewConfig(); err != nil {
			return nil, err
		}
		defer config.Close()
	}
	r, err := own("app", a.CreateApp(settings.ref.get(), config.ref.get()), a.DestroyApp)
	if err != nil {
		return nil, err
	}
	return &App{ref: r}, nil
}

func (app *App) Handle() uintptr { return uintptr(app.ref.get()) }
func (app *App) Owned() bool     { return app.ref.owning() }

// Close destroys the App and drops its update callback. The Window set with
// SetWindow is not closed.
func (app *App) Close() {
	h := app.ref.peek()
	if app.ref.release() {
		callbacks.releaseOwner(uintptr(h))
	}
}

// OnUpdate sets the function called once per run loop iteration, before
// rendering. Nil clears it.
func (app *App) OnUpdate(fn func()) {
	h := app.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "update")
		api.AppSetUpdateCallback(h, nil, 0)
		return
	}
	api.AppSetUpdateCallback(h, dispatchUpdate, callbacks.bind(uintptr(h), "update", fn))
}

// SetWindow records the App's main window.
func (app *App) SetWindow(w *Window) { app.window = w }

// Window returns the window passed to SetWindow, or nil.
func (app *App) Window() *Window { return app.window }

func (app *App) IsRunning() bool { return api.AppIsRunning(app.ref.get()) }

// MainMonitor returns the primary monitor. It is owned by the App.
func (app *App) MainMonitor() (*Monitor, error) {
	r, err := borrow("monitor", api.AppGetMainMonitor(app.ref.get()))
	if err != nil {
		return nil, err
	}
	return &Monitor{ref: r}, nil
}

// Renderer returns the App's renderer. It is owned by the App.
func (app *App) Renderer() (*Renderer, error) {
	r, err := borrow("renderer", api.AppGetRenderer(app.ref.get()))
	if err != nil {
		return nil, err
	}
	return &Renderer{ref: r}, nil
}

// Run runs the main loop until Quit is called or every window is closed.
func (app *App) Run() { api.AppRun(app.ref.get()) }

// Quit makes Run return.
func (app *App) Quit() { api.AppQuit(app.ref.get()) }

// Monitor is a display. Monitors are always owned by the App.
type Monitor struct {
	ref ref[capi.Monitor]
}

func (m *Monitor) Handle() uintptr { return uintptr(m.ref.get()) }
func (m *Monitor) Owned() bool     { return m.ref.owning() }

// Close is a no-op; monitors are never destroyed from Go.
func (m *Monitor) Close() { m.ref.release() }

// Scale returns the DPI scale, where 1.0 is 96 DPI.
func (m *Monitor) Scale() float64 { return api.MonitorGetScale(m.ref.get()) }

func (m *Monitor) Width() uint32  { return api.MonitorGetWidth(m.ref.get()) }
func (m *Monitor) Height() uint32 { return api.MonitorGetHeight(m.ref.get()) }
