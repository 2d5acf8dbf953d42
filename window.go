// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Window is an OS window that hosts Overlays.
type Window struct {
	ref ref[capi.Window]
}

// NewWindow creates a window on monitor. width and height are in screen
// coordinates.
func NewWindow(monitor *Monitor, width, height uint32, fullscreen bool, flags WindowFlags) (*Window, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	h := a.CreateWindow(monitor.ref.get(), width, height, fullscreen, uint32(flags))
	r, err := own("window", h, a.DestroyWindow)
	if err != nil {
		return nil, err
	}
	return &Window{ref: r}, nil
}

func (w *Window) Handle() uintptr { return uintptr(w.ref.get()) }
func (w *Window) Owned() bool     { return w.ref.owning() }

// Close destroys the window and drops its callbacks. Overlays must be closed
// first.
func (w *Window) Close() {
	h := w.ref.peek()
	if w.ref.release() {
		callbacks.releaseOwner(uintptr(h))
	}
}

// OnClose sets the function called when the user closes the window. Nil
// clears it.
func (w *Window) OnClose(fn func()) {
	h := w.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "close")
		api.WindowSetCloseCallback(h, nil, 0)
		return
	}
	api.WindowSetCloseCallback(h, dispatchWindowClose, callbacks.bind(uintptr(h), "close", fn))
}

// OnResize sets the function called with the new size, in pixels, after the
// window is resized. Nil clears it.
func (w *Window) OnResize(fn func(width, height uint32)) {
	h := w.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "resize")
		api.WindowSetResizeCallback(h, nil, 0)
		return
	}
	api.WindowSetResizeCallback(h, dispatchWindowResize, callbacks.bind(uintptr(h), "resize", fn))
}

// ScreenWidth returns the width in screen coordinates.
func (w *Window) ScreenWidth() uint32 { return api.WindowGetScreenWidth(w.ref.get()) }

// ScreenHeight returns the height in screen coordinates.
func (w *Window) ScreenHeight() uint32 { return api.WindowGetScreenHeight(w.ref.get()) }

// Width returns the width in pixels.
func (w *Window) Width() uint32 { return api.WindowGetWidth(w.ref.get()) }

// Height returns the height in pixels.
func (w *Window) Height() uint32 { return api.WindowGetHeight(w.ref.get()) }

func (w *Window) MoveTo(x, y int32)  { api.WindowMoveTo(w.ref.get(), x, y) }
func (w *Window) MoveToCenter()      { api.WindowMoveToCenter(w.ref.get()) }
func (w *Window) X() int32           { return api.WindowGetPositionX(w.ref.get()) }
func (w *Window) Y() int32           { return api.WindowGetPositionY(w.ref.get()) }
func (w *Window) IsFullscreen() bool { return api.WindowIsFullscreen(w.ref.get()) }

// Scale returns the DPI scale of the window.
func (w *Window) Scale() float64 { return api.WindowGetScale(w.ref.get()) }

// SetTitle sets the title bar text.
func (w *Window) SetTitle(title string) { api.WindowSetTitle(w.ref.get(), title) }

func (w *Window) SetCursor(c Cursor) { api.WindowSetCursor(w.ref.get(), int32(c)) }

func (w *Window) Show()           { api.WindowShow(w.ref.get()) }
func (w *Window) Hide()           { api.WindowHide(w.ref.get()) }
func (w *Window) IsVisible() bool { return api.WindowIsVisible(w.ref.get()) }

// RequestClose asks the window to close, as if the user clicked the close
// button. The native window stays alive until Close.
func (w *Window) RequestClose() { api.WindowClose(w.ref.get()) }
