// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Overlay draws a View into a Window and routes the window's input to it.
type Overlay struct {
	ref ref[capi.Overlay]
	// ownsView is set when the overlay created its view, so the view dies
	// with the overlay.
	ownsView bool
}

// NewOverlay creates an overlay, and a view for it, on w at (x, y). width and
// height are in pixels.
func NewOverlay(w *Window, width, height uint32, x, y int32) (*Overlay, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	r, err := own("overlay", a.CreateOverlay(w.ref.get(), width, height, x, y), a.DestroyOverlay)
	if err != nil {
		return nil, err
	}
	return &Overlay{ref: r, ownsView: true}, nil
}

// NewOverlayWithView creates an overlay that shows an existing view. The
// view remains owned by the caller and must outlive the overlay.
func NewOverlayWithView(w *Window, v *View, x, y int32) (*Overlay, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	r, err := own("overlay", a.CreateOverlayWithView(w.ref.get(), v.ref.get(), x, y), a.DestroyOverlay)
	if err != nil {
		return nil, err
	}
	return &Overlay{ref: r}, nil
}

func (o *Overlay) Handle() uintptr { return uintptr(o.ref.get()) }
func (o *Overlay) Owned() bool     { return o.ref.owning() }

// Close destroys the overlay. A view created by NewOverlay is destroyed with
// it, along with that view's callbacks.
func (o *Overlay) Close() {
	if o.ref.released() {
		return
	}
	var view capi.View
	if o.ownsView && o.ref.owning() {
		view = api.OverlayGetView(o.ref.get())
	}
	if o.ref.release() && view != 0 {
		callbacks.releaseOwner(uintptr(view))
	}
}

// View returns the overlay's view. It is borrowed: closing it does nothing,
// and it must not be used after the overlay is closed.
func (o *Overlay) View() (*View, error) {
	r, err := borrow("view", api.OverlayGetView(o.ref.get()))
	if err != nil {
		return nil, err
	}
	return &View{ref: r}, nil
}

func (o *Overlay) Width() uint32  { return api.OverlayGetWidth(o.ref.get()) }
func (o *Overlay) Height() uint32 { return api.OverlayGetHeight(o.ref.get()) }
func (o *Overlay) X() int32       { return api.OverlayGetX(o.ref.get()) }
func (o *Overlay) Y() int32       { return api.OverlayGetY(o.ref.get()) }

func (o *Overlay) MoveTo(x, y int32) { api.OverlayMoveTo(o.ref.get(), x, y) }

// Resize resizes the overlay and its view, in pixels.
func (o *Overlay) Resize(width, height uint32) { api.OverlayResize(o.ref.get(), width, height) }

func (o *Overlay) IsHidden() bool { return api.OverlayIsHidden(o.ref.get()) }
func (o *Overlay) Hide()          { api.OverlayHide(o.ref.get()) }
func (o *Overlay) Show()          { api.OverlayShow(o.ref.get()) }

// HasFocus reports whether the overlay receives keyboard input.
func (o *Overlay) HasFocus() bool { return api.OverlayHasFocus(o.ref.get()) }
func (o *Overlay) Focus()         { api.OverlayFocus(o.ref.get()) }
func (o *Overlay) Unfocus()       { api.OverlayUnfocus(o.ref.get()) }
