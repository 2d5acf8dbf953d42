// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package ebitenview renders an Ultralight view as an Ebiten texture.
//
// It copies the view's CPU surface into an *ebiten.Image every frame, forwards
// mouse, scroll and keyboard input, and provides JSON messaging between Go and
// the page:
//
//	r, _ := ultralight.NewRenderer(nil)
//	v, _ := r.NewView(800, 600, nil, nil)
//	ui, _ := ebitenview.New(v)
//	ui.OnMessage = func(msg string) { ... } // page calls go.send(...)
//
//	// In Ebiten Update():
//	ebitenview.Tick(r)
//	ui.Update()
//
//	// In Ebiten Draw():
//	ui.Draw(screen)
//
// Only the focused view receives keyboard input. Mouse and scroll go to the
// view under the cursor, as set with SetBounds. Clicking inside a view gives
// it focus.
package ebitenview

import (
	"sync"

	"github.com/YindSoft/ultralight-go"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	focused   *View
	focusedMu sync.Mutex
)

func getFocused() *View {
	focusedMu.Lock()
	defer focusedMu.Unlock()
	return focused
}

func setFocused(v *View) {
	focusedMu.Lock()
	prev := focused
	focused = v
	focusedMu.Unlock()
	if prev != nil && prev != v && !prev.closed {
		prev.view.Unfocus()
	}
	if v != nil {
		v.view.Focus()
	}
}

// View draws an ultralight.View into an Ebiten image. Multiple instances can
// exist, one per ultralight view.
type View struct {
	view    *ultralight.View
	texture *ebiten.Image
	pixels  []byte

	width  int
	height int

	// Bounds in screen coordinates for input routing. Set via SetBounds so that
	// only the view under the cursor receives mouse/scroll input.
	BoundsX, BoundsY, BoundsW, BoundsH int

	mouseX, mouseY int
	leftDown       bool
	rightDown      bool
	cursor         ultralight.Cursor

	pending []string

	// OnMessage is called from Update for each message the page sent with
	// go.send(msg). msg is a string or JSON string; see ParseMessage.
	OnMessage func(msg string)

	// OnReady is called after the go helper is installed in a new page, so
	// it can bind its own functions.
	OnReady func(v *ultralight.View)

	closed bool
}

// New wraps v. It takes over v's OnWindowObjectReady and OnChangeCursor
// callbacks; the ultralight view itself stays owned by the caller and must
// outlive the returned View.
func New(v *ultralight.View) (*View, error) {
	w, h := int(v.Width()), int(v.Height())
	ev := &View{
		view:    v,
		texture: ebiten.NewImage(w, h),
		pixels:  make([]byte, w*h*4),
		width:   w,
		height:  h,
	}
	v.OnWindowObjectReady(func(page *ultralight.View, _ uint64, isMainFrame bool, _ string) {
		if !isMainFrame {
			return
		}
		if err := ev.installHelper(page); err != nil {
			ultralight.Logger().Warn("ebitenview: go helper not installed", zap.Error(err))
			return
		}
		if ev.OnReady != nil {
			ev.OnReady(page)
		}
	})
	v.OnChangeCursor(func(_ *ultralight.View, c ultralight.Cursor) {
		ev.cursor = c
	})
	return ev, nil
}

// Tick advances the renderer by one frame: timers, network and JS first,
// then painting of every view into its surface. Call once per Ebiten Update,
// before updating the views.
func Tick(r *ultralight.Renderer) {
	r.Update()
	r.RefreshDisplay(0)
	r.Render()
}

// View returns the wrapped ultralight view.
func (ev *View) View() *ultralight.View { return ev.view }

// SetFocus gives this view keyboard focus. Only the focused view receives key
// events, regardless of cursor position.
func (ev *View) SetFocus() { setFocused(ev) }

// SetBounds sets the screen rectangle for this view. Mouse and scroll are only
// forwarded when the cursor is inside these bounds. Use (0,0,0,0) to accept
// input anywhere.
func (ev *View) SetBounds(x, y, w, h int) {
	ev.BoundsX, ev.BoundsY, ev.BoundsW, ev.BoundsH = x, y, w, h
}

// Resize changes the size of the ultralight view and its texture.
func (ev *View) Resize(width, height int) {
	if ev.closed || (width == ev.width && height == ev.height) {
		return
	}
	ev.view.Resize(uint32(width), uint32(height))
	ev.texture.Deallocate()
	ev.texture = ebiten.NewImage(width, height)
	ev.pixels = make([]byte, width*height*4)
	ev.width, ev.height = width, height
}

// Update should be called every frame from the game's Update, after Tick. It
// delivers page messages, forwards input and copies pixels to the texture.
func (ev *View) Update() error {
	if ev.closed {
		return nil
	}
	msgs := ev.pending
	ev.pending = nil
	for _, msg := range msgs {
		if ev.OnMessage != nil {
			ev.OnMessage(msg)
		}
	}
	ev.forwardInput()
	return ev.copyPixels()
}

// Texture returns the Ebiten image with the current page content.
func (ev *View) Texture() *ebiten.Image { return ev.texture }

// Draw draws the texture onto screen at the view's bounds origin.
func (ev *View) Draw(screen *ebiten.Image) {
	if ev.closed {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ev.BoundsX), float64(ev.BoundsY))
	screen.DrawImage(ev.texture, op)
}

func (ev *View) copyPixels() error {
	surface, err := ev.view.Surface()
	if err != nil {
		return err
	}
	w, h := int(surface.Width()), int(surface.Height())
	if w != ev.width || h != ev.height || w == 0 || h == 0 {
		// Surface resize lands on the next paint.
		return nil
	}
	px, err := surface.LockPixels()
	if err != nil {
		return err
	}
	bgraToRGBA(ev.pixels, px.Data, w, h, int(px.RowBytes))
	px.Unlock()
	ev.texture.WritePixels(ev.pixels)
	return nil
}

// bgraToRGBA converts a BGRA surface with rowBytes stride into tightly packed
// RGBA.
func bgraToRGBA(dst, src []byte, width, height, rowBytes int) {
	i := 0
	for y := 0; y < height; y++ {
		row := src[y*rowBytes : y*rowBytes+width*4]
		for x := 0; x < len(row); x += 4 {
			dst[i+0] = row[x+2]
			dst[i+1] = row[x+1]
			dst[i+2] = row[x+0]
			dst[i+3] = row[x+3]
			i += 4
		}
	}
}

// Close releases the texture and the callbacks New installed. The ultralight
// view is left open. After Close, the View must not be used.
func (ev *View) Close() {
	if ev.closed {
		return
	}
	ev.closed = true
	focusedMu.Lock()
	if focused == ev {
		focused = nil
	}
	focusedMu.Unlock()
	ev.view.OnWindowObjectReady(nil)
	ev.view.OnChangeCursor(nil)
	ev.texture.Deallocate()
}
