// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"fmt"
	"strconv"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"go.uber.org/zap"
)

// View is a web page. Create one with Renderer.NewView, or get the view of
// an Overlay.
//
// Callbacks registered with the On* methods run on the rendering thread,
// during Renderer.Update, App.Run or a load call. Each On* method replaces
// the previous callback of the same kind; nil clears it.
type View struct {
	ref ref[capi.View]
}

func borrowedView(h capi.View) *View {
	return &View{ref: borrowed[capi.View]{h: h}}
}

func (v *View) Handle() uintptr { return uintptr(v.ref.get()) }
func (v *View) Owned() bool     { return v.ref.owning() }

// Close destroys an owned view and drops its callbacks and bound functions.
func (v *View) Close() {
	h := v.ref.peek()
	if v.ref.release() {
		callbacks.releaseOwner(uintptr(h))
	}
}

// URL returns the current URL.
func (v *View) URL() (string, error) { return goString(api.ViewGetURL(v.ref.get())) }

// URLString returns the current URL as the view's own native string. It is
// borrowed: Close does nothing, and it is only valid until the view changes
// URL or is closed.
func (v *View) URLString() (*String, error) { return borrowString(api.ViewGetURL(v.ref.get())) }

// Title returns the current page title.
func (v *View) Title() (string, error) { return goString(api.ViewGetTitle(v.ref.get())) }

func (v *View) Width() uint32  { return api.ViewGetWidth(v.ref.get()) }
func (v *View) Height() uint32 { return api.ViewGetHeight(v.ref.get()) }

func (v *View) DeviceScale() float64         { return api.ViewGetDeviceScale(v.ref.get()) }
func (v *View) SetDeviceScale(scale float64) { api.ViewSetDeviceScale(v.ref.get(), scale) }

func (v *View) IsAccelerated() bool { return api.ViewIsAccelerated(v.ref.get()) }
func (v *View) IsTransparent() bool { return api.ViewIsTransparent(v.ref.get()) }

// IsLoading reports whether the main frame is still loading.
func (v *View) IsLoading() bool { return api.ViewIsLoading(v.ref.get()) }

// Surface returns the bitmap surface of a CPU view. It is owned by the view.
func (v *View) Surface() (*Surface, error) {
	r, err := borrow("surface", api.ViewGetSurface(v.ref.get()))
	if err != nil {
		return nil, err
	}
	return &Surface{ref: r}, nil
}

// LoadHTML loads raw HTML into the main frame.
func (v *View) LoadHTML(html string) error {
	h := v.ref.get()
	return withString(html, func(s capi.String) { api.ViewLoadHTML(h, s) })
}

// LoadURL loads url into the main frame.
func (v *View) LoadURL(url string) error {
	h := v.ref.get()
	return withString(url, func(s capi.String) { api.ViewLoadURL(h, s) })
}

// Resize resizes the view, in pixels.
func (v *View) Resize(width, height uint32) { api.ViewResize(v.ref.get(), width, height) }

// EvaluateScript runs js in the main frame and returns the result converted
// to a string. A thrown exception is returned as a *ScriptError.
func (v *View) EvaluateScript(js string) (string, error) {
	h := v.ref.get()
	var result, exception capi.String
	if err := withString(js, func(s capi.String) { result, exception = api.ViewEvaluateScript(h, s) }); err != nil {
		return "", err
	}
	if exception != 0 && !api.StringIsEmpty(exception) {
		msg, err := goString(exception)
		if err != nil {
			return "", err
		}
		return "", &ScriptError{Message: msg}
	}
	return goString(result)
}

// ScrollHeight returns the height of the document body in CSS pixels.
func (v *View) ScrollHeight() (float64, error) {
	res, err := v.EvaluateScript("document.body ? document.body.scrollHeight : 0")
	if err != nil {
		return 0, err
	}
	height, err := strconv.ParseFloat(res, 64)
	if err != nil {
		return 0, fmt.Errorf("ultralight: scroll height %q: %w", res, err)
	}
	return height, nil
}

func (v *View) CanGoBack() bool    { return api.ViewCanGoBack(v.ref.get()) }
func (v *View) CanGoForward() bool { return api.ViewCanGoForward(v.ref.get()) }
func (v *View) GoBack()            { api.ViewGoBack(v.ref.get()) }
func (v *View) GoForward()         { api.ViewGoForward(v.ref.get()) }

// GoToHistoryOffset moves offset entries through the history; negative goes
// back.
func (v *View) GoToHistoryOffset(offset int32) { api.ViewGoToHistoryOffset(v.ref.get(), offset) }

func (v *View) Reload() { api.ViewReload(v.ref.get()) }

// Stop cancels all pending loads.
func (v *View) Stop() { api.ViewStop(v.ref.get()) }

func (v *View) Focus()               { api.ViewFocus(v.ref.get()) }
func (v *View) Unfocus()             { api.ViewUnfocus(v.ref.get()) }
func (v *View) HasFocus() bool       { return api.ViewHasFocus(v.ref.get()) }
func (v *View) HasInputFocus() bool  { return api.ViewHasInputFocus(v.ref.get()) }
func (v *View) SetNeedsPaint(b bool) { api.ViewSetNeedsPaint(v.ref.get(), b) }
func (v *View) NeedsPaint() bool     { return api.ViewGetNeedsPaint(v.ref.get()) }

// KeyEvent is a keyboard event. VirtualKeyCode uses Windows VK codes.
type KeyEvent struct {
	Type           KeyEventType
	Modifiers      KeyModifiers
	VirtualKeyCode int32
	NativeKeyCode  int32
	Text           string
	UnmodifiedText string
	IsKeypad       bool
	IsAutoRepeat   bool
	IsSystemKey    bool
}

// FireKeyEvent sends a keyboard event to the view.
func (v *View) FireKeyEvent(e KeyEvent) error {
	h := v.ref.get()
	text := api.CreateString(e.Text)
	if text == 0 {
		return &HandleError{Kind: "string", Op: "create"}
	}
	defer api.DestroyString(text)
	unmodified := api.CreateString(e.UnmodifiedText)
	if unmodified == 0 {
		return &HandleError{Kind: "string", Op: "create"}
	}
	defer api.DestroyString(unmodified)
	ev := api.CreateKeyEvent(int32(e.Type), uint32(e.Modifiers), e.VirtualKeyCode, e.NativeKeyCode,
		text, unmodified, e.IsKeypad, e.IsAutoRepeat, e.IsSystemKey)
	if ev == 0 {
		return &HandleError{Kind: "key event", Op: "create"}
	}
	defer api.DestroyKeyEvent(ev)
	api.ViewFireKeyEvent(h, ev)
	return nil
}

// FireMouseEvent sends a mouse event at view coordinates (x, y).
func (v *View) FireMouseEvent(t MouseEventType, x, y int32, button MouseButton) error {
	h := v.ref.get()
	ev := api.CreateMouseEvent(int32(t), x, y, int32(button))
	if ev == 0 {
		return &HandleError{Kind: "mouse event", Op: "create"}
	}
	defer api.DestroyMouseEvent(ev)
	api.ViewFireMouseEvent(h, ev)
	return nil
}

// FireScrollEvent sends a scroll event.
func (v *View) FireScrollEvent(t ScrollEventType, deltaX, deltaY int32) error {
	h := v.ref.get()
	ev := api.CreateScrollEvent(int32(t), deltaX, deltaY)
	if ev == 0 {
		return &HandleError{Kind: "scroll event", Op: "create"}
	}
	defer api.DestroyScrollEvent(ev)
	api.ViewFireScrollEvent(h, ev)
	return nil
}

func (v *View) setFrameCallback(ev capi.FrameEvent, name string, fn FrameHandler) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), name)
		api.ViewSetFrameCallback(h, ev, nil, 0)
		return
	}
	api.ViewSetFrameCallback(h, ev, dispatchFrame, callbacks.bind(uintptr(h), name, fn))
}

// OnBeginLoading is called when a frame starts loading.
func (v *View) OnBeginLoading(fn FrameHandler) {
	v.setFrameCallback(capi.BeginLoading, "begin_loading", fn)
}

// OnFinishLoading is called when a frame finishes loading.
func (v *View) OnFinishLoading(fn FrameHandler) {
	v.setFrameCallback(capi.FinishLoading, "finish_loading", fn)
}

// OnWindowObjectReady is called when a frame's JavaScript window object is
// reset, before any page script runs. Bind host functions here.
func (v *View) OnWindowObjectReady(fn FrameHandler) {
	v.setFrameCallback(capi.WindowObjectReady, "window_object_ready", fn)
}

// OnDOMReady is called when a frame's DOM is loaded.
func (v *View) OnDOMReady(fn FrameHandler) {
	v.setFrameCallback(capi.DOMReady, "dom_ready", fn)
}

func (v *View) setTextCallback(ev capi.StringEvent, name string, fn TextHandler) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), name)
		api.ViewSetStringCallback(h, ev, nil, 0)
		return
	}
	api.ViewSetStringCallback(h, ev, dispatchText, callbacks.bind(uintptr(h), name, fn))
}

func (v *View) OnChangeTitle(fn TextHandler)   { v.setTextCallback(capi.ChangeTitle, "change_title", fn) }
func (v *View) OnChangeURL(fn TextHandler)     { v.setTextCallback(capi.ChangeURL, "change_url", fn) }
func (v *View) OnChangeTooltip(fn TextHandler) { v.setTextCallback(capi.ChangeTooltip, "change_tooltip", fn) }

// OnUpdateHistory is called when the back/forward history changes.
func (v *View) OnUpdateHistory(fn func(v *View)) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "update_history")
		api.ViewSetUpdateHistoryCallback(h, nil, 0)
		return
	}
	api.ViewSetUpdateHistoryCallback(h, dispatchUpdateHistory, callbacks.bind(uintptr(h), "update_history", fn))
}

// OnChangeCursor is called when the page wants a different mouse cursor.
func (v *View) OnChangeCursor(fn func(v *View, c Cursor)) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "change_cursor")
		api.ViewSetChangeCursorCallback(h, nil, 0)
		return
	}
	api.ViewSetChangeCursorCallback(h, dispatchChangeCursor, callbacks.bind(uintptr(h), "change_cursor", fn))
}

// OnFailLoading is called when a frame fails to load.
func (v *View) OnFailLoading(fn func(v *View, err *LoadError)) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "fail_loading")
		api.ViewSetFailLoadingCallback(h, nil, 0)
		return
	}
	api.ViewSetFailLoadingCallback(h, dispatchFailLoading, callbacks.bind(uintptr(h), "fail_loading", fn))
}

// OnConsoleMessage is called for every message added to the page console.
func (v *View) OnConsoleMessage(fn func(v *View, msg ConsoleMessage)) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "console_message")
		api.ViewSetAddConsoleMessageCallback(h, nil, 0)
		return
	}
	api.ViewSetAddConsoleMessageCallback(h, dispatchConsoleMessage, callbacks.bind(uintptr(h), "console_message", fn))
}

// OnCreateChildView is called when the page asks for a new view. Return a
// view to load the request into, or nil to decline. The returned view stays
// owned by the caller, who must keep it alive.
func (v *View) OnCreateChildView(fn func(v *View, req ChildViewRequest) *View) {
	h := v.ref.get()
	if fn == nil {
		callbacks.unbind(uintptr(h), "create_child_view")
		api.ViewSetCreateChildViewCallback(h, nil, 0)
		return
	}
	api.ViewSetCreateChildViewCallback(h, dispatchCreateChildView, callbacks.bind(uintptr(h), "create_child_view", fn))
}

// ForwardConsole logs console messages to l, on a child logger named after
// the message source.
func (v *View) ForwardConsole(l *zap.Logger) {
	v.OnConsoleMessage(func(_ *View, msg ConsoleMessage) {
		fields := []zap.Field{
			zap.Uint32("line", msg.Line),
			zap.Uint32("column", msg.Column),
			zap.String("source_id", msg.SourceID),
		}
		named := l.Named(msg.Source.String())
		switch msg.Level {
		case MessageLevelError:
			named.Error(msg.Message, fields...)
		case MessageLevelWarning:
			named.Warn(msg.Message, fields...)
		case MessageLevelInfo:
			named.Info(msg.Message, fields...)
		default:
			named.Debug(msg.Message, fields...)
		}
	})
}
