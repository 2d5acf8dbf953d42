// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
	"go.uber.org/zap"
)

// One static dispatcher per native callback shape. Each recovers the closure
// registered under userData, wraps handles as borrowed values, converts
// strings and calls it. A stale userData is ignored.

// FrameHandler handles loading events of a frame.
type FrameHandler func(v *View, frameID uint64, isMainFrame bool, url string)

// TextHandler handles title, URL and tooltip changes.
type TextHandler func(v *View, text string)

// ConsoleMessage is a message added to a view's console.
type ConsoleMessage struct {
	Source   MessageSource
	Level    MessageLevel
	Message  string
	Line     uint32
	Column   uint32
	SourceID string
}

// IntRect is a rectangle in integer pixel coordinates.
type IntRect struct {
	Left, Top, Right, Bottom int32
}

// Width returns Right - Left.
func (r IntRect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r IntRect) Height() int32 { return r.Bottom - r.Top }

// ChildViewRequest describes a page asking for a new view, for example from
// window.open or a link with a target.
type ChildViewRequest struct {
	OpenerURL string
	TargetURL string
	IsPopup   bool
	PopupRect IntRect
}

func dispatchUpdate(userData uintptr) {
	if fn, ok := lookupAs[func()](userData, "update"); ok {
		fn()
	}
}

func dispatchWindowClose(userData uintptr, _ capi.Window) {
	if fn, ok := lookupAs[func()](userData, "close"); ok {
		fn()
	}
}

func dispatchWindowResize(userData uintptr, _ capi.Window, width, height uint32) {
	if fn, ok := lookupAs[func(width, height uint32)](userData, "resize"); ok {
		fn(width, height)
	}
}

func dispatchFrame(userData uintptr, caller capi.View, frameID uint64, isMainFrame bool, url capi.String) {
	if fn, ok := lookupAs[FrameHandler](userData, "frame"); ok {
		fn(borrowedView(caller), frameID, isMainFrame, lossyString(url, "frame"))
	}
}

func dispatchText(userData uintptr, caller capi.View, value capi.String) {
	if fn, ok := lookupAs[TextHandler](userData, "text"); ok {
		fn(borrowedView(caller), lossyString(value, "text"))
	}
}

func dispatchUpdateHistory(userData uintptr, caller capi.View) {
	if fn, ok := lookupAs[func(*View)](userData, "update_history"); ok {
		fn(borrowedView(caller))
	}
}

func dispatchChangeCursor(userData uintptr, caller capi.View, cursor int32) {
	if fn, ok := lookupAs[func(*View, Cursor)](userData, "change_cursor"); ok {
		fn(borrowedView(caller), Cursor(cursor))
	}
}

func dispatchFailLoading(userData uintptr, caller capi.View, frameID uint64, isMainFrame bool, url, description, errorDomain capi.String, errorCode int32) {
	fn, ok := lookupAs[func(*View, *LoadError)](userData, "fail_loading")
	if !ok {
		return
	}
	fn(borrowedView(caller), &LoadError{
		FrameID:     frameID,
		IsMainFrame: isMainFrame,
		URL:         lossyString(url, "fail_loading"),
		Description: lossyString(description, "fail_loading"),
		Domain:      lossyString(errorDomain, "fail_loading"),
		Code:        errorCode,
	})
}

func dispatchConsoleMessage(userData uintptr, caller capi.View, source, level uint32, message capi.String, line, column uint32, sourceID capi.String) {
	fn, ok := lookupAs[func(*View, ConsoleMessage)](userData, "console_message")
	if !ok {
		return
	}
	fn(borrowedView(caller), ConsoleMessage{
		Source:   MessageSource(source),
		Level:    MessageLevel(level),
		Message:  lossyString(message, "console_message"),
		Line:     line,
		Column:   column,
		SourceID: lossyString(sourceID, "console_message"),
	})
}

// dispatchCreateChildView returns the handle of the view the closure chose,
// or null to decline. The returned view stays owned by Go.
func dispatchCreateChildView(userData uintptr, caller capi.View, openerURL, targetURL capi.String, isPopup bool, popupRect capi.IntRect) capi.View {
	fn, ok := lookupAs[func(*View, ChildViewRequest) *View](userData, "create_child_view")
	if !ok {
		return 0
	}
	child := fn(borrowedView(caller), ChildViewRequest{
		OpenerURL: lossyString(openerURL, "create_child_view"),
		TargetURL: lossyString(targetURL, "create_child_view"),
		IsPopup:   isPopup,
		PopupRect: IntRect(popupRect),
	})
	if child == nil {
		return 0
	}
	if child.ref.released() {
		Logger().Warn("create child view returned a closed view", zap.Uintptr("caller", uintptr(caller)))
		return 0
	}
	return child.ref.get()
}
