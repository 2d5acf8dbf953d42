// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import "strings"

// Numeric values of every enum below match Ultralight 1.4. They are passed to
// and from the native library unchanged.

// MessageSource is the subsystem a console message came from.
type MessageSource uint32

const (
	MessageSourceXML MessageSource = iota
	MessageSourceJS
	MessageSourceNetwork
	MessageSourceConsoleAPI
	MessageSourceStorage
	MessageSourceAppCache
	MessageSourceRendering
	MessageSourceCSS
	MessageSourceSecurity
	MessageSourceContentBlocker
	MessageSourceMedia
	MessageSourceMediaSource
	MessageSourceWebRTC
	MessageSourceITPDebug
	MessageSourcePrivateClickMeasurement
	MessageSourcePaymentRequest
	MessageSourceOther
)

var messageSourceNames = [...]string{
	"xml", "js", "network", "console-api", "storage", "app-cache", "rendering",
	"css", "security", "content-blocker", "media", "media-source", "webrtc",
	"itp-debug", "private-click-measurement", "payment-request", "other",
}

func (s MessageSource) String() string {
	if int(s) < len(messageSourceNames) {
		return messageSourceNames[s]
	}
	return "unknown"
}

// MessageLevel is the severity of a console message.
type MessageLevel uint32

const (
	MessageLevelLog MessageLevel = iota
	MessageLevelWarning
	MessageLevelError
	MessageLevelDebug
	MessageLevelInfo
)

func (l MessageLevel) String() string {
	switch l {
	case MessageLevelLog:
		return "log"
	case MessageLevelWarning:
		return "warning"
	case MessageLevelError:
		return "error"
	case MessageLevelDebug:
		return "debug"
	case MessageLevelInfo:
		return "info"
	}
	return "unknown"
}

// LogLevel is the severity passed to a platform logger.
type LogLevel uint32

const (
	LogLevelError LogLevel = iota
	LogLevelWarning
	LogLevelInfo
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarning:
		return "warning"
	case LogLevelInfo:
		return "info"
	}
	return "unknown"
}

// WindowFlags is a bitmask of window decorations and behaviors.
type WindowFlags uint32

const (
	WindowBorderless  WindowFlags = 1 << 0
	WindowTitled      WindowFlags = 1 << 1
	WindowResizable   WindowFlags = 1 << 2
	WindowMaximizable WindowFlags = 1 << 3
	WindowHidden      WindowFlags = 1 << 4
)

// Has reports whether every flag in mask is set in f.
func (f WindowFlags) Has(mask WindowFlags) bool { return f&mask == mask }

func (f WindowFlags) String() string {
	if f == 0 {
		return "0"
	}
	names := []struct {
		flag WindowFlags
		name string
	}{
		{WindowBorderless, "borderless"},
		{WindowTitled, "titled"},
		{WindowResizable, "resizable"},
		{WindowMaximizable, "maximizable"},
		{WindowHidden, "hidden"},
	}
	var parts []string
	for _, n := range names {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
			f &^= n.flag
		}
	}
	if f != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// BitmapFormat is the pixel layout of a bitmap.
type BitmapFormat uint32

const (
	// BitmapA8 is one byte per pixel, alpha only.
	BitmapA8 BitmapFormat = iota
	// BitmapBGRA8 is four bytes per pixel, blue first, premultiplied sRGB.
	BitmapBGRA8
)

// BytesPerPixel returns the pixel size of f.
func (f BitmapFormat) BytesPerPixel() int {
	if f == BitmapA8 {
		return 1
	}
	return 4
}

// FaceWinding is the winding order of front-facing triangles.
type FaceWinding uint32

const (
	FaceWindingClockwise FaceWinding = iota
	FaceWindingCounterClockwise
)

// FontHinting selects how glyph outlines are fitted to the pixel grid.
type FontHinting uint32

const (
	FontHintingSmooth FontHinting = iota
	FontHintingNormal
	FontHintingMonochrome
	FontHintingNone
)

// MouseEventType is the kind of a mouse event.
type MouseEventType int32

const (
	MouseMoved MouseEventType = iota
	MouseDown
	MouseUp
)

// MouseButton identifies the button of a mouse event.
type MouseButton int32

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// ScrollEventType is the unit of a scroll event.
type ScrollEventType int32

const (
	ScrollByPixel ScrollEventType = iota
	ScrollByPage
)

// KeyEventType is the kind of a keyboard event. RawKeyDown triggers
// accelerators; Char carries text.
type KeyEventType int32

const (
	KeyDown KeyEventType = iota
	KeyUp
	RawKeyDown
	Char
)

// KeyModifiers is a bitmask of modifier keys held during a key event.
type KeyModifiers uint32

const (
	ModAlt   KeyModifiers = 1 << 0
	ModCtrl  KeyModifiers = 1 << 1
	ModMeta  KeyModifiers = 1 << 2
	ModShift KeyModifiers = 1 << 3
)

// Cursor is the mouse cursor a page asks for.
type Cursor int32

const (
	CursorPointer Cursor = iota
	CursorCross
	CursorHand
	CursorIBeam
	CursorWait
	CursorHelp
	CursorEastResize
	CursorNorthResize
	CursorNorthEastResize
	CursorNorthWestResize
	CursorSouthResize
	CursorSouthEastResize
	CursorSouthWestResize
	CursorWestResize
	CursorNorthSouthResize
	CursorEastWestResize
	CursorNorthEastSouthWestResize
	CursorNorthWestSouthEastResize
	CursorColumnResize
	CursorRowResize
	CursorMiddlePanning
	CursorEastPanning
	CursorNorthPanning
	CursorNorthEastPanning
	CursorNorthWestPanning
	CursorSouthPanning
	CursorSouthEastPanning
	CursorSouthWestPanning
	CursorWestPanning
	CursorMove
	CursorVerticalText
	CursorCell
	CursorContextMenu
	CursorAlias
	CursorProgress
	CursorNoDrop
	CursorCopy
	CursorNone
	CursorNotAllowed
	CursorZoomIn
	CursorZoomOut
	CursorGrab
	CursorGrabbing
	CursorCustom
)
