// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package capi describes the Ultralight 1.4 C ABI as a Go interface.
//
// Every native resource kind has its own handle type so that a View handle
// cannot be passed where a Window is expected. Handles are opaque: they are
// only meaningful when passed back into the API that issued them.
//
// Callbacks are plain Go functions paired with a user-data value. The
// implementation is responsible for exposing the function to native code
// (see internal/bridge) and must hand the user-data back verbatim.
package capi

// Handle is an opaque pointer-sized native identifier. Zero is the null handle.
type Handle = uintptr

type (
	Config     uintptr
	ViewConfig uintptr
	Settings   uintptr
	App        uintptr
	Window     uintptr
	Monitor    uintptr
	Overlay    uintptr
	View       uintptr
	Renderer   uintptr
	Session    uintptr
	Bitmap     uintptr
	Surface    uintptr
	String     uintptr
	Buffer     uintptr

	KeyEvent    uintptr
	MouseEvent  uintptr
	ScrollEvent uintptr

	JSContext uintptr
	JSObject  uintptr
	JSValue   uintptr
	JSClass   uintptr
)

// IntRect mirrors ULIntRect.
type IntRect struct {
	Left, Top, Right, Bottom int32
}

// JSType mirrors JSType from JavaScriptCore.
type JSType uint32

const (
	JSTypeUndefined JSType = iota
	JSTypeNull
	JSTypeBoolean
	JSTypeNumber
	JSTypeString
	JSTypeObject
	JSTypeSymbol
	JSTypeBigInt
)

// ConfigKey selects one of the ulConfigSet* functions.
type ConfigKey int

const (
	ConfigCachePath ConfigKey = iota
	ConfigResourcePathPrefix
	ConfigFaceWinding
	ConfigFontHinting
	ConfigFontGamma
	ConfigUserStylesheet
	ConfigForceRepaint
	ConfigAnimationTimerDelay
	ConfigScrollTimerDelay
	ConfigRecycleDelay
	ConfigMemoryCacheSize
	ConfigPageCacheSize
	ConfigOverrideRAMSize
	ConfigMinLargeHeapSize
	ConfigMinSmallHeapSize
	ConfigNumRendererThreads
	ConfigMaxUpdateTime
	ConfigBitmapAlignment
)

// ViewConfigKey selects one of the ulViewConfigSet* functions.
type ViewConfigKey int

const (
	ViewConfigIsAccelerated ViewConfigKey = iota
	ViewConfigIsTransparent
	ViewConfigInitialDeviceScale
	ViewConfigInitialFocus
	ViewConfigEnableImages
	ViewConfigEnableJavaScript
	ViewConfigFontFamilyStandard
	ViewConfigFontFamilyFixed
	ViewConfigFontFamilySerif
	ViewConfigFontFamilySansSerif
	ViewConfigUserAgent
)

// SettingsKey selects one of the ulSettingsSet* functions.
type SettingsKey int

const (
	SettingsDeveloperName SettingsKey = iota
	SettingsAppName
	SettingsFileSystemPath
	SettingsLoadShadersFromFileSystem
	SettingsForceCPURenderer
)

// FrameEvent selects a view callback slot with the frame shape.
type FrameEvent int

const (
	BeginLoading FrameEvent = iota
	FinishLoading
	WindowObjectReady
	DOMReady
)

// StringEvent selects a view callback slot with the (view, string) shape.
type StringEvent int

const (
	ChangeTitle StringEvent = iota
	ChangeURL
	ChangeTooltip
)

// Callback shapes. userData is whatever was passed at registration.
type (
	VoidFunc        func(userData uintptr)
	WindowFunc      func(userData uintptr, window Window)
	ResizeFunc      func(userData uintptr, window Window, width, height uint32)
	FrameFunc       func(userData uintptr, caller View, frameID uint64, isMainFrame bool, url String)
	StringFunc      func(userData uintptr, caller View, value String)
	ViewFunc        func(userData uintptr, caller View)
	CursorFunc      func(userData uintptr, caller View, cursor int32)
	FailLoadingFunc func(userData uintptr, caller View, frameID uint64, isMainFrame bool, url, description, errorDomain String, errorCode int32)
	ConsoleFunc     func(userData uintptr, caller View, source, level uint32, message String, line, column uint32, sourceID String)
	CreateChildFunc func(userData uintptr, caller View, openerURL, targetURL String, isPopup bool, popupRect IntRect) View

	// HostFunc is the callAsFunction hook of a JS class. The closure key
	// travels in the function object's private data, not in a user-data slot.
	HostFunc     func(ctx JSContext, function, this JSObject, args []JSValue, exception *JSValue) JSValue
	FinalizeFunc func(object JSObject)
)

// Platform hooks. These are process-wide and carry no user data.
type (
	LoggerFuncs struct {
		LogMessage func(level uint32, message String)
	}
	ClipboardFuncs struct {
		Clear          func()
		ReadPlainText  func(result String)
		WritePlainText func(text String)
	}
	FileSystemFuncs struct {
		FileExists      func(path String) bool
		GetFileMimeType func(path String) String
		GetFileCharset  func(path String) String
		OpenFile        func(path String) Buffer
	}
	// SurfaceFuncs backs view surfaces with caller memory. userData is the
	// value Create returned.
	SurfaceFuncs struct {
		Create       func(width, height uint32) uintptr
		Destroy      func(userData uintptr)
		GetWidth     func(userData uintptr) uint32
		GetHeight    func(userData uintptr) uint32
		GetRowBytes  func(userData uintptr) uint32
		GetSize      func(userData uintptr) uint64
		LockPixels   func(userData uintptr) uintptr
		UnlockPixels func(userData uintptr)
		Resize       func(userData uintptr, width, height uint32)
	}
)

// API is the subset of the Ultralight C ABI used by this module.
type API interface {
	// String
	CreateString(s string) String
	CreateStringFromCopy(s String) String
	DestroyString(s String)
	StringData(s String) []byte
	StringLength(s String) int
	StringIsEmpty(s String) bool
	StringAssign(dst, src String)

	// Buffer
	CreateBufferFromCopy(data []byte) Buffer

	// Config
	CreateConfig() Config
	DestroyConfig(c Config)
	ConfigSetString(c Config, key ConfigKey, value String)
	ConfigSetBool(c Config, key ConfigKey, value bool)
	ConfigSetUint(c Config, key ConfigKey, value uint32)
	ConfigSetFloat(c Config, key ConfigKey, value float64)

	// ViewConfig
	CreateViewConfig() ViewConfig
	DestroyViewConfig(c ViewConfig)
	ViewConfigSetString(c ViewConfig, key ViewConfigKey, value String)
	ViewConfigSetBool(c ViewConfig, key ViewConfigKey, value bool)
	ViewConfigSetFloat(c ViewConfig, key ViewConfigKey, value float64)

	// Settings
	CreateSettings() Settings
	DestroySettings(s Settings)
	SettingsSetString(s Settings, key SettingsKey, value String)
	SettingsSetBool(s Settings, key SettingsKey, value bool)

	// App
	CreateApp(s Settings, c Config) App
	DestroyApp(a App)
	AppSetUpdateCallback(a App, fn VoidFunc, userData uintptr)
	AppIsRunning(a App) bool
	AppGetMainMonitor(a App) Monitor
	AppGetRenderer(a App) Renderer
	AppRun(a App)
	AppQuit(a App)

	// Monitor
	MonitorGetScale(m Monitor) float64
	MonitorGetWidth(m Monitor) uint32
	MonitorGetHeight(m Monitor) uint32

	// Window
	CreateWindow(m Monitor, width, height uint32, fullscreen bool, flags uint32) Window
	DestroyWindow(w Window)
	WindowSetCloseCallback(w Window, fn WindowFunc, userData uintptr)
	WindowSetResizeCallback(w Window, fn ResizeFunc, userData uintptr)
	WindowGetScreenWidth(w Window) uint32
	WindowGetScreenHeight(w Window) uint32
	WindowGetWidth(w Window) uint32
	WindowGetHeight(w Window) uint32
	WindowMoveTo(w Window, x, y int32)
	WindowMoveToCenter(w Window)
	WindowGetPositionX(w Window) int32
	WindowGetPositionY(w Window) int32
	WindowIsFullscreen(w Window) bool
	WindowGetScale(w Window) float64
	WindowSetTitle(w Window, title string)
	WindowSetCursor(w Window, cursor int32)
	WindowShow(w Window)
	WindowHide(w Window)
	WindowIsVisible(w Window) bool
	WindowClose(w Window)

	// Overlay
	CreateOverlay(w Window, width, height uint32, x, y int32) Overlay
	CreateOverlayWithView(w Window, v View, x, y int32) Overlay
	DestroyOverlay(o Overlay)
	OverlayGetView(o Overlay) View
	OverlayGetWidth(o Overlay) uint32
	OverlayGetHeight(o Overlay) uint32
	OverlayGetX(o Overlay) int32
	OverlayGetY(o Overlay) int32
	OverlayMoveTo(o Overlay, x, y int32)
	OverlayResize(o Overlay, width, height uint32)
	OverlayIsHidden(o Overlay) bool
	OverlayHide(o Overlay)
	OverlayShow(o Overlay)
	OverlayHasFocus(o Overlay) bool
	OverlayFocus(o Overlay)
	OverlayUnfocus(o Overlay)

	// Renderer
	CreateRenderer(c Config) Renderer
	DestroyRenderer(r Renderer)
	Update(r Renderer)
	RefreshDisplay(r Renderer, displayID uint32)
	Render(r Renderer)
	PurgeMemory(r Renderer)
	LogMemoryUsage(r Renderer)

	// Session
	CreateSession(r Renderer, persistent bool, name String) Session
	DestroySession(s Session)
	DefaultSession(r Renderer) Session
	SessionIsPersistent(s Session) bool
	SessionGetName(s Session) String
	SessionGetID(s Session) uint64
	SessionGetDiskPath(s Session) String

	// View
	CreateView(r Renderer, width, height uint32, vc ViewConfig, s Session) View
	DestroyView(v View)
	ViewGetURL(v View) String
	ViewGetTitle(v View) String
	ViewGetWidth(v View) uint32
	ViewGetHeight(v View) uint32
	ViewGetDeviceScale(v View) float64
	ViewSetDeviceScale(v View, scale float64)
	ViewIsAccelerated(v View) bool
	ViewIsTransparent(v View) bool
	ViewIsLoading(v View) bool
	ViewGetSurface(v View) Surface
	ViewLoadHTML(v View, html String)
	ViewLoadURL(v View, url String)
	ViewResize(v View, width, height uint32)
	ViewEvaluateScript(v View, js String) (result, exception String)
	ViewCanGoBack(v View) bool
	ViewCanGoForward(v View) bool
	ViewGoBack(v View)
	ViewGoForward(v View)
	ViewGoToHistoryOffset(v View, offset int32)
	ViewReload(v View)
	ViewStop(v View)
	ViewFocus(v View)
	ViewUnfocus(v View)
	ViewHasFocus(v View) bool
	ViewHasInputFocus(v View) bool
	ViewFireKeyEvent(v View, e KeyEvent)
	ViewFireMouseEvent(v View, e MouseEvent)
	ViewFireScrollEvent(v View, e ScrollEvent)
	ViewSetNeedsPaint(v View, needsPaint bool)
	ViewGetNeedsPaint(v View) bool

	ViewSetFrameCallback(v View, ev FrameEvent, fn FrameFunc, userData uintptr)
	ViewSetStringCallback(v View, ev StringEvent, fn StringFunc, userData uintptr)
	ViewSetUpdateHistoryCallback(v View, fn ViewFunc, userData uintptr)
	ViewSetChangeCursorCallback(v View, fn CursorFunc, userData uintptr)
	ViewSetFailLoadingCallback(v View, fn FailLoadingFunc, userData uintptr)
	ViewSetAddConsoleMessageCallback(v View, fn ConsoleFunc, userData uintptr)
	ViewSetCreateChildViewCallback(v View, fn CreateChildFunc, userData uintptr)

	// Input events
	CreateKeyEvent(eventType int32, modifiers uint32, virtualKeyCode, nativeKeyCode int32, text, unmodifiedText String, isKeypad, isAutoRepeat, isSystemKey bool) KeyEvent
	DestroyKeyEvent(e KeyEvent)
	CreateMouseEvent(eventType int32, x, y int32, button int32) MouseEvent
	DestroyMouseEvent(e MouseEvent)
	CreateScrollEvent(eventType int32, deltaX, deltaY int32) ScrollEvent
	DestroyScrollEvent(e ScrollEvent)

	// Bitmap
	CreateEmptyBitmap() Bitmap
	CreateBitmap(width, height uint32, format uint32) Bitmap
	CreateBitmapFromPixels(width, height uint32, format uint32, rowBytes uint32, pixels []byte) Bitmap
	CreateBitmapFromCopy(b Bitmap) Bitmap
	DestroyBitmap(b Bitmap)
	BitmapGetWidth(b Bitmap) uint32
	BitmapGetHeight(b Bitmap) uint32
	BitmapGetFormat(b Bitmap) uint32
	BitmapGetBpp(b Bitmap) uint32
	BitmapGetRowBytes(b Bitmap) uint32
	BitmapGetSize(b Bitmap) uint64
	BitmapOwnsPixels(b Bitmap) bool
	BitmapLockPixels(b Bitmap) uintptr
	BitmapUnlockPixels(b Bitmap)
	BitmapIsEmpty(b Bitmap) bool
	BitmapErase(b Bitmap)
	BitmapWritePNG(b Bitmap, path string) bool
	BitmapSwapRedBlueChannels(b Bitmap)

	// Surface
	SurfaceGetWidth(s Surface) uint32
	SurfaceGetHeight(s Surface) uint32
	SurfaceGetRowBytes(s Surface) uint32
	SurfaceGetSize(s Surface) uint64
	SurfaceLockPixels(s Surface) uintptr
	SurfaceUnlockPixels(s Surface)
	SurfaceResize(s Surface, width, height uint32)
	SurfaceGetUserData(s Surface) uintptr
	BitmapSurfaceGetBitmap(s Surface) Bitmap

	// JavaScriptCore
	ViewLockJSContext(v View) JSContext
	ViewUnlockJSContext(v View)
	JSContextGetGlobalObject(ctx JSContext) JSObject
	JSClassCreate(name string, call HostFunc, finalize FinalizeFunc) JSClass
	JSClassRelease(c JSClass)
	JSObjectMake(ctx JSContext, class JSClass, private uintptr) JSObject
	JSObjectGetPrivate(o JSObject) uintptr
	JSObjectSetProperty(ctx JSContext, o JSObject, name string, value JSValue) (exception JSValue)
	JSValueGetType(ctx JSContext, v JSValue) JSType
	JSValueToNumber(ctx JSContext, v JSValue) float64
	JSValueToBoolean(ctx JSContext, v JSValue) bool
	JSValueToString(ctx JSContext, v JSValue) string
	JSValueMakeUndefined(ctx JSContext) JSValue
	JSValueMakeNull(ctx JSContext) JSValue
	JSValueMakeBoolean(ctx JSContext, b bool) JSValue
	JSValueMakeNumber(ctx JSContext, n float64) JSValue
	JSValueMakeString(ctx JSContext, s string) JSValue

	// Platform
	PlatformSetLogger(l LoggerFuncs)
	PlatformSetClipboard(c ClipboardFuncs)
	PlatformSetFileSystem(fs FileSystemFuncs)
	PlatformSetSurfaceDefinition(s SurfaceFuncs)
	EnablePlatformFontLoader()
	EnablePlatformFileSystem(baseDir String)
	EnableDefaultLogger(logPath String)
}
