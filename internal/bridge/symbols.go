// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package bridge

import (
	"fmt"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Callback parameters are raw function pointers (see callbacks.go).
var (
	ulCreateStringUTF8     func(data *byte, length uintptr) capi.String
	ulCreateStringFromCopy func(s capi.String) capi.String
	ulDestroyString        func(s capi.String)
	ulStringGetData        func(s capi.String) uintptr
	ulStringGetLength      func(s capi.String) uintptr
	ulStringIsEmpty        func(s capi.String) bool
	ulStringAssignString   func(dst, src capi.String)
	ulCreateBufferFromCopy func(data []byte, size uintptr) capi.Buffer

	ulCreateConfig      func() capi.Config
	ulDestroyConfig     func(c capi.Config)
	ulCreateViewConfig  func() capi.ViewConfig
	ulDestroyViewConfig func(c capi.ViewConfig)
	ulCreateSettings    func() capi.Settings
	ulDestroySettings   func(s capi.Settings)

	ulCreateApp            func(s capi.Settings, c capi.Config) capi.App
	ulDestroyApp           func(a capi.App)
	ulAppSetUpdateCallback func(a capi.App, cb, userData uintptr)
	ulAppIsRunning         func(a capi.App) bool
	ulAppGetMainMonitor    func(a capi.App) capi.Monitor
	ulAppGetRenderer       func(a capi.App) capi.Renderer
	ulAppRun               func(a capi.App)
	ulAppQuit              func(a capi.App)

	ulMonitorGetScale  func(m capi.Monitor) float64
	ulMonitorGetWidth  func(m capi.Monitor) uint32
	ulMonitorGetHeight func(m capi.Monitor) uint32

	ulCreateWindow            func(m capi.Monitor, width, height uint32, fullscreen bool, flags uint32) capi.Window
	ulDestroyWindow           func(w capi.Window)
	ulWindowSetCloseCallback  func(w capi.Window, cb, userData uintptr)
	ulWindowSetResizeCallback func(w capi.Window, cb, userData uintptr)
	ulWindowGetScreenWidth    func(w capi.Window) uint32
	ulWindowGetScreenHeight   func(w capi.Window) uint32
	ulWindowGetWidth          func(w capi.Window) uint32
	ulWindowGetHeight         func(w capi.Window) uint32
	ulWindowMoveTo            func(w capi.Window, x, y int32)
	ulWindowMoveToCenter      func(w capi.Window)
	ulWindowGetPositionX      func(w capi.Window) int32
	ulWindowGetPositionY      func(w capi.Window) int32
	ulWindowIsFullscreen      func(w capi.Window) bool
	ulWindowGetScale          func(w capi.Window) float64
	ulWindowSetTitle          func(w capi.Window, title string)
	ulWindowSetCursor         func(w capi.Window, cursor int32)
	ulWindowShow              func(w capi.Window)
	ulWindowHide              func(w capi.Window)
	ulWindowIsVisible         func(w capi.Window) bool
	ulWindowClose             func(w capi.Window)

	ulCreateOverlay         func(w capi.Window, width, height uint32, x, y int32) capi.Overlay
	ulCreateOverlayWithView func(w capi.Window, v capi.View, x, y int32) capi.Overlay
	ulDestroyOverlay        func(o capi.Overlay)
	ulOverlayGetView        func(o capi.Overlay) capi.View
	ulOverlayGetWidth       func(o capi.Overlay) uint32
	ulOverlayGetHeight      func(o capi.Overlay) uint32
	ulOverlayGetX           func(o capi.Overlay) int32
	ulOverlayGetY           func(o capi.Overlay) int32
	ulOverlayMoveTo         func(o capi.Overlay, x, y int32)
	ulOverlayResize         func(o capi.Overlay, width, height uint32)
	ulOverlayIsHidden       func(o capi.Overlay) bool
	ulOverlayHide           func(o capi.Overlay)
	ulOverlayShow           func(o capi.Overlay)
	ulOverlayHasFocus       func(o capi.Overlay) bool
	ulOverlayFocus          func(o capi.Overlay)
	ulOverlayUnfocus        func(o capi.Overlay)

	ulCreateRenderer  func(c capi.Config) capi.Renderer
	ulDestroyRenderer func(r capi.Renderer)
	ulUpdate          func(r capi.Renderer)
	ulRefreshDisplay  func(r capi.Renderer, displayID uint32)
	ulRender          func(r capi.Renderer)
	ulPurgeMemory     func(r capi.Renderer)
	ulLogMemoryUsage  func(r capi.Renderer)

	ulCreateSession       func(r capi.Renderer, persistent bool, name capi.String) capi.Session
	ulDestroySession      func(s capi.Session)
	ulDefaultSession      func(r capi.Renderer) capi.Session
	ulSessionIsPersistent func(s capi.Session) bool
	ulSessionGetName      func(s capi.Session) capi.String
	ulSessionGetId        func(s capi.Session) uint64
	ulSessionGetDiskPath  func(s capi.Session) capi.String

	ulCreateView            func(r capi.Renderer, width, height uint32, vc capi.ViewConfig, s capi.Session) capi.View
	ulDestroyView           func(v capi.View)
	ulViewGetURL            func(v capi.View) capi.String
	ulViewGetTitle          func(v capi.View) capi.String
	ulViewGetWidth          func(v capi.View) uint32
	ulViewGetHeight         func(v capi.View) uint32
	ulViewGetDeviceScale    func(v capi.View) float64
	ulViewSetDeviceScale    func(v capi.View, scale float64)
	ulViewIsAccelerated     func(v capi.View) bool
	ulViewIsTransparent     func(v capi.View) bool
	ulViewIsLoading         func(v capi.View) bool
	ulViewGetSurface        func(v capi.View) capi.Surface
	ulViewLoadHTML          func(v capi.View, html capi.String)
	ulViewLoadURL           func(v capi.View, url capi.String)
	ulViewResize            func(v capi.View, width, height uint32)
	ulViewLockJSContext     func(v capi.View) capi.JSContext
	ulViewUnlockJSContext   func(v capi.View)
	ulViewEvaluateScript    func(v capi.View, js capi.String, exception *capi.String) capi.String
	ulViewCanGoBack         func(v capi.View) bool
	ulViewCanGoForward      func(v capi.View) bool
	ulViewGoBack            func(v capi.View)
	ulViewGoForward         func(v capi.View)
	ulViewGoToHistoryOffset func(v capi.View, offset int32)
	ulViewReload            func(v capi.View)
	ulViewStop              func(v capi.View)
	ulViewFocus             func(v capi.View)
	ulViewUnfocus           func(v capi.View)
	ulViewHasFocus          func(v capi.View) bool
	ulViewHasInputFocus     func(v capi.View) bool
	ulViewFireKeyEvent      func(v capi.View, e capi.KeyEvent)
	ulViewFireMouseEvent    func(v capi.View, e capi.MouseEvent)
	ulViewFireScrollEvent   func(v capi.View, e capi.ScrollEvent)
	ulViewSetNeedsPaint     func(v capi.View, needsPaint bool)
	ulViewGetNeedsPaint     func(v capi.View) bool

	ulViewSetUpdateHistoryCallback     func(v capi.View, cb, userData uintptr)
	ulViewSetChangeCursorCallback      func(v capi.View, cb, userData uintptr)
	ulViewSetFailLoadingCallback       func(v capi.View, cb, userData uintptr)
	ulViewSetAddConsoleMessageCallback func(v capi.View, cb, userData uintptr)
	ulViewSetCreateChildViewCallback   func(v capi.View, cb, userData uintptr)

	ulCreateKeyEvent     func(eventType int32, modifiers uint32, virtualKeyCode, nativeKeyCode int32, text, unmodifiedText capi.String, isKeypad, isAutoRepeat, isSystemKey bool) capi.KeyEvent
	ulDestroyKeyEvent    func(e capi.KeyEvent)
	ulCreateMouseEvent   func(eventType, x, y, button int32) capi.MouseEvent
	ulDestroyMouseEvent  func(e capi.MouseEvent)
	ulCreateScrollEvent  func(eventType, deltaX, deltaY int32) capi.ScrollEvent
	ulDestroyScrollEvent func(e capi.ScrollEvent)

	ulCreateEmptyBitmap         func() capi.Bitmap
	ulCreateBitmap              func(width, height, format uint32) capi.Bitmap
	ulCreateBitmapFromPixels    func(width, height, format, rowBytes uint32, pixels []byte, size uintptr, shouldCopy bool) capi.Bitmap
	ulCreateBitmapFromCopy      func(b capi.Bitmap) capi.Bitmap
	ulDestroyBitmap             func(b capi.Bitmap)
	ulBitmapGetWidth            func(b capi.Bitmap) uint32
	ulBitmapGetHeight           func(b capi.Bitmap) uint32
	ulBitmapGetFormat           func(b capi.Bitmap) uint32
	ulBitmapGetBpp              func(b capi.Bitmap) uint32
	ulBitmapGetRowBytes         func(b capi.Bitmap) uint32
	ulBitmapGetSize             func(b capi.Bitmap) uint64
	ulBitmapOwnsPixels          func(b capi.Bitmap) bool
	ulBitmapLockPixels          func(b capi.Bitmap) uintptr
	ulBitmapUnlockPixels        func(b capi.Bitmap)
	ulBitmapIsEmpty             func(b capi.Bitmap) bool
	ulBitmapErase               func(b capi.Bitmap)
	ulBitmapWritePNG            func(b capi.Bitmap, path string) bool
	ulBitmapSwapRedBlueChannels func(b capi.Bitmap)

	ulSurfaceGetWidth        func(s capi.Surface) uint32
	ulSurfaceGetHeight       func(s capi.Surface) uint32
	ulSurfaceGetRowBytes     func(s capi.Surface) uint32
	ulSurfaceGetSize         func(s capi.Surface) uint64
	ulSurfaceLockPixels      func(s capi.Surface) uintptr
	ulSurfaceUnlockPixels    func(s capi.Surface)
	ulSurfaceResize          func(s capi.Surface, width, height uint32)
	ulSurfaceGetUserData     func(s capi.Surface) uintptr
	ulBitmapSurfaceGetBitmap func(s capi.Surface) capi.Bitmap

	ulEnablePlatformFontLoader func()
	ulEnablePlatformFileSystem func(baseDir capi.String)
	ulEnableDefaultLogger      func(logPath capi.String)
)

type symbol struct {
	fptr any
	name string
}

func symbols() []symbol {
	return append([]symbol{
		{&ulCreateStringUTF8, "ulCreateStringUTF8"},
		{&ulCreateStringFromCopy, "ulCreateStringFromCopy"},
		{&ulDestroyString, "ulDestroyString"},
		{&ulStringGetData, "ulStringGetData"},
		{&ulStringGetLength, "ulStringGetLength"},
		{&ulStringIsEmpty, "ulStringIsEmpty"},
		{&ulStringAssignString, "ulStringAssignString"},
		{&ulCreateBufferFromCopy, "ulCreateBufferFromCopy"},

		{&ulCreateConfig, "ulCreateConfig"},
		{&ulDestroyConfig, "ulDestroyConfig"},
		{&ulCreateViewConfig, "ulCreateViewConfig"},
		{&ulDestroyViewConfig, "ulDestroyViewConfig"},
		{&ulCreateSettings, "ulCreateSettings"},
		{&ulDestroySettings, "ulDestroySettings"},

		{&ulCreateApp, "ulCreateApp"},
		{&ulDestroyApp, "ulDestroyApp"},
		{&ulAppSetUpdateCallback, "ulAppSetUpdateCallback"},
		{&ulAppIsRunning, "ulAppIsRunning"},
		{&ulAppGetMainMonitor, "ulAppGetMainMonitor"},
		{&ulAppGetRenderer, "ulAppGetRenderer"},
		{&ulAppRun, "ulAppRun"},
		{&ulAppQuit, "ulAppQuit"},

		{&ulMonitorGetScale, "ulMonitorGetScale"},
		{&ulMonitorGetWidth, "ulMonitorGetWidth"},
		{&ulMonitorGetHeight, "ulMonitorGetHeight"},

		{&ulCreateWindow, "ulCreateWindow"},
		{&ulDestroyWindow, "ulDestroyWindow"},
		{&ulWindowSetCloseCallback, "ulWindowSetCloseCallback"},
		{&ulWindowSetResizeCallback, "ulWindowSetResizeCallback"},
		{&ulWindowGetScreenWidth, "ulWindowGetScreenWidth"},
		{&ulWindowGetScreenHeight, "ulWindowGetScreenHeight"},
		{&ulWindowGetWidth, "ulWindowGetWidth"},
		{&ulWindowGetHeight, "ulWindowGetHeight"},
		{&ulWindowMoveTo, "ulWindowMoveTo"},
		{&ulWindowMoveToCenter, "ulWindowMoveToCenter"},
		{&ulWindowGetPositionX, "ulWindowGetPositionX"},
		{&ulWindowGetPositionY, "ulWindowGetPositionY"},
		{&ulWindowIsFullscreen, "ulWindowIsFullscreen"},
		{&ulWindowGetScale, "ulWindowGetScale"},
		{&ulWindowSetTitle, "ulWindowSetTitle"},
		{&ulWindowSetCursor, "ulWindowSetCursor"},
		{&ulWindowShow, "ulWindowShow"},
		{&ulWindowHide, "ulWindowHide"},
		{&ulWindowIsVisible, "ulWindowIsVisible"},
		{&ulWindowClose, "ulWindowClose"},

		{&ulCreateOverlay, "ulCreateOverlay"},
		{&ulCreateOverlayWithView, "ulCreateOverlayWithView"},
		{&ulDestroyOverlay, "ulDestroyOverlay"},
		{&ulOverlayGetView, "ulOverlayGetView"},
		{&ulOverlayGetWidth, "ulOverlayGetWidth"},
		{&ulOverlayGetHeight, "ulOverlayGetHeight"},
		{&ulOverlayGetX, "ulOverlayGetX"},
		{&ulOverlayGetY, "ulOverlayGetY"},
		{&ulOverlayMoveTo, "ulOverlayMoveTo"},
		{&ulOverlayResize, "ulOverlayResize"},
		{&ulOverlayIsHidden, "ulOverlayIsHidden"},
		{&ulOverlayHide, "ulOverlayHide"},
		{&ulOverlayShow, "ulOverlayShow"},
		{&ulOverlayHasFocus, "ulOverlayHasFocus"},
		{&ulOverlayFocus, "ulOverlayFocus"},
		{&ulOverlayUnfocus, "ulOverlayUnfocus"},

		{&ulCreateRenderer, "ulCreateRenderer"},
		{&ulDestroyRenderer, "ulDestroyRenderer"},
		{&ulUpdate, "ulUpdate"},
		{&ulRefreshDisplay, "ulRefreshDisplay"},
		{&ulRender, "ulRender"},
		{&ulPurgeMemory, "ulPurgeMemory"},
		{&ulLogMemoryUsage, "ulLogMemoryUsage"},

		{&ulCreateSession, "ulCreateSession"},
		{&ulDestroySession, "ulDestroySession"},
		{&ulDefaultSession, "ulDefaultSession"},
		{&ulSessionIsPersistent, "ulSessionIsPersistent"},
		{&ulSessionGetName, "ulSessionGetName"},
		{&ulSessionGetId, "ulSessionGetId"},
		{&ulSessionGetDiskPath, "ulSessionGetDiskPath"},

		{&ulCreateView, "ulCreateView"},
		{&ulDestroyView, "ulDestroyView"},
		{&ulViewGetURL, "ulViewGetURL"},
		{&ulViewGetTitle, "ulViewGetTitle"},
		{&ulViewGetWidth, "ulViewGetWidth"},
		{&ulViewGetHeight, "ulViewGetHeight"},
		{&ulViewGetDeviceScale, "ulViewGetDeviceScale"},
		{&ulViewSetDeviceScale, "ulViewSetDeviceScale"},
		{&ulViewIsAccelerated, "ulViewIsAccelerated"},
		{&ulViewIsTransparent, "ulViewIsTransparent"},
		{&ulViewIsLoading, "ulViewIsLoading"},
		{&ulViewGetSurface, "ulViewGetSurface"},
		{&ulViewLoadHTML, "ulViewLoadHTML"},
		{&ulViewLoadURL, "ulViewLoadURL"},
		{&ulViewResize, "ulViewResize"},
		{&ulViewLockJSContext, "ulViewLockJSContext"},
		{&ulViewUnlockJSContext, "ulViewUnlockJSContext"},
		{&ulViewEvaluateScript, "ulViewEvaluateScript"},
		{&ulViewCanGoBack, "ulViewCanGoBack"},
		{&ulViewCanGoForward, "ulViewCanGoForward"},
		{&ulViewGoBack, "ulViewGoBack"},
		{&ulViewGoForward, "ulViewGoForward"},
		{&ulViewGoToHistoryOffset, "ulViewGoToHistoryOffset"},
		{&ulViewReload, "ulViewReload"},
		{&ulViewStop, "ulViewStop"},
		{&ulViewFocus, "ulViewFocus"},
		{&ulViewUnfocus, "ulViewUnfocus"},
		{&ulViewHasFocus, "ulViewHasFocus"},
		{&ulViewHasInputFocus, "ulViewHasInputFocus"},
		{&ulViewFireKeyEvent, "ulViewFireKeyEvent"},
		{&ulViewFireMouseEvent, "ulViewFireMouseEvent"},
		{&ulViewFireScrollEvent, "ulViewFireScrollEvent"},
		{&ulViewSetNeedsPaint, "ulViewSetNeedsPaint"},
		{&ulViewGetNeedsPaint, "ulViewGetNeedsPaint"},
		{&ulViewSetUpdateHistoryCallback, "ulViewSetUpdateHistoryCallback"},
		{&ulViewSetChangeCursorCallback, "ulViewSetChangeCursorCallback"},
		{&ulViewSetFailLoadingCallback, "ulViewSetFailLoadingCallback"},
		{&ulViewSetAddConsoleMessageCallback, "ulViewSetAddConsoleMessageCallback"},
		{&ulViewSetCreateChildViewCallback, "ulViewSetCreateChildViewCallback"},

		{&ulCreateKeyEvent, "ulCreateKeyEvent"},
		{&ulDestroyKeyEvent, "ulDestroyKeyEvent"},
		{&ulCreateMouseEvent, "ulCreateMouseEvent"},
		{&ulDestroyMouseEvent, "ulDestroyMouseEvent"},
		{&ulCreateScrollEvent, "ulCreateScrollEvent"},
		{&ulDestroyScrollEvent, "ulDestroyScrollEvent"},

		{&ulCreateEmptyBitmap, "ulCreateEmptyBitmap"},
		{&ulCreateBitmap, "ulCreateBitmap"},
		{&ulCreateBitmapFromPixels, "ulCreateBitmapFromPixels"},
		{&ulCreateBitmapFromCopy, "ulCreateBitmapFromCopy"},
		{&ulDestroyBitmap, "ulDestroyBitmap"},
		{&ulBitmapGetWidth, "ulBitmapGetWidth"},
		{&ulBitmapGetHeight, "ulBitmapGetHeight"},
		{&ulBitmapGetFormat, "ulBitmapGetFormat"},
		{&ulBitmapGetBpp, "ulBitmapGetBpp"},
		{&ulBitmapGetRowBytes, "ulBitmapGetRowBytes"},
		{&ulBitmapGetSize, "ulBitmapGetSize"},
		{&ulBitmapOwnsPixels, "ulBitmapOwnsPixels"},
		{&ulBitmapLockPixels, "ulBitmapLockPixels"},
		{&ulBitmapUnlockPixels, "ulBitmapUnlockPixels"},
		{&ulBitmapIsEmpty, "ulBitmapIsEmpty"},
		{&ulBitmapErase, "ulBitmapErase"},
		{&ulBitmapWritePNG, "ulBitmapWritePNG"},
		{&ulBitmapSwapRedBlueChannels, "ulBitmapSwapRedBlueChannels"},

		{&ulSurfaceGetWidth, "ulSurfaceGetWidth"},
		{&ulSurfaceGetHeight, "ulSurfaceGetHeight"},
		{&ulSurfaceGetRowBytes, "ulSurfaceGetRowBytes"},
		{&ulSurfaceGetSize, "ulSurfaceGetSize"},
		{&ulSurfaceLockPixels, "ulSurfaceLockPixels"},
		{&ulSurfaceUnlockPixels, "ulSurfaceUnlockPixels"},
		{&ulSurfaceResize, "ulSurfaceResize"},
		{&ulSurfaceGetUserData, "ulSurfaceGetUserData"},
		{&ulBitmapSurfaceGetBitmap, "ulBitmapSurfaceGetBitmap"},

		{&ulEnablePlatformFontLoader, "ulEnablePlatformFontLoader"},
		{&ulEnablePlatformFileSystem, "ulEnablePlatformFileSystem"},
		{&ulEnableDefaultLogger, "ulEnableDefaultLogger"},
	}, append(platformSymbols(), jscSymbols()...)...)
}

// The keyed setters share one Go signature per value type.
var (
	configString     = map[capi.ConfigKey]func(capi.Config, capi.String){}
	configBool       = map[capi.ConfigKey]func(capi.Config, bool){}
	configUint       = map[capi.ConfigKey]func(capi.Config, uint32){}
	configFloat      = map[capi.ConfigKey]func(capi.Config, float64){}
	viewConfigString = map[capi.ViewConfigKey]func(capi.ViewConfig, capi.String){}
	viewConfigBool   = map[capi.ViewConfigKey]func(capi.ViewConfig, bool){}
	viewConfigFloat  = map[capi.ViewConfigKey]func(capi.ViewConfig, float64){}
	settingsString   = map[capi.SettingsKey]func(capi.Settings, capi.String){}
	settingsBool     = map[capi.SettingsKey]func(capi.Settings, bool){}
	frameSetters     = map[capi.FrameEvent]func(capi.View, uintptr, uintptr){}
	stringSetters    = map[capi.StringEvent]func(capi.View, uintptr, uintptr){}
)

func registerKeyed() []error {
	var errs []error
	reg := func(fptr any, name string) {
		if err := registerSymbol(fptr, name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	keyed(reg, configString, map[capi.ConfigKey]string{
		capi.ConfigCachePath:          "ulConfigSetCachePath",
		capi.ConfigResourcePathPrefix: "ulConfigSetResourcePathPrefix",
		capi.ConfigUserStylesheet:     "ulConfigSetUserStylesheet",
	})
	keyed(reg, configBool, map[capi.ConfigKey]string{
		capi.ConfigForceRepaint: "ulConfigSetForceRepaint",
	})
	keyed(reg, configUint, map[capi.ConfigKey]string{
		capi.ConfigFaceWinding:        "ulConfigSetFaceWinding",
		capi.ConfigFontHinting:        "ulConfigSetFontHinting",
		capi.ConfigMemoryCacheSize:    "ulConfigSetMemoryCacheSize",
		capi.ConfigPageCacheSize:      "ulConfigSetPageCacheSize",
		capi.ConfigOverrideRAMSize:    "ulConfigSetOverrideRAMSize",
		capi.ConfigMinLargeHeapSize:   "ulConfigSetMinLargeHeapSize",
		capi.ConfigMinSmallHeapSize:   "ulConfigSetMinSmallHeapSize",
		capi.ConfigNumRendererThreads: "ulConfigSetNumRendererThreads",
		capi.ConfigBitmapAlignment:    "ulConfigSetBitmapAlignment",
	})
	keyed(reg, configFloat, map[capi.ConfigKey]string{
		capi.ConfigFontGamma:           "ulConfigSetFontGamma",
		capi.ConfigAnimationTimerDelay: "ulConfigSetAnimationTimerDelay",
		capi.ConfigScrollTimerDelay:    "ulConfigSetScrollTimerDelay",
		capi.ConfigRecycleDelay:        "ulConfigSetRecycleDelay",
		capi.ConfigMaxUpdateTime:       "ulConfigSetMaxUpdateTime",
	})
	keyed(reg, viewConfigString, map[capi.ViewConfigKey]string{
		capi.ViewConfigFontFamilyStandard:  "ulViewConfigSetFontFamilyStandard",
		capi.ViewConfigFontFamilyFixed:     "ulViewConfigSetFontFamilyFixed",
		capi.ViewConfigFontFamilySerif:     "ulViewConfigSetFontFamilySerif",
		capi.ViewConfigFontFamilySansSerif: "ulViewConfigSetFontFamilySansSerif",
		capi.ViewConfigUserAgent:           "ulViewConfigSetUserAgent",
	})
	keyed(reg, viewConfigBool, map[capi.ViewConfigKey]string{
		capi.ViewConfigIsAccelerated:    "ulViewConfigSetIsAccelerated",
		capi.ViewConfigIsTransparent:    "ulViewConfigSetIsTransparent",
		capi.ViewConfigInitialFocus:     "ulViewConfigSetInitialFocus",
		capi.ViewConfigEnableImages:     "ulViewConfigSetEnableImages",
		capi.ViewConfigEnableJavaScript: "ulViewConfigSetEnableJavaScript",
	})
	keyed(reg, viewConfigFloat, map[capi.ViewConfigKey]string{
		capi.ViewConfigInitialDeviceScale: "ulViewConfigSetInitialDeviceScale",
	})
	keyed(reg, settingsString, map[capi.SettingsKey]string{
		capi.SettingsDeveloperName:  "ulSettingsSetDeveloperName",
		capi.SettingsAppName:        "ulSettingsSetAppName",
		capi.SettingsFileSystemPath: "ulSettingsSetFileSystemPath",
	})
	keyed(reg, settingsBool, map[capi.SettingsKey]string{
		capi.SettingsLoadShadersFromFileSystem: "ulSettingsSetLoadShadersFromFileSystem",
		capi.SettingsForceCPURenderer:          "ulSettingsSetForceCPURenderer",
	})
	keyed(reg, frameSetters, map[capi.FrameEvent]string{
		capi.BeginLoading:      "ulViewSetBeginLoadingCallback",
		capi.FinishLoading:     "ulViewSetFinishLoadingCallback",
		capi.WindowObjectReady: "ulViewSetWindowObjectReadyCallback",
		capi.DOMReady:          "ulViewSetDOMReadyCallback",
	})
	keyed(reg, stringSetters, map[capi.StringEvent]string{
		capi.ChangeTitle:   "ulViewSetChangeTitleCallback",
		capi.ChangeURL:     "ulViewSetChangeURLCallback",
		capi.ChangeTooltip: "ulViewSetChangeTooltipCallback",
	})
	return errs
}

func keyed[K comparable, F any](reg func(any, string), dst map[K]F, names map[K]string) {
	for k, name := range names {
		var fn F
		reg(&fn, name)
		dst[k] = fn
	}
}
