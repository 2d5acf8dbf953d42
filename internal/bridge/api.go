// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package bridge

import (
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

// lib forwards every call to the resolved symbols.
type lib struct{}

var _ capi.API = lib{}

var emptyCString byte

func (lib) CreateString(s string) capi.String {
	if s == "" {
		return ulCreateStringUTF8(&emptyCString, 0)
	}
	return ulCreateStringUTF8(unsafe.StringData(s), uintptr(len(s)))
}

func (lib) CreateStringFromCopy(s capi.String) capi.String { return ulCreateStringFromCopy(s) }
func (lib) DestroyString(s capi.String)                    { ulDestroyString(s) }

// StringData copies the UTF-8 bytes out of native memory.
func (lib) StringData(s capi.String) []byte {
	p, n := ulStringGetData(s), ulStringGetLength(s)
	if p == 0 || n == 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
	return out
}

func (lib) StringLength(s capi.String) int    { return int(ulStringGetLength(s)) }
func (lib) StringIsEmpty(s capi.String) bool  { return ulStringIsEmpty(s) }
func (lib) StringAssign(dst, src capi.String) { ulStringAssignString(dst, src) }

func (lib) CreateBufferFromCopy(data []byte) capi.Buffer {
	return ulCreateBufferFromCopy(data, uintptr(len(data)))
}

func (lib) CreateConfig() capi.Config   { return ulCreateConfig() }
func (lib) DestroyConfig(c capi.Config) { ulDestroyConfig(c) }

func (lib) ConfigSetString(c capi.Config, key capi.ConfigKey, value capi.String) {
	configString[key](c, value)
}

func (lib) ConfigSetBool(c capi.Config, key capi.ConfigKey, value bool) {
	configBool[key](c, value)
}

func (lib) ConfigSetUint(c capi.Config, key capi.ConfigKey, value uint32) {
	configUint[key](c, value)
}

func (lib) ConfigSetFloat(c capi.Config, key capi.ConfigKey, value float64) {
	configFloat[key](c, value)
}

func (lib) CreateViewConfig() capi.ViewConfig   { return ulCreateViewConfig() }
func (lib) DestroyViewConfig(c capi.ViewConfig) { ulDestroyViewConfig(c) }

func (lib) ViewConfigSetString(c capi.ViewConfig, key capi.ViewConfigKey, value capi.String) {
	viewConfigString[key](c, value)
}

func (lib) ViewConfigSetBool(c capi.ViewConfig, key capi.ViewConfigKey, value bool) {
	viewConfigBool[key](c, value)
}

func (lib) ViewConfigSetFloat(c capi.ViewConfig, key capi.ViewConfigKey, value float64) {
	viewConfigFloat[key](c, value)
}

func (lib) CreateSettings() capi.Settings   { return ulCreateSettings() }
func (lib) DestroySettings(s capi.Settings) { ulDestroySettings(s) }

func (lib) SettingsSetString(s capi.Settings, key capi.SettingsKey, value capi.String) {
	settingsString[key](s, value)
}

func (lib) SettingsSetBool(s capi.Settings, key capi.SettingsKey, value bool) {
	settingsBool[key](s, value)
}

func (lib) CreateApp(s capi.Settings, c capi.Config) capi.App { return ulCreateApp(s, c) }
func (lib) DestroyApp(a capi.App)                             { ulDestroyApp(a) }

func (lib) AppSetUpdateCallback(a capi.App, fn capi.VoidFunc, userData uintptr) {
	ulAppSetUpdateCallback(a, voidCallback(fn), userData)
}

func (lib) AppIsRunning(a capi.App) bool              { return ulAppIsRunning(a) }
func (lib) AppGetMainMonitor(a capi.App) capi.Monitor { return ulAppGetMainMonitor(a) }
func (lib) AppGetRenderer(a capi.App) capi.Renderer   { return ulAppGetRenderer(a) }
func (lib) AppRun(a capi.App)                         { ulAppRun(a) }
func (lib) AppQuit(a capi.App)                        { ulAppQuit(a) }

func (lib) MonitorGetScale(m capi.Monitor) float64 { return ulMonitorGetScale(m) }
func (lib) MonitorGetWidth(m capi.Monitor) uint32  { return ulMonitorGetWidth(m) }
func (lib) MonitorGetHeight(m capi.Monitor) uint32 { return ulMonitorGetHeight(m) }

func (lib) CreateWindow(m capi.Monitor, width, height uint32, fullscreen bool, flags uint32) capi.Window {
	return ulCreateWindow(m, width, height, fullscreen, flags)
}

func (lib) DestroyWindow(w capi.Window) { ulDestroyWindow(w) }

func (lib) WindowSetCloseCallback(w capi.Window, fn capi.WindowFunc, userData uintptr) {
	ulWindowSetCloseCallback(w, windowCallback(fn), userData)
}

func (lib) WindowSetResizeCallback(w capi.Window, fn capi.ResizeFunc, userData uintptr) {
	ulWindowSetResizeCallback(w, resizeCallback(fn), userData)
}

func (lib) WindowGetScreenWidth(w capi.Window) uint32   { return ulWindowGetScreenWidth(w) }
func (lib) WindowGetScreenHeight(w capi.Window) uint32  { return ulWindowGetScreenHeight(w) }
func (lib) WindowGetWidth(w capi.Window) uint32         { return ulWindowGetWidth(w) }
func (lib) WindowGetHeight(w capi.Window) uint32        { return ulWindowGetHeight(w) }
func (lib) WindowMoveTo(w capi.Window, x, y int32)      { ulWindowMoveTo(w, x, y) }
func (lib) WindowMoveToCenter(w capi.Window)            { ulWindowMoveToCenter(w) }
func (lib) WindowGetPositionX(w capi.Window) int32      { return ulWindowGetPositionX(w) }
func (lib) WindowGetPositionY(w capi.Window) int32      { return ulWindowGetPositionY(w) }
func (lib) WindowIsFullscreen(w capi.Window) bool       { return ulWindowIsFullscreen(w) }
func (lib) WindowGetScale(w capi.Window) float64        { return ulWindowGetScale(w) }
func (lib) WindowSetTitle(w capi.Window, title string)  { ulWindowSetTitle(w, title) }
func (lib) WindowSetCursor(w capi.Window, cursor int32) { ulWindowSetCursor(w, cursor) }
func (lib) WindowShow(w capi.Window)                    { ulWindowShow(w) }
func (lib) WindowHide(w capi.Window)                    { ulWindowHide(w) }
func (lib) WindowIsVisible(w capi.Window) bool          { return ulWindowIsVisible(w) }
func (lib) WindowClose(w capi.Window)                   { ulWindowClose(w) }

func (lib) CreateOverlay(w capi.Window, width, height uint32, x, y int32) capi.Overlay {
	return ulCreateOverlay(w, width, height, x, y)
}

func (lib) CreateOverlayWithView(w capi.Window, v capi.View, x, y int32) capi.Overlay {
	return ulCreateOverlayWithView(w, v, x, y)
}

func (lib) DestroyOverlay(o capi.Overlay)                      { ulDestroyOverlay(o) }
func (lib) OverlayGetView(o capi.Overlay) capi.View            { return ulOverlayGetView(o) }
func (lib) OverlayGetWidth(o capi.Overlay) uint32              { return ulOverlayGetWidth(o) }
func (lib) OverlayGetHeight(o capi.Overlay) uint32             { return ulOverlayGetHeight(o) }
func (lib) OverlayGetX(o capi.Overlay) int32                   { return ulOverlayGetX(o) }
func (lib) OverlayGetY(o capi.Overlay) int32                   { return ulOverlayGetY(o) }
func (lib) OverlayMoveTo(o capi.Overlay, x, y int32)           { ulOverlayMoveTo(o, x, y) }
func (lib) OverlayResize(o capi.Overlay, width, height uint32) { ulOverlayResize(o, width, height) }
func (lib) OverlayIsHidden(o capi.Overlay) bool                { return ulOverlayIsHidden(o) }
func (lib) OverlayHide(o capi.Overlay)                         { ulOverlayHide(o) }
func (lib) OverlayShow(o capi.Overlay)                         { ulOverlayShow(o) }
func (lib) OverlayHasFocus(o capi.Overlay) bool                { return ulOverlayHasFocus(o) }
func (lib) OverlayFocus(o capi.Overlay)                        { ulOverlayFocus(o) }
func (lib) OverlayUnfocus(o capi.Overlay)                      { ulOverlayUnfocus(o) }

func (lib) CreateRenderer(c capi.Config) capi.Renderer       { return ulCreateRenderer(c) }
func (lib) DestroyRenderer(r capi.Renderer)                  { ulDestroyRenderer(r) }
func (lib) Update(r capi.Renderer)                           { ulUpdate(r) }
func (lib) RefreshDisplay(r capi.Renderer, displayID uint32) { ulRefreshDisplay(r, displayID) }
func (lib) Render(r capi.Renderer)                           { ulRender(r) }
func (lib) PurgeMemory(r capi.Renderer)                      { ulPurgeMemory(r) }
func (lib) LogMemoryUsage(r capi.Renderer)                   { ulLogMemoryUsage(r) }

func (lib) CreateSession(r capi.Renderer, persistent bool, name capi.String) capi.Session {
	return ulCreateSession(r, persistent, name)
}

func (lib) DestroySession(s capi.Session)                 { ulDestroySession(s) }
func (lib) DefaultSession(r capi.Renderer) capi.Session   { return ulDefaultSession(r) }
func (lib) SessionIsPersistent(s capi.Session) bool       { return ulSessionIsPersistent(s) }
func (lib) SessionGetName(s capi.Session) capi.String     { return ulSessionGetName(s) }
func (lib) SessionGetID(s capi.Session) uint64            { return ulSessionGetId(s) }
func (lib) SessionGetDiskPath(s capi.Session) capi.String { return ulSessionGetDiskPath(s) }

func (lib) CreateView(r capi.Renderer, width, height uint32, vc capi.ViewConfig, s capi.Session) capi.View {
	return ulCreateView(r, width, height, vc, s)
}

func (lib) DestroyView(v capi.View)                       { ulDestroyView(v) }
func (lib) ViewGetURL(v capi.View) capi.String            { return ulViewGetURL(v) }
func (lib) ViewGetTitle(v capi.View) capi.String          { return ulViewGetTitle(v) }
func (lib) ViewGetWidth(v capi.View) uint32               { return ulViewGetWidth(v) }
func (lib) ViewGetHeight(v capi.View) uint32              { return ulViewGetHeight(v) }
func (lib) ViewGetDeviceScale(v capi.View) float64        { return ulViewGetDeviceScale(v) }
func (lib) ViewSetDeviceScale(v capi.View, scale float64) { ulViewSetDeviceScale(v, scale) }
func (lib) ViewIsAccelerated(v capi.View) bool            { return ulViewIsAccelerated(v) }
func (lib) ViewIsTransparent(v capi.View) bool            { return ulViewIsTransparent(v) }
func (lib) ViewIsLoading(v capi.View) bool                { return ulViewIsLoading(v) }
func (lib) ViewGetSurface(v capi.View) capi.Surface       { return ulViewGetSurface(v) }
func (lib) ViewLoadHTML(v capi.View, html capi.String)    { ulViewLoadHTML(v, html) }
func (lib) ViewLoadURL(v capi.View, url capi.String)      { ulViewLoadURL(v, url) }
func (lib) ViewResize(v capi.View, width, height uint32)  { ulViewResize(v, width, height) }

// ViewEvaluateScript returns strings owned by the view.
func (lib) ViewEvaluateScript(v capi.View, js capi.String) (result, exception capi.String) {
	result = ulViewEvaluateScript(v, js, &exception)
	return result, exception
}

func (lib) ViewCanGoBack(v capi.View) bool                      { return ulViewCanGoBack(v) }
func (lib) ViewCanGoForward(v capi.View) bool                   { return ulViewCanGoForward(v) }
func (lib) ViewGoBack(v capi.View)                              { ulViewGoBack(v) }
func (lib) ViewGoForward(v capi.View)                           { ulViewGoForward(v) }
func (lib) ViewGoToHistoryOffset(v capi.View, offset int32)     { ulViewGoToHistoryOffset(v, offset) }
func (lib) ViewReload(v capi.View)                              { ulViewReload(v) }
func (lib) ViewStop(v capi.View)                                { ulViewStop(v) }
func (lib) ViewFocus(v capi.View)                               { ulViewFocus(v) }
func (lib) ViewUnfocus(v capi.View)                             { ulViewUnfocus(v) }
func (lib) ViewHasFocus(v capi.View) bool                       { return ulViewHasFocus(v) }
func (lib) ViewHasInputFocus(v capi.View) bool                  { return ulViewHasInputFocus(v) }
func (lib) ViewFireKeyEvent(v capi.View, e capi.KeyEvent)       { ulViewFireKeyEvent(v, e) }
func (lib) ViewFireMouseEvent(v capi.View, e capi.MouseEvent)   { ulViewFireMouseEvent(v, e) }
func (lib) ViewFireScrollEvent(v capi.View, e capi.ScrollEvent) { ulViewFireScrollEvent(v, e) }
func (lib) ViewSetNeedsPaint(v capi.View, needsPaint bool)      { ulViewSetNeedsPaint(v, needsPaint) }
func (lib) ViewGetNeedsPaint(v capi.View) bool                  { return ulViewGetNeedsPaint(v) }

func (lib) ViewSetFrameCallback(v capi.View, ev capi.FrameEvent, fn capi.FrameFunc, userData uintptr) {
	frameSetters[ev](v, frameCallback(fn), userData)
}

func (lib) ViewSetStringCallback(v capi.View, ev capi.StringEvent, fn capi.StringFunc, userData uintptr) {
	stringSetters[ev](v, stringCallback(fn), userData)
}

func (lib) ViewSetUpdateHistoryCallback(v capi.View, fn capi.ViewFunc, userData uintptr) {
	ulViewSetUpdateHistoryCallback(v, viewCallback(fn), userData)
}

func (lib) ViewSetChangeCursorCallback(v capi.View, fn capi.CursorFunc, userData uintptr) {
	ulViewSetChangeCursorCallback(v, cursorCallback(fn), userData)
}

func (lib) ViewSetFailLoadingCallback(v capi.View, fn capi.FailLoadingFunc, userData uintptr) {
	ulViewSetFailLoadingCallback(v, failLoadingCallback(fn), userData)
}

func (lib) ViewSetAddConsoleMessageCallback(v capi.View, fn capi.ConsoleFunc, userData uintptr) {
	ulViewSetAddConsoleMessageCallback(v, consoleCallback(fn), userData)
}

func (lib) ViewSetCreateChildViewCallback(v capi.View, fn capi.CreateChildFunc, userData uintptr) {
	ulViewSetCreateChildViewCallback(v, createChildCallback(fn), userData)
}

func (lib) CreateKeyEvent(eventType int32, modifiers uint32, virtualKeyCode, nativeKeyCode int32, text, unmodifiedText capi.String, isKeypad, isAutoRepeat, isSystemKey bool) capi.KeyEvent {
	return ulCreateKeyEvent(eventType, modifiers, virtualKeyCode, nativeKeyCode, text, unmodifiedText, isKeypad, isAutoRepeat, isSystemKey)
}

func (lib) DestroyKeyEvent(e capi.KeyEvent) { ulDestroyKeyEvent(e) }

func (lib) CreateMouseEvent(eventType int32, x, y int32, button int32) capi.MouseEvent {
	return ulCreateMouseEvent(eventType, x, y, button)
}

func (lib) DestroyMouseEvent(e capi.MouseEvent) { ulDestroyMouseEvent(e) }

func (lib) CreateScrollEvent(eventType int32, deltaX, deltaY int32) capi.ScrollEvent {
	return ulCreateScrollEvent(eventType, deltaX, deltaY)
}

func (lib) DestroyScrollEvent(e capi.ScrollEvent) { ulDestroyScrollEvent(e) }

func (lib) CreateEmptyBitmap() capi.Bitmap { return ulCreateEmptyBitmap() }

func (lib) CreateBitmap(width, height uint32, format uint32) capi.Bitmap {
	return ulCreateBitmap(width, height, format)
}

// CreateBitmapFromPixels always asks the library to copy pixels.
func (lib) CreateBitmapFromPixels(width, height uint32, format uint32, rowBytes uint32, pixels []byte) capi.Bitmap {
	return ulCreateBitmapFromPixels(width, height, format, rowBytes, pixels, uintptr(len(pixels)), true)
}

func (lib) CreateBitmapFromCopy(b capi.Bitmap) capi.Bitmap { return ulCreateBitmapFromCopy(b) }
func (lib) DestroyBitmap(b capi.Bitmap)                    { ulDestroyBitmap(b) }
func (lib) BitmapGetWidth(b capi.Bitmap) uint32            { return ulBitmapGetWidth(b) }
func (lib) BitmapGetHeight(b capi.Bitmap) uint32           { return ulBitmapGetHeight(b) }
func (lib) BitmapGetFormat(b capi.Bitmap) uint32           { return ulBitmapGetFormat(b) }
func (lib) BitmapGetBpp(b capi.Bitmap) uint32              { return ulBitmapGetBpp(b) }
func (lib) BitmapGetRowBytes(b capi.Bitmap) uint32         { return ulBitmapGetRowBytes(b) }
func (lib) BitmapGetSize(b capi.Bitmap) uint64             { return ulBitmapGetSize(b) }
func (lib) BitmapOwnsPixels(b capi.Bitmap) bool            { return ulBitmapOwnsPixels(b) }
func (lib) BitmapLockPixels(b capi.Bitmap) uintptr         { return ulBitmapLockPixels(b) }
func (lib) BitmapUnlockPixels(b capi.Bitmap)               { ulBitmapUnlockPixels(b) }
func (lib) BitmapIsEmpty(b capi.Bitmap) bool               { return ulBitmapIsEmpty(b) }
func (lib) BitmapErase(b capi.Bitmap)                      { ulBitmapErase(b) }
func (lib) BitmapWritePNG(b capi.Bitmap, path string) bool { return ulBitmapWritePNG(b, path) }
func (lib) BitmapSwapRedBlueChannels(b capi.Bitmap)        { ulBitmapSwapRedBlueChannels(b) }

func (lib) SurfaceGetWidth(s capi.Surface) uint32              { return ulSurfaceGetWidth(s) }
func (lib) SurfaceGetHeight(s capi.Surface) uint32             { return ulSurfaceGetHeight(s) }
func (lib) SurfaceGetRowBytes(s capi.Surface) uint32           { return ulSurfaceGetRowBytes(s) }
func (lib) SurfaceGetSize(s capi.Surface) uint64               { return ulSurfaceGetSize(s) }
func (lib) SurfaceLockPixels(s capi.Surface) uintptr           { return ulSurfaceLockPixels(s) }
func (lib) SurfaceUnlockPixels(s capi.Surface)                 { ulSurfaceUnlockPixels(s) }
func (lib) SurfaceResize(s capi.Surface, width, height uint32) { ulSurfaceResize(s, width, height) }
func (lib) SurfaceGetUserData(s capi.Surface) uintptr          { return ulSurfaceGetUserData(s) }
func (lib) BitmapSurfaceGetBitmap(s capi.Surface) capi.Bitmap  { return ulBitmapSurfaceGetBitmap(s) }

func (lib) ViewLockJSContext(v capi.View) capi.JSContext { return ulViewLockJSContext(v) }
func (lib) ViewUnlockJSContext(v capi.View)              { ulViewUnlockJSContext(v) }

func (lib) PlatformSetLogger(l capi.LoggerFuncs)             { setLogger(newLoggerTable(l)) }
func (lib) PlatformSetClipboard(c capi.ClipboardFuncs)       { setClipboard(newClipboardTable(c)) }
func (lib) PlatformSetFileSystem(f capi.FileSystemFuncs)     { setFileSystem(newFileSystemTable(f)) }
func (lib) PlatformSetSurfaceDefinition(s capi.SurfaceFuncs) { setSurfaceDefinition(newSurfaceDefinitionTable(s)) }
func (lib) EnablePlatformFontLoader()                        { ulEnablePlatformFontLoader() }
func (lib) EnablePlatformFileSystem(baseDir capi.String)     { ulEnablePlatformFileSystem(baseDir) }
func (lib) EnableDefaultLogger(logPath capi.String)          { ulEnableDefaultLogger(logPath) }
