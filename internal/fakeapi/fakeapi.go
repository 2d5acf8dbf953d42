// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package fakeapi is an in-memory capi.API used by tests.
//
// It issues handles for every resource kind, counts create and destroy calls,
// and records ownership violations (double destroy, destroying a handle the
// library owns, destroying unknown handles) instead of crashing. The Fire*
// methods play the role of the native run loop and invoke registered
// callbacks with strings the fake owns and destroys once the callback returns.
package fakeapi

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Kind names a native resource kind.
type Kind string

const (
	KindString      Kind = "string"
	KindBuffer      Kind = "buffer"
	KindConfig      Kind = "config"
	KindViewConfig  Kind = "view_config"
	KindSettings    Kind = "settings"
	KindApp         Kind = "app"
	KindMonitor     Kind = "monitor"
	KindWindow      Kind = "window"
	KindOverlay     Kind = "overlay"
	KindRenderer    Kind = "renderer"
	KindSession     Kind = "session"
	KindView        Kind = "view"
	KindBitmap      Kind = "bitmap"
	KindSurface     Kind = "surface"
	KindKeyEvent    Kind = "key_event"
	KindMouseEvent  Kind = "mouse_event"
	KindScrollEvent Kind = "scroll_event"
	KindJSContext   Kind = "js_context"
	KindJSClass     Kind = "js_class"
	KindJSValue     Kind = "js_value"
)

// Event is an input event delivered to a view.
type Event struct {
	Kind   string
	Type   int32
	X, Y   int32
	Button int32
	VK     int32
	Mods   uint32
	Text   string
}

type slot[F any] struct {
	fn F
	ud uintptr
}

type object struct {
	kind     Kind
	alive    bool
	internal bool
	destroys int
	owned    []uintptr

	data []byte // string, buffer, bitmap pixels

	values map[int]any // config, view config, settings

	// app
	renderer capi.Renderer
	monitor  capi.Monitor
	running  bool
	update   slot[capi.VoidFunc]

	// window, overlay, view, bitmap geometry
	width, height uint32
	x, y          int32
	fullscreen    bool
	flags         uint32
	title         string
	cursor        int32
	visible       bool
	hidden        bool
	focused       bool
	window        capi.Window
	view          capi.View
	onClose       slot[capi.WindowFunc]
	onResize      slot[capi.ResizeFunc]

	// renderer
	defaultSession capi.Session
	updates        int
	renders        int
	refreshes      []uint32
	purges         int

	// session
	name       string
	persistent bool
	id         uint64

	// view
	url         string
	html        string
	scale       float64
	loading     bool
	needsPaint  bool
	history     []string
	historyPos  int
	surface     capi.Surface
	ctx         capi.JSContext
	events      []Event
	frame       [4]slot[capi.FrameFunc]
	text        [3]slot[capi.StringFunc]
	onHistory   slot[capi.ViewFunc]
	onCursor    slot[capi.CursorFunc]
	onFail      slot[capi.FailLoadingFunc]
	onConsole   slot[capi.ConsoleFunc]
	onChild     slot[capi.CreateChildFunc]
	stops       int
	reloads     int
	accelerated bool
	transparent bool

	// bitmap
	format   uint32
	rowBytes uint32
	locked   int
	bitmap   capi.Bitmap

	// surface backed by SurfaceFuncs
	custom   bool
	userData uintptr

	// event payload
	event Event

	// js
	global   capi.JSObject
	jsType   capi.JSType
	num      float64
	boolean  bool
	str      string
	props    map[string]capi.JSValue
	private  uintptr
	class    capi.JSClass
	call     capi.HostFunc
	finalize capi.FinalizeFunc
}

// ScriptResult is the canned outcome of EvaluateScript for a given script.
type ScriptResult struct {
	Result    string
	Exception string
}

// Lib is a fake native library. It is not safe for concurrent use, matching
// the single-threaded contract of the real one.
type Lib struct {
	next    uintptr
	objects map[uintptr]*object

	created    map[Kind]int
	destroyed  map[Kind]int
	violations []string

	// FailCreate makes the next create call of a kind return the null handle.
	FailCreate map[Kind]bool

	// ScriptResults maps a script to the result EvaluateScript returns.
	ScriptResults map[string]ScriptResult
	Scripts       []string

	logger     capi.LoggerFuncs
	clipboard  capi.ClipboardFuncs
	fileSystem capi.FileSystemFuncs
	surfaceDef capi.SurfaceFuncs

	FontLoaderEnabled bool
	FileSystemBaseDir string
	DefaultLogPath    string
	LoggerSet         bool
	ClipboardSet      bool
	FileSystemSet     bool

	SurfaceDefinitionSet bool

	sessionSeq uint64
}

// New returns an empty fake library.
func New() *Lib {
	return &Lib{
		next:          0x1000,
		objects:       make(map[uintptr]*object),
		created:       make(map[Kind]int),
		destroyed:     make(map[Kind]int),
		FailCreate:    make(map[Kind]bool),
		ScriptResults: make(map[string]ScriptResult),
	}
}

var _ capi.API = (*Lib)(nil)

func (l *Lib) alloc(kind Kind, internal bool) (uintptr, *object) {
	l.next += 0x10
	h := l.next
	o := &object{kind: kind, alive: true, internal: internal}
	l.objects[h] = o
	if !internal {
		l.created[kind]++
	}
	return h, o
}

// create allocates a user-owned object unless a failure was requested.
func (l *Lib) create(kind Kind) (uintptr, *object) {
	if l.FailCreate[kind] {
		delete(l.FailCreate, kind)
		return 0, nil
	}
	return l.alloc(kind, false)
}

func (l *Lib) get(h uintptr, kind Kind) *object {
	o, ok := l.objects[h]
	if !ok {
		l.violate("use of unknown %s handle %#x", kind, h)
		return &object{kind: kind, values: map[int]any{}}
	}
	if o.kind != kind {
		l.violate("use of %s handle %#x as %s", o.kind, h, kind)
	}
	if !o.alive {
		l.violate("use of destroyed %s handle %#x", kind, h)
	}
	return o
}

func (l *Lib) destroy(h uintptr, kind Kind) *object {
	o, ok := l.objects[h]
	if !ok {
		l.violate("destroy of unknown %s handle %#x", kind, h)
		return nil
	}
	o.destroys++
	if o.kind != kind {
		l.violate("destroy of %s handle %#x as %s", o.kind, h, kind)
		return nil
	}
	if !o.alive {
		l.violate("double destroy of %s handle %#x", kind, h)
		return nil
	}
	if o.internal {
		l.violate("destroy of library-owned %s handle %#x", kind, h)
		return nil
	}
	l.release(h, o)
	l.destroyed[kind]++
	return o
}

// release frees an object and everything it owns.
func (l *Lib) release(h uintptr, o *object) {
	o.alive = false
	if o.custom {
		l.surfaceDef.Destroy(o.userData)
	}
	for _, child := range o.owned {
		if c, ok := l.objects[child]; ok && c.alive {
			l.release(child, c)
		}
	}
	o.owned = nil
}

func (l *Lib) violate(format string, args ...any) {
	l.violations = append(l.violations, fmt.Sprintf(format, args...))
}

// Violations returns every ownership violation recorded so far.
func (l *Lib) Violations() []string { return append([]string(nil), l.violations...) }

// Created returns how many objects of a kind were created through the API.
func (l *Lib) Created(kind Kind) int { return l.created[kind] }

// Destroyed returns how many objects of a kind were destroyed through the API.
func (l *Lib) Destroyed(kind Kind) int { return l.destroyed[kind] }

// DestroyCalls returns how many destroy calls targeted h, valid or not.
func (l *Lib) DestroyCalls(h uintptr) int {
	if o, ok := l.objects[h]; ok {
		return o.destroys
	}
	return 0
}

// Alive reports whether h refers to a live object.
func (l *Lib) Alive(h uintptr) bool {
	o, ok := l.objects[h]
	return ok && o.alive
}

// Live counts live user-created objects of a kind.
func (l *Lib) Live(kind Kind) int {
	n := 0
	for _, o := range l.objects {
		if o.kind == kind && o.alive && !o.internal {
			n++
		}
	}
	return n
}

// nativeString issues a library-owned string that dies with parent, or with
// the returned release func when parent is zero.
func (l *Lib) nativeString(parent uintptr, s string) (capi.String, func()) {
	h, o := l.alloc(KindString, true)
	o.data = []byte(s)
	if parent != 0 {
		if p, ok := l.objects[parent]; ok {
			p.owned = append(p.owned, h)
		}
		return capi.String(h), func() {}
	}
	return capi.String(h), func() { o.alive = false }
}

// String

func (l *Lib) CreateString(s string) capi.String {
	h, o := l.create(KindString)
	if o != nil {
		o.data = []byte(s)
	}
	return capi.String(h)
}

func (l *Lib) CreateStringFromCopy(s capi.String) capi.String {
	src := l.get(uintptr(s), KindString)
	h, o := l.create(KindString)
	if o != nil {
		o.data = append([]byte(nil), src.data...)
	}
	return capi.String(h)
}

func (l *Lib) DestroyString(s capi.String) { l.destroy(uintptr(s), KindString) }

func (l *Lib) StringData(s capi.String) []byte {
	return append([]byte(nil), l.get(uintptr(s), KindString).data...)
}

func (l *Lib) StringLength(s capi.String) int { return len(l.get(uintptr(s), KindString).data) }

func (l *Lib) StringIsEmpty(s capi.String) bool { return len(l.get(uintptr(s), KindString).data) == 0 }

func (l *Lib) StringAssign(dst, src capi.String) {
	d := l.get(uintptr(dst), KindString)
	d.data = append([]byte(nil), l.get(uintptr(src), KindString).data...)
}

// NativeString returns the bytes held by any string handle, for assertions.
func (l *Lib) NativeString(s capi.String) string {
	if o, ok := l.objects[uintptr(s)]; ok {
		return string(o.data)
	}
	return ""
}

// Buffer

func (l *Lib) CreateBufferFromCopy(data []byte) capi.Buffer {
	h, o := l.create(KindBuffer)
	if o != nil {
		o.data = append([]byte(nil), data...)
	}
	return capi.Buffer(h)
}

// Config, ViewConfig, Settings

func (l *Lib) CreateConfig() capi.Config {
	h, o := l.create(KindConfig)
	if o != nil {
		o.values = map[int]any{}
	}
	return capi.Config(h)
}

func (l *Lib) DestroyConfig(c capi.Config) { l.destroy(uintptr(c), KindConfig) }

func (l *Lib) ConfigSetString(c capi.Config, key capi.ConfigKey, value capi.String) {
	l.get(uintptr(c), KindConfig).values[int(key)] = string(l.get(uintptr(value), KindString).data)
}

func (l *Lib) ConfigSetBool(c capi.Config, key capi.ConfigKey, value bool) {
	l.get(uintptr(c), KindConfig).values[int(key)] = value
}

func (l *Lib) ConfigSetUint(c capi.Config, key capi.ConfigKey, value uint32) {
	l.get(uintptr(c), KindConfig).values[int(key)] = value
}

func (l *Lib) ConfigSetFloat(c capi.Config, key capi.ConfigKey, value float64) {
	l.get(uintptr(c), KindConfig).values[int(key)] = value
}

// ConfigValue returns what a setter stored on a config.
func (l *Lib) ConfigValue(c capi.Config, key capi.ConfigKey) any {
	return l.get(uintptr(c), KindConfig).values[int(key)]
}

func (l *Lib) CreateViewConfig() capi.ViewConfig {
	h, o := l.create(KindViewConfig)
	if o != nil {
		o.values = map[int]any{}
	}
	return capi.ViewConfig(h)
}

func (l *Lib) DestroyViewConfig(c capi.ViewConfig) { l.destroy(uintptr(c), KindViewConfig) }

func (l *Lib) ViewConfigSetString(c capi.ViewConfig, key capi.ViewConfigKey, value capi.String) {
	l.get(uintptr(c), KindViewConfig).values[int(key)] = string(l.get(uintptr(value), KindString).data)
}

func (l *Lib) ViewConfigSetBool(c capi.ViewConfig, key capi.ViewConfigKey, value bool) {
	l.get(uintptr(c), KindViewConfig).values[int(key)] = value
}

func (l *Lib) ViewConfigSetFloat(c capi.ViewConfig, key capi.ViewConfigKey, value float64) {
	l.get(uintptr(c), KindViewConfig).values[int(key)] = value
}

func (l *Lib) CreateSettings() capi.Settings {
	h, o := l.create(KindSettings)
	if o != nil {
		o.values = map[int]any{}
	}
	return capi.Settings(h)
}

func (l *Lib) DestroySettings(s capi.Settings) { l.destroy(uintptr(s), KindSettings) }

func (l *Lib) SettingsSetString(s capi.Settings, key capi.SettingsKey, value capi.String) {
	l.get(uintptr(s), KindSettings).values[int(key)] = string(l.get(uintptr(value), KindString).data)
}

func (l *Lib) SettingsSetBool(s capi.Settings, key capi.SettingsKey, value bool) {
	l.get(uintptr(s), KindSettings).values[int(key)] = value
}

// SettingsValue returns what a setter stored on a settings object.
func (l *Lib) SettingsValue(s capi.Settings, key capi.SettingsKey) any {
	return l.get(uintptr(s), KindSettings).values[int(key)]
}

// App

func (l *Lib) CreateApp(s capi.Settings, c capi.Config) capi.App {
	if s != 0 {
		l.get(uintptr(s), KindSettings)
	}
	if c != 0 {
		l.get(uintptr(c), KindConfig)
	}
	h, o := l.create(KindApp)
	if o == nil {
		return 0
	}
	mh, m := l.alloc(KindMonitor, true)
	m.width, m.height, m.scale = 1920, 1080, 1.0
	rh, r := l.alloc(KindRenderer, true)
	r.defaultSession = l.newDefaultSession(rh, r)
	o.monitor, o.renderer = capi.Monitor(mh), capi.Renderer(rh)
	o.owned = append(o.owned, mh, rh)
	return capi.App(h)
}

func (l *Lib) DestroyApp(a capi.App) { l.destroy(uintptr(a), KindApp) }

func (l *Lib) AppSetUpdateCallback(a capi.App, fn capi.VoidFunc, userData uintptr) {
	l.get(uintptr(a), KindApp).update = slot[capi.VoidFunc]{fn, userData}
}

func (l *Lib) AppIsRunning(a capi.App) bool { return l.get(uintptr(a), KindApp).running }

func (l *Lib) AppGetMainMonitor(a capi.App) capi.Monitor { return l.get(uintptr(a), KindApp).monitor }

func (l *Lib) AppGetRenderer(a capi.App) capi.Renderer { return l.get(uintptr(a), KindApp).renderer }

// AppRun fires one update and returns; the fake has no real run loop.
func (l *Lib) AppRun(a capi.App) {
	o := l.get(uintptr(a), KindApp)
	o.running = true
	l.FireUpdate(a)
	o.running = false
}

func (l *Lib) AppQuit(a capi.App) { l.get(uintptr(a), KindApp).running = false }

// Monitor

func (l *Lib) MonitorGetScale(m capi.Monitor) float64 { return l.get(uintptr(m), KindMonitor).scale }

func (l *Lib) MonitorGetWidth(m capi.Monitor) uint32 { return l.get(uintptr(m), KindMonitor).width }

func (l *Lib) MonitorGetHeight(m capi.Monitor) uint32 { return l.get(uintptr(m), KindMonitor).height }

// Window

func (l *Lib) CreateWindow(m capi.Monitor, width, height uint32, fullscreen bool, flags uint32) capi.Window {
	l.get(uintptr(m), KindMonitor)
	h, o := l.create(KindWindow)
	if o == nil {
		return 0
	}
	o.monitor = m
	o.width, o.height = width, height
	o.fullscreen = fullscreen
	o.flags = flags
	o.visible = flags&(1<<4) == 0
	o.scale = 1.0
	return capi.Window(h)
}

func (l *Lib) DestroyWindow(w capi.Window) { l.destroy(uintptr(w), KindWindow) }

func (l *Lib) WindowSetCloseCallback(w capi.Window, fn capi.WindowFunc, userData uintptr) {
	l.get(uintptr(w), KindWindow).onClose = slot[capi.WindowFunc]{fn, userData}
}

func (l *Lib) WindowSetResizeCallback(w capi.Window, fn capi.ResizeFunc, userData uintptr) {
	l.get(uintptr(w), KindWindow).onResize = slot[capi.ResizeFunc]{fn, userData}
}

func (l *Lib) WindowGetScreenWidth(w capi.Window) uint32  { return l.get(uintptr(w), KindWindow).width }
func (l *Lib) WindowGetScreenHeight(w capi.Window) uint32 { return l.get(uintptr(w), KindWindow).height }
func (l *Lib) WindowGetWidth(w capi.Window) uint32        { return l.get(uintptr(w), KindWindow).width }
func (l *Lib) WindowGetHeight(w capi.Window) uint32       { return l.get(uintptr(w), KindWindow).height }

func (l *Lib) WindowMoveTo(w capi.Window, x, y int32) {
	o := l.get(uintptr(w), KindWindow)
	o.x, o.y = x, y
}

func (l *Lib) WindowMoveToCenter(w capi.Window) {
	o := l.get(uintptr(w), KindWindow)
	m := l.get(uintptr(o.monitor), KindMonitor)
	o.x = int32(m.width-o.width) / 2
	o.y = int32(m.height-o.height) / 2
}

func (l *Lib) WindowGetPositionX(w capi.Window) int32     { return l.get(uintptr(w), KindWindow).x }
func (l *Lib) WindowGetPositionY(w capi.Window) int32     { return l.get(uintptr(w), KindWindow).y }
func (l *Lib) WindowIsFullscreen(w capi.Window) bool      { return l.get(uintptr(w), KindWindow).fullscreen }
func (l *Lib) WindowGetScale(w capi.Window) float64       { return l.get(uintptr(w), KindWindow).scale }
func (l *Lib) WindowSetTitle(w capi.Window, title string) { l.get(uintptr(w), KindWindow).title = title }

func (l *Lib) WindowSetCursor(w capi.Window, cursor int32) {
	l.get(uintptr(w), KindWindow).cursor = cursor
}

func (l *Lib) WindowShow(w capi.Window)           { l.get(uintptr(w), KindWindow).visible = true }
func (l *Lib) WindowHide(w capi.Window)           { l.get(uintptr(w), KindWindow).visible = false }
func (l *Lib) WindowIsVisible(w capi.Window) bool { return l.get(uintptr(w), KindWindow).visible }

// WindowClose asks the window to close, which fires its close callback.
func (l *Lib) WindowClose(w capi.Window) { l.FireClose(w) }

// WindowTitle returns the title set on a window.
func (l *Lib) WindowTitle(w capi.Window) string { return l.get(uintptr(w), KindWindow).title }

// WindowCursor returns the cursor set on a window.
func (l *Lib) WindowCursor(w capi.Window) int32 { return l.get(uintptr(w), KindWindow).cursor }

// WindowFlags returns the flags a window was created with.
func (l *Lib) WindowFlags(w capi.Window) uint32 { return l.get(uintptr(w), KindWindow).flags }

// Overlay

func (l *Lib) CreateOverlay(w capi.Window, width, height uint32, x, y int32) capi.Overlay {
	l.get(uintptr(w), KindWindow)
	h, o := l.create(KindOverlay)
	if o == nil {
		return 0
	}
	vh, v := l.alloc(KindView, true)
	l.initView(vh, v, width, height)
	o.window, o.view = w, capi.View(vh)
	o.width, o.height, o.x, o.y = width, height, x, y
	o.owned = append(o.owned, vh)
	return capi.Overlay(h)
}

func (l *Lib) CreateOverlayWithView(w capi.Window, v capi.View, x, y int32) capi.Overlay {
	l.get(uintptr(w), KindWindow)
	vo := l.get(uintptr(v), KindView)
	h, o := l.create(KindOverlay)
	if o == nil {
		return 0
	}
	o.window, o.view = w, v
	o.width, o.height, o.x, o.y = vo.width, vo.height, x, y
	return capi.Overlay(h)
}

func (l *Lib) DestroyOverlay(o capi.Overlay) { l.destroy(uintptr(o), KindOverlay) }

func (l *Lib) OverlayGetView(o capi.Overlay) capi.View { return l.get(uintptr(o), KindOverlay).view }
func (l *Lib) OverlayGetWidth(o capi.Overlay) uint32   { return l.get(uintptr(o), KindOverlay).width }
func (l *Lib) OverlayGetHeight(o capi.Overlay) uint32  { return l.get(uintptr(o), KindOverlay).height }
func (l *Lib) OverlayGetX(o capi.Overlay) int32        { return l.get(uintptr(o), KindOverlay).x }
func (l *Lib) OverlayGetY(o capi.Overlay) int32        { return l.get(uintptr(o), KindOverlay).y }

func (l *Lib) OverlayMoveTo(o capi.Overlay, x, y int32) {
	ov := l.get(uintptr(o), KindOverlay)
	ov.x, ov.y = x, y
}

func (l *Lib) OverlayResize(o capi.Overlay, width, height uint32) {
	ov := l.get(uintptr(o), KindOverlay)
	ov.width, ov.height = width, height
	l.ViewResize(ov.view, width, height)
}

func (l *Lib) OverlayIsHidden(o capi.Overlay) bool { return l.get(uintptr(o), KindOverlay).hidden }
func (l *Lib) OverlayHide(o capi.Overlay)          { l.get(uintptr(o), KindOverlay).hidden = true }
func (l *Lib) OverlayShow(o capi.Overlay)          { l.get(uintptr(o), KindOverlay).hidden = false }
func (l *Lib) OverlayHasFocus(o capi.Overlay) bool { return l.get(uintptr(o), KindOverlay).focused }
func (l *Lib) OverlayFocus(o capi.Overlay)         { l.get(uintptr(o), KindOverlay).focused = true }
func (l *Lib) OverlayUnfocus(o capi.Overlay)       { l.get(uintptr(o), KindOverlay).focused = false }

// Renderer

func (l *Lib) CreateRenderer(c capi.Config) capi.Renderer {
	l.get(uintptr(c), KindConfig)
	h, o := l.create(KindRenderer)
	if o == nil {
		return 0
	}
	o.defaultSession = l.newDefaultSession(h, o)
	return capi.Renderer(h)
}

func (l *Lib) newDefaultSession(rh uintptr, r *object) capi.Session {
	sh, s := l.alloc(KindSession, true)
	l.sessionSeq++
	s.name, s.persistent, s.id = "default", true, l.sessionSeq
	r.owned = append(r.owned, sh)
	return capi.Session(sh)
}

func (l *Lib) DestroyRenderer(r capi.Renderer) { l.destroy(uintptr(r), KindRenderer) }

func (l *Lib) Update(r capi.Renderer) { l.get(uintptr(r), KindRenderer).updates++ }

func (l *Lib) RefreshDisplay(r capi.Renderer, displayID uint32) {
	o := l.get(uintptr(r), KindRenderer)
	o.refreshes = append(o.refreshes, displayID)
}

func (l *Lib) Render(r capi.Renderer)         { l.get(uintptr(r), KindRenderer).renders++ }
func (l *Lib) PurgeMemory(r capi.Renderer)    { l.get(uintptr(r), KindRenderer).purges++ }
func (l *Lib) LogMemoryUsage(r capi.Renderer) { l.get(uintptr(r), KindRenderer) }

// RendererStats returns how many update and render calls a renderer received.
func (l *Lib) RendererStats(r capi.Renderer) (updates, renders int) {
	o := l.get(uintptr(r), KindRenderer)
	return o.updates, o.renders
}

// Session

func (l *Lib) CreateSession(r capi.Renderer, persistent bool, name capi.String) capi.Session {
	l.get(uintptr(r), KindRenderer)
	n := string(l.get(uintptr(name), KindString).data)
	h, o := l.create(KindSession)
	if o == nil {
		return 0
	}
	l.sessionSeq++
	o.name, o.persistent, o.id = n, persistent, l.sessionSeq
	return capi.Session(h)
}

func (l *Lib) DestroySession(s capi.Session) { l.destroy(uintptr(s), KindSession) }

func (l *Lib) DefaultSession(r capi.Renderer) capi.Session {
	return l.get(uintptr(r), KindRenderer).defaultSession
}

func (l *Lib) SessionIsPersistent(s capi.Session) bool { return l.get(uintptr(s), KindSession).persistent }

func (l *Lib) SessionGetName(s capi.Session) capi.String {
	str, _ := l.nativeString(uintptr(s), l.get(uintptr(s), KindSession).name)
	return str
}

func (l *Lib) SessionGetID(s capi.Session) uint64 { return l.get(uintptr(s), KindSession).id }

func (l *Lib) SessionGetDiskPath(s capi.Session) capi.String {
	o := l.get(uintptr(s), KindSession)
	path := ""
	if o.persistent {
		path = "/tmp/ultralight/" + o.name
	}
	str, _ := l.nativeString(uintptr(s), path)
	return str
}

// View

func (l *Lib) initView(h uintptr, o *object, width, height uint32) {
	o.width, o.height, o.scale = width, height, 1.0
	bh, b := l.alloc(KindBitmap, true)
	b.width, b.height, b.format, b.rowBytes = width, height, 1, width*4
	b.data = make([]byte, int(width*height*4))
	sh, s := l.alloc(KindSurface, true)
	s.bitmap = capi.Bitmap(bh)
	if l.SurfaceDefinitionSet {
		s.custom, s.userData = true, l.surfaceDef.Create(width, height)
	}
	ch, c := l.alloc(KindJSContext, true)
	gh, g := l.alloc(KindJSValue, true)
	g.jsType, g.props = capi.JSTypeObject, map[string]capi.JSValue{}
	c.global = capi.JSObject(gh)
	o.surface, o.ctx = capi.Surface(sh), capi.JSContext(ch)
	o.owned = append(o.owned, bh, sh, ch, gh)
}

func (l *Lib) CreateView(r capi.Renderer, width, height uint32, vc capi.ViewConfig, s capi.Session) capi.View {
	l.get(uintptr(r), KindRenderer)
	cfg := l.get(uintptr(vc), KindViewConfig)
	if s != 0 {
		l.get(uintptr(s), KindSession)
	}
	h, o := l.create(KindView)
	if o == nil {
		return 0
	}
	l.initView(h, o, width, height)
	o.accelerated, _ = cfg.values[int(capi.ViewConfigIsAccelerated)].(bool)
	o.transparent, _ = cfg.values[int(capi.ViewConfigIsTransparent)].(bool)
	if scale, ok := cfg.values[int(capi.ViewConfigInitialDeviceScale)].(float64); ok {
		o.scale = scale
	}
	return capi.View(h)
}

func (l *Lib) DestroyView(v capi.View) { l.destroy(uintptr(v), KindView) }

func (l *Lib) ViewGetURL(v capi.View) capi.String {
	str, _ := l.nativeString(uintptr(v), l.get(uintptr(v), KindView).url)
	return str
}

func (l *Lib) ViewGetTitle(v capi.View) capi.String {
	str, _ := l.nativeString(uintptr(v), l.get(uintptr(v), KindView).title)
	return str
}

func (l *Lib) ViewGetWidth(v capi.View) uint32           { return l.get(uintptr(v), KindView).width }
func (l *Lib) ViewGetHeight(v capi.View) uint32          { return l.get(uintptr(v), KindView).height }
func (l *Lib) ViewGetDeviceScale(v capi.View) float64    { return l.get(uintptr(v), KindView).scale }
func (l *Lib) ViewSetDeviceScale(v capi.View, s float64) { l.get(uintptr(v), KindView).scale = s }
func (l *Lib) ViewIsAccelerated(v capi.View) bool        { return l.get(uintptr(v), KindView).accelerated }
func (l *Lib) ViewIsTransparent(v capi.View) bool        { return l.get(uintptr(v), KindView).transparent }
func (l *Lib) ViewIsLoading(v capi.View) bool            { return l.get(uintptr(v), KindView).loading }
func (l *Lib) ViewGetSurface(v capi.View) capi.Surface   { return l.get(uintptr(v), KindView).surface }

// ViewLoadHTML records the markup and runs the load sequence for an empty URL.
func (l *Lib) ViewLoadHTML(v capi.View, html capi.String) {
	o := l.get(uintptr(v), KindView)
	o.html = string(l.get(uintptr(html), KindString).data)
	l.navigate(v, o, "")
}

// ViewLoadURL runs the load sequence synchronously: begin loading, URL
// change, window object ready, DOM ready, finish loading, history update.
func (l *Lib) ViewLoadURL(v capi.View, url capi.String) {
	o := l.get(uintptr(v), KindView)
	l.navigate(v, o, string(l.get(uintptr(url), KindString).data))
}

func (l *Lib) navigate(v capi.View, o *object, url string) {
	o.url = url
	o.history = append(o.history[:o.historyPos], url)
	o.historyPos = len(o.history)
	o.loading = true
	l.FireFrame(v, capi.BeginLoading, 0, true, url)
	l.FireString(v, capi.ChangeURL, url)
	l.FireFrame(v, capi.WindowObjectReady, 0, true, url)
	l.FireFrame(v, capi.DOMReady, 0, true, url)
	o.loading = false
	l.FireFrame(v, capi.FinishLoading, 0, true, url)
	l.FireUpdateHistory(v)
}

// ViewHTML returns the last markup loaded into a view.
func (l *Lib) ViewHTML(v capi.View) string { return l.get(uintptr(v), KindView).html }

func (l *Lib) ViewResize(v capi.View, width, height uint32) {
	o := l.get(uintptr(v), KindView)
	o.width, o.height = width, height
	l.SurfaceResize(o.surface, width, height)
}

func (l *Lib) ViewEvaluateScript(v capi.View, js capi.String) (capi.String, capi.String) {
	l.get(uintptr(v), KindView)
	script := string(l.get(uintptr(js), KindString).data)
	l.Scripts = append(l.Scripts, script)
	res, ok := l.ScriptResults[script]
	if !ok {
		res.Result = "undefined"
		if msg, found := strings.CutPrefix(script, "throw "); found {
			res = ScriptResult{Exception: msg}
		}
	}
	result, _ := l.nativeString(uintptr(v), res.Result)
	exception, _ := l.nativeString(uintptr(v), res.Exception)
	return result, exception
}

func (l *Lib) ViewCanGoBack(v capi.View) bool { return l.get(uintptr(v), KindView).historyPos > 1 }

func (l *Lib) ViewCanGoForward(v capi.View) bool {
	o := l.get(uintptr(v), KindView)
	return o.historyPos < len(o.history)
}

func (l *Lib) ViewGoBack(v capi.View)    { l.ViewGoToHistoryOffset(v, -1) }
func (l *Lib) ViewGoForward(v capi.View) { l.ViewGoToHistoryOffset(v, 1) }

func (l *Lib) ViewGoToHistoryOffset(v capi.View, offset int32) {
	o := l.get(uintptr(v), KindView)
	pos := o.historyPos + int(offset)
	if pos < 1 || pos > len(o.history) {
		return
	}
	o.historyPos = pos
	o.url = o.history[pos-1]
	l.FireString(v, capi.ChangeURL, o.url)
	l.FireUpdateHistory(v)
}

func (l *Lib) ViewReload(v capi.View)             { l.get(uintptr(v), KindView).reloads++ }
func (l *Lib) ViewStop(v capi.View)               { l.get(uintptr(v), KindView).stops++ }
func (l *Lib) ViewFocus(v capi.View)              { l.get(uintptr(v), KindView).focused = true }
func (l *Lib) ViewUnfocus(v capi.View)            { l.get(uintptr(v), KindView).focused = false }
func (l *Lib) ViewHasFocus(v capi.View) bool      { return l.get(uintptr(v), KindView).focused }
func (l *Lib) ViewHasInputFocus(v capi.View) bool { return l.get(uintptr(v), KindView).focused }

// ViewStops returns how many times Stop was requested on a view.
func (l *Lib) ViewStops(v capi.View) int { return l.get(uintptr(v), KindView).stops }

// ViewReloads returns how many times Reload was requested on a view.
func (l *Lib) ViewReloads(v capi.View) int { return l.get(uintptr(v), KindView).reloads }

func (l *Lib) fire(v capi.View, h uintptr, kind Kind) {
	o := l.get(uintptr(v), KindView)
	e := l.get(h, kind)
	o.events = append(o.events, e.event)
}

func (l *Lib) ViewFireKeyEvent(v capi.View, e capi.KeyEvent)       { l.fire(v, uintptr(e), KindKeyEvent) }
func (l *Lib) ViewFireMouseEvent(v capi.View, e capi.MouseEvent)   { l.fire(v, uintptr(e), KindMouseEvent) }
func (l *Lib) ViewFireScrollEvent(v capi.View, e capi.ScrollEvent) { l.fire(v, uintptr(e), KindScrollEvent) }

// ViewEvents returns the input events fired at a view.
func (l *Lib) ViewEvents(v capi.View) []Event {
	return append([]Event(nil), l.get(uintptr(v), KindView).events...)
}

func (l *Lib) ViewSetNeedsPaint(v capi.View, needsPaint bool) {
	l.get(uintptr(v), KindView).needsPaint = needsPaint
}

func (l *Lib) ViewGetNeedsPaint(v capi.View) bool { return l.get(uintptr(v), KindView).needsPaint }

func (l *Lib) ViewSetFrameCallback(v capi.View, ev capi.FrameEvent, fn capi.FrameFunc, userData uintptr) {
	l.get(uintptr(v), KindView).frame[ev] = slot[capi.FrameFunc]{fn, userData}
}

func (l *Lib) ViewSetStringCallback(v capi.View, ev capi.StringEvent, fn capi.StringFunc, userData uintptr) {
	l.get(uintptr(v), KindView).text[ev] = slot[capi.StringFunc]{fn, userData}
}

func (l *Lib) ViewSetUpdateHistoryCallback(v capi.View, fn capi.ViewFunc, userData uintptr) {
	l.get(uintptr(v), KindView).onHistory = slot[capi.ViewFunc]{fn, userData}
}

func (l *Lib) ViewSetChangeCursorCallback(v capi.View, fn capi.CursorFunc, userData uintptr) {
	l.get(uintptr(v), KindView).onCursor = slot[capi.CursorFunc]{fn, userData}
}

func (l *Lib) ViewSetFailLoadingCallback(v capi.View, fn capi.FailLoadingFunc, userData uintptr) {
	l.get(uintptr(v), KindView).onFail = slot[capi.FailLoadingFunc]{fn, userData}
}

func (l *Lib) ViewSetAddConsoleMessageCallback(v capi.View, fn capi.ConsoleFunc, userData uintptr) {
	l.get(uintptr(v), KindView).onConsole = slot[capi.ConsoleFunc]{fn, userData}
}

func (l *Lib) ViewSetCreateChildViewCallback(v capi.View, fn capi.CreateChildFunc, userData uintptr) {
	l.get(uintptr(v), KindView).onChild = slot[capi.CreateChildFunc]{fn, userData}
}

// Input events

func (l *Lib) CreateKeyEvent(eventType int32, modifiers uint32, virtualKeyCode, nativeKeyCode int32, text, unmodifiedText capi.String, isKeypad, isAutoRepeat, isSystemKey bool) capi.KeyEvent {
	txt := string(l.get(uintptr(text), KindString).data)
	l.get(uintptr(unmodifiedText), KindString)
	h, o := l.create(KindKeyEvent)
	if o == nil {
		return 0
	}
	o.event = Event{Kind: "key", Type: eventType, VK: virtualKeyCode, Mods: modifiers, Text: txt}
	return capi.KeyEvent(h)
}

func (l *Lib) DestroyKeyEvent(e capi.KeyEvent) { l.destroy(uintptr(e), KindKeyEvent) }

func (l *Lib) CreateMouseEvent(eventType int32, x, y int32, button int32) capi.MouseEvent {
	h, o := l.create(KindMouseEvent)
	if o == nil {
		return 0
	}
	o.event = Event{Kind: "mouse", Type: eventType, X: x, Y: y, Button: button}
	return capi.MouseEvent(h)
}

func (l *Lib) DestroyMouseEvent(e capi.MouseEvent) { l.destroy(uintptr(e), KindMouseEvent) }

func (l *Lib) CreateScrollEvent(eventType int32, deltaX, deltaY int32) capi.ScrollEvent {
	h, o := l.create(KindScrollEvent)
	if o == nil {
		return 0
	}
	o.event = Event{Kind: "scroll", Type: eventType, X: deltaX, Y: deltaY}
	return capi.ScrollEvent(h)
}

func (l *Lib) DestroyScrollEvent(e capi.ScrollEvent) { l.destroy(uintptr(e), KindScrollEvent) }

// Bitmap

func (l *Lib) CreateEmptyBitmap() capi.Bitmap {
	h, _ := l.create(KindBitmap)
	return capi.Bitmap(h)
}

func bppOf(format uint32) uint32 {
	if format == 0 {
		return 1
	}
	return 4
}

func (l *Lib) CreateBitmap(width, height uint32, format uint32) capi.Bitmap {
	h, o := l.create(KindBitmap)
	if o == nil {
		return 0
	}
	o.width, o.height, o.format = width, height, format
	o.rowBytes = width * bppOf(format)
	o.data = make([]byte, int(o.rowBytes*height))
	return capi.Bitmap(h)
}

func (l *Lib) CreateBitmapFromPixels(width, height uint32, format uint32, rowBytes uint32, pixels []byte) capi.Bitmap {
	h, o := l.create(KindBitmap)
	if o == nil {
		return 0
	}
	o.width, o.height, o.format, o.rowBytes = width, height, format, rowBytes
	o.data = append([]byte(nil), pixels...)
	return capi.Bitmap(h)
}

func (l *Lib) CreateBitmapFromCopy(b capi.Bitmap) capi.Bitmap {
	src := l.get(uintptr(b), KindBitmap)
	h, o := l.create(KindBitmap)
	if o == nil {
		return 0
	}
	o.width, o.height, o.format, o.rowBytes = src.width, src.height, src.format, src.rowBytes
	o.data = append([]byte(nil), src.data...)
	return capi.Bitmap(h)
}

func (l *Lib) DestroyBitmap(b capi.Bitmap) { l.destroy(uintptr(b), KindBitmap) }

func (l *Lib) BitmapGetWidth(b capi.Bitmap) uint32    { return l.get(uintptr(b), KindBitmap).width }
func (l *Lib) BitmapGetHeight(b capi.Bitmap) uint32   { return l.get(uintptr(b), KindBitmap).height }
func (l *Lib) BitmapGetFormat(b capi.Bitmap) uint32   { return l.get(uintptr(b), KindBitmap).format }
func (l *Lib) BitmapGetBpp(b capi.Bitmap) uint32      { return bppOf(l.get(uintptr(b), KindBitmap).format) }
func (l *Lib) BitmapGetRowBytes(b capi.Bitmap) uint32 { return l.get(uintptr(b), KindBitmap).rowBytes }
func (l *Lib) BitmapGetSize(b capi.Bitmap) uint64     { return uint64(len(l.get(uintptr(b), KindBitmap).data)) }
func (l *Lib) BitmapOwnsPixels(b capi.Bitmap) bool    { return true }

func (l *Lib) BitmapLockPixels(b capi.Bitmap) uintptr {
	o := l.get(uintptr(b), KindBitmap)
	o.locked++
	if len(o.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&o.data[0]))
}

func (l *Lib) BitmapUnlockPixels(b capi.Bitmap) {
	o := l.get(uintptr(b), KindBitmap)
	if o.locked == 0 {
		l.violate("unlock of unlocked bitmap %#x", uintptr(b))
		return
	}
	o.locked--
}

// BitmapLocked reports whether a bitmap's pixels are currently locked.
func (l *Lib) BitmapLocked(b capi.Bitmap) bool { return l.get(uintptr(b), KindBitmap).locked > 0 }

// BitmapPixels returns the pixel buffer of a bitmap for assertions and fills.
func (l *Lib) BitmapPixels(b capi.Bitmap) []byte { return l.get(uintptr(b), KindBitmap).data }

func (l *Lib) BitmapIsEmpty(b capi.Bitmap) bool { return len(l.get(uintptr(b), KindBitmap).data) == 0 }

func (l *Lib) BitmapErase(b capi.Bitmap) {
	o := l.get(uintptr(b), KindBitmap)
	clear(o.data)
}

// BitmapWritePNG encodes BGRA bitmaps as PNG. Other formats fail.
func (l *Lib) BitmapWritePNG(b capi.Bitmap, path string) bool {
	o := l.get(uintptr(b), KindBitmap)
	if o.format != 1 || o.width == 0 || o.height == 0 {
		return false
	}
	img := image.NewNRGBA(image.Rect(0, 0, int(o.width), int(o.height)))
	for y := 0; y < int(o.height); y++ {
		for x := 0; x < int(o.width); x++ {
			src := y*int(o.rowBytes) + x*4
			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = o.data[src+2]
			img.Pix[dst+1] = o.data[src+1]
			img.Pix[dst+2] = o.data[src+0]
			img.Pix[dst+3] = o.data[src+3]
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return false
	}
	return os.WriteFile(path, buf.Bytes(), 0o644) == nil
}

func (l *Lib) BitmapSwapRedBlueChannels(b capi.Bitmap) {
	o := l.get(uintptr(b), KindBitmap)
	if bppOf(o.format) != 4 {
		return
	}
	for i := 0; i+3 < len(o.data); i += 4 {
		o.data[i], o.data[i+2] = o.data[i+2], o.data[i]
	}
}

// Surface

// Custom surfaces forward to the installed SurfaceFuncs, the way the real
// library does once ulPlatformSetSurfaceDefinition has been called.

func (l *Lib) surfaceBitmap(s capi.Surface) *object {
	return l.get(uintptr(l.get(uintptr(s), KindSurface).bitmap), KindBitmap)
}

func (l *Lib) SurfaceGetWidth(s capi.Surface) uint32 {
	if o := l.get(uintptr(s), KindSurface); o.custom {
		return l.surfaceDef.GetWidth(o.userData)
	}
	return l.surfaceBitmap(s).width
}

func (l *Lib) SurfaceGetHeight(s capi.Surface) uint32 {
	if o := l.get(uintptr(s), KindSurface); o.custom {
		return l.surfaceDef.GetHeight(o.userData)
	}
	return l.surfaceBitmap(s).height
}

func (l *Lib) SurfaceGetRowBytes(s capi.Surface) uint32 {
	if o := l.get(uintptr(s), KindSurface); o.custom {
		return l.surfaceDef.GetRowBytes(o.userData)
	}
	return l.surfaceBitmap(s).rowBytes
}

func (l *Lib) SurfaceGetSize(s capi.Surface) uint64 {
	if o := l.get(uintptr(s), KindSurface); o.custom {
		return l.surfaceDef.GetSize(o.userData)
	}
	return uint64(len(l.surfaceBitmap(s).data))
}

func (l *Lib) SurfaceLockPixels(s capi.Surface) uintptr {
	o := l.get(uintptr(s), KindSurface)
	if o.custom {
		o.locked++
		return l.surfaceDef.LockPixels(o.userData)
	}
	return l.BitmapLockPixels(o.bitmap)
}

func (l *Lib) SurfaceUnlockPixels(s capi.Surface) {
	o := l.get(uintptr(s), KindSurface)
	if o.custom {
		if o.locked == 0 {
			l.violate("unlock of unlocked surface %#x", uintptr(s))
			return
		}
		o.locked--
		l.surfaceDef.UnlockPixels(o.userData)
		return
	}
	l.BitmapUnlockPixels(o.bitmap)
}

func (l *Lib) SurfaceResize(s capi.Surface, width, height uint32) {
	if o := l.get(uintptr(s), KindSurface); o.custom {
		if o.locked > 0 {
			l.violate("resize of locked surface %#x", uintptr(s))
		}
		l.surfaceDef.Resize(o.userData, width, height)
		return
	}
	b := l.surfaceBitmap(s)
	b.width, b.height, b.rowBytes = width, height, width*4
	b.data = make([]byte, int(width*height*4))
}

func (l *Lib) SurfaceGetUserData(s capi.Surface) uintptr {
	return l.get(uintptr(s), KindSurface).userData
}

// BitmapSurfaceGetBitmap returns the null bitmap for a custom surface.
func (l *Lib) BitmapSurfaceGetBitmap(s capi.Surface) capi.Bitmap {
	o := l.get(uintptr(s), KindSurface)
	if o.custom {
		return 0
	}
	return o.bitmap
}

// SurfaceLocked reports whether a custom surface holds a pixel lock.
func (l *Lib) SurfaceLocked(s capi.Surface) bool {
	return l.get(uintptr(s), KindSurface).locked > 0
}

// JavaScriptCore

func (l *Lib) ViewLockJSContext(v capi.View) capi.JSContext {
	o := l.get(uintptr(v), KindView)
	l.get(uintptr(o.ctx), KindJSContext).locked++
	return o.ctx
}

func (l *Lib) ViewUnlockJSContext(v capi.View) {
	c := l.get(uintptr(l.get(uintptr(v), KindView).ctx), KindJSContext)
	if c.locked == 0 {
		l.violate("unlock of unlocked JS context for view %#x", uintptr(v))
		return
	}
	c.locked--
}

// JSContextLocked reports whether a view's JS context is locked.
func (l *Lib) JSContextLocked(v capi.View) bool {
	return l.get(uintptr(l.get(uintptr(v), KindView).ctx), KindJSContext).locked > 0
}

func (l *Lib) JSContextGetGlobalObject(ctx capi.JSContext) capi.JSObject {
	return l.get(uintptr(ctx), KindJSContext).global
}

func (l *Lib) JSClassCreate(name string, call capi.HostFunc, finalize capi.FinalizeFunc) capi.JSClass {
	h, o := l.create(KindJSClass)
	if o == nil {
		return 0
	}
	o.name, o.call, o.finalize = name, call, finalize
	return capi.JSClass(h)
}

func (l *Lib) JSClassRelease(c capi.JSClass) { l.destroy(uintptr(c), KindJSClass) }

func (l *Lib) JSObjectMake(ctx capi.JSContext, class capi.JSClass, private uintptr) capi.JSObject {
	c := l.get(uintptr(class), KindJSClass)
	h, o := l.alloc(KindJSValue, true)
	o.jsType, o.class, o.private = capi.JSTypeObject, class, private
	o.call, o.finalize = c.call, c.finalize
	o.props = map[string]capi.JSValue{}
	return capi.JSObject(h)
}

func (l *Lib) JSObjectGetPrivate(obj capi.JSObject) uintptr {
	return l.get(uintptr(obj), KindJSValue).private
}

func (l *Lib) JSObjectSetProperty(ctx capi.JSContext, obj capi.JSObject, name string, value capi.JSValue) capi.JSValue {
	o := l.get(uintptr(obj), KindJSValue)
	if o.props == nil {
		h, e := l.alloc(KindJSValue, true)
		e.jsType, e.str = capi.JSTypeString, "TypeError: not an object"
		return capi.JSValue(h)
	}
	o.props[name] = value
	return 0
}

func (l *Lib) JSValueGetType(ctx capi.JSContext, v capi.JSValue) capi.JSType {
	return l.get(uintptr(v), KindJSValue).jsType
}

func (l *Lib) JSValueToNumber(ctx capi.JSContext, v capi.JSValue) float64 {
	o := l.get(uintptr(v), KindJSValue)
	switch o.jsType {
	case capi.JSTypeNumber:
		return o.num
	case capi.JSTypeBoolean:
		if o.boolean {
			return 1
		}
	}
	return 0
}

func (l *Lib) JSValueToBoolean(ctx capi.JSContext, v capi.JSValue) bool {
	o := l.get(uintptr(v), KindJSValue)
	switch o.jsType {
	case capi.JSTypeBoolean:
		return o.boolean
	case capi.JSTypeNumber:
		return o.num != 0
	case capi.JSTypeString:
		return o.str != ""
	case capi.JSTypeObject:
		return true
	}
	return false
}

func (l *Lib) JSValueToString(ctx capi.JSContext, v capi.JSValue) string {
	o := l.get(uintptr(v), KindJSValue)
	switch o.jsType {
	case capi.JSTypeUndefined:
		return "undefined"
	case capi.JSTypeNull:
		return "null"
	case capi.JSTypeBoolean:
		return fmt.Sprint(o.boolean)
	case capi.JSTypeNumber:
		return fmt.Sprint(o.num)
	case capi.JSTypeString:
		return o.str
	}
	return "[object Object]"
}

func (l *Lib) jsValue(t capi.JSType) (capi.JSValue, *object) {
	h, o := l.alloc(KindJSValue, true)
	o.jsType = t
	return capi.JSValue(h), o
}

func (l *Lib) JSValueMakeUndefined(ctx capi.JSContext) capi.JSValue {
	v, _ := l.jsValue(capi.JSTypeUndefined)
	return v
}

func (l *Lib) JSValueMakeNull(ctx capi.JSContext) capi.JSValue {
	v, _ := l.jsValue(capi.JSTypeNull)
	return v
}

func (l *Lib) JSValueMakeBoolean(ctx capi.JSContext, b bool) capi.JSValue {
	v, o := l.jsValue(capi.JSTypeBoolean)
	o.boolean = b
	return v
}

func (l *Lib) JSValueMakeNumber(ctx capi.JSContext, n float64) capi.JSValue {
	v, o := l.jsValue(capi.JSTypeNumber)
	o.num = n
	return v
}

func (l *Lib) JSValueMakeString(ctx capi.JSContext, s string) capi.JSValue {
	v, o := l.jsValue(capi.JSTypeString)
	o.str = s
	return v
}

// toJS converts nil, bool, numbers and strings into fake JS values.
func (l *Lib) toJS(ctx capi.JSContext, arg any) capi.JSValue {
	switch a := arg.(type) {
	case nil:
		return l.JSValueMakeNull(ctx)
	case bool:
		return l.JSValueMakeBoolean(ctx, a)
	case int:
		return l.JSValueMakeNumber(ctx, float64(a))
	case float64:
		return l.JSValueMakeNumber(ctx, a)
	case string:
		return l.JSValueMakeString(ctx, a)
	}
	return l.JSValueMakeUndefined(ctx)
}

func (l *Lib) fromJS(v capi.JSValue) any {
	if v == 0 {
		return nil
	}
	o := l.get(uintptr(v), KindJSValue)
	switch o.jsType {
	case capi.JSTypeBoolean:
		return o.boolean
	case capi.JSTypeNumber:
		return o.num
	case capi.JSTypeString:
		return o.str
	case capi.JSTypeObject:
		return "[object Object]"
	}
	return nil
}

// CallGlobalFunction invokes a function installed on a view's global object
// the way page script would. It returns the converted result, or the
// exception message if the host function threw.
func (l *Lib) CallGlobalFunction(v capi.View, name string, args ...any) (any, string, error) {
	o := l.get(uintptr(v), KindView)
	ctx := o.ctx
	global := l.get(uintptr(ctx), KindJSContext).global
	fnVal, ok := l.get(uintptr(global), KindJSValue).props[name]
	if !ok {
		return nil, "", fmt.Errorf("fakeapi: %s is not defined", name)
	}
	fn := l.get(uintptr(fnVal), KindJSValue)
	if fn.call == nil {
		return nil, "", fmt.Errorf("fakeapi: %s is not a function", name)
	}
	jsArgs := make([]capi.JSValue, len(args))
	for i, a := range args {
		jsArgs[i] = l.toJS(ctx, a)
	}
	var exception capi.JSValue
	result := fn.call(ctx, capi.JSObject(fnVal), global, jsArgs, &exception)
	if exception != 0 {
		return nil, l.JSValueToString(ctx, exception), nil
	}
	return l.fromJS(result), "", nil
}

// CollectGarbage finalizes host objects no longer reachable from any global
// object.
func (l *Lib) CollectGarbage() {
	reachable := map[uintptr]bool{}
	for _, o := range l.objects {
		if o.kind == KindJSContext && o.alive {
			g := l.objects[uintptr(o.global)]
			for _, p := range g.props {
				reachable[uintptr(p)] = true
			}
		}
	}
	for h, o := range l.objects {
		if o.kind != KindJSValue || !o.alive || o.class == 0 || reachable[h] {
			continue
		}
		if o.finalize != nil {
			o.finalize(capi.JSObject(h))
		}
		o.alive = false
	}
}

// Platform

func (l *Lib) PlatformSetLogger(lg capi.LoggerFuncs) {
	l.logger, l.LoggerSet = lg, true
}

func (l *Lib) PlatformSetClipboard(c capi.ClipboardFuncs) {
	l.clipboard, l.ClipboardSet = c, true
}

func (l *Lib) PlatformSetFileSystem(fs capi.FileSystemFuncs) {
	l.fileSystem, l.FileSystemSet = fs, true
}

func (l *Lib) PlatformSetSurfaceDefinition(s capi.SurfaceFuncs) {
	l.surfaceDef, l.SurfaceDefinitionSet = s, true
}

func (l *Lib) EnablePlatformFontLoader() { l.FontLoaderEnabled = true }

func (l *Lib) EnablePlatformFileSystem(baseDir capi.String) {
	l.FileSystemBaseDir = string(l.get(uintptr(baseDir), KindString).data)
}

func (l *Lib) EnableDefaultLogger(logPath capi.String) {
	l.DefaultLogPath = string(l.get(uintptr(logPath), KindString).data)
}
