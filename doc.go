// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package ultralight is a Go binding for the Ultralight 1.4 HTML renderer.
//
// It loads the Ultralight SDK shared libraries at runtime through purego, so
// no cgo toolchain is needed. Every native resource is wrapped in a Go type
// that either owns its handle (and destroys it exactly once on Close) or
// borrows it from another resource (and never destroys it).
//
// Basic usage with the AppCore windowing layer:
//
//	import "github.com/YindSoft/ultralight-go"
//
//	if err := ultralight.Init(ultralight.Options{}); err != nil { ... }
//
//	app, err := ultralight.NewApp(nil, nil)
//	if err != nil { ... }
//	defer app.Close()
//
//	mon, _ := app.MainMonitor() // borrowed, never destroyed
//	win, _ := ultralight.NewWindow(mon, 800, 600, false,
//	    ultralight.WindowTitled|ultralight.WindowResizable)
//	app.SetWindow(win)
//
//	overlay, _ := ultralight.NewOverlay(win, 800, 600, 0, 0)
//	view, _ := overlay.View()
//	view.OnDOMReady(func(v *ultralight.View, frameID uint64, isMainFrame bool, url string) {
//	    ...
//	})
//	view.LoadHTML("<h1>Hello</h1>")
//	app.Run()
//
// Headless rendering without a window uses a Renderer directly; package
// ebitenview draws such views into Ebitengine images.
//
// Callbacks:
//
// Registering a callback (OnResize, OnDOMReady, ...) stores the Go closure in
// a registry owned by the object it was registered on. Registering again
// replaces the previous closure, and closing the object releases it, so a
// late native call after Close is a no-op instead of a crash.
//
// JavaScript:
//
// View.EvaluateScript returns a *ScriptError for exceptions. View.BindFunction
// exposes a Go function to the page:
//
//	view.OnWindowObjectReady(func(v *ultralight.View, _ uint64, main bool, _ string) {
//	    v.BindFunction("add", func(args []any) (any, error) {
//	        return args[0].(float64) + args[1].(float64), nil
//	    })
//	})
//
// Embedded assets:
//
// Use [NewFSFileSystem] to serve an [embed.FS] or any [fs.FS] as the engine's
// file system, and [FileURL] to build the URL to load:
//
//	//go:embed ui
//	var uiFiles embed.FS
//	ultralight.Init(ultralight.Options{FileSystem: ultralight.NewFSFileSystem(uiFiles)})
//	view.LoadURL(ultralight.FileURL("ui/index.html"))
//
// Threading: Ultralight is single-threaded. Init and every call on a resource
// must happen on the same OS thread; the native loader locks the main
// goroutine to its thread at startup.
//
// Requirements: the Ultralight 1.4 SDK libraries (UltralightCore, WebCore,
// Ultralight and AppCore) must be present in the working directory, next to
// the executable, or in the directory specified by [Options.BaseDir].
package ultralight
