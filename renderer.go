// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Renderer owns the rendering pipeline that Views, Sessions and Bitmaps are
// created under. Use it directly to render without an App, for example into
// a game engine texture.
type Renderer struct {
	ref ref[capi.Renderer]
}

// NewRenderer creates a renderer. Platform hooks must be installed by Init
// first. A nil config uses the library defaults.
func NewRenderer(config *Config) (*Renderer, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	if config == nil {
		if config, err = NewConfig(); err != nil {
			return nil, err
		}
		defer config.Close()
	}
	r, err := own("renderer", a.CreateRenderer(config.ref.get()), a.DestroyRenderer)
	if err != nil {
		return nil, err
	}
	return &Renderer{ref: r}, nil
}

func (r *Renderer) Handle() uintptr { return uintptr(r.ref.get()) }
func (r *Renderer) Owned() bool     { return r.ref.owning() }

// Close destroys an owned renderer. Views created under it must be closed
// first.
func (r *Renderer) Close() { r.ref.release() }

// Update dispatches timers and callbacks. Call it often, from the thread
// that called Init.
func (r *Renderer) Update() { api.Update(r.ref.get()) }

// RefreshDisplay notifies the renderer that display displayID refreshed, so
// animations advance.
func (r *Renderer) RefreshDisplay(displayID uint32) { api.RefreshDisplay(r.ref.get(), displayID) }

// Render paints every view that needs it.
func (r *Renderer) Render() { api.Render(r.ref.get()) }

func (r *Renderer) PurgeMemory()    { api.PurgeMemory(r.ref.get()) }
func (r *Renderer) LogMemoryUsage() { api.LogMemoryUsage(r.ref.get()) }

// DefaultSession returns the renderer's persistent default session.
func (r *Renderer) DefaultSession() (*Session, error) {
	hr, err := borrow("session", api.DefaultSession(r.ref.get()))
	if err != nil {
		return nil, err
	}
	return &Session{ref: hr}, nil
}

// NewSession creates a session. A persistent session stores cookies and
// local storage on disk under name.
func (r *Renderer) NewSession(persistent bool, name string) (*Session, error) {
	var h capi.Session
	rh := r.ref.get()
	if err := withString(name, func(s capi.String) { h = api.CreateSession(rh, persistent, s) }); err != nil {
		return nil, err
	}
	hr, err := own("session", h, api.DestroySession)
	if err != nil {
		return nil, err
	}
	return &Session{ref: hr}, nil
}

// NewView creates a view of width by height pixels. A nil config uses the
// library defaults and a nil session uses the default session.
func (r *Renderer) NewView(width, height uint32, config *ViewConfig, session *Session) (*View, error) {
	if config == nil {
		var err error
		if config, err = NewViewConfig(); err != nil {
			return nil, err
		}
		defer config.Close()
	}
	var sh capi.Session
	if session != nil {
		sh = session.ref.get()
	}
	hr, err := own("view", api.CreateView(r.ref.get(), width, height, config.ref.get(), sh), api.DestroyView)
	if err != nil {
		return nil, err
	}
	return &View{ref: hr}, nil
}

// Session stores cookies, local storage and other per-profile data.
type Session struct {
	ref ref[capi.Session]
}

func (s *Session) Handle() uintptr { return uintptr(s.ref.get()) }
func (s *Session) Owned() bool     { return s.ref.owning() }
func (s *Session) Close()          { s.ref.release() }

func (s *Session) IsPersistent() bool { return api.SessionIsPersistent(s.ref.get()) }

// ID returns a unique identifier for the session.
func (s *Session) ID() uint64 { return api.SessionGetID(s.ref.get()) }

// Name returns the name the session was created with.
func (s *Session) Name() (string, error) { return goString(api.SessionGetName(s.ref.get())) }

// DiskPath returns the on-disk location of a persistent session.
func (s *Session) DiskPath() (string, error) {
	return goString(api.SessionGetDiskPath(s.ref.get()))
}
