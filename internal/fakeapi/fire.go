// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package fakeapi

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// FireUpdate invokes an app's update callback.
func (l *Lib) FireUpdate(a capi.App) {
	s := l.get(uintptr(a), KindApp).update
	if s.fn != nil {
		s.fn(s.ud)
	}
}

// FireClose invokes a window's close callback.
func (l *Lib) FireClose(w capi.Window) {
	s := l.get(uintptr(w), KindWindow).onClose
	if s.fn != nil {
		s.fn(s.ud, w)
	}
}

// FireResize resizes a window and invokes its resize callback.
func (l *Lib) FireResize(w capi.Window, width, height uint32) {
	o := l.get(uintptr(w), KindWindow)
	o.width, o.height = width, height
	if o.onResize.fn != nil {
		o.onResize.fn(o.onResize.ud, w, width, height)
	}
}

// FireFrame invokes one of a view's frame-shaped callbacks.
func (l *Lib) FireFrame(v capi.View, ev capi.FrameEvent, frameID uint64, isMain bool, url string) {
	s := l.get(uintptr(v), KindView).frame[ev]
	if s.fn == nil {
		return
	}
	str, done := l.nativeString(0, url)
	defer done()
	s.fn(s.ud, v, frameID, isMain, str)
}

// FireString invokes one of a view's string-shaped callbacks. value may hold
// arbitrary bytes, including malformed UTF-8.
func (l *Lib) FireString(v capi.View, ev capi.StringEvent, value string) {
	o := l.get(uintptr(v), KindView)
	if ev == capi.ChangeTitle {
		o.title = value
	}
	s := o.text[ev]
	if s.fn == nil {
		return
	}
	str, done := l.nativeString(0, value)
	defer done()
	s.fn(s.ud, v, str)
}

// FireUpdateHistory invokes a view's history callback.
func (l *Lib) FireUpdateHistory(v capi.View) {
	s := l.get(uintptr(v), KindView).onHistory
	if s.fn != nil {
		s.fn(s.ud, v)
	}
}

// FireCursor invokes a view's cursor callback.
func (l *Lib) FireCursor(v capi.View, cursor int32) {
	s := l.get(uintptr(v), KindView).onCursor
	if s.fn != nil {
		s.fn(s.ud, v, cursor)
	}
}

// FireFailLoading invokes a view's load failure callback.
func (l *Lib) FireFailLoading(v capi.View, frameID uint64, isMain bool, url, description, domain string, code int32) {
	s := l.get(uintptr(v), KindView).onFail
	if s.fn == nil {
		return
	}
	u, doneURL := l.nativeString(0, url)
	defer doneURL()
	d, doneDesc := l.nativeString(0, description)
	defer doneDesc()
	dom, doneDomain := l.nativeString(0, domain)
	defer doneDomain()
	s.fn(s.ud, v, frameID, isMain, u, d, dom, code)
}

// FireConsoleMessage invokes a view's console callback.
func (l *Lib) FireConsoleMessage(v capi.View, source, level uint32, message string, line, column uint32, sourceID string) {
	s := l.get(uintptr(v), KindView).onConsole
	if s.fn == nil {
		return
	}
	msg, doneMsg := l.nativeString(0, message)
	defer doneMsg()
	src, doneSrc := l.nativeString(0, sourceID)
	defer doneSrc()
	s.fn(s.ud, v, source, level, msg, line, column, src)
}

// FireCreateChildView invokes a view's child view callback and returns the
// view it produced, or zero when there is no callback.
func (l *Lib) FireCreateChildView(v capi.View, openerURL, targetURL string, isPopup bool, rect capi.IntRect) capi.View {
	s := l.get(uintptr(v), KindView).onChild
	if s.fn == nil {
		return 0
	}
	opener, doneOpener := l.nativeString(0, openerURL)
	defer doneOpener()
	target, doneTarget := l.nativeString(0, targetURL)
	defer doneTarget()
	return s.fn(s.ud, v, opener, target, isPopup, rect)
}

// Log sends a message through the installed platform logger.
func (l *Lib) Log(level uint32, message string) {
	if l.logger.LogMessage == nil {
		return
	}
	str, done := l.nativeString(0, message)
	defer done()
	l.logger.LogMessage(level, str)
}

// ClipboardClear calls the installed clipboard's Clear hook.
func (l *Lib) ClipboardClear() {
	if l.clipboard.Clear != nil {
		l.clipboard.Clear()
	}
}

// ClipboardWrite calls the installed clipboard's WritePlainText hook.
func (l *Lib) ClipboardWrite(text string) {
	if l.clipboard.WritePlainText == nil {
		return
	}
	str, done := l.nativeString(0, text)
	defer done()
	l.clipboard.WritePlainText(str)
}

// ClipboardRead calls the installed clipboard's ReadPlainText hook and
// returns what it stored into the result string.
func (l *Lib) ClipboardRead() string {
	if l.clipboard.ReadPlainText == nil {
		return ""
	}
	str, done := l.nativeString(0, "")
	defer done()
	l.clipboard.ReadPlainText(str)
	return string(l.objects[uintptr(str)].data)
}

// FileExists calls the installed file system's FileExists hook.
func (l *Lib) FileExists(path string) bool {
	if l.fileSystem.FileExists == nil {
		return false
	}
	str, done := l.nativeString(0, path)
	defer done()
	return l.fileSystem.FileExists(str)
}

// takeString reads a string returned from a platform hook and destroys it,
// as the library owns such strings.
func (l *Lib) takeString(s capi.String) string {
	if s == 0 {
		return ""
	}
	data := string(l.get(uintptr(s), KindString).data)
	l.destroy(uintptr(s), KindString)
	return data
}

// FileMimeType calls the installed file system's GetFileMimeType hook.
func (l *Lib) FileMimeType(path string) string {
	if l.fileSystem.GetFileMimeType == nil {
		return ""
	}
	str, done := l.nativeString(0, path)
	defer done()
	return l.takeString(l.fileSystem.GetFileMimeType(str))
}

// FileCharset calls the installed file system's GetFileCharset hook.
func (l *Lib) FileCharset(path string) string {
	if l.fileSystem.GetFileCharset == nil {
		return ""
	}
	str, done := l.nativeString(0, path)
	defer done()
	return l.takeString(l.fileSystem.GetFileCharset(str))
}

// OpenFile calls the installed file system's OpenFile hook. The returned
// buffer is consumed and destroyed. ok is false for a null buffer.
func (l *Lib) OpenFile(path string) (data []byte, ok bool) {
	if l.fileSystem.OpenFile == nil {
		return nil, false
	}
	str, done := l.nativeString(0, path)
	defer done()
	buf := l.fileSystem.OpenFile(str)
	if buf == 0 {
		return nil, false
	}
	data = append([]byte(nil), l.get(uintptr(buf), KindBuffer).data...)
	l.destroy(uintptr(buf), KindBuffer)
	return data, true
}
