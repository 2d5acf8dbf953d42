// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"github.com/YindSoft/ultralight-go/internal/fakeapi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingLogger struct {
	levels   []LogLevel
	messages []string
}

func (r *recordingLogger) LogMessage(level LogLevel, message string) {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, message)
}

type memClipboard struct {
	text    string
	cleared int
}

func (c *memClipboard) Clear() {
	c.text = ""
	c.cleared++
}

func (c *memClipboard) ReadPlainText() string      { return c.text }
func (c *memClipboard) WritePlainText(text string) { c.text = text }

type closingSurface struct {
	*MemorySurface
	closed *int
}

func (c closingSurface) Close() error {
	*c.closed++
	return nil
}

type surfaceFactoryFunc func(width, height uint32) SurfaceBuffer

func (f surfaceFactoryFunc) NewSurface(width, height uint32) SurfaceBuffer { return f(width, height) }

func TestInitTwice(t *testing.T) {
	setup(t, Options{})
	if err := Init(Options{}); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("Init() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestLoggerHook(t *testing.T) {
	rec := &recordingLogger{}
	fake := setup(t, Options{Logger: rec, LogPath: "ignored.log"})
	if !fake.LoggerSet {
		t.Fatal("logger hook not installed")
	}
	if fake.DefaultLogPath != "" {
		t.Errorf("default logger enabled alongside a custom one: %q", fake.DefaultLogPath)
	}
	fake.Log(uint32(LogLevelWarning), "low memory")
	fake.Log(uint32(LogLevelError), "bad\xffbyte")

	if len(rec.messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(rec.messages))
	}
	if rec.levels[0] != LogLevelWarning || rec.messages[0] != "low memory" {
		t.Errorf("message 0 = %v %q", rec.levels[0], rec.messages[0])
	}
	if rec.messages[1] != "bad\uFFFDbyte" {
		t.Errorf("message 1 = %q, want repaired text", rec.messages[1])
	}
}

func TestFileSystemHook(t *testing.T) {
	fsys := NewFSFileSystem(fstest.MapFS{
		"ui/index.html": {Data: []byte("<h1>hello</h1>")},
		"ui/app.js":     {Data: []byte("go.send('hi')")},
	})
	fake := setup(t, Options{FileSystem: fsys, FileSystemPath: "/ignored"})
	if !fake.FileSystemSet {
		t.Fatal("file system hook not installed")
	}
	if fake.FileSystemBaseDir != "" {
		t.Errorf("platform file system enabled alongside a custom one")
	}

	if !fake.FileExists("ui/index.html") {
		t.Errorf("FileExists(ui/index.html) = false")
	}
	if fake.FileExists("ui/missing.html") {
		t.Errorf("FileExists(ui/missing.html) = true")
	}
	if fake.FileExists("ui") {
		t.Errorf("FileExists(ui) = true for a directory")
	}
	if got := fake.FileMimeType("ui/index.html"); got != "text/html" {
		t.Errorf("mime type = %q, want text/html", got)
	}
	if got := fake.FileCharset("ui/index.html"); got != "utf-8" {
		t.Errorf("charset = %q, want utf-8", got)
	}
	data, ok := fake.OpenFile("/ui/app.js")
	if !ok || string(data) != "go.send('hi')" {
		t.Errorf("OpenFile(/ui/app.js) = %q, %v", data, ok)
	}
	if _, ok := fake.OpenFile("ui/missing.html"); ok {
		t.Errorf("OpenFile(ui/missing.html) ok = true")
	}
	if live := fake.Live(fakeapi.KindString); live != 0 {
		t.Errorf("live strings = %d, want 0", live)
	}
	if live := fake.Live(fakeapi.KindBuffer); live != 0 {
		t.Errorf("live buffers = %d, want 0", live)
	}
}

func TestClipboardHook(t *testing.T) {
	cb := &memClipboard{}
	fake := setup(t, Options{Clipboard: cb})
	if !fake.ClipboardSet {
		t.Fatal("clipboard hook not installed")
	}
	fake.ClipboardWrite("copied text")
	if cb.text != "copied text" {
		t.Errorf("clipboard = %q, want copied text", cb.text)
	}
	if got := fake.ClipboardRead(); got != "copied text" {
		t.Errorf("ClipboardRead() = %q, want copied text", got)
	}
	fake.ClipboardClear()
	if cb.cleared != 1 || cb.text != "" {
		t.Errorf("after clear: cleared=%d text=%q", cb.cleared, cb.text)
	}
}

func TestBuiltinPlatformOptions(t *testing.T) {
	fake := setup(t, Options{
		FontLoader:     true,
		FileSystemPath: "./assets",
		LogPath:        "ultralight.log",
	})
	if !fake.FontLoaderEnabled {
		t.Errorf("font loader not enabled")
	}
	if fake.FileSystemBaseDir != "./assets" {
		t.Errorf("file system base dir = %q, want ./assets", fake.FileSystemBaseDir)
	}
	if fake.DefaultLogPath != "ultralight.log" {
		t.Errorf("default log path = %q, want ultralight.log", fake.DefaultLogPath)
	}
	if fake.LoggerSet || fake.FileSystemSet || fake.ClipboardSet {
		t.Errorf("custom hooks installed without being requested")
	}
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger(zap.New(core))

	l.LogMessage(LogLevelError, "e")
	l.LogMessage(LogLevelWarning, "w")
	l.LogMessage(LogLevelInfo, "i")

	want := []zapcore.Level{zapcore.ErrorLevel, zapcore.WarnLevel, zapcore.InfoLevel}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
		if e.LoggerName != "ultralight" {
			t.Errorf("entry %d logger = %q, want ultralight", i, e.LoggerName)
		}
	}
}

func TestSurfaceFactoryHook(t *testing.T) {
	fake := setup(t, Options{SurfaceFactory: MemorySurfaces{}})
	if !fake.SurfaceDefinitionSet {
		t.Fatal("surface definition not installed")
	}
	v := newTestView(t)
	s, err := v.Surface()
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	if s.Width() != 800 || s.Height() != 600 || s.RowBytes() != 3200 || s.Size() != 800*600*4 {
		t.Errorf("surface = %dx%d row %d size %d", s.Width(), s.Height(), s.RowBytes(), s.Size())
	}
	buf, ok := s.Buffer().(*MemorySurface)
	if !ok {
		t.Fatalf("Buffer() = %T, want *MemorySurface", s.Buffer())
	}
	if _, err := s.Bitmap(); err == nil {
		t.Errorf("Bitmap() of a custom surface returned no error")
	}

	px, err := s.LockPixels()
	if err != nil {
		t.Fatalf("LockPixels() error = %v", err)
	}
	sh := capi.Surface(s.Handle())
	if !fake.SurfaceLocked(sh) {
		t.Errorf("surface not locked")
	}
	px.Data[0] = 0x7F
	px.Unlock()
	if fake.SurfaceLocked(sh) {
		t.Errorf("surface still locked after Unlock")
	}
	if buf.Pixels()[0] != 0x7F {
		t.Errorf("pixel write not visible in the Go buffer")
	}

	v.Resize(100, 50)
	if s.Width() != 100 || buf.Height() != 50 || len(buf.Pixels()) != 100*50*4 {
		t.Errorf("after Resize surface = %dx%d, buffer %d bytes", s.Width(), buf.Height(), len(buf.Pixels()))
	}
}

func TestSurfaceFactoryReleasesBuffers(t *testing.T) {
	closed := 0
	setup(t, Options{SurfaceFactory: surfaceFactoryFunc(func(w, h uint32) SurfaceBuffer {
		return closingSurface{MemorySurface: NewMemorySurface(w, h), closed: &closed}
	})})
	r := newTestRenderer(t)
	var views []*View
	for i := 0; i < 2; i++ {
		v, err := r.NewView(32, 32, nil, nil)
		if err != nil {
			t.Fatalf("NewView() error = %v", err)
		}
		views = append(views, v)
	}
	if got := surfaces.len(); got != 2 {
		t.Fatalf("live surfaces = %d, want 2", got)
	}
	for _, v := range views {
		v.Close()
	}
	if got := surfaces.len(); got != 0 {
		t.Errorf("live surfaces after Close = %d, want 0", got)
	}
	if closed != 2 {
		t.Errorf("buffers closed = %d, want 2", closed)
	}
}

func TestSurfaceFactoryNilBuffer(t *testing.T) {
	setup(t, Options{SurfaceFactory: surfaceFactoryFunc(func(uint32, uint32) SurfaceBuffer { return nil })})
	logs := observe(t, zapcore.DebugLevel)
	v := newTestView(t)
	s, err := v.Surface()
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	if s.Buffer() != nil {
		t.Errorf("Buffer() = %v, want nil", s.Buffer())
	}
	if s.Width() != 0 {
		t.Errorf("Width() = %d, want 0", s.Width())
	}
	if _, err := s.LockPixels(); err == nil {
		t.Errorf("LockPixels() without a buffer returned no error")
	}
	if n := logs.FilterMessage("surface factory returned no buffer").Len(); n != 1 {
		t.Errorf("errors logged = %d, want 1", n)
	}
}

func TestDefaultSurfaceHasNoBuffer(t *testing.T) {
	fake := setup(t, Options{})
	if fake.SurfaceDefinitionSet {
		t.Errorf("surface definition installed without a factory")
	}
	s, err := newTestView(t).Surface()
	if err != nil {
		t.Fatalf("Surface() error = %v", err)
	}
	if s.Buffer() != nil {
		t.Errorf("Buffer() = %v, want nil", s.Buffer())
	}
}
