// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"fmt"
	"sync"

	"github.com/YindSoft/ultralight-go/internal/bridge"
	"github.com/YindSoft/ultralight-go/internal/capi"
	"go.uber.org/zap"
)

// PlatformLogger receives log messages from the native library.
type PlatformLogger interface {
	LogMessage(level LogLevel, message string)
}

// FileSystem serves file:/// URLs to the native library.
type FileSystem interface {
	FileExists(path string) bool
	MimeType(path string) string
	Charset(path string) string
	ReadFile(path string) ([]byte, error)
}

// Clipboard backs copy and paste inside views.
type Clipboard interface {
	Clear()
	ReadPlainText() string
	WritePlainText(text string)
}

var (
	stateMu     sync.Mutex
	api         capi.API
	initialized bool

	// Platform hooks are process-wide and never change after Init.
	platformLogger    PlatformLogger
	platformFS        FileSystem
	platformClipboard Clipboard
)

// Init loads the native libraries and installs the platform hooks in opts.
// It must be called once, from the thread that will drive rendering, before
// any other function in this package. A second call returns
// ErrAlreadyInitialized.
func Init(opts Options) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	if initialized {
		return ErrAlreadyInitialized
	}
	a, err := bridge.Load(opts.BaseDir)
	if err != nil {
		return fmt.Errorf("ultralight: loading native libraries: %w", err)
	}
	return initLocked(a, opts)
}

// initLocked installs a and the platform hooks. stateMu must be held.
func initLocked(a capi.API, opts Options) error {
	api = a
	hostClass = 0
	if opts.Logger != nil {
		platformLogger = opts.Logger
		a.PlatformSetLogger(capi.LoggerFuncs{LogMessage: dispatchLogMessage})
	} else if opts.LogPath != "" {
		if err := withString(opts.LogPath, a.EnableDefaultLogger); err != nil {
			api = nil
			return err
		}
	}
	if opts.FileSystem != nil {
		platformFS = opts.FileSystem
		a.PlatformSetFileSystem(capi.FileSystemFuncs{
			FileExists:      dispatchFileExists,
			GetFileMimeType: dispatchFileMimeType,
			GetFileCharset:  dispatchFileCharset,
			OpenFile:        dispatchOpenFile,
		})
	} else if opts.FileSystemPath != "" {
		if err := withString(opts.FileSystemPath, a.EnablePlatformFileSystem); err != nil {
			api = nil
			return err
		}
	}
	if opts.Clipboard != nil {
		platformClipboard = opts.Clipboard
		a.PlatformSetClipboard(capi.ClipboardFuncs{
			Clear:          dispatchClipboardClear,
			ReadPlainText:  dispatchClipboardRead,
			WritePlainText: dispatchClipboardWrite,
		})
	}
	if opts.SurfaceFactory != nil {
		platformSurfaces = opts.SurfaceFactory
		a.PlatformSetSurfaceDefinition(capi.SurfaceFuncs{
			Create:       dispatchSurfaceCreate,
			Destroy:      dispatchSurfaceDestroy,
			GetWidth:     dispatchSurfaceWidth,
			GetHeight:    dispatchSurfaceHeight,
			GetRowBytes:  dispatchSurfaceRowBytes,
			GetSize:      dispatchSurfaceSize,
			LockPixels:   dispatchSurfaceLockPixels,
			UnlockPixels: dispatchSurfaceUnlockPixels,
			Resize:       dispatchSurfaceResize,
		})
	}
	if opts.FontLoader {
		a.EnablePlatformFontLoader()
	}
	initialized = true
	Logger().Debug("ultralight initialized",
		zap.Bool("font_loader", opts.FontLoader),
		zap.Bool("custom_logger", opts.Logger != nil),
		zap.Bool("custom_file_system", opts.FileSystem != nil),
		zap.Bool("custom_clipboard", opts.Clipboard != nil),
		zap.Bool("custom_surfaces", opts.SurfaceFactory != nil))
	return nil
}

// native returns the loaded API, or ErrNotInitialized.
func native() (capi.API, error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	if api == nil {
		return nil, ErrNotInitialized
	}
	return api, nil
}

func dispatchLogMessage(level uint32, message capi.String) {
	if platformLogger == nil {
		return
	}
	platformLogger.LogMessage(LogLevel(level), lossyString(message, "log"))
}

func dispatchFileExists(path capi.String) bool {
	return platformFS.FileExists(lossyString(path, "file_exists"))
}

// newReturnedString creates a string whose ownership passes to the native
// library, as the file system hooks require.
func newReturnedString(s string) capi.String {
	return api.CreateString(s)
}

func dispatchFileMimeType(path capi.String) capi.String {
	return newReturnedString(platformFS.MimeType(lossyString(path, "file_mime_type")))
}

func dispatchFileCharset(path capi.String) capi.String {
	return newReturnedString(platformFS.Charset(lossyString(path, "file_charset")))
}

// dispatchOpenFile returns a buffer owned by the native library, or a null
// buffer if the file cannot be read.
func dispatchOpenFile(path capi.String) capi.Buffer {
	p := lossyString(path, "open_file")
	data, err := platformFS.ReadFile(p)
	if err != nil {
		Logger().Debug("file system read failed", zap.String("path", p), zap.Error(err))
		return 0
	}
	return api.CreateBufferFromCopy(data)
}

func dispatchClipboardClear() { platformClipboard.Clear() }

// dispatchClipboardRead stores the clipboard text into the native result
// string, which the library owns.
func dispatchClipboardRead(result capi.String) {
	text := platformClipboard.ReadPlainText()
	if err := withString(text, func(h capi.String) { api.StringAssign(result, h) }); err != nil {
		Logger().Warn("clipboard read dropped", zap.Error(err))
	}
}

func dispatchClipboardWrite(text capi.String) {
	platformClipboard.WritePlainText(lossyString(text, "clipboard_write"))
}

// ZapLogger adapts a zap logger to the native library's log hook.
func ZapLogger(l *zap.Logger) PlatformLogger {
	return zapPlatformLogger{l: l.Named("ultralight")}
}

type zapPlatformLogger struct {
	l *zap.Logger
}

func (z zapPlatformLogger) LogMessage(level LogLevel, message string) {
	switch level {
	case LogLevelError:
		z.l.Error(message)
	case LogLevelWarning:
		z.l.Warn(message)
	default:
		z.l.Info(message)
	}
}
