// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package bridge

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"github.com/ebitengine/purego"
)

// Native callbacks are never freed and purego caps how many can exist, so
// each Go function is turned into a native pointer once. All trampolines take
// and return uintptr-sized values, which is the only shape the Windows
// callback mechanism accepts.
var (
	nativeMu  sync.Mutex
	nativeFns = make(map[uintptr]uintptr)
)

// nativeCallback returns the native pointer for fn, creating it with wrap on
// first use. A nil fn yields the null pointer. fn must be a top-level
// function: closures of one literal share a code pointer.
func nativeCallback(fn any, wrap func() any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}
	pc := v.Pointer()
	nativeMu.Lock()
	defer nativeMu.Unlock()
	if p, ok := nativeFns[pc]; ok {
		return p
	}
	p := purego.NewCallback(wrap())
	nativeFns[pc] = p
	return p
}

// cbool reads a C bool passed in a full register.
func cbool(x uintptr) bool { return x&0xff != 0 }

func fromBool(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// unpackRect splits a ULIntRect passed in two integer registers.
func unpackRect(lo, hi uintptr) capi.IntRect {
	return capi.IntRect{
		Left:   int32(uint32(lo)),
		Top:    int32(uint32(lo >> 32)),
		Right:  int32(uint32(hi)),
		Bottom: int32(uint32(hi >> 32)),
	}
}

func voidCallback(fn capi.VoidFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData uintptr) uintptr {
			fn(userData)
			return 0
		}
	})
}

func windowCallback(fn capi.WindowFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, w uintptr) uintptr {
			fn(userData, capi.Window(w))
			return 0
		}
	})
}

func resizeCallback(fn capi.ResizeFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, w, width, height uintptr) uintptr {
			fn(userData, capi.Window(w), uint32(width), uint32(height))
			return 0
		}
	})
}

func frameCallback(fn capi.FrameFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, caller, frameID, isMainFrame, url uintptr) uintptr {
			fn(userData, capi.View(caller), uint64(frameID), cbool(isMainFrame), capi.String(url))
			return 0
		}
	})
}

func stringCallback(fn capi.StringFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, caller, value uintptr) uintptr {
			fn(userData, capi.View(caller), capi.String(value))
			return 0
		}
	})
}

func viewCallback(fn capi.ViewFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, caller uintptr) uintptr {
			fn(userData, capi.View(caller))
			return 0
		}
	})
}

func cursorCallback(fn capi.CursorFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, caller, cursor uintptr) uintptr {
			fn(userData, capi.View(caller), int32(cursor))
			return 0
		}
	})
}

func failLoadingCallback(fn capi.FailLoadingFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, caller, frameID, isMainFrame, url, description, errorDomain, errorCode uintptr) uintptr {
			fn(userData, capi.View(caller), uint64(frameID), cbool(isMainFrame),
				capi.String(url), capi.String(description), capi.String(errorDomain), int32(errorCode))
			return 0
		}
	})
}

func consoleCallback(fn capi.ConsoleFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(userData, caller, source, level, message, line, column, sourceID uintptr) uintptr {
			fn(userData, capi.View(caller), uint32(source), uint32(level),
				capi.String(message), uint32(line), uint32(column), capi.String(sourceID))
			return 0
		}
	})
}

func createChildCallback(fn capi.CreateChildFunc) uintptr {
	return nativeCallback(fn, func() any { return createChildTrampoline(fn) })
}

// Platform hook tables mirror ULLogger, ULClipboard, ULFileSystem and
// ULSurfaceDefinition.
type (
	loggerTable struct {
		logMessage uintptr
	}
	clipboardTable struct {
		clear          uintptr
		readPlainText  uintptr
		writePlainText uintptr
	}
	fileSystemTable struct {
		fileExists      uintptr
		getFileMimeType uintptr
		getFileCharset  uintptr
		openFile        uintptr
	}
	surfaceDefinitionTable struct {
		create       uintptr
		destroy      uintptr
		getWidth     uintptr
		getHeight    uintptr
		getRowBytes  uintptr
		getSize      uintptr
		lockPixels   uintptr
		unlockPixels uintptr
		resize       uintptr
	}
)

func newLoggerTable(l capi.LoggerFuncs) loggerTable {
	return loggerTable{
		logMessage: nativeCallback(l.LogMessage, func() any {
			return func(level, message uintptr) uintptr {
				l.LogMessage(uint32(level), capi.String(message))
				return 0
			}
		}),
	}
}

func newClipboardTable(c capi.ClipboardFuncs) clipboardTable {
	return clipboardTable{
		clear: nativeCallback(c.Clear, func() any {
			return func() uintptr {
				c.Clear()
				return 0
			}
		}),
		readPlainText: nativeCallback(c.ReadPlainText, func() any {
			return func(result uintptr) uintptr {
				c.ReadPlainText(capi.String(result))
				return 0
			}
		}),
		writePlainText: nativeCallback(c.WritePlainText, func() any {
			return func(text uintptr) uintptr {
				c.WritePlainText(capi.String(text))
				return 0
			}
		}),
	}
}

func newFileSystemTable(f capi.FileSystemFuncs) fileSystemTable {
	return fileSystemTable{
		fileExists: nativeCallback(f.FileExists, func() any {
			return func(path uintptr) uintptr { return fromBool(f.FileExists(capi.String(path))) }
		}),
		getFileMimeType: nativeCallback(f.GetFileMimeType, func() any {
			return func(path uintptr) uintptr { return uintptr(f.GetFileMimeType(capi.String(path))) }
		}),
		getFileCharset: nativeCallback(f.GetFileCharset, func() any {
			return func(path uintptr) uintptr { return uintptr(f.GetFileCharset(capi.String(path))) }
		}),
		openFile: nativeCallback(f.OpenFile, func() any {
			return func(path uintptr) uintptr { return uintptr(f.OpenFile(capi.String(path))) }
		}),
	}
}

func newSurfaceDefinitionTable(s capi.SurfaceFuncs) surfaceDefinitionTable {
	return surfaceDefinitionTable{
		create: nativeCallback(s.Create, func() any {
			return func(width, height uintptr) uintptr { return s.Create(uint32(width), uint32(height)) }
		}),
		destroy: nativeCallback(s.Destroy, func() any {
			return func(userData uintptr) uintptr {
				s.Destroy(userData)
				return 0
			}
		}),
		getWidth: nativeCallback(s.GetWidth, func() any {
			return func(userData uintptr) uintptr { return uintptr(s.GetWidth(userData)) }
		}),
		getHeight: nativeCallback(s.GetHeight, func() any {
			return func(userData uintptr) uintptr { return uintptr(s.GetHeight(userData)) }
		}),
		getRowBytes: nativeCallback(s.GetRowBytes, func() any {
			return func(userData uintptr) uintptr { return uintptr(s.GetRowBytes(userData)) }
		}),
		getSize: nativeCallback(s.GetSize, func() any {
			return func(userData uintptr) uintptr { return uintptr(s.GetSize(userData)) }
		}),
		lockPixels: nativeCallback(s.LockPixels, func() any {
			return func(userData uintptr) uintptr { return s.LockPixels(userData) }
		}),
		unlockPixels: nativeCallback(s.UnlockPixels, func() any {
			return func(userData uintptr) uintptr {
				s.UnlockPixels(userData)
				return 0
			}
		}),
		resize: nativeCallback(s.Resize, func() any {
			return func(userData, width, height uintptr) uintptr {
				s.Resize(userData, uint32(width), uint32(height))
				return 0
			}
		}),
	}
}

func hostCallback(fn capi.HostFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(ctx, function, this, argc, argv, exception uintptr) uintptr {
			var args []capi.JSValue
			if argc > 0 && argv != 0 {
				args = make([]capi.JSValue, argc)
				copy(args, unsafe.Slice((*capi.JSValue)(unsafe.Pointer(argv)), argc))
			}
			return uintptr(fn(capi.JSContext(ctx), capi.JSObject(function), capi.JSObject(this), args,
				(*capi.JSValue)(unsafe.Pointer(exception))))
		}
	})
}

func finalizeCallback(fn capi.FinalizeFunc) uintptr {
	return nativeCallback(fn, func() any {
		return func(object uintptr) uintptr {
			fn(capi.JSObject(object))
			return 0
		}
	})
}
