// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package bridge

import (
	"unsafe"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Structs wider than eight bytes are passed by reference on Windows x64.
func createChildTrampoline(fn capi.CreateChildFunc) any {
	return func(userData, caller, openerURL, targetURL, isPopup, rect uintptr) uintptr {
		return uintptr(fn(userData, capi.View(caller), capi.String(openerURL), capi.String(targetURL),
			cbool(isPopup), *(*capi.IntRect)(unsafe.Pointer(rect))))
	}
}
