// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package bridge

import "github.com/YindSoft/ultralight-go/internal/capi"

func createChildTrampoline(fn capi.CreateChildFunc) any {
	return func(userData, caller, openerURL, targetURL, isPopup, rectLo, rectHi uintptr) uintptr {
		return uintptr(fn(userData, capi.View(caller), capi.String(openerURL), capi.String(targetURL),
			cbool(isPopup), unpackRect(rectLo, rectHi)))
	}
}
