// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package bridge

import (
	"fmt"
	"syscall"
)

var libraryNames = []string{
	"UltralightCore.dll",
	"WebCore.dll",
	"Ultralight.dll",
	"AppCore.dll",
}

func openLibrary(path string) (uintptr, error) {
	lib, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(lib), nil
}

func symbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}
