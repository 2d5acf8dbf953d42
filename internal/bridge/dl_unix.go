// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package bridge

import (
	"runtime"

	"github.com/ebitengine/purego"
)

var libraryNames = func() []string {
	ext := ".so"
	if runtime.GOOS == "darwin" {
		ext = ".dylib"
	}
	return []string{
		"libUltralightCore" + ext,
		"libWebCore" + ext,
		"libUltralight" + ext,
		"libAppCore" + ext,
	}
}()

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func symbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
