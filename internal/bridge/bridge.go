// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package bridge implements capi.API on top of the Ultralight 1.4 shared
// libraries, loaded at runtime with purego. No cgo is involved.
//
// Only 64-bit targets are supported, matching the SDK.
package bridge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"github.com/ebitengine/purego"
)

func init() {
	// Ultralight requires all API calls to be made from the same OS thread.
	runtime.LockOSThread()
}

var (
	loadOnce sync.Once
	loadErr  error
	libs     []uintptr
)

// Load opens the SDK libraries found in baseDir and resolves every symbol.
// An empty baseDir means the working directory, falling back to the
// executable's directory when the libraries are not there. Only the first
// call does any work; later calls return its result.
func Load(baseDir string) (capi.API, error) {
	loadOnce.Do(func() {
		loadErr = load(resolveBaseDir(baseDir))
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return lib{}, nil
}

func resolveBaseDir(baseDir string) string {
	if baseDir != "" {
		return baseDir
	}
	baseDir, _ = os.Getwd()
	if _, err := os.Stat(filepath.Join(baseDir, libraryNames[0])); err != nil {
		if exe, _ := os.Executable(); exe != "" {
			baseDir = filepath.Dir(exe)
		}
	}
	return baseDir
}

func load(baseDir string) error {
	// Dependencies first: each library links against the ones before it.
	for _, name := range libraryNames {
		p := filepath.Join(baseDir, name)
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		h, err := openLibrary(abs)
		if err != nil {
			return fmt.Errorf("failed to load %s from %s: %w", name, abs, err)
		}
		libs = append(libs, h)
	}
	var errs []error
	for _, reg := range symbols() {
		if err := registerSymbol(reg.fptr, reg.name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", reg.name, err))
		}
	}
	errs = append(errs, registerKeyed()...)
	return errors.Join(errs...)
}

// registerSymbol binds fptr to the first library exporting name.
func registerSymbol(fptr any, name string) error {
	for _, h := range libs {
		if sym, err := symbolAddr(h, name); err == nil && sym != 0 {
			purego.RegisterFunc(fptr, sym)
			return nil
		}
	}
	return fmt.Errorf("symbol %q not found", name)
}
