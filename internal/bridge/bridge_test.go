// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package bridge

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

func TestUnpackRect(t *testing.T) {
	lo := uintptr(uint32(10)) | uintptr(uint32(20))<<32
	hi := uintptr(uint32(110)) | uintptr(uint32(0xFFFFFFFF))<<32
	got := unpackRect(lo, hi)
	want := capi.IntRect{Left: 10, Top: 20, Right: 110, Bottom: -1}
	if got != want {
		t.Errorf("unpackRect() = %+v, want %+v", got, want)
	}
}

func TestCBool(t *testing.T) {
	tests := []struct {
		in   uintptr
		want bool
	}{
		{0, false},
		{1, true},
		{0xFF00, false}, // garbage above the low byte
		{0xFF01, true},
	}
	for _, tt := range tests {
		if got := cbool(tt.in); got != tt.want {
			t.Errorf("cbool(%#x) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if fromBool(true) != 1 || fromBool(false) != 0 {
		t.Errorf("fromBool() mismatch")
	}
}

func TestNativeCallbackNil(t *testing.T) {
	var fn capi.VoidFunc
	if got := voidCallback(fn); got != 0 {
		t.Errorf("voidCallback(nil) = %#x, want 0", got)
	}
}

func TestSurfaceDefinitionTableNil(t *testing.T) {
	if got := newSurfaceDefinitionTable(capi.SurfaceFuncs{}); got != (surfaceDefinitionTable{}) {
		t.Errorf("newSurfaceDefinitionTable(empty) = %+v, want all null", got)
	}
}

func TestSymbolTable(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range symbols() {
		if seen[s.name] {
			t.Errorf("symbol %s listed twice", s.name)
		}
		seen[s.name] = true
		v := reflect.ValueOf(s.fptr)
		if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Func {
			t.Errorf("symbol %s: target %T is not a pointer to a func", s.name, s.fptr)
		}
		if !strings.HasPrefix(s.name, "ul") && !strings.HasPrefix(s.name, "JS") {
			t.Errorf("symbol %s: unexpected prefix", s.name)
		}
	}
}

func TestResolveBaseDir(t *testing.T) {
	if got := resolveBaseDir("/opt/ultralight"); got != "/opt/ultralight" {
		t.Errorf("resolveBaseDir(explicit) = %q", got)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, libraryNames[0]), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	got := resolveBaseDir("")
	if resolved, _ := filepath.EvalSymlinks(got); resolved != mustEvalSymlinks(t, dir) {
		t.Errorf("resolveBaseDir(\"\") = %q, want the working directory %q", got, dir)
	}
}

func mustEvalSymlinks(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestLoadMissingLibraries(t *testing.T) {
	err := load(t.TempDir())
	if err == nil {
		t.Fatal("load() of an empty directory returned no error")
	}
	if !strings.Contains(err.Error(), libraryNames[0]) {
		t.Errorf("load() error = %v, want it to name %s", err, libraryNames[0])
	}
}
