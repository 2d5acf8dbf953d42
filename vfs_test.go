// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ui/index.html", "ui/index.html"},
		{"/ui/index.html", "ui/index.html"},
		{"///ui//app.js", "ui/app.js"},
		{`ui\css\style.css`, "ui/css/style.css"},
		{"ui/./img/../app.js", "ui/app.js"},
		{"", "."},
		{"/", "."},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileURL(t *testing.T) {
	if got, want := FileURL(`/ui\index.html`), "file:///ui/index.html"; got != want {
		t.Errorf("FileURL() = %q, want %q", got, want)
	}
}

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"ui/index.html":     {Data: []byte("<h1>index</h1>")},
		"ui/css/style.css":  {Data: []byte("body{}")},
		"ui/img/logo.svg":   {Data: []byte("<svg/>")},
		"ui/fonts/data.bin": {Data: []byte{0, 1, 2}},
	}
}

func TestFSFileSystemPreload(t *testing.T) {
	f := NewFSFileSystem(newTestFS())
	if got := f.FileCount(); got != 0 {
		t.Errorf("FileCount() before Preload = %d, want 0", got)
	}
	if err := f.Preload(); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}
	if got := f.FileCount(); got != 4 {
		t.Errorf("FileCount() = %d, want 4", got)
	}
	f.ClearFiles()
	if got := f.FileCount(); got != 0 {
		t.Errorf("FileCount() after ClearFiles = %d, want 0", got)
	}
	// The fs.FS still serves after the registered copies are gone.
	if !f.FileExists("ui/index.html") {
		t.Errorf("FileExists() = false after ClearFiles")
	}
}

func TestFSFileSystemRegisterOverrides(t *testing.T) {
	f := NewFSFileSystem(newTestFS())
	f.RegisterFile(`\ui\index.html`, []byte("<h1>patched</h1>"))
	data, err := f.ReadFile("ui/index.html")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<h1>patched</h1>" {
		t.Errorf("ReadFile() = %q, want the registered copy", data)
	}
	data, err = f.ReadFile("/ui/css/style.css")
	if err != nil || string(data) != "body{}" {
		t.Errorf("ReadFile(style.css) = %q, %v", data, err)
	}
}

func TestFSFileSystemNil(t *testing.T) {
	f := NewFSFileSystem(nil)
	if err := f.Preload(); err != nil {
		t.Errorf("Preload() error = %v", err)
	}
	if f.FileExists("a.txt") {
		t.Errorf("FileExists() = true on an empty file system")
	}
	if _, err := f.ReadFile("a.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
	f.RegisterFile("a.txt", []byte("a"))
	if !f.FileExists("/a.txt") {
		t.Errorf("FileExists(/a.txt) = false after RegisterFile")
	}
}

func TestFSFileSystemMimeType(t *testing.T) {
	f := NewFSFileSystem(nil)
	tests := []struct {
		path, want string
	}{
		{"ui/index.html", "text/html"},
		{"ui/css/style.css", "text/css"},
		{"ui/img/logo.svg", "image/svg+xml"},
		{"ui/fonts/data.unknownext", "application/octet-stream"},
		{"README", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := f.MimeType(tt.path); got != tt.want {
			t.Errorf("MimeType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
	if got := f.Charset("ui/index.html"); got != "utf-8" {
		t.Errorf("Charset() = %q, want utf-8", got)
	}
}
