// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strings"
	"sync"
)

// FSFileSystem is a FileSystem backed by an fs.FS, typically an embed.FS,
// so pages can load assets without exposing them on disk. Pass it as
// Options.FileSystem and load pages with FileURL.
//
// Files added with RegisterFile take priority over the fs.FS.
type FSFileSystem struct {
	fsys fs.FS

	mu    sync.RWMutex
	files map[string][]byte
}

// NewFSFileSystem serves fsys. A nil fsys serves only registered files.
func NewFSFileSystem(fsys fs.FS) *FSFileSystem {
	return &FSFileSystem{fsys: fsys, files: make(map[string][]byte)}
}

// normalize turns a native path or URL path into an fs.FS path.
func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return "."
	}
	return path.Clean(p)
}

// FileURL returns the file:/// URL of a path inside the file system.
func FileURL(filePath string) string {
	return "file:///" + normalize(filePath)
}

// RegisterFile adds an in-memory file at filePath, e.g. "ui/style.css".
func (f *FSFileSystem) RegisterFile(filePath string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[normalize(filePath)] = data
}

// ClearFiles drops every registered file.
func (f *FSFileSystem) ClearFiles() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.files)
}

// FileCount returns the number of registered files.
func (f *FSFileSystem) FileCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.files)
}

// Preload registers every file of the fs.FS in memory.
func (f *FSFileSystem) Preload() error {
	if f.fsys == nil {
		return nil
	}
	err := fs.WalkDir(f.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, readErr := fs.ReadFile(f.fsys, p)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", p, readErr)
		}
		f.RegisterFile(p, data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking FS: %w", err)
	}
	return nil
}

func (f *FSFileSystem) registered(p string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, ok := f.files[p]
	return data, ok
}

func (f *FSFileSystem) FileExists(filePath string) bool {
	p := normalize(filePath)
	if _, ok := f.registered(p); ok {
		return true
	}
	if f.fsys == nil {
		return false
	}
	info, err := fs.Stat(f.fsys, p)
	return err == nil && !info.IsDir()
}

// MimeType guesses the type from the extension.
func (f *FSFileSystem) MimeType(filePath string) string {
	t := mime.TypeByExtension(path.Ext(filePath))
	if t == "" {
		return "application/octet-stream"
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return t
}

// Charset always reports utf-8.
func (f *FSFileSystem) Charset(string) string { return "utf-8" }

func (f *FSFileSystem) ReadFile(filePath string) ([]byte, error) {
	p := normalize(filePath)
	if data, ok := f.registered(p); ok {
		return data, nil
	}
	if f.fsys == nil {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return fs.ReadFile(f.fsys, p)
}
