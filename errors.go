// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by constructors called before Init.
	ErrNotInitialized = errors.New("ultralight: not initialized")

	// ErrAlreadyInitialized is returned by a second call to Init. The native
	// library does not support swapping platform hooks once it is running.
	ErrAlreadyInitialized = errors.New("ultralight: already initialized")

	// ErrHandleUnavailable reports that the native library returned a null
	// handle where a resource was expected.
	ErrHandleUnavailable = errors.New("ultralight: handle unavailable")
)

// HandleError is returned when a native create call or accessor yields a null
// handle. It matches ErrHandleUnavailable with errors.Is.
type HandleError struct {
	Kind string // resource kind, e.g. "view"
	Op   string // native operation, e.g. "create"
}

func (e *HandleError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("ultralight: %s handle unavailable", e.Kind)
	}
	return fmt.Sprintf("ultralight: %s %s: handle unavailable", e.Op, e.Kind)
}

func (e *HandleError) Is(target error) bool { return target == ErrHandleUnavailable }

// EncodingError is returned when native text is not valid UTF-8.
type EncodingError struct {
	Offset int // byte offset of the first invalid sequence
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ultralight: invalid UTF-8 in native string at byte %d", e.Offset)
}

// ScriptError is a JavaScript exception raised by View.EvaluateScript.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string { return "ultralight: script exception: " + e.Message }

// LoadError describes a failed frame load.
type LoadError struct {
	FrameID     uint64
	IsMainFrame bool
	URL         string
	Description string
	Domain      string
	Code        int32
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ultralight: load %s failed: %s (%s %d)", e.URL, e.Description, e.Domain, e.Code)
}
