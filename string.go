// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"strings"
	"unicode/utf8"

	"github.com/YindSoft/ultralight-go/internal/capi"
	"go.uber.org/zap"
)

// String is a native UTF-8 string.
type String struct {
	ref ref[capi.String]
}

// NewString copies s into a new native string.
func NewString(s string) (*String, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	r, err := own("string", a.CreateString(s), a.DestroyString)
	if err != nil {
		return nil, err
	}
	return &String{ref: r}, nil
}

func borrowString(h capi.String) (*String, error) {
	r, err := borrow("string", h)
	if err != nil {
		return nil, err
	}
	return &String{ref: r}, nil
}

// Handle returns the native handle. Ownership is unchanged.
func (s *String) Handle() uintptr { return uintptr(s.ref.get()) }

// Owned reports whether Close destroys the native string.
func (s *String) Owned() bool { return s.ref.owning() }

// Close destroys the native string if s owns it. It is safe to call twice.
func (s *String) Close() { s.ref.release() }

// Text returns the contents, or an EncodingError if they are not valid UTF-8.
func (s *String) Text() (string, error) {
	return goString(s.ref.get())
}

// String returns the contents with invalid UTF-8 replaced by U+FFFD.
func (s *String) String() string {
	return strings.ToValidUTF8(string(api.StringData(s.ref.get())), "\uFFFD")
}

// Len returns the length in bytes.
func (s *String) Len() int { return api.StringLength(s.ref.get()) }

func (s *String) IsEmpty() bool { return api.StringIsEmpty(s.ref.get()) }

// Assign replaces the contents of s with a copy of other.
func (s *String) Assign(other *String) {
	api.StringAssign(s.ref.get(), other.ref.get())
}

// Clone returns a new owned copy, whether or not s is owned.
func (s *String) Clone() (*String, error) {
	r, err := own("string", api.CreateStringFromCopy(s.ref.get()), api.DestroyString)
	if err != nil {
		return nil, err
	}
	return &String{ref: r}, nil
}

// goString converts a native string, failing on invalid UTF-8.
func goString(h capi.String) (string, error) {
	if h == 0 {
		return "", nil
	}
	data := api.StringData(h)
	if !utf8.Valid(data) {
		return "", &EncodingError{Offset: invalidOffset(data)}
	}
	return string(data), nil
}

// lossyString converts a native string for a callback, which has no way to
// report an error. Invalid sequences become U+FFFD and a warning is logged.
func lossyString(h capi.String, event string) string {
	if h == 0 {
		return ""
	}
	data := api.StringData(h)
	if utf8.Valid(data) {
		return string(data)
	}
	Logger().Warn("repaired invalid UTF-8 from native string",
		zap.String("event", event), zap.Int("offset", invalidOffset(data)))
	return strings.ToValidUTF8(string(data), "\uFFFD")
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// withString passes a temporary native copy of s to fn and destroys it once
// fn returns.
func withString(s string, fn func(capi.String)) error {
	h := api.CreateString(s)
	if h == 0 {
		return &HandleError{Kind: "string", Op: "create"}
	}
	defer api.DestroyString(h)
	fn(h)
	return nil
}
