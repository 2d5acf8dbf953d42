// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures Init. The yaml-tagged fields can be loaded from a file
// with ReadOptions; the platform hooks can only be set from code.
type Options struct {
	// BaseDir holds the Ultralight SDK libraries. Defaults to the working
	// directory, then the executable's directory.
	BaseDir string `yaml:"base_dir"`

	// FontLoader enables the operating system font loader.
	FontLoader bool `yaml:"font_loader"`

	// FileSystemPath enables the built-in file system rooted at this path.
	// Ignored when FileSystem is set.
	FileSystemPath string `yaml:"file_system_path"`

	// LogPath enables the built-in logger, writing to this file. Ignored
	// when Logger is set.
	LogPath string `yaml:"log_path"`

	Config   ConfigOptions   `yaml:"config"`
	Settings SettingsOptions `yaml:"settings"`
	View     ViewOptions     `yaml:"view"`

	Logger     PlatformLogger `yaml:"-"`
	FileSystem FileSystem     `yaml:"-"`
	Clipboard  Clipboard      `yaml:"-"`

	// SurfaceFactory supplies the pixel storage of CPU view surfaces in
	// place of the library's bitmaps.
	SurfaceFactory SurfaceFactory `yaml:"-"`
}

// ConfigOptions mirrors the Config setters. Nil fields keep the library
// default.
type ConfigOptions struct {
	CachePath           *string  `yaml:"cache_path"`
	ResourcePathPrefix  *string  `yaml:"resource_path_prefix"`
	FaceWinding         *string  `yaml:"face_winding"` // clockwise, counter_clockwise
	FontHinting         *string  `yaml:"font_hinting"` // smooth, normal, monochrome, none
	FontGamma           *float64 `yaml:"font_gamma"`
	UserStylesheet      *string  `yaml:"user_stylesheet"`
	ForceRepaint        *bool    `yaml:"force_repaint"`
	AnimationTimerDelay *float64 `yaml:"animation_timer_delay"`
	ScrollTimerDelay    *float64 `yaml:"scroll_timer_delay"`
	RecycleDelay        *float64 `yaml:"recycle_delay"`
	MemoryCacheSize     *uint32  `yaml:"memory_cache_size"`
	PageCacheSize       *uint32  `yaml:"page_cache_size"`
	OverrideRAMSize     *uint32  `yaml:"override_ram_size"`
	MinLargeHeapSize    *uint32  `yaml:"min_large_heap_size"`
	MinSmallHeapSize    *uint32  `yaml:"min_small_heap_size"`
	NumRendererThreads  *uint32  `yaml:"num_renderer_threads"`
	MaxUpdateTime       *float64 `yaml:"max_update_time"`
	BitmapAlignment     *uint32  `yaml:"bitmap_alignment"`
}

// SettingsOptions mirrors the Settings setters.
type SettingsOptions struct {
	DeveloperName             *string `yaml:"developer_name"`
	AppName                   *string `yaml:"app_name"`
	FileSystemPath            *string `yaml:"file_system_path"`
	LoadShadersFromFileSystem *bool   `yaml:"load_shaders_from_file_system"`
	ForceCPURenderer          *bool   `yaml:"force_cpu_renderer"`
}

// ViewOptions mirrors the ViewConfig setters.
type ViewOptions struct {
	Accelerated         *bool    `yaml:"accelerated"`
	Transparent         *bool    `yaml:"transparent"`
	InitialDeviceScale  *float64 `yaml:"initial_device_scale"`
	InitialFocus        *bool    `yaml:"initial_focus"`
	EnableImages        *bool    `yaml:"enable_images"`
	EnableJavaScript    *bool    `yaml:"enable_javascript"`
	FontFamilyStandard  *string  `yaml:"font_family_standard"`
	FontFamilyFixed     *string  `yaml:"font_family_fixed"`
	FontFamilySerif     *string  `yaml:"font_family_serif"`
	FontFamilySansSerif *string  `yaml:"font_family_sans_serif"`
	UserAgent           *string  `yaml:"user_agent"`
}

var faceWindings = map[string]FaceWinding{
	"clockwise":         FaceWindingClockwise,
	"counter_clockwise": FaceWindingCounterClockwise,
}

var fontHintings = map[string]FontHinting{
	"smooth":     FontHintingSmooth,
	"normal":     FontHintingNormal,
	"monochrome": FontHintingMonochrome,
	"none":       FontHintingNone,
}

// ReadOptions loads options from a YAML file. A missing file yields the
// zero Options.
func ReadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Options{}, nil
	}
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to read: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes YAML options. Unknown keys are rejected.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks enumerated option values.
func (o Options) Validate() error {
	if w := o.Config.FaceWinding; w != nil {
		if _, ok := faceWindings[*w]; !ok {
			return fmt.Errorf("config.face_winding: unknown value %q", *w)
		}
	}
	if h := o.Config.FontHinting; h != nil {
		if _, ok := fontHintings[*h]; !ok {
			return fmt.Errorf("config.font_hinting: unknown value %q", *h)
		}
	}
	if s := o.View.InitialDeviceScale; s != nil && *s <= 0 {
		return fmt.Errorf("view.initial_device_scale: must be positive, got %v", *s)
	}
	return nil
}

// Apply sets every non-nil option on c.
func (o ConfigOptions) Apply(c *Config) error {
	for _, s := range []struct {
		v   *string
		set func(string) error
	}{
		{o.CachePath, c.SetCachePath},
		{o.ResourcePathPrefix, c.SetResourcePathPrefix},
		{o.UserStylesheet, c.SetUserStylesheet},
	} {
		if s.v != nil {
			if err := s.set(*s.v); err != nil {
				return err
			}
		}
	}
	if o.FaceWinding != nil {
		w, ok := faceWindings[*o.FaceWinding]
		if !ok {
			return fmt.Errorf("face_winding: unknown value %q", *o.FaceWinding)
		}
		c.SetFaceWinding(w)
	}
	if o.FontHinting != nil {
		h, ok := fontHintings[*o.FontHinting]
		if !ok {
			return fmt.Errorf("font_hinting: unknown value %q", *o.FontHinting)
		}
		c.SetFontHinting(h)
	}
	if o.ForceRepaint != nil {
		c.SetForceRepaint(*o.ForceRepaint)
	}
	for _, f := range []struct {
		v   *float64
		set func(float64)
	}{
		{o.FontGamma, c.SetFontGamma},
		{o.AnimationTimerDelay, c.SetAnimationTimerDelay},
		{o.ScrollTimerDelay, c.SetScrollTimerDelay},
		{o.RecycleDelay, c.SetRecycleDelay},
		{o.MaxUpdateTime, c.SetMaxUpdateTime},
	} {
		if f.v != nil {
			f.set(*f.v)
		}
	}
	for _, u := range []struct {
		v   *uint32
		set func(uint32)
	}{
		{o.MemoryCacheSize, c.SetMemoryCacheSize},
		{o.PageCacheSize, c.SetPageCacheSize},
		{o.OverrideRAMSize, c.SetOverrideRAMSize},
		{o.MinLargeHeapSize, c.SetMinLargeHeapSize},
		{o.MinSmallHeapSize, c.SetMinSmallHeapSize},
		{o.NumRendererThreads, c.SetNumRendererThreads},
		{o.BitmapAlignment, c.SetBitmapAlignment},
	} {
		if u.v != nil {
			u.set(*u.v)
		}
	}
	return nil
}

// Apply sets every non-nil option on s.
func (o SettingsOptions) Apply(s *Settings) error {
	for _, str := range []struct {
		v   *string
		set func(string) error
	}{
		{o.DeveloperName, s.SetDeveloperName},
		{o.AppName, s.SetAppName},
		{o.FileSystemPath, s.SetFileSystemPath},
	} {
		if str.v != nil {
			if err := str.set(*str.v); err != nil {
				return err
			}
		}
	}
	if o.LoadShadersFromFileSystem != nil {
		s.SetLoadShadersFromFileSystem(*o.LoadShadersFromFileSystem)
	}
	if o.ForceCPURenderer != nil {
		s.SetForceCPURenderer(*o.ForceCPURenderer)
	}
	return nil
}

// Apply sets every non-nil option on c.
func (o ViewOptions) Apply(c *ViewConfig) error {
	for _, b := range []struct {
		v   *bool
		set func(bool)
	}{
		{o.Accelerated, c.SetAccelerated},
		{o.Transparent, c.SetTransparent},
		{o.InitialFocus, c.SetInitialFocus},
		{o.EnableImages, c.SetEnableImages},
		{o.EnableJavaScript, c.SetEnableJavaScript},
	} {
		if b.v != nil {
			b.set(*b.v)
		}
	}
	if o.InitialDeviceScale != nil {
		c.SetInitialDeviceScale(*o.InitialDeviceScale)
	}
	for _, str := range []struct {
		v   *string
		set func(string) error
	}{
		{o.FontFamilyStandard, c.SetFontFamilyStandard},
		{o.FontFamilyFixed, c.SetFontFamilyFixed},
		{o.FontFamilySerif, c.SetFontFamilySerif},
		{o.FontFamilySansSerif, c.SetFontFamilySansSerif},
		{o.UserAgent, c.SetUserAgent},
	} {
		if str.v != nil {
			if err := str.set(*str.v); err != nil {
				return err
			}
		}
	}
	return nil
}
