// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YindSoft/ultralight-go/internal/capi"
)

const sampleOptions = `
font_loader: true
file_system_path: ./assets
log_path: ultralight.log
config:
  cache_path: /tmp/ul-cache
  face_winding: counter_clockwise
  font_hinting: monochrome
  font_gamma: 1.8
  force_repaint: true
  memory_cache_size: 1048576
settings:
  developer_name: YindSoft
  app_name: demo
  force_cpu_renderer: true
view:
  transparent: true
  initial_device_scale: 2
  user_agent: demo/1.0
`

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(sampleOptions))
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	if !opts.FontLoader || opts.FileSystemPath != "./assets" || opts.LogPath != "ultralight.log" {
		t.Errorf("top-level options = %+v", opts)
	}
	if opts.Config.CachePath == nil || *opts.Config.CachePath != "/tmp/ul-cache" {
		t.Errorf("config.cache_path = %v", opts.Config.CachePath)
	}
	if opts.Config.MemoryCacheSize == nil || *opts.Config.MemoryCacheSize != 1<<20 {
		t.Errorf("config.memory_cache_size = %v", opts.Config.MemoryCacheSize)
	}
	if opts.Config.PageCacheSize != nil {
		t.Errorf("config.page_cache_size = %v, want nil", *opts.Config.PageCacheSize)
	}
	if opts.View.InitialDeviceScale == nil || *opts.View.InitialDeviceScale != 2 {
		t.Errorf("view.initial_device_scale = %v", opts.View.InitialDeviceScale)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "font_loadr: true\n", "font_loadr"},
		{"bad winding", "config:\n  face_winding: sideways\n", "face_winding"},
		{"bad hinting", "config:\n  font_hinting: sharp\n", "font_hinting"},
		{"zero scale", "view:\n  initial_device_scale: 0\n", "initial_device_scale"},
		{"wrong type", "config:\n  memory_cache_size: lots\n", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tt.yaml))
			if err == nil {
				t.Fatal("ParseOptions() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseOptions() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseOptionsEmpty(t *testing.T) {
	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatalf("ParseOptions(nil) error = %v", err)
	}
	if opts.FontLoader || opts.Config.CachePath != nil {
		t.Errorf("ParseOptions(nil) = %+v, want zero", opts)
	}
}

func TestReadOptions(t *testing.T) {
	dir := t.TempDir()

	opts, err := ReadOptions(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("ReadOptions(missing) error = %v", err)
	}
	if opts.FontLoader || opts.LogPath != "" {
		t.Errorf("ReadOptions(missing) = %+v, want zero", opts)
	}

	path := filepath.Join(dir, "ultralight.yaml")
	if err := os.WriteFile(path, []byte(sampleOptions), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err = ReadOptions(path)
	if err != nil {
		t.Fatalf("ReadOptions() error = %v", err)
	}
	if !opts.FontLoader {
		t.Errorf("FontLoader = false, want true")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("nope: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadOptions(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("ReadOptions(bad) error = %v, want it to name the file", err)
	}
}

func TestOptionsApply(t *testing.T) {
	fake := setup(t, Options{})
	opts, err := ParseOptions([]byte(sampleOptions))
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	defer cfg.Close()
	if err := opts.Config.Apply(cfg); err != nil {
		t.Fatalf("ConfigOptions.Apply() error = %v", err)
	}
	ch := capi.Config(cfg.Handle())
	configChecks := []struct {
		key  capi.ConfigKey
		want any
	}{
		{capi.ConfigCachePath, "/tmp/ul-cache"},
		{capi.ConfigFaceWinding, uint32(FaceWindingCounterClockwise)},
		{capi.ConfigFontHinting, uint32(FontHintingMonochrome)},
		{capi.ConfigFontGamma, 1.8},
		{capi.ConfigForceRepaint, true},
		{capi.ConfigMemoryCacheSize, uint32(1 << 20)},
		{capi.ConfigPageCacheSize, nil},
	}
	for _, c := range configChecks {
		if got := fake.ConfigValue(ch, c.key); got != c.want {
			t.Errorf("config key %d = %v, want %v", c.key, got, c.want)
		}
	}

	settings, err := NewSettings()
	if err != nil {
		t.Fatalf("NewSettings() error = %v", err)
	}
	defer settings.Close()
	if err := opts.Settings.Apply(settings); err != nil {
		t.Fatalf("SettingsOptions.Apply() error = %v", err)
	}
	sh := capi.Settings(settings.Handle())
	if got := fake.SettingsValue(sh, capi.SettingsDeveloperName); got != "YindSoft" {
		t.Errorf("developer name = %v, want YindSoft", got)
	}
	if got := fake.SettingsValue(sh, capi.SettingsForceCPURenderer); got != true {
		t.Errorf("force cpu renderer = %v, want true", got)
	}

	vc, err := NewViewConfig()
	if err != nil {
		t.Fatalf("NewViewConfig() error = %v", err)
	}
	defer vc.Close()
	if err := opts.View.Apply(vc); err != nil {
		t.Fatalf("ViewOptions.Apply() error = %v", err)
	}
	v, err := newTestRenderer(t).NewView(320, 240, vc, nil)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	defer v.Close()
	if !v.IsTransparent() {
		t.Errorf("IsTransparent() = false, want true")
	}
	if got := v.DeviceScale(); got != 2 {
		t.Errorf("DeviceScale() = %v, want 2", got)
	}
}
