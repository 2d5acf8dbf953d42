// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Config holds renderer-wide options. It is read when a Renderer or App is
// created; changing it afterwards has no effect on them.
type Config struct {
	ref    ref[capi.Config]
	values []configValue
}

type configValue struct {
	key   capi.ConfigKey
	value any
}

// NewConfig creates a Config with the library defaults.
func NewConfig() (*Config, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	r, err := own("config", a.CreateConfig(), a.DestroyConfig)
	if err != nil {
		return nil, err
	}
	return &Config{ref: r}, nil
}

func (c *Config) Handle() uintptr { return uintptr(c.ref.get()) }
func (c *Config) Owned() bool     { return c.ref.owning() }

// Close destroys the native config. It is safe to call twice.
func (c *Config) Close() { c.ref.release() }

// Clone returns a new owned Config with every value set on c so far.
func (c *Config) Clone() (*Config, error) {
	r, err := own("config", api.CreateConfig(), api.DestroyConfig)
	if err != nil {
		return nil, err
	}
	clone := &Config{ref: r}
	for _, v := range c.values {
		if err := clone.apply(v.key, v.value); err != nil {
			clone.Close()
			return nil, err
		}
	}
	return clone, nil
}

func (c *Config) apply(key capi.ConfigKey, value any) error {
	h := c.ref.get()
	switch v := value.(type) {
	case string:
		if err := withString(v, func(s capi.String) { api.ConfigSetString(h, key, s) }); err != nil {
			return err
		}
	case bool:
		api.ConfigSetBool(h, key, v)
	case uint32:
		api.ConfigSetUint(h, key, v)
	case float64:
		api.ConfigSetFloat(h, key, v)
	}
	for i := range c.values {
		if c.values[i].key == key {
			c.values[i].value = value
			return nil
		}
	}
	c.values = append(c.values, configValue{key, value})
	return nil
}

// SetCachePath sets the directory used for the disk cache and persistent
// sessions.
func (c *Config) SetCachePath(path string) error { return c.apply(capi.ConfigCachePath, path) }

// SetResourcePathPrefix sets the path prefix, relative to the file system
// root, under which bundled resources (cacert.pem, icudt67l.dat) live.
func (c *Config) SetResourcePathPrefix(prefix string) error {
	return c.apply(capi.ConfigResourcePathPrefix, prefix)
}

func (c *Config) SetFaceWinding(w FaceWinding) { c.apply(capi.ConfigFaceWinding, uint32(w)) }
func (c *Config) SetFontHinting(h FontHinting) { c.apply(capi.ConfigFontHinting, uint32(h)) }
func (c *Config) SetFontGamma(gamma float64)   { c.apply(capi.ConfigFontGamma, gamma) }

// SetUserStylesheet sets CSS applied to every page.
func (c *Config) SetUserStylesheet(css string) error {
	return c.apply(capi.ConfigUserStylesheet, css)
}

// SetForceRepaint makes every frame repaint, even when nothing changed.
func (c *Config) SetForceRepaint(enabled bool) { c.apply(capi.ConfigForceRepaint, enabled) }

func (c *Config) SetAnimationTimerDelay(seconds float64) {
	c.apply(capi.ConfigAnimationTimerDelay, seconds)
}

func (c *Config) SetScrollTimerDelay(seconds float64) {
	c.apply(capi.ConfigScrollTimerDelay, seconds)
}

func (c *Config) SetRecycleDelay(seconds float64) { c.apply(capi.ConfigRecycleDelay, seconds) }

func (c *Config) SetMemoryCacheSize(bytes uint32) { c.apply(capi.ConfigMemoryCacheSize, bytes) }

// SetPageCacheSize sets how many pages are kept for back/forward navigation.
func (c *Config) SetPageCacheSize(pages uint32) { c.apply(capi.ConfigPageCacheSize, pages) }

// SetOverrideRAMSize overrides the detected system RAM, in bytes. Zero
// means detect.
func (c *Config) SetOverrideRAMSize(bytes uint32) { c.apply(capi.ConfigOverrideRAMSize, bytes) }

func (c *Config) SetMinLargeHeapSize(bytes uint32) { c.apply(capi.ConfigMinLargeHeapSize, bytes) }
func (c *Config) SetMinSmallHeapSize(bytes uint32) { c.apply(capi.ConfigMinSmallHeapSize, bytes) }

// SetNumRendererThreads sets the renderer's worker thread count. Zero means
// one per CPU.
func (c *Config) SetNumRendererThreads(n uint32) { c.apply(capi.ConfigNumRendererThreads, n) }

// SetMaxUpdateTime caps the time, in seconds, spent dispatching timers per
// Renderer.Update.
func (c *Config) SetMaxUpdateTime(seconds float64) { c.apply(capi.ConfigMaxUpdateTime, seconds) }

// SetBitmapAlignment sets the row alignment of bitmap surfaces in bytes.
func (c *Config) SetBitmapAlignment(bytes uint32) { c.apply(capi.ConfigBitmapAlignment, bytes) }

// ViewConfig holds per-view creation options.
type ViewConfig struct {
	ref ref[capi.ViewConfig]
}

// NewViewConfig creates a ViewConfig with the library defaults.
func NewViewConfig() (*ViewConfig, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	r, err := own("view config", a.CreateViewConfig(), a.DestroyViewConfig)
	if err != nil {
		return nil, err
	}
	return &ViewConfig{ref: r}, nil
}

func (c *ViewConfig) Handle() uintptr { return uintptr(c.ref.get()) }
func (c *ViewConfig) Owned() bool     { return c.ref.owning() }
func (c *ViewConfig) Close()          { c.ref.release() }

// SetAccelerated selects GPU rendering. CPU views render into a bitmap
// Surface instead.
func (c *ViewConfig) SetAccelerated(enabled bool) {
	api.ViewConfigSetBool(c.ref.get(), capi.ViewConfigIsAccelerated, enabled)
}

func (c *ViewConfig) SetTransparent(enabled bool) {
	api.ViewConfigSetBool(c.ref.get(), capi.ViewConfigIsTransparent, enabled)
}

func (c *ViewConfig) SetInitialDeviceScale(scale float64) {
	api.ViewConfigSetFloat(c.ref.get(), capi.ViewConfigInitialDeviceScale, scale)
}

func (c *ViewConfig) SetInitialFocus(focused bool) {
	api.ViewConfigSetBool(c.ref.get(), capi.ViewConfigInitialFocus, focused)
}

func (c *ViewConfig) SetEnableImages(enabled bool) {
	api.ViewConfigSetBool(c.ref.get(), capi.ViewConfigEnableImages, enabled)
}

func (c *ViewConfig) SetEnableJavaScript(enabled bool) {
	api.ViewConfigSetBool(c.ref.get(), capi.ViewConfigEnableJavaScript, enabled)
}

func (c *ViewConfig) setString(key capi.ViewConfigKey, value string) error {
	h := c.ref.get()
	return withString(value, func(s capi.String) { api.ViewConfigSetString(h, key, s) })
}

func (c *ViewConfig) SetFontFamilyStandard(family string) error {
	return c.setString(capi.ViewConfigFontFamilyStandard, family)
}

func (c *ViewConfig) SetFontFamilyFixed(family string) error {
	return c.setString(capi.ViewConfigFontFamilyFixed, family)
}

func (c *ViewConfig) SetFontFamilySerif(family string) error {
	return c.setString(capi.ViewConfigFontFamilySerif, family)
}

func (c *ViewConfig) SetFontFamilySansSerif(family string) error {
	return c.setString(capi.ViewConfigFontFamilySansSerif, family)
}

func (c *ViewConfig) SetUserAgent(agent string) error {
	return c.setString(capi.ViewConfigUserAgent, agent)
}
