// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralight

import (
	"github.com/YindSoft/ultralight-go/internal/capi"
)

// Settings configures an App.
type Settings struct {
	ref ref[capi.Settings]
}

// NewSettings creates Settings with the library defaults.
func NewSettings() (*Settings, error) {
	a, err := native()
	if err != nil {
		return nil, err
	}
	r, err := own("settings", a.CreateSettings(), a.DestroySettings)
	if err != nil {
		return nil, err
	}
	return &Settings{ref: r}, nil
}

func (s *Settings) Handle() uintptr { return uintptr(s.ref.get()) }
func (s *Settings) Owned() bool     { return s.ref.owning() }
func (s *Settings) Close()          { s.ref.release() }

func (s *Settings) setString(key capi.SettingsKey, value string) error {
	h := s.ref.get()
	return withString(value, func(str capi.String) { api.SettingsSetString(h, key, str) })
}

// SetDeveloperName sets the developer name used to build the app data path.
func (s *Settings) SetDeveloperName(name string) error {
	return s.setString(capi.SettingsDeveloperName, name)
}

// SetAppName sets the app name used to build the app data path.
func (s *Settings) SetAppName(name string) error {
	return s.setString(capi.SettingsAppName, name)
}

// SetFileSystemPath sets the root that file:/// URLs resolve against.
func (s *Settings) SetFileSystemPath(path string) error {
	return s.setString(capi.SettingsFileSystemPath, path)
}

func (s *Settings) SetLoadShadersFromFileSystem(enabled bool) {
	api.SettingsSetBool(s.ref.get(), capi.SettingsLoadShadersFromFileSystem, enabled)
}

// SetForceCPURenderer disables the GPU renderer for every window.
func (s *Settings) SetForceCPURenderer(enabled bool) {
	api.SettingsSetBool(s.ref.get(), capi.SettingsForceCPURenderer, enabled)
}
