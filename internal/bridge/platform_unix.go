// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package bridge

// The hook tables are passed by value.
var (
	ulPlatformSetLogger     func(t loggerTable)
	ulPlatformSetClipboard  func(t clipboardTable)
	ulPlatformSetFileSystem func(t fileSystemTable)

	ulPlatformSetSurfaceDefinition func(t surfaceDefinitionTable)
)

func platformSymbols() []symbol {
	return []symbol{
		{&ulPlatformSetLogger, "ulPlatformSetLogger"},
		{&ulPlatformSetClipboard, "ulPlatformSetClipboard"},
		{&ulPlatformSetFileSystem, "ulPlatformSetFileSystem"},
		{&ulPlatformSetSurfaceDefinition, "ulPlatformSetSurfaceDefinition"},
	}
}

func setLogger(t loggerTable)         { ulPlatformSetLogger(t) }
func setClipboard(t clipboardTable)   { ulPlatformSetClipboard(t) }
func setFileSystem(t fileSystemTable) { ulPlatformSetFileSystem(t) }

func setSurfaceDefinition(t surfaceDefinitionTable) { ulPlatformSetSurfaceDefinition(t) }
