// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package bridge

// Windows x64 passes structs wider than eight bytes by reference. ULLogger
// holds a single pointer and travels in a register.
var (
	ulPlatformSetLogger     func(logMessage uintptr)
	ulPlatformSetClipboard  func(t *clipboardTable)
	ulPlatformSetFileSystem func(t *fileSystemTable)

	ulPlatformSetSurfaceDefinition func(t *surfaceDefinitionTable)
)

func platformSymbols() []symbol {
	return []symbol{
		{&ulPlatformSetLogger, "ulPlatformSetLogger"},
		{&ulPlatformSetClipboard, "ulPlatformSetClipboard"},
		{&ulPlatformSetFileSystem, "ulPlatformSetFileSystem"},
		{&ulPlatformSetSurfaceDefinition, "ulPlatformSetSurfaceDefinition"},
	}
}

func setLogger(t loggerTable)         { ulPlatformSetLogger(t.logMessage) }
func setClipboard(t clipboardTable)   { ulPlatformSetClipboard(&t) }
func setFileSystem(t fileSystemTable) { ulPlatformSetFileSystem(&t) }

func setSurfaceDefinition(t surfaceDefinitionTable) { ulPlatformSetSurfaceDefinition(&t) }
