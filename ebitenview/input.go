// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ebitenview

import (
	"github.com/YindSoft/ultralight-go"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// scrollScale converts wheel ticks to pixels.
const scrollScale = 100

func (ev *View) inBounds(mx, my int) bool {
	if ev.BoundsW <= 0 || ev.BoundsH <= 0 {
		return true
	}
	return mx >= ev.BoundsX && mx < ev.BoundsX+ev.BoundsW &&
		my >= ev.BoundsY && my < ev.BoundsY+ev.BoundsH
}

// local converts screen coordinates to view coordinates.
func (ev *View) local(mx, my int) (int, int) {
	if ev.BoundsW <= 0 {
		return mx, my
	}
	return mx - ev.BoundsX, my - ev.BoundsY
}

func logInputError(err error) {
	if err != nil {
		ultralight.Logger().Debug("ebitenview: input event dropped", zap.Error(err))
	}
}

func (ev *View) forwardInput() {
	mx, my := ebiten.CursorPosition()
	inBounds := ev.inBounds(mx, my)

	if inBounds && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		setFocused(ev)
	}

	if inBounds {
		lx, ly := ev.local(mx, my)
		ebiten.SetCursorShape(cursorShape(ev.cursor))

		if lx != ev.mouseX || ly != ev.mouseY {
			logInputError(ev.view.FireMouseEvent(ultralight.MouseMoved, int32(lx), int32(ly), ultralight.MouseButtonNone))
			ev.mouseX = lx
			ev.mouseY = ly
		}

		ev.forwardButton(ebiten.MouseButtonLeft, ultralight.MouseButtonLeft, &ev.leftDown, lx, ly)
		ev.forwardButton(ebiten.MouseButtonRight, ultralight.MouseButtonRight, &ev.rightDown, lx, ly)

		_, scrollY := ebiten.Wheel()
		if scrollY != 0 {
			logInputError(ev.view.FireScrollEvent(ultralight.ScrollByPixel, 0, int32(scrollY*scrollScale)))
		}
	}

	if getFocused() == ev {
		ev.forwardKeyboard()
	}
}

func (ev *View) forwardButton(b ebiten.MouseButton, ub ultralight.MouseButton, down *bool, x, y int) {
	if ebiten.IsMouseButtonPressed(b) {
		if !*down {
			*down = true
			logInputError(ev.view.FireMouseEvent(ultralight.MouseDown, int32(x), int32(y), ub))
		}
	} else if *down {
		*down = false
		logInputError(ev.view.FireMouseEvent(ultralight.MouseUp, int32(x), int32(y), ub))
	}
}

func (ev *View) forwardKeyboard() {
	// RawKeyDown triggers accelerators like Ctrl+C/V/X/A.
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if vk := ebitenKeyToVK(key); vk != 0 {
			logInputError(ev.view.FireKeyEvent(ultralight.KeyEvent{
				Type:           ultralight.RawKeyDown,
				Modifiers:      currentModifiers(),
				VirtualKeyCode: vk,
			}))
		}
	}
	// Character input from the OS text input system (handles shift, layout, IME).
	for _, r := range ebiten.AppendInputChars(nil) {
		logInputError(ev.view.FireKeyEvent(ultralight.KeyEvent{
			Type:           ultralight.Char,
			Text:           string(r),
			UnmodifiedText: string(r),
		}))
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		if vk := ebitenKeyToVK(key); vk != 0 {
			logInputError(ev.view.FireKeyEvent(ultralight.KeyEvent{
				Type:           ultralight.KeyUp,
				Modifiers:      currentModifiers(),
				VirtualKeyCode: vk,
			}))
		}
	}
}

func currentModifiers() ultralight.KeyModifiers {
	var mods ultralight.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ultralight.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ultralight.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ultralight.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ultralight.ModMeta
	}
	return mods
}

// cursorShape maps a page cursor onto the closest Ebiten cursor shape.
func cursorShape(c ultralight.Cursor) ebiten.CursorShapeType {
	switch c {
	case ultralight.CursorIBeam, ultralight.CursorVerticalText:
		return ebiten.CursorShapeText
	case ultralight.CursorHand:
		return ebiten.CursorShapePointer
	case ultralight.CursorCross, ultralight.CursorCell:
		return ebiten.CursorShapeCrosshair
	case ultralight.CursorEastResize, ultralight.CursorWestResize,
		ultralight.CursorEastWestResize, ultralight.CursorColumnResize:
		return ebiten.CursorShapeEWResize
	case ultralight.CursorNorthResize, ultralight.CursorSouthResize,
		ultralight.CursorNorthSouthResize, ultralight.CursorRowResize:
		return ebiten.CursorShapeNSResize
	case ultralight.CursorNorthEastResize, ultralight.CursorSouthWestResize,
		ultralight.CursorNorthEastSouthWestResize:
		return ebiten.CursorShapeNESWResize
	case ultralight.CursorNorthWestResize, ultralight.CursorSouthEastResize,
		ultralight.CursorNorthWestSouthEastResize:
		return ebiten.CursorShapeNWSEResize
	case ultralight.CursorMove, ultralight.CursorGrab, ultralight.CursorGrabbing,
		ultralight.CursorMiddlePanning:
		return ebiten.CursorShapeMove
	case ultralight.CursorNotAllowed, ultralight.CursorNoDrop:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}

// ebitenKeyToVK returns the Windows virtual key code Ultralight expects, or 0
// for keys it has no code for.
func ebitenKeyToVK(key ebiten.Key) int32 {
	switch key {
	// Editing keys
	case ebiten.KeyBackspace:
		return 0x08
	case ebiten.KeyTab:
		return 0x09
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return 0x0D
	case ebiten.KeyEscape:
		return 0x1B
	case ebiten.KeySpace:
		return 0x20
	case ebiten.KeyDelete:
		return 0x2E
	case ebiten.KeyInsert:
		return 0x2D

	// Navigation
	case ebiten.KeyHome:
		return 0x24
	case ebiten.KeyEnd:
		return 0x23
	case ebiten.KeyPageUp:
		return 0x21
	case ebiten.KeyPageDown:
		return 0x22
	case ebiten.KeyArrowLeft:
		return 0x25
	case ebiten.KeyArrowUp:
		return 0x26
	case ebiten.KeyArrowRight:
		return 0x27
	case ebiten.KeyArrowDown:
		return 0x28

	// Modifier keys
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		return 0x10
	case ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return 0x11
	case ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight:
		return 0x12
	case ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return 0x5B

	// Lock keys
	case ebiten.KeyCapsLock:
		return 0x14
	case ebiten.KeyNumLock:
		return 0x90
	case ebiten.KeyScrollLock:
		return 0x91

	// System keys
	case ebiten.KeyPause:
		return 0x13
	case ebiten.KeyPrintScreen:
		return 0x2C
	case ebiten.KeyContextMenu:
		return 0x5D

	// Function keys
	case ebiten.KeyF1:
		return 0x70
	case ebiten.KeyF2:
		return 0x71
	case ebiten.KeyF3:
		return 0x72
	case ebiten.KeyF4:
		return 0x73
	case ebiten.KeyF5:
		return 0x74
	case ebiten.KeyF6:
		return 0x75
	case ebiten.KeyF7:
		return 0x76
	case ebiten.KeyF8:
		return 0x77
	case ebiten.KeyF9:
		return 0x78
	case ebiten.KeyF10:
		return 0x79
	case ebiten.KeyF11:
		return 0x7A
	case ebiten.KeyF12:
		return 0x7B

	// Numpad operators
	case ebiten.KeyNumpadMultiply:
		return 0x6A
	case ebiten.KeyNumpadAdd:
		return 0x6B
	case ebiten.KeyNumpadSubtract:
		return 0x6D
	case ebiten.KeyNumpadDecimal:
		return 0x6E
	case ebiten.KeyNumpadDivide:
		return 0x6F
	case ebiten.KeyNumpadEqual:
		return 0xBB

	// Punctuation / symbols (VK_OEM codes)
	case ebiten.KeySemicolon:
		return 0xBA
	case ebiten.KeyEqual:
		return 0xBB
	case ebiten.KeyComma:
		return 0xBC
	case ebiten.KeyMinus:
		return 0xBD
	case ebiten.KeyPeriod:
		return 0xBE
	case ebiten.KeySlash:
		return 0xBF
	case ebiten.KeyBackquote:
		return 0xC0
	case ebiten.KeyBracketLeft:
		return 0xDB
	case ebiten.KeyBackslash, ebiten.KeyIntlBackslash:
		return 0xDC
	case ebiten.KeyBracketRight:
		return 0xDD
	case ebiten.KeyQuote:
		return 0xDE
	}
	switch {
	case key >= ebiten.KeyDigit0 && key <= ebiten.KeyDigit9:
		return 0x30 + int32(key-ebiten.KeyDigit0)
	case key >= ebiten.KeyA && key <= ebiten.KeyZ:
		return 0x41 + int32(key-ebiten.KeyA)
	case key >= ebiten.KeyNumpad0 && key <= ebiten.KeyNumpad9:
		return 0x60 + int32(key-ebiten.KeyNumpad0)
	}
	return 0
}
