// SPDX-License-Identifier: GPL-2.0-or-later

// Package keycode names keys and mouse buttons the way views expect them.
package keycode

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	Escape      = "Escape"
	Left        = "Left"
	Right       = "Right"
	Up          = "Up"
	Down        = "Down"
	Space       = " "
	Tab         = "Tab"
	BackSpace   = "BackSpace"
	Enter       = "Enter"
	Slash       = "/"
	Control     = "Control"
	Shift       = "Shift"
	MouseLeft   = "LeftMouseButton"
	MouseRight  = "RightMouseButton"
	MouseMiddle = "MiddleMouseButton"
	Mouse4      = "MouseButton4"
	Mouse5      = "MouseButton5"
)

// single character names, built once
var charKeys [128]string

func init() {
	for c := range charKeys {
		if isAlnum(rune(c)) {
			charKeys[c] = string(rune(c))
		}
	}
}

func isAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// TranslateKey returns the name of the key or "" if views do not know it.
func TranslateKey(k sdl.Keysym) string {
	switch k.Sym {
	case sdl.K_ESCAPE:
		return Escape
	case sdl.K_LEFT:
		return Left
	case sdl.K_RIGHT:
		return Right
	case sdl.K_UP:
		return Up
	case sdl.K_DOWN:
		return Down
	case sdl.K_SPACE:
		return Space
	case sdl.K_TAB:
		return Tab
	case sdl.K_BACKSPACE, sdl.K_DELETE:
		return BackSpace
	case sdl.K_RETURN:
		return Enter
	case sdl.K_SLASH:
		return Slash
	}
	if k.Sym >= 0 && k.Sym < 128 {
		return charKeys[k.Sym]
	}
	return ""
}

// TranslateButton returns the name of the mouse button or "".
func TranslateButton(b uint8) string {
	switch b {
	case sdl.BUTTON_LEFT:
		return MouseLeft
	case sdl.BUTTON_RIGHT:
		return MouseRight
	case sdl.BUTTON_MIDDLE:
		return MouseMiddle
	case sdl.BUTTON_X1:
		return Mouse4
	case sdl.BUTTON_X2:
		return Mouse5
	}
	return ""
}
