// SPDX-License-Identifier: GPL-2.0-or-later

// Package input keeps the input state the client loop polls once per
// frame instead of receiving events for.
package input

import (
	"gospades/conlog"
	"gospades/cvars"
	"gospades/keycode"
	"gospades/qtime"
	"gospades/view"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	ctrlMask  = sdl.KMOD_CTRL | sdl.KMOD_LCTRL | sdl.KMOD_RCTRL
	shiftMask = sdl.KMOD_SHIFT | sdl.KMOD_LSHIFT | sdl.KMOD_RSHIFT
)

// Modifiers turns polled modifier state into press and release edges.
type Modifiers struct {
	ctrl  bool
	shift bool
}

// Update emits Control and then Shift events for every modifier whose
// state differs from the previous call.
func (m *Modifiers) Update(mod sdl.Keymod, emit func(key string, down bool)) {
	if ctrl := mod&ctrlMask != 0; ctrl != m.ctrl {
		m.ctrl = ctrl
		emit(keycode.Control, ctrl)
	}
	if shift := mod&shiftMask != 0; shift != m.shift {
		m.shift = shift
		emit(keycode.Shift, shift)
	}
}

func (m *Modifiers) Ctrl() bool  { return m.ctrl }
func (m *Modifiers) Shift() bool { return m.shift }

// TextInput is the platform side of text entry.
type TextInput interface {
	StartTextInput()
	StopTextInput()
	SetTextInputRect(r *sdl.Rect)
}

// TextMode enters and leaves platform text input lazily.
type TextMode struct {
	editing bool
}

func (t *TextMode) Editing() bool {
	return t.editing
}

// Sync switches text input on or off on edges of want and, while
// editing, moves the candidate window to rect.
func (t *TextMode) Sync(want bool, rect func() view.Rect, p TextInput) {
	if want && !t.editing {
		p.StartTextInput()
		if cvars.InputDebugKeys.Bool() {
			conlog.Printf("StartTextInput time: %v\n", qtime.QTime().Seconds())
		}
	} else if !want && t.editing {
		p.StopTextInput()
		if cvars.InputDebugKeys.Bool() {
			conlog.Printf("StopTextInput time: %v\n", qtime.QTime().Seconds())
		}
	}
	t.editing = want
	if t.editing {
		r := ToSDLRect(rect())
		p.SetTextInputRect(&r)
	}
}

// ToSDLRect truncates r to whole pixels.
func ToSDLRect(r view.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(r.MinX),
		Y: int32(r.MinY),
		W: int32(r.Width()),
		H: int32(r.Height()),
	}
}
