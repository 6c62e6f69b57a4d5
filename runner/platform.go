// SPDX-License-Identifier: GPL-2.0-or-later

package runner

import (
	"gospades/input"

	"github.com/veandco/go-sdl2/sdl"
)

// Platform is the part of SDL the client loop talks to.
type Platform interface {
	Init() error
	Quit()
	// Ticks is the number of milliseconds since Init.
	Ticks() uint32
	// PollEvent returns nil once the queue is empty.
	PollEvent() sdl.Event
	ModState() sdl.Keymod
	input.TextInput
	SetRelativeMouseMode(on bool) bool
	ShowCursor(on bool)
}

type sdlPlatform struct{}

func (sdlPlatform) Init() error { return sdl.Init(sdl.INIT_VIDEO) }
func (sdlPlatform) Quit() { sdl.Quit() }
func (sdlPlatform) Ticks() uint32 { return sdl.GetTicks() }
func (sdlPlatform) PollEvent() sdl.Event { return sdl.PollEvent() }
func (sdlPlatform) ModState() sdl.Keymod { return sdl.GetModState() }
func (sdlPlatform) StartTextInput() { sdl.StartTextInput() }
func (sdlPlatform) StopTextInput() { sdl.StopTextInput() }
func (sdlPlatform) SetTextInputRect(r *sdl.Rect) { sdl.SetTextInputRect(r) }

func (sdlPlatform) SetRelativeMouseMode(on bool) bool {
	return sdl.SetRelativeMouseMode(on) == 0
}

func (sdlPlatform) ShowCursor(on bool) {
	t := sdl.DISABLE
	if on {
		t = sdl.ENABLE
	}
	sdl.ShowCursor(t)
}
