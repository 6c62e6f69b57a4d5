// SPDX-License-Identifier: GPL-2.0-or-later

package runner

import (
	"context"
	"log"

	"gospades/audio"
	"gospades/conlog"
	"gospades/cvars"
	"gospades/dispatch"
	"gospades/input"
	"gospades/keycode"
	"gospades/qtime"
	"gospades/view"

	"github.com/veandco/go-sdl2/sdl"
)

type clientLoop struct {
	p     Platform
	view  view.View
	audio audio.Device
	mods  input.Modifiers
	text  input.TextMode
	// mouse is false with -nomouse, the pointer is never grabbed then.
	mouse bool
	// active is false while the window has no input focus.
	active bool
}

func newClientLoop(p Platform, mouse bool) *clientLoop {
	return &clientLoop{p: p, mouse: mouse}
}

func (l *clientLoop) grabMouse(on bool) {
	l.active = on
	if !l.mouse {
		return
	}
	if !l.p.SetRelativeMouseMode(on) {
		conlog.Printf("WARNING: SetRelativeMouseMode(%v) failed.\n", on)
	}
	l.p.ShowCursor(!on)
}

func (l *clientLoop) activate(on bool) {
	if l.active == on {
		return
	}
	l.grabMouse(on)
	if l.audio == nil {
		return
	}
	var err error
	if on {
		err = l.audio.Resume()
	} else {
		err = l.audio.Suspend()
	}
	if err != nil {
		conlog.Printf("WARNING: audio: %v\n", err)
	}
}

func (l *clientLoop) run(ctx context.Context) {
	log.Printf("Starting Client Loop")
	last := l.p.Ticks()
	for {
		dispatch.Main().Process()

		// signed so a clock running backwards skips the frame
		dt := l.p.Ticks() - last
		last += dt
		if int32(dt) > 0 {
			l.view.RunFrame(float32(dt) / 1000)
		}

		if l.view.WantsToBeClosed() {
			l.view.Closing()
			log.Printf("Close requested by Client")
			break
		}
		if err := ctx.Err(); err != nil {
			l.view.Closing()
			log.Printf("Close requested by host: %v", err)
			break
		}

		l.mods.Update(l.p.ModState(), l.view.KeyEvent)
		l.text.Sync(l.view.AcceptsTextInput(), l.view.TextInputRect, l.p)

		for e := l.p.PollEvent(); e != nil; e = l.p.PollEvent() {
			l.handleEvent(e)
		}
	}
	log.Printf("Leaving Client Loop")
}

func (l *clientLoop) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		l.view.Closing()
	case *sdl.MouseButtonEvent:
		l.view.KeyEvent(keycode.TranslateButton(e.Button), e.State == sdl.PRESSED)
	case *sdl.MouseMotionEvent:
		if l.active {
			l.view.MouseEvent(float32(e.XRel), float32(e.YRel))
		}
	case *sdl.MouseWheelEvent:
		l.view.WheelEvent(float32(-e.X), float32(-e.Y))
	case *sdl.KeyboardEvent:
		if cvars.InputDebugKeys.Bool() {
			printKeyEvent(e)
		}
		l.view.KeyEvent(keycode.TranslateKey(e.Keysym), e.State == sdl.PRESSED)
	case *sdl.TextInputEvent:
		text := cstring(e.Text[:])
		if cvars.InputDebugKeys.Bool() {
			conlog.Printf("TEXTINPUT '%s' time: %v\n", text, qtime.QTime().Seconds())
		}
		l.view.TextInputEvent(text)
	case *sdl.TextEditingEvent:
		l.view.TextEditingEvent(cstring(e.Text[:]), int(e.Start), int(e.Length))
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			l.activate(true)
		case sdl.WINDOWEVENT_FOCUS_LOST:
			l.activate(false)
		}
	}
}

func printKeyEvent(e *sdl.KeyboardEvent) {
	etype := "KEYUP"
	if e.State == sdl.PRESSED {
		etype = "KEYDOWN"
	}
	conlog.Printf("%v scancode: '%v', keycode: '%v', time: %v\n", etype,
		sdl.GetScancodeName(e.Keysym.Scancode),
		sdl.GetKeyName(e.Keysym.Sym), qtime.QTime().Seconds())
}

// cstring converts a NUL terminated event buffer.
func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
