// SPDX-License-Identifier: GPL-2.0-or-later

package runner

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"
	"testing"

	"gospades/audio"
	"gospades/backend"
	"gospades/cvars"
	"gospades/dispatch"
	"gospades/renderer"
	"gospades/view"
	"gospades/window"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type fakePlatform struct {
	initErr error
	ticks   []uint32
	mods    []sdl.Keymod
	frames  [][]sdl.Event
	calls   []string
}

func (p *fakePlatform) Init() error {
	p.calls = append(p.calls, "init")
	return p.initErr
}

func (p *fakePlatform) Quit() { p.calls = append(p.calls, "quit") }

func (p *fakePlatform) Ticks() uint32 {
	t := p.ticks[0]
	if len(p.ticks) > 1 {
		p.ticks = p.ticks[1:]
	}
	return t
}

func (p *fakePlatform) ModState() sdl.Keymod {
	if len(p.mods) == 0 {
		return 0
	}
	m := p.mods[0]
	p.mods = p.mods[1:]
	return m
}

// PollEvent hands out one batch of events per frame.
func (p *fakePlatform) PollEvent() sdl.Event {
	if len(p.frames) == 0 {
		return nil
	}
	if len(p.frames[0]) == 0 {
		p.frames = p.frames[1:]
		return nil
	}
	e := p.frames[0][0]
	p.frames[0] = p.frames[0][1:]
	return e
}

func (p *fakePlatform) StartTextInput() { p.calls = append(p.calls, "start text") }
func (p *fakePlatform) StopTextInput() { p.calls = append(p.calls, "stop text") }

func (p *fakePlatform) SetTextInputRect(r *sdl.Rect) {
	p.calls = append(p.calls, fmt.Sprintf("rect %d %d %d %d", r.X, r.Y, r.W, r.H))
}

func (p *fakePlatform) SetRelativeMouseMode(on bool) bool {
	p.calls = append(p.calls, fmt.Sprintf("relative %v", on))
	return true
}

func (p *fakePlatform) ShowCursor(on bool) {
	p.calls = append(p.calls, fmt.Sprintf("cursor %v", on))
}

type recordingView struct {
	log        []string
	dts        []float32
	closeAfter int
	textAfter  int
}

func (v *recordingView) RunFrame(dt float32) {
	v.dts = append(v.dts, dt)
}

func (v *recordingView) Closing() { v.log = append(v.log, "closing") }

func (v *recordingView) WantsToBeClosed() bool {
	return v.closeAfter > 0 && len(v.dts) >= v.closeAfter
}

func (v *recordingView) KeyEvent(key string, down bool) {
	v.log = append(v.log, fmt.Sprintf("key %q %v", key, down))
}

func (v *recordingView) MouseEvent(dx, dy float32) {
	v.log = append(v.log, fmt.Sprintf("mouse %v %v", dx, dy))
}

func (v *recordingView) WheelEvent(x, y float32) {
	v.log = append(v.log, fmt.Sprintf("wheel %v %v", x, y))
}

func (v *recordingView) TextInputEvent(text string) {
	v.log = append(v.log, "text "+text)
}

func (v *recordingView) TextEditingEvent(text string, start, length int) {
	v.log = append(v.log, fmt.Sprintf("edit %s %d %d", text, start, length))
}

func (v *recordingView) AcceptsTextInput() bool {
	return v.textAfter > 0 && len(v.dts) >= v.textAfter
}

func (v *recordingView) TextInputRect() view.Rect {
	return view.NewRect(1, 2, 30, 4)
}

type fakeAudio struct {
	calls []string
}

func (a *fakeAudio) Play(s beep.Streamer) uuid.UUID { return uuid.New() }
func (a *fakeAudio) Stop(id uuid.UUID) {}
func (a *fakeAudio) SetVolume(v float64) {}

func (a *fakeAudio) Suspend() error {
	a.calls = append(a.calls, "suspend")
	return nil
}

func (a *fakeAudio) Resume() error {
	a.calls = append(a.calls, "resume")
	return nil
}

func (a *fakeAudio) Close() error {
	a.calls = append(a.calls, "close")
	return nil
}

func textEvent(s string) *sdl.TextInputEvent {
	e := &sdl.TextInputEvent{}
	copy(e.Text[:], s)
	return e
}

func TestLoopTiming(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{100, 100, 116, 150}}
	v := &recordingView{closeAfter: 2}
	l := newClientLoop(p, true)
	l.view = v
	l.run(context.Background())

	want := []float32{16.0 / 1000, 34.0 / 1000}
	if !slices.Equal(v.dts, want) {
		t.Errorf("dts = %v, want %v", v.dts, want)
	}
	if !slices.Equal(v.log, []string{"closing"}) {
		t.Errorf("log = %v, want [closing]", v.log)
	}
}

func TestLoopEvents(t *testing.T) {
	p := &fakePlatform{
		ticks: []uint32{0, 10, 20, 30, 40},
		mods:  []sdl.Keymod{sdl.KMOD_LSHIFT, sdl.KMOD_LSHIFT | sdl.KMOD_LCTRL, 0},
		frames: [][]sdl.Event{
			{
				&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.PRESSED},
				&sdl.MouseMotionEvent{XRel: 3, YRel: -4},
				&sdl.MouseWheelEvent{X: 1, Y: 2},
				&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: 'a'}},
				&sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}},
			},
			{
				textEvent("hi"),
				&sdl.TextEditingEvent{Start: 1, Length: 2},
				&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST},
				&sdl.MouseMotionEvent{XRel: 5, YRel: 5},
				&sdl.MouseButtonEvent{Button: sdl.BUTTON_X1, State: sdl.RELEASED},
			},
			{
				&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED},
				&sdl.MouseMotionEvent{XRel: 1, YRel: 1},
				&sdl.QuitEvent{},
			},
		},
	}
	v := &recordingView{closeAfter: 4}
	a := &fakeAudio{}
	l := newClientLoop(p, true)
	l.grabMouse(true)
	l.view = v
	l.audio = a
	l.run(context.Background())

	want := []string{
		`key "Shift" true`,
		`key "LeftMouseButton" true`,
		"mouse 3 -4",
		"wheel -1 -2",
		`key "a" true`,
		`key "Escape" false`,
		`key "Control" true`,
		"text hi",
		"edit  1 2",
		`key "MouseButton4" false`,
		`key "Control" false`,
		`key "Shift" false`,
		"mouse 1 1",
		"closing",
		"closing",
	}
	if !slices.Equal(v.log, want) {
		t.Errorf("log:\n%s\nwant:\n%s", strings.Join(v.log, "\n"), strings.Join(want, "\n"))
	}
	wantCalls := []string{
		"relative true", "cursor false",
		"relative false", "cursor true",
		"relative true", "cursor false",
	}
	if !slices.Equal(p.calls, wantCalls) {
		t.Errorf("platform calls = %v, want %v", p.calls, wantCalls)
	}
	if !slices.Equal(a.calls, []string{"suspend", "resume"}) {
		t.Errorf("audio calls = %v", a.calls)
	}
}

func TestLoopClockBackwards(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{100, 90, 110}}
	v := &recordingView{closeAfter: 1}
	l := newClientLoop(p, false)
	l.view = v
	l.run(context.Background())
	want := []float32{20.0 / 1000}
	if !slices.Equal(v.dts, want) {
		t.Errorf("dts = %v, want %v", v.dts, want)
	}
}

func TestLoopNoMouse(t *testing.T) {
	p := &fakePlatform{
		ticks: []uint32{0, 1, 2},
		frames: [][]sdl.Event{
			{&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST}},
		},
	}
	l := newClientLoop(p, false)
	l.grabMouse(true)
	l.view = &recordingView{closeAfter: 2}
	l.run(context.Background())
	if len(p.calls) != 0 {
		t.Errorf("platform calls = %v, want none", p.calls)
	}
}

func TestLoopTextMode(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{0, 1, 2, 3, 4}}
	v := &recordingView{closeAfter: 4, textAfter: 2}
	l := newClientLoop(p, false)
	l.view = v
	l.run(context.Background())
	want := []string{"start text", "rect 1 2 30 4", "rect 1 2 30 4"}
	if !slices.Equal(p.calls, want) {
		t.Errorf("platform calls = %v, want %v", p.calls, want)
	}
}

func TestLoopDrainsDispatch(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{0, 1, 2}}
	v := &recordingView{closeAfter: 2}
	ran := 0
	dispatch.Main().Post(func() {
		ran++
		dispatch.Main().Post(func() { ran++ })
	})
	l := newClientLoop(p, false)
	l.view = v
	l.run(context.Background())
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}

func TestLoopContextCancel(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{0, 1}}
	v := &recordingView{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := newClientLoop(p, false)
	l.view = v
	l.run(ctx)
	if len(v.dts) != 1 {
		t.Errorf("frames = %d, want 1", len(v.dts))
	}
	if !slices.Equal(v.log, []string{"closing"}) {
		t.Errorf("log = %v, want [closing]", v.log)
	}
}

type fakeRenderer struct {
	released bool
}

func (r *fakeRenderer) Size() (int, int) { return 640, 480 }
func (r *fakeRenderer) Clear(c color.RGBA) {}
func (r *fakeRenderer) Flip() error { return nil }
func (r *fakeRenderer) Release() { r.released = true }

func TestRun(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{0, 5}}
	v := &recordingView{closeAfter: 1}
	rend := &fakeRenderer{}
	a := &fakeAudio{}
	var gotCfg window.Config
	var gotDriver backend.AudioDriver
	r := New(
		func(r renderer.Renderer, d audio.Device) (view.View, error) {
			if r != rend || d != a {
				t.Errorf("factory got %v, %v", r, d)
			}
			return v, nil
		},
		WithPlatform(p),
		WithCaption("test"),
		WithMouse(true),
		WithSound(false),
		WithWindow(func(c window.Config) (*sdl.Window, error) {
			gotCfg = c
			return nil, nil
		}),
		WithRenderer(func(_ backend.RendererType, _ *sdl.Window, vsync bool) (renderer.Renderer, error) {
			if !vsync {
				t.Errorf("renderer created without vsync")
			}
			return rend, nil
		}),
		WithAudio(func(d backend.AudioDriver, enabled bool) (audio.Device, error) {
			gotDriver = d
			if enabled {
				t.Errorf("audio enabled with WithSound(false)")
			}
			return a, nil
		}),
	)
	cvars.AudioDriver.SetByString("beep")
	defer cvars.AudioDriver.Reset()
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotCfg.Title != "test" || gotCfg.Renderer != backend.GL {
		t.Errorf("window config = %+v", gotCfg)
	}
	if gotDriver != backend.Beep {
		t.Errorf("audio driver = %v, want beep", gotDriver)
	}
	if !rend.released {
		t.Errorf("renderer not released")
	}
	if !slices.Equal(a.calls, []string{"close"}) {
		t.Errorf("audio calls = %v", a.calls)
	}
	wantCalls := []string{"init", "relative true", "cursor false", "quit"}
	if !slices.Equal(p.calls, wantCalls) {
		t.Errorf("platform calls = %v, want %v", p.calls, wantCalls)
	}
}

func TestRunUnknownRenderer(t *testing.T) {
	cvars.Renderer.SetByString("vulkan")
	defer cvars.Renderer.Reset()
	p := &fakePlatform{ticks: []uint32{0}}
	r := New(nil, WithPlatform(p))
	err := r.Run(context.Background())
	if !errors.Is(err, backend.ErrUnknownBackend) {
		t.Errorf("Run = %v, want unknown renderer error", err)
	}
	if !slices.Equal(p.calls, []string{"init", "quit"}) {
		t.Errorf("platform calls = %v", p.calls)
	}
}

func TestCaption(t *testing.T) {
	c := Caption()
	if !strings.HasPrefix(c, "gospades "+Version) {
		t.Errorf("Caption() = %q", c)
	}
	if strings.Contains(c, "DEBUG build") != debugBuild {
		t.Errorf("Caption() = %q, debugBuild = %v", c, debugBuild)
	}
}

func TestRunInitError(t *testing.T) {
	p := &fakePlatform{initErr: errors.New("no video device"), ticks: []uint32{0}}
	r := New(nil, WithPlatform(p))
	err := r.Run(context.Background())
	if err == nil || err.Error() != "Failed to initialize SDL video: no video device" {
		t.Errorf("Run = %v", err)
	}
	if !slices.Equal(p.calls, []string{"init", "quit"}) {
		t.Errorf("platform calls = %v, want [init quit]", p.calls)
	}
}

func TestRunWindowError(t *testing.T) {
	p := &fakePlatform{ticks: []uint32{0}}
	rendererCreated := false
	r := New(nil,
		WithPlatform(p),
		WithWindow(func(window.Config) (*sdl.Window, error) {
			return nil, errors.New("Failed to create graphics window: no visual")
		}),
		WithRenderer(func(backend.RendererType, *sdl.Window, bool) (renderer.Renderer, error) {
			rendererCreated = true
			return &fakeRenderer{}, nil
		}),
	)
	err := r.Run(context.Background())
	if err == nil || err.Error() != "Failed to create graphics window: no visual" {
		t.Errorf("Run = %v", err)
	}
	if rendererCreated {
		t.Errorf("renderer created without a window")
	}
	if !slices.Equal(p.calls, []string{"init", "quit"}) {
		t.Errorf("platform calls = %v, want [init quit]", p.calls)
	}
}

func TestRunUnknownAudio(t *testing.T) {
	cvars.AudioDriver.SetByString("alsa")
	defer cvars.AudioDriver.Reset()
	p := &fakePlatform{ticks: []uint32{0}}
	rend := &fakeRenderer{}
	audioOpened := false
	r := New(nil,
		WithPlatform(p),
		WithMouse(false),
		WithWindow(func(window.Config) (*sdl.Window, error) { return nil, nil }),
		WithRenderer(func(backend.RendererType, *sdl.Window, bool) (renderer.Renderer, error) {
			return rend, nil
		}),
		WithAudio(func(backend.AudioDriver, bool) (audio.Device, error) {
			audioOpened = true
			return &fakeAudio{}, nil
		}),
	)
	err := r.Run(context.Background())
	if !errors.Is(err, backend.ErrUnknownBackend) {
		t.Errorf("Run = %v, want unknown backend error", err)
	}
	if audioOpened {
		t.Errorf("audio device opened for unknown driver")
	}
	if !rend.released {
		t.Errorf("renderer not released")
	}
	if !slices.Equal(p.calls, []string{"init", "quit"}) {
		t.Errorf("platform calls = %v, want [init quit]", p.calls)
	}
}
