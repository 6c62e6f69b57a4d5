// SPDX-License-Identifier: GPL-2.0-or-later

// Package runner owns the window and drives the view once per frame.
package runner

import (
	"context"
	"log"

	"gospades/audio"
	"gospades/backend"
	"gospades/commandline"
	"gospades/renderer"
	"gospades/view"
	"gospades/window"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// Factory builds the first view once the renderer and audio device
// exist.
type Factory func(r renderer.Renderer, a audio.Device) (view.View, error)

type Runner struct {
	factory      Factory
	platform     Platform
	caption      string
	mouse        bool
	sound        bool
	createWindow func(window.Config) (*sdl.Window, error)
	newRenderer  func(backend.RendererType, *sdl.Window, bool) (renderer.Renderer, error)
	newAudio     func(backend.AudioDriver, bool) (audio.Device, error)
}

type Option func(*Runner)

func WithPlatform(p Platform) Option {
	return func(r *Runner) { r.platform = p }
}

func WithCaption(c string) Option {
	return func(r *Runner) { r.caption = c }
}

// WithMouse disables relative mouse mode when on is false.
func WithMouse(on bool) Option {
	return func(r *Runner) { r.mouse = on }
}

// WithSound replaces the audio driver by a silent device when on is
// false.
func WithSound(on bool) Option {
	return func(r *Runner) { r.sound = on }
}

func WithWindow(f func(window.Config) (*sdl.Window, error)) Option {
	return func(r *Runner) { r.createWindow = f }
}

func WithRenderer(f func(backend.RendererType, *sdl.Window, bool) (renderer.Renderer, error)) Option {
	return func(r *Runner) { r.newRenderer = f }
}

func WithAudio(f func(backend.AudioDriver, bool) (audio.Device, error)) Option {
	return func(r *Runner) { r.newAudio = f }
}

func New(f Factory, opts ...Option) *Runner {
	r := &Runner{
		factory:      f,
		platform:     sdlPlatform{},
		caption:      Caption(),
		mouse:        commandline.Mouse(),
		sound:        commandline.Sound(),
		createWindow: window.Create,
		newRenderer:  renderer.New,
		newAudio:     audio.New,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run opens the window, creates the backends and the view and runs the
// client loop until the view wants to close or ctx is cancelled. It must
// be called on the main thread.
func (r *Runner) Run(ctx context.Context) error {
	err := r.platform.Init()
	defer r.platform.Quit()
	if err != nil {
		return errors.Wrap(err, "Failed to initialize SDL video")
	}

	cfg, err := window.ConfigFromCvars(r.caption)
	if err != nil {
		return err
	}
	w, err := r.createWindow(cfg)
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Destroy()
	}

	l := newClientLoop(r.platform, r.mouse)
	l.grabMouse(true)

	rend, err := r.newRenderer(cfg.Renderer, w, cfg.VSync)
	if err != nil {
		return errors.Wrap(err, "Failed to create renderer")
	}
	defer rend.Release()

	drv, err := audio.Driver()
	if err != nil {
		return err
	}
	dev, err := r.newAudio(drv, r.sound)
	if err != nil {
		return errors.Wrap(err, "Failed to open audio device")
	}
	defer func() {
		audio.Detach()
		if err := dev.Close(); err != nil {
			log.Printf("Closing audio device: %v", err)
		}
	}()

	v, err := r.factory(rend, dev)
	if err != nil {
		return errors.Wrap(err, "Failed to create view")
	}
	l.view = v
	l.audio = dev
	l.run(ctx)
	return nil
}
