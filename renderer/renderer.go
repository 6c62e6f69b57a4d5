// SPDX-License-Identifier: GPL-2.0-or-later

// Package renderer creates the drawing backend for a window.
package renderer

import (
	"image/color"

	"gospades/backend"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type Renderer interface {
	// Size is the drawable size in pixels.
	Size() (int, int)
	Clear(c color.RGBA)
	// Flip presents the frame.
	Flip() error
	Release()
}

// New creates the renderer of type t for w. vsync only applies to GL.
func New(t backend.RendererType, w *sdl.Window, vsync bool) (Renderer, error) {
	switch t {
	case backend.GL:
		dev, err := NewGLDevice(w, vsync)
		if err != nil {
			return nil, err
		}
		return newGLRenderer(dev), nil
	case backend.SW:
		port, err := NewSWPort(w)
		if err != nil {
			return nil, err
		}
		return newSWRenderer(port), nil
	}
	return nil, errors.Errorf("Invalid renderer type %d", t)
}
