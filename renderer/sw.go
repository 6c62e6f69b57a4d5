// SPDX-License-Identifier: GPL-2.0-or-later

package renderer

import (
	"image/color"

	"gospades/conlog"
	"gospades/math"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// The software rasterizer works on 8x8 tiles.
const swAlign = 8

// swLayout returns the framebuffer size for a surface of w x h and
// whether it differs from the surface.
func swLayout(w, h int) (int, int, bool) {
	aw := math.AlignDown(w, swAlign)
	ah := math.AlignDown(h, swAlign)
	return aw, ah, aw != w || ah != h
}

// SWPort presents a software framebuffer through the window surface.
// Surfaces that need locking stay locked except around the update.
type SWPort struct {
	window      *sdl.Window
	surface     *sdl.Surface
	adjusted    bool
	framebuffer *Bitmap
}

// TODO: check the surface pixel format instead of assuming XRGB8888.
func NewSWPort(w *sdl.Window) (*SWPort, error) {
	s, err := w.GetSurface()
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't get window surface")
	}
	p := &SWPort{window: w, surface: s}
	if s.MustLock() {
		if err := s.Lock(); err != nil {
			return nil, errors.Wrap(err, "Couldn't lock window surface")
		}
	}
	sw, sh := int(s.W), int(s.H)
	aw, ah, adjusted := swLayout(sw, sh)
	p.adjusted = adjusted
	if adjusted {
		conlog.Printf("Surface size %dx%d doesn't match the software renderer's"+
			" requirements. Rounded to %dx%d using an intermediate surface.\n",
			sw, sh, aw, ah)
		clear(s.Pixels())
		p.framebuffer = NewBitmap(aw, ah)
	} else {
		p.wrapSurface()
	}
	return p, nil
}

func (p *SWPort) wrapSurface() {
	s := p.surface
	p.framebuffer = wrapPixels(s.Pixels(), int(s.W), int(s.H), int(s.Pitch))
}

func (p *SWPort) Framebuffer() *Bitmap {
	return p.framebuffer
}

func (p *SWPort) Swap() error {
	s := p.surface
	if p.adjusted {
		dst := wrapPixels(s.Pixels(), int(s.W), int(s.H), int(s.Pitch))
		blitCentered(dst, p.framebuffer)
	}
	if s.MustLock() {
		s.Unlock()
	}
	err := p.window.UpdateSurface()
	if s.MustLock() {
		if lerr := s.Lock(); lerr != nil && err == nil {
			err = lerr
		}
		// the pixels may have moved while unlocked
		if !p.adjusted {
			p.wrapSurface()
		}
	}
	return err
}

func (p *SWPort) Release() {
	if p.surface != nil && p.surface.MustLock() {
		p.surface.Unlock()
	}
	p.surface = nil
}

type swRenderer struct {
	port *SWPort
}

func newSWRenderer(p *SWPort) *swRenderer {
	return &swRenderer{port: p}
}

func (r *swRenderer) Size() (int, int) {
	fb := r.port.Framebuffer()
	return fb.W, fb.H
}

func (r *swRenderer) Clear(c color.RGBA) {
	r.port.Framebuffer().Fill(c)
}

func (r *swRenderer) Flip() error {
	return r.port.Swap()
}

func (r *swRenderer) Release() {
	r.port.Release()
}
