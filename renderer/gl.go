// SPDX-License-Identifier: GPL-2.0-or-later

package renderer

import (
	"image/color"
	"runtime"

	"gospades/conlog"
	"gospades/dispatch"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// GLDevice owns the GL context of a window.
type GLDevice struct {
	window  *sdl.Window
	context sdl.GLContext
}

func NewGLDevice(w *sdl.Window, vsync bool) (*GLDevice, error) {
	ctx, err := w.GLCreateContext()
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't create GL context")
	}
	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(ctx)
		return nil, errors.Wrap(err, "Couldn't init gl")
	}
	interval := 0
	if vsync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		conlog.Printf("Could not set swap interval %d: %v\n", interval, err)
	}
	conlog.Printf("GL_VENDOR: %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	conlog.Printf("GL_RENDERER: %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	conlog.Printf("GL_VERSION: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	return &GLDevice{window: w, context: ctx}, nil
}

func (d *GLDevice) Size() (int, int) {
	w, h := d.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (d *GLDevice) Swap() {
	d.window.GLSwap()
}

func (d *GLDevice) Release() {
	if d.context == nil {
		return
	}
	sdl.GLDeleteContext(d.context)
	d.context = nil
}

type glRenderer struct {
	dev *GLDevice
	// core profiles need a bound vertex array for any draw call
	vao     uint32
	cleanup runtime.Cleanup
}

func newGLRenderer(dev *GLDevice) *glRenderer {
	r := &glRenderer{dev: dev}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	r.cleanup = runtime.AddCleanup(r, deleteVertexArray, r.vao)
	return r
}

// GL calls are only valid on the loop thread, so finalizers hand the
// deletion over to it.
func deleteVertexArray(vao uint32) {
	dispatch.Main().Post(func() {
		gl.DeleteVertexArrays(1, &vao)
	})
}

func (r *glRenderer) Size() (int, int) {
	return r.dev.Size()
}

func (r *glRenderer) Clear(c color.RGBA) {
	w, h := r.dev.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *glRenderer) Flip() error {
	if e := gl.GetError(); e != gl.NO_ERROR {
		conlog.DPrintf("GL error 0x%x\n", e)
	}
	r.dev.Swap()
	return nil
}

func (r *glRenderer) Release() {
	r.cleanup.Stop()
	gl.DeleteVertexArrays(1, &r.vao)
	r.dev.Release()
}
