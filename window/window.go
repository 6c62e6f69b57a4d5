// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"log"

	"gospades/backend"
	"gospades/cvars"
	"gospades/math"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type Config struct {
	Title         string
	Width         int32
	Height        int32
	Fullscreen    bool
	Renderer      backend.RendererType
	DepthBits     int
	VSync         bool
	AllowSoftware bool
}

// ConfigFromCvars reads the r_* settings. It fails if r_renderer names
// no known renderer.
func ConfigFromCvars(title string) (Config, error) {
	rt, err := backend.ParseRendererType(cvars.Renderer.String())
	if err != nil {
		return Config{}, err
	}
	return Config{
		Title:         title,
		Width:         int32(math.Clamp(320, cvars.VideoWidth.Int(), 16384)),
		Height:        int32(math.Clamp(200, cvars.VideoHeight.Int(), 16384)),
		Fullscreen:    cvars.VideoFullscreen.Bool(),
		Renderer:      rt,
		DepthBits:     cvars.VideoDepthBits.Int(),
		VSync:         cvars.VideoVerticalSync.Bool(),
		AllowSoftware: cvars.AllowSoftwareRendering.Bool(),
	}, nil
}

// Flags returns the SDL window flags for c.
func (c Config) Flags() uint32 {
	var flags uint32
	if c.Renderer == backend.GL {
		flags = sdl.WINDOW_OPENGL
	}
	if c.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	return flags
}

// sdlAPI is the part of SDL window creation depends on.
type sdlAPI struct {
	setAttribute func(attr sdl.GLattr, value int) error
	createWindow func(title string, x, y, w, h int32, flags uint32) (*sdl.Window, error)
}

var defaultAPI = sdlAPI{
	setAttribute: sdl.GLSetAttribute,
	createWindow: sdl.CreateWindow,
}

func (api sdlAPI) setGLAttributes(c Config, depth int) {
	set := func(attr sdl.GLattr, value int) {
		if err := api.setAttribute(attr, value); err != nil {
			log.Printf("Couldn't set GL attribute %d to %d: %v", attr, value, err)
		}
	}
	set(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	set(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	set(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	set(sdl.GL_DOUBLEBUFFER, 1)
	set(sdl.GL_DEPTH_SIZE, depth)
	if !c.AllowSoftware {
		set(sdl.GL_ACCELERATED_VISUAL, 1)
	}
}

// Create opens a centered window for c. The video subsystem must be
// initialized.
func Create(c Config) (*sdl.Window, error) {
	return defaultAPI.create(c)
}

func (api sdlAPI) create(c Config) (*sdl.Window, error) {
	create := func() (*sdl.Window, error) {
		return api.createWindow(c.Title,
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			c.Width, c.Height, c.Flags())
	}
	if c.Renderer != backend.GL {
		w, err := create()
		if err != nil {
			return nil, errors.Wrap(err, "Failed to create graphics window")
		}
		return w, nil
	}
	api.setGLAttributes(c, c.DepthBits)
	w, err := create()
	if err == nil {
		return w, nil
	}
	if c.DepthBits <= 16 {
		return nil, errors.Wrap(err, "Failed to create graphics window")
	}
	log.Printf("Could not create window with %d depth bits, retrying with 16: %v", c.DepthBits, err)
	api.setGLAttributes(c, 16)
	w, err = create()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create graphics window")
	}
	return w, nil
}
