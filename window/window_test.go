// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"testing"

	"gospades/backend"
	"gospades/cvars"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func TestFlags(t *testing.T) {
	tests := []struct {
		cfg  Config
		want uint32
	}{
		{Config{Renderer: backend.GL}, sdl.WINDOW_OPENGL},
		{Config{Renderer: backend.GL, Fullscreen: true}, sdl.WINDOW_OPENGL | sdl.WINDOW_FULLSCREEN},
		{Config{Renderer: backend.SW}, 0},
		{Config{Renderer: backend.SW, Fullscreen: true}, sdl.WINDOW_FULLSCREEN},
	}
	for _, test := range tests {
		if got := test.cfg.Flags(); got != test.want {
			t.Errorf("%+v.Flags() = %#x; want %#x", test.cfg, got, test.want)
		}
	}
}

func TestConfigFromCvars(t *testing.T) {
	defer cvars.Renderer.Reset()
	defer cvars.VideoWidth.Reset()
	defer cvars.VideoFullscreen.Reset()

	cvars.Renderer.SetByString("SW")
	cvars.VideoWidth.SetByString("100")
	cvars.VideoFullscreen.SetByString("1")
	c, err := ConfigFromCvars("title")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Title:      "title",
		Width:      320,
		Height:     640,
		Fullscreen: true,
		Renderer:   backend.SW,
		DepthBits:  16,
		VSync:      true,
	}
	if c != want {
		t.Errorf("ConfigFromCvars = %+v, want %+v", c, want)
	}

	cvars.Renderer.SetByString("d3d")
	if _, err := ConfigFromCvars("title"); err == nil {
		t.Errorf("ConfigFromCvars with unknown renderer succeeded")
	}
}

type fakeSDL struct {
	// creation fails while depth is above maxDepth, or always if fail
	maxDepth int
	fail     bool
	depth    int
	attrs    map[sdl.GLattr]int
	creates  []uint32
}

func (f *fakeSDL) api() sdlAPI {
	f.attrs = make(map[sdl.GLattr]int)
	return sdlAPI{
		setAttribute: func(attr sdl.GLattr, value int) error {
			f.attrs[attr] = value
			if attr == sdl.GL_DEPTH_SIZE {
				f.depth = value
			}
			return nil
		},
		createWindow: func(title string, x, y, w, h int32, flags uint32) (*sdl.Window, error) {
			f.creates = append(f.creates, flags)
			if f.fail || f.depth > f.maxDepth {
				return nil, errors.New("no matching visual")
			}
			return nil, nil
		},
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		sdl      fakeSDL
		creates  int
		depth    int
		wantErr  string
		wantAttr bool
	}{
		{
			name:     "gl first try",
			cfg:      Config{Renderer: backend.GL, DepthBits: 24},
			sdl:      fakeSDL{maxDepth: 24},
			creates:  1,
			depth:    24,
			wantAttr: true,
		},
		{
			name:     "gl retry with 16 bits",
			cfg:      Config{Renderer: backend.GL, DepthBits: 24},
			sdl:      fakeSDL{maxDepth: 16},
			creates:  2,
			depth:    16,
			wantAttr: true,
		},
		{
			name:     "gl fails twice",
			cfg:      Config{Renderer: backend.GL, DepthBits: 32},
			sdl:      fakeSDL{fail: true},
			creates:  2,
			depth:    16,
			wantErr:  "Failed to create graphics window: no matching visual",
			wantAttr: true,
		},
		{
			name:     "gl 16 bits no retry",
			cfg:      Config{Renderer: backend.GL, DepthBits: 16},
			sdl:      fakeSDL{fail: true},
			creates:  1,
			depth:    16,
			wantErr:  "Failed to create graphics window: no matching visual",
			wantAttr: true,
		},
		{
			name:    "sw fails",
			cfg:     Config{Renderer: backend.SW, DepthBits: 24},
			sdl:     fakeSDL{fail: true},
			creates: 1,
			wantErr: "Failed to create graphics window: no matching visual",
		},
	}
	for _, test := range tests {
		f := test.sdl
		_, err := f.api().create(test.cfg)
		if test.wantErr == "" && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if test.wantErr != "" && (err == nil || err.Error() != test.wantErr) {
			t.Errorf("%s: error = %v, want %q", test.name, err, test.wantErr)
		}
		if len(f.creates) != test.creates {
			t.Errorf("%s: %d create calls, want %d", test.name, len(f.creates), test.creates)
		}
		if f.depth != test.depth {
			t.Errorf("%s: last depth %d, want %d", test.name, f.depth, test.depth)
		}
		if got := len(f.attrs) != 0; got != test.wantAttr {
			t.Errorf("%s: GL attributes set = %v, want %v", test.name, got, test.wantAttr)
		}
		if test.wantAttr && f.attrs[sdl.GL_ACCELERATED_VISUAL] != 1 {
			t.Errorf("%s: accelerated visual not requested", test.name)
		}
	}
}

func TestCreateAllowSoftware(t *testing.T) {
	var f fakeSDL
	f.maxDepth = 16
	if _, err := f.api().create(Config{Renderer: backend.GL, DepthBits: 16, AllowSoftware: true}); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.attrs[sdl.GL_ACCELERATED_VISUAL]; ok {
		t.Errorf("accelerated visual requested with AllowSoftware")
	}
	if f.attrs[sdl.GL_CONTEXT_MAJOR_VERSION] != 3 || f.attrs[sdl.GL_CONTEXT_MINOR_VERSION] != 3 {
		t.Errorf("context version = %d.%d, want 3.3",
			f.attrs[sdl.GL_CONTEXT_MAJOR_VERSION], f.attrs[sdl.GL_CONTEXT_MINOR_VERSION])
	}
}
