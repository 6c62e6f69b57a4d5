// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
)

// Options are the command line switches of the client. Switches that
// mirror a cvar only override it when given explicitly.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	Window     bool
	VSync      bool
	Renderer   string
	Audio      string
	NoSound    bool
	NoMouse    bool
	ConDebug   bool
	BaseDir    string
	Exec       string
}

func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", 0, "window width")
	fs.IntVar(&o.Height, "height", 0, "window height")
	fs.BoolVar(&o.Fullscreen, "fullscreen", false, "run fullscreen")
	fs.BoolVar(&o.Fullscreen, "f", false, "run fullscreen")
	fs.BoolVar(&o.Window, "window", false, "run in a window")
	fs.BoolVar(&o.Window, "w", false, "run in a window")
	fs.BoolVar(&o.VSync, "vsync", true, "wait for vertical sync")
	fs.StringVar(&o.Renderer, "renderer", "", "renderer: gl or sw")
	fs.StringVar(&o.Audio, "audio", "", "audio driver: oto or beep")
	fs.BoolVar(&o.NoSound, "nosound", false, "disable sound output")
	fs.BoolVar(&o.NoMouse, "nomouse", false, "do not grab the mouse")
	fs.BoolVar(&o.ConDebug, "condebug", false, "enable developer console output")
	fs.StringVar(&o.BaseDir, "basedir", "", "directory for settings and scripts")
	fs.StringVar(&o.Exec, "exec", "autoexec.cfg", "script executed at startup, relative to basedir")
}

// Overrides returns cvar assignments for every explicitly set switch
// that mirrors a cvar, sorted by flag name.
func (o *Options) Overrides(fs *flag.FlagSet) [][2]string {
	var r [][2]string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			r = append(r, [2]string{"r_videoWidth", strconv.Itoa(o.Width)})
		case "height":
			r = append(r, [2]string{"r_videoHeight", strconv.Itoa(o.Height)})
		case "fullscreen", "f":
			if o.Fullscreen {
				r = append(r, [2]string{"r_fullscreen", "1"})
			}
		case "window", "w":
			if o.Window {
				r = append(r, [2]string{"r_fullscreen", "0"})
			}
		case "vsync":
			r = append(r, [2]string{"r_vsync", b2s(o.VSync)})
		case "renderer":
			r = append(r, [2]string{"r_renderer", o.Renderer})
		case "audio":
			r = append(r, [2]string{"s_audioDriver", o.Audio})
		}
	})
	return r
}

func b2s(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

var (
	opts Options
)

func init() {
	opts.Bind(flag.CommandLine)
}

func Overrides() [][2]string {
	return opts.Overrides(flag.CommandLine)
}

// BaseDirectory returns -basedir or, if unset, a gospades directory in
// the user config dir.
func BaseDirectory() string {
	if opts.BaseDir != "" {
		return opts.BaseDir
	}
	d, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(d, "gospades")
}

func Sound() bool {
	return !opts.NoSound
}

func Mouse() bool {
	return !opts.NoMouse
}

func ConsoleDebug() bool {
	return opts.ConDebug
}

func Exec() string {
	return opts.Exec
}
