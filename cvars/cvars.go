// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"gospades/cvar"
)

var (
	VideoWidth             *cvar.Cvar
	VideoHeight            *cvar.Cvar
	VideoFullscreen        *cvar.Cvar
	VideoColorBits         *cvar.Cvar
	VideoDepthBits         *cvar.Cvar
	VideoVerticalSync      *cvar.Cvar
	AllowSoftwareRendering *cvar.Cvar
	Renderer               *cvar.Cvar
	AudioDriver            *cvar.Cvar
	Volume                 *cvar.Cvar
	InputDebugKeys         *cvar.Cvar
)

func init() {
	VideoWidth = cvar.MustRegister("r_videoWidth", "1024", cvar.ARCHIVE)
	VideoHeight = cvar.MustRegister("r_videoHeight", "640", cvar.ARCHIVE)
	VideoFullscreen = cvar.MustRegister("r_fullscreen", "0", cvar.ARCHIVE)
	VideoColorBits = cvar.MustRegister("r_colorBits", "32", cvar.ARCHIVE)
	VideoDepthBits = cvar.MustRegister("r_depthBits", "16", cvar.ARCHIVE)
	VideoVerticalSync = cvar.MustRegister("r_vsync", "1", cvar.ARCHIVE)
	AllowSoftwareRendering = cvar.MustRegister("r_allowSoftwareRendering", "0", cvar.ARCHIVE)
	Renderer = cvar.MustRegister("r_renderer", "gl", cvar.ARCHIVE)
	AudioDriver = cvar.MustRegister("s_audioDriver", "oto", cvar.ARCHIVE)
	Volume = cvar.MustRegister("s_volume", "1", cvar.ARCHIVE)
	InputDebugKeys = cvar.MustRegister("in_debugKeys", "0", cvar.NONE)
}
