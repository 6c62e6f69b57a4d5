// SPDX-License-Identifier: GPL-2.0-or-later

package runner

import (
	"runtime"
)

// Version is overridden at link time with -ldflags "-X gospades/runner.Version=...".
var Version = "0.1.0"

// Caption is the window title: package, version, build kind and compiler.
func Caption() string {
	c := "gospades " + Version
	if debugBuild {
		c += " DEBUG build"
	}
	return c + " " + runtime.Compiler + " " + runtime.Version()
}
