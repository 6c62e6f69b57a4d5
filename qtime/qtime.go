// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"time"
)

var (
	startTime = time.Now()
)

// QTime returns the time since process start.
func QTime() time.Duration {
	return time.Since(startTime)
}
