// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes console messages. Until a console is attached
// everything goes to the process log.
package conlog

import (
	"log"
	"sync"
)

type PrintFunc func(format string, v ...interface{})

var (
	mu        sync.RWMutex
	p         PrintFunc = log.Printf
	developer bool
)

func SetPrintf(f PrintFunc) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		f = log.Printf
	}
	p = f
}

// SetDeveloper enables DPrintf output.
func SetDeveloper(b bool) {
	mu.Lock()
	developer = b
	mu.Unlock()
}

func Printf(format string, v ...interface{}) {
	mu.RLock()
	f := p
	mu.RUnlock()
	f(format, v...)
}

// DPrintf prints only in developer mode.
func DPrintf(format string, v ...interface{}) {
	mu.RLock()
	f, d := p, developer
	mu.RUnlock()
	if d {
		f(format, v...)
	}
}
