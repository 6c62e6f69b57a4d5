// SPDX-License-Identifier: GPL-2.0-or-later

// Package backend maps configuration strings to renderer and audio
// implementations.
package backend

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownBackend = errors.New("unknown backend")

type RendererType int

const (
	GL RendererType = iota
	SW
)

func (t RendererType) String() string {
	switch t {
	case GL:
		return "gl"
	case SW:
		return "sw"
	}
	return "invalid"
}

func ParseRendererType(s string) (RendererType, error) {
	switch {
	case strings.EqualFold(s, "gl"):
		return GL, nil
	case strings.EqualFold(s, "sw"):
		return SW, nil
	}
	return 0, errors.Wrapf(ErrUnknownBackend, "Unknown renderer name: %s", s)
}

type AudioDriver int

const (
	Oto AudioDriver = iota
	Beep
)

func (d AudioDriver) String() string {
	switch d {
	case Oto:
		return "oto"
	case Beep:
		return "beep"
	}
	return "invalid"
}

func ParseAudioDriver(s string) (AudioDriver, error) {
	switch {
	case strings.EqualFold(s, "oto"):
		return Oto, nil
	case strings.EqualFold(s, "beep"):
		return Beep, nil
	}
	return 0, errors.Wrapf(ErrUnknownBackend, "Unknown audio driver name: %s (oto or beep expected)", s)
}
