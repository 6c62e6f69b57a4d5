// SPDX-License-Identifier: GPL-2.0-or-later

// Package audio opens the sound output selected by s_audioDriver.
package audio

import (
	"log"
	"sync"

	"gospades/backend"
	"gospades/cvar"
	"gospades/cvars"
	"gospades/math"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
)

const (
	SampleRate   = beep.SampleRate(44100)
	channelCount = 2
)

type Device interface {
	// Play starts s and returns a handle for Stop.
	Play(s beep.Streamer) uuid.UUID
	Stop(id uuid.UUID)
	// SetVolume sets the master volume, clamped to [0,1].
	SetVolume(v float64)
	// Suspend pauses output, e.g. while the window has no focus.
	Suspend() error
	Resume() error
	Close() error
}

// New opens the driver d. With enabled false a silent device is
// returned.
func New(d backend.AudioDriver, enabled bool) (Device, error) {
	var dev Device
	var err error
	switch {
	case !enabled:
		dev = newNullDevice()
	case d == backend.Oto:
		dev, err = newOtoDevice()
	case d == backend.Beep:
		dev, err = newBeepDevice()
	default:
		log.Panicf("unhandled audio driver %v", d)
	}
	if err != nil {
		return nil, err
	}
	attachVolume(dev)
	return dev, nil
}

// Driver returns the driver named by s_audioDriver.
func Driver() (backend.AudioDriver, error) {
	return backend.ParseAudioDriver(cvars.AudioDriver.String())
}

func attachVolume(dev Device) {
	dev.SetVolume(float64(cvars.Volume.Value()))
	cvars.Volume.SetCallback(func(cv *cvar.Cvar) {
		dev.SetVolume(float64(cv.Value()))
	})
}

// Detach stops forwarding s_volume changes to a closed device.
func Detach() {
	cvars.Volume.SetCallback(nil)
}

// nullDevice discards everything. Streams are never pulled, so nothing
// is kept beyond the volume.
type nullDevice struct {
	mu     sync.Mutex
	volume float64
}

func newNullDevice() *nullDevice {
	return &nullDevice{volume: 1}
}

func (d *nullDevice) Play(s beep.Streamer) uuid.UUID { return uuid.Must(uuid.NewV7()) }
func (d *nullDevice) Stop(id uuid.UUID) {}

func (d *nullDevice) SetVolume(v float64) {
	d.mu.Lock()
	d.volume = math.Clamp(0, v, 1)
	d.mu.Unlock()
}

func (d *nullDevice) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}

func (d *nullDevice) Suspend() error { return nil }
func (d *nullDevice) Resume() error { return nil }
func (d *nullDevice) Close() error { return nil }
