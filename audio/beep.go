// SPDX-License-Identifier: GPL-2.0-or-later

package audio

import (
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

type beepDevice struct {
	mixer *Mixer
}

func newBeepDevice() (*beepDevice, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); err != nil {
		return nil, errors.Wrap(err, "Failed to init beep speaker")
	}
	d := &beepDevice{mixer: NewMixer()}
	speaker.Play(d.mixer)
	return d, nil
}

func (d *beepDevice) Play(s beep.Streamer) uuid.UUID { return d.mixer.Add(s) }
func (d *beepDevice) Stop(id uuid.UUID) { d.mixer.Remove(id) }
func (d *beepDevice) SetVolume(v float64) { d.mixer.SetVolume(v) }
func (d *beepDevice) Suspend() error { return speaker.Suspend() }
func (d *beepDevice) Resume() error { return speaker.Resume() }

func (d *beepDevice) Close() error {
	speaker.Clear()
	speaker.Close()
	d.mixer.Clear()
	return nil
}
