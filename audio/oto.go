// SPDX-License-Identifier: GPL-2.0-or-later

package audio

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"
	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
)

const bytesPerFrame = channelCount * 4

type otoDevice struct {
	ctx    *oto.Context
	player *oto.Player
	mixer  *Mixer
}

func newOtoDevice() (*otoDevice, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(SampleRate),
		ChannelCount: channelCount,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to open oto audio context")
	}
	<-ready
	d := &otoDevice{
		ctx:   ctx,
		mixer: NewMixer(),
	}
	d.player = ctx.NewPlayer(&pcmReader{s: d.mixer})
	d.player.Play()
	return d, nil
}

func (d *otoDevice) Play(s beep.Streamer) uuid.UUID { return d.mixer.Add(s) }
func (d *otoDevice) Stop(id uuid.UUID) { d.mixer.Remove(id) }
func (d *otoDevice) SetVolume(v float64) { d.mixer.SetVolume(v) }
func (d *otoDevice) Suspend() error { return d.ctx.Suspend() }
func (d *otoDevice) Resume() error { return d.ctx.Resume() }

// Close stops the player. oto contexts live until the process exits.
func (d *otoDevice) Close() error {
	d.mixer.Clear()
	return d.player.Close()
}

// pcmReader encodes a stereo streamer as interleaved float32 LE.
type pcmReader struct {
	s   beep.Streamer
	buf [][2]float64
}

func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]
	n, _ := r.s.Stream(buf)
	clear(buf[n:])
	for i, f := range buf {
		o := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[o:], math.Float32bits(float32(f[0])))
		binary.LittleEndian.PutUint32(p[o+4:], math.Float32bits(float32(f[1])))
	}
	return frames * bytesPerFrame, nil
}
