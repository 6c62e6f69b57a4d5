// SPDX-License-Identifier: GPL-2.0-or-later

package audio

import (
	"sync"

	"gospades/math"

	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// Mixer sums all playing streams and applies the master volume. It is
// safe to use from the loop while an output device streams from it.
type Mixer struct {
	mu      sync.Mutex
	mixer   beep.Mixer
	gain    effects.Gain
	playing map[uuid.UUID]*track
}

// track forgets itself once its streamer is drained.
type track struct {
	id       uuid.UUID
	m        *Mixer
	streamer beep.Streamer
}

// Stream is called by beep.Mixer with m.mu held.
func (t *track) Stream(samples [][2]float64) (int, bool) {
	if t.streamer == nil {
		return 0, false
	}
	n, ok := t.streamer.Stream(samples)
	if !ok || n < len(samples) {
		t.streamer = nil
		delete(t.m.playing, t.id)
	}
	return n, ok
}

func (t *track) Err() error {
	if t.streamer == nil {
		return nil
	}
	return t.streamer.Err()
}

func NewMixer() *Mixer {
	m := &Mixer{playing: make(map[uuid.UUID]*track)}
	m.gain = effects.Gain{Streamer: &m.mixer}
	return m
}

func (m *Mixer) Add(s beep.Streamer) uuid.UUID {
	t := &track{
		id:       uuid.Must(uuid.NewV7()),
		m:        m,
		streamer: s,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing[t.id] = t
	m.mixer.Add(t)
	return t.id
}

// Remove stops the stream with the given id. It reports whether it was
// still playing. The beep mixer lets go of it on the next Stream.
func (m *Mixer) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.playing[id]
	if !ok {
		return false
	}
	t.streamer = nil
	delete(m.playing, id)
	return true
}

func (m *Mixer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Clear()
	clear(m.playing)
}

func (m *Mixer) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.playing)
}

func (m *Mixer) SetVolume(v float64) {
	m.mu.Lock()
	m.gain.Gain = math.Clamp(0, v, 1) - 1
	m.mu.Unlock()
}

func (m *Mixer) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gain.Gain + 1
}

// Stream always fills samples, with silence if nothing plays.
func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	n, _ := m.gain.Stream(samples)
	m.mu.Unlock()
	clear(samples[n:])
	return len(samples), true
}

func (m *Mixer) Err() error {
	return nil
}
