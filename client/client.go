// SPDX-License-Identifier: GPL-2.0-or-later

// Package client is the startup screen shown until a game view takes
// over.
package client

import (
	"image/color"
	"strings"
	"time"

	"gospades/audio"
	"gospades/conlog"
	"gospades/cvars"
	"gospades/dispatch"
	"gospades/history"
	"gospades/keycode"
	"gospades/math"
	"gospades/renderer"
	"gospades/view"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

const (
	maxMessages  = 8
	toneDuration = 120 * time.Millisecond
	volumeStep   = 0.05
)

var (
	background = color.RGBA{R: 0x10, G: 0x18, B: 0x28, A: 0xff}
	chatColor  = color.RGBA{R: 0x18, G: 0x28, B: 0x40, A: 0xff}
	toneFreq   = map[string]float64{
		keycode.MouseLeft:   440,
		keycode.MouseRight:  660,
		keycode.MouseMiddle: 550,
	}
)

type Client struct {
	r renderer.Renderer
	a audio.Device

	time    float32
	cursorX float32
	cursorY float32

	chatting bool
	chat     []rune
	// composition text of the input method, not yet committed
	editing  string
	recall   history.History
	histFile string
	messages []string

	tones      []uuid.UUID
	wantsClose bool
	closed     bool
}

// New returns a client that forgets its chat lines on exit.
func New(r renderer.Renderer, a audio.Device) (view.View, error) {
	return newClient(r, a), nil
}

// WithHistory returns a constructor for clients that keep submitted chat
// lines in file.
func WithHistory(file string) func(renderer.Renderer, audio.Device) (view.View, error) {
	return func(r renderer.Renderer, a audio.Device) (view.View, error) {
		c := newClient(r, a)
		c.histFile = file
		if err := c.recall.Load(file); err != nil {
			conlog.Printf("Couldn't load chat history: %v\n", err)
		}
		return c, nil
	}
}

func newClient(r renderer.Renderer, a audio.Device) *Client {
	w, h := r.Size()
	return &Client{
		r:       r,
		a:       a,
		cursorX: float32(w) / 2,
		cursorY: float32(h) / 2,
	}
}

func (c *Client) RunFrame(dt float32) {
	c.time += dt
	bg := background
	if c.chatting {
		bg = chatColor
	}
	// slow pulse so a frozen loop is visible
	pulse := uint8(8 * (1 + math32.Sin(c.time*2)))
	bg.B += pulse
	c.r.Clear(bg)
	if err := c.r.Flip(); err != nil {
		conlog.DPrintf("Flip: %v\n", err)
	}
}

// Closing also answers a platform quit, the loop stops on the next
// WantsToBeClosed.
func (c *Client) Closing() {
	c.wantsClose = true
	if c.closed {
		return
	}
	c.closed = true
	for _, id := range c.tones {
		c.a.Stop(id)
	}
	c.tones = nil
	if c.histFile != "" {
		if err := c.recall.Save(c.histFile); err != nil {
			conlog.Printf("Couldn't save chat history: %v\n", err)
		}
	}
	conlog.Printf("Client closing\n")
}

func (c *Client) WantsToBeClosed() bool {
	return c.wantsClose
}

func (c *Client) KeyEvent(key string, down bool) {
	if !down {
		return
	}
	if c.chatting {
		switch key {
		case keycode.Enter:
			c.submit()
		case keycode.Escape:
			c.endChat()
		case keycode.BackSpace:
			if len(c.chat) > 0 {
				c.chat = c.chat[:len(c.chat)-1]
			}
		case keycode.Up:
			c.recall.Up()
			c.chat = []rune(c.recall.String())
		case keycode.Down:
			c.recall.Down()
			c.chat = []rune(c.recall.String())
		}
		return
	}
	switch key {
	case keycode.Slash:
		c.chatting = true
	case keycode.Escape:
		c.wantsClose = true
	default:
		if f, ok := toneFreq[key]; ok {
			c.playTone(f)
		}
	}
}

func (c *Client) playTone(freq float64) {
	tone, err := generators.SineTone(audio.SampleRate, freq)
	if err != nil {
		conlog.DPrintf("tone %v: %v\n", freq, err)
		return
	}
	s := &effects.Gain{
		Streamer: beep.Take(audio.SampleRate.N(toneDuration), tone),
		Gain:     -0.8,
	}
	c.tones = append(c.tones, c.a.Play(s))
	if len(c.tones) > 16 {
		c.tones = c.tones[1:]
	}
}

func (c *Client) MouseEvent(dx, dy float32) {
	w, h := c.r.Size()
	c.cursorX = math.Clamp(0, c.cursorX+dx, float32(w-1))
	c.cursorY = math.Clamp(0, c.cursorY+dy, float32(h-1))
}

// Cursor returns the virtual pointer position in window pixels.
func (c *Client) Cursor() (float32, float32) {
	return c.cursorX, c.cursorY
}

// WheelEvent changes s_volume, the wheel reports inverted deltas.
func (c *Client) WheelEvent(x, y float32) {
	if y == 0 {
		return
	}
	v := cvars.Volume.Value() + y*volumeStep
	cvars.Volume.SetValue(math.Clamp(0, v, 1))
}

func (c *Client) TextInputEvent(text string) {
	if !c.chatting {
		return
	}
	c.chat = append(c.chat, []rune(text)...)
	c.editing = ""
}

func (c *Client) TextEditingEvent(text string, start, length int) {
	if !c.chatting {
		return
	}
	c.editing = text
}

func (c *Client) AcceptsTextInput() bool {
	return c.chatting
}

func (c *Client) TextInputRect() view.Rect {
	w, h := c.r.Size()
	return view.NewRect(8, float32(h)-24, float32(w)-16, 16)
}

// ChatLine is the text typed so far, including uncommitted composition.
func (c *Client) ChatLine() string {
	return string(c.chat) + c.editing
}

// Messages returns the latest chat lines, oldest first.
func (c *Client) Messages() []string {
	return c.messages
}

func (c *Client) submit() {
	msg := strings.TrimSpace(string(c.chat))
	c.endChat()
	if msg == "" {
		return
	}
	c.recall.Add(msg)
	c.addMessage(msg)
}

func (c *Client) endChat() {
	c.chatting = false
	c.chat = c.chat[:0]
	c.editing = ""
}

func (c *Client) addMessage(msg string) {
	conlog.Printf("%s\n", msg)
	c.messages = append(c.messages, msg)
	if len(c.messages) > maxMessages {
		c.messages = c.messages[len(c.messages)-maxMessages:]
	}
}

// Say adds msg to the chat messages. It may be called from any
// goroutine, the message shows up on the next frame.
func (c *Client) Say(msg string) {
	dispatch.Main().Post(func() {
		c.addMessage(msg)
	})
}
