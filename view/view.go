// SPDX-License-Identifier: GPL-2.0-or-later

// Package view defines the screen that receives input and frame updates
// from the runner.
package view

import (
	"github.com/chewxy/math32"
)

// View is the active game or UI screen. All methods are called from the
// client loop goroutine.
type View interface {
	// RunFrame advances the view by dt seconds.
	RunFrame(dt float32)
	// Closing is called once before the view is dropped or when the
	// platform asks to quit.
	Closing()
	WantsToBeClosed() bool

	KeyEvent(key string, down bool)
	MouseEvent(dx, dy float32)
	WheelEvent(x, y float32)
	TextInputEvent(text string)
	TextEditingEvent(text string, start, length int)

	AcceptsTextInput() bool
	// TextInputRect is where the IME candidate window should go, in
	// window coordinates.
	TextInputRect() Rect
}

// Rect is an axis aligned box.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}.Canonical()
}

func (r Rect) Width() float32  { return r.MaxX - r.MinX }
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Canonical returns r with Min <= Max on both axes.
func (r Rect) Canonical() Rect {
	return Rect{
		MinX: math32.Min(r.MinX, r.MaxX),
		MinY: math32.Min(r.MinY, r.MaxY),
		MaxX: math32.Max(r.MinX, r.MaxX),
		MaxY: math32.Max(r.MinY, r.MaxY),
	}
}

func (r Rect) Contains(x, y float32) bool {
	return r.MinX <= x && x < r.MaxX && r.MinY <= y && y < r.MaxY
}
