package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/chess2d/ui"
)

// Limits for two presses to count as one multi-click.
const (
	ClickInterval = 400 * time.Millisecond
	ClickRadius   = 4
)

// ClickCounter counts successive presses of one button at nearly the same
// spot. GLFW reports single presses only.
type ClickCounter struct {
	button ui.Button
	x, y   float64
	last   time.Time
	count  int
}

// Press records a press and returns how many presses in a row it ends.
func (c *ClickCounter) Press(button ui.Button, x, y float64, now time.Time) int {
	dx, dy := x-c.x, y-c.y
	near := dx*dx+dy*dy <= ClickRadius*ClickRadius

	if c.count > 0 && button == c.button && near && now.Sub(c.last) <= ClickInterval {
		c.count++
	} else {
		c.count = 1
	}

	c.button = button
	c.x, c.y = x, y
	c.last = now
	return c.count
}

// mapButton converts a GLFW mouse button.
func mapButton(b glfw.MouseButton) (ui.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return ui.ButtonLeft, true
	case glfw.MouseButtonRight:
		return ui.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return ui.ButtonMiddle, true
	}
	return 0, false
}
