package main

import "math"

// Camera holds the world-to-screen scroll offsets. ViewLeft follows the
// player horizontally inside the viewport margins; ViewBottom resets
// every frame and only rises when the player flies above the band left
// free by the minimap.
type Camera struct {
	ViewLeft   float64
	ViewBottom float64
}

// Follow recomputes both offsets from the player position. Corrections
// are by exact overshoot, so the player is pinned at the margin and
// never beyond it. Offsets are truncated to whole pixels to avoid
// sub-pixel jitter.
func (c *Camera) Follow(p *Player) {
	if left := c.ViewLeft + viewportMargin; p.Left() < left {
		c.ViewLeft -= left - p.Left()
	}

	if right := c.ViewLeft + screenWidth - viewportMargin; p.Right() > right {
		c.ViewLeft += p.Right() - right
	}

	c.ViewBottom = defaultBottomViewport
	if top := c.ViewBottom + screenHeight - topViewportMargin - minimapHeight; p.Top() > top {
		c.ViewBottom += p.Top() - top
	}

	c.ViewLeft = math.Trunc(c.ViewLeft)
	c.ViewBottom = math.Trunc(c.ViewBottom)
}

// view returns the transform mapping world coordinates onto the screen
// for the current offsets.
func (c *Camera) view() view {
	return view{
		left:   c.ViewLeft,
		bottom: c.ViewBottom,
		sx:     1,
		sy:     1,
		height: screenHeight,
	}
}
