package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// view maps world coordinates (y-up, ground at zero) onto a render
// target's y-down pixel space.
type view struct {
	left, bottom float64
	sx, sy       float64
	height       float64
}

func (v view) point(wx, wy float64) (float32, float32) {
	return float32((wx - v.left) * v.sx), float32(v.height - (wy-v.bottom)*v.sy)
}

// rect maps a world rectangle given by center and size to target-space
// top-left position and size.
func (v view) rect(cx, cy, w, h float64) (x, y, rw, rh float32) {
	sx, sy := v.point(cx, cy)
	rw = float32(w * v.sx)
	rh = float32(h * v.sy)
	return sx - rw/2, sy - rh/2, rw, rh
}

// minimapView squeezes the full field width into the minimap strip.
// Vertically it shows the same world band the screen can reach.
func minimapView() view {
	return view{
		sx:     float64(screenWidth) / playingFieldWidth,
		sy:     float64(minimapHeight) / screenHeight,
		height: minimapHeight,
	}
}

// renderFrame runs the whole per-frame draw sequence. Any error is
// returned to the caller, which logs it and drops the frame.
func (g *Game) renderFrame(screen *ebiten.Image) error {
	if g.minimapLayer == nil || g.glowLayer == nil || g.glow == nil {
		return fmt.Errorf("render targets not initialized")
	}

	// Pass 1: minimap source, the whole field unscrolled.
	g.minimapLayer.Clear()
	mv := minimapView()
	for _, e := range g.enemies {
		e.Draw(g.minimapLayer, mv)
	}
	g.player.Draw(g.minimapLayer, mv)

	// Pass 2: glow sources through the camera.
	g.glowLayer.Clear()
	cv := g.camera.view()
	for _, s := range g.stars {
		s.Draw(g.glowLayer, cv)
	}
	for _, b := range g.bullets {
		b.Draw(g.glowLayer, cv)
	}
	for _, pt := range g.particles {
		pt.Draw(g.glowLayer, cv)
	}
	drawGround(g.glowLayer, cv)

	// Pass 3: bloom underneath, then the sharp foreground.
	screen.Fill(color.Black)
	if err := g.glow.Render(screen, g.glowLayer); err != nil {
		return fmt.Errorf("glow pass: %w", err)
	}
	for _, e := range g.enemies {
		e.Draw(screen, cv)
	}
	g.player.Draw(screen, cv)
	drawGround(screen, cv)

	// Passes 4-6: minimap overlay in screen space.
	g.drawMinimap(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.1f", ebiten.ActualFPS()))

	return nil
}

func drawGround(dst *ebiten.Image, v view) {
	x0, y0 := v.point(0, 0)
	x1, y1 := v.point(playingFieldWidth, 0)
	vector.StrokeLine(dst, x0, y0, x1, y1, 1, color.White, true)
}

// drawMinimap composites the minimap strip: background, the offscreen
// full-field render, and an outline showing the part of the world the
// main view currently covers.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, minimapHeight, colorMinimap, false)

	screen.DrawImage(g.minimapLayer, &ebiten.DrawImageOptions{})

	mv := minimapView()
	x, top := mv.point(g.camera.ViewLeft, g.camera.ViewBottom+mainScreenHeight)
	w := float32(screenWidth * mv.sx)
	h := float32(mainScreenHeight * mv.sy)
	vector.StrokeRect(screen, x, top, w, h, 1, color.White, true)
}
