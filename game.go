package main

import (
	"github.com/samber/lo"
)

// Size of the playing field. Much wider than the screen, so the view
// scrolls horizontally.
const (
	playingFieldWidth  = 5000
	playingFieldHeight = 800
)

// The minimap occupies a strip at the top of the screen; the rest is the
// main play view.
const (
	minimapHeight    = screenHeight / 4
	mainScreenHeight = screenHeight - minimapHeight
)

// How close the player gets to the screen edges before the view scrolls.
const (
	viewportMargin        = screenWidth/2 - 50
	topViewportMargin     = 30
	defaultBottomViewport = -10
)

// Player movement tuning.
const (
	maxHorizontalSpeed     = 10
	maxVerticalSpeed       = 5
	horizontalAcceleration = 0.5
	verticalAcceleration   = 0.2
	movementDrag           = 0.08
)

// How far a bullet travels before disappearing.
const bulletMaxDistance = screenWidth * 0.75

const (
	numStars          = 80
	numEnemies        = 20
	entitySpawnHeight = 600
	particleBurstSize = 10
	particleFadeStep  = 5
)

const glowDownscale = 8

// step advances the world by one tick: fire, physics, expiry, collisions,
// then the camera. The render sequencer reads the result.
func (g *Game) step() {
	g.ticks++

	if g.keys.Fire {
		g.bullets = append(g.bullets, NewBullet(g.player))
	}

	g.updatePlayer()
	g.updateBullets()
	g.updateParticles()
	g.resolveHits()
	g.camera.Follow(g.player)
}

func (g *Game) updatePlayer() {
	if g.keys.Up && !g.keys.Down {
		g.player.AccelerateUp()
	} else if g.keys.Down && !g.keys.Up {
		g.player.AccelerateDown()
	}

	if g.keys.Left && !g.keys.Right {
		g.player.AccelerateLeft()
	} else if g.keys.Right && !g.keys.Left {
		g.player.AccelerateRight()
	}

	g.player.Update()
}

func (g *Game) updateBullets() {
	g.bullets = lo.Map(g.bullets, func(b *Bullet, _ int) *Bullet {
		b.Update()
		return b
	})

	g.bullets = lo.Filter(g.bullets, func(b *Bullet, _ int) bool {
		return !b.Expired()
	})
}

func (g *Game) updateParticles() {
	g.particles = lo.Map(g.particles, func(pt *Particle, _ int) *Particle {
		pt.Update()
		return pt
	})

	g.particles = lo.Filter(g.particles, func(pt *Particle, _ int) bool {
		return !pt.Dead()
	})
}

// resolveHits tests every bullet against every enemy. Bullets are
// processed in order and destroy at most one enemy each per tick; an
// enemy already destroyed this tick is skipped by later bullets.
func (g *Game) resolveHits() {
	for _, b := range g.bullets {
		for _, e := range g.enemies {
			if e.hit || !b.Overlaps(e) {
				continue
			}
			e.hit = true
			g.particles = append(g.particles, newParticleBurst(g.random, e.pos)...)
			break
		}
	}

	g.enemies = lo.Filter(g.enemies, func(e *Enemy, _ int) bool {
		return !e.hit
	})
}
