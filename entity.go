package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-util/mathutil"
)

var (
	colorPlayer  = color.RGBA{0x70, 0x80, 0x90, 0xff}
	colorEnemy   = color.RGBA{0xff, 0xa0, 0x7a, 0xff}
	colorMinimap = color.RGBA{0x01, 0x32, 0x20, 0xff}
)

// Player is the ship. Position and velocity are in world coordinates
// (y-up, ground at zero).
type Player struct {
	pos       *mathutil.Vector2D
	v         *mathutil.Vector2D
	faceRight bool
	w, h      float64
}

func NewPlayer() *Player {
	return &Player{
		pos:       mathutil.NewVector2D(50, 50),
		v:         mathutil.NewVector2D(0, 0),
		faceRight: true,
		w:         40,
		h:         10,
	}
}

func (p *Player) Left() float64   { return p.pos.X - p.w/2 }
func (p *Player) Right() float64  { return p.pos.X + p.w/2 }
func (p *Player) Bottom() float64 { return p.pos.Y - p.h/2 }
func (p *Player) Top() float64    { return p.pos.Y + p.h/2 }

func (p *Player) AccelerateUp() {
	p.v.Y += verticalAcceleration
	if p.v.Y > maxVerticalSpeed {
		p.v.Y = maxVerticalSpeed
	}
}

func (p *Player) AccelerateDown() {
	p.v.Y -= verticalAcceleration
	if p.v.Y < -maxVerticalSpeed {
		p.v.Y = -maxVerticalSpeed
	}
}

func (p *Player) AccelerateRight() {
	p.faceRight = true
	p.v.X += horizontalAcceleration
	if p.v.X > maxHorizontalSpeed {
		p.v.X = maxHorizontalSpeed
	}
}

func (p *Player) AccelerateLeft() {
	p.faceRight = false
	p.v.X -= horizontalAcceleration
	if p.v.X < -maxHorizontalSpeed {
		p.v.X = -maxHorizontalSpeed
	}
}

// Update integrates the position, applies drag toward zero, and clamps
// the player to the field horizontally and the screen band vertically.
func (p *Player) Update() {
	p.pos = p.pos.Add(p.v)

	p.v.X = applyDrag(p.v.X)
	p.v.Y = applyDrag(p.v.Y)

	if p.Left() < 0 {
		p.pos.X = p.w / 2
	} else if p.Right() > playingFieldWidth-1 {
		p.pos.X = playingFieldWidth - 1 - p.w/2
	}

	if p.Bottom() < 0 {
		p.pos.Y = p.h / 2
	} else if p.Top() > screenHeight-1 {
		p.pos.Y = screenHeight - 1 - p.h/2
	}
}

func (p *Player) Draw(dst *ebiten.Image, v view) {
	x, y, w, h := v.rect(p.pos.X, p.pos.Y, p.w, p.h)
	vector.DrawFilledRect(dst, x, y, w, h, colorPlayer, true)
}

// applyDrag moves v one drag step toward zero, snapping to zero once the
// remainder is below a single step.
func applyDrag(v float64) float64 {
	if v > 0 {
		v -= movementDrag
	}
	if v < 0 {
		v += movementDrag
	}
	if math.Abs(v) < movementDrag {
		v = 0
	}
	return v
}

// Bullet travels horizontally and expires once its accumulated travel
// passes bulletMaxDistance. Travel accumulates the speed, not the signed
// velocity, so left-fired bullets expire too.
type Bullet struct {
	pos      *mathutil.Vector2D
	v        *mathutil.Vector2D
	distance float64
	w, h     float64
}

// NewBullet spawns a bullet at the player's center, moving in the facing
// direction at least at speed 12, or 10 faster than the ship.
func NewBullet(p *Player) *Bullet {
	vx := math.Max(12, math.Abs(p.v.X)+10)
	if !p.faceRight {
		vx = -vx
	}
	return &Bullet{
		pos: p.pos.Clone(),
		v:   mathutil.NewVector2D(vx, 0),
		w:   35,
		h:   3,
	}
}

func (b *Bullet) Update() {
	b.pos = b.pos.Add(b.v)
	b.distance += math.Abs(b.v.X)
}

func (b *Bullet) Expired() bool {
	return b.distance > bulletMaxDistance
}

func (b *Bullet) Overlaps(e *Enemy) bool {
	return math.Abs(b.pos.X-e.pos.X)*2 < b.w+e.w &&
		math.Abs(b.pos.Y-e.pos.Y)*2 < b.h+e.h
}

func (b *Bullet) Draw(dst *ebiten.Image, v view) {
	x, y, w, h := v.rect(b.pos.X, b.pos.Y, b.w, b.h)
	vector.DrawFilledRect(dst, x, y, w, h, color.White, true)
}

// Particle is a burst fragment from a destroyed enemy. It drifts and
// fades out by a fixed step per tick.
type Particle struct {
	pos  *mathutil.Vector2D
	v    *mathutil.Vector2D
	fade int
}

func (pt *Particle) Update() {
	pt.pos = pt.pos.Add(pt.v)
	pt.fade -= particleFadeStep
}

func (pt *Particle) Dead() bool {
	return pt.fade <= 0
}

func (pt *Particle) Draw(dst *ebiten.Image, v view) {
	x, y, w, h := v.rect(pt.pos.X, pt.pos.Y, 4, 4)
	a := uint8(pt.fade)
	// Premultiplied red.
	vector.DrawFilledRect(dst, x, y, w, h, color.RGBA{a, 0, 0, a}, true)
}

// newParticleBurst spawns the fixed-size burst at a destroyed enemy's
// position. Velocity components are small random integers, re-rolled
// until the particle actually moves.
func newParticleBurst(random *rand.Rand, at *mathutil.Vector2D) []*Particle {
	parts := make([]*Particle, 0, particleBurstSize)
	for i := 0; i < particleBurstSize; i++ {
		var vx, vy float64
		for vx == 0 && vy == 0 {
			vx = float64(random.Intn(5) - 2)
			vy = float64(random.Intn(5) - 2)
		}
		parts = append(parts, &Particle{
			pos:  at.Clone(),
			v:    mathutil.NewVector2D(vx, vy),
			fade: 255,
		})
	}
	return parts
}

// Enemy sits at a fixed position until a bullet hits it. hit marks it
// for removal at the end of the collision step.
type Enemy struct {
	pos  *mathutil.Vector2D
	w, h float64
	hit  bool
}

func NewEnemy(x, y float64) *Enemy {
	return &Enemy{
		pos: mathutil.NewVector2D(x, y),
		w:   20,
		h:   20,
	}
}

func (e *Enemy) Draw(dst *ebiten.Image, v view) {
	x, y, w, h := v.rect(e.pos.X, e.pos.Y, e.w, e.h)
	vector.DrawFilledRect(dst, x, y, w, h, colorEnemy, true)
}

// Star is background decoration, drawn only on the glow layer.
type Star struct {
	pos *mathutil.Vector2D
}

func (s *Star) Draw(dst *ebiten.Image, v view) {
	x, y, w, h := v.rect(s.pos.X, s.pos.Y, 4, 4)
	vector.DrawFilledRect(dst, x, y, w, h, color.White, true)
}
