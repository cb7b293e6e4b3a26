package main

import (
	"math/rand"
	"testing"

	"github.com/tsujio/game-util/mathutil"
)

func TestPlayerAccelerationClampsToMaxSpeed(t *testing.T) {
	p := NewPlayer()

	for i := 0; i < 100; i++ {
		p.AccelerateRight()
	}
	if p.v.X != maxHorizontalSpeed {
		t.Fatalf("vx after holding right = %f, want %f", p.v.X, float64(maxHorizontalSpeed))
	}

	for i := 0; i < 100; i++ {
		p.AccelerateUp()
	}
	if p.v.Y != maxVerticalSpeed {
		t.Fatalf("vy after holding up = %f, want %f", p.v.Y, float64(maxVerticalSpeed))
	}

	for i := 0; i < 200; i++ {
		p.AccelerateLeft()
		p.AccelerateDown()
	}
	if p.v.X != -maxHorizontalSpeed || p.v.Y != -maxVerticalSpeed {
		t.Fatalf("velocity after holding left+down = (%f, %f), want (%f, %f)",
			p.v.X, p.v.Y, float64(-maxHorizontalSpeed), float64(-maxVerticalSpeed))
	}
}

func TestPlayerDragBringsVelocityToZero(t *testing.T) {
	p := NewPlayer()
	p.v.X = 2
	p.v.Y = -1

	prev := p.v.X
	for i := 0; i < 1000 && (p.v.X != 0 || p.v.Y != 0); i++ {
		p.Update()
		if p.v.X > prev {
			t.Fatalf("vx increased under drag: %f -> %f", prev, p.v.X)
		}
		prev = p.v.X
	}

	if p.v.X != 0 || p.v.Y != 0 {
		t.Fatalf("velocity did not settle to zero, got (%f, %f)", p.v.X, p.v.Y)
	}
}

func TestPlayerClampedToFieldBounds(t *testing.T) {
	p := NewPlayer()
	p.pos = mathutil.NewVector2D(5, 50)
	p.v.X = -maxHorizontalSpeed
	p.Update()
	if p.Left() != 0 {
		t.Fatalf("left edge after clamping = %f, want 0", p.Left())
	}

	p = NewPlayer()
	p.pos = mathutil.NewVector2D(playingFieldWidth-5, 50)
	p.v.X = maxHorizontalSpeed
	p.Update()
	if p.Right() != playingFieldWidth-1 {
		t.Fatalf("right edge after clamping = %f, want %d", p.Right(), playingFieldWidth-1)
	}

	p = NewPlayer()
	p.pos = mathutil.NewVector2D(50, 2)
	p.v.Y = -maxVerticalSpeed
	p.Update()
	if p.Bottom() != 0 {
		t.Fatalf("bottom edge after clamping = %f, want 0", p.Bottom())
	}

	p = NewPlayer()
	p.pos = mathutil.NewVector2D(50, screenHeight-2)
	p.v.Y = maxVerticalSpeed
	p.Update()
	if p.Top() != screenHeight-1 {
		t.Fatalf("top edge after clamping = %f, want %d", p.Top(), screenHeight-1)
	}
}

func TestBulletExpiresJustPastMaxDistance(t *testing.T) {
	b := &Bullet{
		pos: mathutil.NewVector2D(0, 50),
		v:   mathutil.NewVector2D(bulletMaxDistance, 0),
		w:   35, h: 3,
	}

	b.Update()
	if b.Expired() {
		t.Fatalf("bullet expired at exactly the max distance (%f)", b.distance)
	}

	b.Update()
	if !b.Expired() {
		t.Fatalf("bullet not expired past the max distance (%f)", b.distance)
	}
}

func TestLeftFiredBulletExpiresToo(t *testing.T) {
	b := &Bullet{
		pos: mathutil.NewVector2D(playingFieldWidth, 50),
		v:   mathutil.NewVector2D(-bulletMaxDistance/2, 0),
		w:   35, h: 3,
	}

	b.Update()
	b.Update()
	if b.Expired() {
		t.Fatalf("bullet expired at the max distance (%f)", b.distance)
	}

	b.Update()
	if !b.Expired() {
		t.Fatalf("left-fired bullet never expired (distance %f)", b.distance)
	}
}

func TestNewBulletSpeed(t *testing.T) {
	p := NewPlayer()
	p.v.X = 8
	b := NewBullet(p)
	if b.v.X != 18 {
		t.Fatalf("bullet vx while moving right at 8 = %f, want 18", b.v.X)
	}
	if b.pos.X != p.pos.X || b.pos.Y != p.pos.Y {
		t.Fatalf("bullet spawned at (%f, %f), want player position (%f, %f)",
			b.pos.X, b.pos.Y, p.pos.X, p.pos.Y)
	}

	p.v.X = 1
	if b := NewBullet(p); b.v.X != 12 {
		t.Fatalf("bullet vx from a slow ship = %f, want the floor 12", b.v.X)
	}

	p.faceRight = false
	p.v.X = -8
	if b := NewBullet(p); b.v.X != -18 {
		t.Fatalf("bullet vx facing left = %f, want -18", b.v.X)
	}
}

func TestParticleFadesOutAndDies(t *testing.T) {
	pt := &Particle{
		pos:  mathutil.NewVector2D(0, 0),
		v:    mathutil.NewVector2D(1, 1),
		fade: 255,
	}

	ticks := 0
	for !pt.Dead() {
		prev := pt.fade
		pt.Update()
		if pt.fade != prev-particleFadeStep {
			t.Fatalf("fade stepped %d -> %d, want -%d per tick", prev, pt.fade, particleFadeStep)
		}
		ticks++
		if ticks > 255 {
			t.Fatal("particle never died")
		}
	}

	if want := 255 / particleFadeStep; ticks != want {
		t.Fatalf("particle died after %d ticks, want %d", ticks, want)
	}
}

func TestParticleBurst(t *testing.T) {
	at := mathutil.NewVector2D(300, 400)
	parts := newParticleBurst(rand.New(rand.NewSource(1)), at)

	if len(parts) != particleBurstSize {
		t.Fatalf("burst size = %d, want %d", len(parts), particleBurstSize)
	}
	for i, pt := range parts {
		if pt.pos.X != at.X || pt.pos.Y != at.Y {
			t.Fatalf("particle %d at (%f, %f), want (%f, %f)", i, pt.pos.X, pt.pos.Y, at.X, at.Y)
		}
		if pt.v.X == 0 && pt.v.Y == 0 {
			t.Fatalf("particle %d has zero velocity", i)
		}
		if pt.v.X < -2 || pt.v.X > 2 || pt.v.Y < -2 || pt.v.Y > 2 {
			t.Fatalf("particle %d velocity (%f, %f) out of range", i, pt.v.X, pt.v.Y)
		}
	}
}
