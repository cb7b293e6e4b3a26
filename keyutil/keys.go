// Package keyutil latches the keyboard state the game reads once per
// tick: held direction keys plus a fire edge.
package keyutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Latch holds one tick's worth of input. Update fills it from ebiten;
// the rest of the game only reads the fields.
type Latch struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// Fire is true only on the tick the fire key went down.
	Fire bool
}

func (l *Latch) Update() {
	l.Up = ebiten.IsKeyPressed(ebiten.KeyUp)
	l.Down = ebiten.IsKeyPressed(ebiten.KeyDown)
	l.Left = ebiten.IsKeyPressed(ebiten.KeyLeft)
	l.Right = ebiten.IsKeyPressed(ebiten.KeyRight)
	l.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
