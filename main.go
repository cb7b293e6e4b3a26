package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tsujio/game-defender/keyutil"
	"github.com/tsujio/game-defender/postfx"
	"github.com/tsujio/game-util/mathutil"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

type Game struct {
	keys      *keyutil.Latch
	random    *rand.Rand
	ticks     uint64
	player    *Player
	bullets   []*Bullet
	particles []*Particle
	enemies   []*Enemy
	stars     []*Star
	camera    Camera

	minimapLayer *ebiten.Image
	glowLayer    *ebiten.Image
	glow         *postfx.Glow
}

func (g *Game) Update() error {
	g.keys.Update()
	g.step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderFrame(screen); err != nil {
		// Drop the frame and keep running.
		log.Printf("render failed: %v\n%s", err, debug.Stack())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) initialize() {
	g.ticks = 0
	g.player = NewPlayer()
	g.bullets = nil
	g.particles = nil
	g.camera = Camera{}

	g.stars = nil
	for i := 0; i < numStars; i++ {
		g.stars = append(g.stars, &Star{
			pos: mathutil.NewVector2D(
				float64(g.random.Intn(playingFieldWidth)),
				float64(g.random.Intn(entitySpawnHeight)),
			),
		})
	}

	g.enemies = nil
	for i := 0; i < numEnemies; i++ {
		g.enemies = append(g.enemies, NewEnemy(
			float64(g.random.Intn(playingFieldWidth)),
			float64(g.random.Intn(entitySpawnHeight)),
		))
	}
}

func main() {
	var seed int64
	if s, err := strconv.Atoi(os.Getenv("GAME_RAND_SEED")); err == nil {
		seed = int64(s)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Defender Clone")

	glow, err := postfx.NewGlow(screenWidth, screenHeight, glowDownscale)
	if err != nil {
		log.Fatal(fmt.Errorf("set up glow pass: %w", err))
	}

	game := &Game{
		keys:         &keyutil.Latch{},
		random:       rand.New(rand.NewSource(seed)),
		glow:         glow,
		minimapLayer: ebiten.NewImage(screenWidth, minimapHeight),
		glowLayer:    ebiten.NewImage(screenWidth, screenHeight),
	}
	game.initialize()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
