package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/eduardonunesp/flixel"
)

// enableAutoWalk schedules scripted movement; d of 0 or less never
// expires.
func (g *Game) enableAutoWalk(d time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Time{}
	if d > 0 {
		g.autoWalkDeadline = time.Now().Add(d)
	}
	g.autoWalkFrameCount = 0
}

// movementVector selects either manual or automatic movement direction.
func (g *Game) movementVector() (float64, float64) {
	if g.autoWalk {
		if !g.autoWalkDeadline.IsZero() && time.Now().After(g.autoWalkDeadline) {
			g.autoWalk = false
			return 0, 0
		}
		return g.autoWalkVector()
	}
	return g.manualMovementVector()
}

// manualMovementVector returns WASD-based input movement scaled by
// moveSpeed.
func (g *Game) manualMovementVector() (float64, float64) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += moveSpeed
	}
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}
	return dx, dy
}

// autoWalkVector returns a pseudo-random, collision-aware movement
// vector.
func (g *Game) autoWalkVector() (float64, float64) {
	for attempts := 0; attempts < 5; attempts++ {
		if g.autoWalkFrameCount <= 0 {
			g.randomizeAutoWalkDirection()
		}
		dx := g.autoWalkDirX * moveSpeed
		dy := g.autoWalkDirY * moveSpeed
		if !g.collidesAt(g.player.X+dx, g.player.Y+dy) {
			g.autoWalkFrameCount--
			return dx, dy
		}
		g.autoWalkFrameCount = 0
	}
	return 0, 0
}

// randomizeAutoWalkDirection chooses a new heading for scripted walking.
func (g *Game) randomizeAutoWalkDirection() {
	angle := g.autoWalkRand.Float64() * 2 * math.Pi
	g.autoWalkDirX = math.Cos(angle)
	g.autoWalkDirY = math.Sin(angle)
	g.autoWalkFrameCount = 20 + g.autoWalkRand.Intn(50)
}

// collidesAt probes the map with the player box at a candidate position.
// The probe carries no kind, which keeps reaction hooks quiet.
func (g *Game) collidesAt(x, y float64) bool {
	probe := flixel.Object{X: x, Y: y, Width: playerSize, Height: playerSize}
	probe.Last = flixel.Point{X: g.player.X, Y: g.player.Y}
	return g.tm.OverlapsWithCallback(&probe, nil)
}
