package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/eduardonunesp/flixel"
)

// kindPlayer tags the player so wall reaction hooks only fire for it.
const kindPlayer flixel.Kind = 1

// Overlay palette.
var (
	backgroundColor = color.RGBA{22, 24, 33, 255}
	playerColor     = color.RGBA{255, 80, 80, 255}
	pathColor       = color.RGBA{0, 255, 200, 200}
	rayClearColor   = color.RGBA{0, 200, 255, 200}
	rayHitColor     = color.RGBA{255, 200, 0, 255}
)

// Game holds the tilemap, the player, and the path and ray preview state.
type Game struct {
	tm        *flixel.Tilemap
	sheet     *flixel.TileSheet
	player    flixel.Object
	playerImg *ebiten.Image

	levelRand *rand.Rand

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkDirX       float64
	autoWalkDirY       float64
	autoWalkFrameCount int
	repathTimer        int

	path       []flixel.Point
	pathTarget flixel.Point
	hasTarget  bool

	cursor   flixel.Point
	rayClear bool
	rayHit   flixel.Point

	wallBumps int

	stopPGO func()
}

// newGame generates a level, loads it, and wires the player and hooks.
func newGame() *Game {
	widthInTiles := *mapWidthFlag
	heightInTiles := *mapHeightFlag
	if widthInTiles < 8 || heightInTiles < 8 {
		log.Fatalf("level %dx%d is too small, need at least 8x8 tiles", widthInTiles, heightInTiles)
	}
	mode, err := parseAutotileMode(*autotileFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		levelRand:    rand.New(rand.NewSource(seed)),
		autoWalkRand: rand.New(rand.NewSource(seed + 1)),
	}
	tm, err := flixel.NewTilemap(generateLevel(g.levelRand, widthInTiles, heightInTiles), flixel.Config{
		SheetWidth:  16 * tileSize,
		SheetHeight: tileSize,
		TileWidth:   tileSize,
		Autotile:    mode,
	})
	if err != nil {
		log.Fatalf("Level load failed: %v", err)
	}
	g.tm = tm
	g.sheet = buildWallSheet()
	g.playerImg = ebiten.NewImage(playerSize, playerSize)
	g.playerImg.Fill(playerColor)

	// Count wall contacts through the reaction hook on every wall id.
	tm.SetTileProperties(1, flixel.SideAll, flixel.ReactorFunc(func(_ *flixel.Tile, _ *flixel.Object) {
		g.wallBumps++
	}), kindPlayer, 16)

	g.player = flixel.Object{
		X:      tm.Bounds().Width/2 - playerSize/2,
		Y:      tm.Bounds().Height/2 - playerSize/2,
		Width:  playerSize,
		Height: playerSize,
		Kind:   kindPlayer,
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		g.stopPGO = stop
		g.enableAutoWalk(pgoRecordDuration)
		log.Printf("Recording default.pgo for %s", pgoRecordDuration)
	} else if *autoWalkFlag {
		g.enableAutoWalk(0)
	}
	return g
}

// parseAutotileMode maps the -autotile flag value onto a library mode.
func parseAutotileMode(s string) (flixel.AutotileMode, error) {
	switch s {
	case "off":
		return flixel.AutotileOff, nil
	case "edges":
		return flixel.AutotileEdges, nil
	case "corners":
		return flixel.AutotileCorners, nil
	}
	return 0, fmt.Errorf("unknown autotile mode %q", s)
}

// Update moves the player against the map, applies tile edits under the
// cursor, and refreshes the path and ray previews.
func (g *Game) Update() error {
	dx, dy := g.movementVector()
	g.player.Last = flixel.Point{X: g.player.X, Y: g.player.Y}
	oldX := g.player.X
	g.player.X += dx
	if g.tm.OverlapsWithCallback(&g.player, nil) {
		g.player.X = oldX
	}
	oldY := g.player.Y
	g.player.Y += dy
	if g.tm.OverlapsWithCallback(&g.player, nil) {
		g.player.Y = oldY
	}

	camX, camY := g.camera()
	mx, my := ebiten.CursorPosition()
	g.cursor = flixel.Point{X: float64(mx) + camX, Y: float64(my) + camY}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if index := g.tm.TileIndexAt(g.cursor); index >= 0 {
			value := 0
			if g.tm.GetTileByIndex(index) == 0 {
				value = 1
			}
			if g.tm.SetTileByIndex(index, value, true) && g.hasTarget {
				g.recomputePath()
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.pathTarget = g.cursor
		g.hasTarget = true
		g.recomputePath()
	}

	// Scripted walks retarget the pathfinder on a timer so the preview
	// (and a PGO capture) keeps exercising it.
	if g.autoWalk {
		g.repathTimer++
		if g.repathTimer >= repathFrames {
			g.repathTimer = 0
			g.pathTarget = g.randomOpenPoint()
			g.hasTarget = true
			g.recomputePath()
		}
	}
	if g.stopPGO != nil && !g.autoWalk {
		g.stopPGO()
		g.stopPGO = nil
		log.Printf("Captured default.pgo")
	}

	g.rayClear = g.tm.Ray(g.playerCenter(), g.cursor, &g.rayHit, rayResolution)
	return nil
}

// Draw renders the map, the overlays, and the player.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	camX, camY := g.camera()
	g.tm.Draw(screen, g.sheet, camX, camY)
	if *debugFlag {
		g.tm.DrawDebug(screen, camX, camY)
	}
	if len(g.path) > 1 {
		flixel.DrawPath(screen, g.path, camX, camY, pathColor)
	}

	center := g.playerCenter()
	rayEnd := g.cursor
	rayColor := rayClearColor
	if !g.rayClear {
		rayEnd = g.rayHit
		rayColor = rayHitColor
	}
	flixel.DrawPath(screen, []flixel.Point{center, rayEnd}, camX, camY, rayColor)
	if !g.rayClear {
		markHit(screen, g.rayHit, camX, camY)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.player.X-camX, g.player.Y-camY)
	screen.DrawImage(g.playerImg, op)

	if *debugFlag {
		rayState := "clear"
		if !g.rayClear {
			rayState = "blocked"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nCell: %d Bumps: %d\nPath points: %d\nRay: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.tm.TileIndexAt(center), g.wallBumps, len(g.path), rayState)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

// playerCenter returns the player box's world-space center.
func (g *Game) playerCenter() flixel.Point {
	return flixel.Point{X: g.player.X + playerSize/2, Y: g.player.Y + playerSize/2}
}

// camera returns the view's world offset, following the player and
// clamped to the map.
func (g *Game) camera() (float64, float64) {
	center := g.playerCenter()
	camX := clampView(center.X-screenW/2, g.tm.Bounds().Width-screenW)
	camY := clampView(center.Y-screenH/2, g.tm.Bounds().Height-screenH)
	return camX, camY
}

// clampView holds a camera offset within [0, max], treating negative max
// as 0 for maps smaller than the view.
func clampView(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// recomputePath refreshes the preview from the player to the target.
func (g *Game) recomputePath() {
	g.path = g.tm.FindPath(g.playerCenter(), g.pathTarget, true)
}

// randomOpenPoint picks the center of an open cell, falling back to the
// player's position when the level is mostly walls.
func (g *Game) randomOpenPoint() flixel.Point {
	for attempts := 0; attempts < 20; attempts++ {
		col := g.autoWalkRand.Intn(g.tm.WidthInTiles())
		row := g.autoWalkRand.Intn(g.tm.HeightInTiles())
		if g.tm.GetTile(col, row) == 0 {
			return flixel.Point{
				X: g.tm.X + (float64(col)+0.5)*g.tm.TileWidth(),
				Y: g.tm.Y + (float64(row)+0.5)*g.tm.TileHeight(),
			}
		}
	}
	return g.playerCenter()
}

// markHit paints a small square where the ray stopped.
func markHit(screen *ebiten.Image, p flixel.Point, camX, camY float64) {
	px := int(p.X - camX)
	py := int(p.Y - camY)
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			cx := px + x
			cy := py + y
			if cx >= 0 && cx < screenW && cy >= 0 && cy < screenH {
				screen.Set(cx, cy, rayHitColor)
			}
		}
	}
}
