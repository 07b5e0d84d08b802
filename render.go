package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"maze/internal/actor"
)

var (
	minimapWall   = color.RGBA{30, 40, 80, 255}
	minimapFloor  = color.RGBA{200, 200, 200, 255}
	minimapPlayer = color.RGBA{255, 0, 0, 255}
	minimapSight  = color.RGBA{0, 200, 255, 255}
)

// Draw presents the frame rendered by the last Update, plus optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pixels = g.frame.RGBA(g.pixels)
	screen.WritePixels(g.pixels)

	if g.showMinimap {
		g.drawMinimap(screen)
	}
	if g.showDebug {
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nPos: %.2f, %.2f  Heading: %.1f\nEscaped rays: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.player.X, g.player.Y, g.player.Heading, g.lastStats.Misses)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// drawMinimap draws the map in the top-right corner with the player and a
// short heading line.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	ox := g.width - g.level.Width()*minimapCell - minimapMargin
	oy := minimapMargin
	for cy := 0; cy < g.level.Height(); cy++ {
		for cx := 0; cx < g.level.Width(); cx++ {
			clr := minimapFloor
			if !g.level.IsEmpty(cx, cy) {
				clr = minimapWall
			}
			for py := 0; py < minimapCell; py++ {
				for px := 0; px < minimapCell; px++ {
					setClipped(screen, ox+cx*minimapCell+px, oy+cy*minimapCell+py, clr)
				}
			}
		}
	}
	maxX := ox + g.level.Width()*minimapCell - 1
	maxY := oy + g.level.Height()*minimapCell - 1
	px := clampCoord(ox+int(g.player.X*minimapCell), ox, maxX)
	py := clampCoord(oy+int(g.player.Y*minimapCell), oy, maxY)
	rad := actor.Radians(g.player.Heading)
	tx := clampCoord(px+int(math.Round(math.Cos(rad)*2*minimapCell)), ox, maxX)
	ty := clampCoord(py+int(math.Round(math.Sin(rad)*2*minimapCell)), oy, maxY)
	drawLine(screen, px, py, tx, ty, minimapSight)
	setClipped(screen, px, py, minimapPlayer)
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		setClipped(screen, x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func setClipped(screen *ebiten.Image, x, y int, clr color.Color) {
	b := screen.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		screen.Set(x, y, clr)
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
