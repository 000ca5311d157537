package gunner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gunner/internal/core"
)

// Visual characters for rendering
const (
	ShipChar       = '▲'
	ProjectileChar = '|'
	AsteroidChar   = '#'
	FragmentChar   = '+'
)

// Glyph returns the rune used to outline entities of this kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindShip:
		return ShipChar
	case KindProjectile:
		return ProjectileChar
	case KindAsteroid:
		return AsteroidChar
	default:
		return FragmentChar
	}
}

// Color returns the display color for entities of this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindShip:
		return core.ColorGreen
	case KindProjectile:
		return core.ColorCyan
	case KindAsteroid:
		return core.ColorMagenta
	default:
		return core.ColorOrange
	}
}

// viewport is the square playfield mapped onto terminal cells.
// Cells are about twice as tall as wide, so the playfield is twice as many
// columns as rows.
type viewport struct {
	x, y int // top-left cell
	w, h int
}

// newViewport fits the playfield below a one-row HUD, leaving room for a border.
func newViewport(screenW, screenH int) viewport {
	h := min(screenH-3, (screenW-2)/2)
	if h < 2 {
		h = 2
	}
	w := 2 * h
	return viewport{
		x: (screenW - w) / 2,
		y: 2 + (screenH-3-h)/2,
		w: w,
		h: h,
	}
}

func (v viewport) contains(col, row int) bool {
	return col >= v.x && col < v.x+v.w && row >= v.y && row < v.y+v.h
}

func (v viewport) toScreen(p core.Vec2) (col, row int) {
	col = v.x + int(math.Round((p.X-ViewMin)/(ViewMax-ViewMin)*float64(v.w-1)))
	row = v.y + int(math.Round((ViewMax-p.Y)/(ViewMax-ViewMin)*float64(v.h-1)))
	return col, row
}

func (v viewport) toWorld(col, row int) core.Vec2 {
	x := ViewMin + float64(col-v.x)/float64(v.w-1)*(ViewMax-ViewMin)
	y := ViewMax - float64(row-v.y)/float64(v.h-1)*(ViewMax-ViewMin)
	return core.V(x, y)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.view = newViewport(dst.Width(), dst.Height())
	v := g.view

	dst.DrawBox(core.NewRect(v.x-1, v.y-1, v.w+2, v.h+2))

	// Rocks first so shots and the ship stay visible on top
	entities := g.scene.Entities()
	for i := range entities {
		if entities[i].Kind.IsRock() {
			drawOutline(dst, v, &entities[i])
		}
	}
	for i := range entities {
		if entities[i].Kind == KindProjectile {
			drawOutline(dst, v, &entities[i])
		}
	}
	ship := g.scene.Ship()
	drawOutline(dst, v, &ship)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.scene.Score()))
	hint := "space fire  ←/→ steer  p pause  q quit"
	dst.DrawText(dst.Width()-len([]rune(hint))-2, 0, hint)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.scene.IsOver() {
		drawCenteredMessage(dst, g.scene.GameOverText(), "Press R to restart")
	}
}

// drawOutline traces the entity's polygon edges.
func drawOutline(dst *core.Screen, v viewport, e *Entity) {
	verts := e.WorldVertices()
	glyph, color := e.Kind.Glyph(), e.Kind.Color()
	for i, p := range verts {
		q := verts[(i+1)%len(verts)]
		x0, y0 := v.toScreen(p)
		x1, y1 := v.toScreen(q)
		dst.DrawLine(x0, y0, x1, y1, glyph, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
