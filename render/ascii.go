// File: render/ascii.go
package render

import (
	"math"
	"strings"

	"github.com/lguibr/bombgrid/game"
)

// Glyphs per actor kind, reusing the level plan alphabet.
var glyphs = map[string]rune{
	game.KindBrick.String():     game.PlanBrick,
	game.KindAddOn.String():     game.PlanAddOn,
	game.KindBomb.String():      game.PlanBomb,
	game.KindExplosion.String(): game.PlanExplosion,
	game.KindPlayer.String():    game.PlanPlayer,
}

// Draw order, later kinds cover earlier ones on the same cell.
var layers = []string{
	game.KindBrick.String(),
	game.KindAddOn.String(),
	game.KindBomb.String(),
	game.KindExplosion.String(),
	game.KindPlayer.String(),
}

// Cells maps the frame to a character grid. Each actor lands on the cell
// holding the center of its box.
func Cells(frame Frame) [][]rune {
	cells := make([][]rune, frame.Height)
	for y := range cells {
		cells[y] = []rune(frame.Tiles[y])
	}
	for _, kind := range layers {
		for _, actor := range frame.Actors {
			if actor.Kind != kind {
				continue
			}
			cx, cy := actor.Center()
			x, y := int(math.Floor(cx)), int(math.Floor(cy))
			if y < 0 || y >= frame.Height || x < 0 || x >= frame.Width {
				continue
			}
			cells[y][x] = glyphs[kind]
		}
	}
	return cells
}

// ASCII draws the frame as a level plan. A freshly parsed level renders back
// to its own plan, with both add-on characters shown as '$'.
func ASCII(frame Frame) string {
	var ascii strings.Builder
	for _, row := range Cells(frame) {
		ascii.WriteString(string(row))
		ascii.WriteString("\n")
	}
	return ascii.String()
}
