// File: game/level.go
package game

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/utils"
)

// Level plan characters.
const (
	PlanEmpty     = '.'
	PlanWall      = '='
	PlanPlayer    = '@'
	PlanBrick     = '#'
	PlanAddOn     = '$'
	PlanAddOnAlt  = '%'
	PlanBomb      = '0'
	PlanExplosion = 'F'
)

// ParseLevel builds the grid and start actors described by plan. Blank lines
// around the plan are ignored; inside it every row must have the same width
// and exactly one player spawn must exist. rng picks the power and phase of
// add-ons placed by the plan.
func ParseLevel(plan string, cfg utils.Config, rng utils.Random) (*Grid, error) {
	rows := planRows(plan)
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrLevelFormat, "plan is empty")
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrLevelFormat, "row %d has width %d, want %d", y, len(row), width)
		}
	}

	grid := NewGrid(width, len(rows))
	var nextID ActorID = 1
	newID := func() ActorID {
		id := nextID
		nextID++
		return id
	}
	players := 0

	for y, row := range rows {
		for x, ch := range row {
			cell := Cell{X: x, Y: y}
			switch ch {
			case PlanEmpty:
			case PlanWall:
				grid.tiles[y][x] = TileWall
			case PlanPlayer:
				players++
				grid.StartActors = append(grid.StartActors, NewPlayer(newID(), cell, NewBag(cfg)))
			case PlanBrick:
				grid.setOccupant(cell, OccupantBrick)
				grid.StartActors = append(grid.StartActors, NewBrick(newID(), cell))
			case PlanAddOn, PlanAddOnAlt:
				power := Powers[rng.IntN(len(Powers))]
				grid.StartActors = append(grid.StartActors, NewAddOn(newID(), cell, power, rng.Float64()*2*math.Pi))
			case PlanBomb:
				grid.StartActors = append(grid.StartActors, NewBomb(newID(), cell, cfg.SpawnedBombRange, cfg.BombFuse))
			case PlanExplosion:
				grid.StartActors = append(grid.StartActors, NewExplosion(newID(), cell, cfg.ExplosionLifetime))
			default:
				return nil, errors.Wrapf(ErrLevelFormat, "unknown character %q at row %d column %d", ch, y, x)
			}
		}
	}

	if players != 1 {
		return nil, errors.Wrapf(ErrLevelFormat, "plan has %d player spawns, want exactly 1", players)
	}
	return grid, nil
}

// StartLevel parses plan and returns its first State.
func StartLevel(plan string, cfg utils.Config, opts ...Option) (*State, error) {
	grid, err := ParseLevel(plan, cfg, utils.NewRandom(cfg.Seed, math.MaxUint64))
	if err != nil {
		return nil, err
	}
	return NewState(grid, cfg, opts...)
}

func planRows(plan string) [][]rune {
	lines := strings.Split(strings.ReplaceAll(plan, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSpace(line))
	}
	return rows
}
