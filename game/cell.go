// File: game/cell.go
package game

import "github.com/lguibr/bombgrid/utils"

// Tile is the static class of a grid cell, fixed by the level plan.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
)

func (t Tile) String() string {
	if t == TileWall {
		return "wall"
	}
	return "empty"
}

// Occupant is the mutable overlay tag of a cell.
type Occupant uint8

const (
	OccupantNone Occupant = iota
	OccupantBrick
	OccupantBomb
)

func (o Occupant) String() string {
	switch o {
	case OccupantBrick:
		return "brick"
	case OccupantBomb:
		return "bomb"
	}
	return "none"
}

// Obstacle is what a box query ran into, merging tiles and occupancy.
type Obstacle uint8

const (
	ObstacleNone Obstacle = iota
	ObstacleWall
	ObstacleBrick
	ObstacleBomb
)

func (o Obstacle) String() string {
	switch o {
	case ObstacleWall:
		return "wall"
	case ObstacleBrick:
		return "brick"
	case ObstacleBomb:
		return "bomb"
	}
	return "none"
}

// Solid reports whether the obstacle stops walls-and-bricks-only movers such as bombs.
func (o Obstacle) Solid() bool { return o == ObstacleWall || o == ObstacleBrick }

// Cell is an integer grid coordinate, x to the right and y downwards.
type Cell struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

func CellOf(pos utils.Vector) Cell {
	x, y := pos.Floor()
	return Cell{X: x, Y: y}
}

func (c Cell) Plus(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// Origin is the top-left corner of the cell in world coordinates.
func (c Cell) Origin() utils.Vector { return utils.Vec(float64(c.X), float64(c.Y)) }
