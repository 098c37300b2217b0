// File: game/grid.go
package game

import (
	"math"

	"github.com/lguibr/bombgrid/utils"
)

// ScanOrder chooses which corner of a box Touches inspects first.
type ScanOrder uint8

const (
	ScanAscending ScanOrder = iota
	ScanDescending
)

// ScanFor picks the order that meets the nearest obstruction first when moving with velocity.
func ScanFor(velocity utils.Vector) ScanOrder {
	if velocity.Negative() {
		return ScanDescending
	}
	return ScanAscending
}

// Grid is the level layout: static tiles plus the occupancy overlay of
// bricks and settled bombs. Tiles are shared between snapshots and never
// written after parsing; occupancy is copied before a tick writes to it.
type Grid struct {
	Height      int
	Width       int
	tiles       [][]Tile
	StartActors []Actor
	occupancy   [][]Occupant
}

// NewGrid returns an all-empty grid of the given size.
func NewGrid(width, height int) *Grid {
	grid := &Grid{
		Height:    height,
		Width:     width,
		tiles:     make([][]Tile, height),
		occupancy: make([][]Occupant, height),
	}
	for y := range grid.tiles {
		grid.tiles[y] = make([]Tile, width)
		grid.occupancy[y] = make([]Occupant, width)
	}
	return grid
}

func (grid *Grid) InBounds(cell Cell) bool {
	return cell.X >= 0 && cell.X < grid.Width && cell.Y >= 0 && cell.Y < grid.Height
}

// TileAt reads the static tile. Cells outside the grid read as walls.
func (grid *Grid) TileAt(cell Cell) Tile {
	if !grid.InBounds(cell) {
		return TileWall
	}
	return grid.tiles[cell.Y][cell.X]
}

func (grid *Grid) OccupantAt(cell Cell) Occupant {
	if !grid.InBounds(cell) {
		return OccupantNone
	}
	return grid.occupancy[cell.Y][cell.X]
}

// ObstacleAt merges the tile with the occupancy overlay for one cell.
func (grid *Grid) ObstacleAt(cell Cell) Obstacle {
	if grid.TileAt(cell) == TileWall {
		return ObstacleWall
	}
	switch grid.OccupantAt(cell) {
	case OccupantBrick:
		return ObstacleBrick
	case OccupantBomb:
		return ObstacleBomb
	}
	return ObstacleNone
}

// Touches reports the first obstacle inside the box [pos, pos+size), or
// ObstacleNone when every overlapped cell is open.
func (grid *Grid) Touches(pos, size utils.Vector, order ScanOrder) Obstacle {
	obstacle, _ := grid.TouchesAt(pos, size, order)
	return obstacle
}

// TouchesAt is Touches that also returns the cell holding the obstacle.
func (grid *Grid) TouchesAt(pos, size utils.Vector, order ScanOrder) (Obstacle, Cell) {
	xStart := int(math.Floor(pos.X()))
	yStart := int(math.Floor(pos.Y()))
	xEnd := int(math.Ceil(pos.X()+size.X())) - 1
	yEnd := int(math.Ceil(pos.Y()+size.Y())) - 1

	if order == ScanDescending {
		for y := yEnd; y >= yStart; y-- {
			for x := xEnd; x >= xStart; x-- {
				cell := Cell{X: x, Y: y}
				if obstacle := grid.ObstacleAt(cell); obstacle != ObstacleNone {
					return obstacle, cell
				}
			}
		}
		return ObstacleNone, Cell{}
	}

	for y := yStart; y <= yEnd; y++ {
		for x := xStart; x <= xEnd; x++ {
			cell := Cell{X: x, Y: y}
			if obstacle := grid.ObstacleAt(cell); obstacle != ObstacleNone {
				return obstacle, cell
			}
		}
	}
	return ObstacleNone, Cell{}
}

// Solid reports whether any cell inside the box is a wall or a brick. Bombs
// are ignored, so a moving bomb never trips over its own tag.
func (grid *Grid) Solid(pos, size utils.Vector) bool {
	xEnd := int(math.Ceil(pos.X()+size.X())) - 1
	yEnd := int(math.Ceil(pos.Y()+size.Y())) - 1
	for y := int(math.Floor(pos.Y())); y <= yEnd; y++ {
		for x := int(math.Floor(pos.X())); x <= xEnd; x++ {
			if grid.ObstacleAt(Cell{X: x, Y: y}).Solid() {
				return true
			}
		}
	}
	return false
}

// Bricks counts cells tagged as bricks.
func (grid *Grid) Bricks() int {
	count := 0
	for _, row := range grid.occupancy {
		for _, occupant := range row {
			if occupant == OccupantBrick {
				count++
			}
		}
	}
	return count
}

// clone copies the occupancy overlay so the copy can be written without
// touching the snapshot it came from.
func (grid *Grid) clone() *Grid {
	copied := *grid
	copied.occupancy = make([][]Occupant, len(grid.occupancy))
	for y, row := range grid.occupancy {
		copied.occupancy[y] = append([]Occupant(nil), row...)
	}
	return &copied
}

func (grid *Grid) setOccupant(cell Cell, occupant Occupant) {
	if !grid.InBounds(cell) {
		return
	}
	grid.occupancy[cell.Y][cell.X] = occupant
}
