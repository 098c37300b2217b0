// File: game/brick.go
package game

import (
	"math"

	"github.com/lguibr/bombgrid/utils"
)

// Brick is a destructible wall filling exactly one cell.
type Brick struct {
	id  ActorID
	pos utils.Vector
}

func NewBrick(id ActorID, cell Cell) Brick {
	return Brick{id: id, pos: cell.Origin()}
}

func (b Brick) ID() ActorID        { return b.id }
func (b Brick) Kind() Kind         { return KindBrick }
func (b Brick) Pos() utils.Vector  { return b.pos }
func (b Brick) Size() utils.Vector { return BrickSize }
func (b Brick) Cell() Cell         { return CellOf(b.pos) }

func (b Brick) update(float64, *tick) Actor { return b }

func (b Brick) onCollide(*tick) {}

// onDetonate frees the cell and may leave an add-on behind.
func (b Brick) onDetonate(t *tick) {
	cell := b.Cell()
	invariant(t.grid.OccupantAt(cell) == OccupantBrick, "brick %d at %v not registered in occupancy", b.id, cell)
	t.grid.setOccupant(cell, OccupantNone)
	t.remove(b.id)
	if t.rng.Float64() < t.cfg.DropChance {
		t.spawn(randomAddOn(t.newID(), cell, t.rng))
	}
}

func (b Brick) expired() bool { return false }

func randomAddOn(id ActorID, cell Cell, rng utils.Random) AddOn {
	power := Powers[rng.IntN(len(Powers))]
	return NewAddOn(id, cell, power, rng.Float64()*2*math.Pi)
}
