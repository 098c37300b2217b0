// File: game/player.go
package game

import (
	"github.com/lguibr/bombgrid/utils"
)

// Player is the actor steered by input.
type Player struct {
	id    ActorID
	pos   utils.Vector
	speed utils.Vector
	bag   Bag
}

// NewPlayer spawns a player inside cell.
func NewPlayer(id ActorID, cell Cell, bag Bag) Player {
	return Player{id: id, pos: cell.Origin().Plus(playerOffset), bag: bag}
}

func (p Player) ID() ActorID        { return p.id }
func (p Player) Kind() Kind         { return KindPlayer }
func (p Player) Pos() utils.Vector  { return p.pos }
func (p Player) Size() utils.Vector { return PlayerSize }

// Speed is the velocity attempted on the last update.
func (p Player) Speed() utils.Vector { return p.speed }
func (p Player) Bag() Bag            { return p.bag }

func (p Player) withBag(bag Bag) Player {
	p.bag = bag
	return p
}

// update moves the player one axis at a time. A bomb in the way is pushed
// instead, a wall or brick just blocks that axis.
func (p Player) update(dt float64, t *tick) Actor {
	var dx, dy float64
	if t.input.Left {
		dx -= p.bag.Speed
	}
	if t.input.Right {
		dx += p.bag.Speed
	}
	if t.input.Up {
		dy -= p.bag.Speed
	}
	if t.input.Down {
		dy += p.bag.Speed
	}

	p.pos = p.moveAxis(t, utils.Vec(dx, 0), dt)
	p.pos = p.moveAxis(t, utils.Vec(0, dy), dt)
	p.speed = utils.Vec(dx, dy)
	p.bag = p.bag.reload(dt, t.cfg.ReloadCooldown)
	return p
}

func (p Player) moveAxis(t *tick, velocity utils.Vector, dt float64) utils.Vector {
	if velocity.IsZero() {
		return p.pos
	}
	moved := p.pos.Plus(velocity.Times(dt))
	obstacle, cell := t.grid.TouchesAt(moved, PlayerSize, ScanFor(velocity))
	switch obstacle {
	case ObstacleNone:
		return moved
	case ObstacleBomb:
		t.pushes = append(t.pushes, push{cell: cell, velocity: velocity})
	}
	return p.pos
}

// placeBomb drops a bomb on the cell nearest to the player. The request is
// ignored when the bag is empty and reloading, or when a bomb already sits
// on that cell.
func (p Player) placeBomb(t *tick) {
	if !p.bag.CanPlace() {
		return
	}
	x, y := p.pos.Round()
	cell := Cell{X: x, Y: y}
	if _, taken := t.bombAt(cell); taken {
		return
	}
	t.replace(p.withBag(p.bag.take(t.cfg.ReloadCooldown)))
	t.spawn(NewBomb(t.newID(), cell, p.bag.BlastRange, t.cfg.BombFuse))
}

func (p Player) onCollide(*tick) {}

func (p Player) onDetonate(*tick) {}

func (p Player) expired() bool { return false }
