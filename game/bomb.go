// File: game/bomb.go
package game

import (
	"github.com/lguibr/bombgrid/utils"
)

// Bomb counts down its fuse and then blasts in four directions. It only
// blocks movement once settled, that is once the player who placed it has
// stepped off.
type Bomb struct {
	id         ActorID
	pos        utils.Vector
	blastRange utils.Vector
	fuse       float64
	settled    bool
	velocity   utils.Vector
}

func NewBomb(id ActorID, cell Cell, blastRange utils.Vector, fuse float64) Bomb {
	return Bomb{id: id, pos: cell.Origin().Plus(bombOffset), blastRange: blastRange, fuse: fuse}
}

func (b Bomb) ID() ActorID            { return b.id }
func (b Bomb) Kind() Kind             { return KindBomb }
func (b Bomb) Pos() utils.Vector      { return b.pos }
func (b Bomb) Size() utils.Vector     { return BombSize }
func (b Bomb) Range() utils.Vector    { return b.blastRange }
func (b Bomb) Fuse() float64          { return b.fuse }
func (b Bomb) Settled() bool          { return b.settled }
func (b Bomb) Velocity() utils.Vector { return b.velocity }
func (b Bomb) Cell() Cell             { return CellOf(b.pos) }

// update is the bomb physics step. It runs in the bomb fold after every
// other actor has moved, because it reads and writes the shared occupancy.
func (b Bomb) update(dt float64, t *tick) Actor {
	if velocity, pushed := t.pushFor(b.Cell()); pushed && b.settled {
		b.velocity = velocity
	}

	moved := b.pos.Plus(b.velocity.Times(dt / t.cfg.PushDamping))
	if !t.grid.Solid(moved, BombSize) {
		from, to := CellOf(b.pos), CellOf(moved)
		if b.settled && from != to {
			if !t.settledBombAt(from, b.id) {
				t.grid.setOccupant(from, OccupantNone)
			}
			t.grid.setOccupant(to, OccupantBomb)
		}
		b.pos = moved
	} else {
		b.velocity = utils.Vector{}
	}

	if !b.settled {
		if player, ok := t.player(); !ok || !Overlaps(b, player) {
			b.settled = true
			t.grid.setOccupant(b.Cell(), OccupantBomb)
		}
	}

	b.fuse -= dt
	return b
}

func (b Bomb) onCollide(*tick) {}

// onDetonate runs blast propagation and removes the bomb.
func (b Bomb) onDetonate(t *tick) {
	t.blast(b)
	t.remove(b.id)
}

func (b Bomb) expired() bool { return b.fuse <= 0 }

// primed returns the bomb with its fuse cut down to at most fuse.
func (b Bomb) primed(fuse float64) Bomb {
	b.fuse = min(b.fuse, fuse)
	return b
}
