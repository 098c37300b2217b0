// File: game/explosion.go
package game

import "github.com/lguibr/bombgrid/utils"

// Explosion is one lethal blast cell.
type Explosion struct {
	id       ActorID
	pos      utils.Vector
	lifetime float64
}

func NewExplosion(id ActorID, cell Cell, lifetime float64) Explosion {
	return Explosion{id: id, pos: cell.Origin(), lifetime: lifetime}
}

func (e Explosion) ID() ActorID        { return e.id }
func (e Explosion) Kind() Kind         { return KindExplosion }
func (e Explosion) Pos() utils.Vector  { return e.pos }
func (e Explosion) Size() utils.Vector { return ExplosionSize }
func (e Explosion) Lifetime() float64  { return e.lifetime }
func (e Explosion) Cell() Cell         { return CellOf(e.pos) }

func (e Explosion) update(dt float64, _ *tick) Actor {
	e.lifetime -= dt
	return e
}

// onCollide kills the player.
func (e Explosion) onCollide(t *tick) { t.status = StatusLost }

func (e Explosion) onDetonate(t *tick) { t.remove(e.id) }

func (e Explosion) expired() bool { return e.lifetime <= 0 }
