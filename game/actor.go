// File: game/actor.go
package game

import "github.com/lguibr/bombgrid/utils"

// Kind tags the five actor variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBrick
	KindAddOn
	KindBomb
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBrick:
		return "brick"
	case KindAddOn:
		return "addOn"
	case KindBomb:
		return "bomb"
	case KindExplosion:
		return "explosion"
	}
	return "unknown"
}

// Fixed box sizes per variant, in cells.
var (
	PlayerSize    = utils.Vec(0.6, 0.6)
	BrickSize     = utils.Vec(1, 1)
	AddOnSize     = utils.Vec(0.6, 0.6)
	BombSize      = utils.Vec(0.8, 0.8)
	ExplosionSize = utils.Vec(1, 1)
)

// Offsets from a cell origin at which spawned actors sit.
var (
	playerOffset = utils.Vec(0.2, 0.2)
	addOnOffset  = utils.Vec(0.2, 0.2)
	bombOffset   = utils.Vec(0.1, 0.1)
)

// ActorID identifies an actor across snapshots. IDs are never reused within a level.
type ActorID uint64

// Actor is the closed set of things living on the grid. The unexported
// methods seal the set to this package: a new variant does not compile until
// it supplies its update, collision response and destruction handling.
type Actor interface {
	ID() ActorID
	Kind() Kind
	Pos() utils.Vector
	Size() utils.Vector

	// update advances the actor's own physics or animation by dt seconds.
	update(dt float64, t *tick) Actor
	// onCollide is the response when the player's box overlaps this actor.
	onCollide(t *tick)
	// onDetonate destroys the actor when its countdown has expired or a blast
	// reached it. Implementations remove themselves from the tick.
	onDetonate(t *tick)
	// expired reports that the countdown field reached zero.
	expired() bool
}

// box is an axis-aligned rectangle in cell units.
type box struct {
	pos  utils.Vector
	size utils.Vector
}

func boxOf(a Actor) box { return box{pos: a.Pos(), size: a.Size()} }
