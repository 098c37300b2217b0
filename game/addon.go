// File: game/addon.go
package game

import (
	"math"

	"github.com/lguibr/bombgrid/utils"
)

// Power is the upgrade an add-on grants on pickup.
type Power uint8

const (
	PowerMoreBombs Power = iota
	PowerBlastRange
	PowerMoreSpeed
	// PowerPushBombs can spawn and be picked up but changes nothing.
	PowerPushBombs
)

// Powers lists every power an add-on may carry, in draw order.
var Powers = []Power{PowerMoreBombs, PowerBlastRange, PowerMoreSpeed, PowerPushBombs}

func (p Power) String() string {
	switch p {
	case PowerMoreBombs:
		return "moreBombs"
	case PowerBlastRange:
		return "blastRange"
	case PowerMoreSpeed:
		return "moreSpeed"
	case PowerPushBombs:
		return "pushBombs"
	}
	return "unknown"
}

// AddOn is a bobbing power-up.
type AddOn struct {
	id      ActorID
	pos     utils.Vector
	basePos utils.Vector
	phase   float64
	power   Power
}

func NewAddOn(id ActorID, cell Cell, power Power, phase float64) AddOn {
	base := cell.Origin().Plus(addOnOffset)
	return AddOn{id: id, pos: base, basePos: base, phase: phase, power: power}
}

func (a AddOn) ID() ActorID           { return a.id }
func (a AddOn) Kind() Kind            { return KindAddOn }
func (a AddOn) Pos() utils.Vector     { return a.pos }
func (a AddOn) Size() utils.Vector    { return AddOnSize }
func (a AddOn) Power() Power          { return a.power }
func (a AddOn) BasePos() utils.Vector { return a.basePos }
func (a AddOn) Phase() float64        { return a.phase }

func (a AddOn) update(dt float64, t *tick) Actor {
	a.phase += dt * t.cfg.AddOnBobSpeed
	a.pos = a.basePos.Plus(utils.Vec(0, math.Sin(a.phase)*t.cfg.AddOnBobAmplitude))
	return a
}

// onCollide hands the power to the player and disappears.
func (a AddOn) onCollide(t *tick) {
	player, ok := t.player()
	if !ok {
		return
	}
	t.remove(a.id)
	t.replace(player.withBag(player.bag.apply(a.power)))
}

func (a AddOn) onDetonate(t *tick) { t.remove(a.id) }

func (a AddOn) expired() bool { return false }
