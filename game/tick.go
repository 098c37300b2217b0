// File: game/tick.go
package game

import (
	"github.com/lguibr/bombgrid/utils"
)

// push asks the bomb settled in cell to start moving with velocity. Players
// emit pushes during their update; the bomb physics step applies them, so
// the player never writes to a sibling actor.
type push struct {
	cell     Cell
	velocity utils.Vector
}

// tick is the working copy of a State while one transition runs. It is the
// only place actors and occupancy are written; Update copies the result into
// a new State once the steps are done.
type tick struct {
	cfg    *utils.Config
	grid   *Grid
	actors []Actor
	status Status
	input  Input
	rng    utils.Random
	nextID ActorID
	pushes []push
}

func (t *tick) newID() ActorID {
	id := t.nextID
	t.nextID++
	return id
}

func (t *tick) spawn(actor Actor) {
	t.actors = append(t.actors, actor)
}

func (t *tick) indexOf(id ActorID) int {
	for i, actor := range t.actors {
		if actor.ID() == id {
			return i
		}
	}
	return -1
}

func (t *tick) find(id ActorID) (Actor, bool) {
	if i := t.indexOf(id); i >= 0 {
		return t.actors[i], true
	}
	return nil, false
}

// replace swaps in a new value of an existing actor, keeping its slot.
func (t *tick) replace(actor Actor) {
	if i := t.indexOf(actor.ID()); i >= 0 {
		t.actors[i] = actor
	}
}

func (t *tick) remove(id ActorID) {
	if i := t.indexOf(id); i >= 0 {
		t.actors = append(t.actors[:i:i], t.actors[i+1:]...)
	}
}

func (t *tick) player() (Player, bool) {
	for _, actor := range t.actors {
		if player, ok := actor.(Player); ok {
			return player, true
		}
	}
	return Player{}, false
}

// bombAt returns the first bomb whose position falls in cell.
func (t *tick) bombAt(cell Cell) (Bomb, bool) {
	for _, actor := range t.actors {
		if bomb, ok := actor.(Bomb); ok && CellOf(bomb.pos) == cell {
			return bomb, true
		}
	}
	return Bomb{}, false
}

// settledBombAt reports whether a settled bomb other than exclude sits in cell.
func (t *tick) settledBombAt(cell Cell, exclude ActorID) bool {
	for _, actor := range t.actors {
		if bomb, ok := actor.(Bomb); ok && bomb.id != exclude && bomb.settled && bomb.Cell() == cell {
			return true
		}
	}
	return false
}

func (t *tick) pushFor(cell Cell) (utils.Vector, bool) {
	found := false
	var velocity utils.Vector
	for _, p := range t.pushes {
		if p.cell == cell {
			velocity, found = p.velocity, true
		}
	}
	return velocity, found
}

func (t *tick) count(kind Kind) int {
	n := 0
	for _, actor := range t.actors {
		if actor.Kind() == kind {
			n++
		}
	}
	return n
}
