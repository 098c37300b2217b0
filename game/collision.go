// File: game/collision.go
package game

// Overlaps is the AABB test between two actors. Boxes that only share an
// edge do not overlap.
func Overlaps(a, b Actor) bool {
	return boxOf(a).overlaps(boxOf(b))
}

func (a box) overlaps(b box) bool {
	return a.pos.X()+a.size.X() > b.pos.X() &&
		a.pos.X() < b.pos.X()+b.size.X() &&
		a.pos.Y()+a.size.Y() > b.pos.Y() &&
		a.pos.Y() < b.pos.Y()+b.size.Y()
}

// collidePlayer runs the collision response of every actor overlapping the
// player. The candidate list is taken before any response runs, so an
// add-on pickup replacing the player does not change who gets checked.
func (t *tick) collidePlayer() error {
	player, ok := t.player()
	if !ok {
		return ErrNoPlayer
	}
	candidates := make([]Actor, 0, len(t.actors))
	for _, actor := range t.actors {
		if actor.ID() != player.ID() && Overlaps(actor, player) {
			candidates = append(candidates, actor)
		}
	}
	for _, actor := range candidates {
		if current, ok := t.find(actor.ID()); ok {
			current.onCollide(t)
		}
	}
	return nil
}
