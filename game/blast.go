// File: game/blast.go
package game

// direction is a unit step along one grid axis.
type direction struct {
	dx, dy int
}

var blastDirections = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// blast spreads explosions from the bomb's cell. Each direction walks up
// to the bomb's range on that axis, stops before a wall, and stops after the
// first cell that hits a brick or another bomb. Struck bricks are destroyed
// right away; struck bombs are primed with the chain fuse so the end-of-tick
// sweep detonates them on a following tick.
func (t *tick) blast(bomb Bomb) {
	center := bomb.Cell()
	if !t.settledBombAt(center, bomb.id) {
		t.grid.setOccupant(center, OccupantNone)
	}
	t.spawn(NewExplosion(t.newID(), center, t.cfg.ExplosionLifetime))

	var struck []Actor
	for _, dir := range blastDirections {
		reach := int(bomb.blastRange.X())
		if dir.dx == 0 {
			reach = int(bomb.blastRange.Y())
		}
		for step := 1; step <= reach; step++ {
			cell := center.Plus(dir.dx*step, dir.dy*step)
			if t.grid.TileAt(cell) == TileWall {
				break
			}
			explosion := NewExplosion(t.newID(), cell, t.cfg.ExplosionLifetime)
			t.spawn(explosion)
			if hit, ok := t.firstBlastable(explosion, bomb.id); ok {
				struck = append(struck, hit)
				break
			}
		}
	}

	for _, hit := range struck {
		current, ok := t.find(hit.ID())
		if !ok {
			continue
		}
		switch actor := current.(type) {
		case Brick:
			actor.onDetonate(t)
		case Bomb:
			t.replace(actor.primed(t.cfg.ChainFuse))
		}
	}
}

// firstBlastable returns the first brick or bomb, other than the one
// exploding, overlapped by the explosion cell.
func (t *tick) firstBlastable(explosion Explosion, exclude ActorID) (Actor, bool) {
	for _, actor := range t.actors {
		if actor.ID() == exclude {
			continue
		}
		switch actor.(type) {
		case Brick, Bomb:
			if Overlaps(explosion, actor) {
				return actor, true
			}
		}
	}
	return nil, false
}
