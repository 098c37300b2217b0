package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/bombgrid/utils"
)

func bombOf(t *testing.T, state *State) Bomb {
	t.Helper()
	bombs := actorsOf[Bomb](state)
	require.Len(t, bombs, 1)
	return bombs[0]
}

func TestBomb_SettlesOnceThePlayerStepsOff(t *testing.T) {
	state := start(t, corridor, utils.DefaultConfig(), nil)

	placed := step(t, state, 0.1, Input{PlaceBomb: true})
	assert.False(t, bombOf(t, placed).Settled())
	assert.Equal(t, OccupantNone, placed.Grid().OccupantAt(Cell{X: 2, Y: 1}))

	standing := step(t, placed, 0.1, Input{})
	assert.False(t, bombOf(t, standing).Settled(), "still under the player")
	assert.Equal(t, OccupantNone, standing.Grid().OccupantAt(Cell{X: 2, Y: 1}))

	left := step(t, standing, 0.15, Input{Right: true})
	assert.True(t, bombOf(t, left).Settled())
	assert.Equal(t, OccupantBomb, left.Grid().OccupantAt(Cell{X: 2, Y: 1}))
}

func TestBomb_SettledBombBlocksThePlayer(t *testing.T) {
	plan := `
======
=@0..=
======`
	state := start(t, plan, utils.DefaultConfig(), nil)
	state = step(t, state, 0.1, Input{})
	require.True(t, bombOf(t, state).Settled())

	next := step(t, state, 0.1, Input{Right: true})
	assert.InDelta(t, 1.2, playerOf(t, next).Pos().X(), 1e-9)
}

func TestBomb_FuseBurnsOncePerTick(t *testing.T) {
	plan := `
======
=@..0=
======`
	state := start(t, plan, utils.DefaultConfig(), nil)
	next := step(t, state, 0.5, Input{})
	assert.InDelta(t, 1.7, bombOf(t, next).Fuse(), 1e-9)
	assert.InDelta(t, 2.2, bombOf(t, state).Fuse(), 1e-9)
}

func TestBomb_PushedUntilTheWall(t *testing.T) {
	plan := `
======
=@0..=
======`
	state := start(t, plan, utils.DefaultConfig(), nil)
	state = step(t, state, 0.1, Input{})

	pushed := step(t, state, 0.1, Input{Right: true})
	bomb := bombOf(t, pushed)
	assert.Equal(t, utils.Vec(7, 0), bomb.Velocity())
	assert.InDelta(t, 2.1+0.7/3, bomb.Pos().X(), 1e-9)
	assert.InDelta(t, 1.2, playerOf(t, pushed).Pos().X(), 1e-9, "pusher stays put on that axis")

	rest := steps(t, pushed, 10, 0.1, Input{})
	bomb = bombOf(t, rest)
	assert.True(t, bomb.Velocity().IsZero(), "stops at the wall")
	assert.Greater(t, bomb.Pos().X(), 3.9)
	assert.LessOrEqual(t, bomb.Pos().X()+BombSize.X(), 5.0+1e-9)
	assert.Equal(t, OccupantBomb, rest.Grid().OccupantAt(bomb.Cell()))
	assert.Equal(t, OccupantNone, rest.Grid().OccupantAt(Cell{X: 2, Y: 1}))
	assert.Equal(t, 1, countOccupants(rest.Grid(), OccupantBomb))
}

func TestBomb_SlidingPastAnotherBombKeepsItsTag(t *testing.T) {
	plan := `
========
=@0..0.=
========`
	cfg := utils.DefaultConfig()
	cfg.BombFuse = 100
	state := start(t, plan, cfg, nil)
	state = step(t, state, 0.1, Input{})
	state = step(t, state, 0.1, Input{Right: true})
	state = steps(t, state, 40, 0.1, Input{})

	bombs := actorsOf[Bomb](state)
	require.Len(t, bombs, 2)
	cells := map[Cell]bool{}
	for _, bomb := range bombs {
		assert.True(t, bomb.Settled())
		assert.Equal(t, OccupantBomb, state.Grid().OccupantAt(bomb.Cell()), "bomb %d", bomb.ID())
		cells[bomb.Cell()] = true
	}
	assert.Equal(t, map[Cell]bool{{X: 5, Y: 1}: true, {X: 6, Y: 1}: true}, cells)
	assert.Equal(t, 2, countOccupants(state.Grid(), OccupantBomb))
	assert.Equal(t, OccupantNone, state.Grid().OccupantAt(Cell{X: 2, Y: 1}))
}

func TestBomb_PushIntoWallStopsImmediately(t *testing.T) {
	plan := `
====
=@0=
====`
	state := start(t, plan, utils.DefaultConfig(), nil)
	state = step(t, state, 0.1, Input{})

	next := step(t, state, 0.1, Input{Right: true})
	bomb := bombOf(t, next)
	assert.True(t, bomb.Velocity().IsZero())
	assert.Equal(t, bombOf(t, state).Pos(), bomb.Pos())
}

func TestBomb_UnsettledBombIgnoresPushes(t *testing.T) {
	var tk tick
	cfg := utils.DefaultConfig()
	tk.cfg = &cfg
	tk.grid = NewGrid(4, 1)
	tk.actors = []Actor{NewPlayer(1, Cell{X: 1, Y: 0}, NewBag(cfg))}
	tk.pushes = []push{{cell: Cell{X: 1, Y: 0}, velocity: utils.Vec(7, 0)}}

	bomb := NewBomb(2, Cell{X: 1, Y: 0}, utils.Vec(1, 1), 1)
	updated := bomb.update(0.1, &tk).(Bomb)
	assert.True(t, updated.Velocity().IsZero())
	assert.False(t, updated.Settled())
	assert.Equal(t, bomb.Pos(), updated.Pos())
}

func TestBomb_Primed(t *testing.T) {
	bomb := NewBomb(1, Cell{}, utils.Vec(1, 1), 2)
	assert.Equal(t, 0.002, bomb.primed(0.002).Fuse())
	assert.Equal(t, 0.001, bomb.primed(0.002).primed(0.001).Fuse())

	nearly := NewBomb(1, Cell{}, utils.Vec(1, 1), 0.001)
	assert.Equal(t, 0.001, nearly.primed(0.002).Fuse(), "priming never lengthens a fuse")
}

func countOccupants(grid *Grid, occupant Occupant) int {
	n := 0
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.OccupantAt(Cell{X: x, Y: y}) == occupant {
				n++
			}
		}
	}
	return n
}
