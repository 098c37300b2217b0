package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lguibr/bombgrid/utils"
)

// parse builds a grid from a plan with a fixed generator for add-ons.
func parse(t *testing.T, plan string, cfg utils.Config) *Grid {
	t.Helper()
	grid, err := ParseLevel(plan, cfg, utils.FixedRandom{})
	require.NoError(t, err)
	return grid
}

// start builds the first state of plan after letting edit rewrite start actors.
func start(t *testing.T, plan string, cfg utils.Config, edit func(Actor) Actor, opts ...Option) *State {
	t.Helper()
	grid := parse(t, plan, cfg)
	if edit != nil {
		for i, actor := range grid.StartActors {
			grid.StartActors[i] = edit(actor)
		}
	}
	state, err := NewState(grid, cfg, opts...)
	require.NoError(t, err)
	return state
}

func step(t *testing.T, state *State, dt float64, input Input) *State {
	t.Helper()
	next, err := state.Update(dt, input)
	require.NoError(t, err)
	return next
}

func steps(t *testing.T, state *State, n int, dt float64, input Input) *State {
	t.Helper()
	for i := 0; i < n; i++ {
		state = step(t, state, dt, input)
	}
	return state
}

func actorsOf[T Actor](state *State) []T {
	var found []T
	for _, actor := range state.Actors() {
		if typed, ok := actor.(T); ok {
			found = append(found, typed)
		}
	}
	return found
}

func playerOf(t *testing.T, state *State) Player {
	t.Helper()
	player, ok := state.Player()
	require.True(t, ok, "state has no player")
	return player
}

func explosionCells(state *State) map[Cell]int {
	cells := map[Cell]int{}
	for _, explosion := range actorsOf[Explosion](state) {
		cells[explosion.Cell()]++
	}
	return cells
}

// withBag gives the player a specific bag.
func withBag(bag Bag) func(Actor) Actor {
	return func(actor Actor) Actor {
		if player, ok := actor.(Player); ok {
			return player.withBag(bag)
		}
		return actor
	}
}

// withPower pins the power of every add-on in the plan.
func withPower(power Power) func(Actor) Actor {
	return func(actor Actor) Actor {
		if addOn, ok := actor.(AddOn); ok {
			return NewAddOn(addOn.id, CellOf(addOn.basePos), power, 0)
		}
		return actor
	}
}
