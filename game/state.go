// File: game/state.go
package game

import (
	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/utils"
)

// Status of a level. Playing is the only non-terminal value.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

func (s Status) Terminal() bool { return s != StatusPlaying }

// Input holds the five flags sampled once per tick.
type Input struct {
	Left      bool `json:"left"`
	Right     bool `json:"right"`
	Up        bool `json:"up"`
	Down      bool `json:"down"`
	PlaceBomb bool `json:"placeBomb"`
}

// State is an immutable snapshot of a level. Update never modifies the
// receiver; it returns the next snapshot.
type State struct {
	cfg     utils.Config
	grid    *Grid
	actors  []Actor
	status  Status
	ticks   uint64
	nextID  ActorID
	random  utils.RandomSource
	bricks0 int
}

// Option customises a new State.
type Option func(*State)

// WithRandom replaces the seeded generator used for add-on drops.
func WithRandom(source utils.RandomSource) Option {
	return func(s *State) { s.random = source }
}

// NewState starts a level from its parsed grid.
func NewState(grid *Grid, cfg utils.Config, opts ...Option) (*State, error) {
	state := &State{
		cfg:     cfg,
		grid:    grid.clone(),
		actors:  append([]Actor(nil), grid.StartActors...),
		status:  StatusPlaying,
		random:  utils.SeededSource(cfg.Seed),
		bricks0: grid.Bricks(),
	}
	for _, actor := range state.actors {
		state.nextID = max(state.nextID, actor.ID()+1)
	}
	for _, opt := range opts {
		opt(state)
	}
	if players := state.count(KindPlayer); players != 1 {
		return nil, errors.Wrapf(ErrNoPlayer, "level has %d players", players)
	}
	return state, nil
}

// Grid returns a copy of the level header. Tiles and occupancy stay shared
// with the State and are only readable through the Grid's accessors.
func (s *State) Grid() *Grid {
	grid := *s.grid
	return &grid
}

func (s *State) Status() Status       { return s.status }
func (s *State) Config() utils.Config { return s.cfg }
func (s *State) Ticks() uint64        { return s.ticks }

// Actors returns a copy of the actor list in update order.
func (s *State) Actors() []Actor { return append([]Actor(nil), s.actors...) }

// Player returns the player actor, if any.
func (s *State) Player() (Player, bool) {
	for _, actor := range s.actors {
		if player, ok := actor.(Player); ok {
			return player, true
		}
	}
	return Player{}, false
}

func (s *State) count(kind Kind) int {
	n := 0
	for _, actor := range s.actors {
		if actor.Kind() == kind {
			n++
		}
	}
	return n
}

// Update advances the level by elapsed seconds:
//
//  1. every actor but bombs runs its own update;
//  2. a bomb placement is attempted when requested;
//  3. bombs run their physics, in order, against the shared occupancy;
//  4. every actor overlapping the player runs its collision response;
//  5. actors whose countdown expired are detonated or removed.
//
// Once the status is terminal only step 1 runs.
func (s *State) Update(elapsed float64, input Input) (*State, error) {
	if s.status == StatusPlaying && s.count(KindPlayer) != 1 {
		return s, errors.Wrapf(ErrNoPlayer, "state holds %d players", s.count(KindPlayer))
	}

	t := &tick{
		cfg:    &s.cfg,
		grid:   s.grid.clone(),
		actors: make([]Actor, 0, len(s.actors)+8),
		status: s.status,
		input:  input,
		rng:    s.random(s.ticks),
		nextID: s.nextID,
	}

	var bombs []ActorID
	for _, actor := range s.actors {
		if actor.Kind() == KindBomb {
			bombs = append(bombs, actor.ID())
			t.actors = append(t.actors, actor)
			continue
		}
		t.actors = append(t.actors, actor.update(elapsed, t))
	}

	if t.status == StatusPlaying {
		if input.PlaceBomb {
			if player, ok := t.player(); ok {
				player.placeBomb(t)
			}
		}

		for _, id := range bombs {
			if bomb, ok := t.find(id); ok {
				t.replace(bomb.update(elapsed, t))
			}
		}
		t.pushes = nil

		if err := t.collidePlayer(); err != nil {
			return s, err
		}
		t.sweep()
		t.settle(s.bricks0)
	}

	return &State{
		cfg:     s.cfg,
		grid:    t.grid,
		actors:  t.actors,
		status:  t.status,
		ticks:   s.ticks + 1,
		nextID:  t.nextID,
		random:  s.random,
		bricks0: s.bricks0,
	}, nil
}

// sweep destroys every actor whose countdown had expired when the sweep
// began. Actors primed by a blast during the sweep wait for the next tick.
func (t *tick) sweep() {
	var due []ActorID
	for _, actor := range t.actors {
		if actor.expired() {
			due = append(due, actor.ID())
		}
	}
	for _, id := range due {
		if actor, ok := t.find(id); ok {
			actor.onDetonate(t)
		}
	}
}

// settle applies the win rule and repairs the occupancy overlay: tags left
// without a backing actor are cleared, settled bombs without a tag get one.
func (t *tick) settle(bricksAtStart int) {
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width; x++ {
			cell := Cell{X: x, Y: y}
			switch t.grid.OccupantAt(cell) {
			case OccupantBrick:
				if !t.hasBrickAt(cell) {
					invariant(false, "brick tag at %v without a brick", cell)
					t.grid.setOccupant(cell, OccupantNone)
				}
			case OccupantBomb:
				if _, ok := t.bombAt(cell); !ok {
					invariant(false, "bomb tag at %v without a bomb", cell)
					t.grid.setOccupant(cell, OccupantNone)
				}
			}
		}
	}
	for _, actor := range t.actors {
		if bomb, ok := actor.(Bomb); ok && bomb.settled && t.grid.OccupantAt(bomb.Cell()) != OccupantBomb {
			invariant(false, "settled bomb %d at %v has no tag", bomb.id, bomb.Cell())
			t.grid.setOccupant(bomb.Cell(), OccupantBomb)
		}
	}

	if t.status == StatusPlaying && t.cfg.WinWhenCleared && bricksAtStart > 0 && t.count(KindBrick) == 0 {
		t.status = StatusWon
	}
}

func (t *tick) hasBrickAt(cell Cell) bool {
	for _, actor := range t.actors {
		if brick, ok := actor.(Brick); ok && brick.Cell() == cell {
			return true
		}
	}
	return false
}
