// File: campaign/runner.go
package campaign

import (
	"context"
	"log"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/game"
	"github.com/lguibr/bombgrid/render"
	"github.com/lguibr/bombgrid/utils"
)

// ErrClockStopped is returned when the frame source closes mid-level.
var ErrClockStopped = errors.New("frame clock stopped")

// Display draws frames. Clear runs once a level has been resolved.
type Display interface {
	Sync(frame render.Frame) error
	Clear() error
}

// Controls samples the five input flags, once per frame.
type Controls interface {
	Sample() game.Input
}

// Result describes how one level attempt ended.
type Result struct {
	Level   int
	Attempt int
	Status  game.Status
	Ticks   uint64
}

// Runner plays level plans in order: a won level advances, a lost one is
// restarted from its plan.
type Runner struct {
	cfg      utils.Config
	plans    []string
	display  Display
	controls Controls
	frames   <-chan time.Time
	observer func(Result)
	options  []game.Option
}

// Option customises a Runner.
type Option func(*Runner)

// WithFrames drives the runner from the given timestamps instead of a ticker
// running at Config.FramePeriod.
func WithFrames(frames <-chan time.Time) Option {
	return func(r *Runner) { r.frames = frames }
}

// WithObserver is called after every level attempt.
func WithObserver(observer func(Result)) Option {
	return func(r *Runner) { r.observer = observer }
}

// WithStateOptions is passed to every new level State.
func WithStateOptions(opts ...game.Option) Option {
	return func(r *Runner) { r.options = append(r.options, opts...) }
}

func NewRunner(cfg utils.Config, plans []string, display Display, controls Controls, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		plans:    plans,
		display:  display,
		controls: controls,
		observer: func(Result) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays the campaign until every plan is won, the context is cancelled or
// a level fails. A panic inside a level is returned as an error.
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("PANIC recovered in campaign runner: %v\n%s", rec, debug.Stack())
			err = errors.Errorf("campaign panicked: %v", rec)
		}
	}()

	if len(r.plans) == 0 {
		return errors.New("campaign has no levels")
	}

	frames := r.frames
	if frames == nil {
		ticker := time.NewTicker(r.cfg.FramePeriod)
		defer ticker.Stop()
		frames = ticker.C
	}

	attempt := 0
	for level := 0; level < len(r.plans); {
		attempt++
		state, err := r.runLevel(ctx, r.plans[level], frames)
		if err != nil {
			return errors.Wrapf(err, "level %d", level+1)
		}
		result := Result{Level: level, Attempt: attempt, Status: state.Status(), Ticks: state.Ticks()}
		log.Printf("level %d attempt %d: %s after %d ticks", level+1, attempt, result.Status, result.Ticks)
		r.observer(result)
		if result.Status == game.StatusWon {
			level++
			attempt = 0
		}
	}
	log.Printf("campaign won")
	return nil
}

// runLevel ticks one fresh State until it has been terminal for the ending
// grace period. The first timestamp only starts the clock.
func (r *Runner) runLevel(ctx context.Context, plan string, frames <-chan time.Time) (*game.State, error) {
	state, err := game.StartLevel(plan, r.cfg, r.options...)
	if err != nil {
		return nil, err
	}
	if err := r.display.Sync(render.FrameOf(state)); err != nil {
		return nil, errors.Wrap(err, "display")
	}

	ending := r.cfg.EndingGrace
	var last time.Time
	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		var now time.Time
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case frame, ok := <-frames:
			if !ok {
				return state, ErrClockStopped
			}
			now = frame
		}
		if last.IsZero() {
			last = now
			continue
		}
		step := max(0, min(now.Sub(last), r.cfg.MaxFrameStep))
		last = now

		state, err = state.Update(step.Seconds(), r.controls.Sample())
		if err != nil {
			return state, err
		}
		if err := r.display.Sync(render.FrameOf(state)); err != nil {
			return state, errors.Wrap(err, "display")
		}

		if state.Status() == game.StatusPlaying {
			continue
		}
		if ending > 0 {
			ending -= step
			continue
		}
		return state, errors.Wrap(r.display.Clear(), "display")
	}
}
