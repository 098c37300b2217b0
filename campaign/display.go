// File: campaign/display.go
package campaign

import (
	"github.com/pkg/errors"

	"github.com/lguibr/bombgrid/render"
)

type tee []Display

// Tee sends every frame to each display in turn and stops at the first error.
func Tee(displays ...Display) Display { return tee(displays) }

func (t tee) Sync(frame render.Frame) error {
	for i, display := range t {
		if err := display.Sync(frame); err != nil {
			return errors.Wrapf(err, "display %d", i)
		}
	}
	return nil
}

func (t tee) Clear() error {
	for i, display := range t {
		if err := display.Clear(); err != nil {
			return errors.Wrapf(err, "display %d", i)
		}
	}
	return nil
}

// Recording adapts a frame recorder to a Display. Clear records nothing.
type Recording struct {
	Recorder *render.Recorder
}

func (r Recording) Sync(frame render.Frame) error { return r.Recorder.Record(frame) }
func (r Recording) Clear() error                  { return nil }
