// File: render/frame.go
package render

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lguibr/bombgrid/game"
)

// ActorView is what a renderer may know about one actor.
type ActorView struct {
	ID    uint64  `json:"id" msgpack:"id"`
	Kind  string  `json:"kind" msgpack:"kind"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	W     float64 `json:"w" msgpack:"w"`
	H     float64 `json:"h" msgpack:"h"`
	Power string  `json:"power,omitempty" msgpack:"power,omitempty"`
}

// Center is the middle of the actor's box.
func (a ActorView) Center() (float64, float64) { return a.X + a.W/2, a.Y + a.H/2 }

// Frame is a read-only copy of a State for drawing. Tiles holds one string
// per row using the level plan characters for empty and wall.
type Frame struct {
	Tick   uint64      `json:"tick" msgpack:"tick"`
	Width  int         `json:"width" msgpack:"width"`
	Height int         `json:"height" msgpack:"height"`
	Tiles  []string    `json:"tiles" msgpack:"tiles"`
	Actors []ActorView `json:"actors" msgpack:"actors"`
	Status string      `json:"status" msgpack:"status"`
}

// FrameOf snapshots state for a renderer.
func FrameOf(state *game.State) Frame {
	grid := state.Grid()
	frame := Frame{
		Tick:   state.Ticks(),
		Width:  grid.Width,
		Height: grid.Height,
		Tiles:  make([]string, grid.Height),
		Status: string(state.Status()),
	}
	row := make([]byte, grid.Width)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			row[x] = game.PlanEmpty
			if grid.TileAt(game.Cell{X: x, Y: y}) == game.TileWall {
				row[x] = game.PlanWall
			}
		}
		frame.Tiles[y] = string(row)
	}

	actors := state.Actors()
	frame.Actors = make([]ActorView, 0, len(actors))
	for _, actor := range actors {
		view := ActorView{
			ID:   uint64(actor.ID()),
			Kind: actor.Kind().String(),
			X:    actor.Pos().X(),
			Y:    actor.Pos().Y(),
			W:    actor.Size().X(),
			H:    actor.Size().Y(),
		}
		if addOn, ok := actor.(game.AddOn); ok {
			view.Power = addOn.Power().String()
		}
		frame.Actors = append(frame.Actors, view)
	}
	return frame
}

// Encode packs the frame with msgpack.
func (f Frame) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	return data, errors.Wrap(err, "encode frame")
}

func DecodeFrame(data []byte) (Frame, error) {
	var frame Frame
	if err := msgpack.Unmarshal(data, &frame); err != nil {
		return Frame{}, errors.Wrap(err, "decode frame")
	}
	return frame, nil
}

// Recorder appends frames to a stream, one msgpack value after another.
type Recorder struct {
	enc *msgpack.Encoder
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

func (r *Recorder) Record(frame Frame) error {
	return errors.Wrapf(r.enc.Encode(&frame), "record frame %d", frame.Tick)
}

// ReadFrames decodes every frame a Recorder wrote to r.
func ReadFrames(r io.Reader) ([]Frame, error) {
	dec := msgpack.NewDecoder(r)
	var frames []Frame
	for {
		var frame Frame
		err := dec.Decode(&frame)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, errors.Wrapf(err, "read frame %d", len(frames))
		}
		frames = append(frames, frame)
	}
}
