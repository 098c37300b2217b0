// File: utils/vector.go
package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Vector is an immutable 2D point or extent measured in grid cells.
type Vector mgl64.Vec2

func Vec(x, y float64) Vector { return Vector{x, y} }

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }

func (v Vector) Plus(other Vector) Vector {
	return Vector(mgl64.Vec2(v).Add(mgl64.Vec2(other)))
}

func (v Vector) Times(scalar float64) Vector {
	return Vector(mgl64.Vec2(v).Mul(scalar))
}

// Equal is exact component equality.
func (v Vector) Equal(other Vector) bool { return v == other }

// ApproxEqual tolerates float drift accumulated over many ticks.
func (v Vector) ApproxEqual(other Vector) bool {
	return mgl64.Vec2(v).ApproxEqual(mgl64.Vec2(other))
}

func (v Vector) IsZero() bool { return v[0] == 0 && v[1] == 0 }

// Negative reports whether either component points in the negative direction.
func (v Vector) Negative() bool { return v[0] < 0 || v[1] < 0 }

// Floor returns the integer cell containing the point.
func (v Vector) Floor() (int, int) {
	return int(math.Floor(v[0])), int(math.Floor(v[1]))
}

// Round snaps the point to the nearest integer cell per axis, halves rounding up.
func (v Vector) Round() (int, int) {
	return RoundHalfUp(v[0]), RoundHalfUp(v[1])
}

func (v Vector) String() string {
	return strconv.FormatFloat(v[0], 'g', -1, 64) + "," + strconv.FormatFloat(v[1], 'g', -1, 64)
}

// ParseVector reads the "x,y" form produced by String.
func ParseVector(raw string) (Vector, error) {
	xs, ys, ok := strings.Cut(raw, ",")
	if !ok {
		return Vector{}, errors.Errorf("vector %q must have the form x,y", raw)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Vector{}, errors.Wrapf(err, "vector %q", raw)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Vector{}, errors.Wrapf(err, "vector %q", raw)
	}
	return Vec(x, y), nil
}
