package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Plus(t *testing.T) {
	testCases := []struct {
		a, b     Vector
		expected Vector
		name     string
	}{
		{Vec(1, 1), Vec(1, 1), Vec(2, 2), "Summing same vectors"},
		{Vec(1, 2), Vec(0.2, 0.2), Vec(1.2, 2.2), "Adding spawn offset"},
		{Vec(-1, -1), Vec(1, 1), Vec(0, 0), "Summing negative vectors"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.a.Plus(tc.b).ApproxEqual(tc.expected), "%v + %v = %v, want %v", tc.a, tc.b, tc.a.Plus(tc.b), tc.expected)
		})
	}
}

func TestVector_Times(t *testing.T) {
	assert.Equal(t, Vec(2, -4), Vec(1, -2).Times(2))
	assert.Equal(t, Vec(0, 0), Vec(3, 5).Times(0))
}

func TestVector_Equal(t *testing.T) {
	assert.True(t, Vec(1.1, 2.1).Equal(Vec(1.1, 2.1)))
	assert.False(t, Vec(1.1, 2.1).Equal(Vec(1.1, 2.2)))
	assert.True(t, Vec(0.1+0.2, 0).ApproxEqual(Vec(0.3, 0)))
}

func TestVector_FloorAndRound(t *testing.T) {
	x, y := Vec(2.9, 0.1).Floor()
	assert.Equal(t, [2]int{2, 0}, [2]int{x, y})

	x, y = Vec(2.5, 0.49).Round()
	assert.Equal(t, [2]int{3, 0}, [2]int{x, y})
}

func TestVector_Negative(t *testing.T) {
	assert.True(t, Vec(-1, 0).Negative())
	assert.True(t, Vec(1, -1).Negative())
	assert.False(t, Vec(0, 2).Negative())
	assert.True(t, Vec(0, 0).IsZero())
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector(" 2, 3.5")
	require.NoError(t, err)
	assert.Equal(t, Vec(2, 3.5), v)

	roundTrip, err := ParseVector(Vec(1, 1).String())
	require.NoError(t, err)
	assert.Equal(t, Vec(1, 1), roundTrip)

	_, err = ParseVector("2")
	assert.Error(t, err)
	_, err = ParseVector("a,1")
	assert.Error(t, err)
}
