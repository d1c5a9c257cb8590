package game

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestInputStatePressed(t *testing.T) {
	var s InputState
	s.Set(KeyW, true)
	s.Set(KeyLeft, true)

	assert.True(t, s.Pressed(KeyW))
	assert.True(t, s.Pressed(KeyLeft))
	assert.False(t, s.Pressed(KeyS))

	s.Set(KeyW, false)
	assert.False(t, s.Pressed(KeyW))

	s.Reset()
	assert.False(t, s.Pressed(KeyLeft))

	s.Set(keyCount, true)
	assert.False(t, s.Pressed(keyCount))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "Right", KeyRight.String())
	assert.Equal(t, "Unknown", Key(200).String())
	assert.Len(t, Keys(), 8)
}

func TestInputDirection(t *testing.T) {
	diag := 1 / math.Sqrt2

	cases := []struct {
		name string
		keys []Key
		want cp.Vector
	}{
		{"none", nil, cp.Vector{}},
		{"up", []Key{KeyW}, cp.Vector{Y: 1}},
		{"arrow up", []Key{KeyUp}, cp.Vector{Y: 1}},
		{"down", []Key{KeyS}, cp.Vector{Y: -1}},
		{"left", []Key{KeyLeft}, cp.Vector{X: -1}},
		{"right", []Key{KeyD}, cp.Vector{X: 1}},
		{"up and arrow up", []Key{KeyW, KeyUp}, cp.Vector{Y: 1}},
		{"opposing", []Key{KeyA, KeyD}, cp.Vector{}},
		{"diagonal", []Key{KeyW, KeyD}, cp.Vector{X: diag, Y: diag}},
		{"diagonal mixed", []Key{KeyDown, KeyA}, cp.Vector{X: -diag, Y: -diag}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s InputState
			for _, k := range c.keys {
				s.Set(k, true)
			}
			got := s.Direction()
			assert.InDelta(t, c.want.X, got.X, 1e-12)
			assert.InDelta(t, c.want.Y, got.Y, 1e-12)
		})
	}
}

