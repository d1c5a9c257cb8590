package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballplayer/game"
	"github.com/stretchr/testify/assert"
)

func TestKeyHoldReleasesAfterWindow(t *testing.T) {
	hold := NewKeyHold(100 * time.Millisecond)
	input := &game.InputState{}
	start := time.Unix(0, 0)

	hold.Press(game.KeyW, start)
	hold.Apply(input, start.Add(50*time.Millisecond))
	assert.True(t, input.Pressed(game.KeyW))

	hold.Apply(input, start.Add(150*time.Millisecond))
	assert.False(t, input.Pressed(game.KeyW))
}

func TestKeyHoldRepeatExtendsHold(t *testing.T) {
	hold := NewKeyHold(100 * time.Millisecond)
	input := &game.InputState{}
	start := time.Unix(0, 0)

	hold.Press(game.KeyLeft, start)
	hold.Press(game.KeyLeft, start.Add(80*time.Millisecond))
	hold.Apply(input, start.Add(150*time.Millisecond))

	assert.True(t, input.Pressed(game.KeyLeft))
	assert.False(t, input.Pressed(game.KeyRight))
}

func TestKeyFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want game.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.KeyA, true},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), game.KeyD, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}

	for _, c := range cases {
		key, ok := keyFor(c.ev)
		assert.Equal(t, c.ok, ok, c.ev.Name())
		if ok {
			assert.Equal(t, c.want, key)
		}
	}
}
