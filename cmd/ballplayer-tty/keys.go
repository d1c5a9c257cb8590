package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballplayer/game"
)

// Terminals only report key presses, so a key counts as held until keyHoldWindow has
// passed without another press or auto-repeat for it.
const keyHoldWindow = 150 * time.Millisecond

// KeyHold turns key press events into held-key state.
type KeyHold struct {
	window   time.Duration
	lastSeen map[game.Key]time.Time
}

func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{
		window:   window,
		lastSeen: make(map[game.Key]time.Time),
	}
}

// Press records a press of k at now.
func (h *KeyHold) Press(k game.Key, now time.Time) {
	h.lastSeen[k] = now
}

// Apply writes the keys held at now into input.
func (h *KeyHold) Apply(input *game.InputState, now time.Time) {
	for _, k := range game.Keys() {
		seen, ok := h.lastSeen[k]
		held := ok && now.Sub(seen) < h.window
		if ok && !held {
			delete(h.lastSeen, k)
		}
		input.Set(k, held)
	}
}

func keyFor(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyW, true
		case 's', 'S':
			return game.KeyS, true
		case 'a', 'A':
			return game.KeyA, true
		case 'd', 'D':
			return game.KeyD, true
		}
	}
	return 0, false
}
