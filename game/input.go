package game

import "github.com/jakecoffman/cp"

// Key is a directional key the simulation understands.
type Key uint8

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	keyCount
)

var keyNames = [keyCount]string{"W", "S", "A", "D", "Up", "Down", "Left", "Right"}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Keys lists every key in declaration order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// InputState is the set of keys held during the current frame. Hosts refresh it
// before each frame.
type InputState struct {
	held uint16
}

// Set marks k as held or released.
func (s *InputState) Set(k Key, down bool) {
	if k >= keyCount {
		return
	}
	if down {
		s.held |= 1 << k
	} else {
		s.held &^= 1 << k
	}
}

// Pressed reports whether k is held.
func (s *InputState) Pressed(k Key) bool {
	return k < keyCount && s.held&(1<<k) != 0
}

// Reset releases every key.
func (s *InputState) Reset() {
	s.held = 0
}

// Direction combines the held keys into a movement direction. Up is +Y. Opposing keys
// cancel; a non-zero result is normalized so diagonals are not faster than straight moves.
func (s *InputState) Direction() cp.Vector {
	var dir cp.Vector

	if s.Pressed(KeyW) || s.Pressed(KeyUp) {
		dir.Y += 1
	}
	if s.Pressed(KeyS) || s.Pressed(KeyDown) {
		dir.Y -= 1
	}
	if s.Pressed(KeyA) || s.Pressed(KeyLeft) {
		dir.X -= 1
	}
	if s.Pressed(KeyD) || s.Pressed(KeyRight) {
		dir.X += 1
	}

	return normalizeOrZero(dir)
}
