package game

import "github.com/jakecoffman/cp"

// Step advances pos along dir at speed units per second for dt seconds.
func Step(pos, dir cp.Vector, speed, dt float64) cp.Vector {
	return pos.Add(dir.Mult(speed * dt))
}

// Reflect flips the components of dir that point out of bb from an edge pos has
// reached, then renormalizes. It reports whether any component flipped.
func Reflect(pos, dir cp.Vector, bb cp.BB) (cp.Vector, bool) {
	bounced := false

	if pos.X <= bb.L && dir.X < 0 {
		dir.X = -dir.X
		bounced = true
	} else if pos.X >= bb.R && dir.X > 0 {
		dir.X = -dir.X
		bounced = true
	}

	if pos.Y <= bb.B && dir.Y < 0 {
		dir.Y = -dir.Y
		bounced = true
	} else if pos.Y >= bb.T && dir.Y > 0 {
		dir.Y = -dir.Y
		bounced = true
	}

	return normalizeOrZero(dir), bounced
}

// normalizeOrZero returns v scaled to unit length, or the zero vector if v has none.
func normalizeOrZero(v cp.Vector) cp.Vector {
	if v.Length() > 0 {
		return v.Normalize()
	}
	return cp.Vector{}
}
