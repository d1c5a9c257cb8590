package game

import "github.com/jakecoffman/cp"

// Window is the host window size in world units. The host sets it before every frame
// and removes it while no window exists; systems that need it skip the frame then.
type Window struct {
	Width  float64
	Height float64
}

// InsetBounds returns the range of legal centre points for a square sprite of edge
// spriteSize inside the window, which is centred on the origin.
func (w Window) InsetBounds(spriteSize float64) cp.BB {
	return InsetBounds(w.Width, w.Height, spriteSize)
}

// InsetBounds returns the width x height rectangle centred on the origin, shrunk by
// half a sprite on every side.
func InsetBounds(width, height, spriteSize float64) cp.BB {
	half := spriteSize / 2
	return cp.BB{
		L: -width/2 + half,
		B: -height/2 + half,
		R: width/2 - half,
		T: height/2 - half,
	}
}

// Confine clamps p into bb.
func Confine(p cp.Vector, bb cp.BB) cp.Vector {
	return cp.Vector{
		X: clamp(p.X, bb.L, bb.R),
		Y: clamp(p.Y, bb.B, bb.T),
	}
}

// Contains reports whether p lies inside bb, edges included. An axis whose range
// is inverted only contains its midpoint.
func Contains(bb cp.BB, p cp.Vector) bool {
	return clamp(p.X, bb.L, bb.R) == p.X && clamp(p.Y, bb.B, bb.T) == p.Y
}

// clamp limits v to [lo, hi]. When the window is smaller than the sprite the range
// is inverted; the sprite is then pinned to the centre of that axis.
func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
