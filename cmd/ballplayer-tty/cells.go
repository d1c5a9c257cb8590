package main

import "github.com/jakecoffman/cp"

// A terminal cell covers cellWidth x cellHeight world units, roughly matching the
// 1:2 aspect of most terminal fonts.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// worldSize is the window size, in world units, of a cols x rows terminal.
func worldSize(cols, rows int) (float64, float64) {
	return float64(cols) * cellWidth, float64(rows) * cellHeight
}

type rect struct {
	left, top, right, bottom int
}

// cellRect returns the cells covered by a sprite of the given half size centred on p.
// World coordinates have their origin at the centre of the terminal and +Y up.
func cellRect(p cp.Vector, half float64, cols, rows int) rect {
	w, h := worldSize(cols, rows)
	minX := w/2 + p.X - half
	maxX := w/2 + p.X + half
	minY := h/2 - p.Y - half
	maxY := h/2 - p.Y + half

	r := rect{
		left:   int(minX / cellWidth),
		top:    int(minY / cellHeight),
		right:  int(maxX / cellWidth),
		bottom: int(maxY / cellHeight),
	}
	if r.right == r.left {
		r.right++
	}
	if r.bottom == r.top {
		r.bottom++
	}
	return r
}
