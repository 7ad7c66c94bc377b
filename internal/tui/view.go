package tui

import "github.com/iburimskiy/ball-animation/internal/sim"

// view maps the canvas onto a grid of terminal cells. The canvas is
// stretched to fill the grid.
type view struct {
	cols, rows int
	bounds     sim.Bounds
}

// toCanvas returns the canvas point under the center of cell (c, r).
func (v view) toCanvas(c, r int) (x, y float64) {
	x = (float64(c) + 0.5) * float64(v.bounds.Width) / float64(v.cols)
	y = (float64(r) + 0.5) * float64(v.bounds.Height) / float64(v.rows)
	return x, y
}

func (v view) toCell(x, y float64) (c, r int) {
	c = int(x * float64(v.cols) / float64(v.bounds.Width))
	r = int(y * float64(v.rows) / float64(v.bounds.Height))
	return clampInt(c, 0, v.cols-1), clampInt(r, 0, v.rows-1)
}

// cells returns the grid cells whose centers lie inside the ball. A ball
// smaller than a cell still gets the cell under its center.
func (v view) cells(b sim.Ball) [][2]int {
	if v.cols <= 0 || v.rows <= 0 {
		return nil
	}
	c0, r0 := v.toCell(float64(b.Box.MinX), float64(b.Box.MinY))
	c1, r1 := v.toCell(float64(b.Box.MaxX), float64(b.Box.MaxY))
	cx, cy := b.Box.Center()
	rad := float64(b.Radius)

	var out [][2]int
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			x, y := v.toCanvas(c, r)
			dx, dy := x-float64(cx), y-float64(cy)
			if dx*dx+dy*dy <= rad*rad {
				out = append(out, [2]int{c, r})
			}
		}
	}
	if len(out) == 0 {
		c, r := v.toCell(float64(cx), float64(cy))
		out = append(out, [2]int{c, r})
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
