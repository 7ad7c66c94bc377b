package sim

const maxSpeed = 5

// Rand is the randomness a spawn needs. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// between returns a uniform integer in [lo, hi]. An empty range collapses
// to its midpoint.
func between(rng Rand, lo, hi int) int {
	if hi < lo {
		return (lo + hi) / 2
	}
	return lo + rng.IntN(hi-lo+1)
}

// component returns ±[1, maxSpeed].
func component(rng Rand) int {
	v := 1 + rng.IntN(maxSpeed)
	if rng.IntN(2) == 0 {
		return -v
	}
	return v
}

// newBall places a ball of the chosen size fully inside bounds and gives it
// a random direction.
func newBall(rng Rand, bounds Bounds, id uint64, c Choice) Ball {
	r := int(c.Size)
	cx := between(rng, r, bounds.Width-r)
	cy := between(rng, r, bounds.Height-r)
	return Ball{
		ID:     id,
		Box:    boxAround(cx, cy, r),
		Vel:    Velocity{DX: component(rng), DY: component(rng)},
		Radius: c.Size,
		Color:  c.Color,
	}
}
