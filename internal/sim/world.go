package sim

import "github.com/iburimskiy/ball-animation/internal/config"

// World owns every piece of mutable state: the balls, the run flag, the
// speed multiplier and the picker selection. It holds no locks; a single
// loop must make every call.
type World struct {
	bounds Bounds
	rng    Rand

	sel    Selection
	balls  []Ball
	nextID uint64

	running bool
	speed   int
	ticks   uint64
}

func NewWorld(bounds Bounds, rng Rand) *World {
	return &World{
		bounds: bounds,
		rng:    rng,
		speed:  1,
	}
}

func (w *World) Bounds() Bounds { return w.bounds }

// ChooseSize feeds the picker and spawns a ball if a color was pending.
// It reports whether a ball was spawned.
func (w *World) ChooseSize(s Size) bool {
	c, ok := w.sel.ChooseSize(s)
	if ok {
		w.spawn(c)
	}
	return ok
}

// ChooseColor feeds the picker and spawns a ball if a size was pending.
// It reports whether a ball was spawned.
func (w *World) ChooseColor(col Color) bool {
	c, ok := w.sel.ChooseColor(col)
	if ok {
		w.spawn(c)
	}
	return ok
}

func (w *World) spawn(c Choice) {
	w.nextID++
	w.balls = append(w.balls, newBall(w.rng, w.bounds, w.nextID, c))
}

func (w *World) ResetSelection()      { w.sel.Reset() }
func (w *World) Selection() Selection { return w.sel }

// Start sets the world running. It returns false if it already was.
func (w *World) Start() bool {
	if w.running {
		return false
	}
	w.running = true
	return true
}

func (w *World) Stop() { w.running = false }

// SpeedUp raises the multiplier applied to every ball's velocity at move time.
func (w *World) SpeedUp() { w.speed += config.SpeedIncrement }

// Reset removes every ball, stops the loop and restores the speed. The
// picker selection is left alone.
func (w *World) Reset() {
	w.balls = w.balls[:0]
	w.running = false
	w.speed = 1
	w.ticks = 0
}

// Tick advances every ball by one step and returns how many wall
// reflections happened. It does nothing while stopped.
//
// The wall probe uses the unscaled velocity against the pre-move box, so at
// high multipliers a ball can cross a wall by up to one step before it turns.
func (w *World) Tick() int {
	if !w.running {
		return 0
	}
	bounces := 0
	for i := range w.balls {
		b := &w.balls[i]
		if b.Box.MinX+b.Vel.DX < 0 || b.Box.MaxX+b.Vel.DX > w.bounds.Width {
			b.Vel.DX = -b.Vel.DX
			bounces++
		}
		if b.Box.MinY+b.Vel.DY < 0 || b.Box.MaxY+b.Vel.DY > w.bounds.Height {
			b.Vel.DY = -b.Vel.DY
			bounces++
		}
		b.Box = b.Box.Translate(b.Vel.DX*w.speed, b.Vel.DY*w.speed)
	}
	w.ticks++
	return bounces
}

// Balls returns a copy of the balls in creation order.
func (w *World) Balls() []Ball {
	out := make([]Ball, len(w.balls))
	copy(out, w.balls)
	return out
}

func (w *World) Len() int             { return len(w.balls) }
func (w *World) Running() bool        { return w.running }
func (w *World) SpeedMultiplier() int { return w.speed }

// Ticks counts the steps taken since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }
