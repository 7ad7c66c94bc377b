// Package sim holds the ball world: the size/color selection that spawns
// balls and the fixed-step motion loop that bounces them inside the canvas.
package sim

// Size is a ball radius in canvas units. The zero value means "not chosen".
type Size int

const (
	SizeNone   Size = 0
	SizeSmall  Size = 20
	SizeMedium Size = 40
	SizeLarge  Size = 60
)

// Sizes lists the selectable sizes in picker order.
var Sizes = [...]Size{SizeSmall, SizeMedium, SizeLarge}

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Color is a ball fill. The zero value means "not chosen".
type Color int

const (
	ColorNone Color = iota
	Red
	Blue
	Yellow
)

// Colors lists the selectable colors in picker order.
var Colors = [...]Color{Red, Blue, Yellow}

func (c Color) Valid() bool {
	return c >= Red && c <= Yellow
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	}
	return "none"
}

// Bounds is the canvas the balls live in, with the origin at the top left.
type Bounds struct {
	Width, Height int
}

// Box is an axis-aligned bounding box in canvas units.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

func boxAround(cx, cy, r int) Box {
	return Box{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r}
}

func (b Box) Translate(dx, dy int) Box {
	return Box{MinX: b.MinX + dx, MinY: b.MinY + dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}

// Center returns the midpoint of the box.
func (b Box) Center() (x, y int) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Velocity is the unscaled per-tick displacement.
type Velocity struct {
	DX, DY int
}

type Ball struct {
	ID     uint64
	Box    Box
	Vel    Velocity
	Radius Size
	Color  Color
}
