package game

import (
	"github.com/iburimskiy/ball-animation/internal/config"
	"github.com/iburimskiy/ball-animation/internal/sim"
)

type control int

const (
	ctrlNone control = iota
	ctrlStart
	ctrlStop
	ctrlReset
	ctrlSpeedUp
)

type button struct {
	label  string
	action control
	x, y   int
	w, h   int
}

func (b button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

var buttons = func() []button {
	defs := []struct {
		label  string
		action control
	}{
		{"START", ctrlStart},
		{"STOP", ctrlStop},
		{"RESET", ctrlReset},
		{"Speed Up", ctrlSpeedUp},
	}
	out := make([]button, len(defs))
	for i, d := range defs {
		out[i] = button{
			label:  d.label,
			action: d.action,
			x:      config.ButtonRowX + i*(config.ButtonWidth+config.ButtonSpacing),
			y:      config.CanvasHeight + config.ButtonRowY,
			w:      config.ButtonWidth,
			h:      config.ButtonHeight,
		}
	}
	return out
}()

// sizeCircle returns the picker circle for Sizes[i] in window coordinates.
// The picker draws sizes larger than the canvas does.
func sizeCircle(i int) (cx, cy, r float64) {
	cx = float64(config.PickerStartX + i*config.PickerSpacing)
	cy = float64(config.CanvasHeight + config.SizeRowY)
	r = float64(sim.Sizes[i]) * config.PickerScale / 2
	return cx, cy, r
}

// colorSquare returns the top-left corner and side of the square for Colors[j].
func colorSquare(j int) (x, y, side int) {
	half := config.ColorSquare / 2
	x = config.PickerStartX + j*config.PickerSpacing - half
	y = config.CanvasHeight + config.ColorRowY - half
	return x, y, config.ColorSquare
}

type hitKind int

const (
	hitNothing hitKind = iota
	hitSize
	hitColor
	hitButton
)

type hit struct {
	kind   hitKind
	size   sim.Size
	color  sim.Color
	action control
}

// hitTest resolves a window-space point to the panel element under it.
func hitTest(x, y int) hit {
	if y < config.CanvasHeight {
		return hit{}
	}
	for i, s := range sim.Sizes {
		cx, cy, r := sizeCircle(i)
		dx, dy := float64(x)-cx, float64(y)-cy
		if dx*dx+dy*dy <= r*r {
			return hit{kind: hitSize, size: s}
		}
	}
	for j, c := range sim.Colors {
		sx, sy, side := colorSquare(j)
		if x >= sx && x <= sx+side && y >= sy && y <= sy+side {
			return hit{kind: hitColor, color: c}
		}
	}
	if b := buttonAt(x, y); b != ctrlNone {
		return hit{kind: hitButton, action: b}
	}
	return hit{}
}

func buttonAt(x, y int) control {
	for _, b := range buttons {
		if b.contains(x, y) {
			return b.action
		}
	}
	return ctrlNone
}
