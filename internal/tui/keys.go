package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ball-animation/internal/sim"
)

type actionKind int

const (
	actNone actionKind = iota
	actSize
	actColor
	actStart
	actStop
	actReset
	actSpeedUp
	actQuit
)

type action struct {
	kind  actionKind
	size  sim.Size
	color sim.Color
}

// actionFor maps a key press to what it does.
func actionFor(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action{kind: actQuit}
	case tcell.KeyRune:
	default:
		return action{}
	}

	switch r {
	case '1', '2', '3':
		return action{kind: actSize, size: sim.Sizes[r-'1']}
	case 'r', 'R':
		return action{kind: actColor, color: sim.Red}
	case 'b', 'B':
		return action{kind: actColor, color: sim.Blue}
	case 'y', 'Y':
		return action{kind: actColor, color: sim.Yellow}
	case 's', 'S':
		return action{kind: actStart}
	case 'p', 'P':
		return action{kind: actStop}
	case 'x', 'X':
		return action{kind: actReset}
	case '+', 'f', 'F':
		return action{kind: actSpeedUp}
	case 'q', 'Q':
		return action{kind: actQuit}
	}
	return action{}
}

func colorFor(c sim.Color) tcell.Color {
	switch c {
	case sim.Red:
		return tcell.ColorRed
	case sim.Blue:
		return tcell.ColorBlue
	case sim.Yellow:
		return tcell.ColorYellow
	}
	return tcell.ColorGray
}
