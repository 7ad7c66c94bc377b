package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ball-animation/internal/sim"
)

var canvas = sim.Bounds{Width: 800, Height: 600}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want action
	}{
		{tcell.KeyRune, '1', action{kind: actSize, size: sim.SizeSmall}},
		{tcell.KeyRune, '2', action{kind: actSize, size: sim.SizeMedium}},
		{tcell.KeyRune, '3', action{kind: actSize, size: sim.SizeLarge}},
		{tcell.KeyRune, 'r', action{kind: actColor, color: sim.Red}},
		{tcell.KeyRune, 'B', action{kind: actColor, color: sim.Blue}},
		{tcell.KeyRune, 'y', action{kind: actColor, color: sim.Yellow}},
		{tcell.KeyRune, 's', action{kind: actStart}},
		{tcell.KeyRune, 'p', action{kind: actStop}},
		{tcell.KeyRune, 'x', action{kind: actReset}},
		{tcell.KeyRune, '+', action{kind: actSpeedUp}},
		{tcell.KeyRune, 'q', action{kind: actQuit}},
		{tcell.KeyEscape, 0, action{kind: actQuit}},
		{tcell.KeyCtrlC, 0, action{kind: actQuit}},
		{tcell.KeyRune, 'z', action{}},
		{tcell.KeyEnter, 0, action{}},
	}
	for _, tt := range tests {
		if got := actionFor(tt.key, tt.r); got != tt.want {
			t.Errorf("actionFor(%v, %q) = %+v, want %+v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestViewCells(t *testing.T) {
	v := view{cols: 80, rows: 24, bounds: canvas}
	b := sim.Ball{Box: sim.Box{MinX: 340, MinY: 240, MaxX: 460, MaxY: 360}, Radius: sim.SizeLarge}
	cells := v.cells(b)
	if len(cells) == 0 {
		t.Fatal("large ball covers no cells")
	}
	for _, c := range cells {
		if c[0] < 34 || c[0] > 46 || c[1] < 9 || c[1] > 14 {
			t.Fatalf("cell %v outside the ball's footprint", c)
		}
	}

	tiny := view{cols: 10, rows: 5, bounds: canvas}
	small := sim.Ball{Box: sim.Box{MinX: 0, MinY: 0, MaxX: 40, MaxY: 40}, Radius: sim.SizeSmall}
	if got := tiny.cells(small); len(got) != 1 || got[0] != [2]int{0, 0} {
		t.Fatalf("sub-cell ball = %v, want [[0 0]]", got)
	}
}

func TestViewClampsOvershoot(t *testing.T) {
	v := view{cols: 80, rows: 24, bounds: canvas}
	b := sim.Ball{Box: sim.Box{MinX: -12, MinY: 580, MaxX: 28, MaxY: 620}, Radius: sim.SizeSmall}
	for _, c := range v.cells(b) {
		if c[0] < 0 || c[0] >= 80 || c[1] < 0 || c[1] >= 24 {
			t.Fatalf("cell %v off the grid", c)
		}
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return newApp(screen, sim.NewWorld(canvas, rand.New(rand.NewPCG(5, 6))), nil)
}

func TestApply(t *testing.T) {
	a := newTestApp(t)
	a.apply(actionFor(tcell.KeyRune, '2'))
	a.apply(actionFor(tcell.KeyRune, 'b'))
	if a.world.Len() != 1 {
		t.Fatalf("balls = %d, want 1", a.world.Len())
	}
	a.apply(actionFor(tcell.KeyRune, 's'))
	a.apply(actionFor(tcell.KeyRune, '+'))
	a.step()
	if !a.world.Running() || a.world.SpeedMultiplier() != 3 || a.world.Ticks() != 1 {
		t.Fatalf("running=%v speed=%d ticks=%d", a.world.Running(), a.world.SpeedMultiplier(), a.world.Ticks())
	}
	a.apply(actionFor(tcell.KeyRune, 'r'))
	a.apply(actionFor(tcell.KeyRune, 'x'))
	if a.world.Len() != 0 || a.world.Running() {
		t.Fatalf("after reset: balls=%d running=%v", a.world.Len(), a.world.Running())
	}
	if sel := a.world.Selection(); sel.State() != sim.Empty {
		t.Fatalf("selection after reset = %v", sel.State())
	}
	if a.apply(actionFor(tcell.KeyRune, 'q')) {
		t.Fatal("quit key did not end the loop")
	}
}

func TestStatusAndDraw(t *testing.T) {
	a := newTestApp(t)
	a.apply(action{kind: actSize, size: sim.SizeLarge})
	if s := a.status(); !strings.Contains(s, "size:60") || !strings.Contains(s, "color:-") {
		t.Fatalf("status = %q", s)
	}
	a.apply(action{kind: actColor, color: sim.Yellow})
	if s := a.status(); !strings.Contains(s, "balls:1") || !strings.Contains(s, "stopped") {
		t.Fatalf("status = %q", s)
	}
	a.draw()
}
