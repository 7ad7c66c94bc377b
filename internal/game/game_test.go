package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/iburimskiy/ball-animation/internal/config"
	"github.com/iburimskiy/ball-animation/internal/sim"
)

type countingBouncer struct{ calls, total int }

func (c *countingBouncer) Bounce(n int) {
	c.calls++
	c.total += n
}

func newTestGame(confirm func(string) bool) (*Game, *countingBouncer) {
	w := sim.NewWorld(sim.Bounds{Width: config.CanvasWidth, Height: config.CanvasHeight}, rand.New(rand.NewPCG(7, 8)))
	b := &countingBouncer{}
	g := New(w, b, false)
	g.confirm = confirm
	return g, b
}

func TestHitTest(t *testing.T) {
	for i, s := range sim.Sizes {
		cx, cy, r := sizeCircle(i)
		if got := hitTest(int(cx), int(cy)); got.kind != hitSize || got.size != s {
			t.Errorf("center of size circle %d = %+v, want size %d", i, got, s)
		}
		if got := hitTest(int(cx), int(cy-r)+1); got.kind != hitSize {
			t.Errorf("top edge of size circle %d missed: %+v", i, got)
		}
	}
	for j, c := range sim.Colors {
		x, y, side := colorSquare(j)
		if got := hitTest(x+side/2, y+side/2); got.kind != hitColor || got.color != c {
			t.Errorf("center of color square %d = %+v, want %v", j, got, c)
		}
		if got := hitTest(x, y); got.kind != hitColor {
			t.Errorf("corner of color square %d missed: %+v", j, got)
		}
	}
	for _, b := range buttons {
		if got := hitTest(b.x+b.w/2, b.y+b.h/2); got.kind != hitButton || got.action != b.action {
			t.Errorf("button %q = %+v", b.label, got)
		}
	}

	misses := [][2]int{
		{400, 300},                       // canvas
		{700, config.CanvasHeight + 150}, // panel background
		{110, config.CanvasHeight + 120}, // between squares
	}
	for _, p := range misses {
		if got := hitTest(p[0], p[1]); got.kind != hitNothing {
			t.Errorf("hitTest(%d,%d) = %+v, want nothing", p[0], p[1], got)
		}
	}
}

func TestPickerScale(t *testing.T) {
	_, _, r := sizeCircle(2)
	if r != 45 {
		t.Fatalf("large picker radius = %v, want 45", r)
	}
}

func TestButtonsDoNotOverlapPickers(t *testing.T) {
	for _, b := range buttons {
		for j := range sim.Colors {
			_, y, side := colorSquare(j)
			if b.y <= y+side {
				t.Fatalf("button %q at y=%d overlaps color row ending at %d", b.label, b.y, y+side)
			}
		}
		if b.y+b.h > config.WindowHeight {
			t.Fatalf("button %q falls off the window", b.label)
		}
	}
}

func TestTriggerControls(t *testing.T) {
	g, _ := newTestGame(nil)
	g.trigger(ctrlStart)
	if !g.world.Running() {
		t.Fatal("START did not start")
	}
	g.trigger(ctrlSpeedUp)
	if got := g.world.SpeedMultiplier(); got != 3 {
		t.Fatalf("speed = %d, want 3", got)
	}
	g.trigger(ctrlStop)
	if g.world.Running() {
		t.Fatal("STOP did not stop")
	}
}

func TestResetConfirmation(t *testing.T) {
	var asked int
	answer := false
	g, _ := newTestGame(func(string) bool { asked++; return answer })

	// Nothing to lose, so no question.
	g.trigger(ctrlReset)
	if asked != 0 {
		t.Fatalf("asked %d times with an empty canvas", asked)
	}

	g.chooseSize(sim.SizeSmall)
	g.chooseColor(sim.Red)
	g.chooseSize(sim.SizeLarge)
	g.trigger(ctrlStart)
	g.trigger(ctrlReset)
	if asked != 1 || g.world.Len() != 1 || !g.world.Running() {
		t.Fatalf("declined reset: asked=%d balls=%d running=%v", asked, g.world.Len(), g.world.Running())
	}

	answer = true
	g.trigger(ctrlReset)
	if g.world.Len() != 0 || g.world.Running() {
		t.Fatalf("accepted reset left balls=%d running=%v", g.world.Len(), g.world.Running())
	}
	if sel := g.world.Selection(); sel.State() != sim.Empty {
		t.Fatalf("selection after RESET = %v, want empty", sel.State())
	}
}

func TestBlink(t *testing.T) {
	g, _ := newTestGame(nil)
	if g.blinkOff(sim.Blue) {
		t.Fatal("blinking with nothing pending")
	}
	g.chooseColor(sim.Blue)
	if !g.blinkOff(sim.Blue) {
		t.Fatal("pending square should start in the white phase")
	}
	if g.blinkOff(sim.Red) {
		t.Fatal("non-pending square blinks")
	}
	for i := uint64(0); i < blinkFrames; i++ {
		g.step()
	}
	if g.blinkOff(sim.Blue) {
		t.Fatal("square still white after one blink period")
	}
	for i := uint64(0); i < blinkFrames; i++ {
		g.step()
	}
	if !g.blinkOff(sim.Blue) {
		t.Fatal("square not white again after two blink periods")
	}

	g.chooseSize(sim.SizeMedium)
	if g.blinkOff(sim.Blue) {
		t.Fatal("square still blinking after the ball spawned")
	}
}

func TestBlinkPeriod(t *testing.T) {
	if got := time.Duration(blinkFrames) * config.TickInterval; got != 500*time.Millisecond {
		t.Fatalf("blink period = %v, want 500ms", got)
	}
}

func TestStepReportsBounces(t *testing.T) {
	g, b := newTestGame(nil)
	for i := 0; i < 5; i++ {
		g.chooseSize(sim.SizeLarge)
		g.chooseColor(sim.Yellow)
	}
	for i := 0; i < 200; i++ {
		g.step()
	}
	if b.calls != 0 {
		t.Fatalf("stopped world produced %d bounce calls", b.calls)
	}
	g.trigger(ctrlStart)
	// A ball crosses the 800px canvas in at most 680 ticks at speed 1.
	for i := 0; i < 1000; i++ {
		g.step()
	}
	if b.calls == 0 || b.total < b.calls {
		t.Fatalf("bounce calls=%d total=%d, want at least one", b.calls, b.total)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(elapsed(uint64(config.TicksPerSecond) * 75)); got != "01:15" {
		t.Fatalf("formatDuration = %q, want 01:15", got)
	}
}
