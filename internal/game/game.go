// Package game is the desktop front-end: an ebiten window with the ball
// canvas on top and the picker and control buttons below it.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ball-animation/internal/config"
	"github.com/iburimskiy/ball-animation/internal/sim"
)

const blinkFrames = uint64(config.BlinkPeriod / config.TickInterval)

// Bouncer is told how many wall hits each tick produced.
type Bouncer interface {
	Bounce(n int)
}

type Game struct {
	world *sim.World
	sound Bouncer

	// confirm asks before a reset wipes balls. nil means never ask.
	confirm func(msg string) bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	hovered control
	pressed control

	frame     uint64
	blinkFrom uint64
}

func New(w *sim.World, b Bouncer, confirmReset bool) *Game {
	g := &Game{
		world:   w,
		sound:   b,
		prevKey: map[ebiten.Key]bool{},
	}
	if confirmReset {
		g.confirm = askReset
	}
	return g
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Ball Animation")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func askReset(msg string) bool {
	err := zenity.Question(msg,
		zenity.Title("Reset"),
		zenity.OKLabel("Reset"),
		zenity.CancelLabel("Keep"),
		zenity.WarningIcon,
	)
	if err == nil {
		return true
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return false
	}
	log.Printf("reset dialog unavailable, resetting anyway: %v", err)
	return true
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.hovered = buttonAt(mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h := hitTest(mouseX, mouseY)
		switch h.kind {
		case hitSize:
			g.chooseSize(h.size)
		case hitColor:
			g.chooseColor(h.color)
		case hitButton:
			g.pressed = h.action
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed != ctrlNone && g.pressed == g.hovered {
			g.trigger(g.pressed)
		}
		g.pressed = ctrlNone
	}

	if justPressed(ebiten.KeySpace) {
		if g.world.Running() {
			g.trigger(ctrlStop)
		} else {
			g.trigger(ctrlStart)
		}
	}
	if justPressed(ebiten.KeyR) {
		g.trigger(ctrlReset)
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.trigger(ctrlSpeedUp)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// step is one 20ms tick: move the balls and advance the blink clock.
func (g *Game) step() {
	if n := g.world.Tick(); n > 0 && g.sound != nil {
		g.sound.Bounce(n)
	}
	g.frame++
}

func (g *Game) chooseSize(s sim.Size) {
	g.world.ChooseSize(s)
}

func (g *Game) chooseColor(c sim.Color) {
	if !g.world.ChooseColor(c) {
		// Restart the blink on the newly pending square.
		g.blinkFrom = g.frame
	}
}

func (g *Game) trigger(a control) {
	switch a {
	case ctrlStart:
		g.world.Start()
	case ctrlStop:
		g.world.Stop()
	case ctrlSpeedUp:
		g.world.SpeedUp()
	case ctrlReset:
		if g.world.Len() > 0 && g.confirm != nil && !g.confirm("Remove all balls from the canvas?") {
			return
		}
		g.world.Reset()
		g.world.ResetSelection()
	}
}

// blinkOff reports whether the pending color square is in its white phase.
// The first phase after a choice is white.
func (g *Game) blinkOff(c sim.Color) bool {
	sel := g.world.Selection()
	if sel.PendingColor() != c {
		return false
	}
	return ((g.frame-g.blinkFrom)/blinkFrames)%2 == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawCanvas(screen)
	g.drawPanel(screen)
	g.drawButtons(screen)
	g.drawStatus(screen)
}

func (g *Game) drawCanvas(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.CanvasWidth, config.CanvasHeight, canvasBackground, false)
	for _, b := range g.world.Balls() {
		cx, cy := b.Box.Center()
		r := float32(b.Radius)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, colorOf(b.Color), true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), r, 1, outline, true)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, config.CanvasHeight, config.WindowWidth, config.PanelHeight, panelBackground, false)

	sel := g.world.Selection()
	for i, s := range sim.Sizes {
		cx, cy, r := sizeCircle(i)
		fill := pickerGray
		if sel.PendingSize() == s {
			fill = pickerHighlight
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), fill, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, outline, true)
	}

	for j, c := range sim.Colors {
		x, y, side := colorSquare(j)
		fill := colorOf(c)
		if g.blinkOff(c) {
			fill = white
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(side), float32(side), fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(side), float32(side), 1, outline, false)
	}
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	for _, b := range buttons {
		bg := buttonColor(b.action)
		if g.pressed == b.action {
			bg = shade(bg, 0.6)
		} else if g.hovered == b.action {
			bg = shade(bg, 0.8)
		}
		vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, outline, false)

		textWidth := len(b.label) * 6 // debug font glyph width
		ebitenutil.DebugPrintAt(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	state := "Stopped"
	if g.world.Running() {
		state = "Running"
	}
	status := fmt.Sprintf("%s  x%d  balls: %d  %s",
		state, g.world.SpeedMultiplier(), g.world.Len(), formatDuration(elapsed(g.world.Ticks())))
	ebitenutil.DebugPrintAt(screen, status, 440, config.CanvasHeight+20)
	ebitenutil.DebugPrintAt(screen, "Pick a size and a color to add a ball", 440, config.CanvasHeight+50)
	ebitenutil.DebugPrintAt(screen, "Space: start/stop  R: reset", 440, config.CanvasHeight+80)
	ebitenutil.DebugPrintAt(screen, "Up: speed up  Esc/Q: quit", 440, config.CanvasHeight+100)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
