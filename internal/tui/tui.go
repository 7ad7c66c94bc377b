// Package tui runs the ball canvas in a terminal. One loop owns the world:
// it handles key events and moves the balls on every tick.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ball-animation/internal/config"
	"github.com/iburimskiy/ball-animation/internal/sim"
)

// Bouncer is told how many wall hits each tick produced.
type Bouncer interface {
	Bounce(n int)
}

type App struct {
	screen tcell.Screen
	world  *sim.World
	sound  Bouncer
}

func New(w *sim.World, b Bouncer) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newApp(screen, w, b), nil
}

func newApp(screen tcell.Screen, w *sim.World, b Bouncer) *App {
	screen.HideCursor()
	return &App{screen: screen, world: w, sound: b}
}

// Run blocks until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handle(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			a.step()
			a.draw()
		}
	}
}

func (a *App) Close() {
	a.screen.Fini()
}

func (a *App) step() {
	if n := a.world.Tick(); n > 0 && a.sound != nil {
		a.sound.Bounce(n)
	}
}

// handle applies one event. It returns false when the user quits.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.apply(actionFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) apply(act action) bool {
	switch act.kind {
	case actSize:
		a.world.ChooseSize(act.size)
	case actColor:
		a.world.ChooseColor(act.color)
	case actStart:
		a.world.Start()
	case actStop:
		a.world.Stop()
	case actReset:
		a.world.Reset()
		a.world.ResetSelection()
	case actSpeedUp:
		a.world.SpeedUp()
	case actQuit:
		return false
	}
	return true
}

func (a *App) draw() {
	a.screen.Clear()
	cols, rows := a.screen.Size()
	if cols < 1 || rows < 2 {
		a.screen.Show()
		return
	}

	v := view{cols: cols, rows: rows - 1, bounds: a.world.Bounds()}
	for _, b := range a.world.Balls() {
		style := tcell.StyleDefault.Foreground(colorFor(b.Color))
		for _, cell := range v.cells(b) {
			a.screen.SetContent(cell[0], cell[1], '█', nil, style)
		}
	}

	status := a.status()
	bar := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		a.screen.SetContent(x, rows-1, ch, nil, bar)
	}
	a.screen.Show()
}

func (a *App) status() string {
	state := "stopped"
	if a.world.Running() {
		state = "running"
	}
	sel := a.world.Selection()
	size := "-"
	if s := sel.PendingSize(); s != sim.SizeNone {
		size = fmt.Sprint(int(s))
	}
	color := "-"
	if c := sel.PendingColor(); c != sim.ColorNone {
		color = c.String()
	}
	d := time.Duration(a.world.Ticks()) * config.TickInterval
	return fmt.Sprintf(" %s x%d balls:%d %02d:%02d | size:%s color:%s | 1-3 size, r/b/y color, s start, p stop, x reset, + speed, q quit",
		state, a.world.SpeedMultiplier(), a.world.Len(), int(d.Minutes()), int(d.Seconds())%60, size, color)
}
