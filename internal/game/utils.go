package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/ball-animation/internal/config"
	"github.com/iburimskiy/ball-animation/internal/sim"
)

var (
	canvasBackground = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	panelBackground  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pickerGray       = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	pickerHighlight  = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	outline          = color.RGBA{A: 255}
	white            = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func colorOf(c sim.Color) color.RGBA {
	switch c {
	case sim.Red:
		return color.RGBA{R: 255, A: 255}
	case sim.Blue:
		return color.RGBA{B: 255, A: 255}
	case sim.Yellow:
		return color.RGBA{R: 255, G: 255, A: 255}
	}
	return pickerGray
}

func buttonColor(a control) color.RGBA {
	switch a {
	case ctrlStart:
		return colorOf(sim.Red)
	case ctrlStop:
		return colorOf(sim.Blue)
	case ctrlReset:
		return colorOf(sim.Yellow)
	}
	return pickerGray
}

// shade scales each channel by f, clamped to 0-255.
func shade(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		x := float64(v) * f
		if x < 0 {
			return 0
		}
		if x > 255 {
			return 255
		}
		return uint8(x)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

func elapsed(ticks uint64) time.Duration {
	return time.Duration(ticks) * config.TickInterval
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
