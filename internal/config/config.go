package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CanvasWidth  = 800
	CanvasHeight = 600

	// Control panel below the canvas
	PanelHeight  = 200
	WindowWidth  = CanvasWidth
	WindowHeight = CanvasHeight + PanelHeight

	TickInterval   = 20 * time.Millisecond
	TicksPerSecond = int(time.Second / TickInterval)
	SpeedIncrement = 2
	BlinkPeriod    = 500 * time.Millisecond

	// Picker geometry, relative to the panel origin
	PickerScale   = 1.5
	PickerStartX  = 50
	PickerSpacing = 120
	SizeRowY      = 50
	ColorRowY     = 120
	ColorSquare   = 40

	// Buttons
	ButtonWidth   = 90
	ButtonHeight  = 28
	ButtonSpacing = 10
	ButtonRowX    = 10
	ButtonRowY    = 160

	// Sound
	SampleRate = 44100
	ToneFreq   = 880.0
	ToneLength = 60 * time.Millisecond
	MaxVoices  = 4
)

// Settings are the knobs a user can change without a rebuild.
type Settings struct {
	Seed         int64
	Mute         bool
	ConfirmReset bool
	TUI          bool
}

func Defaults() Settings {
	return Settings{ConfirmReset: true}
}

// Load reads an optional .env file and then the BALLS_* environment variables.
func Load() Settings {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: loading .env: %v", err)
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) Settings {
	s := Defaults()
	if v := getenv("BALLS_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("config: BALLS_SEED=%q: %v", v, err)
		} else {
			s.Seed = n
		}
	}
	s.Mute = boolVar(getenv, "BALLS_MUTE", s.Mute)
	s.ConfirmReset = boolVar(getenv, "BALLS_CONFIRM_RESET", s.ConfirmReset)
	s.TUI = boolVar(getenv, "BALLS_TUI", s.TUI)
	return s
}

func boolVar(getenv func(string) string, key string, def bool) bool {
	v := getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: %s=%q: %v", key, v, err)
		return def
	}
	return b
}
