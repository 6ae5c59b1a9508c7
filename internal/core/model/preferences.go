package model

import (
	"image/color"
	"math"
)

// PreferencesVersion is the schema version written by this build.
const PreferencesVersion = 2

const (
	MinCount = 1
	MaxCount = 9999

	MinVolume = 0.0
	MaxVolume = 100.0
)

// Extent is a window size in device independent pixels.
type Extent struct {
	Width  float32
	Height float32
}

// DefaultWindowSize is the size the timer window opens with when nothing was saved.
var DefaultWindowSize = Extent{Width: 320, Height: 420}

// Preferences is the persisted user record.
type Preferences struct {
	Version            int
	SfxVolume          float64
	UpperTimerColor    color.NRGBA
	LowerTimerColor    color.NRGBA
	WorkMinutes        int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	LongBreakFrequency int
	WindowSize         Extent
}

// DefaultPreferences returns the explicit defaults object.
func DefaultPreferences() Preferences {
	return Preferences{
		Version:            PreferencesVersion,
		SfxVolume:          50.0,
		UpperTimerColor:    color.NRGBA{R: 0xff, G: 0x76, B: 0x76, A: 0xff},
		LowerTimerColor:    color.NRGBA{R: 0x8d, G: 0xd1, B: 0xff, A: 0xff},
		WorkMinutes:        25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   30,
		LongBreakFrequency: 5,
		WindowSize:         DefaultWindowSize,
	}
}

// ClampCount bounds a duration or frequency to [MinCount, MaxCount].
func ClampCount(value int) int {
	if value < MinCount {
		return MinCount
	}
	if value > MaxCount {
		return MaxCount
	}
	return value
}

// ClampVolume bounds a volume to [MinVolume, MaxVolume]. NaN maps to the minimum.
func ClampVolume(value float64) float64 {
	if math.IsNaN(value) || value < MinVolume {
		return MinVolume
	}
	if value > MaxVolume {
		return MaxVolume
	}
	return value
}

// Normalize clamps every bounded field in place.
func (prefs *Preferences) Normalize() {
	if prefs.Version <= 0 {
		prefs.Version = PreferencesVersion
	}
	prefs.SfxVolume = ClampVolume(prefs.SfxVolume)
	prefs.WorkMinutes = ClampCount(prefs.WorkMinutes)
	prefs.ShortBreakMinutes = ClampCount(prefs.ShortBreakMinutes)
	prefs.LongBreakMinutes = ClampCount(prefs.LongBreakMinutes)
	prefs.LongBreakFrequency = ClampCount(prefs.LongBreakFrequency)
	if prefs.WindowSize.Width <= 0 || prefs.WindowSize.Height <= 0 {
		prefs.WindowSize = DefaultWindowSize
	}
}

// MinutesFor returns the configured length of a phase.
func (prefs Preferences) MinutesFor(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return prefs.ShortBreakMinutes
	case PhaseLongBreak:
		return prefs.LongBreakMinutes
	default:
		return prefs.WorkMinutes
	}
}

// SetMinutesFor stores a clamped length for a phase.
func (prefs *Preferences) SetMinutesFor(phase Phase, minutes int) {
	minutes = ClampCount(minutes)
	switch phase {
	case PhaseShortBreak:
		prefs.ShortBreakMinutes = minutes
	case PhaseLongBreak:
		prefs.LongBreakMinutes = minutes
	default:
		prefs.WorkMinutes = minutes
	}
}

// Customized reports, per editable field, whether prefs differs from defaults.
func (prefs Preferences) Customized(defaults Preferences) map[Field]bool {
	return map[Field]bool{
		FieldSfxVolume:          math.Abs(prefs.SfxVolume-defaults.SfxVolume) >= volumeEpsilon,
		FieldUpperTimerColor:    prefs.UpperTimerColor != defaults.UpperTimerColor,
		FieldLowerTimerColor:    prefs.LowerTimerColor != defaults.LowerTimerColor,
		FieldWorkMinutes:        prefs.WorkMinutes != defaults.WorkMinutes,
		FieldShortBreakMinutes:  prefs.ShortBreakMinutes != defaults.ShortBreakMinutes,
		FieldLongBreakMinutes:   prefs.LongBreakMinutes != defaults.LongBreakMinutes,
		FieldLongBreakFrequency: prefs.LongBreakFrequency != defaults.LongBreakFrequency,
	}
}

const volumeEpsilon = 1e-6
