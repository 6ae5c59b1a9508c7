package timer

import (
	"image/color"

	"pomotimer/internal/core/model"
)

// Cue identifies the sound played when a phase starts.
type Cue string

const (
	CueWorkStart       Cue = "work_start"
	CueShortBreakStart Cue = "short_break_start"
	CueLongBreakStart  Cue = "long_break_start"
)

// CueFor returns the start cue of a phase.
func CueFor(phase model.Phase) Cue {
	switch phase {
	case model.PhaseShortBreak:
		return CueShortBreakStart
	case model.PhaseLongBreak:
		return CueLongBreakStart
	default:
		return CueWorkStart
	}
}

// Display renders the running timer.
type Display interface {
	ShowPhase(phase model.Phase)
	ShowTime(text string)
	ShowRatios(upper, lower float64)
	ShowColors(upper, lower color.NRGBA)
	ShowActive(active bool)
}

// OptionsDisplay renders the editable preferences and which of them differ from defaults.
type OptionsDisplay interface {
	ShowPreferences(prefs model.Preferences, customized map[model.Field]bool)
}

// CuePlayer plays phase-start cues.
type CuePlayer interface {
	PlayCue(cue Cue)
	// SetVolume receives the volume on the 0-100 UI scale.
	SetVolume(percent float64)
}

// PreferencesSaver persists preferences.
type PreferencesSaver interface {
	Save(prefs model.Preferences) error
}

// Collaborators groups the sinks the engine drives. Nil members are skipped.
type Collaborators struct {
	Display Display
	Options OptionsDisplay
	Cues    CuePlayer
	Store   PreferencesSaver
}

// MultiDisplay fans display updates out to several displays. Nil entries are dropped.
func MultiDisplay(displays ...Display) Display {
	fanout := make(multiDisplay, 0, len(displays))
	for _, display := range displays {
		if display != nil {
			fanout = append(fanout, display)
		}
	}
	return fanout
}

type multiDisplay []Display

func (displays multiDisplay) ShowPhase(phase model.Phase) {
	for _, display := range displays {
		display.ShowPhase(phase)
	}
}

func (displays multiDisplay) ShowTime(text string) {
	for _, display := range displays {
		display.ShowTime(text)
	}
}

func (displays multiDisplay) ShowRatios(upper, lower float64) {
	for _, display := range displays {
		display.ShowRatios(upper, lower)
	}
}

func (displays multiDisplay) ShowColors(upper, lower color.NRGBA) {
	for _, display := range displays {
		display.ShowColors(upper, lower)
	}
}

func (displays multiDisplay) ShowActive(active bool) {
	for _, display := range displays {
		display.ShowActive(active)
	}
}
