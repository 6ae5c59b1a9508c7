package timer

import (
	"errors"
	"image/color"

	"pomotimer/internal/core/model"
)

type ratioSample struct {
	phase model.Phase
	upper float64
	lower float64
}

type recordingDisplay struct {
	phase   model.Phase
	phases  []model.Phase
	times   []string
	ratios  []ratioSample
	upper   color.NRGBA
	lower   color.NRGBA
	actives []bool
}

func (display *recordingDisplay) ShowPhase(phase model.Phase) {
	display.phase = phase
	display.phases = append(display.phases, phase)
}

func (display *recordingDisplay) ShowTime(text string) {
	display.times = append(display.times, text)
}

func (display *recordingDisplay) ShowRatios(upper, lower float64) {
	display.ratios = append(display.ratios, ratioSample{phase: display.phase, upper: upper, lower: lower})
}

func (display *recordingDisplay) ShowColors(upper, lower color.NRGBA) {
	display.upper = upper
	display.lower = lower
}

func (display *recordingDisplay) ShowActive(active bool) {
	display.actives = append(display.actives, active)
}

func (display *recordingDisplay) lastTime() string {
	if len(display.times) == 0 {
		return ""
	}
	return display.times[len(display.times)-1]
}

type recordingOptions struct {
	prefs      model.Preferences
	customized map[model.Field]bool
	calls      int
}

func (options *recordingOptions) ShowPreferences(prefs model.Preferences, customized map[model.Field]bool) {
	options.prefs = prefs
	options.customized = customized
	options.calls++
}

type recordingCues struct {
	cues   []Cue
	volume float64
}

func (player *recordingCues) PlayCue(cue Cue) {
	player.cues = append(player.cues, cue)
}

func (player *recordingCues) SetVolume(percent float64) {
	player.volume = percent
}

type memoryStore struct {
	saved []model.Preferences
	err   error
}

func (store *memoryStore) Save(prefs model.Preferences) error {
	if store.err != nil {
		return store.err
	}
	store.saved = append(store.saved, prefs)
	return nil
}

func (store *memoryStore) last() model.Preferences {
	return store.saved[len(store.saved)-1]
}

var errDiskFull = errors.New("disk full")

type harness struct {
	engine  *Engine
	display *recordingDisplay
	options *recordingOptions
	cues    *recordingCues
	store   *memoryStore
}

func newHarness(prefs model.Preferences) *harness {
	h := &harness{
		display: &recordingDisplay{},
		options: &recordingOptions{},
		cues:    &recordingCues{},
		store:   &memoryStore{},
	}
	h.engine = New(prefs, Collaborators{
		Display: h.display,
		Options: h.options,
		Cues:    h.cues,
		Store:   h.store,
	})
	return h
}

// runFor ticks the engine in frames of the given length until total seconds have elapsed.
func (h *harness) runFor(total, frame float64) {
	for elapsed := 0.0; elapsed < total-frame/2; elapsed += frame {
		h.engine.Tick(frame)
	}
}
