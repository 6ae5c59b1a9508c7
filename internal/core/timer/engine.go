package timer

import (
	"image/color"
	"strconv"

	"github.com/sirupsen/logrus"

	"pomotimer/internal/core/model"
)

const (
	millisecondsPerSecond = 1000
	secondsPerMinute      = 60
	millisecondsPerMinute = millisecondsPerSecond * secondsPerMinute

	// completionTolerance absorbs float drift when frame times sum to exactly a phase length.
	completionTolerance = 1e-3
)

var log = logrus.WithField("component", "timer")

// Engine is the pomodoro phase state machine. It is driven by Tick and the
// intent methods, and pushes its visual state into the collaborators.
//
// Engine is not safe for concurrent use; the host must serialize all calls.
type Engine struct {
	prefs    model.Preferences
	defaults model.Preferences
	sinks    Collaborators

	phase                    model.Phase
	phaseTotal               int64
	remaining                float64
	active                   bool
	fresh                    bool
	workPhasesSinceLongBreak int

	upper    float64
	lower    float64
	timeText string
}

// New creates an engine at the start of a fresh Work session.
func New(prefs model.Preferences, sinks Collaborators) *Engine {
	prefs.Normalize()
	engine := &Engine{
		prefs:    prefs,
		defaults: model.DefaultPreferences(),
		sinks:    sinks,
	}
	engine.resetValues()
	engine.updateRatios()
	if engine.sinks.Cues != nil {
		engine.sinks.Cues.SetVolume(engine.prefs.SfxVolume)
	}
	engine.publishAll()
	return engine
}

// AdvancePhase is the phase transition function. It returns the next phase and
// the updated count of Work phases since the last long break.
func AdvancePhase(current model.Phase, workPhasesSinceLongBreak, frequency int) (model.Phase, int) {
	switch current {
	case model.PhaseWork:
		if workPhasesSinceLongBreak+1 >= frequency {
			return model.PhaseLongBreak, 0
		}
		return model.PhaseShortBreak, workPhasesSinceLongBreak + 1
	default:
		return model.PhaseWork, workPhasesSinceLongBreak
	}
}

// Tick advances the countdown by elapsed seconds. It does nothing while paused.
func (engine *Engine) Tick(elapsed float64) {
	if !engine.active || !(elapsed > 0) {
		return
	}

	engine.remaining -= elapsed * millisecondsPerSecond
	if engine.remaining <= completionTolerance {
		engine.remaining = 0
		engine.publishProgress()
		engine.advance()
	}
	engine.publishProgress()
}

// TogglePauseResume starts or pauses the countdown. The first start of a fresh
// session plays the Work cue.
func (engine *Engine) TogglePauseResume() {
	if !engine.active && engine.fresh {
		engine.playCue(CueFor(engine.phase))
		engine.fresh = false
	}
	engine.active = !engine.active
	log.WithField("active", engine.active).Debug("toggled timer")
	if engine.sinks.Display != nil {
		engine.sinks.Display.ShowActive(engine.active)
	}
}

// Reset returns to a paused, fresh Work session using the current preferences.
func (engine *Engine) Reset() {
	engine.resetValues()
	log.Debug("timer reset")
	if engine.sinks.Display != nil {
		engine.sinks.Display.ShowPhase(engine.phase)
		engine.sinks.Display.ShowActive(engine.active)
	}
	engine.publishProgress()
}

// SetDuration applies raw text as the length of phase in minutes and returns
// the canonical text of the stored value. Unparsable text leaves it unchanged.
func (engine *Engine) SetDuration(phase model.Phase, raw string) string {
	if minutes, ok := ParseCount(raw); ok {
		engine.prefs.SetMinutesFor(phase, minutes)
		engine.applyCountChange(phase.String()+"_minutes", minutes)
	} else {
		log.WithFields(logrus.Fields{"phase": phase, "input": raw}).Debug("ignored non-numeric duration")
		engine.publishOptions()
	}
	return strconv.Itoa(engine.prefs.MinutesFor(phase))
}

// SetLongBreakFrequency applies raw text as the number of Work phases per long
// break and returns the canonical text of the stored value.
func (engine *Engine) SetLongBreakFrequency(raw string) string {
	if frequency, ok := ParseCount(raw); ok {
		engine.prefs.LongBreakFrequency = frequency
		engine.applyCountChange("long_break_frequency", frequency)
	} else {
		log.WithField("input", raw).Debug("ignored non-numeric frequency")
		engine.publishOptions()
	}
	return strconv.Itoa(engine.prefs.LongBreakFrequency)
}

// SetSfxVolume stores the cue volume on the 0-100 scale.
func (engine *Engine) SetSfxVolume(volume float64) {
	engine.prefs.SfxVolume = model.ClampVolume(volume)
	if engine.sinks.Cues != nil {
		engine.sinks.Cues.SetVolume(engine.prefs.SfxVolume)
	}
	engine.persist()
	engine.publishOptions()
}

// SetUpperColor stores the tint of the upper bar.
func (engine *Engine) SetUpperColor(c color.Color) {
	engine.prefs.UpperTimerColor = model.ToNRGBA(c)
	engine.persist()
	engine.publishColors()
	engine.publishOptions()
}

// SetLowerColor stores the tint of the lower bar.
func (engine *Engine) SetLowerColor(c color.Color) {
	engine.prefs.LowerTimerColor = model.ToNRGBA(c)
	engine.persist()
	engine.publishColors()
	engine.publishOptions()
}

// RestoreDefault puts a single field back to its default value.
func (engine *Engine) RestoreDefault(field model.Field) {
	switch field {
	case model.FieldSfxVolume:
		engine.SetSfxVolume(engine.defaults.SfxVolume)
	case model.FieldUpperTimerColor:
		engine.SetUpperColor(engine.defaults.UpperTimerColor)
	case model.FieldLowerTimerColor:
		engine.SetLowerColor(engine.defaults.LowerTimerColor)
	case model.FieldLongBreakFrequency:
		engine.SetLongBreakFrequency(strconv.Itoa(engine.defaults.LongBreakFrequency))
	default:
		if phase, ok := field.DurationPhase(); ok {
			engine.SetDuration(phase, strconv.Itoa(engine.defaults.MinutesFor(phase)))
		}
	}
}

// SetWindowSize records the timer window size. Non-positive sizes are ignored.
func (engine *Engine) SetWindowSize(size model.Extent) {
	if size.Width <= 0 || size.Height <= 0 || size == engine.prefs.WindowSize {
		return
	}
	engine.prefs.WindowSize = size
	engine.persist()
}

// Phase returns the current phase.
func (engine *Engine) Phase() model.Phase {
	return engine.phase
}

// Remaining returns the milliseconds left in the current phase.
func (engine *Engine) Remaining() float64 {
	return engine.remaining
}

// PhaseTotal returns the length of the current phase in milliseconds, as
// captured when the phase started.
func (engine *Engine) PhaseTotal() int64 {
	return engine.phaseTotal
}

// Active reports whether the countdown is running.
func (engine *Engine) Active() bool {
	return engine.active
}

// Fresh reports whether the session has not been started since the last reset.
func (engine *Engine) Fresh() bool {
	return engine.fresh
}

// WorkPhasesSinceLongBreak returns the completed Work phases since the last long break.
func (engine *Engine) WorkPhasesSinceLongBreak() int {
	return engine.workPhasesSinceLongBreak
}

// Ratios returns the upper and lower bar fractions.
func (engine *Engine) Ratios() (upper, lower float64) {
	return engine.upper, engine.lower
}

// TimeText returns the remaining time as M:SS.
func (engine *Engine) TimeText() string {
	return engine.timeText
}

// Preferences returns a copy of the current preferences.
func (engine *Engine) Preferences() model.Preferences {
	return engine.prefs
}

// Customized reports which fields differ from their defaults.
func (engine *Engine) Customized() map[model.Field]bool {
	return engine.prefs.Customized(engine.defaults)
}

func (engine *Engine) applyCountChange(field string, value int) {
	log.WithFields(logrus.Fields{"field": field, "value": value}).Info("preference changed")
	engine.persist()
	if engine.fresh {
		engine.Reset()
	}
	engine.publishOptions()
}

func (engine *Engine) resetValues() {
	engine.active = false
	engine.fresh = true
	engine.workPhasesSinceLongBreak = 0
	engine.setPhase(model.PhaseWork)
}

func (engine *Engine) advance() {
	next, counter := AdvancePhase(engine.phase, engine.workPhasesSinceLongBreak, engine.prefs.LongBreakFrequency)
	log.WithFields(logrus.Fields{
		"from":                     engine.phase,
		"to":                       next,
		"workPhasesSinceLongBreak": counter,
	}).Info("phase complete")

	engine.workPhasesSinceLongBreak = counter
	engine.setPhase(next)
	engine.playCue(CueFor(next))
	if engine.sinks.Display != nil {
		engine.sinks.Display.ShowPhase(next)
	}
}

func (engine *Engine) setPhase(phase model.Phase) {
	engine.phase = phase
	engine.phaseTotal = int64(engine.prefs.MinutesFor(phase)) * millisecondsPerMinute
	engine.remaining = float64(engine.phaseTotal)
}

func (engine *Engine) updateRatios() {
	fraction := 0.0
	if engine.phaseTotal > 0 {
		fraction = engine.remaining / float64(engine.phaseTotal)
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	if engine.phase == model.PhaseWork {
		engine.upper = 1 - fraction
		engine.lower = fraction
	} else {
		engine.upper = fraction
		engine.lower = 1 - fraction
	}
	engine.timeText = FormatRemaining(engine.remaining)
}

func (engine *Engine) playCue(cue Cue) {
	if engine.sinks.Cues != nil {
		engine.sinks.Cues.PlayCue(cue)
	}
}

func (engine *Engine) persist() {
	if engine.sinks.Store == nil {
		return
	}
	if err := engine.sinks.Store.Save(engine.prefs); err != nil {
		log.WithError(err).Error("failed to save preferences")
	}
}

func (engine *Engine) publishProgress() {
	previousText := engine.timeText
	engine.updateRatios()
	if engine.sinks.Display == nil {
		return
	}
	engine.sinks.Display.ShowRatios(engine.upper, engine.lower)
	if engine.timeText != previousText {
		engine.sinks.Display.ShowTime(engine.timeText)
	}
}

func (engine *Engine) publishColors() {
	if engine.sinks.Display != nil {
		engine.sinks.Display.ShowColors(engine.prefs.UpperTimerColor, engine.prefs.LowerTimerColor)
	}
}

func (engine *Engine) publishOptions() {
	if engine.sinks.Options != nil {
		engine.sinks.Options.ShowPreferences(engine.prefs, engine.Customized())
	}
}

func (engine *Engine) publishAll() {
	if display := engine.sinks.Display; display != nil {
		display.ShowPhase(engine.phase)
		display.ShowTime(engine.timeText)
		display.ShowRatios(engine.upper, engine.lower)
		display.ShowActive(engine.active)
	}
	engine.publishColors()
	engine.publishOptions()
}
