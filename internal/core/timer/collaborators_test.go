package timer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"pomotimer/internal/core/model"
)

func TestCueFor(t *testing.T) {
	assert.Equal(t, CueWorkStart, CueFor(model.PhaseWork))
	assert.Equal(t, CueShortBreakStart, CueFor(model.PhaseShortBreak))
	assert.Equal(t, CueLongBreakStart, CueFor(model.PhaseLongBreak))
}

func TestMultiDisplay(t *testing.T) {
	first := &recordingDisplay{}
	second := &recordingDisplay{}
	display := MultiDisplay(first, nil, second)

	display.ShowPhase(model.PhaseLongBreak)
	display.ShowTime("3:00")
	display.ShowRatios(0.25, 0.75)
	display.ShowColors(color.NRGBA{R: 1, A: 255}, color.NRGBA{B: 1, A: 255})
	display.ShowActive(true)

	for _, recorded := range []*recordingDisplay{first, second} {
		assert.Equal(t, []model.Phase{model.PhaseLongBreak}, recorded.phases)
		assert.Equal(t, []string{"3:00"}, recorded.times)
		assert.Equal(t, []ratioSample{{phase: model.PhaseLongBreak, upper: 0.25, lower: 0.75}}, recorded.ratios)
		assert.Equal(t, color.NRGBA{R: 1, A: 255}, recorded.upper)
		assert.Equal(t, []bool{true}, recorded.actives)
	}
}
