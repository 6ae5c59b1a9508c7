package timerview

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotimer/internal/core/model"
)

func TestRatioLayout(t *testing.T) {
	tests := []struct {
		name       string
		upper      float64
		lower      float64
		wantTop    float32
		wantBottom float32
	}{
		{name: "fresh work", upper: 0, lower: 1, wantTop: 0, wantBottom: 400},
		{name: "quarter", upper: 0.25, lower: 0.75, wantTop: 100, wantBottom: 300},
		{name: "full", upper: 1, lower: 0, wantTop: 400, wantBottom: 0},
		{name: "degenerate", upper: 0, lower: 0, wantTop: 200, wantBottom: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := canvas.NewRectangle(color.Black)
			bottom := canvas.NewRectangle(color.White)
			layout := newRatioLayout()
			layout.setRatios(tt.upper, tt.lower)

			layout.Layout([]fyne.CanvasObject{top, bottom}, fyne.NewSize(300, 400))

			assert.Equal(t, fyne.NewPos(0, 0), top.Position())
			assert.InDelta(t, tt.wantTop, top.Size().Height, 0.01)
			assert.InDelta(t, tt.wantBottom, bottom.Size().Height, 0.01)
			assert.InDelta(t, tt.wantTop, bottom.Position().Y, 0.01)
			assert.Equal(t, float32(300), bottom.Size().Width)
		})
	}
}

type counters struct {
	toggles      int
	resets       int
	options      int
	pins         int
	closeOptions int
	optionsOpen  bool
}

func newTestView(t *testing.T) (*Window, *counters) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	count := &counters{}
	view := New(app, model.DefaultPreferences(), Callbacks{
		OnTogglePause:  func() { count.toggles++ },
		OnReset:        func() { count.resets++ },
		OnOptions:      func() { count.options++ },
		OnTogglePin:    func() { count.pins++ },
		OnCloseOptions: func() { count.closeOptions++ },
		OptionsOpen:    func() bool { return count.optionsOpen },
	})
	return view, count
}

func typeKey(view *Window, name fyne.KeyName) {
	view.Window().Canvas().OnTypedKey()(&fyne.KeyEvent{Name: name})
}

func TestLabelFontsExistInTheme(t *testing.T) {
	view, _ := newTestView(t)
	current := fyne.CurrentApp().Settings().Theme()

	assert.NotNil(t, current.Font(view.timeLabel.TextStyle))
	assert.NotNil(t, current.Font(view.phaseLabel.TextStyle))
}

func TestDisplayUpdates(t *testing.T) {
	view, _ := newTestView(t)

	view.ShowPhase(model.PhaseShortBreak)
	view.ShowTime("4:59")
	view.ShowRatios(0.8, 0.2)
	upper := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	lower := color.NRGBA{R: 40, G: 50, B: 60, A: 255}
	view.ShowColors(upper, lower)

	assert.Equal(t, "Short break", view.phaseLabel.Text)
	assert.Equal(t, "4:59", view.timeLabel.Text)
	assert.Equal(t, float32(0.8), view.ratios.upper)
	assert.Equal(t, float32(0.2), view.ratios.lower)
	assert.Equal(t, upper, view.upperBar.FillColor)
	assert.Equal(t, lower, view.lowerBar.FillColor)
}

func TestShowActiveSwitchesIcon(t *testing.T) {
	view, _ := newTestView(t)

	view.ShowActive(true)
	assert.Equal(t, theme.MediaPauseIcon().Name(), view.pauseButton.Icon.Name())
	view.ShowActive(false)
	assert.Equal(t, theme.MediaPlayIcon().Name(), view.pauseButton.Icon.Name())
}

func TestKeyboardShortcuts(t *testing.T) {
	view, count := newTestView(t)

	typeKey(view, fyne.KeySpace)
	typeKey(view, fyne.KeyR)
	typeKey(view, fyne.KeyO)
	typeKey(view, fyne.KeyP)
	typeKey(view, fyne.KeyEscape)

	assert.Equal(t, 1, count.toggles)
	assert.Equal(t, 1, count.resets)
	assert.Equal(t, 1, count.options)
	assert.Equal(t, 1, count.pins)
	assert.Equal(t, 0, count.closeOptions)
}

func TestKeyboardWhileOptionsOpen(t *testing.T) {
	view, count := newTestView(t)
	count.optionsOpen = true

	typeKey(view, fyne.KeySpace)
	typeKey(view, fyne.KeyR)
	typeKey(view, fyne.KeyEscape)

	assert.Zero(t, count.toggles)
	assert.Zero(t, count.resets)
	assert.Equal(t, 1, count.closeOptions)
}

func TestPinHiddenWhenUnsupported(t *testing.T) {
	view, count := newTestView(t)

	view.SetPinSupported(false)
	require.False(t, view.pinButton.Visible())
	typeKey(view, fyne.KeyP)
	assert.Zero(t, count.pins)

	view.SetPinSupported(true)
	view.SetPinned(true)
	assert.Equal(t, theme.VisibilityIcon().Name(), view.pinButton.Icon.Name())
	typeKey(view, fyne.KeyP)
	assert.Equal(t, 1, count.pins)
}

func TestButtonsInvokeCallbacks(t *testing.T) {
	view, count := newTestView(t)

	test.Tap(view.pauseButton)
	test.Tap(view.resetButton)
	test.Tap(view.optionsButton)

	assert.Equal(t, 1, count.toggles)
	assert.Equal(t, 1, count.resets)
	assert.Equal(t, 1, count.options)
}
