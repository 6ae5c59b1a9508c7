package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomotimer/internal/core/model"
)

const (
	timeTextSize  = 56
	phaseTextSize = 16
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnTogglePause  func()
	OnReset        func()
	OnOptions      func()
	OnTogglePin    func()
	OnCloseOptions func()
	// OptionsOpen reports whether the options popup covers the window. While
	// it does, only Escape is handled.
	OptionsOpen func() bool
	// OnClose receives the final canvas size. When nil the window just closes.
	OnClose func(size model.Extent)
}

// Window is the main timer window. It implements timer.Display.
type Window struct {
	window        fyne.Window
	callbacks     Callbacks
	ratios        *ratioLayout
	bars          *fyne.Container
	upperBar      *canvas.Rectangle
	lowerBar      *canvas.Rectangle
	timeLabel     *canvas.Text
	phaseLabel    *canvas.Text
	pauseButton   *widget.Button
	resetButton   *widget.Button
	optionsButton *widget.Button
	pinButton     *widget.Button
	active        bool
	pinned        bool
}

// New creates the timer window sized from prefs.
func New(app fyne.App, prefs model.Preferences, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	upperBar := canvas.NewRectangle(prefs.UpperTimerColor)
	lowerBar := canvas.NewRectangle(prefs.LowerTimerColor)
	ratios := newRatioLayout()
	bars := container.New(ratios, upperBar, lowerBar)

	foreground := theme.Color(theme.ColorNameForeground)
	timeLabel := canvas.NewText("--:--", foreground)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	timeLabel.TextSize = timeTextSize

	phaseLabel := canvas.NewText("", foreground)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextSize = phaseTextSize

	view := &Window{
		window:     window,
		callbacks:  callbacks,
		ratios:     ratios,
		bars:       bars,
		upperBar:   upperBar,
		lowerBar:   lowerBar,
		timeLabel:  timeLabel,
		phaseLabel: phaseLabel,
	}

	view.pauseButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if view.callbacks.OnTogglePause != nil {
			view.callbacks.OnTogglePause()
		}
	})
	view.resetButton = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})
	view.optionsButton = widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if view.callbacks.OnOptions != nil {
			view.callbacks.OnOptions()
		}
	})
	view.pinButton = widget.NewButtonWithIcon("", theme.VisibilityOffIcon(), func() {
		if view.callbacks.OnTogglePin != nil {
			view.callbacks.OnTogglePin()
		}
	})

	labels := container.NewVBox(phaseLabel, timeLabel)
	buttons := container.NewHBox(view.pauseButton, view.resetButton, layout.NewSpacer(), view.pinButton, view.optionsButton)
	root := container.NewBorder(nil, container.NewPadded(buttons), nil, nil, container.NewStack(bars, container.NewCenter(labels)))
	window.SetContent(root)

	size := prefs.WindowSize
	if size.Width <= 0 || size.Height <= 0 {
		size = model.DefaultWindowSize
	}
	window.Resize(fyne.NewSize(size.Width, size.Height))

	window.Canvas().SetOnTypedKey(view.typedKey)
	window.SetCloseIntercept(func() {
		if view.callbacks.OnClose == nil {
			window.Close()
			return
		}
		view.callbacks.OnClose(view.Size())
	})

	return view
}

// Window returns the underlying Fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Size returns the current canvas size.
func (view *Window) Size() model.Extent {
	size := view.window.Canvas().Size()
	return model.Extent{Width: size.Width, Height: size.Height}
}

// SetPinSupported hides the pin control on platforms that cannot pin.
func (view *Window) SetPinSupported(supported bool) {
	if supported {
		view.pinButton.Show()
		return
	}
	view.pinButton.Hide()
}

// SetPinned switches the pin icon.
func (view *Window) SetPinned(pinned bool) {
	view.pinned = pinned
	if pinned {
		view.pinButton.SetIcon(theme.VisibilityIcon())
		return
	}
	view.pinButton.SetIcon(theme.VisibilityOffIcon())
}

// ShowPhase updates the phase caption.
func (view *Window) ShowPhase(phase model.Phase) {
	view.phaseLabel.Text = phase.Title()
	view.phaseLabel.Refresh()
}

// ShowTime updates the countdown text.
func (view *Window) ShowTime(text string) {
	view.timeLabel.Text = text
	view.timeLabel.Refresh()
}

// ShowRatios resizes the two bars.
func (view *Window) ShowRatios(upper, lower float64) {
	view.ratios.setRatios(upper, lower)
	view.bars.Refresh()
}

// ShowColors tints the two bars.
func (view *Window) ShowColors(upper, lower color.NRGBA) {
	view.upperBar.FillColor = upper
	view.upperBar.Refresh()
	view.lowerBar.FillColor = lower
	view.lowerBar.Refresh()
}

// ShowActive switches the pause button between play and pause.
func (view *Window) ShowActive(active bool) {
	view.active = active
	if active {
		view.pauseButton.SetIcon(theme.MediaPauseIcon())
		return
	}
	view.pauseButton.SetIcon(theme.MediaPlayIcon())
}

func (view *Window) typedKey(event *fyne.KeyEvent) {
	if view.callbacks.OptionsOpen != nil && view.callbacks.OptionsOpen() {
		if event.Name == fyne.KeyEscape && view.callbacks.OnCloseOptions != nil {
			view.callbacks.OnCloseOptions()
		}
		return
	}

	var handler func()
	switch event.Name {
	case fyne.KeySpace:
		handler = view.callbacks.OnTogglePause
	case fyne.KeyR:
		handler = view.callbacks.OnReset
	case fyne.KeyO:
		handler = view.callbacks.OnOptions
	case fyne.KeyP:
		if view.pinButton.Visible() {
			handler = view.callbacks.OnTogglePin
		}
	}
	if handler != nil {
		handler()
	}
}
