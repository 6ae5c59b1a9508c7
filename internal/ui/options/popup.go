package options

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomotimer/internal/core/model"
)

var swatchSize = fyne.NewSize(48, 24)

// Callbacks routes option edits to the timer engine. The text callbacks
// return the canonical value the entry should show afterwards.
type Callbacks struct {
	OnVolume     func(volume float64)
	OnUpperColor func(c color.Color)
	OnLowerColor func(c color.Color)
	OnDuration   func(phase model.Phase, raw string) string
	OnFrequency  func(raw string) string
	OnRestore    func(field model.Field)
	OnClose      func()
}

// Popup is the modal options panel over the timer window. It implements
// timer.OptionsDisplay.
type Popup struct {
	parent      fyne.Window
	popup       *widget.PopUp
	callbacks   Callbacks
	prefs       model.Preferences
	volume      *widget.Slider
	volumeValue *widget.Label
	upperSwatch *canvas.Rectangle
	lowerSwatch *canvas.Rectangle
	entries     map[model.Field]*submitEntry
	restore     map[model.Field]*widget.Button
	// syncing is set while ShowPreferences writes into the controls so their
	// change handlers do not echo the values back.
	syncing bool
}

// New builds the popup for parent. It stays hidden until Show.
func New(parent fyne.Window, callbacks Callbacks) *Popup {
	options := &Popup{
		parent:    parent,
		callbacks: callbacks,
		prefs:     model.DefaultPreferences(),
		entries:   make(map[model.Field]*submitEntry),
		restore:   make(map[model.Field]*widget.Button),
	}

	options.volumeValue = widget.NewLabel("")
	options.volume = widget.NewSlider(model.MinVolume, model.MaxVolume)
	options.volume.Step = 1
	options.volume.OnChanged = func(value float64) {
		options.volumeValue.SetText(formatVolume(value))
	}
	options.volume.OnChangeEnded = func(value float64) {
		if options.syncing {
			return
		}
		if options.callbacks.OnVolume != nil {
			options.callbacks.OnVolume(value)
		}
	}

	options.upperSwatch = canvas.NewRectangle(options.prefs.UpperTimerColor)
	options.upperSwatch.SetMinSize(swatchSize)
	options.lowerSwatch = canvas.NewRectangle(options.prefs.LowerTimerColor)
	options.lowerSwatch.SetMinSize(swatchSize)
	upperPick := widget.NewButton("Change", func() {
		options.pickColor("Upper color", options.prefs.UpperTimerColor, options.callbacks.OnUpperColor)
	})
	lowerPick := widget.NewButton("Change", func() {
		options.pickColor("Lower color", options.prefs.LowerTimerColor, options.callbacks.OnLowerColor)
	})

	for _, field := range []model.Field{model.FieldWorkMinutes, model.FieldShortBreakMinutes, model.FieldLongBreakMinutes} {
		phase, _ := field.DurationPhase()
		options.entries[field] = newSubmitEntry(options.durationCommitter(phase, field))
	}
	options.entries[model.FieldLongBreakFrequency] = newSubmitEntry(func(text string) {
		if options.callbacks.OnFrequency == nil {
			return
		}
		options.entries[model.FieldLongBreakFrequency].SetText(options.callbacks.OnFrequency(text))
	})

	for _, field := range model.Fields {
		field := field
		button := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
			if options.callbacks.OnRestore != nil {
				options.callbacks.OnRestore(field)
			}
		})
		button.Hide()
		options.restore[field] = button
	}

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Sound volume"), options.row(model.FieldSfxVolume, container.NewBorder(nil, nil, nil, options.volumeValue, options.volume)),
		widget.NewLabel("Upper color"), options.row(model.FieldUpperTimerColor, container.NewHBox(options.upperSwatch, upperPick)),
		widget.NewLabel("Lower color"), options.row(model.FieldLowerTimerColor, container.NewHBox(options.lowerSwatch, lowerPick)),
		widget.NewLabel("Work (min)"), options.row(model.FieldWorkMinutes, options.entries[model.FieldWorkMinutes]),
		widget.NewLabel("Short break (min)"), options.row(model.FieldShortBreakMinutes, options.entries[model.FieldShortBreakMinutes]),
		widget.NewLabel("Long break (min)"), options.row(model.FieldLongBreakMinutes, options.entries[model.FieldLongBreakMinutes]),
		widget.NewLabel("Long break every"), options.row(model.FieldLongBreakFrequency, options.entries[model.FieldLongBreakFrequency]),
	)

	done := widget.NewButton("Done", options.Hide)
	content := container.NewVBox(
		widget.NewLabelWithStyle("Options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		container.NewHBox(layout.NewSpacer(), done),
	)
	options.popup = widget.NewModalPopUp(content, parent.Canvas())
	options.ShowPreferences(options.prefs, nil)
	return options
}

// Show opens the popup.
func (options *Popup) Show() {
	options.popup.Show()
}

// Hide commits any edited entries and closes the popup.
func (options *Popup) Hide() {
	options.commitPending()
	options.popup.Hide()
	if options.callbacks.OnClose != nil {
		options.callbacks.OnClose()
	}
}

// Visible reports whether the popup is open.
func (options *Popup) Visible() bool {
	return options.popup.Visible()
}

// ShowPreferences loads prefs into the controls. Restore buttons are shown
// only for the customized fields.
func (options *Popup) ShowPreferences(prefs model.Preferences, customized map[model.Field]bool) {
	options.prefs = prefs
	options.syncing = true
	defer func() {
		options.syncing = false
	}()

	options.volume.SetValue(prefs.SfxVolume)
	options.volumeValue.SetText(formatVolume(prefs.SfxVolume))

	options.upperSwatch.FillColor = prefs.UpperTimerColor
	options.upperSwatch.Refresh()
	options.lowerSwatch.FillColor = prefs.LowerTimerColor
	options.lowerSwatch.Refresh()

	for field, entry := range options.entries {
		entry.SetText(options.storedText(field))
	}

	for field, button := range options.restore {
		if customized[field] {
			button.Show()
		} else {
			button.Hide()
		}
	}
}

func (options *Popup) row(field model.Field, control fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, options.restore[field], control)
}

func (options *Popup) durationCommitter(phase model.Phase, field model.Field) func(string) {
	return func(text string) {
		if options.callbacks.OnDuration == nil {
			return
		}
		options.entries[field].SetText(options.callbacks.OnDuration(phase, text))
	}
}

func (options *Popup) commitPending() {
	for field, entry := range options.entries {
		if entry.Text != options.storedText(field) {
			entry.commit()
		}
	}
}

func (options *Popup) storedText(field model.Field) string {
	if field == model.FieldLongBreakFrequency {
		return strconv.Itoa(options.prefs.LongBreakFrequency)
	}
	phase, _ := field.DurationPhase()
	return strconv.Itoa(options.prefs.MinutesFor(phase))
}

func (options *Popup) pickColor(title string, current color.Color, apply func(color.Color)) {
	picker := dialog.NewColorPicker(title, "", func(c color.Color) {
		if apply != nil {
			apply(c)
		}
	}, options.parent)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

func formatVolume(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}
