package model

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, 2, prefs.Version)
	assert.Equal(t, 50.0, prefs.SfxVolume)
	assert.Equal(t, 25, prefs.WorkMinutes)
	assert.Equal(t, 5, prefs.ShortBreakMinutes)
	assert.Equal(t, 30, prefs.LongBreakMinutes)
	assert.Equal(t, 5, prefs.LongBreakFrequency)
	assert.Equal(t, "#ff7676ff", HexColor(prefs.UpperTimerColor))
	assert.Equal(t, "#8dd1ffff", HexColor(prefs.LowerTimerColor))
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"Zero", 0, 1},
		{"Negative", -20, 1},
		{"Lower bound", 1, 1},
		{"In range", 42, 42},
		{"Upper bound", 9999, 9999},
		{"Above range", 100000, 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampCount(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	prefs := Preferences{
		SfxVolume:          250,
		WorkMinutes:        0,
		ShortBreakMinutes:  -3,
		LongBreakMinutes:   20000,
		LongBreakFrequency: 4,
	}
	prefs.Normalize()

	assert.Equal(t, PreferencesVersion, prefs.Version)
	assert.Equal(t, 100.0, prefs.SfxVolume)
	assert.Equal(t, 1, prefs.WorkMinutes)
	assert.Equal(t, 1, prefs.ShortBreakMinutes)
	assert.Equal(t, 9999, prefs.LongBreakMinutes)
	assert.Equal(t, 4, prefs.LongBreakFrequency)
	assert.Equal(t, DefaultWindowSize, prefs.WindowSize)
}

func TestMinutesFor(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.SetMinutesFor(PhaseShortBreak, 7)
	prefs.SetMinutesFor(PhaseLongBreak, 0)
	prefs.SetMinutesFor(PhaseWork, 50)

	assert.Equal(t, 50, prefs.MinutesFor(PhaseWork))
	assert.Equal(t, 7, prefs.MinutesFor(PhaseShortBreak))
	assert.Equal(t, 1, prefs.MinutesFor(PhaseLongBreak))
}

func TestCustomized(t *testing.T) {
	defaults := DefaultPreferences()

	untouched := defaults.Customized(defaults)
	for _, field := range Fields {
		assert.False(t, untouched[field], "field %s", field)
	}

	prefs := defaults
	prefs.SfxVolume = 10
	prefs.LowerTimerColor = color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	prefs.LongBreakFrequency = 3

	customized := prefs.Customized(defaults)
	assert.True(t, customized[FieldSfxVolume])
	assert.False(t, customized[FieldUpperTimerColor])
	assert.True(t, customized[FieldLowerTimerColor])
	assert.False(t, customized[FieldWorkMinutes])
	assert.True(t, customized[FieldLongBreakFrequency])
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        color.NRGBA
		expectError bool
	}{
		{"Six digits", "#ff7676", color.NRGBA{R: 0xff, G: 0x76, B: 0x76, A: 0xff}, false},
		{"Eight digits", "#8dd1ff80", color.NRGBA{R: 0x8d, G: 0xd1, B: 0xff, A: 0x80}, false},
		{"No hash", "000000", color.NRGBA{A: 0xff}, false},
		{"Too short", "#fff", color.NRGBA{}, true},
		{"Not hex", "#zzzzzz", color.NRGBA{}, true},
		{"Empty", "", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	original := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	parsed, err := ParseHexColor(HexColor(original))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseField(t *testing.T) {
	for _, field := range Fields {
		parsed, ok := ParseField(field.String())
		assert.True(t, ok)
		assert.Equal(t, field, parsed)
	}
	_, ok := ParseField("opacity")
	assert.False(t, ok)
}
