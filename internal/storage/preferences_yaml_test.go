package storage

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotimer/internal/core/model"
)

func writeFile(t *testing.T, store *Store, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(store.Dir(), 0o755))
	require.NoError(t, os.WriteFile(store.Path(name), []byte(content), 0o644))
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	prefs := store.Load("prefs.yml")

	assert.Equal(t, model.DefaultPreferences(), prefs)
	assert.Equal(t, 25, prefs.WorkMinutes)
	assert.Equal(t, 5, prefs.ShortBreakMinutes)
	assert.Equal(t, 30, prefs.LongBreakMinutes)
	assert.Equal(t, 5, prefs.LongBreakFrequency)
	assert.Equal(t, 50.0, prefs.SfxVolume)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir"))
	original := model.Preferences{
		Version:            2,
		SfxVolume:          33.3,
		UpperTimerColor:    color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44},
		LowerTimerColor:    color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff},
		WorkMinutes:        50,
		ShortBreakMinutes:  10,
		LongBreakMinutes:   9999,
		LongBreakFrequency: 1,
		WindowSize:         model.Extent{Width: 401.5, Height: 612},
	}

	require.NoError(t, store.Save("prefs.yml", original))
	loaded := store.Load("prefs.yml")

	assert.Equal(t, original, loaded)
}

func TestSaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())
	first := model.DefaultPreferences()
	first.WorkMinutes = 40
	second := model.DefaultPreferences()
	second.WorkMinutes = 45

	require.NoError(t, store.Save("prefs.yml", first))
	require.NoError(t, store.Save("prefs.yml", second))

	assert.Equal(t, 45, store.Load("prefs.yml").WorkMinutes)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSavedFileFormat(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save("prefs.yml", model.DefaultPreferences()))

	raw, err := os.ReadFile(store.Path("prefs.yml"))
	require.NoError(t, err)

	content := string(raw)
	for _, key := range []string{
		"version: 2",
		"sfx_volume: 50",
		"upper_timer_color:",
		"#ff7676ff",
		"lower_timer_color:",
		"#8dd1ffff",
		"work_minutes: 25",
		"short_break_minutes: 5",
		"long_break_minutes: 30",
		"long_break_frequency: 5",
		"window_size:",
	} {
		assert.Contains(t, content, key)
	}
}

func TestLoadPartialFile(t *testing.T) {
	store := NewStore(t.TempDir())
	writeFile(t, store, "prefs.yml", "work_minutes: 45\nupper_timer_color: '#000000'\nunknown_key: true\n")

	prefs := store.Load("prefs.yml")

	defaults := model.DefaultPreferences()
	assert.Equal(t, 45, prefs.WorkMinutes)
	assert.Equal(t, color.NRGBA{A: 0xff}, prefs.UpperTimerColor)
	assert.Equal(t, defaults.LowerTimerColor, prefs.LowerTimerColor)
	assert.Equal(t, defaults.ShortBreakMinutes, prefs.ShortBreakMinutes)
	assert.Equal(t, defaults.SfxVolume, prefs.SfxVolume)
	assert.Equal(t, defaults.WindowSize, prefs.WindowSize)
	assert.Equal(t, model.PreferencesVersion, prefs.Version)
}

func TestLoadClampsValues(t *testing.T) {
	store := NewStore(t.TempDir())
	writeFile(t, store, "prefs.yml", `
sfx_volume: 400
work_minutes: 0
short_break_minutes: -5
long_break_minutes: 123456
long_break_frequency: 3
window_size:
  width: -1
  height: 200
`)

	prefs := store.Load("prefs.yml")

	assert.Equal(t, 100.0, prefs.SfxVolume)
	assert.Equal(t, 1, prefs.WorkMinutes)
	assert.Equal(t, 1, prefs.ShortBreakMinutes)
	assert.Equal(t, 9999, prefs.LongBreakMinutes)
	assert.Equal(t, 3, prefs.LongBreakFrequency)
	assert.Equal(t, model.DefaultWindowSize, prefs.WindowSize)
}

func TestLoadInvalidColorKeepsDefault(t *testing.T) {
	store := NewStore(t.TempDir())
	writeFile(t, store, "prefs.yml", "lower_timer_color: blue\nwork_minutes: 20\n")

	prefs := store.Load("prefs.yml")

	assert.Equal(t, model.DefaultPreferences().LowerTimerColor, prefs.LowerTimerColor)
	assert.Equal(t, 20, prefs.WorkMinutes)
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Not yaml", "{{{ not: [valid"},
		{"Wrong type", "work_minutes: lots\n"},
		{"Top level list", "- 1\n- 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(t.TempDir())
			writeFile(t, store, "prefs.yml", tt.content)

			assert.Equal(t, model.DefaultPreferences(), store.Load("prefs.yml"))
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	store := NewStore(t.TempDir())
	writeFile(t, store, "prefs.yml", "")

	assert.Equal(t, model.DefaultPreferences(), store.Load("prefs.yml"))
}

func TestPreferencesFile(t *testing.T) {
	store := NewStore(t.TempDir())
	file := store.File("bound.yml")
	prefs := model.DefaultPreferences()
	prefs.ShortBreakMinutes = 7

	require.NoError(t, file.Save(prefs))

	assert.Equal(t, store.Path("bound.yml"), file.Path())
	assert.Equal(t, 7, file.Load().ShortBreakMinutes)
	assert.Equal(t, 7, store.Load("bound.yml").ShortBreakMinutes)
}

func TestRemove(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save("prefs.yml", model.DefaultPreferences()))

	require.NoError(t, store.Remove("prefs.yml"))
	require.NoError(t, store.Remove("prefs.yml"))

	_, err := os.Stat(store.Path("prefs.yml"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveIntoFileFails(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := NewStore(filepath.Join(blocker, "dir"))
	err := store.Save("prefs.yml", model.DefaultPreferences())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "create preferences directory")
}
