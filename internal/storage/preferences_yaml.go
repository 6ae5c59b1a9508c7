package storage

import (
	"errors"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"pomotimer/internal/core/model"
	"pomotimer/internal/platform"
)

// DefaultFileName is the preferences file used when none is configured.
const DefaultFileName = "preferences.yml"

type yamlExtent struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type yamlPreferences struct {
	Version            int        `yaml:"version"`
	SfxVolume          float64    `yaml:"sfx_volume"`
	UpperTimerColor    string     `yaml:"upper_timer_color"`
	LowerTimerColor    string     `yaml:"lower_timer_color"`
	WorkMinutes        int        `yaml:"work_minutes"`
	ShortBreakMinutes  int        `yaml:"short_break_minutes"`
	LongBreakMinutes   int        `yaml:"long_break_minutes"`
	LongBreakFrequency int        `yaml:"long_break_frequency"`
	WindowSize         yamlExtent `yaml:"window_size"`
}

// Store reads and writes named preference files in one directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns a store in the per-user configuration directory of appName.
func DefaultStore(appName string) (*Store, error) {
	dir, err := platform.AppConfigDir(appName)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "resolve preferences directory")
	}
	return NewStore(dir), nil
}

// Dir returns the directory the store writes to.
func (store *Store) Dir() string {
	return store.dir
}

// Path returns the full path of the named file.
func (store *Store) Path(name string) string {
	return filepath.Join(store.dir, name)
}

// Load reads the named preferences file. A missing, unreadable or malformed
// file yields the defaults; keys absent from the file keep their default value.
func (store *Store) Load(name string) model.Preferences {
	prefs := model.DefaultPreferences()
	path := store.Path(name)
	entry := logrus.WithField("path", path)

	rawData, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			entry.WithError(err).Warn("cannot read preferences, using defaults")
		}
		return prefs
	}

	fileData := toYaml(prefs)
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		entry.WithError(err).Warn("cannot parse preferences, using defaults")
		return model.DefaultPreferences()
	}

	applyYamlPreferences(&prefs, fileData, entry)
	return prefs
}

// Save replaces the named preferences file with prefs.
func (store *Store) Save(name string, prefs model.Preferences) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return pkgerrors.Wrap(err, "create preferences directory")
	}

	serialized, err := yaml.Marshal(toYaml(prefs))
	if err != nil {
		return pkgerrors.Wrap(err, "marshal preferences yaml")
	}

	path := store.Path(name)
	tmp, err := os.CreateTemp(store.dir, name+".*.tmp")
	if err != nil {
		return pkgerrors.Wrap(err, "create temporary preferences file")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(serialized); err != nil {
		_ = tmp.Close()
		return pkgerrors.Wrap(err, "write preferences file")
	}
	if err := tmp.Close(); err != nil {
		return pkgerrors.Wrap(err, "close preferences file")
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return pkgerrors.Wrap(err, "chmod preferences file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return pkgerrors.Wrapf(err, "replace %s", path)
	}

	logrus.WithField("path", path).Debug("preferences saved")
	return nil
}

// Remove deletes the named file. A missing file is not an error.
func (store *Store) Remove(name string) error {
	if err := os.Remove(store.Path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return pkgerrors.Wrap(err, "remove preferences file")
	}
	return nil
}

// File binds a file name to the store.
func (store *Store) File(name string) *PreferencesFile {
	return &PreferencesFile{store: store, name: name}
}

// PreferencesFile is a single named preferences file.
type PreferencesFile struct {
	store *Store
	name  string
}

// Load reads the file; see Store.Load.
func (file *PreferencesFile) Load() model.Preferences {
	return file.store.Load(file.name)
}

// Save writes the file; see Store.Save.
func (file *PreferencesFile) Save(prefs model.Preferences) error {
	return file.store.Save(file.name, prefs)
}

// Path returns the file location.
func (file *PreferencesFile) Path() string {
	return file.store.Path(file.name)
}

func toYaml(prefs model.Preferences) yamlPreferences {
	return yamlPreferences{
		Version:            prefs.Version,
		SfxVolume:          prefs.SfxVolume,
		UpperTimerColor:    model.HexColor(prefs.UpperTimerColor),
		LowerTimerColor:    model.HexColor(prefs.LowerTimerColor),
		WorkMinutes:        prefs.WorkMinutes,
		ShortBreakMinutes:  prefs.ShortBreakMinutes,
		LongBreakMinutes:   prefs.LongBreakMinutes,
		LongBreakFrequency: prefs.LongBreakFrequency,
		WindowSize: yamlExtent{
			Width:  prefs.WindowSize.Width,
			Height: prefs.WindowSize.Height,
		},
	}
}

func applyYamlPreferences(prefs *model.Preferences, fileData yamlPreferences, entry *logrus.Entry) {
	prefs.Version = fileData.Version
	prefs.SfxVolume = fileData.SfxVolume
	prefs.WorkMinutes = fileData.WorkMinutes
	prefs.ShortBreakMinutes = fileData.ShortBreakMinutes
	prefs.LongBreakMinutes = fileData.LongBreakMinutes
	prefs.LongBreakFrequency = fileData.LongBreakFrequency
	prefs.WindowSize = model.Extent{Width: fileData.WindowSize.Width, Height: fileData.WindowSize.Height}

	if upper, err := model.ParseHexColor(fileData.UpperTimerColor); err == nil {
		prefs.UpperTimerColor = upper
	} else {
		entry.WithError(err).Warn("invalid upper timer color, using default")
	}
	if lower, err := model.ParseHexColor(fileData.LowerTimerColor); err == nil {
		prefs.LowerTimerColor = lower
	} else {
		entry.WithError(err).Warn("invalid lower timer color, using default")
	}

	prefs.Normalize()
}
