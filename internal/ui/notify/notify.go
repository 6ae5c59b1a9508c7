package notify

import (
	"math"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"pomotimer/internal/core/timer"
)

// Player announces phase starts with a desktop notification.
type Player struct {
	app    fyne.App
	volume float64
}

// New creates a player. app may be nil, in which case cues are only logged.
func New(app fyne.App) *Player {
	return &Player{app: app}
}

// SetVolume stores the cue volume on the 0-100 scale. Zero mutes cues.
func (player *Player) SetVolume(percent float64) {
	player.volume = percent
}

// Volume returns the stored volume.
func (player *Player) Volume() float64 {
	return player.volume
}

// PlayCue announces cue unless muted.
func (player *Player) PlayCue(cue timer.Cue) {
	entry := logrus.WithFields(logrus.Fields{
		"cue":      cue,
		"volumeDb": VolumeDb(player.volume),
	})
	if player.volume <= 0 {
		entry.Debug("cue muted")
		return
	}
	entry.Info("phase started")

	if player.app == nil {
		return
	}
	title, content := Message(cue)
	player.app.SendNotification(fyne.NewNotification(title, content))
}

// VolumeDb converts a 0-100 volume to decibels relative to full scale.
func VolumeDb(percent float64) float64 {
	if percent <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(percent/100)
}

// Message returns the notification text for a cue.
func Message(cue timer.Cue) (title, content string) {
	switch cue {
	case timer.CueShortBreakStart:
		return "Short break", "Step away for a few minutes."
	case timer.CueLongBreakStart:
		return "Long break", "Nice work. Take a proper rest."
	default:
		return "Work", "Time to focus."
	}
}
