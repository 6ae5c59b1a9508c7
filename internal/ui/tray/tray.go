package tray

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"pomotimer/internal/core/model"
)

const menuTitle = "Pomodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnReset       func()
	OnOptions     func()
	OnTogglePin   func()
	OnQuit        func()
}

// Manager handles system tray state. It implements timer.Display so the
// status line follows the countdown.
type Manager struct {
	app          desktop.App
	statusItem   *fyne.MenuItem
	pauseItem    *fyne.MenuItem
	pinItem      *fyne.MenuItem
	callbacks    Callbacks
	phase        model.Phase
	timeText     string
	active       bool
	pinned       bool
	pinSupported bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		timeText:  "--:--",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})
	manager.pinItem = fyne.NewMenuItem("Keep on top", func() {
		if manager.callbacks.OnTogglePin != nil {
			manager.callbacks.OnTogglePin()
		}
	})

	manager.refreshStatus()
	return manager
}

// StatusLabel returns the text of the status line.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// PauseLabel returns the text of the pause/resume item.
func (manager *Manager) PauseLabel() string {
	return manager.pauseItem.Label
}

// SetPinSupported adds or removes the pin item.
func (manager *Manager) SetPinSupported(supported bool) {
	manager.pinSupported = supported
	manager.refreshMenu()
}

// SetPinned marks the pin item as checked.
func (manager *Manager) SetPinned(pinned bool) {
	manager.pinned = pinned
	manager.pinItem.Checked = pinned
	manager.refreshMenu()
}

func (manager *Manager) ShowPhase(phase model.Phase) {
	manager.phase = phase
	manager.refreshStatus()
}

func (manager *Manager) ShowTime(text string) {
	manager.timeText = text
	manager.refreshStatus()
}

func (manager *Manager) ShowRatios(upper, lower float64) {}

func (manager *Manager) ShowColors(upper, lower color.NRGBA) {}

func (manager *Manager) ShowActive(active bool) {
	manager.active = active
	if active {
		manager.pauseItem.Label = "Pause"
	} else {
		manager.pauseItem.Label = "Resume"
	}
	if manager.app != nil {
		manager.app.SetSystemTrayIcon(trayIcon(active))
	}
	manager.refreshStatus()
}

func (manager *Manager) refreshStatus() {
	status := fmt.Sprintf("%s %s", manager.phase.Title(), manager.timeText)
	if !manager.active {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = status
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Options", func() {
			if manager.callbacks.OnOptions != nil {
				manager.callbacks.OnOptions()
			}
		}),
	}
	if manager.pinSupported {
		items = append(items, manager.pinItem)
	}
	items = append(items, fyne.NewMenuItemSeparator(), fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	}))
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle, items...))
}

// trayIcon is the app icon in the primary color while counting down and
// greyed out while paused.
func trayIcon(active bool) fyne.Resource {
	if active {
		return theme.NewPrimaryThemedResource(theme.HistoryIcon())
	}
	return theme.NewDisabledResource(theme.HistoryIcon())
}
