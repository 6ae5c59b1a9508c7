package main

import (
	"context"
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"pomotimer/internal/core/frameloop"
	"pomotimer/internal/core/model"
	"pomotimer/internal/core/timer"
	"pomotimer/internal/platform"
	"pomotimer/internal/ui/notify"
	"pomotimer/internal/ui/options"
	"pomotimer/internal/ui/timerview"
	"pomotimer/internal/ui/tray"
)

func runGUI() error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logrus.Info("pomotimer is already running, bringing it to the front")
			if activateErr := platform.ActivateRunning(appName); activateErr != nil {
				logrus.WithError(activateErr).Warn("failed to activate running timer")
			}
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	file, err := openPreferences()
	if err != nil {
		return err
	}
	prefs := file.Load()
	logrus.WithField("path", file.Path()).Debug("loaded preferences")

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	var engine *timer.Engine
	var trayManager *tray.Manager
	var optionsPopup *options.Popup
	var togglePin func()

	desktopApp, hasTray := fyneApp.(desktop.App)
	var view *timerview.Window
	view = timerview.New(fyneApp, prefs, timerview.Callbacks{
		OnTogglePause:  func() { engine.TogglePauseResume() },
		OnReset:        func() { engine.Reset() },
		OnOptions:      func() { optionsPopup.Show() },
		OnTogglePin:    func() { togglePin() },
		OnCloseOptions: func() { optionsPopup.Hide() },
		OptionsOpen:    func() bool { return optionsPopup.Visible() },
		OnClose: func(size model.Extent) {
			engine.SetWindowSize(size)
			if hasTray {
				view.Window().Hide()
				return
			}
			fyneApp.Quit()
		},
	})

	pinner := platform.NewWindowPinner(view.Window())
	togglePin = func() {
		if !pinner.Supported() {
			return
		}
		onTop := !pinner.AlwaysOnTop()
		if err := pinner.SetAlwaysOnTop(onTop); err != nil {
			logrus.WithError(err).Warn("failed to change always-on-top")
			return
		}
		view.SetPinned(onTop)
		if trayManager != nil {
			trayManager.SetPinned(onTop)
		}
	}
	view.SetPinSupported(pinner.Supported())

	optionsPopup = options.New(view.Window(), options.Callbacks{
		OnVolume:     func(volume float64) { engine.SetSfxVolume(volume) },
		OnUpperColor: func(c color.Color) { engine.SetUpperColor(c) },
		OnLowerColor: func(c color.Color) { engine.SetLowerColor(c) },
		OnDuration:   func(phase model.Phase, raw string) string { return engine.SetDuration(phase, raw) },
		OnFrequency:  func(raw string) string { return engine.SetLongBreakFrequency(raw) },
		OnRestore:    func(field model.Field) { engine.RestoreDefault(field) },
		OnClose:      func() { view.Window().Canvas().Unfocus() },
	})

	displays := []timer.Display{view}
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnTogglePause: func() { engine.TogglePauseResume() },
			OnReset:       func() { engine.Reset() },
			OnOptions: func() {
				view.Show()
				optionsPopup.Show()
			},
			OnTogglePin: togglePin,
			OnQuit:      fyneApp.Quit,
		})
		trayManager.SetPinSupported(pinner.Supported())
		displays = append(displays, trayManager)
	} else {
		logrus.Info("system tray unsupported on this platform")
	}

	engine = timer.New(prefs, timer.Collaborators{
		Display: timer.MultiDisplay(displays...),
		Options: optionsPopup,
		Cues:    notify.New(fyneApp),
		Store:   file,
	})

	go guard.Serve(func() {
		fyne.Do(view.Show)
	})

	ctx, cancel := context.WithCancel(context.Background())
	loop := frameloop.New(frameloop.DefaultInterval, fyne.Do)
	fyneApp.Lifecycle().SetOnStarted(func() {
		go loop.Run(ctx, engine.Tick)
	})
	fyneApp.Lifecycle().SetOnStopped(func() {
		cancel()
		engine.SetWindowSize(view.Size())
	})

	view.Show()
	fyneApp.Run()
	cancel()
	return nil
}
