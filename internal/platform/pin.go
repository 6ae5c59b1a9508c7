package platform

import (
	"errors"

	"fyne.io/fyne/v2"
)

// ErrPinUnsupported is returned when the window manager cannot be asked to keep a window on top.
var ErrPinUnsupported = errors.New("always-on-top unsupported")

// WindowPinner keeps a window above all others where the OS allows it.
type WindowPinner interface {
	// Supported reports whether pinning works on this platform. Callers hide
	// the pin control when it does not.
	Supported() bool
	SetAlwaysOnTop(onTop bool) error
	AlwaysOnTop() bool
}

// NewWindowPinner returns the pinner for window on the current platform.
func NewWindowPinner(window fyne.Window) WindowPinner {
	return newWindowPinner(window)
}

type unsupportedPinner struct{}

func (unsupportedPinner) Supported() bool { return false }

func (unsupportedPinner) SetAlwaysOnTop(bool) error { return ErrPinUnsupported }

func (unsupportedPinner) AlwaysOnTop() bool { return false }
