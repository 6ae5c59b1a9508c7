//go:build !windows

package platform

import "fyne.io/fyne/v2"

func newWindowPinner(fyne.Window) WindowPinner {
	return unsupportedPinner{}
}
