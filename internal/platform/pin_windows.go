//go:build windows

package platform

import (
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0)     // (HWND)-1
	hwndNoTopmost = ^uintptr(0) - 1 // (HWND)-2

	user32DLL        = syscall.NewLazyDLL("user32.dll")
	procSetWindowPos = user32DLL.NewProc("SetWindowPos")
)

type win32Pinner struct {
	window driver.NativeWindow
	onTop  bool
}

func newWindowPinner(window fyne.Window) WindowPinner {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return unsupportedPinner{}
	}
	return &win32Pinner{window: nativeWindow}
}

func (pinner *win32Pinner) Supported() bool {
	return true
}

func (pinner *win32Pinner) AlwaysOnTop() bool {
	return pinner.onTop
}

func (pinner *win32Pinner) SetAlwaysOnTop(onTop bool) error {
	var callErr error
	pinner.window.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			callErr = ErrPinUnsupported
			return
		}
		if hwnd == 0 {
			callErr = ErrPinUnsupported
			return
		}

		insertAfter := hwndNoTopmost
		if onTop {
			insertAfter = hwndTopmost
		}
		result, _, err := procSetWindowPos.Call(hwnd, insertAfter, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
		if result == 0 {
			callErr = err
		}
	})
	if callErr != nil {
		return callErr
	}
	pinner.onTop = onTop
	return nil
}
