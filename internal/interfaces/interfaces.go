// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

import (
	"github.com/Norgate-AV/winfx/internal/hooks"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// Host is the window a set of operations is applied to
type Host interface {
	// Handle returns the native window handle, or 0 before the window exists.
	Handle() uintptr
	// HookSource returns the message source of the window, if the window's
	// procedure can be intercepted from this process.
	HookSource() (HookSource, bool)
	AddClosedHandler(h ClosedHandler)
	RemoveClosedHandler(h ClosedHandler)
}

// HookSource runs hooks on the messages of a window. Hooks are compared by
// identity, so the value passed to RemoveHook must be the one added.
type HookSource interface {
	AddHook(h hooks.Hook)
	RemoveHook(h hooks.Hook)
}

// ClosedHandler is notified once a host window has been destroyed
type ClosedHandler interface {
	WindowClosed(host Host)
}

// StyleManager reads and writes window styles
type StyleManager interface {
	Style(hwnd uintptr) (uint32, error)
	SetStyle(hwnd uintptr, style uint32) error
	ExtendedStyle(hwnd uintptr) (uint32, error)
	SetExtendedStyle(hwnd uintptr, style uint32) error
}

// PositionManager changes window position, size and z-order
type PositionManager interface {
	SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) error
	SetActiveWindow(hwnd uintptr) error
	SetForeground(hwnd uintptr) bool
	PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error
	RegisterWindowMessage(name string) (uint32, error)
}

// MonitorManager queries the display a window is on
type MonitorManager interface {
	MonitorFromWindow(hwnd uintptr, flags win32.MonitorDefault) uintptr
	MonitorInfo(monitor uintptr) (win32.MonitorInfo, error)
	DisplayDevice(deviceName string) (win32.DisplayDevice, error)
	ScaleFactor(monitor uintptr) (int, error)
	MonitorDpi(monitor uintptr) (win32.DpiScale, error)
}

// Compositor talks to the desktop window manager
type Compositor interface {
	IsCompositionEnabled() (bool, error)
	EnableBlurBehind(hwnd uintptr, bb win32.BlurBehind) error
	SetAccentPolicy(hwnd uintptr, accent win32.AccentPolicy) error
}

// AppearanceManager sets DWM attributes and window regions
type AppearanceManager interface {
	SetCornerPreference(hwnd uintptr, pref win32.CornerPreference) error
	SetDarkMode(hwnd uintptr, enabled bool) error
	SetRoundedRegion(hwnd uintptr, width, height, radius int32) error
}

// NativeAPI is everything window operations need from the OS
type NativeAPI interface {
	StyleManager
	PositionManager
	MonitorManager
	Compositor
	AppearanceManager
}

// WindowEnumerator lists top-level windows
type WindowEnumerator interface {
	EnumerateWindows() ([]win32.WindowInfo, error)
}
