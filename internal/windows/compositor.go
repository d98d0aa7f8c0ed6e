//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"unsafe"

	syswin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// compositor implements the Compositor and AppearanceManager interfaces on
// top of dwmapi and the undocumented SetWindowCompositionAttribute
type compositor struct {
	log logger.LoggerInterface
}

func newCompositor(log logger.LoggerInterface) *compositor {
	return &compositor{log: log}
}

func (c *compositor) IsCompositionEnabled() (bool, error) {
	if err := procDwmIsCompositionEnabled.Find(); err != nil {
		return false, err
	}

	var enabled int32
	hr, _, _ := procDwmIsCompositionEnabled.Call(uintptr(unsafe.Pointer(&enabled)))
	if hr != 0 {
		return false, hresultError("DwmIsCompositionEnabled", hr)
	}

	return enabled != 0, nil
}

func (c *compositor) EnableBlurBehind(hwnd uintptr, bb win32.BlurBehind) error {
	if err := procDwmEnableBlurBehindWindow.Find(); err != nil {
		return err
	}

	hr, _, _ := procDwmEnableBlurBehindWindow.Call(hwnd, uintptr(unsafe.Pointer(&bb)))
	if hr != 0 {
		return hresultError("DwmEnableBlurBehindWindow", hr)
	}

	c.log.Trace("Blur behind set", slog.Uint64("hwnd", uint64(hwnd)), slog.Bool("enabled", bb.Enable != 0))

	return nil
}

// SetAccentPolicy copies the accent record into a LocalAlloc block for the
// duration of the call; the block is freed on every path.
func (c *compositor) SetAccentPolicy(hwnd uintptr, accent win32.AccentPolicy) error {
	if err := procSetWindowCompositionAttribute.Find(); err != nil {
		return err
	}

	size := uint32(unsafe.Sizeof(accent))

	mem, err := syswin.LocalAlloc(lmemZeroInit, size)
	if err != nil {
		return fmt.Errorf("LocalAlloc: %w", err)
	}
	defer func() {
		if _, err := syswin.LocalFree(syswin.Handle(mem)); err != nil {
			c.log.Debug("LocalFree failed", slog.Any("error", err))
		}
	}()

	*ptrAt[win32.AccentPolicy](mem) = accent

	data := win32.WindowCompositionAttributeData{
		Attribute:  win32.WCA_ACCENT_POLICY,
		Data:       mem,
		SizeOfData: size,
	}

	ret, _, err := procSetWindowCompositionAttribute.Call(hwnd, uintptr(unsafe.Pointer(&data)))
	if ret == 0 {
		return fmt.Errorf("SetWindowCompositionAttribute: %w", err)
	}

	c.log.Trace("Accent policy set",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Uint64("state", uint64(accent.AccentState)),
		slog.Uint64("color", uint64(accent.GradientColor)))

	return nil
}

func (c *compositor) SetCornerPreference(hwnd uintptr, pref win32.CornerPreference) error {
	v := uint32(pref)

	err := syswin.DwmSetWindowAttribute(syswin.HWND(hwnd), win32.DWMWA_WINDOW_CORNER_PREFERENCE, unsafe.Pointer(&v), uint32(unsafe.Sizeof(v)))
	if err != nil {
		return fmt.Errorf("DwmSetWindowAttribute(corner preference): %w", err)
	}

	return nil
}

func (c *compositor) SetDarkMode(hwnd uintptr, enabled bool) error {
	var v int32
	if enabled {
		v = 1
	}

	err := syswin.DwmSetWindowAttribute(syswin.HWND(hwnd), win32.DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&v), uint32(unsafe.Sizeof(v)))
	if err != nil {
		return fmt.Errorf("DwmSetWindowAttribute(dark mode): %w", err)
	}

	return nil
}

// SetRoundedRegion clips the window to a rounded rectangle. A zero radius
// removes the region.
func (c *compositor) SetRoundedRegion(hwnd uintptr, width, height, radius int32) error {
	if radius == 0 {
		ret, _, err := procSetWindowRgn.Call(hwnd, 0, 1)
		if ret == 0 {
			return fmt.Errorf("SetWindowRgn: %w", err)
		}
		return nil
	}

	rgn, _, err := procCreateRoundRectRgn.Call(0, 0, uintptr(width+1), uintptr(height+1), uintptr(radius), uintptr(radius))
	if rgn == 0 {
		return fmt.Errorf("CreateRoundRectRgn: %w", err)
	}

	// The system owns the region once SetWindowRgn succeeds
	ret, _, err := procSetWindowRgn.Call(hwnd, rgn, 1)
	if ret == 0 {
		_, _, _ = procDeleteObject.Call(rgn)
		return fmt.Errorf("SetWindowRgn: %w", err)
	}

	return nil
}
