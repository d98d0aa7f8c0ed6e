package window

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winfx/internal/win32"
)

// MonitorInfo returns the display monitor the window is on. flags decides
// which monitor is used when the window is not on any display.
func (w *Window) MonitorInfo(flags win32.MonitorDefault) (win32.MonitorInfo, error) {
	monitor, err := w.monitor(flags)
	if err != nil {
		return win32.MonitorInfo{}, err
	}

	info, err := w.api.MonitorInfo(monitor)
	if err != nil {
		return win32.MonitorInfo{}, fmt.Errorf("failed to get monitor info: %w", err)
	}

	return info, nil
}

// TryMonitorInfo is MonitorInfo without the error detail
func (w *Window) TryMonitorInfo(flags win32.MonitorDefault) (win32.MonitorInfo, bool) {
	info, err := w.MonitorInfo(flags)
	if err != nil {
		w.log.Debug("Monitor info unavailable", slog.Any("error", err))
		return win32.MonitorInfo{}, false
	}

	return info, true
}

// DisplayInfo returns the display device of the window's monitor
func (w *Window) DisplayInfo(flags win32.MonitorDefault) (win32.DisplayDevice, bool) {
	info, ok := w.TryMonitorInfo(flags)
	if !ok {
		return win32.DisplayDevice{}, false
	}

	device, err := w.api.DisplayDevice(info.DeviceName)
	if err != nil {
		w.log.Debug("Display device unavailable",
			slog.String("device", info.DeviceName),
			slog.Any("error", err))
		return win32.DisplayDevice{}, false
	}

	return device, true
}

// ScaleFactor returns the scale of the window's monitor, 1.0 at 100%.
func (w *Window) ScaleFactor(flags win32.MonitorDefault) (float64, error) {
	monitor, err := w.monitor(flags)
	if err != nil {
		return 0, err
	}

	percent, err := w.api.ScaleFactor(monitor)
	if err != nil {
		return 0, fmt.Errorf("failed to get scale factor: %w", err)
	}

	return float64(percent) / 100, nil
}

// Dpi returns the effective DPI of the window's monitor
func (w *Window) Dpi(flags win32.MonitorDefault) (win32.DpiScale, error) {
	monitor, err := w.monitor(flags)
	if err != nil {
		return win32.DpiScale{}, err
	}

	dpi, err := w.api.MonitorDpi(monitor)
	if err != nil {
		return win32.DpiScale{}, fmt.Errorf("failed to get monitor dpi: %w", err)
	}

	return dpi, nil
}

func (w *Window) monitor(flags win32.MonitorDefault) (uintptr, error) {
	hwnd, err := w.handle()
	if err != nil {
		return 0, err
	}

	monitor := w.api.MonitorFromWindow(hwnd, flags)
	if monitor == 0 {
		return 0, ErrNoMonitor
	}

	return monitor, nil
}
