package window

import (
	"fmt"
	"strings"

	"github.com/Norgate-AV/winfx/internal/win32"
)

var cornerNames = map[string]win32.CornerPreference{
	"default": win32.DWMWCP_DEFAULT,
	"none":    win32.DWMWCP_DONOTROUND,
	"round":   win32.DWMWCP_ROUND,
	"small":   win32.DWMWCP_ROUNDSMALL,
}

// ParseCorners converts default, none, round or small to a corner preference
func ParseCorners(s string) (win32.CornerPreference, error) {
	pref, ok := cornerNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return win32.DWMWCP_DEFAULT, fmt.Errorf("unknown corner preference %q (want default, none, round or small)", s)
	}

	return pref, nil
}

// SetCornerPreference asks DWM to round the window corners. Windows 11 only;
// earlier releases reject the attribute.
func (w *Window) SetCornerPreference(pref win32.CornerPreference) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	if err := w.api.SetCornerPreference(hwnd, pref); err != nil {
		return fmt.Errorf("failed to set corner preference: %w", err)
	}

	return nil
}

// UseDarkMode switches the title bar between the light and dark theme
func (w *Window) UseDarkMode(enabled bool) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	if err := w.api.SetDarkMode(hwnd, enabled); err != nil {
		return fmt.Errorf("failed to set dark mode: %w", err)
	}

	return nil
}

// SetRoundedRegion clips the window to a rounded rectangle of the given size.
// A radius of 0 removes the clipping region.
func (w *Window) SetRoundedRegion(width, height, radius int32) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	if width < 0 || height < 0 || radius < 0 {
		return fmt.Errorf("invalid region %dx%d radius %d", width, height, radius)
	}

	if err := w.api.SetRoundedRegion(hwnd, width, height, radius); err != nil {
		return fmt.Errorf("failed to set window region: %w", err)
	}

	return nil
}
