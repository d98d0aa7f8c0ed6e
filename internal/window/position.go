package window

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winfx/internal/win32"
)

const zOrderFlags = win32.SWP_NOMOVE | win32.SWP_NOSIZE | win32.SWP_FRAMECHANGED

// BringToBack places the window at the bottom of the z-order
func (w *Window) BringToBack() error {
	return w.setZOrder("bottom", win32.HWND_BOTTOM, zOrderFlags)
}

// BringToFront makes the window topmost, floating over all other windows
func (w *Window) BringToFront() error {
	return w.setZOrder("topmost", win32.HWND_TOPMOST, zOrderFlags)
}

// ClearTopmost undoes BringToFront without moving the window behind others
func (w *Window) ClearTopmost() error {
	return w.setZOrder("not topmost", win32.HWND_NOTOPMOST, zOrderFlags|win32.SWP_NOACTIVATE)
}

func (w *Window) setZOrder(name string, insertAfter uintptr, flags uint32) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	w.log.Debug("Changing z-order", slog.String("position", name))

	if err := w.api.SetWindowPos(hwnd, insertAfter, 0, 0, 0, 0, flags); err != nil {
		return fmt.Errorf("failed to move window %s: %w", name, err)
	}

	return nil
}

// SetPosition moves and resizes the window. Coordinates are physical pixels
// relative to the primary display.
func (w *Window) SetPosition(b win32.Bounds) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	w.log.Debug("Setting window position",
		slog.Int("x", int(b.X)),
		slog.Int("y", int(b.Y)),
		slog.Int("width", int(b.Width)),
		slog.Int("height", int(b.Height)))

	err = w.api.SetWindowPos(hwnd, 0, b.X, b.Y, b.Width, b.Height, win32.SWP_FRAMECHANGED|win32.SWP_NOZORDER)
	if err != nil {
		return fmt.Errorf("failed to set window position: %w", err)
	}

	return nil
}

// Activate makes the window the active window of its thread
func (w *Window) Activate() error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	if err := w.api.SetActiveWindow(hwnd); err != nil {
		return fmt.Errorf("failed to activate window: %w", err)
	}

	return nil
}

// Focus brings the window to the foreground
func (w *Window) Focus() bool {
	hwnd, err := w.handle()
	if err != nil {
		return false
	}

	return w.api.SetForeground(hwnd)
}
