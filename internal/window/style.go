package window

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winfx/internal/hooks"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// maximizeHook is the single remover instance added to and removed from hook
// sources, so RemoveHook finds what AddHook installed.
var maximizeHook hooks.Hook = hooks.MaximizeBoxRemover{}

// IgnoreMouseEvents makes the window transparent to the mouse. Clicks go to
// the windows underneath. The window is made layered if it is not already.
func (w *Window) IgnoreMouseEvents() error {
	return w.updateExtendedStyle("ignore mouse events", func(style uint32) uint32 {
		return style | win32.WS_EX_LAYERED | win32.WS_EX_TRANSPARENT
	})
}

// StopIgnoreMouseEvents makes the window respond to mouse events again
func (w *Window) StopIgnoreMouseEvents() error {
	return w.updateExtendedStyle("stop ignoring mouse events", func(style uint32) uint32 {
		return style &^ win32.WS_EX_TRANSPARENT
	})
}

// HideFromAltTab removes the window from the alt-tab switcher by making it a
// tool window.
func (w *Window) HideFromAltTab() error {
	return w.updateExtendedStyle("hide from alt-tab", func(style uint32) uint32 {
		return style&^win32.WS_EX_APPWINDOW | win32.WS_EX_TOOLWINDOW
	})
}

// ShowInAltTab is the inverse of HideFromAltTab
func (w *Window) ShowInAltTab() error {
	return w.updateExtendedStyle("show in alt-tab", func(style uint32) uint32 {
		return style&^win32.WS_EX_TOOLWINDOW | win32.WS_EX_APPWINDOW
	})
}

// DisableMaximize removes the maximize box. With override set, later attempts
// by the window's framework to restore the maximize box are discarded too;
// this needs a hook source and is skipped without one.
func (w *Window) DisableMaximize(override bool) error {
	err := w.updateStyle("disable maximize", func(style uint32) uint32 {
		return style &^ win32.WS_MAXIMIZEBOX
	})
	if err != nil {
		return err
	}

	if !override {
		return nil
	}

	source, ok := w.host.HookSource()
	if !ok {
		w.log.Debug("No hook source, maximize override not installed")
		return nil
	}

	source.AddHook(maximizeHook)
	return nil
}

// ReenableMaximize removes the override installed by DisableMaximize. It does
// not put the maximize box back.
func (w *Window) ReenableMaximize() {
	if source, ok := w.host.HookSource(); ok {
		source.RemoveHook(maximizeHook)
	}
}

// SetMaximizeBox adds or removes the maximize box without installing a hook
func (w *Window) SetMaximizeBox(enabled bool) error {
	if !enabled {
		return w.DisableMaximize(false)
	}

	return w.updateStyle("enable maximize", func(style uint32) uint32 {
		return style | win32.WS_MAXIMIZEBOX
	})
}

func (w *Window) updateStyle(op string, update func(uint32) uint32) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	style, err := w.api.Style(hwnd)
	if err != nil {
		return fmt.Errorf("%s: failed to read style: %w", op, err)
	}

	next := update(style)

	w.log.Trace("Updating style",
		slog.String("op", op),
		slog.String("old", fmt.Sprintf("0x%08X", style)),
		slog.String("new", fmt.Sprintf("0x%08X", next)))

	if err := w.api.SetStyle(hwnd, next); err != nil {
		return fmt.Errorf("%s: failed to write style: %w", op, err)
	}

	return nil
}

func (w *Window) updateExtendedStyle(op string, update func(uint32) uint32) error {
	hwnd, err := w.handle()
	if err != nil {
		return err
	}

	style, err := w.api.ExtendedStyle(hwnd)
	if err != nil {
		return fmt.Errorf("%s: failed to read extended style: %w", op, err)
	}

	next := update(style)

	w.log.Debug("Updating extended style",
		slog.String("op", op),
		slog.String("old", fmt.Sprintf("0x%08X", style)),
		slog.String("new", fmt.Sprintf("0x%08X", next)))

	if err := w.api.SetExtendedStyle(hwnd, next); err != nil {
		return fmt.Errorf("%s: failed to write extended style: %w", op, err)
	}

	return nil
}
