// Package window exposes window-management operations on a host window:
// z-order, position, extended styles, background effects, activation and
// monitor queries.
package window

import (
	"errors"
	"log/slog"

	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
)

var (
	// ErrNoHandle is returned when the host window has not been created yet.
	ErrNoHandle = errors.New("window has no native handle")

	// ErrNoMonitor is returned when the window does not intersect any display
	// and the monitor flags ask for no fallback.
	ErrNoMonitor = errors.New("window is not on any display monitor")
)

// Window applies operations to a host window
type Window struct {
	host    interfaces.Host
	api     interfaces.NativeAPI
	effects *effects.Dispatcher
	log     logger.LoggerInterface

	snap *snapState
}

// New creates a Window for host
func New(host interfaces.Host, api interfaces.NativeAPI, dispatcher *effects.Dispatcher, log logger.LoggerInterface) *Window {
	return &Window{
		host:    host,
		api:     api,
		effects: dispatcher,
		log:     log.With(slog.Uint64("hwnd", uint64(host.Handle()))),
	}
}

// Host returns the host window
func (w *Window) Host() interfaces.Host {
	return w.host
}

// Handle returns the native handle of the host window
func (w *Window) Handle() uintptr {
	return w.host.Handle()
}

func (w *Window) handle() (uintptr, error) {
	hwnd := w.host.Handle()
	if hwnd == 0 {
		return 0, ErrNoHandle
	}

	return hwnd, nil
}

// EnableBlur applies a background effect with the given tint and returns the
// level actually in effect. Native failures are logged, not returned.
func (w *Window) EnableBlur(level effects.Level, color effects.Color) (effects.Level, error) {
	hwnd, err := w.handle()
	if err != nil {
		return effects.Opaque, err
	}

	effective := w.effects.Apply(hwnd, level, color)

	if effective != level {
		w.log.Debug("Effect level downgraded",
			slog.String("requested", level.String()),
			slog.String("effective", effective.String()))
	}

	return effective, nil
}

// DisableBlur removes any background effect
func (w *Window) DisableBlur() error {
	_, err := w.EnableBlur(effects.Opaque, effects.DefaultColor)
	return err
}
