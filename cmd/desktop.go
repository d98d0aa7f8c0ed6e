package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/platform"
	"github.com/Norgate-AV/winfx/internal/win32"
	"github.com/Norgate-AV/winfx/internal/window"
)

// ErrNoWindow is returned when no window matches the selection flags
var ErrNoWindow = errors.New("no matching window")

// Desktop is the part of the OS the commands work with
type Desktop interface {
	API() interfaces.NativeAPI
	Capabilities() platform.Capabilities
	Windows() ([]win32.WindowInfo, error)
	Foreground() uintptr
	Host(hwnd uintptr) (interfaces.Host, error)
	// WatchWindows sends windows that appear after the call until ctx ends
	WatchWindows(ctx context.Context, interval time.Duration) <-chan win32.WindowInfo
	IsElevated() bool
	RelaunchAsAdmin() error
	// OnConsoleControl is called with the event name when the console is
	// closed, logged off or shut down
	OnConsoleControl(handler func(event string)) error
}

// session is one command invocation
type session struct {
	cfg        *Config
	log        logger.LoggerInterface
	desktop    Desktop
	dispatcher *effects.Dispatcher
}

func newSession(cfg *Config, log logger.LoggerInterface, desktop Desktop) *session {
	return &session{
		cfg:        cfg,
		log:        log,
		desktop:    desktop,
		dispatcher: effects.NewDispatcher(log, desktop.Capabilities(), desktop.API()),
	}
}

func (s *session) window(hwnd uintptr) (*window.Window, error) {
	host, err := s.desktop.Host(hwnd)
	if err != nil {
		return nil, fmt.Errorf("failed to open window 0x%X: %w", hwnd, err)
	}

	return window.New(host, s.desktop.API(), s.dispatcher, s.log), nil
}

// targets resolves the selection flags: --hwnd, then --title, then the
// foreground window
func (s *session) targets() ([]win32.WindowInfo, error) {
	all, err := s.desktop.Windows()
	if err != nil {
		return nil, err
	}

	lookup := func(hwnd uintptr) win32.WindowInfo {
		for _, w := range all {
			if w.Hwnd == hwnd {
				return w
			}
		}
		return win32.WindowInfo{Hwnd: hwnd}
	}

	switch {
	case s.cfg.Hwnd != 0:
		return []win32.WindowInfo{lookup(s.cfg.Hwnd)}, nil

	case s.cfg.Title != "":
		needle := strings.ToLower(s.cfg.Title)

		var found []win32.WindowInfo
		for _, w := range all {
			if strings.Contains(strings.ToLower(w.Title), needle) {
				found = append(found, w)
			}
		}

		if len(found) == 0 {
			return nil, fmt.Errorf("%w: title contains %q", ErrNoWindow, s.cfg.Title)
		}

		return found, nil

	default:
		fg := s.desktop.Foreground()
		if fg == 0 {
			return nil, fmt.Errorf("%w: no foreground window", ErrNoWindow)
		}

		return []win32.WindowInfo{lookup(fg)}, nil
	}
}

// forEachTarget runs op on every selected window and joins the failures
func (s *session) forEachTarget(op func(w *window.Window, info win32.WindowInfo) error) error {
	targets, err := s.targets()
	if err != nil {
		return err
	}

	var errs []error
	for _, info := range targets {
		w, err := s.window(info.Hwnd)
		if err == nil {
			err = op(w, info)
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("window 0x%X: %w", info.Hwnd, err))
		}
	}

	return errors.Join(errs...)
}
