package window

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winfx/internal/hooks"
	"github.com/Norgate-AV/winfx/internal/interfaces"
)

// snapRestoreMessage names the registered message the snap guard posts to
// put the maximize box back.
const snapRestoreMessage = "winfx.SnapGuard.Restore"

type snapState struct {
	w     *Window
	guard *hooks.SnapGuard
}

func (s *snapState) WindowClosed(host interfaces.Host) {
	if source, ok := host.HookSource(); ok {
		source.RemoveHook(s.guard)
	}

	host.RemoveClosedHandler(s)

	if s.w.snap == s {
		s.w.snap = nil
	}
}

// styleWindow gives the snap guard access to one window's style
type styleWindow struct {
	api  interfaces.NativeAPI
	hwnd uintptr
}

func (s styleWindow) Style() (uint32, error) {
	return s.api.Style(s.hwnd)
}

func (s styleWindow) SetStyle(style uint32) error {
	return s.api.SetStyle(s.hwnd, style)
}

func (s styleWindow) PostMessage(id uint32, wParam, lParam uintptr) error {
	return s.api.PostMessage(s.hwnd, id, wParam, lParam)
}

// EnableSnapGuard stops the shell from snapping the window to a maximized
// state while it is dragged or resized. Returns false when the window's
// messages cannot be intercepted. Calling it again is a no-op.
func (w *Window) EnableSnapGuard() (bool, error) {
	hwnd, err := w.handle()
	if err != nil {
		return false, err
	}

	if w.snap != nil {
		return true, nil
	}

	source, ok := w.host.HookSource()
	if !ok {
		return false, nil
	}

	id, err := w.api.RegisterWindowMessage(snapRestoreMessage)
	if err != nil {
		return false, fmt.Errorf("failed to register snap guard message: %w", err)
	}

	guard := hooks.NewSnapGuard(styleWindow{api: w.api, hwnd: hwnd}, id)
	guard.OnError(func(err error) {
		w.log.Warn("Snap guard failed", slog.Any("error", err))
	})

	w.snap = &snapState{w: w, guard: guard}

	source.AddHook(w.snap.guard)
	w.host.AddClosedHandler(w.snap)

	w.log.Debug("Snap guard enabled")
	return true, nil
}

// DisableSnapGuard removes the guard installed by EnableSnapGuard
func (w *Window) DisableSnapGuard() {
	if w.snap == nil {
		return
	}

	if source, ok := w.host.HookSource(); ok {
		source.RemoveHook(w.snap.guard)
	}

	w.host.RemoveClosedHandler(w.snap)
	w.snap = nil

	w.log.Debug("Snap guard disabled")
}
