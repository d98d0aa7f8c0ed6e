//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"
	"unsafe"

	syswin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/timeouts"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// windowManager implements the StyleManager and PositionManager interfaces
type windowManager struct {
	log logger.LoggerInterface
}

// newWindowManager creates a new window manager
func newWindowManager(log logger.LoggerInterface) *windowManager {
	return &windowManager{log: log}
}

// getWindowLong reads a window long. A zero value is only an error when the
// thread's last error was set by the call, so the clear and the read run on
// one OS thread.
func getWindowLong(hwnd uintptr, index int32) (uintptr, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	_, _, _ = procSetLastError.Call(0)

	ret, _, err := procGetWindowLongPtr.Call(hwnd, uintptr(index))
	if ret == 0 {
		if errno, ok := err.(syswin.Errno); ok && errno != syswin.ERROR_SUCCESS {
			return 0, errno
		}
	}

	return ret, nil
}

// setWindowLong writes a window long and returns the previous value
func setWindowLong(hwnd uintptr, index int32, value uintptr) (uintptr, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	_, _, _ = procSetLastError.Call(0)

	prev, _, err := procSetWindowLongPtr.Call(hwnd, uintptr(index), value)
	if prev == 0 {
		if errno, ok := err.(syswin.Errno); ok && errno != syswin.ERROR_SUCCESS {
			return 0, errno
		}
	}

	return prev, nil
}

func (w *windowManager) Style(hwnd uintptr) (uint32, error) {
	v, err := getWindowLong(hwnd, win32.GWL_STYLE)
	if err != nil {
		return 0, fmt.Errorf("GetWindowLongPtr(GWL_STYLE): %w", err)
	}

	return uint32(v), nil
}

func (w *windowManager) SetStyle(hwnd uintptr, style uint32) error {
	if _, err := setWindowLong(hwnd, win32.GWL_STYLE, uintptr(style)); err != nil {
		return fmt.Errorf("SetWindowLongPtr(GWL_STYLE): %w", err)
	}

	return nil
}

func (w *windowManager) ExtendedStyle(hwnd uintptr) (uint32, error) {
	v, err := getWindowLong(hwnd, win32.GWL_EXSTYLE)
	if err != nil {
		return 0, fmt.Errorf("GetWindowLongPtr(GWL_EXSTYLE): %w", err)
	}

	return uint32(v), nil
}

func (w *windowManager) SetExtendedStyle(hwnd uintptr, style uint32) error {
	if _, err := setWindowLong(hwnd, win32.GWL_EXSTYLE, uintptr(style)); err != nil {
		return fmt.Errorf("SetWindowLongPtr(GWL_EXSTYLE): %w", err)
	}

	return nil
}

func (w *windowManager) SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) error {
	ret, _, err := procSetWindowPos.Call(
		hwnd,
		insertAfter,
		uintptr(x),
		uintptr(y),
		uintptr(cx),
		uintptr(cy),
		uintptr(flags),
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}

	w.log.Trace("SetWindowPos",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Uint64("insertAfter", uint64(insertAfter)),
		slog.Uint64("flags", uint64(flags)))

	return nil
}

func (w *windowManager) SetActiveWindow(hwnd uintptr) error {
	_, _, _ = procSetLastError.Call(0)

	prev, _, err := procSetActiveWindow.Call(hwnd)
	if prev == 0 {
		if errno, ok := err.(syswin.Errno); ok && errno != syswin.ERROR_SUCCESS {
			return fmt.Errorf("SetActiveWindow: %w", errno)
		}
	}

	return nil
}

// SetForeground brings a window to the foreground using AttachThreadInput technique
func (w *windowManager) SetForeground(hwnd uintptr) bool {
	// Restore window if minimized
	if iconic, _, _ := procIsIconic.Call(hwnd); iconic != 0 {
		ret, _, _ := procShowWindow.Call(hwnd, uintptr(SW_RESTORE))
		w.log.Debug("ShowWindow(SW_RESTORE)", slog.Uint64("ret", uint64(ret)))
	}

	// Try standard SetForegroundWindow first
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	if ret != 0 {
		w.log.Debug("SetForegroundWindow succeeded (standard)")
		return w.verifyForeground(hwnd)
	}

	w.log.Debug("Standard SetForegroundWindow failed, trying AttachThreadInput technique")

	fgHwnd := uintptr(syswin.GetForegroundWindow())
	if fgHwnd == 0 || fgHwnd == hwnd {
		w.log.Debug("No foreground window or already focused")
		return fgHwnd == hwnd
	}

	var pid uint32
	fgThreadID, _ := syswin.GetWindowThreadProcessId(syswin.HWND(fgHwnd), &pid)
	targetThreadID, _ := syswin.GetWindowThreadProcessId(syswin.HWND(hwnd), &pid)

	if fgThreadID == 0 || targetThreadID == 0 {
		w.log.Warn("Could not get thread IDs",
			slog.Uint64("fgThreadID", uint64(fgThreadID)),
			slog.Uint64("targetThreadID", uint64(targetThreadID)))
		return false
	}

	w.log.Debug("Attaching threads",
		slog.Uint64("fgThreadID", uint64(fgThreadID)),
		slog.Uint64("targetThreadID", uint64(targetThreadID)))

	ret, _, _ = procAttachThreadInput.Call(uintptr(targetThreadID), uintptr(fgThreadID), 1)
	if ret == 0 {
		w.log.Warn("AttachThreadInput failed")
		return false
	}

	ret, _, _ = procSetForegroundWindow.Call(hwnd)
	success := ret != 0

	ret, _, _ = procAttachThreadInput.Call(uintptr(targetThreadID), uintptr(fgThreadID), 0)
	if ret == 0 {
		w.log.Warn("Failed to detach threads")
	}

	if success {
		w.log.Debug("SetForegroundWindow succeeded (with AttachThreadInput)")
		return w.verifyForeground(hwnd)
	}

	w.log.Warn("SetForegroundWindow still failed after AttachThreadInput")
	return false
}

// verifyForeground checks if the window is now in foreground
func (w *windowManager) verifyForeground(hwnd uintptr) bool {
	time.Sleep(timeouts.FocusVerificationDelay)

	fgHwnd := uintptr(syswin.GetForegroundWindow())
	if fgHwnd == hwnd {
		w.log.Debug("Window confirmed in foreground")
		return true
	}

	w.log.Warn("Different window in foreground",
		slog.Uint64("expected", uint64(hwnd)),
		slog.Uint64("got", uint64(fgHwnd)))

	return false
}

func (w *windowManager) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error {
	ret, _, err := procPostMessageW.Call(hwnd, uintptr(msg), wParam, lParam)
	if ret == 0 {
		return fmt.Errorf("PostMessage(0x%X): %w", msg, err)
	}

	return nil
}

func (w *windowManager) RegisterWindowMessage(name string) (uint32, error) {
	namePtr, err := syswin.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}

	id, _, err := procRegisterWindowMessageW.Call(uintptr(unsafe.Pointer(namePtr)))
	if id == 0 {
		return 0, fmt.Errorf("RegisterWindowMessage(%s): %w", name, err)
	}

	return uint32(id), nil
}
