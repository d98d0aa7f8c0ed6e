//go:build windows

package windows

import (
	"fmt"
	"sync"

	syswin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winfx/internal/win32"
)

var (
	foundWindows []win32.WindowInfo
	windowsMu    sync.Mutex

	enumCallback = syswin.NewCallback(enumWindowsCallback)
)

func enumWindowsCallback(hwnd uintptr, _ uintptr) uintptr {
	if IsWindowVisible(hwnd) {
		foundWindows = append(foundWindows, win32.WindowInfo{
			Hwnd:  hwnd,
			Title: GetWindowText(hwnd),
			Class: GetClassName(hwnd),
			Pid:   GetWindowPid(hwnd),
		})
	}

	return 1 // Continue enumeration
}

// EnumerateWindows performs a thread-safe enumeration of visible top-level windows
func EnumerateWindows() ([]win32.WindowInfo, error) {
	windowsMu.Lock()
	defer windowsMu.Unlock()

	foundWindows = nil
	if err := syswin.EnumWindows(enumCallback, nil); err != nil {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}

	// Make a copy to avoid races with subsequent enumerations
	windows := make([]win32.WindowInfo, len(foundWindows))
	copy(windows, foundWindows)

	return windows, nil
}
