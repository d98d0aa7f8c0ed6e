//go:build windows

package windows

import (
	"unsafe"

	syswin "golang.org/x/sys/windows"
)

// ShellExecute executes a file using the Windows shell
func ShellExecute(hwnd uintptr, verb, file, args, cwd string, showCmd int32) error {
	var verbPtr, argsPtr, cwdPtr *uint16
	var err error

	if verb != "" {
		verbPtr, err = syswin.UTF16PtrFromString(verb)
		if err != nil {
			return err
		}
	}

	filePtr, err := syswin.UTF16PtrFromString(file)
	if err != nil {
		return err
	}

	if args != "" {
		argsPtr, err = syswin.UTF16PtrFromString(args)
		if err != nil {
			return err
		}
	}

	if cwd != "" {
		cwdPtr, err = syswin.UTF16PtrFromString(cwd)
		if err != nil {
			return err
		}
	}

	return syswin.ShellExecute(syswin.Handle(hwnd), verbPtr, filePtr, argsPtr, cwdPtr, showCmd)
}

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}

	buf := make([]uint16, n+1)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syswin.UTF16ToString(buf)
}

// GetClassName retrieves the class name of a window
func GetClassName(hwnd uintptr) string {
	buf := make([]uint16, 256)

	n, err := syswin.GetClassName(syswin.HWND(hwnd), &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}

	return syswin.UTF16ToString(buf[:n])
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	return syswin.IsWindow(syswin.HWND(hwnd))
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	return syswin.IsWindowVisible(syswin.HWND(hwnd))
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	if _, err := syswin.GetWindowThreadProcessId(syswin.HWND(hwnd), &pid); err != nil {
		return 0
	}

	return pid
}

// GetForegroundWindow returns the window the user is working in
func GetForegroundWindow() uintptr {
	return uintptr(syswin.GetForegroundWindow())
}
