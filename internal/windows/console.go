//go:build windows

package windows

import (
	syswin "golang.org/x/sys/windows"
)

// ConsoleCtrlHandler is a callback function for console control events
type ConsoleCtrlHandler func(ctrlType uint32) uintptr

var (
	globalHandler   ConsoleCtrlHandler
	consoleCallback = syswin.NewCallback(consoleCtrlHandlerCallback)
)

// SetConsoleCtrlHandler sets up a Windows console control handler
// This catches Ctrl+C, window close, logoff, and shutdown events
func SetConsoleCtrlHandler(handler ConsoleCtrlHandler) error {
	globalHandler = handler

	ret, _, err := procSetConsoleCtrlHandler.Call(consoleCallback, 1)
	if ret == 0 {
		return err
	}

	return nil
}

// consoleCtrlHandlerCallback is the actual callback that Windows calls
func consoleCtrlHandlerCallback(ctrlType uint32) uintptr {
	if globalHandler != nil {
		return globalHandler(ctrlType)
	}

	return 0 // FALSE - let default handler process it
}

// GetCtrlTypeName returns a human-readable name for a control event type
func GetCtrlTypeName(ctrlType uint32) string {
	switch ctrlType {
	case syswin.CTRL_C_EVENT:
		return "CTRL_C"
	case syswin.CTRL_BREAK_EVENT:
		return "CTRL_BREAK"
	case syswin.CTRL_CLOSE_EVENT:
		return "CTRL_CLOSE"
	case syswin.CTRL_LOGOFF_EVENT:
		return "CTRL_LOGOFF"
	case syswin.CTRL_SHUTDOWN_EVENT:
		return "CTRL_SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}
