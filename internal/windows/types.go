//go:build windows

package windows

import (
	"fmt"
	"unsafe"

	"github.com/Norgate-AV/winfx/internal/win32"
)

const cchDeviceName = 32

// monitorInfoEx mirrors MONITORINFOEXW
type monitorInfoEx struct {
	CbSize    uint32
	RcMonitor win32.Rect
	RcWork    win32.Rect
	DwFlags   uint32
	SzDevice  [cchDeviceName]uint16
}

// displayDevice mirrors DISPLAY_DEVICEW
type displayDevice struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// HResultError is a failed HRESULT from a COM-style API
type HResultError struct {
	Op     string
	Result uint32
}

func (e *HResultError) Error() string {
	return fmt.Sprintf("%s failed with HRESULT 0x%08X", e.Op, e.Result)
}

func hresultError(op string, hr uintptr) error {
	return &HResultError{Op: op, Result: uint32(hr)}
}

// WindowEvent is emitted by the window monitor for each new top-level window
type WindowEvent struct {
	win32.WindowInfo
}

// ptrAt views OS-owned memory at addr, such as a message lParam or a
// LocalAlloc block, as a *T. The memory is outside the Go heap.
func ptrAt[T any](addr uintptr) *T {
	return *(**T)(unsafe.Pointer(&addr))
}
