//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"unsafe"

	syswin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// displayManager answers questions about display monitors
type displayManager struct {
	log logger.LoggerInterface
}

func newDisplayManager(log logger.LoggerInterface) *displayManager {
	return &displayManager{log: log}
}

func (d *displayManager) MonitorFromWindow(hwnd uintptr, flags win32.MonitorDefault) uintptr {
	ret, _, _ := procMonitorFromWindow.Call(hwnd, uintptr(flags))
	return ret
}

func (d *displayManager) MonitorInfo(monitor uintptr) (win32.MonitorInfo, error) {
	mi := monitorInfoEx{}
	mi.CbSize = uint32(unsafe.Sizeof(mi))

	ret, _, err := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return win32.MonitorInfo{}, fmt.Errorf("GetMonitorInfo: %w", err)
	}

	return win32.MonitorInfo{
		Handle:     monitor,
		Monitor:    mi.RcMonitor,
		WorkArea:   mi.RcWork,
		Flags:      mi.DwFlags,
		DeviceName: syswin.UTF16ToString(mi.SzDevice[:]),
	}, nil
}

// DisplayDevice looks up the monitor attached to a display adapter device
// such as \\.\DISPLAY1.
func (d *displayManager) DisplayDevice(deviceName string) (win32.DisplayDevice, error) {
	namePtr, err := syswin.UTF16PtrFromString(deviceName)
	if err != nil {
		return win32.DisplayDevice{}, err
	}

	dd := displayDevice{}
	dd.Cb = uint32(unsafe.Sizeof(dd))

	ret, _, err := procEnumDisplayDevicesW.Call(
		uintptr(unsafe.Pointer(namePtr)),
		0,
		uintptr(unsafe.Pointer(&dd)),
		win32.EDD_GET_DEVICE_INTERFACE_NAME,
	)
	if ret == 0 {
		return win32.DisplayDevice{}, fmt.Errorf("EnumDisplayDevices(%s): %w", deviceName, err)
	}

	return win32.DisplayDevice{
		DeviceName:   syswin.UTF16ToString(dd.DeviceName[:]),
		DeviceString: syswin.UTF16ToString(dd.DeviceString[:]),
		StateFlags:   dd.StateFlags,
		DeviceID:     syswin.UTF16ToString(dd.DeviceID[:]),
		DeviceKey:    syswin.UTF16ToString(dd.DeviceKey[:]),
	}, nil
}

// ScaleFactor returns the monitor scale as a percentage, e.g. 150
func (d *displayManager) ScaleFactor(monitor uintptr) (int, error) {
	if err := procGetScaleFactorForMonitor.Find(); err != nil {
		return 0, err
	}

	var scale uint32
	hr, _, _ := procGetScaleFactorForMonitor.Call(monitor, uintptr(unsafe.Pointer(&scale)))
	if hr != 0 {
		return 0, hresultError("GetScaleFactorForMonitor", hr)
	}

	return int(scale), nil
}

func (d *displayManager) MonitorDpi(monitor uintptr) (win32.DpiScale, error) {
	if err := procGetDpiForMonitor.Find(); err != nil {
		return win32.DpiScale{}, err
	}

	var dpi win32.DpiScale
	hr, _, _ := procGetDpiForMonitor.Call(
		monitor,
		win32.MDT_EFFECTIVE_DPI,
		uintptr(unsafe.Pointer(&dpi.DpiX)),
		uintptr(unsafe.Pointer(&dpi.DpiY)),
	)
	if hr != 0 {
		return win32.DpiScale{}, hresultError("GetDpiForMonitor", hr)
	}

	d.log.Trace("Monitor DPI",
		slog.Uint64("monitor", uint64(monitor)),
		slog.Uint64("dpiX", uint64(dpi.DpiX)),
		slog.Uint64("dpiY", uint64(dpi.DpiY)))

	return dpi, nil
}

// EnablePerMonitorDpiAwareness makes monitor and window coordinates physical
// pixels for this process. It must run before any window is created and
// fails on systems older than Windows 10 1703.
func EnablePerMonitorDpiAwareness() error {
	if err := procSetProcessDpiAwarenessContext.Find(); err != nil {
		return err
	}

	ret, _, err := procSetProcessDpiAwarenessContext.Call(dpiAwarenessContextPerMonitorAwareV2)
	if ret == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext: %w", err)
	}

	return nil
}
