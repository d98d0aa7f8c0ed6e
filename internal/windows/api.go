//go:build windows

package windows

import (
	"unsafe"

	syswin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/win32"
)

var (
	user32                            = syswin.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtr              = user32.NewProc(windowLongProc("Get"))
	procSetWindowLongPtr              = user32.NewProc(windowLongProc("Set"))
	procSetWindowPos                  = user32.NewProc("SetWindowPos")
	procSetActiveWindow               = user32.NewProc("SetActiveWindow")
	procSetForegroundWindow           = user32.NewProc("SetForegroundWindow")
	procAttachThreadInput             = user32.NewProc("AttachThreadInput")
	procShowWindow                    = user32.NewProc("ShowWindow")
	procIsIconic                      = user32.NewProc("IsIconic")
	procPostMessageW                  = user32.NewProc("PostMessageW")
	procRegisterWindowMessageW        = user32.NewProc("RegisterWindowMessageW")
	procCallWindowProcW               = user32.NewProc("CallWindowProcW")
	procDefWindowProcW                = user32.NewProc("DefWindowProcW")
	procGetWindowTextW                = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW          = user32.NewProc("GetWindowTextLengthW")
	procMonitorFromWindow             = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW               = user32.NewProc("GetMonitorInfoW")
	procEnumDisplayDevicesW           = user32.NewProc("EnumDisplayDevicesW")
	procSetWindowRgn                  = user32.NewProc("SetWindowRgn")
	procSetWindowCompositionAttribute = user32.NewProc("SetWindowCompositionAttribute")
	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")

	dwmapi                        = syswin.NewLazySystemDLL("dwmapi.dll")
	procDwmIsCompositionEnabled   = dwmapi.NewProc("DwmIsCompositionEnabled")
	procDwmEnableBlurBehindWindow = dwmapi.NewProc("DwmEnableBlurBehindWindow")

	shcore                       = syswin.NewLazySystemDLL("shcore.dll")
	procGetScaleFactorForMonitor = shcore.NewProc("GetScaleFactorForMonitor")
	procGetDpiForMonitor         = shcore.NewProc("GetDpiForMonitor")

	gdi32                  = syswin.NewLazySystemDLL("gdi32.dll")
	procCreateRoundRectRgn = gdi32.NewProc("CreateRoundRectRgn")
	procDeleteObject       = gdi32.NewProc("DeleteObject")

	kernel32                  = syswin.NewLazySystemDLL("kernel32.dll")
	procSetLastError          = kernel32.NewProc("SetLastError")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	SW_RESTORE = 9

	lmemZeroInit = 0x0040

	dpiAwarenessContextPerMonitorAwareV2 = ^uintptr(3) // -4
)

// windowLongProc picks the pointer-sized variant. 32-bit user32 only
// exports GetWindowLongW and SetWindowLongW.
func windowLongProc(verb string) string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return verb + "WindowLongPtrW"
	}

	return verb + "WindowLongW"
}

// WindowsAPI is a concrete implementation of all Windows-related interfaces
// It wraps a Client to provide the required functionality
type WindowsAPI struct {
	client *Client
}

var (
	_ interfaces.NativeAPI        = (*WindowsAPI)(nil)
	_ interfaces.WindowEnumerator = (*WindowsAPI)(nil)
)

// NewWindowsAPI creates a new WindowsAPI with the provided logger
func NewWindowsAPI(log logger.LoggerInterface) *WindowsAPI {
	return &WindowsAPI{
		client: NewClient(log),
	}
}

// Client returns the managers behind the API
func (w *WindowsAPI) Client() *Client { return w.client }

// StyleManager interface implementation
func (w *WindowsAPI) Style(hwnd uintptr) (uint32, error) { return w.client.Window.Style(hwnd) }
func (w *WindowsAPI) SetStyle(hwnd uintptr, style uint32) error {
	return w.client.Window.SetStyle(hwnd, style)
}

func (w *WindowsAPI) ExtendedStyle(hwnd uintptr) (uint32, error) {
	return w.client.Window.ExtendedStyle(hwnd)
}

func (w *WindowsAPI) SetExtendedStyle(hwnd uintptr, style uint32) error {
	return w.client.Window.SetExtendedStyle(hwnd, style)
}

// PositionManager interface implementation
func (w *WindowsAPI) SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) error {
	return w.client.Window.SetWindowPos(hwnd, insertAfter, x, y, cx, cy, flags)
}
func (w *WindowsAPI) SetActiveWindow(hwnd uintptr) error { return w.client.Window.SetActiveWindow(hwnd) }
func (w *WindowsAPI) SetForeground(hwnd uintptr) bool    { return w.client.Window.SetForeground(hwnd) }
func (w *WindowsAPI) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error {
	return w.client.Window.PostMessage(hwnd, msg, wParam, lParam)
}

func (w *WindowsAPI) RegisterWindowMessage(name string) (uint32, error) {
	return w.client.Window.RegisterWindowMessage(name)
}

// MonitorManager interface implementation
func (w *WindowsAPI) MonitorFromWindow(hwnd uintptr, flags win32.MonitorDefault) uintptr {
	return w.client.Display.MonitorFromWindow(hwnd, flags)
}

func (w *WindowsAPI) MonitorInfo(monitor uintptr) (win32.MonitorInfo, error) {
	return w.client.Display.MonitorInfo(monitor)
}

func (w *WindowsAPI) DisplayDevice(deviceName string) (win32.DisplayDevice, error) {
	return w.client.Display.DisplayDevice(deviceName)
}

func (w *WindowsAPI) ScaleFactor(monitor uintptr) (int, error) {
	return w.client.Display.ScaleFactor(monitor)
}

func (w *WindowsAPI) MonitorDpi(monitor uintptr) (win32.DpiScale, error) {
	return w.client.Display.MonitorDpi(monitor)
}

// Compositor interface implementation
func (w *WindowsAPI) IsCompositionEnabled() (bool, error) {
	return w.client.Compositor.IsCompositionEnabled()
}

func (w *WindowsAPI) EnableBlurBehind(hwnd uintptr, bb win32.BlurBehind) error {
	return w.client.Compositor.EnableBlurBehind(hwnd, bb)
}

func (w *WindowsAPI) SetAccentPolicy(hwnd uintptr, accent win32.AccentPolicy) error {
	return w.client.Compositor.SetAccentPolicy(hwnd, accent)
}

// AppearanceManager interface implementation
func (w *WindowsAPI) SetCornerPreference(hwnd uintptr, pref win32.CornerPreference) error {
	return w.client.Compositor.SetCornerPreference(hwnd, pref)
}

func (w *WindowsAPI) SetDarkMode(hwnd uintptr, enabled bool) error {
	return w.client.Compositor.SetDarkMode(hwnd, enabled)
}

func (w *WindowsAPI) SetRoundedRegion(hwnd uintptr, width, height, radius int32) error {
	return w.client.Compositor.SetRoundedRegion(hwnd, width, height, radius)
}

// WindowEnumerator interface implementation
func (w *WindowsAPI) EnumerateWindows() ([]win32.WindowInfo, error) { return EnumerateWindows() }
