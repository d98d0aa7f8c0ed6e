// Package win32 holds the Win32 constants and record layouts shared between the
// native adapter and the platform-independent window logic.
package win32

// Window messages
const (
	WM_NULL              = 0x0000
	WM_DESTROY           = 0x0002
	WM_ACTIVATE          = 0x0006
	WM_CLOSE             = 0x0010
	WM_MOUSEACTIVATE     = 0x0021
	WM_WINDOWPOSCHANGING = 0x0046
	WM_WINDOWPOSCHANGED  = 0x0047
	WM_STYLECHANGING     = 0x007C
	WM_STYLECHANGED      = 0x007D
	WM_NCDESTROY         = 0x0082
	WM_SYSCOMMAND        = 0x0112
	WM_ENTERSIZEMOVE     = 0x0231
	WM_EXITSIZEMOVE      = 0x0232
	WM_USER              = 0x0400
	WM_APP               = 0x8000
)

// WM_ACTIVATE reasons (low word of wParam)
const (
	WA_INACTIVE    = 0
	WA_ACTIVE      = 1
	WA_CLICKACTIVE = 2
)

// WM_MOUSEACTIVATE replies
const (
	MA_ACTIVATE         = 1
	MA_ACTIVATEANDEAT   = 2
	MA_NOACTIVATE       = 3
	MA_NOACTIVATEANDEAT = 4
)

// WM_SYSCOMMAND commands. The low four bits are used internally by the system
// and must be masked off with SC_MASK before comparing.
const (
	SC_MASK     = 0xFFF0
	SC_SIZE     = 0xF000
	SC_MOVE     = 0xF010
	SC_MAXIMIZE = 0xF030
)

// Window long indexes
const (
	GWLP_WNDPROC    = -4
	GWLP_HINSTANCE  = -6
	GWLP_HWNDPARENT = -8
	GWLP_ID         = -12
	GWL_STYLE       = -16
	GWL_EXSTYLE     = -20
	GWLP_USERDATA   = -21
)

// Window styles
const (
	WS_MAXIMIZEBOX = 0x00010000
	WS_MINIMIZEBOX = 0x00020000
	WS_THICKFRAME  = 0x00040000
	WS_SYSMENU     = 0x00080000
	WS_CAPTION     = 0x00C00000
	WS_MAXIMIZE    = 0x01000000
	WS_VISIBLE     = 0x10000000
	WS_POPUP       = 0x80000000
)

// Extended window styles
const (
	WS_EX_TOPMOST     = 0x00000008
	WS_EX_TRANSPARENT = 0x00000020
	WS_EX_TOOLWINDOW  = 0x00000080
	WS_EX_APPWINDOW   = 0x00040000
	WS_EX_LAYERED     = 0x00080000
	WS_EX_NOACTIVATE  = 0x08000000
)

// SetWindowPos insert-after sentinels
const (
	HWND_TOP       uintptr = 0
	HWND_BOTTOM    uintptr = 1
	HWND_TOPMOST           = ^uintptr(0)     // -1
	HWND_NOTOPMOST         = ^uintptr(0) - 1 // -2
)

// SetWindowPos flags
const (
	SWP_NOSIZE        = 0x0001
	SWP_NOMOVE        = 0x0002
	SWP_NOZORDER      = 0x0004
	SWP_NOREDRAW      = 0x0008
	SWP_NOACTIVATE    = 0x0010
	SWP_FRAMECHANGED  = 0x0020
	SWP_SHOWWINDOW    = 0x0040
	SWP_NOOWNERZORDER = 0x0200
)

// MonitorDefault selects the monitor returned by MonitorFromWindow when the
// window does not intersect any display.
type MonitorDefault uint32

const (
	MONITOR_DEFAULTTONULL    MonitorDefault = 0x0
	MONITOR_DEFAULTTOPRIMARY MonitorDefault = 0x1
	MONITOR_DEFAULTTONEAREST MonitorDefault = 0x2
)

// MONITORINFO flags
const (
	MONITORINFOF_PRIMARY = 0x1
)

// Display device state flags
const (
	DISPLAY_DEVICE_ATTACHED_TO_DESKTOP = 0x00000001
	DISPLAY_DEVICE_MULTI_DRIVER        = 0x00000002
	DISPLAY_DEVICE_PRIMARY_DEVICE      = 0x00000004
	DISPLAY_DEVICE_MIRRORING_DRIVER    = 0x00000008
	DISPLAY_DEVICE_VGA_COMPATIBLE      = 0x00000010
	DISPLAY_DEVICE_REMOVABLE           = 0x00000020
	DISPLAY_DEVICE_DISCONNECT          = 0x02000000
	DISPLAY_DEVICE_REMOTE              = 0x04000000
	DISPLAY_DEVICE_MODESPRUNED         = 0x08000000
)

// EDD_GET_DEVICE_INTERFACE_NAME asks EnumDisplayDevices for the device
// interface path in DeviceID.
const EDD_GET_DEVICE_INTERFACE_NAME = 0x00000001

// MONITOR_DPI_TYPE
const (
	MDT_EFFECTIVE_DPI = 0
	MDT_ANGULAR_DPI   = 1
	MDT_RAW_DPI       = 2
)

// DWM_BLURBEHIND flags
const (
	DWM_BB_ENABLE                = 0x1
	DWM_BB_BLURREGION            = 0x2
	DWM_BB_TRANSITIONONMAXIMIZED = 0x4
)

// AccentState selects the background treatment applied through
// SetWindowCompositionAttribute.
type AccentState uint32

const (
	ACCENT_DISABLED                   AccentState = 0
	ACCENT_ENABLE_GRADIENT            AccentState = 1
	ACCENT_ENABLE_TRANSPARENTGRADIENT AccentState = 2
	ACCENT_ENABLE_BLURBEHIND          AccentState = 3
	ACCENT_ENABLE_ACRYLICBLURBEHIND   AccentState = 4 // 1703 and above
	ACCENT_ENABLE_HOSTBACKDROP        AccentState = 5 // 1809 and above
	ACCENT_INVALID_STATE              AccentState = 6
)

// WCA_ACCENT_POLICY is the WINDOWCOMPOSITIONATTRIB value for accent policies.
const WCA_ACCENT_POLICY = 19

// DWMWINDOWATTRIBUTE values used by this module
const (
	DWMWA_NCRENDERING_POLICY       = 2
	DWMWA_USE_IMMERSIVE_DARK_MODE  = 20
	DWMWA_WINDOW_CORNER_PREFERENCE = 33
	DWMWA_BORDER_COLOR             = 34
	DWMWA_SYSTEMBACKDROP_TYPE      = 38
)

// CornerPreference is a DWM_WINDOW_CORNER_PREFERENCE value.
type CornerPreference uint32

const (
	DWMWCP_DEFAULT    CornerPreference = 0
	DWMWCP_DONOTROUND CornerPreference = 1
	DWMWCP_ROUND      CornerPreference = 2
	DWMWCP_ROUNDSMALL CornerPreference = 3
)

// DefaultPixelsPerInch is the DPI at which the scale factor is 1.
const DefaultPixelsPerInch = 96.0
