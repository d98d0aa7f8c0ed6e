package win32

import "fmt"

// Rect is a Win32 RECT.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d) %dx%d", r.Left, r.Top, r.Right, r.Bottom, r.Width(), r.Height())
}

// Bounds is a position and size in physical pixels.
type Bounds struct {
	X, Y          int32
	Width, Height int32
}

// WindowPos mirrors WINDOWPOS, the record lParam points at for
// WM_WINDOWPOSCHANGING and WM_WINDOWPOSCHANGED.
type WindowPos struct {
	Hwnd        uintptr
	InsertAfter uintptr
	X, Y        int32
	Cx, Cy      int32
	Flags       uint32
}

// StyleStruct mirrors STYLESTRUCT, the record lParam points at for
// WM_STYLECHANGING and WM_STYLECHANGED.
type StyleStruct struct {
	StyleOld uint32
	StyleNew uint32
}

// BlurBehind mirrors DWM_BLURBEHIND.
type BlurBehind struct {
	Flags                 uint32
	Enable                int32
	RgnBlur               uintptr
	TransitionOnMaximized int32
}

// NewBlurBehind returns a record that only sets the enable flag.
func NewBlurBehind(enabled bool) BlurBehind {
	bb := BlurBehind{Flags: DWM_BB_ENABLE}
	if enabled {
		bb.Enable = 1
	}

	return bb
}

// AccentPolicy mirrors the undocumented ACCENT_POLICY record.
type AccentPolicy struct {
	AccentState   AccentState
	AccentFlags   uint32
	GradientColor uint32
	AnimationID   uint32
}

// WindowCompositionAttributeData mirrors WINDOWCOMPOSITIONATTRIBDATA.
type WindowCompositionAttributeData struct {
	Attribute  uint32
	Data       uintptr
	SizeOfData uint32
}

// MonitorInfo describes the display a window is on.
type MonitorInfo struct {
	Handle     uintptr
	Monitor    Rect
	WorkArea   Rect
	Flags      uint32
	DeviceName string
}

// Primary reports whether this is the primary display monitor.
func (m MonitorInfo) Primary() bool {
	return m.Flags&MONITORINFOF_PRIMARY != 0
}

// DisplayDevice describes a display adapter or monitor as returned by
// EnumDisplayDevices.
type DisplayDevice struct {
	DeviceName   string
	DeviceString string
	StateFlags   uint32
	DeviceID     string
	DeviceKey    string
}

// AttachedToDesktop reports whether the device is part of the desktop.
func (d DisplayDevice) AttachedToDesktop() bool {
	return d.StateFlags&DISPLAY_DEVICE_ATTACHED_TO_DESKTOP != 0
}

// PrimaryDevice reports whether the device is the primary display.
func (d DisplayDevice) PrimaryDevice() bool {
	return d.StateFlags&DISPLAY_DEVICE_PRIMARY_DEVICE != 0
}

// DpiScale holds the dots per inch of a monitor or window.
type DpiScale struct {
	DpiX uint32
	DpiY uint32
}

// ScaleX is 1 when the horizontal DPI is 96.
func (d DpiScale) ScaleX() float64 { return float64(d.DpiX) / DefaultPixelsPerInch }

// ScaleY is 1 when the vertical DPI is 96.
func (d DpiScale) ScaleY() float64 { return float64(d.DpiY) / DefaultPixelsPerInch }

// PixelsPerDip is the scale text should be rendered at.
func (d DpiScale) PixelsPerDip() float64 { return d.ScaleY() }

// LowWord returns the low-order word of a message parameter.
func LowWord(v uintptr) uint16 { return uint16(v & 0xFFFF) }

// HighWord returns the high-order word of the low 32 bits of a message parameter.
func HighWord(v uintptr) uint16 { return uint16((v >> 16) & 0xFFFF) }

// WindowInfo describes a top-level window.
type WindowInfo struct {
	Hwnd  uintptr
	Title string
	Class string
	Pid   uint32
}

func (w WindowInfo) String() string {
	return fmt.Sprintf("0x%X %q (%s, pid %d)", w.Hwnd, w.Title, w.Class, w.Pid)
}
