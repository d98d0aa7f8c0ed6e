package testutil

import (
	"fmt"

	"github.com/Norgate-AV/winfx/internal/win32"
)

// MockNativeAPI records all calls for verification. Styles are kept per
// window, so a write is visible to the next read.
type MockNativeAPI struct {
	Styles         map[uintptr]uint32
	ExtendedStyles map[uintptr]uint32
	StyleErr       error
	SetStyleErr    error

	SetStyleCalls         []StyleCall
	SetExtendedStyleCalls []StyleCall
	SetWindowPosCalls     []SetWindowPosCall
	SetWindowPosErr       error
	SetActiveWindowCalls  []uintptr
	SetForegroundCalls    []uintptr
	SetForegroundResult   bool
	PostMessageCalls      []PostMessageCall
	RegisteredMessages    map[string]uint32

	Monitor           uintptr
	MonitorFlagsCalls []win32.MonitorDefault
	Monitors          map[uintptr]win32.MonitorInfo
	Devices           map[string]win32.DisplayDevice
	ScaleFactorResult int
	ScaleFactorErr    error
	Dpi               win32.DpiScale
	DpiErr            error

	CompositionEnabled  bool
	CompositionErr      error
	CompositionQueries  int
	BlurBehindCalls     []BlurBehindCall
	BlurBehindErr       error
	AccentPolicyCalls   []AccentPolicyCall
	AccentPolicyErr     error
	CornerCalls         []win32.CornerPreference
	DarkModeCalls       []bool
	RoundedRegionCalls  []RoundedRegionCall
	AppearanceErr       error
	effectCallSequence  []string
	nextRegisteredMsgID uint32
}

type StyleCall struct {
	Hwnd  uintptr
	Style uint32
}

type SetWindowPosCall struct {
	Hwnd        uintptr
	InsertAfter uintptr
	X, Y        int32
	Cx, Cy      int32
	Flags       uint32
}

type PostMessageCall struct {
	Hwnd   uintptr
	Msg    uint32
	WParam uintptr
	LParam uintptr
}

type BlurBehindCall struct {
	Hwnd       uintptr
	BlurBehind win32.BlurBehind
}

type AccentPolicyCall struct {
	Hwnd   uintptr
	Accent win32.AccentPolicy
}

type RoundedRegionCall struct {
	Hwnd                  uintptr
	Width, Height, Radius int32
}

func NewMockNativeAPI() *MockNativeAPI {
	return &MockNativeAPI{
		Styles:              make(map[uintptr]uint32),
		ExtendedStyles:      make(map[uintptr]uint32),
		SetForegroundResult: true,
		RegisteredMessages:  make(map[string]uint32),
		Monitors:            make(map[uintptr]win32.MonitorInfo),
		Devices:             make(map[string]win32.DisplayDevice),
		ScaleFactorResult:   100,
		Dpi:                 win32.DpiScale{DpiX: 96, DpiY: 96},
		CompositionEnabled:  true,
		nextRegisteredMsgID: 0xC000,
	}
}

func (m *MockNativeAPI) Style(hwnd uintptr) (uint32, error) {
	if m.StyleErr != nil {
		return 0, m.StyleErr
	}

	return m.Styles[hwnd], nil
}

func (m *MockNativeAPI) SetStyle(hwnd uintptr, style uint32) error {
	m.SetStyleCalls = append(m.SetStyleCalls, StyleCall{hwnd, style})
	if m.SetStyleErr != nil {
		return m.SetStyleErr
	}

	m.Styles[hwnd] = style
	return nil
}

func (m *MockNativeAPI) ExtendedStyle(hwnd uintptr) (uint32, error) {
	if m.StyleErr != nil {
		return 0, m.StyleErr
	}

	return m.ExtendedStyles[hwnd], nil
}

func (m *MockNativeAPI) SetExtendedStyle(hwnd uintptr, style uint32) error {
	m.SetExtendedStyleCalls = append(m.SetExtendedStyleCalls, StyleCall{hwnd, style})
	if m.SetStyleErr != nil {
		return m.SetStyleErr
	}

	m.ExtendedStyles[hwnd] = style
	return nil
}

func (m *MockNativeAPI) SetWindowPos(hwnd, insertAfter uintptr, x, y, cx, cy int32, flags uint32) error {
	m.SetWindowPosCalls = append(m.SetWindowPosCalls, SetWindowPosCall{hwnd, insertAfter, x, y, cx, cy, flags})
	return m.SetWindowPosErr
}

func (m *MockNativeAPI) SetActiveWindow(hwnd uintptr) error {
	m.SetActiveWindowCalls = append(m.SetActiveWindowCalls, hwnd)
	return nil
}

func (m *MockNativeAPI) SetForeground(hwnd uintptr) bool {
	m.SetForegroundCalls = append(m.SetForegroundCalls, hwnd)
	return m.SetForegroundResult
}

func (m *MockNativeAPI) PostMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) error {
	m.PostMessageCalls = append(m.PostMessageCalls, PostMessageCall{hwnd, msg, wParam, lParam})
	return nil
}

func (m *MockNativeAPI) RegisterWindowMessage(name string) (uint32, error) {
	if id, ok := m.RegisteredMessages[name]; ok {
		return id, nil
	}

	id := m.nextRegisteredMsgID
	m.nextRegisteredMsgID++
	m.RegisteredMessages[name] = id

	return id, nil
}

func (m *MockNativeAPI) MonitorFromWindow(hwnd uintptr, flags win32.MonitorDefault) uintptr {
	m.MonitorFlagsCalls = append(m.MonitorFlagsCalls, flags)
	return m.Monitor
}

func (m *MockNativeAPI) MonitorInfo(monitor uintptr) (win32.MonitorInfo, error) {
	info, ok := m.Monitors[monitor]
	if !ok {
		return win32.MonitorInfo{}, fmt.Errorf("GetMonitorInfo failed for monitor 0x%X", monitor)
	}

	return info, nil
}

func (m *MockNativeAPI) DisplayDevice(deviceName string) (win32.DisplayDevice, error) {
	device, ok := m.Devices[deviceName]
	if !ok {
		return win32.DisplayDevice{}, fmt.Errorf("EnumDisplayDevices failed for %s", deviceName)
	}

	return device, nil
}

func (m *MockNativeAPI) ScaleFactor(monitor uintptr) (int, error) {
	return m.ScaleFactorResult, m.ScaleFactorErr
}

func (m *MockNativeAPI) MonitorDpi(monitor uintptr) (win32.DpiScale, error) {
	return m.Dpi, m.DpiErr
}

func (m *MockNativeAPI) IsCompositionEnabled() (bool, error) {
	m.CompositionQueries++
	return m.CompositionEnabled, m.CompositionErr
}

func (m *MockNativeAPI) EnableBlurBehind(hwnd uintptr, bb win32.BlurBehind) error {
	m.BlurBehindCalls = append(m.BlurBehindCalls, BlurBehindCall{hwnd, bb})
	m.effectCallSequence = append(m.effectCallSequence, "blur-behind")
	return m.BlurBehindErr
}

func (m *MockNativeAPI) SetAccentPolicy(hwnd uintptr, accent win32.AccentPolicy) error {
	m.AccentPolicyCalls = append(m.AccentPolicyCalls, AccentPolicyCall{hwnd, accent})
	m.effectCallSequence = append(m.effectCallSequence, "accent-policy")
	return m.AccentPolicyErr
}

func (m *MockNativeAPI) SetCornerPreference(hwnd uintptr, pref win32.CornerPreference) error {
	m.CornerCalls = append(m.CornerCalls, pref)
	return m.AppearanceErr
}

func (m *MockNativeAPI) SetDarkMode(hwnd uintptr, enabled bool) error {
	m.DarkModeCalls = append(m.DarkModeCalls, enabled)
	return m.AppearanceErr
}

func (m *MockNativeAPI) SetRoundedRegion(hwnd uintptr, width, height, radius int32) error {
	m.RoundedRegionCalls = append(m.RoundedRegionCalls, RoundedRegionCall{hwnd, width, height, radius})
	return m.AppearanceErr
}

// EffectCalls returns the effect calls in the order they were made
func (m *MockNativeAPI) EffectCalls() []string {
	return m.effectCallSequence
}

// Helper methods for fluent configuration
func (m *MockNativeAPI) WithStyle(hwnd uintptr, style uint32) *MockNativeAPI {
	m.Styles[hwnd] = style
	return m
}

func (m *MockNativeAPI) WithExtendedStyle(hwnd uintptr, style uint32) *MockNativeAPI {
	m.ExtendedStyles[hwnd] = style
	return m
}

func (m *MockNativeAPI) WithStyleError(err error) *MockNativeAPI {
	m.StyleErr = err
	return m
}

func (m *MockNativeAPI) WithSetStyleError(err error) *MockNativeAPI {
	m.SetStyleErr = err
	return m
}

func (m *MockNativeAPI) WithComposition(enabled bool, err error) *MockNativeAPI {
	m.CompositionEnabled = enabled
	m.CompositionErr = err
	return m
}

func (m *MockNativeAPI) WithEffectErrors(blurBehind, accent error) *MockNativeAPI {
	m.BlurBehindErr = blurBehind
	m.AccentPolicyErr = accent
	return m
}

func (m *MockNativeAPI) WithMonitor(handle uintptr, info win32.MonitorInfo) *MockNativeAPI {
	m.Monitor = handle
	info.Handle = handle
	m.Monitors[handle] = info
	return m
}

func (m *MockNativeAPI) WithDisplayDevice(device win32.DisplayDevice) *MockNativeAPI {
	m.Devices[device.DeviceName] = device
	return m
}

func (m *MockNativeAPI) WithScaleFactor(percent int, err error) *MockNativeAPI {
	m.ScaleFactorResult = percent
	m.ScaleFactorErr = err
	return m
}

func (m *MockNativeAPI) WithDpi(dpi win32.DpiScale, err error) *MockNativeAPI {
	m.Dpi = dpi
	m.DpiErr = err
	return m
}
