package testutil

import (
	"github.com/Norgate-AV/winfx/internal/hooks"
	"github.com/Norgate-AV/winfx/internal/interfaces"
)

// MockHost is a host window with an optional hook source
type MockHost struct {
	HandleValue     uintptr
	Source          *MockHookSource
	HasSource       bool
	ClosedHandlers  []interfaces.ClosedHandler
	AddClosedCalls  int
	RemoveClosedCnt int
}

func NewMockHost(hwnd uintptr) *MockHost {
	return &MockHost{
		HandleValue: hwnd,
		Source:      NewMockHookSource(),
		HasSource:   true,
	}
}

func (m *MockHost) Handle() uintptr {
	return m.HandleValue
}

func (m *MockHost) HookSource() (interfaces.HookSource, bool) {
	if !m.HasSource {
		return nil, false
	}

	return m.Source, true
}

func (m *MockHost) AddClosedHandler(h interfaces.ClosedHandler) {
	m.AddClosedCalls++
	m.ClosedHandlers = append(m.ClosedHandlers, h)
}

func (m *MockHost) RemoveClosedHandler(h interfaces.ClosedHandler) {
	m.RemoveClosedCnt++

	for i, existing := range m.ClosedHandlers {
		if existing == h {
			m.ClosedHandlers = append(m.ClosedHandlers[:i], m.ClosedHandlers[i+1:]...)
			return
		}
	}
}

// FireClosed notifies the closed handlers subscribed at the time of the call
func (m *MockHost) FireClosed() {
	handlers := append([]interfaces.ClosedHandler(nil), m.ClosedHandlers...)
	for _, h := range handlers {
		h.WindowClosed(m)
	}
}

func (m *MockHost) WithoutHookSource() *MockHost {
	m.HasSource = false
	return m
}

func (m *MockHost) WithHandle(hwnd uintptr) *MockHost {
	m.HandleValue = hwnd
	return m
}

// MockHookSource keeps hooks in installation order and runs them the way a
// subclassed window procedure does
type MockHookSource struct {
	Hooks       []hooks.Hook
	AddCalls    int
	RemoveCalls int
}

func NewMockHookSource() *MockHookSource {
	return &MockHookSource{}
}

func (m *MockHookSource) AddHook(h hooks.Hook) {
	m.AddCalls++
	m.Hooks = append(m.Hooks, h)
}

func (m *MockHookSource) RemoveHook(h hooks.Hook) {
	m.RemoveCalls++

	// Most recently added first, matching the native source
	for i := len(m.Hooks) - 1; i >= 0; i-- {
		if m.Hooks[i] == h {
			m.Hooks = append(m.Hooks[:i], m.Hooks[i+1:]...)
			return
		}
	}
}

// Count returns how many times h is installed
func (m *MockHookSource) Count(h hooks.Hook) int {
	n := 0
	for _, existing := range m.Hooks {
		if existing == h {
			n++
		}
	}

	return n
}

// Dispatch runs msg through the hooks newest first and returns the final
// decision, applying payload rewrites between hooks
func (m *MockHookSource) Dispatch(msg hooks.Message) hooks.Decision {
	var last hooks.Decision

	for i := len(m.Hooks) - 1; i >= 0; i-- {
		d := m.Hooks[i].Intercept(msg)

		if d.WindowPos != nil {
			msg.WindowPos = d.WindowPos
			last.WindowPos = d.WindowPos
		}

		if d.Style != nil {
			msg.Style = d.Style
			last.Style = d.Style
		}

		if d.Handled {
			last.Handled = true
			last.Result = d.Result
			return last
		}
	}

	return last
}
