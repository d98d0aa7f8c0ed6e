// Package hooks holds window procedure hooks that adjust how a window reacts to
// activation, z-order and style changes.
//
// Hooks never touch native memory. The host decodes the record lParam points at
// into Message, and writes any record returned in the Decision back before
// continuing with the next hook or the original window procedure.
package hooks

import "github.com/Norgate-AV/winfx/internal/win32"

// Message is a window message delivered to a hook.
type Message struct {
	Hwnd   uintptr
	ID     uint32
	WParam uintptr
	LParam uintptr

	// WindowPos is set for WM_WINDOWPOSCHANGING and WM_WINDOWPOSCHANGED.
	WindowPos *win32.WindowPos
	// Style is set for WM_STYLECHANGING and WM_STYLECHANGED.
	Style *win32.StyleStruct
}

// Decision is the outcome of a hook.
type Decision struct {
	// Result is returned from the window procedure when Handled is set.
	Result uintptr
	// Handled stops the message from reaching later hooks and the original
	// window procedure.
	Handled bool

	// WindowPos and Style, when non-nil, replace the record lParam points at.
	WindowPos *win32.WindowPos
	Style     *win32.StyleStruct
}

// Hook intercepts window messages.
type Hook interface {
	Intercept(msg Message) Decision
}

// HookFunc adapts a function to the Hook interface. HookFunc values are not
// comparable, so they cannot be removed from a hook source once added.
type HookFunc func(msg Message) Decision

// Intercept calls f(msg).
func (f HookFunc) Intercept(msg Message) Decision {
	return f(msg)
}

// Pass lets a message continue unchanged.
func Pass() Decision {
	return Decision{}
}

// Handled stops a message and replies with result.
func Handled(result uintptr) Decision {
	return Decision{Result: result, Handled: true}
}
