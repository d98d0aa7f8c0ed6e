package hooks

import "github.com/Norgate-AV/winfx/internal/win32"

// ActivationSuppressor keeps a window from becoming active and pins it to the
// bottom of the z-order.
type ActivationSuppressor struct{}

// Intercept swallows activation, answers mouse activation with MA_NOACTIVATE
// and rewrites every position change to insert after HWND_BOTTOM.
func (ActivationSuppressor) Intercept(msg Message) Decision {
	switch msg.ID {
	case win32.WM_ACTIVATE:
		if win32.LowWord(msg.WParam) == win32.WA_INACTIVE {
			return Pass()
		}

		return Handled(0)

	case win32.WM_MOUSEACTIVATE:
		return Handled(win32.MA_NOACTIVATE)

	case win32.WM_WINDOWPOSCHANGING, win32.WM_WINDOWPOSCHANGED:
		if msg.WindowPos == nil {
			return Pass()
		}

		pos := *msg.WindowPos
		pos.InsertAfter = win32.HWND_BOTTOM

		return Decision{WindowPos: &pos}
	}

	return Pass()
}
