package hooks

import "github.com/Norgate-AV/winfx/internal/win32"

// MaximizeBoxRemover strips WS_MAXIMIZEBOX from every style change, so
// frameworks that reapply the style cannot bring the maximize button back.
type MaximizeBoxRemover struct{}

func (MaximizeBoxRemover) Intercept(msg Message) Decision {
	if msg.ID != win32.WM_STYLECHANGING || msg.Style == nil {
		return Pass()
	}

	if int32(msg.WParam) != win32.GWL_STYLE {
		return Pass()
	}

	style := *msg.Style
	style.StyleNew &^= win32.WS_MAXIMIZEBOX

	return Decision{Style: &style}
}
