//go:build windows

package windows

import (
	"errors"

	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
)

// HandleHost is a window known only by its handle, typically one owned by
// another process. It has no hook source and never reports closing.
type HandleHost struct {
	hwnd uintptr
}

var _ interfaces.Host = (*HandleHost)(nil)

func NewHandleHost(hwnd uintptr) *HandleHost {
	return &HandleHost{hwnd: hwnd}
}

func (h *HandleHost) Handle() uintptr { return h.hwnd }
func (h *HandleHost) HookSource() (interfaces.HookSource, bool) { return nil, false }
func (h *HandleHost) AddClosedHandler(interfaces.ClosedHandler) {}
func (h *HandleHost) RemoveClosedHandler(interfaces.ClosedHandler) {}

// HostFor subclasses windows owned by this process and wraps any other
// window in a HandleHost.
func HostFor(hwnd uintptr, log logger.LoggerInterface) (interfaces.Host, error) {
	h, err := Subclass(hwnd, log)
	if errors.Is(err, ErrForeignWindow) {
		return NewHandleHost(hwnd), nil
	}
	if err != nil {
		return nil, err
	}

	return h, nil
}
