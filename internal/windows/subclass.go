//go:build windows

package windows

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	syswin "golang.org/x/sys/windows"

	"github.com/Norgate-AV/winfx/internal/hooks"
	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// ErrForeignWindow is returned when subclassing a window owned by another
// process. Its window procedure cannot be replaced from here.
var ErrForeignWindow = errors.New("window belongs to another process")

var (
	subclassMu sync.Mutex
	subclassed = make(map[uintptr]*SubclassHost)

	// One callback serves every subclassed window; the runtime only has room
	// for a limited number of callbacks.
	subclassCallback = syswin.NewCallback(subclassProc)
)

// SubclassHost replaces the window procedure of a window created by this
// process and runs hooks on its messages. Hooks added later see a message
// first.
type SubclassHost struct {
	hwnd     uintptr
	prevProc uintptr
	log      logger.LoggerInterface

	mu       sync.Mutex
	hooks    []hooks.Hook
	closed   []interfaces.ClosedHandler
	detached bool
}

var (
	_ interfaces.Host       = (*SubclassHost)(nil)
	_ interfaces.HookSource = (*SubclassHost)(nil)
)

// Subclass installs the hook procedure on hwnd. Subclassing a window twice
// returns the existing host.
func Subclass(hwnd uintptr, log logger.LoggerInterface) (*SubclassHost, error) {
	if !IsWindow(hwnd) {
		return nil, fmt.Errorf("invalid window handle 0x%X", hwnd)
	}

	if GetWindowPid(hwnd) != uint32(os.Getpid()) {
		return nil, ErrForeignWindow
	}

	subclassMu.Lock()
	defer subclassMu.Unlock()

	if h, ok := subclassed[hwnd]; ok {
		return h, nil
	}

	h := &SubclassHost{
		hwnd: hwnd,
		log:  log.With(slog.Uint64("hwnd", uint64(hwnd))),
	}

	// Registered before the swap so the first message finds the host
	subclassed[hwnd] = h

	prev, err := setWindowLong(hwnd, win32.GWLP_WNDPROC, subclassCallback)
	if err != nil {
		delete(subclassed, hwnd)
		return nil, fmt.Errorf("SetWindowLongPtr(GWLP_WNDPROC): %w", err)
	}

	h.prevProc = prev
	h.log.Debug("Window subclassed")

	return h, nil
}

func (h *SubclassHost) Handle() uintptr {
	return h.hwnd
}

func (h *SubclassHost) HookSource() (interfaces.HookSource, bool) {
	return h, true
}

func (h *SubclassHost) AddHook(hook hooks.Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.hooks = append(h.hooks, hook)
}

// RemoveHook removes the most recently added occurrence of hook. Removing a
// HookFunc panics because function values are not comparable.
func (h *SubclassHost) RemoveHook(hook hooks.Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.hooks) - 1; i >= 0; i-- {
		if h.hooks[i] == hook {
			h.hooks = append(h.hooks[:i], h.hooks[i+1:]...)
			return
		}
	}
}

func (h *SubclassHost) AddClosedHandler(c interfaces.ClosedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = append(h.closed, c)
}

func (h *SubclassHost) RemoveClosedHandler(c interfaces.ClosedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, existing := range h.closed {
		if existing == c {
			h.closed = append(h.closed[:i], h.closed[i+1:]...)
			return
		}
	}
}

// Detach restores the original window procedure. Hooks stop running but
// stay registered.
func (h *SubclassHost) Detach() error {
	subclassMu.Lock()
	defer subclassMu.Unlock()

	return h.detachLocked()
}

func (h *SubclassHost) detachLocked() error {
	h.mu.Lock()
	if h.detached {
		h.mu.Unlock()
		return nil
	}
	h.detached = true
	h.mu.Unlock()

	delete(subclassed, h.hwnd)

	if _, err := setWindowLong(h.hwnd, win32.GWLP_WNDPROC, h.prevProc); err != nil {
		return fmt.Errorf("SetWindowLongPtr(GWLP_WNDPROC): %w", err)
	}

	h.log.Debug("Window procedure restored")

	return nil
}

func subclassProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	subclassMu.Lock()
	h := subclassed[hwnd]
	subclassMu.Unlock()

	if h == nil {
		ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
		return ret
	}

	return h.wndProc(uint32(msg), wParam, lParam)
}

func (h *SubclassHost) wndProc(id uint32, wParam, lParam uintptr) uintptr {
	if id == win32.WM_NCDESTROY {
		return h.destroyed(id, wParam, lParam)
	}

	h.mu.Lock()
	chain := make([]hooks.Hook, len(h.hooks))
	copy(chain, h.hooks)
	h.mu.Unlock()

	msg := hooks.Message{Hwnd: h.hwnd, ID: id, WParam: wParam, LParam: lParam}

	if lParam != 0 {
		switch id {
		case win32.WM_WINDOWPOSCHANGING, win32.WM_WINDOWPOSCHANGED:
			pos := *ptrAt[win32.WindowPos](lParam)
			msg.WindowPos = &pos
		case win32.WM_STYLECHANGING, win32.WM_STYLECHANGED:
			style := *ptrAt[win32.StyleStruct](lParam)
			msg.Style = &style
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		d := chain[i].Intercept(msg)

		if d.WindowPos != nil && msg.WindowPos != nil {
			*ptrAt[win32.WindowPos](lParam) = *d.WindowPos
			pos := *d.WindowPos
			msg.WindowPos = &pos
		}

		if d.Style != nil && msg.Style != nil {
			*ptrAt[win32.StyleStruct](lParam) = *d.Style
			style := *d.Style
			msg.Style = &style
		}

		if d.Handled {
			return d.Result
		}
	}

	return h.callPrev(id, wParam, lParam)
}

// destroyed runs the original procedure for WM_NCDESTROY, unsubclasses and
// notifies closed handlers.
func (h *SubclassHost) destroyed(id uint32, wParam, lParam uintptr) uintptr {
	subclassMu.Lock()
	if err := h.detachLocked(); err != nil {
		h.log.Debug("Failed to restore window procedure", slog.Any("error", err))
	}
	subclassMu.Unlock()

	ret := h.callPrev(id, wParam, lParam)

	h.mu.Lock()
	handlers := make([]interfaces.ClosedHandler, len(h.closed))
	copy(handlers, h.closed)
	h.mu.Unlock()

	for _, c := range handlers {
		c.WindowClosed(h)
	}

	h.log.Debug("Window destroyed", slog.Int("closedHandlers", len(handlers)))

	return ret
}

func (h *SubclassHost) callPrev(id uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallWindowProcW.Call(h.prevProc, h.hwnd, uintptr(id), wParam, lParam)
	return ret
}
