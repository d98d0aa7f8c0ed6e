package hooks

import (
	"fmt"
	"sync"

	"github.com/Norgate-AV/winfx/internal/win32"
)

// StyleWindow is the window a SnapGuard works on.
type StyleWindow interface {
	Style() (uint32, error)
	SetStyle(style uint32) error
	PostMessage(id uint32, wParam, lParam uintptr) error
}

// SnapGuard keeps the shell from snapping a window to a maximized state while
// it is dragged or resized. The maximize box is removed when a move or size
// command starts and put back once the modal loop has ended.
//
// A SnapGuard holds per-window state and must not be shared between windows.
type SnapGuard struct {
	win     StyleWindow
	restore uint32

	mu      sync.Mutex
	saved   uint32
	pending bool
	onError func(error)
}

// NewSnapGuard returns a guard for win. restoreMessage is the private message
// the guard posts to itself to put the style back.
func NewSnapGuard(win StyleWindow, restoreMessage uint32) *SnapGuard {
	return &SnapGuard{win: win, restore: restoreMessage}
}

// OnError sets the function told about style writes and posts that failed.
// The guard never leaves the maximize box removed because of such a failure.
func (g *SnapGuard) OnError(fn func(error)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.onError = fn
}

// RestoreMessage returns the message id the guard restores the style on.
func (g *SnapGuard) RestoreMessage() uint32 {
	return g.restore
}

// Pending reports whether the maximize box is currently removed by the guard.
func (g *SnapGuard) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.pending
}

func (g *SnapGuard) Intercept(msg Message) Decision {
	switch msg.ID {
	case win32.WM_SYSCOMMAND:
		cmd := msg.WParam & win32.SC_MASK
		if cmd == win32.SC_MOVE || cmd == win32.SC_SIZE {
			g.strip()
		}

	case win32.WM_EXITSIZEMOVE:
		if g.Pending() {
			if err := g.win.PostMessage(g.restore, 0, 0); err != nil {
				g.report(fmt.Errorf("failed to post snap restore message: %w", err))
				g.restoreStyle()
			}
		}

	case g.restore:
		if g.restoreStyle() {
			return Handled(0)
		}
	}

	return Pass()
}

func (g *SnapGuard) strip() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending {
		return
	}

	style, err := g.win.Style()
	if err != nil || style&win32.WS_MAXIMIZEBOX == 0 {
		return
	}

	if err := g.win.SetStyle(style &^ win32.WS_MAXIMIZEBOX); err != nil {
		g.reportLocked(fmt.Errorf("failed to remove maximize box: %w", err))
		return
	}

	g.saved = style
	g.pending = true
}

func (g *SnapGuard) restoreStyle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.pending {
		return false
	}

	g.pending = false
	if err := g.win.SetStyle(g.saved); err != nil {
		g.reportLocked(fmt.Errorf("failed to restore maximize box: %w", err))
	}

	return true
}

func (g *SnapGuard) report(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reportLocked(err)
}

func (g *SnapGuard) reportLocked(err error) {
	if g.onError != nil {
		g.onError(err)
	}
}
