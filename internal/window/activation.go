package window

import (
	"github.com/Norgate-AV/winfx/internal/hooks"
	"github.com/Norgate-AV/winfx/internal/interfaces"
)

var activationHook hooks.Hook = hooks.ActivationSuppressor{}

// activationCleanup detaches the activation hook when the window closes and
// unsubscribes itself, so it runs at most once per subscription.
type activationCleanup struct{}

func (c *activationCleanup) WindowClosed(host interfaces.Host) {
	if source, ok := host.HookSource(); ok {
		source.RemoveHook(activationHook)
	}

	host.RemoveClosedHandler(c)
}

var closedCleanup = &activationCleanup{}

// DisableActivation keeps the window from being activated by size, position,
// z-order or mouse events, and pins it to the bottom of the z-order. Returns
// false when the window's messages cannot be intercepted.
func (w *Window) DisableActivation() bool {
	source, ok := w.host.HookSource()
	if !ok {
		w.log.Debug("No hook source, activation not disabled")
		return false
	}

	source.AddHook(activationHook)
	w.host.AddClosedHandler(closedCleanup)

	w.log.Debug("Activation disabled")
	return true
}

// ReenableActivation undoes DisableActivation
func (w *Window) ReenableActivation() {
	source, ok := w.host.HookSource()
	if !ok {
		return
	}

	source.RemoveHook(activationHook)
	w.host.RemoveClosedHandler(closedCleanup)

	w.log.Debug("Activation re-enabled")
}
