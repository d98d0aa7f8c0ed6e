package effects

import (
	"github.com/Norgate-AV/winfx/internal/interfaces"
	"github.com/Norgate-AV/winfx/internal/logger"
	"github.com/Norgate-AV/winfx/internal/platform"
)

// Dispatcher applies effect levels through the compositor, downgrading them
// to what the running OS supports.
type Dispatcher struct {
	log        logger.LoggerInterface
	caps       platform.Capabilities
	compositor interfaces.Compositor
}

// NewDispatcher creates a dispatcher for the given capabilities
func NewDispatcher(log logger.LoggerInterface, caps platform.Capabilities, compositor interfaces.Compositor) *Dispatcher {
	return &Dispatcher{
		log:        log,
		caps:       caps,
		compositor: compositor,
	}
}

// Capabilities returns the capabilities the dispatcher plans for
func (d *Dispatcher) Capabilities() platform.Capabilities {
	return d.caps
}

// Apply requests the effect on hwnd and returns the level actually in effect.
// The returned level is authoritative and may differ from the requested one.
//
// Failing native calls are logged and do not change the returned level.
func (d *Dispatcher) Apply(hwnd uintptr, requested Level, color Color) Level {
	if d.caps.Tier() == platform.TierUnsupported {
		d.log.Debug("Window effects not supported", "os", d.caps.String())
		return Opaque
	}

	enabled, err := d.compositor.IsCompositionEnabled()
	if err != nil {
		d.log.Warn("Could not query desktop composition", "error", err)
		return Opaque
	}

	if !enabled {
		d.log.Debug("Desktop composition is disabled")
		return Opaque
	}

	plan := NewPlan(d.caps, requested, color)

	d.log.Debug("Applying window effect",
		"hwnd", hwnd,
		"requested", requested,
		"effective", plan.Level,
		"strategy", plan.Strategy,
	)

	switch plan.Strategy {
	case StrategyLegacyBlur:
		d.enableBlurBehind(hwnd, plan)
	case StrategyAccentPolicyBlur, StrategyFullAccentBlur:
		d.setAccentPolicy(hwnd, plan)
		d.enableBlurBehind(hwnd, plan)
	case StrategyNone:
		return Opaque
	}

	return plan.Level
}

func (d *Dispatcher) setAccentPolicy(hwnd uintptr, plan Plan) {
	if plan.Accent == nil {
		return
	}

	d.log.Trace("SetWindowCompositionAttribute",
		"hwnd", hwnd,
		"state", plan.Accent.AccentState,
		"flags", plan.Accent.AccentFlags,
		"color", plan.Accent.GradientColor,
	)

	if err := d.compositor.SetAccentPolicy(hwnd, *plan.Accent); err != nil {
		d.log.Warn("Failed to set accent policy", "hwnd", hwnd, "level", plan.Level, "error", err)
	}
}

func (d *Dispatcher) enableBlurBehind(hwnd uintptr, plan Plan) {
	if plan.BlurBehind == nil {
		return
	}

	d.log.Trace("DwmEnableBlurBehindWindow", "hwnd", hwnd, "enable", plan.BlurBehind.Enable)

	if err := d.compositor.EnableBlurBehind(hwnd, *plan.BlurBehind); err != nil {
		d.log.Warn("Failed to enable blur behind", "hwnd", hwnd, "level", plan.Level, "error", err)
	}
}
