package effects

import (
	"github.com/Norgate-AV/winfx/internal/platform"
	"github.com/Norgate-AV/winfx/internal/win32"
)

// Strategy is the native mechanism used to realize a Level.
type Strategy int

const (
	// StrategyNone makes no native call.
	StrategyNone Strategy = iota
	// StrategyLegacyBlur uses DwmEnableBlurBehindWindow.
	StrategyLegacyBlur
	// StrategyAccentPolicyBlur uses an uncolored accent policy, layered with
	// the legacy blur for Blur.
	StrategyAccentPolicyBlur
	// StrategyFullAccentBlur uses a colored accent policy.
	StrategyFullAccentBlur
)

func (s Strategy) String() string {
	switch s {
	case StrategyLegacyBlur:
		return "legacy-blur"
	case StrategyAccentPolicyBlur:
		return "accent-policy-blur"
	case StrategyFullAccentBlur:
		return "full-accent-blur"
	default:
		return "none"
	}
}

// Accent flags written to the policy. Windows 10 needs bit 1 set for the
// gradient color to be drawn.
const (
	accentPolicyFlags = 0
	fullAccentFlags   = 2
)

// StrategyFor returns the strategy used on the given tier.
func StrategyFor(tier platform.Tier) Strategy {
	switch tier {
	case platform.TierLegacy:
		return StrategyLegacyBlur
	case platform.TierAccentPolicy:
		return StrategyAccentPolicyBlur
	case platform.TierFullAccent:
		return StrategyFullAccentBlur
	default:
		return StrategyNone
	}
}

// Plan is the set of native records needed to realize a requested level.
// Records the strategy does not use are nil.
type Plan struct {
	Strategy Strategy
	// Level is the level that will be in effect once the records are applied.
	Level Level
	// Accent is applied first, through SetWindowCompositionAttribute.
	Accent *win32.AccentPolicy
	// BlurBehind is applied after Accent, through DwmEnableBlurBehindWindow.
	BlurBehind *win32.BlurBehind
}

// NewPlan computes the native records for the requested level. It does not
// check whether composition is enabled.
func NewPlan(caps platform.Capabilities, requested Level, color Color) Plan {
	switch strategy := StrategyFor(caps.Tier()); strategy {
	case StrategyLegacyBlur:
		return legacyPlan(requested)
	case StrategyAccentPolicyBlur:
		return accentPolicyPlan(requested)
	case StrategyFullAccentBlur:
		return fullAccentPlan(requested, color, caps.SupportsAcrylic())
	default:
		return Plan{Strategy: StrategyNone, Level: Opaque}
	}
}

func legacyPlan(level Level) Plan {
	if level == AcrylicBlur {
		level = Blur
	}

	bb := win32.NewBlurBehind(level == Blur)
	plan := Plan{Strategy: StrategyLegacyBlur, Level: level, BlurBehind: &bb}

	// Without an accent policy transparent and opaque look the same
	if level == Transparent {
		plan.Level = Opaque
	}

	return plan
}

func accentPolicyPlan(level Level) Plan {
	if level == AcrylicBlur {
		level = Blur
	}

	accent := win32.AccentPolicy{
		AccentState: win32.ACCENT_DISABLED,
		AccentFlags: accentPolicyFlags,
	}

	if level == Transparent {
		accent.AccentState = win32.ACCENT_ENABLE_BLURBEHIND
	}

	plan := Plan{Strategy: StrategyAccentPolicyBlur, Level: level, Accent: &accent}

	// Windows 8 only draws the blur when DWM blur-behind is enabled as well
	if level >= Blur {
		bb := win32.NewBlurBehind(true)
		plan.BlurBehind = &bb
	}

	return plan
}

func fullAccentPlan(level Level, color Color, acrylic bool) Plan {
	if level == AcrylicBlur && !acrylic {
		level = Blur
	}

	accent := win32.AccentPolicy{
		AccentFlags:   fullAccentFlags,
		GradientColor: color.Pack(),
	}

	switch level {
	case Transparent:
		accent.AccentState = win32.ACCENT_ENABLE_TRANSPARENTGRADIENT
	case Blur:
		accent.AccentState = win32.ACCENT_ENABLE_BLURBEHIND
	case AcrylicBlur:
		accent.AccentState = win32.ACCENT_ENABLE_ACRYLICBLURBEHIND
	default:
		level = Opaque
		accent.AccentState = win32.ACCENT_DISABLED
	}

	return Plan{Strategy: StrategyFullAccentBlur, Level: level, Accent: &accent}
}
