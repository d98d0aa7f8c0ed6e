// Package platform describes the running Windows release and the window
// composition features it supports.
package platform

import "fmt"

// AcrylicMinBuild is the first Windows 10 build where the acrylic accent state
// renders reliably.
const AcrylicMinBuild = 19628

// Version is a Windows major.minor.build triple.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// Tier classifies a Windows release by how it exposes background blur.
type Tier int

const (
	// TierUnsupported predates the desktop window manager.
	TierUnsupported Tier = iota
	// TierLegacy is Windows Vista and 7: DwmEnableBlurBehindWindow only.
	TierLegacy
	// TierAccentPolicy is Windows 8 and 8.1: accent policy without colors.
	TierAccentPolicy
	// TierFullAccent is Windows 10 and later: colored accent policy, acrylic
	// on recent builds.
	TierFullAccent
)

func (t Tier) String() string {
	switch t {
	case TierLegacy:
		return "legacy"
	case TierAccentPolicy:
		return "accent-policy"
	case TierFullAccent:
		return "full-accent"
	default:
		return "unsupported"
	}
}

// Capabilities is the immutable description of the running OS. It is computed
// once at startup and passed to whatever needs it.
type Capabilities struct {
	version Version
}

// New returns the capabilities of the given OS version.
func New(v Version) Capabilities {
	return Capabilities{version: v}
}

// Version returns the OS version the capabilities were computed from.
func (c Capabilities) Version() Version {
	return c.version
}

// Tier returns the blur tier of the OS.
func (c Capabilities) Tier() Tier {
	v := c.version

	switch {
	case v.Major < 6:
		return TierUnsupported
	case v.Major >= 10:
		return TierFullAccent
	case v.Minor >= 2:
		return TierAccentPolicy
	default:
		return TierLegacy
	}
}

// SupportsAcrylic reports whether the acrylic accent state may be requested.
func (c Capabilities) SupportsAcrylic() bool {
	if c.Tier() != TierFullAccent {
		return false
	}

	return c.version.Major > 10 || c.version.Build >= AcrylicMinBuild
}

func (c Capabilities) String() string {
	return fmt.Sprintf("windows %s (%s)", c.version, c.Tier())
}
