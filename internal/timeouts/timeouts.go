// Package timeouts defines polling intervals and delays used when watching windows and profiles.
package timeouts

import "time"

const (
	// Window Watching

	// MonitorPollingInterval is the interval at which the background window
	// monitor enumerates top-level windows looking for new ones.
	MonitorPollingInterval = 500 * time.Millisecond

	// NewWindowSettlingDelay allows a freshly created window to finish
	// applying its own styles before a profile rule overrides them. Many
	// frameworks restyle the window once after the first show.
	NewWindowSettlingDelay = 250 * time.Millisecond

	// Profile Reloading

	// ProfileReloadDebounce coalesces the burst of write events editors
	// produce when saving a profile into a single reload.
	ProfileReloadDebounce = 200 * time.Millisecond

	// Windows API Interaction Delays

	// FocusVerificationDelay allows time to verify that window focus has
	// successfully changed after a focus operation.
	FocusVerificationDelay = 100 * time.Millisecond

	// ShutdownGracePeriod is how long the watcher waits for in-flight rule
	// applications after a stop request before returning.
	ShutdownGracePeriod = 2 * time.Second
)
