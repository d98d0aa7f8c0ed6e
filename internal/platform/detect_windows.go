//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// Detect queries the running OS version through RtlGetVersion, which is not
// subject to the manifest-based version lie of GetVersionEx.
func Detect() Capabilities {
	info := windows.RtlGetVersion()

	return New(Version{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildNumber,
	})
}
